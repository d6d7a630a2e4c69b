package quality

import (
	"errors"

	"go.uber.org/zap"

	"github.com/alexanderjulianmartinez/tablecheck/internal/source"
	"github.com/alexanderjulianmartinez/tablecheck/pkg/types"
)

const (
	CompletenessCheck    = "completeness"
	UniquenessCheck      = "uniqueness"
	TypeConsistencyCheck = "type_consistency"
)

// Inspector runs data-quality checks against a single table snapshot.
// Every check logs exactly one record per column it reports on.
type Inspector struct {
	table  *source.Table
	logger *zap.Logger
}

func NewInspector(table *source.Table, logger *zap.Logger) (*Inspector, error) {
	if table == nil {
		return nil, errors.New("table cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Inspector{table: table, logger: logger}, nil
}

// CheckCompleteness counts missing cells in the named column.
func (i *Inspector) CheckCompleteness(column string) types.CheckResult {
	col, ok := i.table.Column(column)
	if !ok {
		return i.unknownColumn(CompletenessCheck, column)
	}

	missing := 0
	for _, v := range col.Values {
		if v.IsMissing() {
			missing++
		}
	}

	outcome := OutcomeNoMissingValues
	if missing > 0 {
		outcome = OutcomeMissingValues
	}
	return i.record(CompletenessCheck, outcome, column, missing, types.KindMissing)
}

// CheckUniqueness counts cells repeating a value seen in an earlier row of
// the named column. Missing cells are equal to each other.
func (i *Inspector) CheckUniqueness(column string) types.CheckResult {
	col, ok := i.table.Column(column)
	if !ok {
		return i.unknownColumn(UniquenessCheck, column)
	}

	seen := make(map[types.Value]struct{}, len(col.Values))
	duplicates := 0
	for _, v := range col.Values {
		if _, ok := seen[v]; ok {
			duplicates++
			continue
		}
		seen[v] = struct{}{}
	}

	outcome := OutcomeAllUnique
	if duplicates > 0 {
		outcome = OutcomeDuplicateValues
	}
	return i.record(UniquenessCheck, outcome, column, duplicates, types.KindMissing)
}

// TypeReport is the result of CheckTypeConsistency. A nil Issues map means
// every column is consistent; use Consistent rather than len(Issues).
type TypeReport struct {
	Issues map[string]string
	// Columns lists the columns in Issues in table order.
	Columns []string
	// Mismatched holds the number of offending values per column in Issues.
	Mismatched map[string]int
}

func (r TypeReport) Consistent() bool {
	return r.Issues == nil
}

// CheckTypeConsistency compares every value of every column against the
// kind of the column's row-0 value. Missing values never count as a
// mismatch. A missing row-0 value makes the expected kind "missing", so every
// typed value in that column is then reported.
func (i *Inspector) CheckTypeConsistency() TypeReport {
	var report TypeReport
	for _, col := range i.table.Columns() {
		expected := types.KindMissing
		if len(col.Values) > 0 {
			expected = col.Values[0].Kind()
		}

		mismatched := 0
		for _, v := range col.Values {
			if !v.IsMissing() && v.Kind() != expected {
				mismatched++
			}
		}

		if mismatched == 0 {
			i.record(TypeConsistencyCheck, OutcomeTypesConsistent, col.Name, 0, expected)
			continue
		}

		if report.Issues == nil {
			report.Issues = map[string]string{}
			report.Mismatched = map[string]int{}
		}
		report.Issues[col.Name] = TypeIssue(expected)
		report.Mismatched[col.Name] = mismatched
		report.Columns = append(report.Columns, col.Name)
		i.record(TypeConsistencyCheck, OutcomeTypeMismatch, col.Name, mismatched, expected)
	}
	return report
}

func (i *Inspector) unknownColumn(check, column string) types.CheckResult {
	msg := MessageForOutcome(OutcomeUnknownColumn, column, 0, types.KindMissing)
	i.logger.Error(msg, zap.String("check", check), zap.String("column", column))
	return types.CheckResult{
		Check:   check,
		Column:  column,
		Status:  SeverityForOutcome(OutcomeUnknownColumn),
		Message: msg,
		Err:     &UnknownColumnError{Column: column},
	}
}

func (i *Inspector) record(check, outcome, column string, count int, expected types.Kind) types.CheckResult {
	severity := SeverityForOutcome(outcome)
	msg := MessageForOutcome(outcome, column, count, expected)

	fields := []zap.Field{
		zap.String("check", check),
		zap.String("column", column),
		zap.Int("count", count),
	}
	if check == TypeConsistencyCheck {
		fields = append(fields, zap.Stringer("expected", expected))
	}
	i.logger.Log(levelForSeverity(severity), msg, fields...)

	return types.CheckResult{
		Check:   check,
		Column:  column,
		Status:  severity,
		Count:   count,
		Message: msg,
	}
}
