package quality

import (
	"fmt"

	"go.uber.org/zap/zapcore"

	"github.com/alexanderjulianmartinez/tablecheck/pkg/types"
)

// Outcome kinds and their severity:
// - ERROR when the check could not run
// - WARNING when the data has a reportable quality problem
// - INFO when the column is clean
const (
	OutcomeUnknownColumn   = "unknown_column"
	OutcomeMissingValues   = "missing_values"
	OutcomeNoMissingValues = "no_missing_values"
	OutcomeDuplicateValues = "duplicate_values"
	OutcomeAllUnique       = "all_unique"
	OutcomeTypeMismatch    = "type_mismatch"
	OutcomeTypesConsistent = "types_consistent"
)

func SeverityForOutcome(kind string) string {
	switch kind {
	case OutcomeUnknownColumn:
		return types.StatusError
	case OutcomeMissingValues, OutcomeDuplicateValues, OutcomeTypeMismatch:
		return types.StatusWarning
	default:
		return types.StatusInfo
	}
}

func levelForSeverity(severity string) zapcore.Level {
	switch severity {
	case types.StatusError:
		return zapcore.ErrorLevel
	case types.StatusWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// MessageForOutcome returns the status line reported and logged for the given
// outcome. count is ignored by outcomes that carry none.
func MessageForOutcome(kind, column string, count int, expected types.Kind) string {
	switch kind {
	case OutcomeUnknownColumn:
		return fmt.Sprintf("Error: Column '%s' not found.", column)
	case OutcomeMissingValues:
		return fmt.Sprintf("Warning: %d missing values found in column '%s'.", count, column)
	case OutcomeNoMissingValues:
		return fmt.Sprintf("No missing values in column '%s'.", column)
	case OutcomeDuplicateValues:
		return fmt.Sprintf("Warning: %d duplicate values found in column '%s'.", count, column)
	case OutcomeAllUnique:
		return fmt.Sprintf("All values in column '%s' are unique.", column)
	case OutcomeTypeMismatch:
		return fmt.Sprintf("Warning: %d values in column '%s' are not of type %s.", count, column, expected)
	case OutcomeTypesConsistent:
		return fmt.Sprintf("Data types are consistent in column '%s'.", column)
	default:
		return ""
	}
}

// TypeIssue is the per-column entry recorded by CheckTypeConsistency.
func TypeIssue(expected types.Kind) string {
	return "Inconsistent data types found, expected " + expected.String()
}
