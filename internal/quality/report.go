package quality

import (
	"github.com/alexanderjulianmartinez/tablecheck/pkg/types"
)

type Issue struct {
	Check    string
	Column   string
	Severity string
	Message  string
	Count    int
}

type Report struct {
	Results []types.CheckResult
	Issues  []Issue
}

// Plan selects the checks Inspect runs.
type Plan struct {
	Completeness    []string
	Uniqueness      []string
	TypeConsistency bool
}

// Inspect runs the planned checks in order: completeness, uniqueness, then
// type consistency across all columns. Every WARNING and ERROR outcome is
// collected as an Issue.
func (i *Inspector) Inspect(plan Plan) *Report {
	report := &Report{}
	for _, column := range plan.Completeness {
		report.add(i.CheckCompleteness(column))
	}
	for _, column := range plan.Uniqueness {
		report.add(i.CheckUniqueness(column))
	}
	if !plan.TypeConsistency {
		return report
	}

	consistency := i.CheckTypeConsistency()
	if consistency.Consistent() {
		return report
	}
	for _, column := range consistency.Columns {
		report.Issues = append(report.Issues, Issue{
			Check:    TypeConsistencyCheck,
			Column:   column,
			Severity: SeverityForOutcome(OutcomeTypeMismatch),
			Message:  consistency.Issues[column],
			Count:    consistency.Mismatched[column],
		})
	}
	return report
}

func (r *Report) add(res types.CheckResult) {
	r.Results = append(r.Results, res)
	if res.Status == types.StatusInfo {
		return
	}
	r.Issues = append(r.Issues, Issue{
		Check:    res.Check,
		Column:   res.Column,
		Severity: res.Status,
		Message:  res.Message,
		Count:    res.Count,
	})
}

func (r *Report) HasErrors() bool {
	return r.hasSeverity(types.StatusError)
}

func (r *Report) HasWarnings() bool {
	return r.hasSeverity(types.StatusWarning)
}

func (r *Report) hasSeverity(severity string) bool {
	for _, iss := range r.Issues {
		if iss.Severity == severity {
			return true
		}
	}
	return false
}
