package types

// Status levels of a check outcome. They double as the log level names.
const (
	StatusInfo    = "INFO"
	StatusWarning = "WARNING"
	StatusError   = "ERROR"
)

// CheckResult is the outcome of a single-column check. Err is set only when
// the check could not run, e.g. the column does not exist.
type CheckResult struct {
	Check   string
	Column  string
	Status  string
	Count   int
	Message string
	Err     error
}

func (r CheckResult) String() string {
	return r.Message
}

func (r CheckResult) Failed() bool {
	return r.Err != nil
}
