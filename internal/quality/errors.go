package quality

import (
	"errors"
	"fmt"
)

var ErrUnknownColumn = errors.New("unknown column")

// UnknownColumnError reports a check against a column the table does not have.
type UnknownColumnError struct {
	Column string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("column %q not found", e.Column)
}

func (e *UnknownColumnError) Unwrap() error {
	return ErrUnknownColumn
}
