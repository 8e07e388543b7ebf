package core

import (
	"errors"
	"fmt"
)

// FatalError marks a condition that ends the whole session.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %v", e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal wraps err so the dispatch loop stops the session on it.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// IsFatal reports whether err, or anything it wraps, is a FatalError
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}

var (
	ErrMissingArgument = errors.New("missing argument")
	ErrDivisionByZero  = errors.New("division by zero")
)
