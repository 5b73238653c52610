package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorf is fmt.Errorf, so %w wrapping works
var Errorf = fmt.Errorf

// New builds a plain error from a format string, suitable for sentinels
var New = Errorf

// ErrorfWithStack is errors.Errorf from github.com/pkg/errors
var ErrorfWithStack = errors.Errorf

// WrapfOrNil attaches a formatted message to err, returning nil for a nil err.
func WrapfOrNil(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WithMessage(err, fmt.Sprintf(format, args...))
}

// Wrapf is WrapfOrNil for a non-nil err and Errorf otherwise; it never returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return Errorf(format, args...)
	}
	return WrapfOrNil(err, format, args...)
}

// Cause is re-exported from github.com/pkg/errors
var Cause = errors.Cause

// Is is re-exported from github.com/pkg/errors
var Is = errors.Is

// As is re-exported from github.com/pkg/errors
var As = errors.As
