package errors

import (
	"strings"
)

// Errors is a non-empty list of errors. A nil Errors means no error occurred.
type Errors interface {
	error
	// Slice returns a copy of the underlying non-nil errors.
	Slice() []error
	// Len is always > 0.
	Len() int
}

type errorList []error

func (l errorList) Slice() []error { return append([]error(nil), l...) }

func (l errorList) Len() int { return len(l) }

func (l errorList) Error() string {
	msgs := make([]string, 0, len(l))
	for _, err := range l {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "\n")
}

// Is reports whether any error in the list matches target.
func (l errorList) Is(target error) bool {
	for _, err := range l {
		if Is(err, target) {
			return true
		}
	}
	return false
}

func flatten(err error) []error {
	if l, ok := err.(errorList); ok {
		return l
	}
	return []error{err}
}

// Append adds a possibly nil error to a possibly nil Errors. The argument list
// is never mutated.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var out errorList
	if errs != nil {
		out = append(out, flatten(errs)...)
	}
	return append(out, flatten(err)...)
}

// Combine merges two possibly nil errors. A single non-nil error is returned
// as is; two become an Errors.
func Combine(e, f error) error {
	switch {
	case e == nil:
		return f
	case f == nil:
		return e
	}
	return Append(Append(nil, e), f)
}

// Defer combines the result of f into *err, for use with deferred Close calls:
//
//	defer errors.Defer(&err, f.Close)
func Defer(err *error, f func() error) {
	*err = Combine(*err, f())
}
