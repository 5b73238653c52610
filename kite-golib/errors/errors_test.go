package errors

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapf(t *testing.T) {
	base := New("base")

	assert.Nil(t, WrapfOrNil(nil, "context %d", 1))

	err := WrapfOrNil(base, "context %d", 1)
	require.Error(t, err)
	assert.Equal(t, "context 1: base", err.Error())
	assert.True(t, Is(err, base))
	assert.Equal(t, base, Cause(err))

	err = Wrapf(nil, "no cause %s", "here")
	require.Error(t, err)
	assert.Equal(t, "no cause here", err.Error())
}

func TestAs(t *testing.T) {
	_, err := os.Open("/does/not/exist")
	wrapped := Wrapf(err, "opening")

	var perr *os.PathError
	require.True(t, As(wrapped, &perr))
	assert.Equal(t, "/does/not/exist", perr.Path)
}

func TestAppendNil(t *testing.T) {
	err := New("error")
	errs := Append(nil, err)
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, err, errs.Slice()[0])

	assert.Equal(t, errs, Append(errs, nil))
	assert.Nil(t, Append(nil, nil))
}

func TestAppendFlattens(t *testing.T) {
	err0, err1, err2, err3 := New("error0"), New("error1"), New("error2"), New("error3")

	errs01 := Append(Append(nil, err0), err1)
	errs23 := Append(Append(nil, err2), err3)

	all := Append(errs01, errs23)
	assert.Equal(t, []error{err0, err1, err2, err3}, all.Slice())

	// the inputs are left alone
	assert.Equal(t, []error{err0, err1}, errs01.Slice())
	assert.Equal(t, []error{err2, err3}, errs23.Slice())
}

func TestCombine(t *testing.T) {
	err0, err1 := New("error0"), New("error1")

	assert.Nil(t, Combine(nil, nil))
	assert.Equal(t, err0, Combine(err0, nil))
	assert.Equal(t, err0, Combine(nil, err0))

	combined := Combine(err0, err1)
	errs, ok := combined.(Errors)
	require.True(t, ok)
	assert.Equal(t, []error{err0, err1}, errs.Slice())
	assert.Equal(t, "error0\nerror1", combined.Error())
	assert.True(t, Is(combined, err1))
}

func TestDefer(t *testing.T) {
	closeErr := New("close failed")
	run := func(body error, closer error) (err error) {
		defer Defer(&err, func() error { return closer })
		return body
	}

	assert.NoError(t, run(nil, nil))
	assert.Equal(t, closeErr, run(nil, closeErr))

	bodyErr := New("body failed")
	err := run(bodyErr, closeErr)
	assert.True(t, Is(err, bodyErr))
	assert.True(t, Is(err, closeErr))
}
