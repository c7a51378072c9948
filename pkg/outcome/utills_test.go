package outcome

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var r *Result
	var src FailureSource = r

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(r))
	assert.True(t, IsNil(src))
	assert.False(t, IsNil(Empty()))
	assert.False(t, IsNil(error1))
}

func TestIsNil_OtherKinds(t *testing.T) {
	t.Parallel()

	var m map[string]int
	var s []Failure
	var fn func()

	assert.True(t, IsNil(m))
	assert.True(t, IsNil(s))
	assert.True(t, IsNil(fn))
	assert.False(t, IsNil([]Failure{}))
	assert.False(t, IsNil(0))
}

func TestFailuresOf_WrappedErr(t *testing.T) {
	t.Parallel()

	r := Fail(error1, warning1, warning2)
	err := fmt.Errorf("ctx: %w", r.Err())

	assert.Equal(t, []Failure{error1, warning1, warning2}, FailuresOf(err))
	assert.True(t, errors.Is(err, warning2))
}

func TestFailuresOf_DoublyWrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", Fail(warning1, error2).Err()))

	assert.Equal(t, []Failure{error2, warning1}, FailuresOf(err))
}

func TestFailuresOf_PointerAndPlain(t *testing.T) {
	t.Parallel()

	f := error1

	assert.Equal(t, []Failure{error1}, FailuresOf(&f))
	assert.Nil(t, FailuresOf(errors.New("plain")))
	assert.Nil(t, FailuresOf(nil))
}

func TestFailuresOf(t *testing.T) {
	t.Parallel()

	r := Fail(warning1, error1, warning2)

	assert.Equal(t, r.Failures(), FailuresOf(r.Err()))
	assert.Nil(t, FailuresOf(Success().Err()))
}

func TestFailuresOf_NestedAndForeign(t *testing.T) {
	t.Parallel()

	inner := errors.Join(error1, errors.New("plain"))
	err := errors.Join(inner, fmt.Errorf("wrapped: %w", warning1))

	assert.Equal(t, []Failure{error1, warning1}, FailuresOf(err))
}

func TestFailuresOf_RoundTripsIntoResult(t *testing.T) {
	t.Parallel()

	original := Fail(error1, warning1)
	rebuilt := Fail(FailuresOf(original.Err())...)

	assert.Equal(t, original.Errors(), rebuilt.Errors())
	assert.Equal(t, original.Warnings(), rebuilt.Warnings())
}
