package outcome

import (
	"time"

	"github.com/google/uuid"
)

// ObjectResult carries a value of type T next to the failures of the
// operation that produced it. Failure bookkeeping is delegated to an owned
// Result. The value is independent of the failure state: a failed result may
// still carry one, and the zero value of T stands for "absent".
type ObjectResult[T any] struct {
	result *Result
	value  T
}

func newObjectResult[T any](result *Result, value T) *ObjectResult[T] {
	return &ObjectResult[T]{result: result, value: value}
}

// SuccessOf returns a result without failures holding value.
func SuccessOf[T any](value T) *ObjectResult[T] {
	return newObjectResult(Success(), value)
}

// EmptyOf returns a result without failures. The value is the first argument
// if given, the zero value of T otherwise.
func EmptyOf[T any](value ...T) *ObjectResult[T] {
	var v T
	if len(value) > 0 {
		v = value[0]
	}
	return newObjectResult(Empty(), v)
}

// FailOf returns a result holding the given failures and a zero value. It
// panics with an error wrapping ErrNoFailures when called without any.
func FailOf[T any](failures ...Failure) *ObjectResult[T] {
	mustHaveFailures("outcome.FailOf", failures)
	var v T
	return newObjectResult(Fail(failures...), v)
}

func FromValue[T any](value T) *ObjectResult[T] {
	return SuccessOf(value)
}

func FromFailureOf[T any](failure Failure) *ObjectResult[T] {
	return FailOf[T](failure)
}

func FromFailuresOf[T any](failures []Failure) *ObjectResult[T] {
	return FailOf[T](failures...)
}

// Transfer moves the failures of from into a result of another payload type.
// The new value is the zero value of Out.
func Transfer[In, Out any](from *ObjectResult[In]) *ObjectResult[Out] {
	var v Out
	return newObjectResult(Empty().MergeIn(from), v)
}

// inner returns the owned Result, creating it for a zero ObjectResult.
func (r *ObjectResult[T]) inner() *Result {
	if r.result == nil {
		r.result = newResult()
	}
	return r.result
}

// view returns the owned Result for reading. A zero ObjectResult reads as an
// empty result and stays untouched.
func (r *ObjectResult[T]) view() *Result {
	if r.result == nil {
		return &Result{}
	}
	return r.result
}

func (r *ObjectResult[T]) Value() T {
	return r.value
}

func (r *ObjectResult[T]) SetValue(value T) *ObjectResult[T] {
	r.value = value
	return r
}

func (r *ObjectResult[T]) AddFailure(failures ...Failure) *ObjectResult[T] {
	r.inner().AddFailure(failures...)
	return r
}

// MergeIn appends other's failures to r. With overrideValue the value of r
// is replaced by other's, even when that is the zero value. A nil other is
// ignored.
func (r *ObjectResult[T]) MergeIn(other *ObjectResult[T], overrideValue bool) *ObjectResult[T] {
	if other == nil {
		return r
	}
	if other.result != nil {
		r.inner().MergeIn(other.result)
	}
	if overrideValue {
		r.value = other.value
	}
	return r
}

// MergeResult appends the failures of any source, leaving the value alone.
func (r *ObjectResult[T]) MergeResult(other FailureSource) *ObjectResult[T] {
	r.inner().MergeIn(other)
	return r
}

// AsResult returns a new Result with a copy of r's failures.
func (r *ObjectResult[T]) AsResult() *Result {
	return Empty().MergeIn(r.view())
}

func (r *ObjectResult[T]) Errors() []Failure {
	return r.view().Errors()
}

func (r *ObjectResult[T]) Warnings() []Failure {
	return r.view().Warnings()
}

func (r *ObjectResult[T]) Failures() []Failure {
	return r.view().Failures()
}

func (r *ObjectResult[T]) IsSuccess() bool {
	return r.view().IsSuccess()
}

func (r *ObjectResult[T]) IsFailure() bool {
	return r.view().IsFailure()
}

func (r *ObjectResult[T]) HasErrors() bool {
	return r.view().HasErrors()
}

func (r *ObjectResult[T]) HasWarnings() bool {
	return r.view().HasWarnings()
}

func (r *ObjectResult[T]) Err() error {
	return r.view().Err()
}

func (r *ObjectResult[T]) Id() uuid.UUID {
	return r.view().Id()
}

func (r *ObjectResult[T]) CreatedAt() time.Time {
	return r.view().CreatedAt()
}

func (r *ObjectResult[T]) String() string {
	return r.view().String()
}
