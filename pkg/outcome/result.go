package outcome

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Result aggregates the failures of an operation that returns no value.
// Failures of kind KindError land in Errors, the rest in Warnings; success
// and failure are derived from those two buckets only.
type Result struct {
	id        uuid.UUID
	createdAt time.Time
	errors    []Failure
	warnings  []Failure
}

func newResult() *Result {
	return &Result{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

// Empty returns a result without failures. Same as Success.
func Empty() *Result {
	return newResult()
}

// Success returns a result without failures. Same as Empty.
func Success() *Result {
	return newResult()
}

// Fail returns a result holding the given failures. It panics with an error
// wrapping ErrNoFailures when called without any.
func Fail(failures ...Failure) *Result {
	mustHaveFailures("outcome.Fail", failures)
	return newResult().AddFailure(failures...)
}

func FromFailure(failure Failure) *Result {
	return Fail(failure)
}

func FromFailures(failures []Failure) *Result {
	return Fail(failures...)
}

// AddFailure appends each failure to the bucket matching its kind.
func (r *Result) AddFailure(failures ...Failure) *Result {
	for _, f := range failures {
		switch {
		case f.IsWarning():
			r.warnings = append(r.warnings, f)
		default:
			r.errors = append(r.errors, f)
		}
	}
	return r
}

// MergeIn appends other's errors and warnings to r. A nil source is ignored.
func (r *Result) MergeIn(other FailureSource) *Result {
	if IsNil(other) {
		return r
	}
	errs, warns := other.Errors(), other.Warnings()
	r.errors = append(r.errors, errs...)
	r.warnings = append(r.warnings, warns...)
	return r
}

func (r *Result) Errors() []Failure {
	return slices.Clone(r.errors)
}

func (r *Result) Warnings() []Failure {
	return slices.Clone(r.warnings)
}

// Failures returns a new slice of errors followed by warnings.
func (r *Result) Failures() []Failure {
	return slices.Concat(r.errors, r.warnings)
}

func (r *Result) IsSuccess() bool {
	return len(r.errors) == 0 && len(r.warnings) == 0
}

func (r *Result) IsFailure() bool {
	return !r.IsSuccess()
}

func (r *Result) HasErrors() bool {
	return len(r.errors) > 0
}

func (r *Result) HasWarnings() bool {
	return len(r.warnings) > 0
}

func (r *Result) Err() error {
	if r.IsSuccess() {
		return nil
	}
	failures := r.Failures()
	errs := make([]error, 0, len(failures))
	for _, f := range failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

func (r *Result) Id() uuid.UUID {
	return r.id
}

func (r *Result) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Result) String() string {
	if r.IsSuccess() {
		return "Success"
	}
	parts := make([]string, 0, len(r.errors)+len(r.warnings))
	for _, f := range r.Failures() {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "\n")
}
