package outcome

import "time"

// FailureSource exposes the two failure buckets of an aggregate.
type FailureSource interface {
	// Errors returns failures of kind KindError in arrival order
	Errors() []Failure
	// Warnings returns failures of kind KindWarning in arrival order
	Warnings() []Failure
}

// Outcome is the read side shared by Result and ObjectResult.
type Outcome interface {
	FailureSource
	// Failures returns errors followed by warnings
	Failures() []Failure
	// IsSuccess returns true if no failure of any kind was recorded
	IsSuccess() bool
	IsFailure() bool
	HasErrors() bool
	HasWarnings() bool
	// Err joins all failures, nil on success
	Err() error
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueOutcome extends Outcome with the carried value.
type ValueOutcome[T any] interface {
	Outcome
	Value() T
}

var (
	_ Outcome              = (*Result)(nil)
	_ ValueOutcome[string] = (*ObjectResult[string])(nil)
)
