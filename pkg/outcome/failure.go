package outcome

import "fmt"

// FailureKind selects the bucket a Failure is aggregated into.
type FailureKind int

const (
	// KindWarning marks a non-critical failure, aggregated into Warnings.
	KindWarning FailureKind = iota
	// KindError marks a critical failure, aggregated into Errors.
	KindError
)

// Valid reports whether k is KindWarning or KindError.
func (k FailureKind) Valid() bool {
	return k == KindWarning || k == KindError
}

// String returns "Warning" or "Error", the <Kind> part of Failure.String.
func (k FailureKind) String() string {
	switch k {
	case KindWarning:
		return "Warning"
	case KindError:
		return "Error"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// Failure describes one problem. It is comparable, so two failures with the
// same fields are equal and errors.Is matches catalog values.
type Failure struct {
	code        string
	kind        FailureKind
	message     string
	description string
}

// NewFailure builds a Failure. Only the first description is used; an empty
// description is the same as none. A kind other than KindWarning or KindError
// is stored as KindError.
func NewFailure(code string, kind FailureKind, message string, description ...string) Failure {
	if !kind.Valid() {
		kind = KindError
	}
	f := Failure{code: code, kind: kind, message: message}
	if len(description) > 0 {
		f.description = description[0]
	}
	return f
}

// NewWarning builds a Failure of kind KindWarning without description.
func NewWarning(code, message string) Failure {
	return NewFailure(code, KindWarning, message)
}

// NewError builds a Failure of kind KindError without description.
func NewError(code, message string) Failure {
	return NewFailure(code, KindError, message)
}

// WithDescription returns a copy of f with the description replaced.
func (f Failure) WithDescription(description string) Failure {
	f.description = description
	return f
}

// Code is the caller-assigned identifier; uniqueness is not checked.
func (f Failure) Code() string {
	return f.code
}

func (f Failure) Kind() FailureKind {
	return f.kind
}

func (f Failure) Message() string {
	return f.message
}

func (f Failure) Description() string {
	return f.description
}

// HasDescription reports whether a non-empty description is set.
func (f Failure) HasDescription() bool {
	return f.description != ""
}

func (f Failure) IsError() bool {
	return f.kind == KindError
}

func (f Failure) IsWarning() bool {
	return f.kind == KindWarning
}

// String renders "<Kind>:<Code>. Message: <Message>." with
// " Description: <Description>." appended when a description is set.
func (f Failure) String() string {
	if !f.HasDescription() {
		return fmt.Sprintf("%s:%s. Message: %s.", f.kind, f.code, f.message)
	}
	return fmt.Sprintf("%s:%s. Message: %s. Description: %s.", f.kind, f.code, f.message, f.description)
}

func (f Failure) Error() string {
	return f.String()
}
