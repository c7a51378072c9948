// Package outcome provides result types that separate "did it succeed" from
// "what went wrong". Failures are plain values sorted into errors and
// warnings, so nested operations can report diagnostics upward without
// returning early.
//
// Highlights:
// - Failure: immutable code/kind/message/description value, also an error
// - Result: errors and warnings of an operation that returns no value
// - ObjectResult[T]: the same bookkeeping plus a carried value
// - Empty/Success/Fail (and SuccessOf/EmptyOf/FailOf): construct results
// - AddFailure/MergeIn: accumulate failures in place, chainable
//
// Results are not safe for concurrent mutation; callers sharing one across
// goroutines must synchronize.
package outcome
