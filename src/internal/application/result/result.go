// Package result is the sanctioned channel handlers use to report
// business outcomes to callers. Expected failures (not found, already
// exists, invalid query) travel as failure Results; domain invariant
// violations are raised as errors inside aggregates and converted at the
// handler boundary.
package result

// Error is a (code, message) pair. Codes follow the
// "{Aggregate}.{Reason}" convention, e.g. "Customer.NotFound", so a
// boundary layer can map them to transport status codes by suffix.
type Error struct {
	Code    string
	Message string
}

// NewError builds an Error.
func NewError(code, message string) Error {
	return Error{Code: code, Message: message}
}

// IsZero reports whether the error carries nothing.
func (e Error) IsZero() bool {
	return e.Code == "" && e.Message == ""
}

// String renders "code: message".
func (e Error) String() string {
	return e.Code + ": " + e.Message
}

// Void is the value type for results that carry no payload.
type Void struct{}

// Result is a typed success/failure wrapper.
//
// Construction invariants: a success carries no error and a failure
// carries a non-empty one. Violating either is a programming error, not a
// business outcome, so the constructors fail fast with a panic.
type Result[T any] struct {
	value   T
	err     Error
	failure bool
}

// Ok wraps a successful outcome.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// OkVoid wraps a successful outcome with no payload.
func OkVoid() Result[Void] {
	return Ok(Void{})
}

// Fail wraps an expected failure. A zero Error is rejected.
func Fail[T any](err Error) Result[T] {
	if err.IsZero() {
		panic("result: failure must carry a non-empty error")
	}
	return Result[T]{err: err, failure: true}
}

// IsSuccess reports a successful outcome.
func (r Result[T]) IsSuccess() bool {
	return !r.failure
}

// IsFailure reports a failed outcome.
func (r Result[T]) IsFailure() bool {
	return r.failure
}

// Value returns the payload. Calling it on a failure is a programming
// error and panics.
func (r Result[T]) Value() T {
	if r.failure {
		panic("result: Value called on a failure result")
	}
	return r.value
}

// Err returns the failure error, zero on success.
func (r Result[T]) Err() Error {
	return r.err
}
