package generation

import "fmt"

// FailureKind tags a generation failure so callers can route it without
// string matching: caller input rejected before any provider call, provider
// output rejected by the schema, or the provider itself unreachable.
type FailureKind int

const (
	FailureInput FailureKind = iota
	FailureSchema
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureInput:
		return "input_validation"
	case FailureSchema:
		return "schema_validation"
	case FailureTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a tagged generation failure.
type Error struct {
	Kind FailureKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation %s failure: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the outcome of one generation call: either a value that passed
// schema validation, or a tagged failure. A Result never holds both.
type Result[T any] struct {
	value T
	err   *Error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

func Fail[T any](kind FailureKind, err error) Result[T] {
	return Result[T]{err: &Error{Kind: kind, Err: err}}
}

// FailFrom re-wraps an existing tagged error, preserving its kind.
func FailFrom[T any](err *Error) Result[T] {
	return Result[T]{err: err}
}

func (r Result[T]) Failed() bool {
	return r.err != nil
}

// Value returns the generated value. Only meaningful when Failed is false.
func (r Result[T]) Value() T {
	return r.value
}

func (r Result[T]) Err() *Error {
	return r.err
}
