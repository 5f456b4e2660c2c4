package cli

import "fmt"

type outcomeKind uint8

const (
	outcomeUnset outcomeKind = iota
	outcomeSuccess
	outcomeFailure
)

// Outcome is the value every result-carrying command handler returns. It has
// exactly two variants: success, which carries no payload, and failure, which
// carries an application-defined error value of type E.
//
// The zero value is neither variant; handlers must construct outcomes with
// [Success] or [Failure]. A handler that returns the zero value is reported
// by [Run] as a bug, never as a domain failure.
//
// E is unconstrained beyond needing a human-readable rendering: error values,
// [fmt.Stringer] implementations, and plain printable values all work.
type Outcome[E any] struct {
	kind    outcomeKind
	failure E
}

// Success returns the success outcome. It carries no payload; command output
// belongs on the [State] Stdout, not inside the outcome.
func Success[E any]() Outcome[E] {
	return Outcome[E]{kind: outcomeSuccess}
}

// Failure returns a failure outcome carrying err. [Run] prints the rendering
// of err to the diagnostic stream and reports exit code 1.
func Failure[E any](err E) Outcome[E] {
	return Outcome[E]{kind: outcomeFailure, failure: err}
}

// IsSuccess reports whether the outcome is the success variant.
func (o Outcome[E]) IsSuccess() bool { return o.kind == outcomeSuccess }

// IsFailure reports whether the outcome is the failure variant.
func (o Outcome[E]) IsFailure() bool { return o.kind == outcomeFailure }

// Err returns the carried error value and whether the outcome is a failure.
// The first return value is meaningful only when the second is true.
func (o Outcome[E]) Err() (E, bool) {
	return o.failure, o.kind == outcomeFailure
}

// renderFailure produces the user-facing text for a failure value. Error and
// Stringer implementations take precedence over default formatting.
func renderFailure(v any) string {
	switch v := v.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
