package cli

import (
	"flag"
	"fmt"
)

// failureError carries the error value from a Failure outcome across the
// dispatch machinery. It is created by the registration wrapper, passes
// through parsing and dispatch untouched, and is consumed only by [Run].
// Neither handlers nor callers outside Run ever observe it.
type failureError struct {
	value any
}

func (e *failureError) Error() string { return renderFailure(e.value) }

// exitSignal is a deliberate, clean termination with an explicit code, such
// as help display or a flag-validation failure. It is produced only by the
// framework, never by handlers. It is not an error: Run returns the carried
// code and prints nothing.
type exitSignal struct {
	code int
}

func (e *exitSignal) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// helpError is returned by [Parse] when a help flag is seen. It names the
// command whose help was requested and matches [flag.ErrHelp] under
// errors.Is, so callers driving Parse themselves can use the stdlib sentinel.
type helpError struct {
	cmd *Command
}

func (e *helpError) Error() string        { return flag.ErrHelp.Error() }
func (e *helpError) Is(target error) bool { return target == flag.ErrHelp }

// exitAttempt is the panic payload raised by Exit.
type exitAttempt struct {
	code int
}

// Exit abandons the current dispatch with a request to terminate the process
// using the given code. Handlers must not call it: [Run] classifies every
// Exit call as a bug and reports exit code 2 regardless of the requested
// code, even 0. It exists so code ported from CLIs that exit directly fails
// loudly under test instead of killing the test process.
func Exit(code int) {
	panic(exitAttempt{code: code})
}
