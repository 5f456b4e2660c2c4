package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// RunOptions specifies the standard streams for a single [Run] invocation.
// Nil fields default to the process streams ([os.Stdin], [os.Stdout], and
// [os.Stderr], respectively). Tests typically inject [bytes.Buffer] values.
type RunOptions struct {
	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// Run executes exactly one command dispatch against app with the given
// argument vector and returns the process exit code. It is the only function
// in the package that prints error text, and the only one that decides exit
// codes; handlers may print success output to their State's Stdout, but must
// not print errors, and must not attempt to terminate the process.
//
// argv follows the conventional process argument-vector shape: argv[0] is
// the program name, followed by the subcommand and its arguments. The vector
// is always passed explicitly, never read from a process global, so
// sequential Run calls with different vectors are independent. Run panics if
// argv is empty; that is caller misuse, detected before any command
// executes.
//
// Exit codes:
//
//	0  the handler returned Success, or the framework exited early with
//	   code 0 (help display)
//	1  the handler returned Failure; the failure value's rendering is
//	   printed to the diagnostic stream, followed by a newline
//	2  a bug: an unexpected fault, an uninitialized Outcome, or an Exit
//	   call during dispatch (any code, including 0); a generic diagnostic
//	   naming the fault category is printed, never the fault's own text
//	N  any other early-exit code surfaced by the framework, such as
//	   argument-validation failures
//
// Exactly one of these outcomes occurs per invocation. Run performs a single
// dispatch and never retries. A typical main:
//
//	func main() {
//		os.Exit(cli.Run(context.Background(), app, os.Args, nil))
//	}
func Run(ctx context.Context, app *App, argv []string, opts *RunOptions) (code int) {
	if len(argv) == 0 {
		panic("cli: empty argv, argv[0] must be the program name")
	}
	opts = checkAndSetRunOptions(opts)

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(exitAttempt); ok {
			fmt.Fprintln(opts.Stderr, "unexpected error (bug): direct exit attempt")
			code = 2
			return
		}
		fmt.Fprintf(opts.Stderr, "unexpected error (bug): panic (%T)\n", r)
		code = 2
	}()

	err := app.dispatch(ctx, argv, opts)
	if err == nil {
		return 0
	}
	var failure *failureError
	if errors.As(err, &failure) {
		fmt.Fprintln(opts.Stderr, renderFailure(failure.value))
		return 1
	}
	var exit *exitSignal
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintf(opts.Stderr, "unexpected error (bug): %T\n", err)
	return 2
}

func checkAndSetRunOptions(opts *RunOptions) *RunOptions {
	if opts == nil {
		opts = &RunOptions{}
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return opts
}
