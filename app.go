package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
)

// App is a command registry plus app-level configuration. Commands are added
// incrementally with [App.Register] or [RegisterResult]; the set must not
// change while a [Run] invocation is in flight.
type App struct {
	// Name is the program name used in usage text. When empty, argv[0] is
	// used.
	Name string

	// Help is a short description shown at the top of the app's usage text.
	Help string

	// NoArgsIsHelp shows help on the primary stream and reports exit code 0
	// when the app is invoked with no arguments.
	NoArgsIsHelp bool

	// RequireSubcommand forces group behavior: the app never dispatches a
	// command without it being named explicitly, even when only a single
	// command is registered. It implies NoArgsIsHelp.
	RequireSubcommand bool

	// Flags holds app-level flags, available to every command.
	Flags *flag.FlagSet

	commands []*Command
}

// Register adds cmd to the app's command set and returns it. This is the
// plain registration path: it performs no outcome translation, so an error
// returned by cmd.Exec is classified by [Run] as an unexpected fault, not a
// declared failure. Use [RegisterResult] for handlers with declared
// failures.
func (a *App) Register(cmd *Command) *Command {
	a.commands = append(a.commands, cmd)
	return cmd
}

// ResultFunc is a command handler with a declared two-variant outcome:
// success with no payload, or failure carrying an error value of type E.
type ResultFunc[E any] func(ctx context.Context, s *State) Outcome[E]

// RegisterResult installs fn as cmd's execution function and adds cmd to the
// app's command set. The installed wrapper translates the handler's outcome
// for the run boundary and nothing else:
//
//   - success completes the dispatch normally
//   - failure is carried, unmodified, to [Run], which prints it and reports
//     exit code 1
//   - an outcome built without [Success] or [Failure] is a contract
//     violation: the wrapper panics and Run reports exit code 2
//
// The wrapper recovers nothing and makes no decisions about messages or exit
// codes; those belong to Run alone.
//
// RegisterResult returns fn unchanged, so tests can invoke the handler
// directly and inspect its Outcome without going through argument parsing.
func RegisterResult[E any](a *App, cmd *Command, fn ResultFunc[E]) ResultFunc[E] {
	if cmd.Exec != nil {
		panic(fmt.Sprintf("cli: command %q already has an execution function", cmd.Name))
	}
	cmd.Exec = func(ctx context.Context, s *State) error {
		out := fn(ctx, s)
		switch {
		case out.IsSuccess():
			return nil
		case out.IsFailure():
			return &failureError{value: out.failure}
		default:
			panic(fmt.Sprintf("cli: command %q returned an uninitialized Outcome, construct it with Success or Failure", cmd.Name))
		}
	}
	a.Register(cmd)
	return fn
}

// dispatch executes exactly one command dispatch for argv. All printing here
// accompanies an exitSignal, which tells Run the framework already spoke:
// help goes to the primary stream, validation failures to the diagnostic
// stream. Handler results pass through untouched.
func (a *App) dispatch(ctx context.Context, argv []string, opts *RunOptions) error {
	name := a.Name
	if name == "" {
		name = argv[0]
	}
	root := &Command{
		Name:        name,
		ShortHelp:   a.Help,
		Flags:       a.Flags,
		SubCommands: a.commands,
	}
	args := argv[1:]

	// Single-command apps dispatch straight to their only command; naming it
	// is optional. RequireSubcommand turns this off.
	single := !a.RequireSubcommand && len(a.commands) == 1

	if len(args) == 0 {
		if a.NoArgsIsHelp || a.RequireSubcommand {
			root.state = &State{commandPath: []*Command{root}}
			fmt.Fprintln(opts.Stdout, DefaultUsage(root))
			return &exitSignal{code: 0}
		}
		if !single {
			root.state = &State{commandPath: []*Command{root}}
			fmt.Fprintf(opts.Stderr, "%s: missing command\n\n%s\n", name, DefaultUsage(root))
			return &exitSignal{code: 2}
		}
	}
	if single {
		cmd := a.commands[0]
		if len(args) == 0 || !strings.EqualFold(args[0], cmd.Name) {
			args = append([]string{cmd.Name}, args...)
		}
	}

	if err := Parse(root, args); err != nil {
		var help *helpError
		if errors.As(err, &help) {
			fmt.Fprintln(opts.Stdout, DefaultUsage(help.cmd))
			return &exitSignal{code: 0}
		}
		if errors.Is(err, flag.ErrHelp) {
			// A help request the flag set itself intercepted.
			fmt.Fprintln(opts.Stdout, DefaultUsage(root))
			return &exitSignal{code: 0}
		}
		fmt.Fprintf(opts.Stderr, "%s: %v\n", name, err)
		fmt.Fprintf(opts.Stderr, "run %q for usage\n", name+" --help")
		return &exitSignal{code: 2}
	}

	selected := root.selected
	st := selected.state
	st.Stdin, st.Stdout, st.Stderr = opts.Stdin, opts.Stdout, opts.Stderr

	if selected.Exec == nil {
		if len(selected.SubCommands) > 0 {
			// A group was named without one of its subcommands.
			fmt.Fprintf(opts.Stderr, "%s: missing command\n\n%s\n",
				getCommandPath(st.commandPath), DefaultUsage(selected))
			return &exitSignal{code: 2}
		}
		return &NoExecError{Command: selected}
	}
	return selected.Exec(ctx, st)
}
