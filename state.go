package cli

import (
	"flag"
	"fmt"
	"io"
)

// State is the execution state handed to a command's Exec function. It
// carries the positional arguments left over after flag parsing, the
// standard I/O streams for the current dispatch, and the chain of commands
// from the root to the selected command, which keeps flags defined on parent
// commands reachable.
type State struct {
	// Args contains the remaining arguments after flag parsing.
	Args []string

	// Standard I/O streams for this dispatch. Success output belongs on
	// Stdout. Error text is printed by Run, never by handlers.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	commandPath []*Command
}

// Arg returns the i-th positional argument, or the empty string if there are
// fewer than i+1 arguments.
func (s *State) Arg(i int) string {
	if i < 0 || i >= len(s.Args) {
		return ""
	}
	return s.Args[i]
}

// GetFlag retrieves a flag value by name with type inference, searching from
// the selected command up through its parents so subcommands can read global
// flags. Example usage:
//
//	verbose := cli.GetFlag[bool](s, "verbose")
//	count := cli.GetFlag[int](s, "count")
//	path := cli.GetFlag[string](s, "path")
//
// If the flag isn't found anywhere in the command path, or is registered
// with a different type than requested, GetFlag panics. A missing or
// mistyped flag is a programming error in the command definition, and it's
// better to fail LOUD and EARLY than to silently misbehave.
func GetFlag[T any](s *State, name string) T {
	for i := len(s.commandPath) - 1; i >= 0; i-- {
		cmd := s.commandPath[i]
		if cmd.Flags == nil {
			continue
		}
		f := cmd.Flags.Lookup(name)
		if f == nil {
			continue
		}
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			continue
		}
		value := getter.Get()
		if v, ok := value.(T); ok {
			return v
		}
		panic(fmt.Errorf("internal error: type mismatch for flag %q in command %q: registered %T, requested %T",
			formatFlagName(name), cmd.Name, value, *new(T)))
	}
	var where string
	if len(s.commandPath) > 0 {
		where = s.commandPath[len(s.commandPath)-1].Name
	}
	panic(fmt.Errorf("internal error: flag %q not found in command %q flag set", formatFlagName(name), where))
}
