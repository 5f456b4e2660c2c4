package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/resultcli/cli/pkg/suggest"
)

// NoExecError is returned when the selected command has no execution
// function. Run treats it as a bug (exit code 2): a command reachable by
// users should always have something to do.
type NoExecError struct {
	Command *Command
}

func (e *NoExecError) Error() string {
	name := e.Command.Name
	if e.Command.state != nil && len(e.Command.state.commandPath) > 0 {
		name = getCommandPath(e.Command.state.commandPath)
	}
	return fmt.Sprintf("command %q has no execution function", name)
}

// Command represents a CLI command or subcommand within an application's
// command hierarchy.
type Command struct {
	// Name is always a single word identifying the command. It is matched
	// case-insensitively during traversal and shown in help text.
	Name string

	// Usage is the command's full usage pattern, e.g. "notes add [flags]
	// <text>". When empty, a usage line is derived from the command path.
	Usage string

	// ShortHelp is a brief description of the command's purpose, shown in
	// the parent's command list and at the top of the command's own help.
	ShortHelp string

	// UsageFunc overrides the default help rendering for this command.
	UsageFunc func(*Command) string

	// Flags holds the command-specific flag definitions. Parent flags remain
	// available to subcommands.
	Flags *flag.FlagSet

	// FlagsMetadata optionally extends the flag set with additional
	// metadata, such as whether a flag is required.
	FlagsMetadata []FlagMetadata

	// SubCommands is the list of nested commands under this command.
	SubCommands []*Command

	// Exec is the command's execution logic. For outcome-carrying commands
	// it is installed by RegisterResult; plain commands set it directly. An
	// error returned from a directly-set Exec is classified by Run as an
	// unexpected fault.
	Exec func(ctx context.Context, s *State) error

	state    *State
	selected *Command
}

// terminal resolves the command the last parse selected, together with its
// state. Before any parse it is the command itself with a nil state.
func (c *Command) terminal() (*Command, *State) {
	if c.state == nil || len(c.state.commandPath) == 0 {
		return c, c.state
	}
	path := c.state.commandPath
	return path[len(path)-1], c.state
}

// FlagMetadata holds additional metadata for a flag, such as whether it is
// required.
type FlagMetadata struct {
	// Name is the flag's name. Must match a flag registered in the command's
	// flag set.
	Name string

	// Required indicates whether the flag must be provided on the command
	// line.
	Required bool
}

// FlagsFunc creates a new [flag.FlagSet] and applies the given function to
// it. Intended for use in command definitions to simplify flag setup:
//
//	cmd.Flags = cli.FlagsFunc(func(f *flag.FlagSet) {
//	    f.Bool("verbose", false, "enable verbose output")
//	    f.String("output", "", "output file")
//	})
func FlagsFunc(fn func(*flag.FlagSet)) *flag.FlagSet {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	fn(fset)
	return fset
}

// findSubCommand returns the subcommand with the given name, or nil.
func (c *Command) findSubCommand(name string) *Command {
	for _, sub := range c.SubCommands {
		if strings.EqualFold(sub.Name, name) {
			return sub
		}
	}
	return nil
}

func (c *Command) formatUnknownCommandError(unknown string) error {
	known := make([]string, 0, len(c.SubCommands))
	for _, sub := range c.SubCommands {
		known = append(known, sub.Name)
	}
	if suggestions := suggest.FindSimilar(unknown, known, 3); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q. Did you mean one of these?\n\t%s",
			unknown,
			strings.Join(suggestions, "\n\t"))
	}
	return fmt.Errorf("unknown command %q", unknown)
}

func formatFlagName(name string) string {
	return "-" + name
}

func getCommandPath(commands []*Command) string {
	names := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}
