package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mfridman/xflag"
)

// Parse resolves args against the command tree rooted at root: it traverses
// subcommands, combines the flags defined along the path, and parses the
// remaining arguments. Flags may appear anywhere on the line; everything
// after a bare "--" is passed through to the command untouched.
//
// Parse never terminates the process. A help request surfaces as an error
// matching [flag.ErrHelp], and every other failure is returned to the caller.
//
// Most programs want [Run], which combines Parse and dispatch with exit-code
// classification; Parse is exported for programs that drive the command tree
// themselves.
func Parse(root *Command, args []string) error {
	if root == nil {
		return errors.New("failed to parse: root command is nil")
	}
	if err := validateCommands(root, nil); err != nil {
		return fmt.Errorf("failed to parse: %w", err)
	}
	if root.Flags == nil {
		root.Flags = flag.NewFlagSet(root.Name, flag.ContinueOnError)
	}

	argsToParse := args
	var passthrough []string
	for i, arg := range args {
		if arg == "--" {
			argsToParse = args[:i]
			passthrough = args[i+1:]
			break
		}
	}

	st := &State{}
	root.state = st
	root.selected = nil

	current := root
	chain := []*Command{root}

	// Resolve the command path first, so a help request is answered for the
	// right command before flag parsing has a chance to fail.
	for _, arg := range argsToParse {
		if isHelpFlag(arg) {
			st.commandPath = chain
			current.state = st
			return &helpError{cmd: current}
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if len(current.SubCommands) == 0 {
			break
		}
		sub := current.findSubCommand(arg)
		if sub == nil {
			return current.formatUnknownCommandError(arg)
		}
		if sub.Flags == nil {
			sub.Flags = flag.NewFlagSet(sub.Name, flag.ContinueOnError)
		}
		current = sub
		chain = append(chain, sub)
	}

	st.commandPath = chain
	current.state = st
	root.selected = current

	// Combine flags terminal-to-root; the terminal command wins on name
	// collisions because it registers first. The combined set shares the
	// underlying flag.Value instances, so parsed values are visible through
	// each command's own flag set. Those instances also persist across
	// dispatches, so every flag is restored to its default before parsing; a
	// value set by an earlier dispatch must not leak into this one.
	combined := flag.NewFlagSet(root.Name, flag.ContinueOnError)
	combined.SetOutput(io.Discard)
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Flags == nil {
			continue
		}
		chain[i].Flags.VisitAll(func(f *flag.Flag) {
			_ = f.Value.Set(f.DefValue)
			if combined.Lookup(f.Name) == nil {
				combined.Var(f.Value, f.Name, f.Usage)
			}
		})
	}

	if err := xflag.ParseToEnd(combined, argsToParse); err != nil {
		return fmt.Errorf("command %q: %w", current.Name, err)
	}

	if err := checkRequiredFlags(chain, combined, argsToParse); err != nil {
		return err
	}

	// Drop the command names that led here; what remains is positional. Each
	// chain entry consumes at most one leading arg, so a positional that
	// happens to equal a command name survives.
	parsed := combined.Args()
	for _, cmd := range chain {
		if len(parsed) > 0 && strings.EqualFold(parsed[0], cmd.Name) {
			parsed = parsed[1:]
		}
	}
	finalArgs := make([]string, 0, len(parsed)+len(passthrough))
	finalArgs = append(finalArgs, parsed...)
	finalArgs = append(finalArgs, passthrough...)
	st.Args = finalArgs

	return nil
}

func isHelpFlag(arg string) bool {
	switch arg {
	case "-h", "--h", "-help", "--help":
		return true
	}
	return false
}

// checkRequiredFlags verifies required flags by inspecting the raw args for
// their presence; the flag package alone cannot distinguish "not provided"
// from "provided with the default value".
func checkRequiredFlags(chain []*Command, fset *flag.FlagSet, args []string) error {
	current := chain[len(chain)-1]
	var missing []string
	for _, meta := range current.FlagsMetadata {
		if !meta.Required {
			continue
		}
		if fset.Lookup(meta.Name) == nil {
			// A required flag the author never registered in the flag set.
			return fmt.Errorf("command %q: internal error: required flag %s not found in flag set",
				current.Name, formatFlagName(meta.Name))
		}
		if !flagPresent(meta.Name, args) {
			missing = append(missing, formatFlagName(meta.Name))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("command %q: required flags %q not set",
			getCommandPath(chain), strings.Join(missing, ", "))
	}
	return nil
}

func flagPresent(name string, args []string) bool {
	for _, arg := range args {
		if arg == "-"+name || arg == "--"+name ||
			strings.HasPrefix(arg, "-"+name+"=") ||
			strings.HasPrefix(arg, "--"+name+"=") {
			return true
		}
	}
	return false
}

func validateCommands(root *Command, path []string) error {
	if root.Name == "" {
		if len(path) == 0 {
			return errors.New("root command has no name")
		}
		return fmt.Errorf("subcommand in path %q has no name", strings.Join(path, " "))
	}
	if strings.Contains(root.Name, " ") {
		return fmt.Errorf("command name %q contains spaces, must be a single word", root.Name)
	}

	currentPath := append(path, root.Name)
	for _, sub := range root.SubCommands {
		if err := validateCommands(sub, currentPath); err != nil {
			return err
		}
	}
	return nil
}
