package cli

import (
	"cmp"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/resultcli/cli/pkg/textutil"
)

const usageWidth = 80

// DefaultUsage renders the help text for the command the last parse
// selected, or for c itself if it has not been parsed.
func DefaultUsage(c *Command) string {
	if c == nil {
		return ""
	}
	cmd, state := c.terminal()
	if cmd.UsageFunc != nil {
		return cmd.UsageFunc(cmd)
	}

	var b strings.Builder

	if cmd.ShortHelp != "" {
		for _, line := range textutil.Wrap(cmd.ShortHelp, usageWidth) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Usage:\n")
	if cmd.Usage != "" {
		b.WriteString("  " + cmd.Usage + "\n")
	} else {
		usage := cmd.Name
		if state != nil && len(state.commandPath) > 0 {
			usage = getCommandPath(state.commandPath)
		}
		if cmd.Flags != nil {
			usage += " [flags]"
		}
		if len(cmd.SubCommands) > 0 {
			usage += " <command>"
		}
		b.WriteString("  " + usage + "\n")
	}
	b.WriteString("\n")

	if len(cmd.SubCommands) > 0 {
		b.WriteString("Available Commands:\n")
		writeCommandSection(&b, cmd.SubCommands)
		b.WriteString("\n")
	}

	flags := collectFlags(cmd, state)
	if len(flags) > 0 {
		slices.SortFunc(flags, func(a, b flagInfo) int {
			return cmp.Compare(a.name, b.name)
		})

		maxLen := 0
		hasLocal, hasGlobal := false, false
		for _, f := range flags {
			if len(f.name) > maxLen {
				maxLen = len(f.name)
			}
			if f.global {
				hasGlobal = true
			} else {
				hasLocal = true
			}
		}

		if hasLocal {
			b.WriteString("Flags:\n")
			writeFlagSection(&b, flags, maxLen, false)
			b.WriteString("\n")
		}
		if hasGlobal {
			b.WriteString("Global Flags:\n")
			writeFlagSection(&b, flags, maxLen, true)
			b.WriteString("\n")
		}
	}

	if len(cmd.SubCommands) > 0 {
		path := cmd.Name
		if state != nil && len(state.commandPath) > 0 {
			path = getCommandPath(state.commandPath)
		}
		fmt.Fprintf(&b, "Use \"%s [command] --help\" for more information about a command.\n", path)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeCommandSection(b *strings.Builder, subs []*Command) {
	sorted := slices.Clone(subs)
	slices.SortFunc(sorted, func(a, b *Command) int {
		return cmp.Compare(a.Name, b.Name)
	})

	maxNameLen := 0
	for _, sub := range sorted {
		if len(sub.Name) > maxNameLen {
			maxNameLen = len(sub.Name)
		}
	}
	nameWidth := maxNameLen + 4
	wrapWidth := usageWidth - nameWidth

	for _, sub := range sorted {
		if sub.ShortHelp == "" {
			fmt.Fprintf(b, "  %s\n", sub.Name)
			continue
		}
		lines := textutil.Wrap(sub.ShortHelp, wrapWidth)
		padding := strings.Repeat(" ", maxNameLen-len(sub.Name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", sub.Name, padding, lines[0])

		indent := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}

// collectFlags gathers the flags visible to cmd. Flags defined on ancestors
// are marked global.
func collectFlags(cmd *Command, state *State) []flagInfo {
	var flags []flagInfo
	appendFlags := func(fset *flag.FlagSet, global bool) {
		fset.VisitAll(func(f *flag.Flag) {
			flags = append(flags, flagInfo{
				name:   formatFlagName(f.Name),
				usage:  f.Usage,
				defval: f.DefValue,
				global: global,
			})
		})
	}
	if state == nil || len(state.commandPath) == 0 {
		if cmd.Flags != nil {
			appendFlags(cmd.Flags, false)
		}
		return flags
	}
	for i, c := range state.commandPath {
		if c.Flags == nil {
			continue
		}
		appendFlags(c.Flags, i < len(state.commandPath)-1)
	}
	return flags
}

// writeFlagSection writes either the local or the global flags section.
func writeFlagSection(b *strings.Builder, flags []flagInfo, maxLen int, global bool) {
	nameWidth := maxLen + 4
	wrapWidth := usageWidth - nameWidth

	for _, f := range flags {
		if f.global != global {
			continue
		}
		description := f.usage
		if f.defval != "" && f.defval != "false" {
			description += fmt.Sprintf(" (default: %s)", f.defval)
		}

		lines := textutil.Wrap(description, wrapWidth)
		if len(lines) == 0 {
			lines = []string{""}
		}
		padding := strings.Repeat(" ", maxLen-len(f.name)+4)
		fmt.Fprintf(b, "  %s%s%s\n", f.name, padding, lines[0])

		indent := strings.Repeat(" ", nameWidth+2)
		for _, line := range lines[1:] {
			fmt.Fprintf(b, "%s%s\n", indent, line)
		}
	}
}

type flagInfo struct {
	name   string
	usage  string
	defval string
	global bool
}
