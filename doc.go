// Package cli provides a small command-line framework with a strict boundary
// between argument parsing and business logic. Command handlers declare
// failure through a typed [Outcome] value instead of printing errors or
// exiting, and a single function, [Run], maps every possible dispatch result
// to a process exit code.
//
// Handlers never write to the diagnostic stream and never terminate the
// process. Run is the one place in an application where user-visible failure
// behavior is decided: it prints the failure value for exit code 1, a generic
// diagnostic for bugs (exit code 2), and nothing at all for clean early exits
// such as help display.
package cli
