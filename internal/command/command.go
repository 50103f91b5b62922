package command

import "slices"

// An ordered argument vector, program name first.
type Command []string

// Returns the program name, or "" for an empty command.
func (c Command) Program() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Returns the arguments after the program name.
func (c Command) Args() []string {
	if len(c) == 0 {
		return nil
	}
	return c[1:]
}

// Returns true if both commands contain the same tokens in the same order.
func (c Command) Equal(other Command) bool {
	return slices.Equal(c, other)
}

// One logical option: a run of contiguous tokens emitted as a unit.
type FlagGroup struct {
	Name   string   // Label for logs, not emitted.
	Tokens []string // Tokens to emit. Empty means the group is absent.
}

// Returns true if the group contributes tokens.
func (g FlagGroup) Present() bool {
	return len(g.Tokens) > 0
}

// Concatenates the tokens of all present groups in order.
func Join(groups []FlagGroup) Command {
	n := 0
	for _, g := range groups {
		n += len(g.Tokens)
	}

	cmd := make(Command, 0, n)
	for _, g := range groups {
		cmd = append(cmd, g.Tokens...)
	}
	return cmd
}
