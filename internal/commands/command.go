package commands

import (
	"sort"

	"github.com/pixil98/deepmud/internal/game"
)

// Exec carries the state a handler acts on: the world, the body that
// issued the command, and the registry for the introspective
// commands.
type Exec struct {
	World    *game.World
	Actor    *game.Body
	Commands map[string]*Command
}

// A HandlerFunc runs one command. params has already passed the arity
// check against the command's declared parameters. A returned
// *UserError is reported to the issuer; any other error is a system
// failure.
type HandlerFunc func(e *Exec, params []string) error

// Command is one dispatchable verb. Params names the positional
// parameters; its length is the required arity. Help is the long-form
// text shown by explain.
type Command struct {
	Name   string
	Params []string
	Help   string
	Run    HandlerFunc
}

// keys returns the map's keys in sorted order, for deterministic
// iteration.
func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
