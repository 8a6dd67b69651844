package commands

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/pixil98/deepmud/internal/game"
)

// Dispatcher parses input lines and runs the matching handlers. It
// implements game.CommandRunner.
type Dispatcher struct {
	world    *game.World
	commands map[string]*Command
}

// NewDispatcher builds the command registry against a world.
func NewDispatcher(world *game.World) *Dispatcher {
	d := &Dispatcher{
		world:    world,
		commands: make(map[string]*Command),
	}

	d.register(
		sayCommand(),
		yellCommand(),
		tellCommand(),
		msgCommand(),
		lookCommand(),
		takeCommand(),
		dropCommand(),
		giveCommand(),
		buyCommand(),
		sellCommand(),
		retrieveCommand(),
		makeCommand(),
		invCommand(),
		equipCommand(),
		removeCommand(),
		drinkCommand(),
		eatCommand(),
		attackCommand(),
		lootCommand(),
		whoCommand(),
		helpCommand(),
		explainCommand(),
		quitCommand(),
	)
	d.register(moveCommands()...)

	return d
}

func (d *Dispatcher) register(cmds ...*Command) {
	for _, c := range cmds {
		d.commands[c.Name] = c
	}
}

// Command returns the registered command by name, or nil.
func (d *Dispatcher) Command(name string) *Command {
	return d.commands[name]
}

// Dispatch parses one input line and runs it for the body. The raw
// line is echoed back first; empty lines do nothing else. Unknown
// commands fall back to say with the whole line. The handler only
// runs when the arity matches and the body is conscious (quit is
// exempt from the knock-out gate).
func (d *Dispatcher) Dispatch(b *game.Body, line string) {
	b.Inform(line)
	if line == "" {
		return
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return
	}
	name := tokens[0]
	params := tokens[1:]

	// Free-text commands reassemble their tail into one parameter.
	switch {
	case name == "say" || name == "yell":
		params = []string{strings.Join(params, " ")}
	case (name == "tell" || name == "msg") && len(params) > 0:
		params = []string{params[0], strings.Join(params[1:], " ")}
	}

	cmd, ok := d.commands[name]
	if !ok {
		cmd = d.commands["say"]
		params = []string{line}
	}

	if len(params) < len(cmd.Params) {
		b.Inform("not enough parameters")
		return
	}
	if len(params) > len(cmd.Params) {
		b.Inform("too many parameters")
		return
	}
	if b.KnockedOut() && cmd.Name != "quit" {
		b.Inform("knocked out!")
		return
	}

	err := cmd.Run(&Exec{World: d.world, Actor: b, Commands: d.commands}, params)
	if err == nil {
		return
	}

	var ue *UserError
	if errors.As(err, &ue) {
		b.Inform(ue.Message)
		return
	}

	slog.Error("running command", "command", cmd.Name, "body", b.Id, "error", err)
	b.Inform("Something went wrong.")
}
