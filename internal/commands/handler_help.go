package commands

import (
	"fmt"
	"sort"
	"strings"
)

func helpCommand() *Command {
	return &Command{
		Name: "help",
		Help: `Use: "help"

Show all of the commands available to the user.`,
		Run: func(e *Exec, params []string) error {
			lines := make([]string, 0, len(e.Commands))
			for _, c := range e.Commands {
				parts := append([]string{c.Name}, c.Params...)
				lines = append(lines, "\t"+strings.Join(parts, " "))
			}
			sort.Strings(lines)

			e.Actor.Inform("Available commands:\n\n" + strings.Join(lines, "\n"))
			return nil
		},
	}
}

func explainCommand() *Command {
	return &Command{
		Name:   "explain",
		Params: []string{"command"},
		Help:   `I think you've figured it out by now.`,
		Run: func(e *Exec, params []string) error {
			cmd, ok := e.Commands[params[0]]
			if !ok {
				return NewUserError("There is no command %q", params[0])
			}

			help, err := ExpandTemplate(cmd.Help, cmd)
			if err != nil {
				return fmt.Errorf("expanding help for %s: %w", cmd.Name, err)
			}

			e.Actor.Inform(fmt.Sprintf("%s: %s", cmd.Name, help))
			return nil
		},
	}
}
