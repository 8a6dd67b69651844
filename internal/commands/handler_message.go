package commands

import "github.com/pixil98/deepmud/internal/game"

func sayCommand() *Command {
	return &Command{
		Name:   "say",
		Params: []string{"message"},
		Help: `Use: "say <message>"

Say something out loud. Only the people in the room with you will be able to hear it.

Example:

> say Hello

< carlos say Hi!`,
		Run: func(e *Exec, params []string) error {
			e.World.Broadcast(game.Event{
				From:     e.Actor.Id,
				Verb:     "say",
				Payload:  params[0],
				Category: game.CategoryChat,
			}, game.InRoom(e.Actor.RoomId), game.Excluding(e.Actor.Id))
			return nil
		},
	}
}

func yellCommand() *Command {
	return &Command{
		Name:   "yell",
		Params: []string{"message"},
		Help: `Use: "yell <message>"

Send a message to all users on the server.

Example:

> yell Hello, how are you doing?

< carlos yell SHADDAP!`,
		Run: func(e *Exec, params []string) error {
			e.World.Broadcast(game.Event{
				From:     e.Actor.Id,
				Verb:     "yell",
				Payload:  params[0],
				Category: game.CategoryChat,
			})
			return nil
		},
	}
}

func tellCommand() *Command {
	return &Command{
		Name:   "tell",
		Params: []string{"target", "message"},
		Help: `Use: "tell <target name> <message>"

Send a private message to someone in the room.

Example:

> tell carlos follow

< carlos tell naaaay!`,
		Run: func(e *Exec, params []string) error {
			target := e.World.Resolve(params[0], e.Actor.RoomId)
			if target == nil {
				return NewUserError("%s is not here to tell anything to.", params[0])
			}

			target.EnqueueEvent(game.Event{
				From:     e.Actor.Id,
				Verb:     "tell",
				Payload:  params[1],
				Category: game.CategoryChat,
			})
			return nil
		},
	}
}

func msgCommand() *Command {
	return &Command{
		Name:   "msg",
		Params: []string{"target", "message"},
		Help: `Use: "msg <target name> <message>"

Send a private message to someone on the server.

Example:

> msg carlos follow

< carlos msg naaaay!`,
		Run: func(e *Exec, params []string) error {
			target := e.World.Resolve(params[0], "")
			if target == nil {
				return NewUserError("%s is not logged in to msg to.", params[0])
			}

			target.EnqueueEvent(game.Event{
				From:     e.Actor.Id,
				Verb:     "msg",
				Payload:  params[1],
				Category: game.CategoryChat,
			})
			return nil
		},
	}
}
