package command

import (
	"fmt"

	"github.com/pixil98/deepmud/internal/commands"
	"github.com/pixil98/deepmud/internal/driver"
	"github.com/pixil98/deepmud/internal/game"
	"github.com/pixil98/deepmud/internal/listener"
	"github.com/pixil98/deepmud/internal/messaging"
	"github.com/pixil98/deepmud/internal/player"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Load the world definitions
	cat, err := cfg.Storage.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("building catalogue: %w", err)
	}

	if cat.Rooms.Get(cfg.World.StartRoom) == nil {
		return nil, fmt.Errorf("start room %q is not in the room catalogue", cfg.World.StartRoom)
	}

	world := game.NewWorld(cat)
	world.SetRunner(commands.NewDispatcher(world))

	// Set up the message bus
	natsServer, err := cfg.Nats.BuildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}
	publisher := messaging.NewFramePublisher(natsServer)

	// Create the player manager
	playerStore, err := cfg.Storage.BuildPlayerStore()
	if err != nil {
		return nil, fmt.Errorf("creating player store: %w", err)
	}
	playerManager := player.NewManager(world, playerStore, publisher, cfg.World.StartRoom, cfg.World.startHP())
	world.SetSaver(playerManager)

	// Seed the scripted inhabitants
	for i, b := range cfg.World.Bots {
		if err := world.AddBody(b.BuildBody(world, cfg.World.startHP())); err != nil {
			return nil, fmt.Errorf("adding bot %d: %w", i, err)
		}
	}

	// Create Listeners
	connectionManager := listener.NewConnectionManager(playerManager)
	listeners := make(service.WorkerList, len(cfg.Listeners))
	for i, l := range cfg.Listeners {
		lst, err := l.BuildListener(connectionManager)
		if err != nil {
			return nil, fmt.Errorf("creating listener %d: %w", i, err)
		}
		listeners[fmt.Sprintf("listener-%d", i)] = lst
	}

	// Set up the mud driver
	var driverOpts []driver.MudDriverOpt
	tick, err := cfg.tickInterval()
	if err != nil {
		return nil, fmt.Errorf("parsing tick_interval: %w", err)
	}
	if tick > 0 {
		driverOpts = append(driverOpts, driver.WithTickLength(tick))
	}
	mudDriver := driver.NewMudDriver([]driver.Manager{
		playerManager,
		world,
	}, driverOpts...)

	// Create a worker list
	return service.WorkerList{
		"nats":      natsServer,
		"driver":    mudDriver,
		"players":   playerManager,
		"listeners": &listeners,
	}, nil
}
