package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

type Config struct {
	TickInterval string           `json:"tick_interval"`
	Listeners    []ListenerConfig `json:"listeners"`
	Storage      StorageConfig    `json:"storage"`
	Nats         NatsConfig       `json:"nats"`
	World        WorldConfig      `json:"world"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < 100*time.Millisecond {
			el.Add(fmt.Errorf("tick_interval must be at least 100ms"))
		}
	}

	for i, l := range c.Listeners {
		if err := l.validate(); err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Nats.validate())
	el.Add(c.World.validate())

	return el.Err()
}

func (c *Config) tickInterval() (time.Duration, error) {
	if c.TickInterval == "" {
		return 0, nil
	}
	return time.ParseDuration(c.TickInterval)
}
