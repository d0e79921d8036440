package command

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

type Config struct {
	Logging    LoggingConfig    `json:"logging"`
	Simulation SimulationConfig `json:"simulation"`
	Catalog    CatalogConfig    `json:"catalog"`
	Presets    PresetsConfig    `json:"presets"`
	Terminal   TerminalConfig   `json:"terminal"`
	Listeners  []ListenerConfig `json:"listeners"`
	Nats       NatsConfig       `json:"nats"`
	Feed       FeedConfig       `json:"feed"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	el.Add(c.Logging.validate())
	el.Add(c.Simulation.validate())
	el.Add(c.Catalog.validate())
	el.Add(c.Presets.validate())

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Nats.validate())
	el.Add(c.Feed.validate())

	if !c.Terminal.Enabled && len(c.Listeners) == 0 {
		el.Add(fmt.Errorf("enable the terminal or configure at least one listener"))
	}
	if c.Terminal.Enabled && c.Logging.File == "" {
		el.Add(fmt.Errorf("logging.file is required while the terminal is enabled"))
	}
	if c.Terminal.Preset != "" && c.Presets.Path == "" {
		el.Add(c.Presets.checkBuiltIn(c.Terminal.Preset))
	}

	return el.Err()
}
