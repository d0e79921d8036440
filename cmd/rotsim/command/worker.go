package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-rotsim/internal/console"
	"github.com/pixil98/go-rotsim/internal/listener"
	"github.com/pixil98/go-rotsim/internal/messaging"
	"github.com/pixil98/go-rotsim/internal/sim"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	logger, err := cfg.Logging.BuildLogger()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	slog.SetDefault(logger)

	catalog, err := cfg.Catalog.BuildCatalog()
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	presets, err := cfg.Presets.BuildPresets()
	if err != nil {
		return nil, fmt.Errorf("loading presets: %w", err)
	}

	ctrlOpts, err := cfg.Simulation.ControllerOpts()
	if err != nil {
		return nil, fmt.Errorf("building simulation options: %w", err)
	}
	driverOpts, err := cfg.Simulation.DriverOpts()
	if err != nil {
		return nil, fmt.Errorf("building simulation options: %w", err)
	}

	workers := service.WorkerList{}

	// Session logs go out on the bus only when something relays them
	if cfg.Feed.Enabled {
		bus, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		ctrlOpts = append(ctrlOpts, sim.WithLogSinks(messaging.NewLogPublisher(bus)))

		workers["nats"] = bus
		workers["feed"] = cfg.Feed.buildServer(bus)
	}

	// Create Listeners
	if len(cfg.Listeners) > 0 {
		cm := listener.NewConnectionManager(catalog,
			console.WithPresets(presets),
			console.WithControllerOpts(ctrlOpts...),
			console.WithDriverOpts(driverOpts...),
		)

		listeners := make(service.WorkerList, len(cfg.Listeners))
		for i, l := range cfg.Listeners {
			listener, err := l.BuildListener(cm)
			if err != nil {
				return nil, fmt.Errorf("creating listener %d: %w", i, err)
			}
			listeners[fmt.Sprintf("listener-%d", i)] = listener
		}
		workers["listeners"] = &listeners
	}

	if cfg.Terminal.Enabled {
		term, err := cfg.Terminal.BuildTerminal(catalog, presets, ctrlOpts, driverOpts)
		if err != nil {
			return nil, fmt.Errorf("creating terminal: %w", err)
		}
		workers["terminal"] = term
	}

	return workers, nil
}
