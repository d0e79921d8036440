package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-rotsim/internal/messaging"
)

// NatsConfig runs the embedded bus that session logs are published on. It
// only starts when the feed is enabled. Port -1 picks a free port.
type NatsConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`
}

func (n *NatsConfig) validate() error {
	_, err := n.serverOpts()
	return err
}

func (n *NatsConfig) serverOpts() ([]messaging.NatsServerOpt, error) {
	var opts []messaging.NatsServerOpt

	if n.StartTimeout != "" {
		d, err := time.ParseDuration(n.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing nats.start_timeout: %w", err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("nats.start_timeout must be positive")
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}

	switch {
	case n.Port < -1 || n.Port > 65535:
		return nil, fmt.Errorf("nats.port %d is out of range", n.Port)
	case n.Port != 0:
		opts = append(opts, messaging.WithPort(n.Port))
	}

	if n.Host != "" {
		opts = append(opts, messaging.WithHost(n.Host))
	}

	return opts, nil
}

func (n *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	opts, err := n.serverOpts()
	if err != nil {
		return nil, err
	}
	return messaging.NewNatsServer(opts...)
}
