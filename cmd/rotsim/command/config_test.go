package command

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pixil98/go-rotsim/internal/game"
	"github.com/pixil98/go-testutil"
)

func validConfig() Config {
	return Config{
		Listeners: []ListenerConfig{{Protocol: ProtocolTelnet, Port: 4000}},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Config)
		expErr string
	}{
		"listener only": {
			mutate: func(*Config) {},
		},
		"nothing to serve": {
			mutate: func(c *Config) { c.Listeners = nil },
			expErr: "enable the terminal or configure at least one listener",
		},
		"terminal without a log file": {
			mutate: func(c *Config) { c.Terminal.Enabled = true },
			expErr: "logging.file is required",
		},
		"unknown built-in preset": {
			mutate: func(c *Config) { c.Terminal.Preset = "turbo" },
			expErr: "terminal.preset",
		},
		"known built-in preset": {
			mutate: func(c *Config) { c.Terminal.Preset = "bis" },
		},
		"listener without a port": {
			mutate: func(c *Config) { c.Listeners[0].Port = 0 },
			expErr: "listener 0: port must be set",
		},
		"bad tick mode": {
			mutate: func(c *Config) { c.Simulation.TickMode = "slow-motion" },
			expErr: "simulation.tick_mode",
		},
		"bad step size": {
			mutate: func(c *Config) { c.Simulation.StepSize = "soon" },
			expErr: "simulation.step_size",
		},
		"negative frame length": {
			mutate: func(c *Config) { c.Simulation.FrameLength = "-1s" },
			expErr: "simulation.frame_length must be positive",
		},
		"negative caster tax": {
			mutate: func(c *Config) { c.Simulation.CasterTax = "-10ms" },
			expErr: "caster_tax cannot be negative",
		},
		"bad log level": {
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			expErr: "logging.level",
		},
		"bad log format": {
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			expErr: "logging.format",
		},
		"missing catalog": {
			mutate: func(c *Config) { c.Catalog.Path = filepath.Join(t.TempDir(), "missing") },
			expErr: "catalog: invalid path",
		},
		"bad nats timeout": {
			mutate: func(c *Config) { c.Nats.StartTimeout = "later" },
			expErr: "parsing nats.start_timeout",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestSimulationConfig_gameConfig(t *testing.T) {
	c := SimulationConfig{SpellSpeed: 2000, CasterTax: "100ms", AnimationLock: "500ms"}

	cfg, err := c.gameConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp := game.DefaultConfig()
	exp.SpellSpeed = 2000
	exp.CasterTax = 100 * time.Millisecond
	exp.AnimationLock = 500 * time.Millisecond
	testutil.AssertEqual(t, "config", cfg, exp)
}

func TestSimulationConfig_ControllerOpts(t *testing.T) {
	tests := map[string]struct {
		config  SimulationConfig
		expOpts int
		expErr  string
	}{
		"defaults": {
			expOpts: 1,
		},
		"everything set": {
			config:  SimulationConfig{TickMode: "manual", StepSize: "250ms", SkillExpiry: "1s"},
			expOpts: 4,
		},
		"bad mode": {
			config: SimulationConfig{TickMode: "later"},
			expErr: "unknown tick mode",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			opts, err := tt.config.ControllerOpts()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "options", len(opts), tt.expOpts)
		})
	}
}

func TestBuildWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Feed.Enabled = true
	cfg.Nats.Port = -1

	workers, err := BuildWorkers(&cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"nats", "feed", "listeners"} {
		_, ok := workers[name]
		testutil.AssertEqual(t, "worker "+name, ok, true)
	}
	_, ok := workers["terminal"]
	testutil.AssertEqual(t, "terminal", ok, false)
}

func TestBuildWorkers_wrongConfig(t *testing.T) {
	_, err := BuildWorkers("config")
	testutil.AssertErrorContains(t, err, "unable to cast config")
}

func TestListenerConfig_BuildListener(t *testing.T) {
	tests := map[string]struct {
		config ListenerConfig
		expErr string
	}{
		"telnet": {
			config: ListenerConfig{Protocol: ProtocolTelnet, Port: 4000, Color: true, Width: 100},
		},
		"ssh with an ephemeral key": {
			config: ListenerConfig{Protocol: ProtocolSSH, Port: 4022},
		},
		"ssh with a missing key": {
			config: ListenerConfig{Protocol: ProtocolSSH, Port: 4022, HostKeyPath: "/does/not/exist"},
			expErr: "reading host key",
		},
		"unknown protocol": {
			config: ListenerConfig{Protocol: Protocol(9), Port: 4000},
			expErr: "unknown listener protocol",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w, err := tt.config.BuildListener(nil)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if w == nil {
				t.Fatal("expected a listener")
			}
		})
	}
}

func TestProtocol_UnmarshalText(t *testing.T) {
	var p Protocol
	if err := p.UnmarshalText([]byte("ssh")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "protocol", p, ProtocolSSH)

	testutil.AssertErrorContains(t, p.UnmarshalText([]byte("gopher")), "unknown listener protocol")
}
