package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixil98/go-errors"
)

type LoggingConfig struct {
	Level string `json:"level"`
	// File receives the log instead of stderr. The terminal owns the screen,
	// so it needs one.
	File   string `json:"file"`
	Format string `json:"format"`
}

func (c *LoggingConfig) validate() error {
	el := errors.NewErrorList()

	if c.Level != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(c.Level)); err != nil {
			el.Add(fmt.Errorf("parsing logging.level: %w", err))
		}
	}
	switch c.Format {
	case "", "text", "json":
	default:
		el.Add(fmt.Errorf("logging.format must be text or json"))
	}

	return el.Err()
}

// BuildLogger returns the application logger. A log file stays open for the
// life of the process.
func (c *LoggingConfig) BuildLogger() (*slog.Logger, error) {
	var level slog.Level
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, fmt.Errorf("parsing logging.level: %w", err)
		}
	}

	var w io.Writer = os.Stderr
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %q: %w", c.File, err)
		}
		w = f
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
