package command

import (
	"github.com/pixil98/go-rotsim/internal/feed"
)

// FeedConfig serves every session log over websockets.
type FeedConfig struct {
	Enabled        bool   `json:"enabled"`
	Port           uint16 `json:"port"`
	AllowAnyOrigin bool   `json:"allow_any_origin"`
}

func (c *FeedConfig) validate() error {
	return nil
}

func (c *FeedConfig) buildServer(sub feed.Subscriber) *feed.Server {
	opts := []feed.ServerOpt{feed.WithAllowAnyOrigin(c.AllowAnyOrigin)}
	if c.Port != 0 {
		opts = append(opts, feed.WithPort(c.Port))
	}
	return feed.NewServer(sub, opts...)
}
