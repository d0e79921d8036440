package listener

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/pixil98/go-rotsim/internal/console"
	"github.com/pixil98/go-rotsim/internal/skill"
)

// ConnectionManager gives every connection its own console session over a
// shared catalog.
type ConnectionManager struct {
	catalog *skill.Catalog
	opts    []console.SessionOpt
	active  atomic.Int64
}

func NewConnectionManager(c *skill.Catalog, opts ...console.SessionOpt) *ConnectionManager {
	return &ConnectionManager{
		catalog: c,
		opts:    opts,
	}
}

// AcceptConnection plays a session on conn until it ends. Extra options
// apply to this connection only.
func (m *ConnectionManager) AcceptConnection(ctx context.Context, conn io.ReadWriter, extra ...console.SessionOpt) {
	m.active.Add(1)
	defer m.active.Add(-1)

	opts := append(slices.Clone(m.opts), extra...)
	s := console.NewSession(conn, m.catalog, opts...)
	if err := s.Play(ctx); err != nil {
		slog.WarnContext(ctx, "console session", "session", s.Id(), "error", err)
	}
}

// Active is the number of sessions currently being played.
func (m *ConnectionManager) Active() int {
	return int(m.active.Load())
}
