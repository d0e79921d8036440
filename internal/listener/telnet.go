package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"syscall"

	"github.com/iammegalith/telnet"
	"github.com/pixil98/go-rotsim/internal/console"
)

// TelnetListener serves a console session to every telnet connection.
type TelnetListener struct {
	port uint16
	cm   *ConnectionManager
	opts []console.SessionOpt
}

func NewTelnetListener(port uint16, cm *ConnectionManager, opts ...console.SessionOpt) *TelnetListener {
	return &TelnetListener{
		port: port,
		cm:   cm,
		opts: opts,
	}
}

func (l *TelnetListener) Start(ctx context.Context) error {
	sessions := newConnGroup()
	svr := telnet.NewServer(fmt.Sprintf(":%d", l.port), telnetHandlerFunc(func(conn *telnet.Connection) {
		sessions.do(func(ctx context.Context) {
			l.serve(ctx, conn)
		})
	}))

	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		select {
		case <-ctx.Done():
			svr.Stop()
			sessions.stop()
		case <-stopped:
		}
	}()

	slog.InfoContext(ctx, "listening for telnet", "port", l.port)

	err := svr.ListenAndServe()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, syscall.EADDRINUSE):
		return fmt.Errorf("telnet port %d is already in use", l.port)
	default:
		return fmt.Errorf("serving telnet on port %d: %w", l.port, err)
	}
}

func (l *TelnetListener) serve(ctx context.Context, conn *telnet.Connection) {
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Warn("closing telnet connection", "error", err)
		}
	}()

	l.cm.AcceptConnection(ctx, newCRLFReadWriter(conn), l.opts...)
}

// telnetHandlerFunc adapts a function to the telnet server's handler.
type telnetHandlerFunc func(conn *telnet.Connection)

func (f telnetHandlerFunc) HandleTelnet(conn *telnet.Connection) {
	f(conn)
}
