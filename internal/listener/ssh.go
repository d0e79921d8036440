package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/pixil98/go-rotsim/internal/console"
	"golang.org/x/crypto/ssh"
)

// SshListener serves a console session on the first shell channel of every
// ssh connection. Clients are not authenticated.
type SshListener struct {
	port    uint16
	cm      *ConnectionManager
	hostKey ssh.Signer
	opts    []console.SessionOpt
}

func NewSshListener(port uint16, cm *ConnectionManager, hostKey ssh.Signer, opts ...console.SessionOpt) *SshListener {
	return &SshListener{
		port:    port,
		cm:      cm,
		hostKey: hostKey,
		opts:    opts,
	}
}

func (l *SshListener) Start(ctx context.Context) error {
	config := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	config.AddHostKey(l.hostKey)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening for ssh on port %d: %w", l.port, err)
	}

	sessions := newConnGroup()
	defer sessions.stop()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	for {
		conn, err := ln.Accept()
		switch {
		case err == nil:
			sessions.goDo(func(ctx context.Context) {
				l.serve(ctx, conn, config)
			})
		case ctx.Err() != nil, errors.Is(err, net.ErrClosed):
			return nil
		default:
			slog.WarnContext(ctx, "accepting ssh connection", "error", err)
		}
	}
}

func (l *SshListener) serve(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.WarnContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()

	slog.InfoContext(ctx, "ssh client connected", "remote", conn.RemoteAddr(), "user", sshConn.User())

	// Closing the connection ends the channel loop below.
	go func() {
		<-ctx.Done()
		sshConn.Close()
	}()
	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "only session channels are supported")
			continue
		}

		ch, requests, err := newChan.Accept()
		if err != nil {
			slog.WarnContext(ctx, "accepting ssh channel", "error", err)
			continue
		}

		extra, ok := awaitShell(ctx, requests)
		if ok {
			opts := append(append([]console.SessionOpt{}, l.opts...), extra...)
			l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch), opts...)
		}
		ch.Close()
	}
}

// awaitShell answers channel requests until the client asks for a shell and
// returns the session options learned on the way. It reports false when the
// requests end first. Clients don't forward input before the shell reply.
func awaitShell(ctx context.Context, requests <-chan *ssh.Request) ([]console.SessionOpt, bool) {
	shell := make(chan []console.SessionOpt, 1)
	go func() {
		defer close(shell)
		var opts []console.SessionOpt
		for req := range requests {
			switch req.Type {
			case "pty-req":
				// No PTY, so the client keeps local echo and line editing.
				// The width still sets where output wraps.
				if w := ptyWidth(req.Payload); w > 0 {
					opts = append(opts, console.WithWidth(w))
				}
				req.Reply(false, nil)
			case "shell":
				req.Reply(true, nil)
				select {
				case shell <- opts:
				default:
				}
			default:
				req.Reply(false, nil)
			}
		}
	}()

	select {
	case opts, ok := <-shell:
		return opts, ok
	case <-ctx.Done():
		return nil, false
	}
}

// ptyRequest is the payload of a "pty-req" channel request (RFC 4254 6.2).
type ptyRequest struct {
	Term          string
	Columns, Rows uint32
	Width, Height uint32
	Modes         string
}

// ptyWidth reads the terminal width in columns from a pty-req payload, or 0
// when it can't.
func ptyWidth(payload []byte) int {
	var req ptyRequest
	if err := ssh.Unmarshal(payload, &req); err != nil {
		return 0
	}
	return int(req.Columns)
}
