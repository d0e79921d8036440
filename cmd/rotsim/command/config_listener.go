package command

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-rotsim/internal/console"
	"github.com/pixil98/go-rotsim/internal/listener"
	"github.com/pixil98/go-service"
	"golang.org/x/crypto/ssh"
)

type Protocol int

const (
	ProtocolTelnet Protocol = iota
	ProtocolSSH
)

var protocolNames = map[string]Protocol{
	"telnet": ProtocolTelnet,
	"ssh":    ProtocolSSH,
}

func (p *Protocol) UnmarshalText(text []byte) error {
	v, ok := protocolNames[string(text)]
	if !ok {
		return fmt.Errorf("unknown listener protocol: %s", text)
	}
	*p = v
	return nil
}

// ListenerConfig serves the line console to remote users. Every connection
// plays its own game.
type ListenerConfig struct {
	Protocol Protocol `json:"protocol"`
	Port     uint16   `json:"port"`
	// Color turns on ANSI colours in log lines.
	Color bool `json:"color"`
	// Width is where output wraps. SSH clients that send their terminal size
	// override it.
	Width       int    `json:"width"`
	HostKeyPath string `json:"host_key_path,omitempty"`
}

func (cl *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if cl.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}
	if cl.Width < 0 {
		el.Add(fmt.Errorf("width cannot be negative"))
	}
	if cl.Protocol != ProtocolSSH && cl.HostKeyPath != "" {
		el.Add(fmt.Errorf("host_key_path only applies to ssh listeners"))
	}

	return el.Err()
}

func (cl *ListenerConfig) sessionOpts() []console.SessionOpt {
	opts := []console.SessionOpt{console.WithColor(cl.Color)}
	if cl.Width > 0 {
		opts = append(opts, console.WithWidth(cl.Width))
	}
	return opts
}

func (cl *ListenerConfig) BuildListener(cm *listener.ConnectionManager) (service.Worker, error) {
	switch cl.Protocol {
	case ProtocolTelnet:
		return listener.NewTelnetListener(cl.Port, cm, cl.sessionOpts()...), nil
	case ProtocolSSH:
		hostKey, err := cl.hostKey()
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(cl.Port, cm, hostKey, cl.sessionOpts()...), nil
	default:
		return nil, fmt.Errorf("unknown listener protocol: %v", cl.Protocol)
	}
}

// hostKey reads the configured key, or makes a throwaway one that changes on
// every start.
func (cl *ListenerConfig) hostKey() (ssh.Signer, error) {
	if cl.HostKeyPath == "" {
		slog.Warn("ssh listener has no host_key_path, using an ephemeral key", "port", cl.Port)
		_, key, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generating ephemeral key: %w", err)
		}
		return ssh.NewSignerFromKey(key)
	}

	pem, err := os.ReadFile(cl.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading host key %q: %w", cl.HostKeyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(pem)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", cl.HostKeyPath, err)
	}
	return signer, nil
}
