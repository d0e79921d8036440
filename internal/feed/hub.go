package feed

import (
	"context"
	"log/slog"
)

// message is one log entry on its way to the browsers.
type message struct {
	session string
	data    []byte
}

// Hub maintains the set of active clients and broadcasts messages to them.
// Only Run touches the client set.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan message
	register   chan *client
	unregister chan *client
	count      chan chan int
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan message, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		count:      make(chan chan int),
		done:       make(chan struct{}),
	}
}

// Run handles registrations and broadcasts until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
			slog.DebugContext(ctx, "feed client connected", "session", c.session)
		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.send)
				slog.DebugContext(ctx, "feed client disconnected", "session", c.session)
			}
		case m := <-h.broadcast:
			for c := range h.clients {
				if !c.wants(m.session) {
					continue
				}
				select {
				case c.send <- m.data:
				default:
					// Too slow to keep up; drop it.
					close(c.send)
					delete(h.clients, c)
				}
			}
		case reply := <-h.count:
			reply <- len(h.clients)
		}
	}
}

func (h *Hub) add(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues data for every client following session. It never blocks
// the publisher; messages are dropped when the hub is backed up.
func (h *Hub) Broadcast(session string, data []byte) {
	select {
	case h.broadcast <- message{session: session, data: data}:
	default:
		slog.Warn("feed hub backed up, dropping log entry", "session", session)
	}
}

// Clients is the number of connected clients.
func (h *Hub) Clients(ctx context.Context) int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	case <-ctx.Done():
		return 0
	}
}
