package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pixil98/go-rotsim/internal/messaging"
)

const shutdownTimeout = 5 * time.Second

// Subscriber is the message bus the feed relays from.
type Subscriber interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(subject string, data []byte)) (func(), error)
}

// Server relays every session log published on the bus to websocket clients.
type Server struct {
	port           uint16
	allowAnyOrigin bool

	sub      Subscriber
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewServer(sub Subscriber, opts ...ServerOpt) *Server {
	s := &Server{
		port: 8080,
		sub:  sub,
		hub:  NewHub(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if s.allowAnyOrigin {
		s.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}

	return s
}

// Router serves:
//
//	GET /feed            every session
//	GET /feed/{session}  one session
//	GET /healthz         liveness and client count
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/feed", s.handleFeed).Methods("GET")
	r.HandleFunc("/feed/{session}", s.handleFeed).Methods("GET")
	r.HandleFunc("/healthz", s.handleHealth).Methods("GET")
	return r
}

func (s *Server) Start(ctx context.Context) error {
	go s.hub.Run(ctx)

	select {
	case <-s.sub.Ready():
	case <-ctx.Done():
		return nil
	}

	unsub, err := s.sub.Subscribe(messaging.FeedSubject, s.relay)
	if err != nil {
		return fmt.Errorf("subscribing to log feed: %w", err)
	}
	defer unsub()

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.port, err)
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("shutting down feed server", "error", err)
		}
	}()

	slog.InfoContext(ctx, "serving log feed", "port", s.port)

	err = srv.Serve(listener)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving log feed on port %d: %w", s.port, err)
	}
	return nil
}

// relay hands a bus message to the hub.
func (s *Server) relay(subject string, data []byte) {
	session, ok := messaging.SessionFromSubject(subject)
	if !ok {
		return
	}
	s.hub.Broadcast(session, data)
}

func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	session := mux.Vars(r)["session"]

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		slog.Warn("upgrading feed connection", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newClient(s.hub, conn, session)
	if !s.hub.add(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"clients": s.hub.Clients(r.Context()),
	})
}
