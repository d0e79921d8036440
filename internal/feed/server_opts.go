package feed

type ServerOpt func(*Server)

// WithPort sets the port the feed is served on.
func WithPort(port uint16) ServerOpt {
	return func(s *Server) {
		s.port = port
	}
}

// WithAllowAnyOrigin accepts websocket upgrades from pages on any origin.
func WithAllowAnyOrigin(allow bool) ServerOpt {
	return func(s *Server) {
		s.allowAnyOrigin = allow
	}
}
