// Package web provides a websocket spectator feed: every simulation tick
// the current level snapshot is broadcast as JSON to all connected
// viewers. Spectators are read-only; nothing they send affects the game.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/inertia/internal/engine"
)

// Server accepts spectator connections and fans snapshots out to them.
type Server struct {
	log      *log.Logger
	upgrader websocket.Upgrader

	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	latest []byte
}

// NewServer creates a spectator server.
func NewServer(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		log: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Handler returns the HTTP handler exposing the /ws endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}

	s.mu.Lock()
	s.conns[conn] = struct{}{}
	// Bring the new spectator up to date immediately
	if s.latest != nil {
		//nolint:errcheck // A failed catch-up write surfaces in the next broadcast
		conn.WriteMessage(websocket.TextMessage, s.latest)
	}
	n := len(s.conns)
	s.mu.Unlock()
	s.log.Info("spectator connected", "viewers", n)

	// Drain the connection; spectators send nothing meaningful, the read
	// loop only detects disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
	s.log.Info("spectator disconnected")
}

// Broadcast sends the snapshot to every connected spectator. Connections
// that fail to accept the write are dropped.
func (s *Server) Broadcast(snap engine.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("web: encoding snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = data
	for conn := range s.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(s.conns, conn)
		}
	}
	return nil
}

// Viewers reports the current spectator count.
func (s *Server) Viewers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

// Close drops all spectator connections.
func (s *Server) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.conns {
		conn.Close()
		delete(s.conns, conn)
	}
}
