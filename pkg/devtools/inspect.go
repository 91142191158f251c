// Package devtools streams navigation events to inspector clients over
// WebSocket. It is development tooling: attach an InspectServer to a
// router and every broadcast Location is mirrored to all connected
// clients as JSON.
package devtools

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wayfind-dev/wayfind/pkg/router"
)

// LocationMessage is sent to inspector clients for every broadcast.
// Matched is false (and the location fields empty) when the broadcast
// carried a nil Location.
type LocationMessage struct {
	Type       string            `json:"type"`
	Matched    bool              `json:"matched"`
	Path       string            `json:"path,omitempty"`
	Name       string            `json:"name,omitempty"`
	Pathname   string            `json:"pathname,omitempty"`
	Search     string            `json:"search,omitempty"`
	Hash       string            `json:"hash,omitempty"`
	HashSearch string            `json:"hashSearch,omitempty"`
	State      map[string]string `json:"state,omitempty"`
}

const messageTypeLocation = "location"

// InspectServer manages WebSocket connections for navigation inspection.
type InspectServer struct {
	clients    map[*websocket.Conn]bool
	mu         sync.RWMutex
	upgrader   websocket.Upgrader
	unregister func()
}

// NewInspectServer creates a new inspect server.
func NewInspectServer() *InspectServer {
	return &InspectServer{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins in dev
			},
		},
	}
}

// Attach subscribes the server to a router's location broadcasts.
func (s *InspectServer) Attach(r *router.Router) error {
	unregister, err := r.Register(s.observe)
	if err != nil {
		return err
	}
	s.unregister = unregister
	return nil
}

// Detach unsubscribes from the router. Connected clients stay connected
// but receive no further messages.
func (s *InspectServer) Detach() {
	if s.unregister != nil {
		s.unregister()
		s.unregister = nil
	}
}

// observe converts a broadcast Location into a client message.
func (s *InspectServer) observe(loc *router.Location) {
	msg := LocationMessage{Type: messageTypeLocation}
	if loc != nil {
		msg.Matched = true
		msg.Path = loc.Path
		msg.Name = loc.Name
		msg.Pathname = loc.Pathname
		msg.Search = loc.Search
		msg.Hash = loc.Hash
		msg.HashSearch = loc.HashSearch
		msg.State = loc.State
	}
	s.broadcast(msg)
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (s *InspectServer) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := s.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close()
}

// ClientCount returns the number of connected inspector clients.
func (s *InspectServer) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// broadcast sends a message to all connected clients.
func (s *InspectServer) broadcast(msg LocationMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			// Client is gone, clean up
			conn.Close()
			delete(s.clients, conn)
		}
	}
}
