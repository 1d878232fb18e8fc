package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"holdemsrv/player"
	"holdemsrv/room"
	"holdemsrv/wire"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // In production, implement proper origin checks
	},
}

// Server bridges websocket clients to the room registry: one read pump and
// one write pump per connection, binary frames carrying wire packets.
type Server struct {
	players *player.Registry
	rooms   *room.Registry
}

// RoomResponse is one room in the REST listing.
type RoomResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	PlayerCount int    `json:"playerCount"`
}

// CreateRoomRequest is the REST body for creating a room.
type CreateRoomRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// NewServer wires the transport to the player arena and room registry.
func NewServer(players *player.Registry, rooms *room.Registry) *Server {
	return &Server{players: players, rooms: rooms}
}

// Handler builds the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/ws", s.handleWebSocket)
	r.Get("/api/rooms", s.handleGetRooms)
	r.Post("/api/rooms", s.handleCreateRoom)

	return r
}

// Start serves until the listener fails.
func (s *Server) Start(addr string) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleWebSocket upgrades the connection, registers a player and starts
// the pumps. The player name comes from the ?name= query parameter.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "guest"
	}
	connID := uuid.NewString()
	p := s.players.Create(name, connID)
	log.Printf("client %s connected from %s as player %d (%q)", connID, r.RemoteAddr, p.ID, name)

	go s.readPump(p, conn)
	go s.writePump(p, conn)

	hello := wire.NewPacket(wire.MsgConnect)
	hello.WriteInt32(int32(p.ID))
	hello.WriteString(p.Name)
	p.Send(hello)
}

// readPump parses inbound binary frames and feeds them to the registry
// dispatch. The connection is torn down on the first bad frame.
func (s *Server) readPump(p *player.Player, conn *websocket.Conn) {
	defer func() {
		s.rooms.DropPlayer(p)
		s.players.Remove(p.ID)
		conn.Close()
		log.Printf("player %d disconnected", p.ID)
	}()

	conn.SetReadLimit(wire.MaxPacketLen)

	for {
		msgType, frame, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("player %d read: %v", p.ID, err)
			}
			return
		}
		if msgType != websocket.BinaryMessage {
			continue
		}

		pkt, err := wire.Parse(frame)
		if err != nil {
			log.Printf("player %d sent bad frame: %v", p.ID, err)
			return
		}

		s.rooms.HandleMessage(p, pkt)
	}
}

// writePump drains the player's outbound queue onto the socket.
func (s *Server) writePump(p *player.Player, conn *websocket.Conn) {
	defer conn.Close()

	for frame := range p.Out() {
		if err := conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
			log.Printf("player %d write: %v", p.ID, err)
			return
		}
	}
	conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// handleGetRooms lists the live rooms.
func (s *Server) handleGetRooms(w http.ResponseWriter, _ *http.Request) {
	rooms := s.rooms.Rooms()
	out := make([]RoomResponse, 0, len(rooms))
	for _, rm := range rooms {
		out = append(out, RoomResponse{
			ID:          rm.ID(),
			Name:        rm.Name(),
			Kind:        rm.Kind().String(),
			PlayerCount: rm.PlayerCount(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// handleCreateRoom creates a room over REST; kind is "chat" or "poker".
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var kind room.Kind
	switch req.Kind {
	case "chat":
		kind = room.KindChat
	case "poker":
		kind = room.KindPoker
	default:
		http.Error(w, "unknown room kind", http.StatusBadRequest)
		return
	}

	rm, code := s.rooms.CreateRoom(kind, req.Name)
	if code != wire.ErrNone {
		http.Error(w, "could not create room", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(RoomResponse{
		ID:   rm.ID(),
		Name: rm.Name(),
		Kind: rm.Kind().String(),
	})
}
