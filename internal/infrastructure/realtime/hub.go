// Package realtime broadcaster de notificaciones por salas sobre WebSocket.
package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/infrastructure/observability"
	"github.com/rs/zerolog"
)

var _ ports.Notifier = (*Hub)(nil)

const defaultBufferSize = 32

// Conn lo que el hub usa de una conexión WebSocket (*websocket.Conn lo cumple).
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// UserLookup carga la cuenta local del subject del token; nil si no existe.
type UserLookup interface {
	LookupUser(ctx context.Context, userID string) (*entity.Utilisateur, error)
}

// Frame formato de cada mensaje enviado a los clientes.
type Frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type client struct {
	userID string
	conn   Conn
	send   chan []byte
	rooms  []string
}

// Hub mantiene las salas y reparte eventos. Entrega at-most-once: un cliente con el
// buffer lleno pierde el frame.
type Hub struct {
	users      UserLookup
	metrics    *observability.Metrics
	log        zerolog.Logger
	bufferSize int

	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

// NewHub construye el hub. metrics puede ser nil.
func NewHub(users UserLookup, metrics *observability.Metrics, log zerolog.Logger) *Hub {
	return &Hub{
		users:      users,
		metrics:    metrics,
		log:        log,
		bufferSize: defaultBufferSize,
		rooms:      make(map[string]map[*client]struct{}),
	}
}

// roomsFor sala personal más sala de rol.
func roomsFor(u *entity.Utilisateur) []string {
	rooms := []string{u.ID}
	switch u.UserType {
	case entity.UserTypeSousAdmin:
		rooms = append(rooms, ports.RoomAdmins)
	case entity.UserTypeChauffeur:
		rooms = append(rooms, ports.RoomChauffeurs)
	}
	return rooms
}

// Serve atiende una conexión ya autenticada hasta que se cierra.
// Si la cuenta no existe o está inactiva la conexión se cierra con policy violation
// sin entrar en ninguna sala.
func (h *Hub) Serve(ctx context.Context, userID string, conn Conn) {
	user, err := h.users.LookupUser(ctx, userID)
	if err != nil || user == nil || !user.IsActive() {
		reason := "usuario no autorizado"
		if err != nil {
			h.log.Error().Err(err).Str("user_id", userID).Msg("ws: lookup de usuario falló")
			reason = "error interno"
		}
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason))
		_ = conn.Close()
		return
	}

	c := &client{userID: user.ID, conn: conn, send: make(chan []byte, h.bufferSize), rooms: roomsFor(user)}
	h.join(c)
	h.metrics.WSConnected()
	h.log.Debug().Str("user_id", c.userID).Strs("rooms", c.rooms).Msg("ws: conectado")

	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range c.send {
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				_ = conn.Close()
				return
			}
		}
	}()

	// Los clientes no envían nada útil; leer solo detecta el cierre.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.leave(c)
	close(c.send)
	<-done
	_ = conn.Close()
	h.metrics.WSDisconnected()
	h.log.Debug().Str("user_id", c.userID).Msg("ws: desconectado")
}

func (h *Hub) join(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range c.rooms {
		members, ok := h.rooms[r]
		if !ok {
			members = make(map[*client]struct{})
			h.rooms[r] = members
		}
		members[c] = struct{}{}
	}
}

func (h *Hub) leave(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range c.rooms {
		delete(h.rooms[r], c)
		if len(h.rooms[r]) == 0 {
			delete(h.rooms, r)
		}
	}
}

// SendToRoom publica un evento a todos los miembros de la sala. No bloquea.
func (h *Hub) SendToRoom(room, event string, payload any) {
	msg, err := json.Marshal(Frame{Event: event, Data: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("ws: payload no serializable")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- msg:
			h.metrics.NotificationSent(event)
		default:
			h.metrics.NotificationDropped(event)
			h.log.Warn().Str("user_id", c.userID).Str("event", event).Msg("ws: buffer lleno, frame descartado")
		}
	}
}

// RoomSize número de conexiones en la sala.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Shutdown cierra todas las conexiones; cada Serve termina y limpia sus salas.
func (h *Hub) Shutdown() {
	h.mu.RLock()
	defer h.mu.RUnlock()
	seen := make(map[*client]struct{})
	for _, members := range h.rooms {
		for c := range members {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			_ = c.conn.Close()
		}
	}
}
