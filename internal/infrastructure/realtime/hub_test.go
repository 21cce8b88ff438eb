package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn conexión en memoria: ReadMessage bloquea hasta Close.
type fakeConn struct {
	mu      sync.Mutex
	written [][]byte
	types   []int
	frames  chan []byte
	closed  chan struct{}
	once    sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{frames: make(chan []byte, 64), closed: make(chan struct{})}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	<-f.closed
	return 0, nil, errors.New("closed")
}

func (f *fakeConn) WriteMessage(mt int, data []byte) error {
	f.mu.Lock()
	f.written = append(f.written, data)
	f.types = append(f.types, mt)
	f.mu.Unlock()
	if mt == websocket.TextMessage {
		f.frames <- data
	}
	return nil
}

func (f *fakeConn) Close() error {
	f.once.Do(func() { close(f.closed) })
	return nil
}

type usersStub map[string]*entity.Utilisateur

func (u usersStub) LookupUser(_ context.Context, id string) (*entity.Utilisateur, error) {
	return u[id], nil
}

var users = usersStub{
	"admin-1": {ID: "admin-1", UserType: entity.UserTypeSousAdmin, Status: entity.StatusActif},
	"chauf-1": {ID: "chauf-1", UserType: entity.UserTypeChauffeur, Status: entity.StatusActif},
	"off-1":   {ID: "off-1", UserType: entity.UserTypeSousAdmin, Status: entity.StatusInactif},
}

func serve(t *testing.T, h *Hub, userID string) (*fakeConn, chan struct{}) {
	t.Helper()
	conn := newFakeConn()
	done := make(chan struct{})
	go func() {
		h.Serve(context.Background(), userID, conn)
		close(done)
	}()
	return conn, done
}

func waitRoom(t *testing.T, h *Hub, room string, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.RoomSize(room) == n }, time.Second, 5*time.Millisecond)
}

func TestServe_UsuarioActivoEntraEnSalas(t *testing.T) {
	h := NewHub(users, nil, zerolog.Nop())

	conn, done := serve(t, h, "admin-1")
	waitRoom(t, h, ports.RoomAdmins, 1)

	assert.Equal(t, 1, h.RoomSize("admin-1"))
	assert.Equal(t, 0, h.RoomSize(ports.RoomChauffeurs))

	_ = conn.Close()
	<-done
	assert.Equal(t, 0, h.RoomSize(ports.RoomAdmins))
	assert.Equal(t, 0, h.RoomSize("admin-1"))
}

func TestServe_UsuarioInactivoOInexistenteSeCierra(t *testing.T) {
	for _, id := range []string{"off-1", "ghost"} {
		t.Run(id, func(t *testing.T) {
			h := NewHub(users, nil, zerolog.Nop())

			conn, done := serve(t, h, id)
			<-done

			require.Len(t, conn.types, 1)
			assert.Equal(t, websocket.CloseMessage, conn.types[0])
			assert.Equal(t, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "usuario no autorizado"), conn.written[0])
			assert.Equal(t, 0, h.RoomSize(ports.RoomAdmins))
			assert.Equal(t, 0, h.RoomSize(id))
		})
	}
}

func TestSendToRoom_SoloMiembros(t *testing.T) {
	h := NewHub(users, nil, zerolog.Nop())
	admin, adminDone := serve(t, h, "admin-1")
	chauf, chaufDone := serve(t, h, "chauf-1")
	waitRoom(t, h, ports.RoomAdmins, 1)
	waitRoom(t, h, ports.RoomChauffeurs, 1)

	h.SendToRoom(ports.RoomAdmins, ports.EventMissionCompleted, ports.MissionCompletedPayload{
		MissionID: 42, MissionCode: "M-042", ChauffeurName: "Paul Durand",
	})

	select {
	case raw := <-admin.frames:
		var f struct {
			Event string                        `json:"event"`
			Data  ports.MissionCompletedPayload `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &f))
		assert.Equal(t, "mission_completed", f.Event)
		assert.Equal(t, int64(42), f.Data.MissionID)
		assert.Equal(t, "Paul Durand", f.Data.ChauffeurName)
	case <-time.After(time.Second):
		t.Fatal("el admin no recibió el frame")
	}
	select {
	case <-chauf.frames:
		t.Fatal("el conductor no debería recibir eventos de admins")
	case <-time.After(50 * time.Millisecond):
	}

	_ = admin.Close()
	_ = chauf.Close()
	<-adminDone
	<-chaufDone
}

func TestSendToRoom_SalaVaciaNoFalla(t *testing.T) {
	h := NewHub(users, nil, zerolog.Nop())

	assert.NotPanics(t, func() { h.SendToRoom("nadie", "x", map[string]int{"a": 1}) })
}

func TestSendToRoom_BufferLlenoDescarta(t *testing.T) {
	h := NewHub(users, nil, zerolog.Nop())
	c := &client{userID: "x", send: make(chan []byte, 1), rooms: []string{"r"}}
	h.join(c)

	h.SendToRoom("r", "e", 1)
	h.SendToRoom("r", "e", 2)

	assert.Len(t, c.send, 1)
	assert.JSONEq(t, `{"event":"e","data":1}`, string(<-c.send))
}

func TestShutdown_CierraConexiones(t *testing.T) {
	h := NewHub(users, nil, zerolog.Nop())
	_, done := serve(t, h, "chauf-1")
	waitRoom(t, h, ports.RoomChauffeurs, 1)

	h.Shutdown()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Serve no terminó tras Shutdown")
	}
	assert.Equal(t, 0, h.RoomSize(ports.RoomChauffeurs))
}
