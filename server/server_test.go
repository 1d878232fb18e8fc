package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdemsrv/account"
	"holdemsrv/player"
	"holdemsrv/room"
)

func newTestServer() *Server {
	chips := account.NewMemStore(10_000)
	players := player.NewRegistry()
	rooms := room.NewRegistry(chips)
	return NewServer(players, rooms)
}

func TestGetRooms_ListsCreatedRooms(t *testing.T) {
	s := newTestServer()
	s.rooms.CreateRoom(room.KindChat, "lobby")
	s.rooms.CreateRoom(room.KindPoker, "high stakes")

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var out []RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 2)

	kinds := map[string]string{}
	for _, rm := range out {
		kinds[rm.Name] = rm.Kind
	}
	assert.Equal(t, "chat", kinds["lobby"])
	assert.Equal(t, "poker", kinds["high stakes"])
}

func TestCreateRoom_OverREST(t *testing.T) {
	s := newTestServer()

	body := strings.NewReader(`{"name":"table two","kind":"poker"}`)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var out RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "table two", out.Name)
	assert.Equal(t, "poker", out.Kind)
	assert.NotNil(t, s.rooms.Get(out.ID))
}

func TestCreateRoom_RejectsUnknownKind(t *testing.T) {
	s := newTestServer()

	body := strings.NewReader(`{"name":"x","kind":"bingo"}`)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRoom_RejectsBadBody(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/rooms", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
