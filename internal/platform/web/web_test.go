package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

// Mines at (1,1) and (3,3): (2,2) is a 2, (0,4) opens a large region.
func testPlacer() mines.Placer {
	return mines.FixedPlacer{mines.C(1, 1), mines.C(3, 3)}
}

var tiny = config.Preset{Name: "custom", Label: "Custom", Rows: 5, Cols: 5, Mines: 2}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := DefaultServerConfig()
	cfg.Hub.Placer = testPlacer
	s := NewServer(cfg, log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func do(t *testing.T, method, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func decode(t *testing.T, body []byte) MoveResponse {
	t.Helper()
	var resp MoveResponse
	require.NoError(t, json.Unmarshal(body, &resp), string(body))
	return resp
}

func create(t *testing.T, ts *httptest.Server) MoveResponse {
	t.Helper()
	resp, body := do(t, http.MethodPost, ts.URL+"/sessions?rows=5&cols=5&mines=2")
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	return decode(t, body)
}

func TestHubLifecycle(t *testing.T) {
	h := NewHub(HubConfig{Placer: testPlacer}, log.New(io.Discard))

	created, err := h.Create(tiny)
	require.NoError(t, err)
	assert.Equal(t, 1, h.Len())
	assert.Equal(t, mines.PhasePending, created.Board.Phase)

	moved, err := h.Reveal(created.ID, 2, 2)
	require.NoError(t, err)
	assert.True(t, moved.Changed)
	assert.Equal(t, []mines.Coord{mines.C(2, 2)}, moved.Revealed)
	assert.True(t, moved.Board.FirstMoveDone)

	flagged, err := h.Flag(created.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, flagged.Board.FlagsPlaced)

	restarted, err := h.Restart(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, restarted.ID)
	assert.Equal(t, mines.PhasePending, restarted.Board.Phase)
	assert.Zero(t, restarted.Board.FlagsPlaced)

	require.NoError(t, h.Delete(created.ID))
	assert.ErrorIs(t, h.Delete(created.ID), ErrSessionNotFound)
	_, err = h.Get(created.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestHubSessionsAreIndependent(t *testing.T) {
	h := NewHub(HubConfig{Placer: testPlacer}, log.New(io.Discard))

	a, err := h.Create(tiny)
	require.NoError(t, err)
	b, err := h.Create(tiny)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)

	_, err = h.Reveal(a.ID, 1, 1)
	require.NoError(t, err)

	got, err := h.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, mines.PhasePending, got.Board.Phase)
}

func TestHubEvict(t *testing.T) {
	h := NewHub(HubConfig{TTL: time.Minute, Placer: testPlacer}, log.New(io.Discard))
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return now }

	old, err := h.Create(tiny)
	require.NoError(t, err)

	now = now.Add(50 * time.Second)
	fresh, err := h.Create(tiny)
	require.NoError(t, err)

	assert.Equal(t, 1, h.Evict(now.Add(20*time.Second)))
	_, err = h.Get(old.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = h.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestCreateSession(t *testing.T) {
	_, ts := newTestServer(t)

	tests := []struct {
		name   string
		query  string
		status int
		rows   int
	}{
		{"default preset", "", http.StatusCreated, 9},
		{"named preset", "?preset=hard", http.StatusCreated, 16},
		{"custom", "?rows=5&cols=6&mines=3", http.StatusCreated, 5},
		{"custom too dense", "?rows=5&cols=5&mines=20", http.StatusBadRequest, 0},
		{"custom too small", "?rows=2&cols=5&mines=1", http.StatusBadRequest, 0},
		{"unknown preset", "?preset=insane", http.StatusBadRequest, 0},
		{"not a number", "?rows=abc", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, http.MethodPost, ts.URL+"/sessions"+tt.query)
			require.Equal(t, tt.status, resp.StatusCode, string(body))
			if tt.status != http.StatusCreated {
				var e errorResponse
				require.NoError(t, json.Unmarshal(body, &e))
				assert.NotEmpty(t, e.Error)
				return
			}
			got := decode(t, body)
			assert.Equal(t, tt.rows, got.Board.Rows)
			assert.Equal(t, "/sessions/"+got.ID.String(), resp.Header.Get("Location"))
		})
	}
}

func TestRevealAndFlag(t *testing.T) {
	_, ts := newTestServer(t)
	created := create(t, ts)
	base := ts.URL + "/sessions/" + created.ID.String()

	resp, body := do(t, http.MethodPost, base+"/reveal?row=0&col=4")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	moved := decode(t, body)
	require.NotEmpty(t, moved.Events)
	assert.Equal(t, mines.EventMinesPlaced, moved.Events[0].Kind)
	assert.Equal(t, mines.PhaseActive, moved.Board.Phase)

	resp, body = do(t, http.MethodPost, base+"/flag?row=1&col=1")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	flagged := decode(t, body)
	assert.Equal(t, mines.CellFlagged, flagged.Board.Cells[1][1].State)
	assert.Equal(t, 1, flagged.Board.MinesRemaining)

	resp, body = do(t, http.MethodPost, base+"/reveal?row=3&col=3")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	lost := decode(t, body)
	assert.Equal(t, mines.PhaseLost, lost.Board.Phase)
	assert.True(t, lost.Board.Cells[3][3].Exploded)
	assert.Equal(t, mines.CellFlaggedMine, lost.Board.Cells[1][1].State)

	resp, body = do(t, http.MethodGet, base)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, lost.Board.Version, decode(t, body).Board.Version)
}

func TestRequestErrors(t *testing.T) {
	_, ts := newTestServer(t)
	created := create(t, ts)
	base := ts.URL + "/sessions/" + created.ID.String()

	tests := []struct {
		name   string
		method string
		url    string
		status int
	}{
		{"out of bounds", http.MethodPost, base + "/reveal?row=5&col=0", http.StatusBadRequest},
		{"negative", http.MethodPost, base + "/flag?row=-1&col=0", http.StatusBadRequest},
		{"missing col", http.MethodPost, base + "/reveal?row=1", http.StatusBadRequest},
		{"unknown session", http.MethodGet, ts.URL + "/sessions/" + uuid.NewString(), http.StatusNotFound},
		{"malformed id", http.MethodGet, ts.URL + "/sessions/42", http.StatusNotFound},
		{"wrong method", http.MethodGet, base + "/reveal?row=1&col=1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, tt.method, tt.url)
			assert.Equal(t, tt.status, resp.StatusCode, string(body))
		})
	}
}

func TestRestartAndDelete(t *testing.T) {
	_, ts := newTestServer(t)
	created := create(t, ts)
	base := ts.URL + "/sessions/" + created.ID.String()

	do(t, http.MethodPost, base+"/reveal?row=2&col=2")

	resp, body := do(t, http.MethodPost, base+"/restart")
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	restarted := decode(t, body)
	assert.Equal(t, mines.PhasePending, restarted.Board.Phase)
	assert.False(t, restarted.Board.FirstMoveDone)

	resp, _ = do(t, http.MethodDelete, base)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, base)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPresetsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := do(t, http.MethodGet, ts.URL+"/presets")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got config.Presets
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, config.DefaultPresets(), got)
}

func TestCORSPreflight(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/sessions", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebsocket(t *testing.T) {
	_, ts := newTestServer(t)
	created := create(t, ts)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sessions/" + created.ID.String() + "/ws"
	c, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer c.Close()

	send := func(cmd string) map[string]any {
		t.Helper()
		require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte(cmd)))
		var reply map[string]any
		require.NoError(t, c.ReadJSON(&reply))
		return reply
	}

	reply := send("g")
	assert.Equal(t, created.ID.String(), reply["id"])

	var moved MoveResponse
	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("o 2 2")))
	require.NoError(t, c.ReadJSON(&moved))
	assert.Equal(t, []mines.Coord{mines.C(2, 2)}, moved.Revealed)
	assert.Equal(t, mines.CellRevealed, moved.Board.Cells[2][2].State)

	reply = send("f 9 9")
	assert.Contains(t, reply["error"], "out of bounds")

	reply = send("x")
	assert.Contains(t, reply["error"], "unknown command")

	reply = send("o 1")
	assert.Contains(t, reply["error"], "takes 2 arguments")

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("f 1 1\nn")))
	var flagged, restarted MoveResponse
	require.NoError(t, c.ReadJSON(&flagged))
	require.NoError(t, c.ReadJSON(&restarted))
	assert.Equal(t, 1, flagged.Board.FlagsPlaced)
	assert.Equal(t, mines.PhasePending, restarted.Board.Phase)
}

func TestWebsocketUnknownSession(t *testing.T) {
	_, ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sessions/" + uuid.NewString() + "/ws"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
