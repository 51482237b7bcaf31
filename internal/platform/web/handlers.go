package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/schema"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/mines"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

// NewSessionParams picks a board: a preset name, or rows, cols and mines
// for a custom one.
type NewSessionParams struct {
	Preset string `schema:"preset"`
	Rows   int    `schema:"rows"`
	Cols   int    `schema:"cols"`
	Mines  int    `schema:"mines"`
}

func (p NewSessionParams) custom() bool {
	return p.Rows != 0 || p.Cols != 0 || p.Mines != 0
}

// CellParams addresses one cell.
type CellParams struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func sendJSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}

// statusOf maps engine and hub errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, mines.ErrInvalidConfiguration),
		errors.Is(err, mines.ErrOutOfBounds),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("bad request")

func (s *Server) sendError(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	if werr := sendJSON(w, status, errorResponse{Error: err.Error()}); werr != nil {
		s.logger.Error("write response", "error", werr)
	}
}

func (s *Server) send(w http.ResponseWriter, status int, v any) {
	if err := sendJSON(w, status, v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}

func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, ErrSessionNotFound
	}
	return id, nil
}

// preset resolves the board asked for by the query.
func (s *Server) preset(r *http.Request) (config.Preset, error) {
	var params NewSessionParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		return config.Preset{}, errors.Join(errBadRequest, err)
	}
	if params.custom() {
		return s.presets.Custom.Custom(params.Rows, params.Cols, params.Mines)
	}
	p, err := s.presets.Lookup(params.Preset)
	if err != nil {
		return config.Preset{}, errors.Join(errBadRequest, err)
	}
	return p, nil
}

func cell(r *http.Request) (CellParams, error) {
	var params CellParams
	if err := dec.Decode(&params, r.URL.Query()); err != nil {
		return params, errors.Join(errBadRequest, err)
	}
	return params, nil
}

func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	s.send(w, http.StatusOK, s.presets)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	p, err := s.preset(r)
	if err != nil {
		s.sendError(w, err)
		return
	}
	resp, err := s.hub.Create(p)
	if err != nil {
		s.sendError(w, err)
		return
	}
	w.Header().Set("Location", "/sessions/"+resp.ID.String())
	s.send(w, http.StatusCreated, resp)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.sendError(w, err)
		return
	}
	resp, err := s.hub.Get(id)
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.send(w, http.StatusOK, resp)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.sendError(w, err)
		return
	}
	if err := s.hub.Delete(id); err != nil {
		s.sendError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCell serves reveal and flag.
func (s *Server) handleCell(op func(h *Hub, id uuid.UUID, row, col int) (MoveResponse, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			s.sendError(w, err)
			return
		}
		params, err := cell(r)
		if err != nil {
			s.sendError(w, err)
			return
		}
		resp, err := op(s.hub, id, params.Row, params.Col)
		if err != nil {
			s.sendError(w, err)
			return
		}
		s.send(w, http.StatusOK, resp)
	}
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.sendError(w, err)
		return
	}
	resp, err := s.hub.Restart(id)
	if err != nil {
		s.sendError(w, err)
		return
	}
	s.send(w, http.StatusOK, resp)
}
