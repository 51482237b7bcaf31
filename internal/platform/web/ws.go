package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Websocket commands. Each line of a text message is one command.
//
//	o <row> <col>   reveal
//	f <row> <col>   toggle flag
//	n               new game on the same board
//	g               get state
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"n": 0,
	"g": 0,
}

var errUnknownCommand = errors.New("unknown command")

func parseCell(args []string) (row, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, errors.Join(errBadRequest, errors.New("row must be an int"))
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, errors.Join(errBadRequest, errors.New("col must be an int"))
	}
	return row, col, nil
}

// execute runs one command against the session.
func (s *Server) execute(id uuid.UUID, line string) (MoveResponse, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return MoveResponse{}, errors.Join(errBadRequest, errUnknownCommand)
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return MoveResponse{}, errors.Join(errBadRequest, fmt.Errorf("%w %q", errUnknownCommand, parts[0]))
	}
	if len(parts)-1 != nargs {
		return MoveResponse{}, errors.Join(errBadRequest,
			fmt.Errorf("%s takes %d arguments, got %d", parts[0], nargs, len(parts)-1))
	}

	switch parts[0] {
	case "o":
		row, col, err := parseCell(parts[1:])
		if err != nil {
			return MoveResponse{}, err
		}
		return s.hub.Reveal(id, row, col)
	case "f":
		row, col, err := parseCell(parts[1:])
		if err != nil {
			return MoveResponse{}, err
		}
		return s.hub.Flag(id, row, col)
	case "n":
		return s.hub.Restart(id)
	default:
		return s.hub.Get(id)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err == nil {
		_, err = s.hub.Get(id)
	}
	if err != nil {
		s.sendError(w, err)
		return
	}

	c, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn("read", "session", id, "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		for line := range strings.SplitSeq(strings.TrimSpace(string(message)), "\n") {
			resp, execErr := s.execute(id, line)
			var reply any = resp
			if execErr != nil {
				reply = errorResponse{Error: execErr.Error()}
			}
			if err := c.WriteJSON(reply); err != nil {
				s.logger.Warn("write", "session", id, "error", err)
				return
			}
			if errors.Is(execErr, ErrSessionNotFound) {
				return
			}
		}
	}
}
