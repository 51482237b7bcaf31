package mines

import (
	"fmt"
	"time"
)

// EventKind identifies a notable transition produced by an operation.
type EventKind int

const (
	// EventMinesPlaced fires on the first reveal of a session: the layout is
	// now fixed and the clock has started.
	EventMinesPlaced EventKind = iota + 1
	// EventWon fires when the last safe cell is revealed.
	EventWon
	// EventLost fires when a mine is revealed.
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventMinesPlaced:
		return "mines_placed"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind written by MarshalText.
func (k *EventKind) UnmarshalText(text []byte) error {
	for _, kind := range []EventKind{EventMinesPlaced, EventWon, EventLost} {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("mines: unknown event kind %q", text)
}

// Event is emitted by Reveal and ToggleFlag so that front-ends can start or
// stop their clock and show end-of-game overlays without polling.
type Event struct {
	Kind EventKind `json:"kind"`
	At   time.Time `json:"at"`
	// Trigger is the cell that caused the event (the first reveal, or the
	// exploded mine).
	Trigger Coord `json:"trigger"`
	// Mines lists every mine on EventLost and EventWon.
	Mines []Coord `json:"mines,omitempty"`
	// Elapsed is the session duration on EventWon and EventLost.
	Elapsed time.Duration `json:"elapsed,omitempty"`
}

// Result describes what an operation did.
type Result struct {
	// Changed is false for policy no-ops; the session version is unchanged then.
	Changed bool `json:"changed"`
	// Revealed lists newly revealed cells in discovery order.
	Revealed []Coord `json:"revealed,omitempty"`
	Events   []Event `json:"events,omitempty"`
}

// Has reports whether the result carries an event of the given kind.
func (r Result) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
