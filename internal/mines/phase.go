package mines

import "fmt"

// Phase is the lifecycle stage of a session.
type Phase int

const (
	// PhasePending means the session exists but no mines are placed yet.
	PhasePending Phase = iota
	// PhaseActive means the first reveal happened and play is in progress.
	PhaseActive
	// PhaseWon means every safe cell has been revealed.
	PhaseWon
	// PhaseLost means a mine was revealed.
	PhaseLost
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "pending"
	case PhaseActive:
		return "active"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the phase is terminal.
func (p Phase) Over() bool {
	return p == PhaseWon || p == PhaseLost
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "pending":
		*p = PhasePending
	case "active":
		*p = PhaseActive
	case "won":
		*p = PhaseWon
	case "lost":
		*p = PhaseLost
	default:
		return fmt.Errorf("mines: unknown phase %q", text)
	}
	return nil
}
