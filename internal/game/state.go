package game

type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// OverReason records which terminal condition ended a session.
type OverReason int

const (
	OverNone OverReason = iota
	OverOverflow
	OverStackLimit
	OverCeiling
)

func (r OverReason) String() string {
	switch r {
	case OverOverflow:
		return "overflow"
	case OverStackLimit:
		return "stack_limit"
	case OverCeiling:
		return "ceiling"
	default:
		return "none"
	}
}
