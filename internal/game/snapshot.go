package game

import "time"

// Snapshot is a read-only copy of engine state for renderers.
type Snapshot struct {
	SessionID string
	Car       CarType
	Bounds    Rect
	Capacity  float64
	FillLevel float64
	FillRatio float64

	Rested []RestedPiece
	Active *Piece // nil once the session is over

	Score     int
	Level     int
	FallSpeed float64
	Paused    bool
	Over      bool
	Reason    OverReason
	Placed    map[Category]int
	Elapsed   time.Duration
}

// Snapshot copies the current state. Mutating the result does not affect e.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		SessionID: e.ID,
		Car:       e.container.Car,
		Bounds:    e.container.Bounds,
		Capacity:  e.container.Capacity,
		FillLevel: e.container.FillLevel,
		FillRatio: e.container.FillRatio(),
		Rested:    append([]RestedPiece(nil), e.rested...),
		Score:     e.score,
		Level:     e.level,
		FallSpeed: e.fallSpeed,
		Paused:    e.phase == PhasePaused,
		Over:      e.phase == PhaseOver,
		Reason:    e.reason,
		Placed:    make(map[Category]int, len(Categories)),
		Elapsed:   e.elapsed,
	}
	if e.piece != nil {
		p := *e.piece
		s.Active = &p
	}
	for _, c := range Categories {
		s.Placed[c] = e.Placed(c)
	}
	return s
}
