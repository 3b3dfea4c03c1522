package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/kamstrup/intmap"
)

// Engine owns the state of one session, from the first spawn until the
// session is over. It is not safe for concurrent use; the driving loop owns it.
type Engine struct {
	ID string

	tuning    Tuning
	rng       Rand
	container *Container
	piece     *Piece
	rested    []RestedPiece
	placed    *intmap.Map[Category, int]

	score     int
	level     int
	fallSpeed float64
	phase     Phase
	reason    OverReason
	elapsed   time.Duration

	// OnSettle is called each time a piece comes to rest.
	OnSettle func(p RestedPiece)
	// OnLevelUp is called after the level increases.
	OnLevelUp func(level int)
	// OnGameOver is called once, when the session enters PhaseOver.
	OnGameOver func(score int, reason OverReason)
}

// NewEngine starts a session in c and spawns the first piece.
func NewEngine(c *Container, t Tuning, rng Rand) *Engine {
	e := &Engine{
		ID:        uuid.New().String(),
		tuning:    t,
		rng:       rng,
		container: c,
		rested:    make([]RestedPiece, 0, MaxRestedPieces),
		placed:    intmap.New[Category, int](len(Categories)),
		level:     1,
		fallSpeed: BaseFallSpeed,
		phase:     PhasePlaying,
	}
	e.piece = spawnPiece(e.rng, e.tuning, e.container, e.rested)

	slog.Info("session started", "session", e.ID, "car", c.Car.String(), "capacity", c.Capacity)
	return e
}

// Handle applies a player event. It returns false when the driver should stop.
func (e *Engine) Handle(ev Event) bool {
	switch ev {
	case EventMoveLeft:
		e.Move(-MoveStep)
	case EventMoveRight:
		e.Move(MoveStep)
	case EventHardDrop:
		e.HardDrop()
	case EventTogglePause:
		e.TogglePause()
	case EventQuit:
		slog.Info("session quit", "session", e.ID, "score", e.score)
		return false
	}
	return true
}

// Move shifts the active piece horizontally by dx. It returns false if the
// move was rejected.
func (e *Engine) Move(dx float64) bool {
	if e.phase != PhasePlaying {
		return false
	}
	candidate := e.piece.Rect.Translate(dx, 0)
	if IsBlocked(candidate, e.container, e.rested) {
		return false
	}
	e.piece.Rect = candidate
	return true
}

// Tick advances gravity by one step of the current fall speed. dt only feeds
// the elapsed play time.
func (e *Engine) Tick(dt time.Duration) {
	if e.phase != PhasePlaying {
		return
	}
	e.elapsed += dt

	candidate := e.piece.Rect.Translate(0, e.fallSpeed)
	if IsBlocked(candidate, e.container, e.rested) {
		e.settle()
		return
	}
	e.piece.Rect = candidate
}

// HardDrop moves the active piece down until the next step would collide,
// then settles it.
func (e *Engine) HardDrop() {
	if e.phase != PhasePlaying {
		return
	}
	for {
		next := e.piece.Rect.Translate(0, DropStep)
		if IsBlocked(next, e.container, e.rested) {
			break
		}
		e.piece.Rect = next
	}
	e.settle()
}

// TogglePause flips between playing and paused. It has no effect once over.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhasePlaying:
		e.phase = PhasePaused
	case PhasePaused:
		e.phase = PhasePlaying
	default:
		return
	}
	slog.Debug("pause toggled", "session", e.ID, "phase", e.phase.String())
}

// settle rests the active piece, scores it and either ends the session or
// spawns the next piece.
func (e *Engine) settle() {
	rp := e.piece.rest()
	e.piece = nil
	e.rested = append(e.rested, rp)
	e.score += rp.Score
	e.container.FillLevel += float64(rp.Size)

	n, _ := e.placed.Get(rp.Category)
	e.placed.Put(rp.Category, n+1)

	slog.Debug("piece settled",
		"session", e.ID,
		"category", rp.Category.String(),
		"size", rp.Size,
		"fill", e.container.FillLevel,
		"score", e.score,
	)
	if e.OnSettle != nil {
		e.OnSettle(rp)
	}

	if reason := CheckOver(e.container, e.rested, rp.Rect); reason != OverNone {
		e.phase = PhaseOver
		e.reason = reason
		slog.Info("game over",
			"session", e.ID,
			"reason", reason.String(),
			"score", e.score,
			"level", e.level,
			"pieces", len(e.rested),
		)
		if e.OnGameOver != nil {
			e.OnGameOver(e.score, reason)
		}
		return
	}

	if ShouldLevelUp(e.score, e.level) {
		e.level++
		e.fallSpeed += FallSpeedStep
		slog.Info("level up", "session", e.ID, "level", e.level, "fall_speed", e.fallSpeed)
		if e.OnLevelUp != nil {
			e.OnLevelUp(e.level)
		}
	}

	e.piece = spawnPiece(e.rng, e.tuning, e.container, e.rested)
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// FallSpeed returns the units the piece falls per tick.
func (e *Engine) FallSpeed() float64 {
	return e.fallSpeed
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// IsOver returns true once a terminal condition was reached.
func (e *Engine) IsOver() bool {
	return e.phase == PhaseOver
}

// IsPaused returns true while the session is paused.
func (e *Engine) IsPaused() bool {
	return e.phase == PhasePaused
}

// Reason returns the terminal condition, or OverNone while in play.
func (e *Engine) Reason() OverReason {
	return e.reason
}

// Placed returns how many pieces of cat have come to rest.
func (e *Engine) Placed(cat Category) int {
	n, _ := e.placed.Get(cat)
	return n
}
