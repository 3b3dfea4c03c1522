package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

func TestNewEngine_InitialState(t *testing.T) {
	e := newTestEngine(50)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Level())
	assert.Equal(t, BaseFallSpeed, e.FallSpeed())
	assert.Equal(t, PhasePlaying, e.Phase())
	assert.False(t, e.IsOver())
	assert.False(t, e.IsPaused())

	s := e.Snapshot()
	require.NotNil(t, s.Active)
	assert.Empty(t, s.Rested)
	assert.Equal(t, 0.0, s.FillLevel)
}

func TestNewEngine_UniqueIDs(t *testing.T) {
	assert.NotEqual(t, newTestEngine(50).ID, newTestEngine(50).ID)
}

func TestMove(t *testing.T) {
	e := newTestEngine(50)
	startX := e.piece.Rect.X

	assert.True(t, e.Move(MoveStep))
	assert.Equal(t, startX+MoveStep, e.piece.Rect.X)

	assert.True(t, e.Move(-MoveStep))
	assert.Equal(t, startX, e.piece.Rect.X)
}

func TestMove_NotClampedAtSideEdges(t *testing.T) {
	e := newTestEngine(50)
	require.Equal(t, 0.0, e.piece.Rect.X)

	assert.True(t, e.Move(-MoveStep), "the left edge is not checked")
	assert.Equal(t, -MoveStep, e.piece.Rect.X)
}

func TestMove_BlockedByRestedPiece(t *testing.T) {
	e := newTestEngine(50)
	e.piece.Rect = Rect{X: 100, Y: 500, W: 40, H: 20}
	e.rested = append(e.rested, RestedPiece{Rect: Rect{X: 145, Y: 450, W: 40, H: 150}})
	before := e.piece.Rect

	assert.False(t, e.Move(MoveStep))
	assert.Equal(t, before, e.piece.Rect, "rejected move must not mutate the piece")

	assert.True(t, e.Move(-MoveStep))
}

func TestTick_FallsByFallSpeed(t *testing.T) {
	e := newTestEngine(50)
	y := e.piece.Rect.Y

	e.Tick(frame)
	assert.Equal(t, y+BaseFallSpeed, e.piece.Rect.Y)

	e.fallSpeed = 2.5
	e.Tick(frame)
	assert.Equal(t, y+BaseFallSpeed+2.5, e.piece.Rect.Y)
	assert.Equal(t, 2*frame, e.Snapshot().Elapsed)
}

func TestTick_SettlesOnFloor(t *testing.T) {
	e := newTestEngine(50)
	var settled []RestedPiece
	e.OnSettle = func(p RestedPiece) { settled = append(settled, p) }

	for i := 0; i < 2*BoardHeight && len(settled) == 0; i++ {
		e.Tick(frame)
	}

	require.Len(t, settled, 1)
	assert.Equal(t, float64(BoardHeight), settled[0].Rect.Bottom())
	assert.Equal(t, 10, e.Score())
	assert.Equal(t, 2.0, e.Snapshot().FillLevel)
	assert.NotNil(t, e.piece, "a new piece spawns after settling")
}

func TestTick_DoesNotApplyBlockedStep(t *testing.T) {
	e := newTestEngine(50)
	e.fallSpeed = 7
	e.piece.Rect = Rect{X: 0, Y: 575, W: 40, H: 20}

	e.Tick(frame)

	require.Len(t, e.rested, 1)
	assert.Equal(t, 575.0, e.rested[0].Rect.Y, "the piece rests where it was, not one step further")
}

func TestHardDrop(t *testing.T) {
	e := newTestEngine(50)

	e.HardDrop()

	require.Len(t, e.rested, 1)
	assert.Equal(t, float64(BoardHeight), e.rested[0].Rect.Bottom())
	assert.Equal(t, 10, e.Score())
}

func TestHardDrop_StacksOnRestedPiece(t *testing.T) {
	e := newTestEngine(50)

	e.HardDrop()
	e.HardDrop()

	require.Len(t, e.rested, 2)
	assert.Equal(t, e.rested[0].Rect.Y, e.rested[1].Rect.Bottom(), "second piece rests on the first")
	assert.False(t, e.rested[0].Rect.Overlaps(e.rested[1].Rect))
}

func TestSettle_FillScenario(t *testing.T) {
	e := newTestEngine(100)

	settleWith(e, Large, 40)
	settleWith(e, Large, 40)
	assert.Equal(t, 80.0, e.container.FillLevel)
	assert.False(t, e.IsOver())

	settleWith(e, Large, 30)
	assert.Equal(t, 110.0, e.container.FillLevel)
	assert.True(t, e.IsOver())
	assert.Equal(t, OverOverflow, e.Reason())
}

func TestSettle_StackLimit(t *testing.T) {
	e := newTestEngine(1000)

	for i := 0; i < MaxRestedPieces-1; i++ {
		settleWith(e, Small, 2)
		require.False(t, e.IsOver(), "settle %d", i+1)
	}
	settleWith(e, Small, 2)

	assert.True(t, e.IsOver())
	assert.Equal(t, OverStackLimit, e.Reason())
	assert.Len(t, e.rested, MaxRestedPieces)
	assert.Less(t, e.container.FillLevel, e.container.Capacity)
}

func TestSettle_CeilingOut(t *testing.T) {
	e := newTestEngine(50)
	e.rested = append(e.rested, RestedPiece{Category: Large, Rect: Rect{X: 0, Y: 5, W: 800, H: 595}})
	e.piece = spawnPiece(e.rng, e.tuning, e.container, e.rested)

	e.HardDrop()

	assert.True(t, e.IsOver())
	assert.Equal(t, OverCeiling, e.Reason())
}

func TestSettle_LevelUp(t *testing.T) {
	e := newTestEngine(1000)
	var levels []int
	e.OnLevelUp = func(level int) { levels = append(levels, level) }
	e.score = 95

	settleWith(e, Small, 2)

	assert.Equal(t, 105, e.Score())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, BaseFallSpeed+FallSpeedStep, e.FallSpeed())
	assert.Equal(t, []int{2}, levels)
}

func TestSettle_LevelUpAtMostOncePerSettle(t *testing.T) {
	e := newTestEngine(1000)
	e.score = 295

	settleWith(e, Small, 2)

	assert.Equal(t, 305, e.Score())
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, BaseFallSpeed+FallSpeedStep, e.FallSpeed())
}

func TestSettle_NoLevelUpOnGameOver(t *testing.T) {
	e := newTestEngine(10)
	e.score = 95

	settleWith(e, Small, 20)

	assert.True(t, e.IsOver())
	assert.Equal(t, 1, e.Level())
}

func TestSettle_ScoreAndFillMonotonic(t *testing.T) {
	e := NewEngine(NewContainer(Minivan, 70), DefaultTuning(), NewRand(99))
	var sizes int
	prevScore, prevFill := e.Score(), 0.0

	e.OnSettle = func(p RestedPiece) {
		sizes += p.Size
		assert.Equal(t, prevScore+p.Score, e.Score(), "score grows by exactly the piece value")
		assert.GreaterOrEqual(t, e.container.FillLevel, prevFill)
		assert.Equal(t, float64(sizes), e.container.FillLevel)
		prevScore, prevFill = e.Score(), e.container.FillLevel
	}

	for !e.IsOver() {
		e.HardDrop()
	}
	assert.Equal(t, float64(sizes), e.Snapshot().FillLevel)
}

func TestEngine_Terminates(t *testing.T) {
	for seed := uint64(1); seed <= 25; seed++ {
		e := NewEngine(NewContainer(SUV, 60), DefaultTuning(), NewRand(seed))
		settles := 0
		e.OnSettle = func(RestedPiece) { settles++ }

		for i := 0; i < 1_000_000 && !e.IsOver(); i++ {
			e.Tick(frame)
		}

		require.True(t, e.IsOver(), "seed %d", seed)
		assert.LessOrEqual(t, settles, MaxRestedPieces, "seed %d", seed)
	}
}

func TestEngine_GameOverCallbackOnce(t *testing.T) {
	e := newTestEngine(4)
	calls := 0
	e.OnGameOver = func(score int, reason OverReason) {
		calls++
		assert.Equal(t, 20, score)
		assert.Equal(t, OverOverflow, reason)
	}

	e.HardDrop()
	e.HardDrop()
	e.HardDrop()
	e.Tick(frame)

	assert.Equal(t, 1, calls)
}

func TestEngine_FrozenWhenOver(t *testing.T) {
	e := newTestEngine(2)
	e.HardDrop()
	require.True(t, e.IsOver())
	before := e.Snapshot()

	e.Tick(frame)
	e.HardDrop()
	assert.False(t, e.Move(MoveStep))
	e.TogglePause()
	assert.True(t, e.Handle(EventMoveLeft))

	assert.Equal(t, before, e.Snapshot())
	assert.Nil(t, before.Active)
}

func TestTogglePause(t *testing.T) {
	e := newTestEngine(50)

	e.TogglePause()
	assert.True(t, e.IsPaused())
	e.TogglePause()
	assert.False(t, e.IsPaused())
	assert.Equal(t, PhasePlaying, e.Phase())
}

func TestPause_SuspendsAllMutation(t *testing.T) {
	e := newTestEngine(50)
	e.Tick(frame)
	e.TogglePause()
	before := e.Snapshot()

	for i := 0; i < 100; i++ {
		e.Tick(frame)
	}
	assert.False(t, e.Move(MoveStep))
	e.HardDrop()

	assert.Equal(t, before, e.Snapshot())
}

func TestHandle(t *testing.T) {
	e := newTestEngine(50)
	x := e.piece.Rect.X

	assert.True(t, e.Handle(EventMoveRight))
	assert.Equal(t, x+MoveStep, e.piece.Rect.X)

	assert.True(t, e.Handle(EventMoveLeft))
	assert.Equal(t, x, e.piece.Rect.X)

	assert.True(t, e.Handle(EventTogglePause))
	assert.True(t, e.IsPaused())
	assert.True(t, e.Handle(EventTogglePause))

	assert.True(t, e.Handle(EventHardDrop))
	assert.Len(t, e.rested, 1)

	assert.True(t, e.Handle(EventNone))
	assert.False(t, e.Handle(EventQuit))
	assert.False(t, e.IsOver(), "quit does not end the session in the engine")
}

func TestSnapshot_IsACopy(t *testing.T) {
	e := newTestEngine(50)
	e.HardDrop()

	s := e.Snapshot()
	s.Rested[0].Score = 999
	s.Active.Rect.X = 999
	s.Placed[Small] = 999

	assert.Equal(t, 10, e.rested[0].Score)
	assert.NotEqual(t, 999.0, e.piece.Rect.X)
	assert.Equal(t, 1, e.Placed(Small))
}

func TestSnapshot_PlacedTally(t *testing.T) {
	e := newTestEngine(1000)
	settleWith(e, Small, 2)
	settleWith(e, Large, 6)
	settleWith(e, Large, 7)

	s := e.Snapshot()
	assert.Equal(t, map[Category]int{Small: 1, Medium: 0, Large: 2}, s.Placed)
}
