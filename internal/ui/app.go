package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/catfish-car-tetris/internal/game"
	"github.com/ugaemi/catfish-car-tetris/internal/store"
)

// BannerDuration is how long the game-over banner stays up before the
// high-score screen.
const BannerDuration = 2 * time.Second

// Sound is the audio surface the app drives. *audio.Player satisfies it.
type Sound interface {
	PlayPlace()
	PlaySplash()
	StartMusic()
	PauseMusic(paused bool)
	StopMusic()
}

type nopSound struct{}

func (nopSound) PlayPlace()      {}
func (nopSound) PlaySplash()     {}
func (nopSound) StartMusic()     {}
func (nopSound) PauseMusic(bool) {}
func (nopSound) StopMusic()      {}

type screenID int

const (
	screenMenu screenID = iota
	screenHelp
	screenPlay
	screenBanner
	screenScores
)

func (s screenID) String() string {
	switch s {
	case screenMenu:
		return "menu"
	case screenHelp:
		return "help"
	case screenPlay:
		return "play"
	case screenBanner:
		return "banner"
	case screenScores:
		return "scores"
	default:
		return "unknown"
	}
}

// Options configures an App.
type Options struct {
	Store    store.HighScoreStore
	Sound    Sound
	Tuning   game.Tuning
	Rand     game.Rand
	TickRate int
}

// App drives menus and game sessions on a tcell screen. All state is owned
// by the goroutine calling Run.
type App struct {
	screen   tcell.Screen
	renderer *Renderer
	store    store.HighScoreStore
	sound    Sound
	tuning   game.Tuning
	rng      game.Rand
	tick     time.Duration
	now      func() time.Time

	current     screenID
	selected    int
	engine      *game.Engine
	finished    bool
	bannerUntil time.Time
	highScores  []int
}

func NewApp(screen tcell.Screen, opts Options) *App {
	sound := opts.Sound
	if sound == nil {
		sound = nopSound{}
	}
	st := opts.Store
	if st == nil {
		st = store.NewMemoryStore()
	}
	rng := opts.Rand
	if rng == nil {
		rng = game.NewRand(0)
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}

	return &App{
		screen:     screen,
		renderer:   NewRenderer(screen),
		store:      st,
		sound:      sound,
		tuning:     opts.Tuning,
		rng:        rng,
		tick:       time.Second / time.Duration(rate),
		now:        time.Now,
		current:    screenMenu,
		highScores: []int{},
	}
}

// Run loads the high scores and runs the frame loop until the player quits
// or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.highScores = a.store.Load(ctx)

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.sound.StopMusic()
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ctx, ev) {
					a.sound.StopMusic()
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			}
			a.draw()
		case <-ticker.C:
			a.update(ctx)
			a.draw()
		}
	}
}

// handleKey routes a key press to the current screen. It returns false when
// the app should exit.
func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	switch a.current {
	case screenMenu:
		n := len(game.CarTypes)
		switch menuActionFor(ev) {
		case menuUp:
			a.selected = (a.selected + n - 1) % n
		case menuDown:
			a.selected = (a.selected + 1) % n
		case menuSelect:
			a.startSession()
		case menuHelp:
			a.setScreen(screenHelp)
		case menuQuit:
			return false
		}
	case screenHelp, screenScores:
		a.setScreen(screenMenu)
	case screenPlay:
		gev := GameEvent(ev)
		if gev == game.EventNone {
			return true
		}
		wasPaused := a.engine.IsPaused()
		if !a.engine.Handle(gev) {
			return false
		}
		if paused := a.engine.IsPaused(); paused != wasPaused {
			a.sound.PauseMusic(paused)
		}
		if a.finished {
			a.finishSession(ctx)
		}
	case screenBanner:
		// input is ignored until the banner times out
	}
	return true
}

// update advances one frame of the current screen.
func (a *App) update(ctx context.Context) {
	switch a.current {
	case screenPlay:
		if !a.engine.IsPaused() {
			a.engine.Tick(a.tick)
		}
		if a.finished {
			a.finishSession(ctx)
		}
	case screenBanner:
		if !a.now().Before(a.bannerUntil) {
			a.setScreen(screenScores)
		}
	}
}

func (a *App) draw() {
	switch a.current {
	case screenMenu:
		a.renderer.DrawMenu(a.selected, a.tuning)
	case screenHelp:
		a.renderer.DrawHelp()
	case screenPlay, screenBanner:
		a.renderer.Draw(a.engine.Snapshot())
	case screenScores:
		a.renderer.DrawHighScores(a.highScores)
	}
}

func (a *App) startSession() {
	car := game.CarTypes[a.selected]
	e := game.NewEngine(a.tuning.NewContainer(car), a.tuning, a.rng)
	e.OnSettle = func(game.RestedPiece) {
		a.sound.PlayPlace()
	}
	e.OnGameOver = func(int, game.OverReason) {
		a.sound.StopMusic()
		a.sound.PlaySplash()
		a.finished = true
	}

	a.engine = e
	a.finished = false
	a.setScreen(screenPlay)
	a.sound.StartMusic()
}

// finishSession records the final score and shows the game-over banner.
func (a *App) finishSession(ctx context.Context) {
	a.finished = false
	snap := a.engine.Snapshot()
	a.highScores = a.store.AddAndPersist(ctx, store.Entry{
		SessionID: snap.SessionID,
		Car:       snap.Car.String(),
		Score:     snap.Score,
	}, a.highScores)

	a.bannerUntil = a.now().Add(BannerDuration)
	a.setScreen(screenBanner)
}

func (a *App) setScreen(s screenID) {
	slog.Debug("screen changed", "from", a.current.String(), "to", s.String())
	a.current = s
}
