package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays the game's sound effects and music through the speaker.
// Every method is safe to call before Initialize or after Cleanup, in which
// case it does nothing; a muted game simply never initializes its player.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.music = nil
	p.initialized = false
}

// PlayPlace plays the placement blip.
func (p *Player) PlayPlace() {
	p.add(placeSound())
}

// PlaySplash plays the game-over splash.
func (p *Player) PlaySplash() {
	p.add(splashSound())
}

// StartMusic starts the background loop from the beginning.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.music != nil {
		p.music.Streamer = nil
	}
	p.music = &beep.Ctrl{Streamer: musicLoop()}
	p.mixer.Add(p.music)
	speaker.Unlock()
}

// PauseMusic pauses or resumes the background loop.
func (p *Player) PauseMusic(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music == nil {
		return
	}

	speaker.Lock()
	p.music.Paused = paused
	speaker.Unlock()
}

// StopMusic ends the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.music == nil {
		return
	}

	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()
	p.music = nil
}

func (p *Player) add(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
