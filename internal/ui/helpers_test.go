package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/ugaemi/catfish-car-tetris/internal/game"
)

// zeroRand always draws the first option: small pieces of minimum size at x=0.
type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

type recordingSound struct {
	calls []string
}

func (s *recordingSound) PlayPlace()  { s.calls = append(s.calls, "place") }
func (s *recordingSound) PlaySplash() { s.calls = append(s.calls, "splash") }
func (s *recordingSound) StartMusic() { s.calls = append(s.calls, "start") }
func (s *recordingSound) StopMusic()  { s.calls = append(s.calls, "stop") }

func (s *recordingSound) PauseMusic(paused bool) {
	if paused {
		s.calls = append(s.calls, "pause")
		return
	}
	s.calls = append(s.calls, "resume")
}

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

// tinyTuning makes a single small piece overflow the sedan.
func tinyTuning() game.Tuning {
	t := game.DefaultTuning()
	t.Cars.Sedan.Capacity = 1
	return t
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenText(s tcell.Screen) string {
	w, h := s.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := s.GetContent(x, y)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
