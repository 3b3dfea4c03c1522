package audio

import (
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Durations of the one-shot effects.
const (
	placeBlip   = 40 * time.Millisecond
	placeTail   = 60 * time.Millisecond
	splashNoise = 250 * time.Millisecond
	splashNote  = 120 * time.Millisecond
	musicNote   = 200 * time.Millisecond
)

// musicNotes is the background loop, in Hz. Zero is a rest.
var musicNotes = []float64{
	262, 330, 392, 330, 262, 0, 294, 349,
	440, 349, 294, 0, 247, 294, 392, 294,
}

func tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	if freq <= 0 {
		return beep.Silence(n)
	}
	s, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}
	return beep.Take(n, s)
}

// noise returns d of white noise.
func noise(d time.Duration) beep.Streamer {
	return beep.Take(sampleRate.N(d), beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	}))
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: vol}
}

// placeSound is the short two-note blip played when a piece comes to rest.
func placeSound() beep.Streamer {
	return withVolume(beep.Seq(tone(880, placeBlip), tone(1320, placeTail)), -2)
}

// splashSound is a burst of noise followed by a falling phrase.
func splashSound() beep.Streamer {
	return withVolume(beep.Seq(
		withVolume(noise(splashNoise), -3),
		tone(440, splashNote),
		tone(330, splashNote),
		tone(220, 2*splashNote),
	), -1)
}

// musicLoop renders the background melody into a buffer so it can loop.
func musicLoop() beep.Streamer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	for _, f := range musicNotes {
		buf.Append(tone(f, musicNote))
	}
	return withVolume(beep.Loop(-1, buf.Streamer(0, buf.Len())), -4)
}
