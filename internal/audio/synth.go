package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/sky-duel/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one value
// to another over its duration. A constant tone has from == to.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand

	phase    float64
	position int
	duration int
}

// NewSweep creates a frequency sweep lasting d.
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(from*1000 + to))),
		duration: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over its last release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; zero or less is silent.
// math.Log2(0) is -Inf, so silence is requested explicitly.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Clip synthesizes the streamer for one sound at the given sample rate.
// Unknown sounds yield nil.
func Clip(s core.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var clip beep.Streamer
	switch s {
	case core.SoundJetStart:
		d := 600 * time.Millisecond
		clip = NewEnvelope(NewSweep(70, 220, d, WaveSaw, rate), d, 80*time.Millisecond, 150*time.Millisecond, rate)
	case core.SoundJetStop:
		d := 600 * time.Millisecond
		clip = NewEnvelope(NewSweep(220, 60, d, WaveSaw, rate), d, 20*time.Millisecond, 300*time.Millisecond, rate)
	case core.SoundJetCabin:
		d := time.Second
		hum := NewEnvelope(NewSweep(90, 90, d, WaveSine, rate), d, 100*time.Millisecond, 100*time.Millisecond, rate)
		hiss := NewEnvelope(NewSweep(0, 0, d, WaveNoise, rate), d, 100*time.Millisecond, 100*time.Millisecond, rate)
		clip = beep.Take(rate.N(d), beep.Mix(newVolume(hum, 0.6), newVolume(hiss, 0.15)))
	case core.SoundExplosion:
		d := 800 * time.Millisecond
		noise := NewEnvelope(NewSweep(0, 0, d, WaveNoise, rate), d, 5*time.Millisecond, 600*time.Millisecond, rate)
		rumble := NewEnvelope(NewSweep(80, 40, d, WaveSine, rate), d, 5*time.Millisecond, 700*time.Millisecond, rate)
		clip = beep.Take(rate.N(d), beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.5)))
	case core.SoundShot:
		d := 120 * time.Millisecond
		clip = NewEnvelope(NewSweep(880, 220, d, WaveSquare, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)
	default:
		return nil
	}
	return newVolume(clip, volume)
}
