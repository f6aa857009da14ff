// Package audio turns the game's sound events into synthesized clips
// played through the system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/sky-duel/internal/config"
	"github.com/vovakirdan/sky-duel/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player mixes sound clips onto the speaker. A Player that is disabled,
// or whose speaker failed to open, accepts every call and plays nothing.
type Player struct {
	mu          sync.Mutex
	volume      float64
	enabled     bool
	initialized bool
	mixer       *beep.Mixer
	logger      *log.Logger
}

// NewPlayer creates a player from the sound section of the config. A nil
// logger discards the player's diagnostics.
func NewPlayer(cfg config.SkyDuelSound, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		volume:  cfg.Volume,
		enabled: cfg.Enabled,
		mixer:   &beep.Mixer{},
		logger:  logger.WithPrefix("audio"),
	}
}

// Init opens the speaker. A failure leaves the player silent and is
// returned so the caller can log it; the game keeps running.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.enabled = false
		return fmt.Errorf("audio: open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("speaker ready", "rate", int(sampleRate), "volume", p.volume)
	return nil
}

// Enabled reports whether clips will reach the speaker.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled && p.initialized
}

// PlaySound starts a clip. Clips overlap; nothing is ever cut short.
func (p *Player) PlaySound(s core.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}
	clip := Clip(s, sampleRate, p.volume)
	if clip == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(clip)
	speaker.Unlock()
}

// PlayAll starts every clip raised during one simulation step.
func (p *Player) PlayAll(sounds []core.Sound) {
	for _, s := range sounds {
		p.PlaySound(s)
	}
}

// Close silences everything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
