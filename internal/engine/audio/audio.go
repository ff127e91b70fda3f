// Package audio plays the synthesized sound effects of the game.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/island-defense/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Effect durations.
const (
	blastDuration  = 400 * time.Millisecond
	splashDuration = 350 * time.Millisecond
)

// Manager mixes sound effects onto the speaker.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	sampleRate  beep.SampleRate
	seed        uint32

	// Volume settings (0.0 to 1.0)
	masterVolume float64
	sfxVolLevel  float64
	muted        bool

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer

	log *zap.Logger
}

// New creates a new audio manager.
func New() *Manager {
	return &Manager{
		sampleRate:   DefaultSampleRate,
		seed:         uint32(time.Now().UnixNano()),
		masterVolume: 1.0,
		sfxVolLevel:  1.0,
		sfxMixer:     &beep.Mixer{},
		log:          logger.Named("audio"),
	}
}

// Init initializes the speaker.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(m.sfxMixer)

	m.initialized = true
	return nil
}

// Close stops all sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	m.initialized = false
}

// IsInitialized returns whether the audio system is initialized.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// SetMasterVolume sets the master volume (0.0 to 1.0).
func (m *Manager) SetMasterVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.masterVolume = clamp(vol, 0, 1)
}

// SetSFXVolume sets the SFX volume (0.0 to 1.0).
func (m *Manager) SetSFXVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sfxVolLevel = clamp(vol, 0, 1)
}

// SetMuted silences every effect.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// GetMasterVolume returns the master volume.
func (m *Manager) GetMasterVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.masterVolume
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// effectiveVolume returns the SFX gain, 0 when muted.
func (m *Manager) effectiveVolume() float64 {
	if m.muted {
		return 0
	}
	return m.masterVolume * m.sfxVolLevel
}

// volumeToDb converts a 0-1 volume to decibel scale.
// vol=1 -> 0dB, vol=0.5 -> -6dB, vol=0.25 -> -12dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Blast plays a cannon shot.
func (m *Manager) Blast() {
	m.play(func(sr beep.SampleRate, seed uint32) beep.Streamer {
		return beep.Take(sr.N(blastDuration), NewBlastGenerator(sr, seed))
	})
}

// Splash plays a projectile hitting the water.
func (m *Manager) Splash() {
	m.play(func(sr beep.SampleRate, seed uint32) beep.Streamer {
		return beep.Take(sr.N(splashDuration), NewSplashGenerator(sr, seed))
	})
}

func (m *Manager) play(build func(beep.SampleRate, uint32) beep.Streamer) {
	m.mu.Lock()
	initialized := m.initialized
	vol := m.effectiveVolume()
	m.seed = m.seed*1664525 + 1013904223
	seed := m.seed
	m.mu.Unlock()

	if !initialized || vol <= 0 {
		return
	}

	// Apply volume
	volStreamer := &effects.Volume{
		Streamer: build(m.sampleRate, seed),
		Base:     2,
		Volume:   volumeToDb(vol) / 6,
	}

	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	m.sfxMixer.Add(volStreamer)
	speaker.Unlock()
}
