package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"snake-engine/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFrequency      = 880.0
	eatDuration       = 60 * time.Millisecond
	gameOverFrequency = 110.0
	gameOverDuration  = 300 * time.Millisecond
)

// SoundManager plays short cues for game outcomes through a single mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	eatFreq     float64
	logger      zerolog.Logger
}

func NewSoundManager(muted bool, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		muted:   muted,
		eatFreq: eatFrequency,
		logger:  logger.With().Str("component", "audio").Logger(),
	}
}

// Initialize opens the speaker. Callers treat failure as non-fatal and keep
// playing without sound.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || sm.muted {
		return nil
	}

	// Cues are built per play; fail here rather than on the first eat
	if _, err := sineCue(sampleRate, sm.eatFreq, eatDuration); err != nil {
		return fmt.Errorf("build eat cue: %w", err)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences any pending cue.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// OnOutcome maps a tick outcome onto a cue. Plain moves are silent.
func (sm *SoundManager) OnOutcome(o game.Outcome) {
	switch {
	case o == game.OutcomeAte:
		sm.PlayEat()
	case o.Collided():
		sm.PlayGameOver()
	}
}

func (sm *SoundManager) PlayEat() {
	cue, err := sineCue(sampleRate, sm.eatFreq, eatDuration)
	if err != nil {
		sm.logger.Warn().Err(err).Msg("eat cue unavailable")
		return
	}
	sm.play(cue)
}

func (sm *SoundManager) PlayGameOver() {
	sm.play(GameOverCue(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EatCue is a short high sine blip.
func EatCue(sr beep.SampleRate) (beep.Streamer, error) {
	return sineCue(sr, eatFrequency, eatDuration)
}

// sineCue fails when freq is at or above half the sample rate.
func sineCue(sr beep.SampleRate, freq float64, length time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sr.N(length), &volume{Streamer: sine, gain: 0.2}), nil
}

// GameOverCue is a low buzz that fades out.
func GameOverCue(sr beep.SampleRate) beep.Streamer {
	return beep.Take(sr.N(gameOverDuration), NewBuzzGenerator(sr, gameOverFrequency, gameOverDuration))
}

type volume struct {
	beep.Streamer
	gain float64
}

func (v *volume) Stream(samples [][2]float64) (int, bool) {
	n, ok := v.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= v.gain
		samples[i][1] *= v.gain
	}
	return n, ok
}

// BuzzGenerator generates a low buzz with a linear fade over length
type BuzzGenerator struct {
	sr     beep.SampleRate
	freq   float64
	length int
	pos    int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64, length time.Duration) *BuzzGenerator {
	return &BuzzGenerator{
		sr:     sr,
		freq:   freq,
		length: sr.N(length),
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics for a harsh tone
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := 1.0
		if g.length > 0 {
			envelope = math.Max(0, 1-float64(g.pos)/float64(g.length))
		}
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
