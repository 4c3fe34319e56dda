// Package audio synthesizes the shatter and splash cues through a shared beep mixer
package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// maxVoices bounds concurrent cues in the mixer
	maxVoices = 16
	// splashGap rate-limits splash cues, rain produces many per second
	splashGap = 60 * time.Millisecond
)

// SoundManager owns the speaker and mixes cues
// Safe for concurrent use; every method is a no-op until Initialize succeeds
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool
	lastSplash  time.Time

	// now is replaced in tests
	now func() time.Time
}

// NewSoundManager creates an uninitialized manager at full volume
func NewSoundManager() *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
		now:    time.Now,
	}
	sm.master = &beep.Ctrl{Streamer: sm.mixer}
	return sm
}

// Initialize sets up the audio device
// Failure is returned for logging, callers continue silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	log.Printf("audio: initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds and closes the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	sm.master.Paused = true
	sm.mixer.Clear()
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// SetVolume sets master gain in [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// SetMuted drops new cues while muted
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayShatter plays a glass break scaled by shard count
func (sm *SoundManager) PlayShatter(shards int) {
	sm.play(func() beep.Streamer { return ShatterCue(shards, sampleRate) })
}

// PlaySplash plays a water impact, rate limited
func (sm *SoundManager) PlaySplash() {
	sm.mu.Lock()
	now := sm.now()
	if now.Sub(sm.lastSplash) < splashGap {
		sm.mu.Unlock()
		return
	}
	sm.lastSplash = now
	sm.mu.Unlock()

	sm.play(func() beep.Streamer { return SplashCue(sampleRate) })
}

// play builds the cue lazily so dropped cues cost nothing
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.volume <= 0 {
		return
	}
	cue := newVolume(build(), sm.volume)

	speaker.Lock()
	defer speaker.Unlock()
	if sm.mixer.Len() >= maxVoices {
		return
	}
	sm.mixer.Add(cue)
}
