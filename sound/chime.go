// Package sound plays the short notify chime (the talk sound) through the
// speaker. Audio is best effort: a host without a usable output device gets
// a silent chime, never an error that blocks the frame.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Chime owns the speaker lifecycle for notification cues
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

// NewChime creates an uninitialized chime
func NewChime() *Chime {
	return &Chime{}
}

// Init opens the speaker; failure leaves the chime in silent mode
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.initialized = true
	return nil
}

// Play fires one short tone; no-op in silent mode
func (c *Chime) Play() {
	c.mu.Lock()
	ready := c.initialized
	c.mu.Unlock()
	if !ready {
		return
	}

	sine, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(60*time.Millisecond), sine))
}

// Close stops playback and releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
