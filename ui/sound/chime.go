// Package sound plays the short tone used when the snake eats.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
	chimeFreq  = 880
	chimeLen   = 50 * time.Millisecond
)

type Chime struct {
	play func(...beep.Streamer)
}

// NewChime initialises the speaker. The game runs without sound if this
// fails, so callers should log the error and carry on.
func NewChime() (*Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	return &Chime{play: speaker.Play}, nil
}

// Tone returns the streamer played on every chime.
func Tone() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, chimeFreq)
	if err != nil {
		return nil, errors.Wrap(err, "sine tone")
	}
	return beep.Take(sampleRate.N(chimeLen), sine), nil
}

func (c *Chime) Play() {
	tone, err := Tone()
	if err != nil {
		return
	}
	c.play(tone)
}

func (c *Chime) Close() error {
	speaker.Close()
	return nil
}
