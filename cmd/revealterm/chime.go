package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// chime plays short tones through the speaker. The zero value is silent
// until init succeeds.
type chime struct {
	ready bool
}

func (c *chime) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	c.ready = true
	return nil
}

// piece plays after a tile is uncovered.
func (c *chime) piece() {
	c.play(tone(660, 60*time.Millisecond))
}

// complete plays a rising three-note jingle once the picture is whole.
func (c *chime) complete() {
	c.play(beep.Seq(
		tone(523, 90*time.Millisecond),
		tone(659, 90*time.Millisecond),
		tone(784, 180*time.Millisecond),
	))
}

func (c *chime) play(s beep.Streamer) {
	if !c.ready || s == nil {
		return
	}
	speaker.Play(s)
}

func (c *chime) close() {
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}
