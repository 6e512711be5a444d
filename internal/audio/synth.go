// Package audio synthesizes the game's sound cues in-process.
// All sounds are generated waveforms; there are no audio assets to load.
package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// Waveform types
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// toneGenerator streams a waveform whose frequency sweeps linearly from
// startFreq to endFreq over sweepSec, with an exponential amplitude decay
// so one-shot cues fade out instead of clicking.
type toneGenerator struct {
	sr          beep.SampleRate
	wave        waveType
	startFreq   float64
	endFreq     float64
	sweepSec    float64
	decayPerSec float64

	phase float64
	pos   int
}

func newTone(sr beep.SampleRate, wave waveType, startFreq, endFreq, sweepSec, decayPerSec float64) *toneGenerator {
	return &toneGenerator{
		sr:          sr,
		wave:        wave,
		startFreq:   startFreq,
		endFreq:     endFreq,
		sweepSec:    sweepSec,
		decayPerSec: decayPerSec,
	}
}

// Stream fills the sample buffer; implements beep.Streamer.
func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		freq := g.startFreq
		if g.sweepSec > 0 {
			frac := t / g.sweepSec
			if frac > 1 {
				frac = 1
			}
			freq = g.startFreq + (g.endFreq-g.startFreq)*frac
		}

		var v float64
		switch g.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * g.phase)
		case waveSquare:
			if g.phase < 0.5 {
				v = 1.0
			} else {
				v = -1.0
			}
		case waveSaw:
			v = 2.0 * (g.phase - 0.5)
		case waveNoise:
			v = rand.Float64()*2 - 1 //#nosec G404 -- noise waveform, not security-sensitive
		}

		v *= math.Exp(-g.decayPerSec * t)

		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}
		g.pos++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (g *toneGenerator) Err() error {
	return nil
}
