package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves with an optional exponential pitch glide
type oscillator struct {
	freq     float64
	glide    float64 // Frequency multiplier per second
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewGlide(freq, 1, duration, wave, rate)
}

// NewGlide creates an oscillator whose pitch scales by glide every second
func NewGlide(freq, glide float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		glide:    glide,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq
		if o.glide != 1 {
			freq *= math.Pow(o.glide, float64(o.position)/float64(o.rate))
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and exponential decay
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	totalSamples  int
	decay         float64 // Per-sample multiplier after attack
}

// NewEnvelope shapes s over duration, decaying to about -60dB at the end
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	tail := max(total-att, 1)
	return &envelope{
		streamer:      s,
		attackSamples: att,
		totalSamples:  total,
		decay:         math.Pow(0.001, 1/float64(tail)),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else {
			vol = math.Pow(e.decay, float64(e.position-e.attackSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies gain in log2 steps, 0 is silent
// math.Log2(0) is -Inf, so zero volume is handled explicitly
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// glass partials are inharmonic ratios of a struck thin plate
var glassPartials = []float64{1, 2.76, 5.40, 8.93}

// ShatterCue layers inharmonic chimes over a crackle burst
// Larger shatters sound lower and longer
func ShatterCue(shards int, rate beep.SampleRate) beep.Streamer {
	size := math.Min(float64(shards)/55, 1)
	base := 1800 - 600*size
	length := time.Duration(350+250*size) * time.Millisecond

	layers := make([]beep.Streamer, 0, len(glassPartials)+1)
	for i, ratio := range glassPartials {
		tone := NewOscillator(base*ratio, length, WaveSine, rate)
		layers = append(layers, newVolume(NewEnvelope(tone, length, 2*time.Millisecond, rate), 0.25/float64(i+1)))
	}
	crackle := NewOscillator(1, 120*time.Millisecond, WaveNoise, rate)
	layers = append(layers, newVolume(NewEnvelope(crackle, 120*time.Millisecond, time.Millisecond, rate), 0.2))
	return beep.Mix(layers...)
}

// SplashCue is a short noise burst over a falling plop
func SplashCue(rate beep.SampleRate) beep.Streamer {
	const length = 90 * time.Millisecond
	plop := NewGlide(420, 0.05, length, WaveSine, rate)
	hiss := NewOscillator(1, 60*time.Millisecond, WaveNoise, rate)
	return beep.Mix(
		newVolume(NewEnvelope(plop, length, 3*time.Millisecond, rate), 0.3),
		newVolume(NewEnvelope(hiss, 60*time.Millisecond, time.Millisecond, rate), 0.08),
	)
}
