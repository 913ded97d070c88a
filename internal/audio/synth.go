package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/skill-runner/internal/runner"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a finite wave whose pitch slides linearly from
// `from` to `to` over its duration.
type oscillator struct {
	from, to float64
	phase    float64
	pos      int
	total    int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer of the given shape and length. Noise
// uses a private generator seeded with seed so effects sound the same
// every time.
func NewOscillator(wave Wave, from, to float64, d time.Duration, rate beep.SampleRate, seed int64) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a streamer out exponentially, reaching about -60dB at the end.
type decay struct {
	s     beep.Streamer
	pos   int
	total int
}

func newDecay(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{s: s, total: rate.N(d)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-7 * float64(d.pos) / float64(d.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// newVolume scales by a linear factor; 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// shot is one shotgun variant: a noise crack over a falling thump.
type shot struct {
	length time.Duration
	thump  float64
	seed   int64
}

var shots = map[runner.Sound]shot{
	runner.SoundShotgun1: {length: 260 * time.Millisecond, thump: 110, seed: 1},
	runner.SoundShotgun2: {length: 320 * time.Millisecond, thump: 90, seed: 2},
	runner.SoundShotgun3: {length: 220 * time.Millisecond, thump: 130, seed: 3},
}

// Effect builds the streamer for a sound at the given master volume.
// Unknown sounds return nil.
func Effect(sound runner.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	if sh, ok := shots[sound]; ok {
		crack := newDecay(NewOscillator(WaveNoise, 0, 0, sh.length, rate, sh.seed), sh.length, rate)
		thump := newDecay(NewOscillator(WaveSine, sh.thump, sh.thump/3, sh.length, rate, 0), sh.length, rate)
		return newVolume(beep.Mix(newVolume(crack, 0.6), newVolume(thump, 0.4)), volume)
	}

	if sound == runner.SoundMugen {
		const d = 600 * time.Millisecond
		sweep := NewOscillator(WaveSine, 220, 880, d, rate, 0)
		buzz := NewOscillator(WaveSquare, 110, 440, d, rate, 0)
		mixed := beep.Mix(newVolume(sweep, 0.7), newVolume(buzz, 0.15))
		return newVolume(newDecay(mixed, 2*d, rate), volume)
	}

	return nil
}
