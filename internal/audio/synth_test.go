package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/skill-runner/internal/runner"
)

// drain streams s to the end and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 1000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveNoise} {
		osc := NewOscillator(wave, 440, 440, 100*time.Millisecond, rate, 1)
		samples := drain(t, osc)
		if len(samples) != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: got %d samples, want %d", wave, len(samples), rate.N(100*time.Millisecond))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d out of range or not mono: %v", wave, i, s)
			}
		}
		if osc.Err() != nil {
			t.Errorf("wave %d: unexpected error %v", wave, osc.Err())
		}
	}
}

func TestNoiseIsSeeded(t *testing.T) {
	rate := beep.SampleRate(8000)
	a := drain(t, NewOscillator(WaveNoise, 0, 0, 20*time.Millisecond, rate, 42))
	b := drain(t, NewOscillator(WaveNoise, 0, 0, 20*time.Millisecond, rate, 42))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical seeds", i)
		}
	}
}

func TestEffects(t *testing.T) {
	rate := beep.SampleRate(8000)
	sounds := append(runner.ShotgunSounds[:], runner.SoundMugen)

	for _, sound := range sounds {
		t.Run(string(sound), func(t *testing.T) {
			s := Effect(sound, rate, 0.5)
			if s == nil {
				t.Fatal("expected a streamer")
			}
			samples := drain(t, s)
			if len(samples) == 0 {
				t.Fatal("effect produced no samples")
			}

			var peak float64
			for _, v := range samples {
				peak = math.Max(peak, math.Abs(v[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak %f outside (0, 1]", peak)
			}

			// The tail has decayed to near silence.
			last := samples[len(samples)-1][0]
			if math.Abs(last) > 0.05 {
				t.Errorf("tail sample %f not faded", last)
			}
		})
	}

	if Effect("laser", rate, 1) != nil {
		t.Error("unknown sound should have no effect")
	}
}

func TestEngineSilentBeforeInit(t *testing.T) {
	e := NewEngine(1, nil)
	e.Play(runner.SoundMugen)
	e.Close()
	Nop{}.Play(runner.SoundShotgun1)
}
