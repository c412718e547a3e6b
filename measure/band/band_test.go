package band

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-msvocal/internal/testutil"
)

const fs = 44100.0

func TestEnergy_SineInsideAndOutside(t *testing.T) {
	x := testutil.DeterministicSine(1000, fs, 0.5, int(fs))

	in, err := Energy(x, fs, 200, 6000)
	if err != nil {
		t.Fatal(err)
	}

	if want := 0.125; math.Abs(in-want)/want > 0.01 {
		t.Fatalf("in-band energy = %v, want %v", in, want)
	}

	out, err := Energy(x, fs, 8000, 20000)
	if err != nil {
		t.Fatal(err)
	}

	if out > 1e-8 {
		t.Fatalf("out-of-band energy = %v, want ~0", out)
	}
}

func TestSplit(t *testing.T) {
	low := testutil.DeterministicSine(50, fs, 0.4, int(fs))
	mid := testutil.DeterministicSine(2000, fs, 0.2, int(fs))
	x := testutil.Sum(low, mid)

	inside, outside, err := Split(x, fs, 200, 6000)
	if err != nil {
		t.Fatal(err)
	}

	if want := 0.02; math.Abs(inside-want)/want > 0.01 {
		t.Fatalf("inside = %v, want %v", inside, want)
	}

	if want := 0.08; math.Abs(outside-want)/want > 0.01 {
		t.Fatalf("outside = %v, want %v", outside, want)
	}
}

func TestEnergy_NoiseTotalMatchesMeanSquare(t *testing.T) {
	x := testutil.DeterministicNoise(11, 1, 1<<14)

	s, err := Analyze(x, fs)
	if err != nil {
		t.Fatal(err)
	}

	ms := testutil.RMS(x) * testutil.RMS(x)
	if got := s.Total(); math.Abs(got-ms)/ms > 0.05 {
		t.Fatalf("total = %v, want about %v", got, ms)
	}
}

func TestEnergyDB(t *testing.T) {
	x := testutil.DeterministicSine(1000, fs, 1, int(fs))

	db, err := EnergyDB(x, fs, 500, 2000)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(db-(-3.0103)) > 0.05 {
		t.Fatalf("EnergyDB = %v, want -3.01", db)
	}

	silent, err := EnergyDB(make([]float64, 1024), fs, 0, 20000)
	if err != nil {
		t.Fatal(err)
	}

	if silent != floorDB {
		t.Fatalf("silence = %v dB, want %v", silent, floorDB)
	}
}

func TestToneAmplitude(t *testing.T) {
	for _, tc := range []struct {
		freq, amp float64
	}{
		{1000, 0.5},
		{1234.5, 0.25},
		{60, 0.8},
	} {
		x := testutil.Sine(tc.freq, fs, tc.amp, 0.7, int(fs))

		got, err := ToneAmplitude(x, fs, tc.freq)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(got-tc.amp)/tc.amp > 0.005 {
			t.Fatalf("ToneAmplitude(%v Hz) = %v, want %v", tc.freq, got, tc.amp)
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := Energy(nil, fs, 0, 100); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("empty: %v", err)
	}

	if _, err := Energy([]float64{1, 2}, 0, 0, 100); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("bad rate: %v", err)
	}

	if _, err := Energy([]float64{1, 2}, fs, 500, 100); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("inverted range: %v", err)
	}

	if _, err := ToneAmplitude([]float64{1, 2, 3}, fs, 30000); !errors.Is(err, ErrInvalidParams) {
		t.Fatalf("tone above nyquist: %v", err)
	}
}

func TestGoertzelMatchesDFT(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 64)

	for _, k := range []int{0, 1, 7, 32} {
		var re, im float64
		for n, v := range x {
			phi := -2 * math.Pi * float64(k*n) / 64
			re += v * math.Cos(phi)
			im += v * math.Sin(phi)
		}

		if got, want := goertzel(x, float64(k)/64), math.Hypot(re, im); math.Abs(got-want) > 1e-9 {
			t.Fatalf("bin %d: goertzel %v, dft %v", k, got, want)
		}
	}
}
