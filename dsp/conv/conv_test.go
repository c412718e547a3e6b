package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-msvocal/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want []float64
	}{
		{"identity", []float64{1, 2, 3}, []float64{1}, []float64{1, 2, 3}},
		{"delay", []float64{1, 2, 3}, []float64{0, 1}, []float64{0, 1, 2, 3}},
		{"box", []float64{1, 1, 1}, []float64{1, 1}, []float64{1, 2, 2, 1}},
		{"long kernel", []float64{1, -1}, []float64{1, 2, 3, 4, 5}, []float64{1, 1, 1, 1, 1, -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Direct(tc.a, tc.b)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tc.want, 1e-12)
		})
	}
}

func TestEmptyInputs(t *testing.T) {
	if _, err := Direct(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Direct(nil) err = %v", err)
	}

	if _, err := Direct([]float64{1}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("Direct(kernel nil) err = %v", err)
	}

	if _, err := Convolve(nil, []float64{1}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Convolve(nil) err = %v", err)
	}

	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("NewOverlapAdd(nil) err = %v", err)
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	for _, tc := range []struct {
		signal, kernel, block int
	}{
		{1000, 100, 0},
		{4096, 1024, 0},
		{777, 65, 128},
		{50, 300, 0},
	} {
		a := testutil.DeterministicNoise(int64(tc.signal), 1, tc.signal)
		b := testutil.DeterministicNoise(int64(tc.kernel), 1, tc.kernel)

		want, err := Direct(a, b)
		if err != nil {
			t.Fatal(err)
		}

		oa, err := NewOverlapAdd(b, tc.block)
		if err != nil {
			t.Fatal(err)
		}

		got, err := oa.Process(a)
		if err != nil {
			t.Fatal(err)
		}

		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestConvolveModes(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 1, 1, 1}

	tests := []struct {
		mode Mode
		want []float64
	}{
		{ModeFull, []float64{1, 3, 6, 10, 14, 12, 9, 5}},
		{ModeSame, []float64{3, 6, 10, 14, 12}},
		{ModeValid, []float64{10, 14}},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			got, err := ConvolveMode(a, b, tc.mode)
			if err != nil {
				t.Fatal(err)
			}

			testutil.RequireSliceNearlyEqual(t, got, tc.want, 1e-12)
		})
	}
}

func TestConvolveModeSameLongKernel(t *testing.T) {
	x := testutil.DeterministicNoise(3, 1, 5000)
	k := testutil.DC(1.0/1024, 1024)

	got, err := ConvolveMode(x, k, ModeSame)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != len(x) {
		t.Fatalf("len = %d, want %d", len(got), len(x))
	}

	// Output i averages x[i-512 .. i+511].
	i := 2000
	want := 0.0

	for j := i - 512; j <= i+511; j++ {
		want += x[j] / 1024
	}

	if d := got[i] - want; d > 1e-9 || d < -1e-9 {
		t.Fatalf("got[%d] = %v, want %v", i, got[i], want)
	}
}

func TestModeString(t *testing.T) {
	if Mode(42).String() != "unknown" {
		t.Fatal("unexpected name for invalid mode")
	}
}
