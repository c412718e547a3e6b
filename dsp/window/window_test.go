package window

import (
	"errors"
	"math"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		typ   Type
		first float64
		mid   float64
	}{
		{"rectangular", TypeRectangular, 1, 1},
		{"hann", TypeHann, 0, 1},
		{"hamming", TypeHamming, 0.08, 1},
		{"blackman", TypeBlackman, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := Generate(tc.typ, 9)
			if len(w) != 9 {
				t.Fatalf("len = %d, want 9", len(w))
			}

			if math.Abs(w[0]-tc.first) > 1e-12 || math.Abs(w[8]-tc.first) > 1e-12 {
				t.Fatalf("edges = %v, %v, want %v", w[0], w[8], tc.first)
			}

			if math.Abs(w[4]-tc.mid) > 1e-12 {
				t.Fatalf("center = %v, want %v", w[4], tc.mid)
			}

			for i := range 4 {
				if math.Abs(w[i]-w[8-i]) > 1e-12 {
					t.Fatalf("not symmetric at %d", i)
				}
			}
		})
	}

	if Generate(TypeHann, 0) != nil {
		t.Fatal("Generate(0) should be nil")
	}
}

func TestPeriodicHann(t *testing.T) {
	w := Generate(TypeHann, 8, WithPeriodic())

	if w[0] != 0 || math.Abs(w[4]-1) > 1e-12 {
		t.Fatalf("periodic hann = %v", w)
	}

	cg, err := CoherentGain(w)
	if err != nil || math.Abs(cg-0.5) > 1e-12 {
		t.Fatalf("CoherentGain = %v, %v; want 0.5", cg, err)
	}

	pg, err := PowerGain(w)
	if err != nil || math.Abs(pg-0.375) > 1e-12 {
		t.Fatalf("PowerGain = %v, %v; want 0.375", pg, err)
	}
}

func TestApply(t *testing.T) {
	buf := []float64{2, 2, 2}
	Apply(TypeHann, buf)

	want := []float64{0, 2, 0}
	for i := range buf {
		if math.Abs(buf[i]-want[i]) > 1e-12 {
			t.Fatalf("buf = %v, want %v", buf, want)
		}
	}

	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch")
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected empty error")
	}
}

func TestTypeString(t *testing.T) {
	if TypeHann.String() != "hann" || Type(99).String() != "unknown" {
		t.Fatal("unexpected type names")
	}
}

func TestGainErrors(t *testing.T) {
	if _, err := CoherentGain(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("CoherentGain(nil) err = %v", err)
	}
	if _, err := PowerGain(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("PowerGain(nil) err = %v", err)
	}
	if _, err := ApplyCoefficients(make([]float64, 3), make([]float64, 4)); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("ApplyCoefficients err = %v", err)
	}
}
