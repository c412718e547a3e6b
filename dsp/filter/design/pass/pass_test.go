package pass

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func magDB(coeffs []biquad.Coefficients, freq, sampleRate float64) float64 {
	h := cmplx.Abs(biquad.CascadeResponse(coeffs, 1, freq, sampleRate))

	return 20 * math.Log10(h)
}

func assertStable(t *testing.T, coeffs []biquad.Coefficients) {
	t.Helper()

	for i := range coeffs {
		c := coeffs[i]
		for _, v := range []float64{c.B0, c.B1, c.B2, c.A1, c.A2} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("section %d has non-finite coefficient: %+v", i, c)
			}
		}

		if !c.IsStable() {
			t.Fatalf("section %d is unstable: %+v", i, c)
		}
	}
}

func TestPrototypePoles(t *testing.T) {
	for order := 1; order <= 6; order++ {
		for k := range order {
			p := prototypePole(order, k)
			if !almostEqual(cmplx.Abs(p), 1, tol) || real(p) >= 0 {
				t.Fatalf("order %d pole %d = %v, want left half of the unit circle", order, k, p)
			}
		}
	}

	if p := prototypePole(3, 1); !almostEqual(real(p), -1, tol) || !almostEqual(imag(p), 0, tol) {
		t.Fatalf("order 3 real pole = %v, want -1", p)
	}

	// Section Q of a pole pair is -1/(2 Re p).
	for _, tc := range []struct {
		order, k int
		q        float64
	}{
		{2, 0, 1 / math.Sqrt2},
		{4, 0, 1.3065629648763766},
		{4, 1, 0.5411961001461969},
	} {
		if got := -1 / (2 * real(prototypePole(tc.order, tc.k))); !almostEqual(got, tc.q, 1e-12) {
			t.Fatalf("order %d pair %d Q = %.16f, want %.16f", tc.order, tc.k, got, tc.q)
		}
	}
}

func TestBilinearK_ValidAndInvalid(t *testing.T) {
	k, ok := bilinearK(12000, 48000)
	if !ok || !almostEqual(k, 1, 1e-12) {
		t.Fatalf("bilinearK(fs/4) = %v, %v; want 1, true", k, ok)
	}

	for _, tc := range []struct{ f, fs float64 }{
		{0, 48000},
		{-1, 48000},
		{24000, 48000},
		{1000, 0},
		{1000, math.Inf(1)},
		{math.NaN(), 48000},
	} {
		if _, ok := bilinearK(tc.f, tc.fs); ok {
			t.Fatalf("bilinearK(%v, %v) accepted", tc.f, tc.fs)
		}
	}
}

func TestButterworthLP(t *testing.T) {
	const fs = 48000.0

	tests := []struct {
		order    int
		sections int
	}{
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 2},
	}

	for _, tc := range tests {
		coeffs := ButterworthLP(8000, tc.order, fs)
		if len(coeffs) != tc.sections {
			t.Fatalf("order %d: got %d sections, want %d", tc.order, len(coeffs), tc.sections)
		}

		assertStable(t, coeffs)

		if got := magDB(coeffs, 8000, fs); !almostEqual(got, -3.0103, 1e-3) {
			t.Fatalf("order %d: cutoff gain %.5f dB, want -3.0103", tc.order, got)
		}

		if got := magDB(coeffs, 1, fs); !almostEqual(got, 0, 1e-6) {
			t.Fatalf("order %d: DC gain %.8f dB, want 0", tc.order, got)
		}
	}
}

func TestButterworthLP_Rolloff(t *testing.T) {
	coeffs := ButterworthLP(1000, 4, 48000)

	// 24 dB/octave asymptotically; two octaves up is well past -40 dB.
	if got := magDB(coeffs, 4000, 48000); got > -40 {
		t.Fatalf("gain two octaves above cutoff = %.2f dB, want < -40", got)
	}
}

func TestButterworthLP_Invalid(t *testing.T) {
	for _, tc := range []struct {
		freq  float64
		order int
	}{
		{1000, 0},
		{0, 4},
		{24000, 4},
		{30000, 4},
	} {
		if got := ButterworthLP(tc.freq, tc.order, 48000); got != nil {
			t.Fatalf("ButterworthLP(%v, %d) = %v, want nil", tc.freq, tc.order, got)
		}
	}
}

func TestButterworthBP(t *testing.T) {
	const fs = 44100.0

	tests := []struct {
		name      string
		low, high float64
		order     int
	}{
		{"vocal band", 200, 6000, 4},
		{"narrow", 900, 1100, 4},
		{"order 1", 300, 3000, 1},
		{"order 3", 300, 3000, 3},
		{"near nyquist", 5000, 21950, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			coeffs, err := ButterworthBP(tc.low, tc.high, tc.order, fs)
			if err != nil {
				t.Fatalf("ButterworthBP: %v", err)
			}

			if len(coeffs) != tc.order {
				t.Fatalf("got %d sections, want %d", len(coeffs), tc.order)
			}

			assertStable(t, coeffs)

			wl := math.Tan(math.Pi * tc.low / fs)
			wh := math.Tan(math.Pi * tc.high / fs)
			center := math.Atan(math.Sqrt(wl*wh)) * fs / math.Pi

			if got := magDB(coeffs, center, fs); !almostEqual(got, 0, 1e-9) {
				t.Fatalf("center gain %.12f dB, want 0", got)
			}

			if got := magDB(coeffs, tc.low, fs); !almostEqual(got, -3.0103, 1e-3) {
				t.Fatalf("low edge gain %.5f dB, want -3.0103", got)
			}

			if got := magDB(coeffs, tc.high, fs); !almostEqual(got, -3.0103, 1e-3) {
				t.Fatalf("high edge gain %.5f dB, want -3.0103", got)
			}

			for i := range coeffs {
				if coeffs[i].B1 != 0 || coeffs[i].B0 != -coeffs[i].B2 {
					t.Fatalf("section %d numerator not of the form b(1 - z^-2): %+v", i, coeffs[i])
				}
			}
		})
	}
}

func TestButterworthBP_StopbandAttenuation(t *testing.T) {
	coeffs, err := ButterworthBP(200, 6000, 4, 44100)
	if err != nil {
		t.Fatalf("ButterworthBP: %v", err)
	}

	if got := magDB(coeffs, 20, 44100); got > -60 {
		t.Fatalf("gain at 20 Hz = %.2f dB, want < -60", got)
	}

	if got := magDB(coeffs, 20000, 44100); got > -40 {
		t.Fatalf("gain at 20 kHz = %.2f dB, want < -40", got)
	}
}

func TestButterworthBP_Invalid(t *testing.T) {
	for _, tc := range []struct {
		low, high float64
		order     int
		fs        float64
	}{
		{200, 6000, 0, 44100},
		{0, 6000, 4, 44100},
		{200, 22050, 4, 44100},
		{6000, 200, 4, 44100},
		{1000, 1000, 4, 44100},
		{200, 6000, 4, 0},
	} {
		_, err := ButterworthBP(tc.low, tc.high, tc.order, tc.fs)
		if !errors.Is(err, ErrInvalidParams) {
			t.Fatalf("ButterworthBP(%v, %v, %d, %v) err = %v, want ErrInvalidParams",
				tc.low, tc.high, tc.order, tc.fs, err)
		}
	}
}
