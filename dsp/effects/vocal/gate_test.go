package vocal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-msvocal/internal/testutil"
)

func TestSmootherAttackRelease(t *testing.T) {
	s := NewSmoother(smoothAttack, smoothRelease)

	if s.Value() != 1 {
		t.Fatalf("initial value = %v, want 1", s.Value())
	}

	buf := []float64{0, 0, 1, 1}
	s.ProcessInPlace(buf)

	want := []float64{0.7, 0.49, 0.5155, 0.539725}
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-12)

	s.Reset()

	if got := s.Step(1); got != 1 {
		t.Fatalf("after Reset Step(1) = %v, want 1", got)
	}
}

func TestSmootherConverges(t *testing.T) {
	s := NewSmoother(smoothAttack, smoothRelease)

	for range 200 {
		s.Step(0.25)
	}

	if math.Abs(s.Value()-0.25) > 1e-9 {
		t.Fatalf("value = %v, want 0.25", s.Value())
	}
}

func TestRMSEnvelope(t *testing.T) {
	x := testutil.DC(0.5, 4096)

	env, err := rmsEnvelope(x, gateWindow)
	if err != nil {
		t.Fatal(err)
	}

	if len(env) != len(x) {
		t.Fatalf("len = %d, want %d", len(env), len(x))
	}

	if math.Abs(env[2048]-0.5) > 1e-9 {
		t.Fatalf("interior = %v, want 0.5", env[2048])
	}

	// Same-length convolution sees half a window at the start.
	if want := math.Sqrt(0.25 * 512 / 1024); math.Abs(env[0]-want) > 1e-9 {
		t.Fatalf("edge = %v, want %v", env[0], want)
	}
}

func TestRMSEnvelopeShortInputUsesGlobalRMS(t *testing.T) {
	x := []float64{0.3, -0.4, 0, 0}

	env, err := rmsEnvelope(x, gateWindow)
	if err != nil {
		t.Fatal(err)
	}

	want := math.Sqrt((0.09+0.16)/4 + envelopeEpsilon)
	for i, v := range env {
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("env[%d] = %v, want %v", i, v, want)
		}
	}

	empty, err := rmsEnvelope(nil, gateWindow)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty input: %v, %v", empty, err)
	}
}

func TestRMSEnvelopeSilence(t *testing.T) {
	env, err := rmsEnvelope(make([]float64, 3000), gateWindow)
	if err != nil {
		t.Fatal(err)
	}

	for i, v := range env {
		if math.IsNaN(v) || v < 0 || v > 1e-5 {
			t.Fatalf("env[%d] = %v, want ~1e-6", i, v)
		}
	}
}

func TestGateMid(t *testing.T) {
	const n = 8192

	loud := testutil.DeterministicSine(1000, fs, 0.5, n)
	quiet := testutil.DeterministicSine(1000, fs, 0.001, n)

	mean, err := gateMid(loud, centerKillDeep)
	if err != nil {
		t.Fatal(err)
	}

	if mean < 0.99 {
		t.Fatalf("loud signal mean gate = %v, want ~1", mean)
	}

	mean, err = gateMid(quiet, centerKillDeep)
	if err != nil {
		t.Fatal(err)
	}

	// RMS 0.00094·0.707 against a 0.0178 threshold.
	if mean > 0.05 {
		t.Fatalf("quiet signal mean gate = %v, want < 0.05", mean)
	}

	if r := testutil.RMS(testutil.Interior(quiet, 2048)); r > 0.001*0.94*0.05 {
		t.Fatalf("quiet residual RMS = %v", r)
	}

	if mean, err := gateMid(nil, centerKillDeep); err != nil || mean != 0 {
		t.Fatalf("empty mid: mean %v, err %v", mean, err)
	}
}
