package preset

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-msvocal/dsp/effects/vocal"
)

func TestDecodeKeepsBase(t *testing.T) {
	base := vocal.DefaultParams()
	base.SideGainDB = 2

	src := `
name = "test"

[params]
mid_gain_db = -90
band_low_hz = 150
`

	p, err := Decode(strings.NewReader(src), base)
	if err != nil {
		t.Fatal(err)
	}

	want := base
	want.MidGainDB = -90
	want.BandLowHz = 150

	if p.Name != "test" || p.Params != want {
		t.Fatalf("got %+v, want params %+v", p, want)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"unknown key", "[params]\nvocal_gain = 3\n", ErrUnknownKey},
		{"unknown top level", "volume = 3\n", ErrUnknownKey},
		{"non finite", "[params]\nmid_gain_db = nan\n", vocal.ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src), vocal.DefaultParams())
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := Decode(strings.NewReader("[params\n"), vocal.DefaultParams()); err == nil {
		t.Fatal("expected syntax error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	want := Preset{
		Name:        "custom",
		Description: "narrow band",
		Params:      vocal.DefaultParams(),
	}
	want.Params.BandLowHz = 300
	want.Params.BandHighHz = 4500
	want.Params.OutputGainDB = -1.5

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}

	// An all-zero base proves every key is written.
	got, err := Load(path, vocal.Params{})
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestEncodeKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Preset{Name: "x", Params: vocal.DefaultParams()}); err != nil {
		t.Fatal(err)
	}

	for _, key := range []string{"band_low_hz", "band_high_hz", "mid_gain_db", "side_gain_db", "protect_low_hz", "protect_high_hz", "output_gain_db"} {
		if !strings.Contains(buf.String(), key) {
			t.Errorf("encoded preset misses %s:\n%s", key, buf.String())
		}
	}
}

func TestBuiltin(t *testing.T) {
	names := BuiltinNames()
	if strings.Join(names, ",") != "karaoke,reduce,wide" {
		t.Fatalf("names = %v", names)
	}

	k, err := Builtin("Karaoke")
	if err != nil {
		t.Fatal(err)
	}

	if k.Params.MidGainDB != -90 || k.Params.BandLowHz != vocal.DefaultBandLowHz {
		t.Fatalf("karaoke = %+v", k.Params)
	}

	for _, name := range names {
		p, _ := Builtin(name)
		if err := p.Params.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	if _, err := Builtin("opera"); !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v", err)
	}
}
