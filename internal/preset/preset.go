// Package preset stores vocal attenuator settings as TOML files.
//
// A preset file looks like
//
//	name = "karaoke"
//	description = "remove the lead vocal"
//
//	[params]
//	mid_gain_db = -90
//	band_low_hz = 150
//
// Keys missing from [params] keep the value of the base parameters passed
// to Load or Decode.
package preset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cwbudde/algo-msvocal/dsp/effects/vocal"
)

var (
	// ErrUnknownKey is returned when a preset file contains keys that do
	// not map to a parameter.
	ErrUnknownKey = errors.New("preset: unknown key")

	// ErrUnknownPreset is returned by Builtin for names it does not know.
	ErrUnknownPreset = errors.New("preset: unknown built-in preset")
)

// Preset is a named parameter set.
type Preset struct {
	Name        string       `toml:"name"`
	Description string       `toml:"description,omitempty"`
	Params      vocal.Params `toml:"params"`
}

var builtins = map[string]Preset{
	"karaoke": {
		Name:        "karaoke",
		Description: "remove the centered lead vocal",
		Params:      with(func(p *vocal.Params) { p.MidGainDB = -90 }),
	},
	"reduce": {
		Name:        "reduce",
		Description: "pull the lead vocal back by 12 dB",
		Params:      with(func(p *vocal.Params) { p.MidGainDB = -12 }),
	},
	"wide": {
		Name:        "wide",
		Description: "soften the vocal and widen the stereo image",
		Params: with(func(p *vocal.Params) {
			p.MidGainDB = -6
			p.SideGainDB = 3
		}),
	},
}

func with(fn func(*vocal.Params)) vocal.Params {
	p := vocal.DefaultParams()
	fn(&p)

	return p
}

// Builtin returns the built-in preset called name.
func Builtin(name string) (Preset, error) {
	p, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(BuiltinNames(), ", "))
	}

	return p, nil
}

// BuiltinNames lists the built-in presets in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Load reads the preset file at path on top of base.
func Load(path string, base vocal.Params) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}
	defer f.Close()

	return Decode(f, base)
}

// Decode parses a preset on top of base and validates the result.
func Decode(r io.Reader, base vocal.Params) (Preset, error) {
	p := Preset{Params: base}

	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := p.Params.Validate(); err != nil {
		return Preset{}, fmt.Errorf("preset: %w", err)
	}

	return p, nil
}

// Save writes p to path, replacing any existing file.
func Save(path string, p Preset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preset: %w", err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return Encode(f, p)
}

// Encode writes p as TOML.
func Encode(w io.Writer, p Preset) error {
	if err := toml.NewEncoder(w).Encode(p); err != nil {
		return fmt.Errorf("preset: %w", err)
	}

	return nil
}
