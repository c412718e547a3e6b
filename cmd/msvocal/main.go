// Command msvocal attenuates or removes the center-panned lead vocal of a
// stereo recording using mid/side band subtraction.
//
// Usage:
//
//	msvocal [flags] <input>
//	msvocal presets
//
// Examples:
//
//	msvocal song.wav
//	msvocal --mid-gain=-90 -o karaoke.wav song.mp3
//	msvocal --preset karaoke --report song.ogg
//	msvocal --preset ./mine.toml --side-gain 3 song.aiff
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-msvocal/dsp/effects/vocal"
	"github.com/cwbudde/algo-msvocal/internal/preset"
)

var version = "0.1.0"

// CLI is the command line of msvocal.
type CLI struct {
	LogLevel  string           `help:"Log level." enum:"debug,info,warn,error" default:"info"`
	LogFormat string           `help:"Log format." enum:"text,json" default:"text"`
	Version   kong.VersionFlag `short:"v" help:"Show version information."`

	Process processCmd `cmd:"" default:"withargs" help:"Process an audio file (default)."`
	Presets presetsCmd `cmd:"" help:"List the built-in presets."`
}

func main() {
	cli := &CLI{}

	ctx := kong.Parse(cli,
		kong.Name("msvocal"),
		kong.Description("Mid/side vocal attenuator"),
		kong.UsageOnError(),
		kong.Vars{
			"version":         version,
			"band_low":        fmt.Sprint(vocal.DefaultBandLowHz),
			"band_high":       fmt.Sprint(vocal.DefaultBandHighHz),
			"mid_gain":        fmt.Sprint(vocal.DefaultMidGainDB),
			"side_gain":       fmt.Sprint(vocal.DefaultSideGainDB),
			"protect_low":     fmt.Sprint(vocal.DefaultProtectLowHz),
			"protect_high":    fmt.Sprint(vocal.DefaultProtectHighHz),
			"output_gain":     fmt.Sprint(vocal.DefaultOutputGainDB),
			"presets":         joinNames(preset.BuiltinNames()),
			"default_timeout": "10m",
		},
	)

	log, err := newLogger(cli.LogLevel, cli.LogFormat, os.Stderr)
	ctx.FatalIfErrorf(err)

	if err := ctx.Run(log); err != nil {
		log.WithFields(logrus.Fields{
			"reason": vocal.Reason(err),
		}).Error(err)
		os.Exit(exitCode(err))
	}
}
