package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
	"github.com/cwbudde/algo-msvocal/dsp/core"
	"github.com/cwbudde/algo-msvocal/dsp/effects/vocal"
	"github.com/cwbudde/algo-msvocal/internal/audiofile"
	"github.com/cwbudde/algo-msvocal/internal/preset"
	"github.com/cwbudde/algo-msvocal/measure/loudness"
)

// errTimeout is returned when processing exceeds --timeout.
var errTimeout = errors.New("processing timed out")

type processCmd struct {
	Input      string `arg:"" type:"existingfile" help:"Input audio file (wav, aiff, mp3, ogg)."`
	Output     string `short:"o" type:"path" help:"Output file. Defaults to <input>_novocal.<wav|aiff>."`
	Preset     string `short:"p" help:"Preset file or built-in name (${presets}). Its keys override the parameter flags."`
	SavePreset string `type:"path" help:"Write the effective parameters to this TOML file."`
	BitDepth   int    `help:"Output PCM bit depth (16, 24 or 32). 0 keeps the source layout." default:"0"`
	Float      bool   `help:"Write 32-bit float WAV (overrides --bit-depth)."`
	Report     bool   `help:"Log the processing report."`

	BandLow     float64 `name:"band-low" help:"Lower edge of the vocal band in Hz." default:"${band_low}"`
	BandHigh    float64 `name:"band-high" help:"Upper edge of the vocal band in Hz." default:"${band_high}"`
	MidGain     float64 `name:"mid-gain" help:"Target level of the vocal band in dB; -80 or less removes it." default:"${mid_gain}"`
	SideGain    float64 `name:"side-gain" help:"Side channel gain in dB." default:"${side_gain}"`
	ProtectLow  float64 `name:"protect-low" help:"Low protection frequency in Hz (accepted, no effect)." default:"${protect_low}"`
	ProtectHigh float64 `name:"protect-high" help:"High protection low-pass cutoff in Hz; 0 disables it." default:"${protect_high}"`
	OutputGain  float64 `name:"output-gain" help:"Output gain in dB before the peak safety stage." default:"${output_gain}"`

	Timeout time.Duration `help:"Abort when processing takes longer than this." default:"${default_timeout}"`
}

// Run processes one file.
func (c *processCmd) Run(log *logrus.Logger) error {
	params, name, err := c.params()
	if err != nil {
		return err
	}

	entry := log.WithFields(logrus.Fields{
		"input":  c.Input,
		"preset": name,
	})

	if c.SavePreset != "" {
		if err := preset.Save(c.SavePreset, preset.Preset{Name: name, Params: params}); err != nil {
			return err
		}

		entry.WithField("path", c.SavePreset).Info("preset saved")
	}

	in, info, err := audiofile.Read(c.Input)
	if err != nil {
		return err
	}

	entry.WithFields(logrus.Fields{
		"format":      info.Format,
		"sample_rate": info.SampleRate,
		"channels":    info.Channels,
		"bit_depth":   info.BitDepth,
		"float":       info.Float,
		"frames":      info.Frames,
	}).Debug("input decoded")

	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	start := time.Now()

	out, rep, err := processContext(ctx, in, params)
	if err != nil {
		return err
	}

	if c.Report {
		logReport(entry, rep)
		logLoudness(entry, in, out)
	}

	path := c.Output
	if path == "" {
		path = defaultOutputPath(c.Input, info)
	}

	f := audiofile.FormatFromPath(path)
	if !f.CanEncode() {
		return fmt.Errorf("%w: output %s", audiofile.ErrUnsupportedFormat, path)
	}

	if err := audiofile.Write(path, out, f, c.sampleFormat(info)); err != nil {
		return err
	}

	entry.WithFields(logrus.Fields{
		"output":   path,
		"elapsed":  time.Since(start).Round(time.Millisecond),
		"mid_gain": params.MidGainDB,
	}).Info("done")

	return nil
}

// sampleFormat picks the output layout: an explicit flag wins, otherwise
// the source layout is kept.
func (c *processCmd) sampleFormat(info audiofile.Info) audiofile.SampleFormat {
	switch {
	case c.Float:
		return audiofile.SampleFormat{Float: true}
	case c.BitDepth != 0:
		return audiofile.SampleFormat{BitDepth: c.BitDepth}
	default:
		return info.SampleFormat()
	}
}

// params merges the flag values with the optional preset.
func (c *processCmd) params() (vocal.Params, string, error) {
	p := vocal.Params{
		BandLowHz:     c.BandLow,
		BandHighHz:    c.BandHigh,
		MidGainDB:     c.MidGain,
		SideGainDB:    c.SideGain,
		ProtectLowHz:  c.ProtectLow,
		ProtectHighHz: c.ProtectHigh,
		OutputGainDB:  c.OutputGain,
	}

	if c.Preset == "" {
		return p, "custom", p.Validate()
	}

	if filepath.Ext(c.Preset) == ".toml" || strings.ContainsRune(c.Preset, os.PathSeparator) {
		pr, err := preset.Load(c.Preset, p)
		if err != nil {
			return vocal.Params{}, "", err
		}

		return pr.Params, presetName(pr, c.Preset), nil
	}

	pr, err := preset.Builtin(c.Preset)
	if err != nil {
		return vocal.Params{}, "", err
	}

	return pr.Params, pr.Name, nil
}

func presetName(p preset.Preset, path string) string {
	if p.Name != "" {
		return p.Name
	}

	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

// processContext runs vocal.ProcessReport and gives up when ctx ends.
func processContext(ctx context.Context, in *buffer.Audio, p vocal.Params) (*buffer.Audio, vocal.Report, error) {
	type result struct {
		out *buffer.Audio
		rep vocal.Report
		err error
	}

	done := make(chan result, 1)

	go func() {
		out, rep, err := vocal.ProcessReport(in, p)
		done <- result{out, rep, err}
	}()

	select {
	case r := <-done:
		return r.out, r.rep, r.err
	case <-ctx.Done():
		return nil, vocal.Report{}, fmt.Errorf("%w: %w", errTimeout, ctx.Err())
	}
}

func logReport(entry *logrus.Entry, rep vocal.Report) {
	entry.WithFields(logrus.Fields{
		"band":           fmt.Sprintf("%.4f-%.4f", rep.Band.Low, rep.Band.High),
		"band_corrected": rep.BandCorrected,
		"boost":          rep.Boost,
		"mid_gain":       rep.MidGain,
		"gate":           rep.GateEngaged,
		"center_kill":    rep.CenterKill,
		"mean_gate":      rep.MeanGate,
		"peak":           rep.PeakBeforeSafety,
		"safety_scale":   rep.SafetyScale,
		"protect":        rep.ProtectApplied,
		"protect_hz":     rep.ProtectCutoff,
	}).Info("report")
}

// logLoudness logs the integrated loudness before and after processing.
func logLoudness(entry *logrus.Entry, in, out *buffer.Audio) {
	before, err := loudness.Measure(in)
	if err != nil {
		entry.WithError(err).Warn("input loudness")
		return
	}

	after, err := loudness.Measure(out)
	if err != nil {
		entry.WithError(err).Warn("output loudness")
		return
	}

	entry.WithFields(logrus.Fields{
		"input_lufs":     lufs(before.Integrated),
		"output_lufs":    lufs(after.Integrated),
		"input_peak_db":  lufs(core.LinearToDB(before.Peak)),
		"output_peak_db": lufs(core.LinearToDB(after.Peak)),
	}).Info("loudness")
}

// lufs formats a level in dB. -Inf is not representable in JSON.
func lufs(v float64) string {
	if math.IsInf(v, -1) {
		return "-inf"
	}

	return strconv.FormatFloat(v, 'f', 2, 64)
}

// defaultOutputPath places the result next to the input.
func defaultOutputPath(input string, info audiofile.Info) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "_novocal" + info.OutputFormat().Extension()
}

// exitCode maps errors to process exit codes: 2 for bad input or
// parameters, 3 for timeouts and 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errTimeout):
		return 3
	case vocal.Reason(err) != "internal",
		errors.Is(err, audiofile.ErrUnsupportedFormat),
		errors.Is(err, audiofile.ErrInvalidFile),
		errors.Is(err, audiofile.ErrUnsupportedEncoding),
		errors.Is(err, preset.ErrUnknownKey),
		errors.Is(err, preset.ErrUnknownPreset):
		return 2
	default:
		return 1
	}
}
