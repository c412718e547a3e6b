package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-msvocal/internal/preset"
)

type presetsCmd struct{}

// Run prints the built-in presets.
func (presetsCmd) Run() error {
	return printPresets(os.Stdout)
}

func printPresets(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tMID dB\tSIDE dB\tBAND Hz\tDESCRIPTION")

	for _, name := range preset.BuiltinNames() {
		p, err := preset.Builtin(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "%s\t%g\t%g\t%g-%g\t%s\n",
			p.Name, p.Params.MidGainDB, p.Params.SideGainDB,
			p.Params.BandLowHz, p.Params.BandHighHz, p.Description)
	}

	return tw.Flush()
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
