package main

import (
	"context"
	"flag"
	"io"
	"os"

	"peaknear-tools/pntools/catalog"
	"peaknear-tools/pntools/config"
	"peaknear-tools/pntools/geo"
	"peaknear-tools/pntools/peak"
	"peaknear-tools/pntools/report"
	"peaknear-tools/pntools/terminal"

	"github.com/google/subcommands"
)

type nearCmd struct {
	format     string
	outputFile string
}

const (
	textFormat = "text"
	jsonFormat = "json"
	csvFormat  = "csv"
	gpxFormat  = "gpx"
)

func (*nearCmd) Name() string { return "near" }
func (*nearCmd) Synopsis() string {
	return "List catalog peaks within the search radius, nearest first."
}
func (*nearCmd) Usage() string {
	return `near [-format] [-output]
	Print peaks within the configured radius ordered by distance.
  `
}

func (c *nearCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", textFormat, "format to display peaks (text, json, csv, gpx)")
	f.StringVar(&c.outputFile, "output", "", "output file")
}

func (c *nearCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := args[0].(*config.Config)

	// validate parameters
	switch c.format {
	case textFormat, jsonFormat, csvFormat, gpxFormat:
	default:
		terminal.Error(nil, "Invalid format '%s'", c.format)
		return 1
	}

	// load the peak catalog
	o := terminal.NewOperation("Loading peak catalog '%s'", cfg.CatalogPath)
	peaks, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		o.Error(err, "Failed to load peak catalog")
		return 1
	}
	o.Success("Loaded %d peaks from '%s'", len(peaks), cfg.CatalogPath)

	// filter to the search radius and rank by distance
	ref := geo.Point{Latitude: cfg.Latitude, Longitude: cfg.Longitude}
	ranked, err := peak.Nearby(ref, cfg.RadiusKm, peaks)
	if err != nil {
		terminal.Error(err, "Failed to rank peaks")
		return 1
	}

	// get a file writer if needed
	var w io.Writer = os.Stdout
	if c.outputFile != "" {
		file, err := os.Create(c.outputFile)
		if err != nil {
			terminal.Error(err, "Could not open file '%s'", c.outputFile)
			return 1
		}
		defer file.Close()
		w = file
	}

	if err := render(w, c.format, ranked); err != nil {
		terminal.Error(err, "Failed to write peaks in %s format", c.format)
		return 1
	}

	return 0
}

func render(w io.Writer, format string, ranked []peak.Ranked) error {
	switch format {
	case jsonFormat:
		return report.JSON(w, ranked)
	case csvFormat:
		return report.CSV(w, ranked)
	case gpxFormat:
		return report.GPX(w, ranked)
	default:
		return report.Text(w, ranked)
	}
}
