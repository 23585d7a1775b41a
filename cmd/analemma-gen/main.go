// Command analemma-gen builds the analemma table asset offline.
//
// It runs the same solar formulas as the runtime engine for every day of
// the chosen year and writes the JSON document that ships embedded in the
// binary. Pick a leap year so all 366 day keys exist.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HarryPehkonen/analemma/internal/logging"
	"github.com/HarryPehkonen/analemma/internal/table"
)

func main() {
	year := flag.Int("year", 2024, "Year to tabulate (leap years give 366 entries)")
	outPath := flag.String("out", "analemma_data.json", "Output file (use - for stdout)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	tbl := table.Generate(*year)
	meta := tbl.Metadata()
	if !meta.IsLeapYear {
		logger.Warn("%d is not a leap year: table will have %d entries and clamp day 366 lookups",
			*year, meta.TotalDays)
	}

	out := os.Stdout
	if *outPath != "-" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: create %s: %v\n", *outPath, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := tbl.WriteAsset(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write asset: %v\n", err)
		os.Exit(1)
	}

	logger.Info("wrote %d-day table for %d (EoT %.2f..%.2f min, declination %.2f..%.2f deg)",
		meta.TotalDays, meta.GeneratedYear, meta.XMin, meta.XMax, meta.YMin, meta.YMax)
}
