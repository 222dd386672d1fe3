/*
 * main.go, part of nndist.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Command nndist plots the distribution of the distances between atoms that are
// nearest neighbors in the first frame of an XYZ trajectory.
//
// use: nndist [flags] trajectory.xyz frame_begin frame_end
//
// A frame_end of -1 means the last frame in the trajectory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/rmera/nndist"
)

var errUsage = errors.New("wrong number of arguments")

//parseArgs builds the configuration for a run from the command line arguments,
//without the program name. Usage and flag errors are written to out.
func parseArgs(args []string, out io.Writer) (*nndist.Config, error) {
	fs := flag.NewFlagSet("nndist", flag.ContinueOnError)
	fs.SetOutput(out)
	config := fs.String("config", "", "YAML or TOML file with the analysis parameters. Command line values override it.")
	mode := fs.String("mode", string(nndist.ModeConcat), "Output: concat, timeseries or distribution")
	marker := fs.String("marker", "", "Comment line marking each frame, used to find the last frame")
	bins := fs.Int("bins", nndist.DefaultBins, "Number of bin edges of the histogram")
	distbins := fs.Int("distbins", nndist.DefaultDistBins, "Number of bin edges of each per-pair histogram")
	binwidth := fs.Float64("binwidth", nndist.DefaultBinWidth, "Width of the histogram bins, in Angstrom")
	dt := fs.Float64("dt", nndist.DefaultDt, "Time between frames, in ns")
	outdir := fs.String("outdir", ".", "Directory for the output files")
	prefix := fs.String("prefix", nndist.DefaultPrefix, "Prefix for the names of the output files")
	jsonout := fs.Bool("json", false, "Also write the histograms in JSON format")
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Usage = func() {
		fmt.Fprintf(out, "use: nndist [flags] trajectory.xyz frame_begin frame_end\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var c *nndist.Config
	var err error
	if *config != "" {
		log.Printf("Reading configuration file `%s`\n", *config)
		c, err = nndist.LoadConfig(*config)
		if err != nil {
			return nil, fmt.Errorf("LoadConfig: %w", err)
		}
	} else {
		c = nndist.NewConfig("", 1, nndist.LastFrame)
	}

	pos := fs.Args()
	switch {
	case len(pos) == 3:
		c.Traj = pos[0]
		if c.Begin, err = strconv.Atoi(pos[1]); err != nil {
			return nil, fmt.Errorf("invalid frame_begin %q: %w", pos[1], err)
		}
		if c.End, err = strconv.Atoi(pos[2]); err != nil {
			return nil, fmt.Errorf("invalid frame_end %q: %w", pos[2], err)
		}
	case len(pos) == 0 && *config != "":
	default:
		fs.Usage()
		return nil, errUsage
	}

	//Only the flags actually given override the configuration file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			c.Mode = nndist.Mode(*mode)
		case "marker":
			c.Marker = *marker
		case "bins":
			c.Bins = *bins
		case "distbins":
			c.DistBins = *distbins
		case "binwidth":
			c.BinWidth = *binwidth
		case "dt":
			c.Dt = *dt
		case "outdir":
			c.OutDir = *outdir
		case "prefix":
			c.Prefix = *prefix
		case "json":
			c.JSON = *jsonout
		case "v":
			c.Verbose = *verbose
		}
	})
	return c, c.Check()
}

func main() {
	c, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	begin := time.Now()
	res, err := nndist.Analyze(c)
	if err != nil {
		log.Fatal(err)
	}
	if c.Verbose {
		log.Printf("Frames %d to %d analyzed", res.Begin, res.End)
	}
	fmt.Println("Elapsed time is ", time.Since(begin).Seconds(), " second.")
}
