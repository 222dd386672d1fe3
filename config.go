/*
 * config.go, part of nndist.
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

package nndist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/rmera/nndist/traj/xyz"
	"gopkg.in/yaml.v3"
)

// Mode is the kind of output produced from the distance table.
type Mode string

// Accepted modes. ModeConcat histograms all the distances together, ModeTimeSeries
// plots the distance of each pair against time, and ModeDistribution plots
// one histogram per pair.
const (
	ModeConcat       Mode = "concat"
	ModeTimeSeries   Mode = "timeseries"
	ModeDistribution Mode = "distribution"
)

// LastFrame, given as End, means the last frame of the trajectory.
const LastFrame = -1

// Defaults for the optional fields of Config.
const (
	DefaultBins     = 500
	DefaultDistBins = 100
	DefaultBinWidth = 1.0
	DefaultDt       = 0.01 //ns per frame
	DefaultPrefix   = "dppc_p_"
)

// Config contains the parameters of an analysis. It can be read from a YAML or TOML file
// with LoadConfig, built with NewConfig, or by hand. In any case, Check should be called
// before using it.
type Config struct {
	// Traj is the XYZ trajectory file
	Traj string `yaml:"traj" toml:"traj"`

	// Begin is the first frame analyzed (1-based)
	Begin int `yaml:"begin" toml:"begin"`

	// End is the last frame analyzed, inclusive. LastFrame (-1) means the last frame
	// in the trajectory.
	End int `yaml:"end" toml:"end"`

	// Mode is the kind of output (concat, timeseries or distribution)
	Mode Mode `yaml:"mode" toml:"mode"`

	// Marker is the comment line that marks each frame, used to count the frames
	// when End is LastFrame.
	Marker string `yaml:"marker" toml:"marker"`

	// Bins is the number of dividers (bin edges) of the concatenated histogram
	Bins int `yaml:"bins" toml:"bins"`

	// DistBins is the number of dividers of each per-pair histogram
	DistBins int `yaml:"distbins" toml:"distbins"`

	// BinWidth is the width of each bin, in Angstrom
	BinWidth float64 `yaml:"binwidth" toml:"binwidth"`

	// Dt is the time between frames, in ns, used for time series
	Dt float64 `yaml:"dt" toml:"dt"`

	// OutDir is the directory where the output files are written
	OutDir string `yaml:"outdir" toml:"outdir"`

	// Prefix is prepended to the names of the output files
	Prefix string `yaml:"prefix" toml:"prefix"`

	// JSON also saves the histogram in JSON format
	JSON bool `yaml:"json" toml:"json"`

	// Verbose logs the pairs found and other details
	Verbose bool `yaml:"verbose" toml:"verbose"`
}

// NewConfig returns a Config for the trajectory traj and the frames begin to end,
// with the default values for everything else. begin and end are kept as given.
func NewConfig(traj string, begin, end int) *Config {
	c := &Config{Traj: traj, Begin: begin, End: end}
	c.SetDefaults()
	return c
}

// LoadConfig opens and decodes the configuration file in path. Files with the .toml
// extension are decoded as TOML, anything else as YAML. Fields not present in the
// file get their default values. LoadConfig does not call Check, so the
// returned Config can still be completed, for instance from the command line.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	r := bufio.NewReader(f)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(r).Decode(&c)
	default:
		err = yaml.NewDecoder(r).Decode(&c)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	//a key missing in the file decodes as 0
	if c.Begin == 0 {
		c.Begin = 1
	}
	if c.End == 0 {
		c.End = LastFrame
	}
	c.SetDefaults()
	return &c, nil
}

// SetDefaults fills the zero-valued fields of c, other than the frame range,
// with their default values.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ModeConcat
	}
	if c.Marker == "" {
		c.Marker = xyz.DefaultMarker
	}
	if c.Bins == 0 {
		c.Bins = DefaultBins
	}
	if c.DistBins == 0 {
		c.DistBins = DefaultDistBins
	}
	if c.BinWidth == 0 {
		c.BinWidth = DefaultBinWidth
	}
	if c.Dt == 0 {
		c.Dt = DefaultDt
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.Prefix == "" {
		c.Prefix = DefaultPrefix
	}
}

// Check checks if c is correct. It returns an error if a field doesn't meet
// the requirements.
func (c *Config) Check() error {
	if c.Traj == "" {
		return fmt.Errorf("the trajectory file must be specified")
	}
	if c.Begin < 1 {
		return fmt.Errorf("Begin must be greater or equal to 1, got %d", c.Begin)
	}
	if c.End != LastFrame && c.End < c.Begin {
		return fmt.Errorf("End (%d) must be %d or greater or equal to Begin (%d)", c.End, LastFrame, c.Begin)
	}
	switch c.Mode {
	case ModeConcat, ModeTimeSeries, ModeDistribution:
	default:
		return fmt.Errorf("unsupported mode %q", c.Mode)
	}
	if c.Bins < 2 || c.DistBins < 2 {
		return fmt.Errorf("Bins and DistBins must be at least 2")
	}
	if c.BinWidth <= 0 {
		return fmt.Errorf("BinWidth must be greater than 0")
	}
	if c.Dt <= 0 {
		return fmt.Errorf("Dt must be greater than 0")
	}
	return nil
}
