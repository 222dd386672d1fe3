/*
 * nndist.go, part of nndist.
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
	"fmt"
	"log"

	"github.com/rmera/nndist/histo"
	"github.com/rmera/nndist/nn"
	"github.com/rmera/nndist/traj/xyz"
	v3 "github.com/rmera/nndist/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Result contains the products of an analysis.
type Result struct {
	Begin, End int
	Pairs      []nn.Pair  //Nearest-neighbor pairs in the first frame
	Mutual     int        //How many of the pairs are mutual
	Series     *mat.Dense //One row per pair, one column per frame
	Sample     []float64  //Series, concatenated. Only in concat mode.
	Histo      *histo.Data
}

// Analyze opens the trajectory in c, runs the analysis and writes the results
// with a FileSink.
func Analyze(c *Config) (*Result, error) {
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	traj, err := xyz.Open(c.Traj)
	if err != nil {
		return nil, err
	}
	traj.Marker = c.Marker
	if c.Verbose {
		log.Printf("%s: %d atoms, %d frame records, %d frames marked with %q", c.Traj, traj.Len(), traj.Records(), traj.CountMarkers(c.Marker), c.Marker)
	}
	return Run(c, traj, NewFileSink(c))
}

// Run pairs the atoms in the first frame of traj with their nearest neighbors,
// computes the distance time series of each pair for the frames in c, and sends
// the results to sink, according to the mode in c.
func Run(c *Config, traj FrameCounter, sink Sink) (*Result, error) {
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}
	res := &Result{Begin: c.Begin, End: c.End}
	if res.End == LastFrame {
		res.End = traj.NFrames()
		log.Printf("Analyzing up to the last frame, %d", res.End)
	}
	if res.End < res.Begin {
		return nil, fmt.Errorf("the trajectory has %d frames, can't start from frame %d", res.End, res.Begin)
	}
	var err error
	res.Pairs, res.Mutual, err = FirstFramePairs(traj)
	if err != nil {
		return nil, err
	}
	log.Printf("%d nearest-neighbor pairs in the first frame, %d mutual", len(res.Pairs), res.Mutual)
	if c.Verbose {
		log.Printf("Pairs: %v", res.Pairs)
	}
	res.Series, err = TimeSeries(traj, res.Pairs, res.Begin, res.End)
	if err != nil {
		return nil, fmt.Errorf("TimeSeries: %w", err)
	}
	switch c.Mode {
	case ModeTimeSeries:
		err = sink.RenderTimeSeries(res.Begin, res.End, res.Series)
	case ModeDistribution:
		err = sink.RenderDistributions(res.Begin, res.End, PairHistograms(res.Series, histo.Dividers(c.DistBins, c.BinWidth)))
	default:
		res.Sample = Concat(res.Series)
		mean, std := stat.MeanStdDev(res.Sample, nil)
		log.Printf("%d distances, mean %.3f, standard deviation %.3f", len(res.Sample), mean, std)
		if err = sink.WriteData(res.Begin, res.End, res.Sample); err != nil {
			break
		}
		res.Histo = histo.NewData(histo.Dividers(c.Bins, c.BinWidth), res.Sample)
		if out := len(res.Sample) - res.Histo.Total(); out > 0 {
			log.Printf("%d distances fall outside the histogram and will not be plotted", out)
		}
		err = sink.RenderHistogram(res.Begin, res.End, res.Histo)
	}
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}
	return res, nil
}

// FirstFramePairs returns the nearest-neighbor pairs in the first frame of traj,
// and how many of them are mutual.
func FirstFramePairs(traj Framer) ([]nn.Pair, int, error) {
	coords := v3.Zeros(traj.Len())
	if err := traj.Frame(1, coords); err != nil {
		return nil, 0, fmt.Errorf("reading the first frame: %w", err)
	}
	cand, err := nn.Nearest(coords)
	if err != nil {
		return nil, 0, err
	}
	pairs := nn.Dedup(cand)
	return pairs, nn.Mutual(pairs, cand), nil
}

// TimeSeries returns a matrix with the distance between the atoms of each pair
// (rows) in each frame from begin to end, both included (columns).
func TimeSeries(traj Framer, pairs []nn.Pair, begin, end int) (*mat.Dense, error) {
	if begin < 1 || end < begin {
		return nil, fmt.Errorf("invalid frame range %d to %d", begin, end)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no pairs given")
	}
	natoms := traj.Len()
	for _, p := range pairs {
		if p.I < 0 || p.J < 0 || p.I >= natoms || p.J >= natoms || p.I == p.J {
			return nil, fmt.Errorf("invalid pair %v for %d atoms", p, natoms)
		}
	}
	series := mat.NewDense(len(pairs), end-begin+1, nil)
	coords := v3.Zeros(natoms)
	for f := begin; f <= end; f++ {
		if err := traj.Frame(f, coords); err != nil {
			return nil, err
		}
		for i, p := range pairs {
			series.Set(i, f-begin, coords.Dist(p.I, p.J))
		}
	}
	return series, nil
}

// Concat returns the rows of table, one after the other, in a single slice.
func Concat(table mat.Matrix) []float64 {
	r, c := table.Dims()
	ret := make([]float64, r*c)
	for i := 0; i < r; i++ {
		mat.Row(ret[i*c:(i+1)*c], i, table)
	}
	return ret
}

// PairHistograms returns a matrix with one histogram for each row of table.
// The histogram of row i has the ID i.
func PairHistograms(table mat.Matrix, dividers []float64) *histo.Matrix {
	r, c := table.Dims()
	m := histo.NewMatrix(r, 1, dividers)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, table)
		m.NewHisto(i, 0, nil, row, i)
	}
	return m
}
