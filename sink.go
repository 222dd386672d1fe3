/*
 * sink.go, part of nndist.
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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rmera/nndist/chemplot"
	"github.com/rmera/nndist/histo"
	"gonum.org/v1/gonum/mat"
)

const (
	distanceLabel    = "distance (Å)"
	probabilityLabel = "Probability"
	timeLabel        = "time (ns)"
)

// FileSink writes the results of an analysis to files in Dir. The names of the
// files start with Prefix and contain the first and last frames analyzed.
type FileSink struct {
	Dir    string
	Prefix string
	JSON   bool    //Also write the histogram in JSON format
	Dt     float64 //Time between frames in the time series plots, in ns
}

// NewFileSink returns a FileSink with the output settings in c.
func NewFileSink(c *Config) *FileSink {
	return &FileSink{Dir: c.OutDir, Prefix: c.Prefix, JSON: c.JSON, Dt: c.Dt}
}

// DataName returns the name of the file with the concatenated distances.
func (F *FileSink) DataName(begin, end int) string {
	return filepath.Join(F.Dir, fmt.Sprintf("%snnfr%d_to_fr%d.dat", F.Prefix, begin, end))
}

// PlotName returns the name, without extension, of the histogram plot.
func (F *FileSink) PlotName(begin, end int) string {
	return filepath.Join(F.Dir, fmt.Sprintf("%snn_fr%d_to_fr%d", F.Prefix, begin, end))
}

func (F *FileSink) tsName(begin, end int) string {
	return filepath.Join(F.Dir, fmt.Sprintf("%snn_ts_fr%d_to_fr%d", F.Prefix, begin, end))
}

func (F *FileSink) distName(begin, end int) string {
	return filepath.Join(F.Dir, fmt.Sprintf("%snn_dist_fr%d_to_fr%d", F.Prefix, begin, end))
}

// WriteData writes one value of sample per line, in the same format
// NumPy's savetxt uses by default.
func (F *FileSink) WriteData(begin, end int, sample []float64) (err error) {
	out, err := os.Create(F.DataName(begin, end))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(out)
	buf := make([]byte, 0, 32)
	for _, v := range sample {
		buf = strconv.AppendFloat(buf[:0], v, 'e', 18, 64)
		buf = append(buf, '\n')
		if _, err = w.Write(buf); err != nil {
			return err
		}
	}
	return w.Flush()
}

// RenderHistogram plots the probability density of h to a PNG file, and, if F.JSON
// is true, writes h in JSON format to a file with the same name and the json extension.
func (F *FileSink) RenderHistogram(begin, end int, h *histo.Data) error {
	name := F.PlotName(begin, end)
	if err := chemplot.HistoPlot(h, "", distanceLabel, probabilityLabel, name); err != nil {
		return err
	}
	return F.writeJSON(name, h)
}

//writeJSON writes v to name.json, only if F.JSON is set.
func (F *FileSink) writeJSON(name string, v json.Marshaler) error {
	if !F.JSON {
		return nil
	}
	j, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(name+".json", j, 0o644)
}

// RenderTimeSeries plots each row of table against time to a PNG file.
func (F *FileSink) RenderTimeSeries(begin, end int, table mat.Matrix) error {
	dt := F.Dt
	if dt <= 0 {
		dt = DefaultDt
	}
	return chemplot.TimeSeriesPlot(table, dt, "", timeLabel, distanceLabel, F.tsName(begin, end))
}

// RenderDistributions plots all the histograms in m, one over the other, to a PNG file.
// If F.JSON is true, m is also written in JSON format.
func (F *FileSink) RenderDistributions(begin, end int, m *histo.Matrix) error {
	name := F.distName(begin, end)
	if err := chemplot.DistributionsPlot(m, "", distanceLabel, probabilityLabel, name); err != nil {
		return err
	}
	return F.writeJSON(name, m)
}
