/*
 * plot_test.go
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
 *
 */

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/nndist/histo"
	"gonum.org/v1/gonum/mat"
)

func checkPNG(Te *testing.T, name string) {
	Te.Helper()
	b, err := os.ReadFile(name + ".png")
	if err != nil {
		Te.Fatal(err)
	}
	if len(b) < 8 || string(b[1:4]) != "PNG" {
		Te.Errorf("%s.png is not a PNG file", name)
	}
}

func TestHistoPlot(Te *testing.T) {
	raw := []float64{3.1, 4.2, 4.4, 5.0, 5.5, 6.1, 4.9, 4.8}
	h := histo.NewData(histo.Dividers(10, 1), raw)
	name := filepath.Join(Te.TempDir(), "histo")
	if err := HistoPlot(h, "", "distance (Å)", "Probability", name); err != nil {
		Te.Fatal(err)
	}
	checkPNG(Te, name)
	if err := HistoPlot(nil, "", "", "", name); err == nil {
		Te.Error("expected an error for nil data")
	}
}

func TestDistributionsPlot(Te *testing.T) {
	m := histo.NewMatrix(2, 1, histo.Dividers(10, 1))
	m.NewHisto(0, 0, nil, []float64{1, 2, 2, 3})
	m.NewHisto(1, 0, nil, []float64{5, 6, 6, 7})
	name := filepath.Join(Te.TempDir(), "dist")
	if err := DistributionsPlot(m, "", "distance (Å)", "Probability", name); err != nil {
		Te.Fatal(err)
	}
	checkPNG(Te, name)
}

func TestTimeSeriesPlot(Te *testing.T) {
	table := mat.NewDense(2, 4, []float64{4, 4.5, 5, 4.7, 6, 5.5, 5.9, 6.2})
	name := filepath.Join(Te.TempDir(), "ts")
	if err := TimeSeriesPlot(table, 0.01, "", "time (ns)", "distance (Å)", name); err != nil {
		Te.Fatal(err)
	}
	checkPNG(Te, name)
}

func TestColors(Te *testing.T) {
	seen := make(map[[3]uint8]bool)
	for i := 0; i < 6; i++ {
		r, g, b := colors(i, 6)
		seen[[3]uint8{r, g, b}] = true
	}
	if len(seen) != 6 {
		Te.Errorf("expected 6 different colors, got %d", len(seen))
	}
}
