/*
 * plot.go, part of nndist
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package chemplot draws the histograms and time series produced by nndist, using gonum/plot.
package chemplot

import (
	"fmt"
	"image/color"

	"github.com/rmera/nndist/histo"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Size of the saved plots
var (
	Width  = 6 * vg.Inch
	Height = 4 * vg.Inch
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//histogramPlotter returns a plotter for the probability density in h.
func histogramPlotter(h *histo.Data, fill color.Color) (*plotter.Histogram, error) {
	div := h.CopyDividers()
	if len(div) < 2 {
		return nil, fmt.Errorf("chemplot: histogram without bins")
	}
	dens := h.Density()
	bins := make([]plotter.HistogramBin, len(dens))
	for i, v := range dens {
		bins[i] = plotter.HistogramBin{Min: div[i], Max: div[i+1], Weight: v}
	}
	ret := &plotter.Histogram{
		Bins:      bins,
		Width:     div[1] - div[0],
		FillColor: fill,
		LineStyle: plotter.DefaultLineStyle,
	}
	ret.LineStyle.Width = vg.Points(0.5)
	return ret, nil
}

func save(p *plot.Plot, plotname string) error {
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(Width, Height, filename)
}

//HistoPlot plots the probability density of the histogram h, and saves
//it in PNG format, in the file plotname.png.
func HistoPlot(h *histo.Data, title, xlabel, ylabel, plotname string) error {
	if h == nil {
		return fmt.Errorf("chemplot.HistoPlot: Given nil data")
	}
	p := basicPlot(title, xlabel, ylabel)
	hp, err := histogramPlotter(h, color.RGBA{R: 70, G: 110, B: 190, A: 255})
	if err != nil {
		return err
	}
	p.Add(hp)
	p.Y.Min = 0
	return save(p, plotname)
}

//DistributionsPlot plots all the histograms in m, one over the other, and saves
//the plot in PNG format, in the file plotname.png.
func DistributionsPlot(m *histo.Matrix, title, xlabel, ylabel, plotname string) error {
	if m == nil {
		return fmt.Errorf("chemplot.DistributionsPlot: Given nil data")
	}
	p := basicPlot(title, xlabel, ylabel)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			h := m.View(i, j)
			if h == nil {
				continue
			}
			hp, err := histogramPlotter(h, rgba(i*c+j, r*c, 90))
			if err != nil {
				return err
			}
			p.Add(hp)
		}
	}
	p.Y.Min = 0
	return save(p, plotname)
}

//TimeSeriesPlot plots each row of table as a line. The x coordinate of the
//element j of a row is j*dt. The plot is saved in PNG format, in the file plotname.png.
func TimeSeriesPlot(table mat.Matrix, dt float64, title, xlabel, ylabel, plotname string) error {
	if table == nil {
		return fmt.Errorf("chemplot.TimeSeriesPlot: Given nil data")
	}
	p := basicPlot(title, xlabel, ylabel)
	r, c := table.Dims()
	for i := 0; i < r; i++ {
		pts := make(plotter.XYs, c)
		for j := range pts {
			pts[j].X = float64(j) * dt
			pts[j].Y = table.At(i, j)
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		rr, g, b := colors(i, r)
		l.LineStyle.Color = color.RGBA{R: rr, G: g, B: b, A: 255}
		l.LineStyle.Width = vg.Points(0.75)
		p.Add(l)
	}
	return save(p, plotname)
}
