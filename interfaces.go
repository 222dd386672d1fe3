/*
 * interfaces.go, part of nndist.
 *
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
	"github.com/rmera/nndist/histo"
	v3 "github.com/rmera/nndist/v3"
	"gonum.org/v1/gonum/mat"
)

// Framer is a trajectory that allows random access to its frames.
type Framer interface {

	//Returns the number of atoms per frame
	Len() int

	//Frame puts the coordinates of the frame framenum (1-based) in keep.
	//It returns an error if the frame is not in the trajectory.
	Frame(framenum int, keep *v3.Matrix) error
}

// FrameCounter is a Framer that also knows how many frames it has.
type FrameCounter interface {
	Framer

	//NFrames returns the number of the last frame in the trajectory.
	NFrames() int
}

// Sink receives the results of the analysis. begin and end are the first
// and last frames analyzed.
type Sink interface {

	//WriteData saves the concatenated distance sample.
	WriteData(begin, end int, sample []float64) error

	//RenderHistogram draws the histogram of the concatenated sample.
	RenderHistogram(begin, end int, h *histo.Data) error

	//RenderTimeSeries draws the distance time series, one row per pair.
	RenderTimeSeries(begin, end int, table mat.Matrix) error

	//RenderDistributions draws one histogram per pair.
	RenderDistributions(begin, end int, m *histo.Matrix) error
}

//Errors

// Error is the interface for errors that all packages in this module implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}
