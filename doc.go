/*
 * doc.go, part of nndist.
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

/*
Package nndist follows, along a molecular dynamics trajectory, the distances between
atoms that are nearest neighbors in the first frame.

	**nndist pipeline**

    Reads a multi-frame XYZ trajectory (plain, gzip or zstd compressed) once, into memory.

    Pairs each atom of the first frame with its nearest neighbor (package nn). Mutual
	pairs are kept once. The pairing is never recomputed.

    Computes, for each pair and each frame in the requested range, the distance between
	the two atoms. The result is a table with one row per pair and one column per frame.

    Concatenates the table into one sample, saves it, and plots its probability density.
	Alternatively, plots the time series of each pair, or the distribution of each pair.

All the output goes through a Sink. FileSink writes the data and PNG files to disk.

The command in cmd/nndist is the usual entry point:

	nndist [flags] trajectory.xyz frame_begin frame_end

where a frame_end of -1 means the last frame of the trajectory.
*/
package nndist
