/*
 * xyz.go, part of nndist
 *
 * Copyright 2018 Raul Mera Adasme <rmera_changeforat_chem-dot-helsinki-dot-fi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

//Package xyz reads multi-frame XYZ trajectories, as written by VMD and most MD codes.
//Each frame is a line with the number of atoms, a comment line, and one line per atom
//with a label and the x, y and z coordinates. The whole file is read once into memory,
//after which frames are extracted by their fixed offsets in the file.
package xyz

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/nndist/v3"
)

//DefaultMarker is the comment line VMD writes in every frame of an XYZ trajectory.
const DefaultMarker = "generated by VMD"

//Traj is a multi-frame XYZ trajectory held in memory.
type Traj struct {
	//Marker is the comment line that marks a frame. It is used by NFrames.
	Marker   string
	natoms   int
	filename string
	lines    []string
}

//Open reads the whole XYZ trajectory in filename, which can be plain text or
//compressed (.gz or .zst), and returns a Traj. The file is closed before returning.
func Open(filename string) (*Traj, error) {
	src, err := prepSource(filename, "")
	if err != nil {
		return nil, errDecorate(err, "Open")
	}
	defer src.Close()
	T, err := Load(src, filename)
	if err != nil {
		return nil, errDecorate(err, "Open")
	}
	return T, nil
}

//Load reads an XYZ trajectory from r. name is only used to identify
//the trajectory in error messages.
func Load(r io.Reader, name string) (*Traj, error) {
	T := &Traj{Marker: DefaultMarker, filename: name}
	in := bufio.NewReader(r)
	for {
		line, err := in.ReadString('\n')
		if line != "" || err == nil {
			T.lines = append(T.lines, strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Error{fmt.Sprintf("%s: %s", ReadError, err.Error()), name, []string{"ReadString", "Load"}, true}
		}
	}
	if len(T.lines) == 0 {
		return nil, Error{EmptyFile, name, []string{"Load"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(T.lines[0]))
	if err != nil || natoms <= 0 {
		return nil, Error{fmt.Sprintf("%s: can't read the number of atoms from line 1: %q", WrongFormat, T.lines[0]), name, []string{"strconv.Atoi", "Load"}, true}
	}
	T.natoms = natoms
	return T, nil
}

//Len returns the number of atoms per frame.
func (T *Traj) Len() int {
	return T.natoms
}

//FileName returns the name of the file the trajectory was read from.
func (T *Traj) FileName() string {
	return T.filename
}

//Records returns the number of complete frame records in the trajectory,
//i.e. the number of lines divided by the size of a frame.
func (T *Traj) Records() int {
	return len(T.lines) / (T.natoms + 2)
}

//CountMarkers returns the number of lines that, leading and trailing spaces
//ignored, are equal to marker.
func (T *Traj) CountMarkers(marker string) int {
	marker = strings.TrimSpace(marker)
	var n int
	for _, l := range T.lines {
		if strings.TrimSpace(l) == marker {
			n++
		}
	}
	return n
}

//NFrames returns the number of frames in the trajectory, obtained by counting
//the frame markers. If the marker is empty, or it doesn't appear in the file,
//the number of complete frame records is returned instead.
func (T *Traj) NFrames() int {
	if strings.TrimSpace(T.Marker) != "" {
		if n := T.CountMarkers(T.Marker); n > 0 {
			return n
		}
	}
	return T.Records()
}

//frameStart returns the index of the count line of the frame framenum (1-based),
//or an error if the frame is not entirely contained in the trajectory.
func (T *Traj) frameStart(framenum int, caller string) (int, error) {
	unit := T.natoms + 2
	start := unit * (framenum - 1)
	if framenum < 1 || start+unit > len(T.lines) {
		return 0, Error{fmt.Sprintf("%s: frame %d requested, the trajectory has %d complete frames", FrameOutOfRange, framenum, T.Records()), T.filename, []string{caller}, true}
	}
	n, err := strconv.Atoi(strings.TrimSpace(T.lines[start]))
	if err != nil || n != T.natoms {
		return 0, Error{fmt.Sprintf("%s: line %d should contain the number of atoms, %d", WrongFormat, start+1, T.natoms), T.filename, []string{caller}, true}
	}
	return start, nil
}

//Frame puts the coordinates of the frame framenum (1-based) in keep, which
//must have one vector per atom. If keep is nil, the frame is only checked.
func (T *Traj) Frame(framenum int, keep *v3.Matrix) error {
	const ncoords = 3
	start, err := T.frameStart(framenum, "Frame")
	if err != nil {
		return err
	}
	//Everything is the same if you read or only check, except the function that
	//would set the values to the matrix simply does nothing in the latter case.
	var setter func(at, col int, val float64)
	if keep != nil {
		if keep.NVecs() != T.natoms {
			return Error{fmt.Sprintf("%s: %d vectors given, %d needed", NotEnoughSpace, keep.NVecs(), T.natoms), T.filename, []string{"Frame"}, true}
		}
		setter = func(at, col int, val float64) { keep.Set(at, col, val) }
	} else {
		setter = func(at, col int, val float64) {}
	}
	for i := 0; i < T.natoms; i++ {
		lnum := start + 2 + i
		fields := strings.Fields(T.lines[lnum])
		if len(fields) < ncoords+1 {
			return Error{fmt.Sprintf("%s: line %d has %d fields, at least 4 needed", WrongFormat, lnum+1, len(fields)), T.filename, []string{"Frame"}, true}
		}
		for j := 0; j < ncoords; j++ {
			coord, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return Error{fmt.Sprintf("%s: line %d: %s", WrongFormat, lnum+1, err.Error()), T.filename, []string{"strconv.ParseFloat", "Frame"}, true}
			}
			setter(i, j, coord)
		}
	}
	return nil
}

//Coords returns a new matrix with the coordinates of the frame framenum (1-based).
func (T *Traj) Coords(framenum int) (*v3.Matrix, error) {
	keep := v3.Zeros(T.natoms)
	if err := T.Frame(framenum, keep); err != nil {
		return nil, errDecorate(err, "Coords")
	}
	return keep, nil
}

//Labels returns the atom labels (usually element symbols or atom names) of
//the frame framenum (1-based).
func (T *Traj) Labels(framenum int) ([]string, error) {
	start, err := T.frameStart(framenum, "Labels")
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, T.natoms)
	for _, l := range T.lines[start+2 : start+2+T.natoms] {
		fields := strings.Fields(l)
		if len(fields) == 0 {
			return nil, Error{WrongFormat + ": empty atom line", T.filename, []string{"Labels"}, true}
		}
		ret = append(ret, fields[0])
	}
	return ret, nil
}

//Comment returns the comment line of the frame framenum (1-based).
func (T *Traj) Comment(framenum int) (string, error) {
	start, err := T.frameStart(framenum, "Comment")
	if err != nil {
		return "", err
	}
	return T.lines[start+1], nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements Error and decorates the error with the caller's name before returning it.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.deco = append(err2.deco, caller)
		return err2
	}
	return err
}

//Error is the general structure for XYZ trajectory errors. It fullfills nndist.Error and nndist.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("XYZ trajectory file %s error: %s", err.filename, err.message)
}

//Decorate adds deco to the trail of callers of the error and returns the trail.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err Error) FileName() string { return err.filename }

func (err Error) Format() string { return "XYZ" }

func (err Error) Critical() bool { return err.critical }

const (
	ReadError       = "Error reading file"
	UnableToOpen    = "Unable to open file"
	EmptyFile       = "Empty trajectory file"
	WrongFormat     = "Wrong format in the trajectory file or frame"
	FrameOutOfRange = "Frame out of range"
	NotEnoughSpace  = "Not enough space in the given matrix"
)
