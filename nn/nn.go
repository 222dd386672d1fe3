/*
 * nn.go, part of nndist.
 *
 * Copyright 2021 Raul Mera <rauldotmeraatusachdotcl>
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
Package nn finds nearest-neighbor pairs of atoms in a set of coordinates.

Each atom is paired with its closest other atom. When two atoms are each
other's nearest neighbor, the pair is kept only once. Pairs that are not mutual
are kept as they are, so an atom can appear in more than one pair, and the
result is not a matching in the graph sense.
*/
package nn

import (
	"fmt"
	"math"
	"sort"

	v3 "github.com/rmera/nndist/v3"
	"gonum.org/v1/gonum/spatial/kdtree"
)

//Pair contains the indexes of two atoms. J is the nearest neighbor of I.
type Pair struct {
	I int
	J int
}

func (p Pair) String() string {
	return fmt.Sprintf("%d-%d", p.I, p.J)
}

//Pairs returns the nearest-neighbor pairs for the atoms in coords, each mutual pair
//appearing only once. It is the deduplicated output of Nearest.
func Pairs(coords *v3.Matrix) ([]Pair, error) {
	cand, err := Nearest(coords)
	if err != nil {
		return nil, err
	}
	return Dedup(cand), nil
}

//Nearest returns, for each atom i in coords, the pair (i, j) where j is
//the atom closest to i, other than i itself. If several atoms are at the same
//distance from i, the one with the lowest index is used.
//The search uses a k-d tree.
func Nearest(coords *v3.Matrix) ([]Pair, error) {
	n := coords.NVecs()
	if n < 2 {
		return nil, fmt.Errorf("nndist/nn: at least 2 atoms needed to find neighbors, got %d", n)
	}
	ats := make(atoms, n)
	for i := range ats {
		ats[i] = atom{Point: kdtree.Point(coords.RawRowView(i)), idx: i}
	}
	query := make(atoms, n)
	copy(query, ats) //kdtree.New reorders its argument.
	tree := kdtree.New(ats, false)
	ret := make([]Pair, n)
	for i, q := range query {
		//The 2 closest points, one of them is normally the atom itself.
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, q)
		best := math.Inf(1)
		for _, c := range keep.Heap {
			if c.Comparable == nil || c.Comparable.(atom).idx == i {
				continue
			}
			best = math.Min(best, c.Dist)
		}
		//Every atom at that distance, to break ties by index.
		tied := kdtree.NewDistKeeper(best)
		tree.NearestSet(tied, q)
		j := -1
		for _, c := range tied.Heap {
			if c.Comparable == nil {
				continue
			}
			idx := c.Comparable.(atom).idx
			if idx == i || c.Dist != best {
				continue
			}
			if j < 0 || idx < j {
				j = idx
			}
		}
		if j < 0 {
			return nil, fmt.Errorf("nndist/nn: no neighbor found for atom %d", i)
		}
		ret[i] = Pair{I: i, J: j}
	}
	return ret, nil
}

//NearestBrute does the same as Nearest, by computing all the
//interatomic distances.
func NearestBrute(coords *v3.Matrix) ([]Pair, error) {
	n := coords.NVecs()
	if n < 2 {
		return nil, fmt.Errorf("nndist/nn: at least 2 atoms needed to find neighbors, got %d", n)
	}
	ret := make([]Pair, n)
	for i := 0; i < n; i++ {
		pi := kdtree.Point(coords.RawRowView(i))
		best := math.Inf(1)
		j := -1
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			d := pi.Distance(kdtree.Point(coords.RawRowView(k)))
			if d < best {
				best = d
				j = k
			}
		}
		ret[i] = Pair{I: i, J: j}
	}
	return ret, nil
}

//Dedup removes the second appearance of each mutual pair from cand.
//cand is scanned in order, and for each pair (i,j) still present, a later
//or earlier pair (j,i) is dropped, so the mutual pair is kept where it first
//appears. Non-mutual pairs are kept. cand is not modified.
func Dedup(cand []Pair) []Pair {
	dropped := make([]bool, len(cand))
	for i, p := range cand {
		if dropped[i] {
			continue
		}
		for j, q := range cand {
			if dropped[j] {
				continue
			}
			if q.J == p.I && q.I == p.J {
				dropped[j] = true
			}
		}
	}
	ret := make([]Pair, 0, len(cand))
	for i, p := range cand {
		if !dropped[i] {
			ret = append(ret, p)
		}
	}
	return ret
}

//Mutual returns the number of pairs in pairs for which each atom is the
//nearest neighbor of the other, according to cand, the output of Nearest.
func Mutual(pairs, cand []Pair) int {
	nearest := make(map[int]int, len(cand))
	for _, c := range cand {
		nearest[c.I] = c.J
	}
	var m int
	for _, p := range pairs {
		if j, ok := nearest[p.J]; ok && j == p.I {
			m++
		}
	}
	return m
}

//Sort sorts pairs by their first, then their second index.
func Sort(pairs []Pair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].I != pairs[j].I {
			return pairs[i].I < pairs[j].I
		}
		return pairs[i].J < pairs[j].J
	})
}

//atom is a point in the k-d tree that remembers its index in the original matrix.
type atom struct {
	kdtree.Point
	idx int
}

func (a atom) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return a.Point.Compare(c.(atom).Point, d)
}

func (a atom) Distance(c kdtree.Comparable) float64 {
	return a.Point.Distance(c.(atom).Point)
}

//atoms satisfies kdtree.Interface.
type atoms []atom

func (p atoms) Index(i int) kdtree.Comparable        { return p[i] }
func (p atoms) Len() int                              { return len(p) }
func (p atoms) Pivot(d kdtree.Dim) int                { return plane{atoms: p, Dim: d}.Pivot() }
func (p atoms) Slice(start, end int) kdtree.Interface { return p[start:end] }

//plane allows atoms to be partitioned along one dimension.
type plane struct {
	kdtree.Dim
	atoms
}

func (p plane) Less(i, j int) bool {
	return p.atoms[i].Point[p.Dim] < p.atoms[j].Point[p.Dim]
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.atoms = p.atoms[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.atoms[i], p.atoms[j] = p.atoms[j], p.atoms[i]
}
