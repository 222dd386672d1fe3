/*
 * nn_test.go, part of nndist.
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

package nn

import (
	"math/rand"
	"reflect"
	"testing"

	v3 "github.com/rmera/nndist/v3"
)

func coords(Te *testing.T, data ...float64) *v3.Matrix {
	Te.Helper()
	m, err := v3.NewMatrix(data)
	if err != nil {
		Te.Fatal(err)
	}
	return m
}

//Two well separated couples of atoms.
func TestPairsFourAtoms(Te *testing.T) {
	c := coords(Te,
		0, 0, 0,
		1, 0, 0,
		10, 0, 0,
		10, 1.5, 0,
	)
	pairs, err := Pairs(c)
	if err != nil {
		Te.Fatal(err)
	}
	want := []Pair{{0, 1}, {2, 3}}
	if !reflect.DeepEqual(pairs, want) {
		Te.Errorf("expected pairs %v, got %v", want, pairs)
	}
	for _, p := range pairs {
		if p.I == p.J {
			Te.Errorf("atom %d paired with itself", p.I)
		}
	}
}

func TestDedupMutual(Te *testing.T) {
	c := coords(Te, 0, 0, 0, 0, 2, 0)
	cand, err := Nearest(c)
	if err != nil {
		Te.Fatal(err)
	}
	if len(cand) != 2 {
		Te.Fatalf("expected 2 candidates, got %v", cand)
	}
	pairs := Dedup(cand)
	if len(pairs) != 1 || pairs[0] != (Pair{0, 1}) {
		Te.Errorf("expected the single pair 0-1, got %v", pairs)
	}
	if Mutual(pairs, cand) != 1 {
		Te.Error("the pair should be mutual")
	}
}

//Atom 2 is closest to 1, but 1 is closer to 0. The one-directional
//pair 2-1 is kept.
func TestPairsAsymmetric(Te *testing.T) {
	c := coords(Te,
		0, 0, 0,
		1, 0, 0,
		2.5, 0, 0,
	)
	cand, err := Nearest(c)
	if err != nil {
		Te.Fatal(err)
	}
	wantCand := []Pair{{0, 1}, {1, 0}, {2, 1}}
	if !reflect.DeepEqual(cand, wantCand) {
		Te.Errorf("expected candidates %v, got %v", wantCand, cand)
	}
	pairs := Dedup(cand)
	want := []Pair{{0, 1}, {2, 1}}
	if !reflect.DeepEqual(pairs, want) {
		Te.Errorf("expected pairs %v, got %v", want, pairs)
	}
	if m := Mutual(pairs, cand); m != 1 {
		Te.Errorf("expected 1 mutual pair, got %d", m)
	}
}

func TestNearestTies(Te *testing.T) {
	c := coords(Te,
		0, 0, 0,
		-1, 0, 0,
		1, 0, 0,
	)
	cand, err := Nearest(c)
	if err != nil {
		Te.Fatal(err)
	}
	if cand[0].J != 1 {
		Te.Errorf("ties should go to the lowest index, got %v", cand[0])
	}
	//Two atoms on the same spot.
	c = coords(Te,
		5, 5, 5,
		0, 0, 0,
		5, 5, 5,
	)
	cand, err = Nearest(c)
	if err != nil {
		Te.Fatal(err)
	}
	want := []Pair{{0, 2}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(cand, want) {
		Te.Errorf("expected %v, got %v", want, cand)
	}
}

func TestNearestAgreesWithBrute(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, n := range []int{2, 3, 17, 128, 500} {
		data := make([]float64, 3*n)
		for i := range data {
			data[i] = r.Float64() * 50
		}
		c := coords(Te, data...)
		tree, err := Nearest(c)
		if err != nil {
			Te.Fatal(err)
		}
		brute, err := NearestBrute(c)
		if err != nil {
			Te.Fatal(err)
		}
		if !reflect.DeepEqual(tree, brute) {
			Te.Errorf("%d atoms: k-d tree and exhaustive searches disagree", n)
		}
		pairs := Dedup(tree)
		seen := make(map[[2]int]bool)
		for _, p := range pairs {
			if p.I == p.J {
				Te.Errorf("self pair %v", p)
			}
			a, b := p.I, p.J
			if a > b {
				a, b = b, a
			}
			if seen[[2]int{a, b}] {
				Te.Errorf("pair %v appears twice", p)
			}
			seen[[2]int{a, b}] = true
		}
	}
}

func TestNearestTooFew(Te *testing.T) {
	if _, err := Pairs(coords(Te, 1, 2, 3)); err == nil {
		Te.Error("expected an error for a single atom")
	}
}

func TestSort(Te *testing.T) {
	p := []Pair{{3, 1}, {0, 2}, {0, 1}}
	Sort(p)
	want := []Pair{{0, 1}, {0, 2}, {3, 1}}
	if !reflect.DeepEqual(p, want) {
		Te.Errorf("expected %v, got %v", want, p)
	}
}
