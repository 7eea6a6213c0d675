/*
 * graph_test.go, part of the computational-chemistry library.
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

package mmgraph

import (
	"math"
	"testing"

	mm "github.com/strekowski/computational-chemistry"
	"github.com/strekowski/computational-chemistry/param"
	v3 "github.com/strekowski/computational-chemistry/v3"
)

//dimerGraph builds a water dimer and wraps its topology. Atom order:
//O H H | O H H.
func dimerGraph(t *testing.T) *Graph {
	t.Helper()
	tab := param.Default()
	newAtom := func(name string, charge, ro, eps, mass float64) *mm.Atom {
		at, err := mm.NewAtom(name, charge, ro, eps, mass, tab)
		if err != nil {
			t.Fatal(err)
		}
		return at
	}
	atoms := []*mm.Atom{
		newAtom("OH", -0.834, 1.7683, 0.1520, 15.999),
		newAtom("HO", 0.417, 0.2245, 0.0460, 1.008),
		newAtom("HO", 0.417, 0.2245, 0.0460, 1.008),
		newAtom("OH", -0.834, 1.7683, 0.1520, 15.999),
		newAtom("HO", 0.417, 0.2245, 0.0460, 1.008),
		newAtom("HO", 0.417, 0.2245, 0.0460, 1.008),
	}
	const r = 0.960
	a := 104.52 * math.Pi / 180.0
	base := []float64{
		0, 0, 0,
		r, 0, 0,
		r * math.Cos(a), r * math.Sin(a), 0,
	}
	data := make([]float64, 0, 18)
	data = append(data, base...)
	for i := 0; i < 9; i += 3 {
		data = append(data, base[i]+3.0, base[i+1]+0.4, base[i+2]+0.3)
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		t.Fatal(err)
	}
	m, err := mm.NewMolecule(atoms, coords)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.DeriveTopology(tab); err != nil {
		t.Fatal(err)
	}
	return New(m.Top, m.Len())
}

func TestGraphQueries(Te *testing.T) {
	g := dimerGraph(Te)
	if g.Node(2) == nil || g.Node(2).ID() != 2 {
		Te.Error("Node(2) should exist")
	}
	if g.Node(-1) != nil || g.Node(6) != nil {
		Te.Error("out-of-range nodes should be nil")
	}
	if n := g.Nodes().Len(); n != 6 {
		Te.Errorf("node count: got %d, want 6", n)
	}
	if !g.HasEdgeBetween(0, 1) || !g.HasEdgeBetween(1, 0) {
		Te.Error("the O-H bond should be an edge in both directions")
	}
	if g.HasEdgeBetween(0, 3) {
		Te.Error("no edge between the two oxygens")
	}
	if g.HasEdgeBetween(1, 1) {
		Te.Error("no self edges")
	}
	e := g.EdgeBetween(0, 2)
	if e == nil || e.From().ID() != 0 || e.To().ID() != 2 {
		Te.Errorf("EdgeBetween(0,2): got %v", e)
	}
	if r := e.ReversedEdge(); r.From().ID() != 2 || r.To().ID() != 0 {
		Te.Errorf("ReversedEdge: got %v", r)
	}
	if g.EdgeBetween(1, 2) != nil {
		Te.Error("the two hydrogens are not bonded to each other")
	}
	//neighbor iteration
	var nbrs []int64
	it := g.From(0)
	for it.Next() {
		nbrs = append(nbrs, it.Node().ID())
	}
	if len(nbrs) != 2 {
		Te.Fatalf("neighbors of the first oxygen: got %v", nbrs)
	}
}

func TestFragments(Te *testing.T) {
	g := dimerGraph(Te)
	frags := Fragments(g)
	if len(frags) != 2 {
		Te.Fatalf("dimer fragments: got %d, want 2", len(frags))
	}
	want := [][]int{{0, 1, 2}, {3, 4, 5}}
	for fi, f := range frags {
		if len(f) != 3 {
			Te.Fatalf("fragment %d: got %v", fi, f)
		}
		for i := range f {
			if f[i] != want[fi][i] {
				Te.Errorf("fragment %d: got %v, want %v", fi, f, want[fi])
			}
		}
	}
}
