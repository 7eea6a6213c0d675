/*
 * topology.go, part of the computational-chemistry library.
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

package mm

import (
	"sort"

	"github.com/strekowski/computational-chemistry/param"
	v3 "github.com/strekowski/computational-chemistry/v3"
)

//Two atoms are bonded when their distance does not exceed bondScale
//times the sum of their covalent radii.
const bondScale = 1.2

//Bond is a harmonic bond between the atoms with indexes At1 and At2.
//The parameters are fixed at topology derivation; RIJ, E and G are
//refreshed by every evaluation.
type Bond struct {
	At1, At2 int
	REq      float64 //equilibrium distance, Angstroms
	KB       float64 //kcal/(mol*A^2)
	RIJ      float64 //current distance, Angstroms
	E        float64 //kcal/mol
	G        float64 //gradient magnitude along the bond, kcal/(mol*A)
}

//AngleRecord is a harmonic angle with vertex At2.
type AngleRecord struct {
	At1, At2, At3 int
	AEq           float64 //equilibrium angle, degrees
	KA            float64 //kcal/(mol*rad^2)
	AIJK          float64 //current angle, degrees
	E             float64
	G             float64 //kcal/(mol*rad)
}

//Torsion is one Fourier term of the dihedral At1-At2-At3-At4. A
//quadruple whose parameter entry carries several periodicities yields
//several Torsion records sharing the same four indexes. Paths is the
//number of symmetric bonded paths through the central bond, used to
//down-weight the term.
type Torsion struct {
	At1, At2, At3, At4 int
	VN                 float64 //kcal/mol
	Gamma              float64 //phase offset, degrees
	N                  int     //periodicity
	Paths              int
	TIJKL              float64 //current dihedral, degrees
	E                  float64
	G                  float64 //kcal/(mol*rad)
}

//Outofplane is an improper term: atom At1 displaced from the plane
//through At2 (the trivalent center), At3 and At4.
type Outofplane struct {
	At1, At2, At3, At4 int
	VN                 float64 //kcal/mol
	OIJKL              float64 //current improper angle, degrees
	E                  float64
	G                  float64 //kcal/(mol*rad)
}

//Topology is the derived bonded structure of a molecule. It is built
//once and immutable afterwards, except for the geometry/energy/gradient
//fields of its records, which every evaluation overwrites. Records
//store atom indexes, not pointers, so a Topology is self-contained and
//serializable.
type Topology struct {
	Adjacency   [][]int //sorted bonded-neighbor lists, one per atom
	Bonds       []*Bond
	Angles      []*AngleRecord
	Torsions    []*Torsion
	Outofplanes []*Outofplane
	excluded    map[[2]int]bool
}

func pairKey(i, j int) [2]int {
	if j < i {
		i, j = j, i
	}
	return [2]int{i, j}
}

//Excluded reports whether the pair (i,j) is excluded from nonbonded
//evaluation because a bond, angle or torsion already covers it.
func (t *Topology) Excluded(i, j int) bool {
	return t.excluded[pairKey(i, j)]
}

//NExcluded returns the number of excluded pairs.
func (t *Topology) NExcluded() int {
	return len(t.excluded)
}

//DeriveTopology runs the one-pass topology derivation over the given
//atoms and coordinates: bond graph from the covalent-radius proximity
//test, then angles, torsions, out-of-plane terms and the nonbonded
//exclusion set from the graph. Parameters come from tab; a bond, angle
//or torsion whose atom-type combination the table does not know makes
//the whole derivation fail with an error naming the key.
func DeriveTopology(atoms []*Atom, coords *v3.Matrix, tab *param.Table) (*Topology, error) {
	n := len(atoms)
	if coords.NVecs() != n {
		return nil, errorf("DeriveTopology: %d atoms but %d coordinate vectors", n, coords.NVecs())
	}
	top := &Topology{
		Adjacency: make([][]int, n),
		excluded:  make(map[[2]int]bool),
	}

	//Bond graph and bond list. The graph edges come out ordered
	//(i<j) by construction of the double loop.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(coords.VecView(i), coords.VecView(j))
			if d > bondScale*(atoms[i].Covrad+atoms[j].Covrad) {
				continue
			}
			term, err := tab.LookupBond(atoms[i].Type, atoms[j].Type)
			if err != nil {
				return nil, errDecorate(err, "DeriveTopology")
			}
			top.Adjacency[i] = append(top.Adjacency[i], j)
			top.Adjacency[j] = append(top.Adjacency[j], i)
			top.Bonds = append(top.Bonds, &Bond{At1: i, At2: j, REq: term.REq, KB: term.KB, RIJ: d})
		}
	}
	for i := range top.Adjacency {
		sort.Ints(top.Adjacency[i])
	}

	//Angles: every vertex b with two distinct neighbors a < c.
	for b := 0; b < n; b++ {
		nb := top.Adjacency[b]
		for x := 0; x < len(nb); x++ {
			for y := x + 1; y < len(nb); y++ {
				a, c := nb[x], nb[y]
				term, err := tab.LookupAngle(atoms[a].Type, atoms[b].Type, atoms[c].Type)
				if err != nil {
					return nil, errDecorate(err, "DeriveTopology")
				}
				top.Angles = append(top.Angles, &AngleRecord{At1: a, At2: b, At3: c, AEq: term.AEq, KA: term.KA})
			}
		}
	}

	//Torsions: every bond (b,c) in stored orientation, extended on
	//both sides. Processing each bond once keeps mirrored quadruples
	//out. Paths counts the symmetric routes through the central bond.
	for _, bond := range top.Bonds {
		b, c := bond.At1, bond.At2
		paths := (len(top.Adjacency[b]) - 1) * (len(top.Adjacency[c]) - 1)
		for _, a := range top.Adjacency[b] {
			if a == c {
				continue
			}
			for _, d := range top.Adjacency[c] {
				if d == b || d == a {
					continue
				}
				terms, err := tab.LookupTorsion(atoms[a].Type, atoms[b].Type, atoms[c].Type, atoms[d].Type)
				if err != nil {
					return nil, errDecorate(err, "DeriveTopology")
				}
				for _, term := range terms {
					top.Torsions = append(top.Torsions, &Torsion{
						At1: a, At2: b, At3: c, At4: d,
						VN: term.VN, Gamma: term.Gamma, N: term.N, Paths: paths,
					})
				}
			}
		}
	}

	//Out-of-plane terms: every trivalent center b, with each neighbor
	//tried in the out-of-plane role against the plane of the center
	//and the remaining two. A center without a matching parameter
	//entry simply carries no improper.
	for b := 0; b < n; b++ {
		nb := top.Adjacency[b]
		if len(nb) != 3 {
			continue
		}
		for x := 0; x < 3; x++ {
			a := nb[x]
			c, d := nb[(x+1)%3], nb[(x+2)%3]
			if d < c {
				c, d = d, c
			}
			vn, ok := tab.LookupOutofplane(atoms[a].Type, atoms[b].Type, atoms[c].Type, atoms[d].Type)
			if !ok {
				continue
			}
			top.Outofplanes = append(top.Outofplanes, &Outofplane{At1: a, At2: b, At3: c, At4: d, VN: vn})
		}
	}

	//Nonbonded exclusions: 1-2, 1-3 and 1-4 pairs.
	for _, b := range top.Bonds {
		top.excluded[pairKey(b.At1, b.At2)] = true
	}
	for _, a := range top.Angles {
		top.excluded[pairKey(a.At1, a.At3)] = true
	}
	for _, t := range top.Torsions {
		top.excluded[pairKey(t.At1, t.At4)] = true
	}
	return top, nil
}
