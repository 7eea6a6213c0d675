/*
 * molecule.go, part of the computational-chemistry library.
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

//Package mm implements the core of a classical molecular-mechanics
//engine: per-atom state, bonded topology derived from geometry, and
//potential energy and analytic gradients under a standard force-field
//functional form. File parsing, reporting and time integration are
//external collaborators; the driving loop mutates coordinates and
//velocities between calls and queries energies and gradients here.
//
//Units throughout: Angstroms, kcal/mol, atomic mass units, picoseconds,
//electron charges. Angles are stored and reported in degrees; energy
//formulas convert to radians internally.
package mm

import (
	"math"

	"github.com/strekowski/computational-chemistry/param"
	v3 "github.com/strekowski/computational-chemistry/v3"
)

//Atom holds the static per-atom data plus the per-atom energy and
//gradient accumulators that every evaluation overwrites. Coordinates,
//velocities and accelerations live in the Molecule's matrices, not
//here, so topology records can refer to atoms by index alone.
type Atom struct {
	Name    string //the atom-type label as given
	Type    param.TypeID
	Element string
	Charge  float64 //partial charge, electron units
	Ro      float64 //van der Waals minimum-distance radius, Angstroms
	Eps     float64 //van der Waals well depth, kcal/mol
	SrEps   float64 //sqrt(Eps), precomputed for the combining rule
	Mass    float64 //a.m.u.
	Covrad  float64 //covalent radius, Angstroms

	//refreshed on every evaluation
	EBonded    float64
	ENonbonded float64
	EBound     float64
	GBonded    [3]float64
	GNonbonded [3]float64
}

//NewAtom validates and builds an Atom. The type label is interned
//through the parameter table exactly once, here; a label the table does
//not know, or a non-positive mass, is a construction error.
func NewAtom(name string, charge, ro, eps, mass float64, tab *param.Table) (*Atom, error) {
	id, err := tab.TypeByName(name)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	if mass <= 0 {
		return nil, errorf("NewAtom: atom type %s has non-positive mass %v", name, mass)
	}
	el := tab.Element(id)
	covrad, err := tab.CovalentRadius(el)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	return &Atom{
		Name:    name,
		Type:    id,
		Element: el,
		Charge:  charge,
		Ro:      ro,
		Eps:     eps,
		SrEps:   math.Sqrt(eps),
		Mass:    mass,
		Covrad:  covrad,
	}, nil
}

//BoundaryKind selects the restraining boundary potential.
type BoundaryKind int

const (
	BoundNone BoundaryKind = iota
	BoundSphere
	BoundCube
)

func (b BoundaryKind) String() string {
	switch b {
	case BoundNone:
		return "none"
	case BoundSphere:
		return "sphere"
	case BoundCube:
		return "cube"
	}
	return "unknown"
}

//ParseBoundaryKind maps a selector string to a BoundaryKind. An
//unrecognized selector is a fatal configuration error.
func ParseBoundaryKind(s string) (BoundaryKind, error) {
	switch s {
	case "none", "":
		return BoundNone, nil
	case "sphere":
		return BoundSphere, nil
	case "cube":
		return BoundCube, nil
	}
	return BoundNone, errorf("ParseBoundaryKind: boundary type %q not recognized", s)
}

//Boundary is a restraining wall around the system: a sphere of radius
//Size or a cube spanning [-Size,Size] per coordinate around Origin.
//Atoms outside it feel a quadratic restraint of spring constant K;
//atoms inside feel nothing.
type Boundary struct {
	Kind   BoundaryKind
	K      float64 //kcal/(mol*A^2)
	Size   float64 //radius or half-edge, Angstroms
	Origin *v3.Matrix
}

//Volume returns the volume enclosed by the boundary, in cubic
//Angstroms. Without a boundary the volume is +Inf, which makes derived
//densities and pressures vanish instead of erroring.
func (b *Boundary) Volume() float64 {
	switch b.Kind {
	case BoundSphere:
		return 4.0 * math.Pi * math.Pow(b.Size, 3) / 3.0
	case BoundCube:
		return math.Pow(2.0*b.Size, 3)
	}
	return math.Inf(1)
}

//Energies holds the per-category energy totals of an evaluation, all in
//kcal/mol. Totals are sums of the categories in the fixed order bonds,
//angles, torsions, outofplanes, vdw, elst, bound, kinetic, so repeated
//evaluations of the same coordinates reproduce bit-identical values.
type Energies struct {
	Bonds       float64
	Angles      float64
	Torsions    float64
	Outofplanes float64
	Bonded      float64
	VdW         float64
	Elst        float64
	Nonbonded   float64
	Bound       float64
	Potential   float64
	Kinetic     float64
	Total       float64
}

//Gradients holds the per-category gradient matrices of an evaluation,
//each of shape n_atoms x 3, in kcal/(mol*A). The gradient is +dE/dx;
//forces are its negative.
type Gradients struct {
	Bonds       *v3.Matrix
	Angles      *v3.Matrix
	Torsions    *v3.Matrix
	Outofplanes *v3.Matrix
	Bonded      *v3.Matrix
	VdW         *v3.Matrix
	Elst        *v3.Matrix
	Nonbonded   *v3.Matrix
	Bound       *v3.Matrix
	Total       *v3.Matrix
}

//Molecule owns all atoms, coordinates, derived topology and the
//cumulative energy/gradient state. It is a plain data aggregate: the
//topology builder and the energy and gradient engines are functions of
//its geometry that write their results back into it. Exactly one
//caller owns and mutates a Molecule at a time.
type Molecule struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Vels   *v3.Matrix
	Accs   *v3.Matrix

	//previous-step state, kept for leapfrog-style integrators
	PCoords *v3.Matrix
	PVels   *v3.Matrix
	PAccs   *v3.Matrix

	Top *Topology

	Dielectric float64
	Boundary   Boundary
	Temp       float64 //Kelvin
	Press      float64 //atm
	Virial     float64 //kcal/mol

	Energy Energies
	Grad   Gradients
}

//NewMolecule builds a Molecule from constructed atoms and their initial
//coordinates. Velocity, acceleration and gradient storage is allocated
//zeroed. The topology is not derived here; call DeriveTopology once
//before evaluating energies or gradients.
func NewMolecule(atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil || coords == nil {
		return nil, errorf("NewMolecule: nil atoms or coordinates")
	}
	n := len(atoms)
	if coords.NVecs() != n {
		return nil, errorf("NewMolecule: %d atoms but %d coordinate vectors", n, coords.NVecs())
	}
	m := &Molecule{
		Atoms:      atoms,
		Coords:     coords,
		Vels:       v3.Zeros(n),
		Accs:       v3.Zeros(n),
		PCoords:    v3.Zeros(n),
		PVels:      v3.Zeros(n),
		PAccs:      v3.Zeros(n),
		Dielectric: 1.0,
		Boundary:   Boundary{Kind: BoundNone, Origin: v3.Zeros(1)},
	}
	m.PCoords.Copy(coords)
	m.Grad = Gradients{
		Bonds:       v3.Zeros(n),
		Angles:      v3.Zeros(n),
		Torsions:    v3.Zeros(n),
		Outofplanes: v3.Zeros(n),
		Bonded:      v3.Zeros(n),
		VdW:         v3.Zeros(n),
		Elst:        v3.Zeros(n),
		Nonbonded:   v3.Zeros(n),
		Bound:       v3.Zeros(n),
		Total:       v3.Zeros(n),
	}
	return m, nil
}

//Len returns the number of atoms in the molecule.
func (m *Molecule) Len() int {
	return len(m.Atoms)
}

//Atom returns the atom with index i. Panics if out of range.
func (m *Molecule) Atom(i int) *Atom {
	if i >= m.Len() {
		panic("Molecule: requested Atom out of bounds")
	}
	return m.Atoms[i]
}

//TotalMass returns the sum of atomic masses, in a.m.u.
func (m *Molecule) TotalMass() float64 {
	var t float64
	for _, at := range m.Atoms {
		t += at.Mass
	}
	return t
}

//DeriveTopology infers the bond graph from the current coordinates and
//covalent radii, enumerates angles, torsions and out-of-plane terms,
//builds the nonbonded exclusion set, and stores the result. It runs
//once per molecule; atom-type combinations without parameters abort
//with an error naming the offending key.
func (m *Molecule) DeriveTopology(tab *param.Table) error {
	top, err := DeriveTopology(m.Atoms, m.Coords, tab)
	if err != nil {
		return errDecorate(err, "DeriveTopology")
	}
	m.Top = top
	return nil
}

//Volume returns the volume of the system boundary, in cubic Angstroms.
func (m *Molecule) Volume() float64 {
	return m.Boundary.Volume()
}
