/*
 * energy_test.go, part of the computational-chemistry library.
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
	"math"
	"testing"

	"github.com/strekowski/computational-chemistry/param"
	v3 "github.com/strekowski/computational-chemistry/v3"
	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

//At the equilibrium geometry every bonded term vanishes, and a single
//water has no nonbonded pairs at all.
func TestWaterEquilibriumEnergy(Te *testing.T) {
	m, _ := newWater(Te)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	e := m.Energy
	assert.InDelta(Te, 0.0, e.Bonds, 1e-10, "bond energy at equilibrium")
	assert.InDelta(Te, 0.0, e.Angles, 1e-10, "angle energy at equilibrium")
	assert.Zero(Te, e.VdW, "a single water has no nonbonded pairs")
	assert.Zero(Te, e.Elst, "a single water has no nonbonded pairs")
	assert.Zero(Te, e.Kinetic)
	assert.InDelta(Te, 0.0, e.Total, 1e-10)
}

//A stretched bond must report k*(r-req)^2, without the 1/2 factor.
func TestStretchedBondEnergy(Te *testing.T) {
	m, _ := newWater(Te)
	m.Coords.Set(1, 0, 1.060) //O-H stretched by 0.1 A
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	want := 553.0 * 0.1 * 0.1
	assert.InDelta(Te, want, m.Energy.Bonds, 1e-8)
	//half of the bond energy lands on each of the two atoms
	assert.InDelta(Te, m.Atoms[0].EBonded, m.Atoms[1].EBonded+m.Atoms[2].EBonded, 1e-10)
}

func TestPeroxideTorsionEnergy(Te *testing.T) {
	m, _ := newPeroxide(Te)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	//both Fourier terms evaluated at the built dihedral of +-115 deg
	phi := m.Top.Torsions[0].TIJKL * deg2rad
	want := 1.40*(1.0+math.Cos(2.0*phi)) + 0.25*(1.0+math.Cos(phi))
	assert.InDelta(Te, want, m.Energy.Torsions, 1e-8)
	assert.InDelta(Te, 115.0, math.Abs(m.Top.Torsions[0].TIJKL), 1e-6)
}

func TestFormaldehydeOutofplaneEnergy(Te *testing.T) {
	m, _ := newFormaldehyde(Te, true)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	assert.InDelta(Te, 0.0, m.Energy.Outofplanes, 1e-10, "planar geometry")

	m, _ = newFormaldehyde(Te, false)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	assert.Greater(Te, m.Energy.Outofplanes, 0.0, "bent geometry")
	o := m.Top.Outofplanes[0]
	phi := o.OIJKL * deg2rad
	assert.InDelta(Te, 10.5*phi*phi, o.E, 1e-10)
}

//Category sums and totals must be consistent, and a second evaluation
//of the same coordinates must reproduce every number bit for bit.
func TestEnergyTotalsAndIdempotence(Te *testing.T) {
	m, _ := newWaterDimer(Te)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	e := m.Energy
	assert.Equal(Te, e.Bonded, e.Bonds+e.Angles+e.Torsions+e.Outofplanes)
	assert.Equal(Te, e.Nonbonded, e.VdW+e.Elst)
	assert.Equal(Te, e.Potential, e.Bonded+e.Nonbonded+e.Bound)
	assert.Equal(Te, e.Total, e.Potential+e.Kinetic)
	assert.NotZero(Te, e.VdW, "the dimer has inter-fragment vdw pairs")
	assert.NotZero(Te, e.Elst, "the dimer has inter-fragment elst pairs")

	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	assert.Equal(Te, e, m.Energy, "re-evaluation must be bit-identical")
}

//The potential energy is a function of internal geometry only: a rigid
//rotation plus translation must not change it.
func TestRigidMotionInvariance(Te *testing.T) {
	m, _ := newWaterDimer(Te)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	before := m.Energy

	th := 37.0 * deg2rad
	rot := mat.NewDense(3, 3, []float64{
		math.Cos(th), math.Sin(th), 0,
		-math.Sin(th), math.Cos(th), 0,
		0, 0, 1,
	})
	moved := v3.Zeros(m.Len())
	moved.Mul(m.Coords, rot)
	shift, _ := v3.NewMatrix([]float64{1.0, -2.0, 0.5})
	moved.AddVec(moved, shift)
	m.Coords.Copy(moved)
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	after := m.Energy
	assert.InDelta(Te, before.Bonds, after.Bonds, 1e-9)
	assert.InDelta(Te, before.Angles, after.Angles, 1e-9)
	assert.InDelta(Te, before.VdW, after.VdW, 1e-9)
	assert.InDelta(Te, before.Elst, after.Elst, 1e-9)
	assert.InDelta(Te, before.Potential, after.Potential, 1e-9)
}

func TestKineticEnergyAndTemperature(Te *testing.T) {
	m, _ := newWater(Te)
	for i := 0; i < m.Len(); i++ {
		m.Vels.Set(i, 0, 1.0)
		m.Vels.Set(i, 1, 2.0)
		m.Vels.Set(i, 2, -3.0)
	}
	if err := m.ComputeEnergy(KinDirect); err != nil {
		Te.Fatal(err)
	}
	v2 := 1.0 + 4.0 + 9.0
	want := 0.5 * m.TotalMass() * v2 * Kin2Kcal
	assert.InDelta(Te, want, m.Energy.Kinetic, 1e-12)
	assert.InDelta(Te, 2.0*want/(3.0*3.0*RGas), m.Temp, 1e-9)

	//leapfrog averages with the previous half-step velocities, which
	//are still zero here: a quarter of the direct kinetic energy
	if err := m.ComputeEnergy(KinLeapfrog); err != nil {
		Te.Fatal(err)
	}
	assert.InDelta(Te, want/4.0, m.Energy.Kinetic, 1e-12)

	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	assert.Zero(Te, m.Energy.Kinetic)
	assert.Zero(Te, m.Temp)
}

func TestUnknownKineticSelector(Te *testing.T) {
	m, _ := newWater(Te)
	err := m.ComputeEnergy(KineticType(42))
	if err == nil {
		Te.Fatal("expected an error for an unknown kinetic energy type")
	}
	assert.Contains(Te, err.Error(), "42")
}

func TestBoundaryEnergies(Te *testing.T) {
	m, _ := newWater(Te)
	m.Boundary.Kind = BoundSphere
	m.Boundary.Size = 0.5
	m.Boundary.K = 10.0
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	//the oxygen sits at the origin; both hydrogens stick out by
	//0.96 - 0.5 each
	d := 0.96 - 0.5
	assert.InDelta(Te, 2.0*10.0*d*d, m.Energy.Bound, 1e-10)
	assert.Zero(Te, m.Atoms[0].EBound)
	assert.InDelta(Te, 10.0*d*d, m.Atoms[1].EBound, 1e-10)

	m.Boundary.Kind = BoundCube
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	//per-coordinate walls: H1 exceeds in x, H2 in y (and not in x)
	h2x := math.Abs(m.Coords.At(2, 0))
	h2y := m.Coords.At(2, 1)
	assert.Less(Te, h2x, 0.5)
	want := 10.0*d*d + 10.0*(h2y-0.5)*(h2y-0.5)
	assert.InDelta(Te, want, m.Energy.Bound, 1e-10)

	m.Boundary.Kind = BoundNone
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	assert.Zero(Te, m.Energy.Bound)
}

//Nonbonded energies against hand-evaluated formulas on a two-atom
//system with no exclusions.
func TestNonbondedPairFormulas(Te *testing.T) {
	tab := param.Default()
	atoms := []*Atom{
		mustAtom(Te, tab, "OH", -0.5, 1.7, 0.20, 15.999),
		mustAtom(Te, tab, "OH", 0.5, 1.7, 0.20, 15.999),
	}
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 3.2, 0, 0})
	m, err := NewMolecule(atoms, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if err := m.DeriveTopology(tab); err != nil {
		Te.Fatal(err)
	}
	if len(m.Top.Bonds) != 0 {
		Te.Fatal("the pair should be beyond covalent range")
	}
	m.Dielectric = 2.0
	if err := m.ComputeEnergy(KinNone); err != nil {
		Te.Fatal(err)
	}
	r := 3.2
	r6 := math.Pow(3.4/r, 6)
	assert.InDelta(Te, 0.20*(r6*r6-2.0*r6), m.Energy.VdW, 1e-12)
	assert.InDelta(Te, CoulombK*(-0.25)/(2.0*r), m.Energy.Elst, 1e-12)
}
