/*
 * energy.go, part of the computational-chemistry library.
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

import "math"

//Physical constants and unit conversions.
const (
	//Coulomb's constant, kcal*A/(mol*e^2).
	CoulombK = 332.06375
	//Kinetic-energy conversion, amu*(A/ps)^2 to kcal/mol.
	Kin2Kcal = 1.0 / 418.4
	//Gas constant, kcal/(mol*K).
	RGas = 1.98720425864083e-3
	//Pressure conversion, kcal/(mol*A^3) to atm.
	KcalA3ToAtm = 68568.415
)

//KineticType selects the velocity-estimation scheme for the kinetic
//energy, matching the integrator driving the simulation.
type KineticType int

const (
	//KinNone reports zero kinetic energy (geometry optimization).
	KinNone KineticType = iota
	//KinDirect uses the current full-step velocities.
	KinDirect
	//KinLeapfrog averages current and previous half-step velocities.
	KinLeapfrog
)

func (k KineticType) String() string {
	switch k {
	case KinNone:
		return "none"
	case KinDirect:
		return "direct"
	case KinLeapfrog:
		return "leapfrog"
	}
	return "unknown"
}

//ParseKineticType maps a selector string to a KineticType. An
//unrecognized selector is a fatal configuration error, reported with
//the offending value.
func ParseKineticType(s string) (KineticType, error) {
	switch s {
	case "none", "":
		return KinNone, nil
	case "direct":
		return KinDirect, nil
	case "leapfrog":
		return KinLeapfrog, nil
	}
	return KinNone, errorf("ParseKineticType: kinetic energy type %q not recognized", s)
}

//The per-term potential functions. All take and return the units
//documented on the record types; angles come in as degrees and are
//converted here, at a single boundary.

func eBond(rij, req, kb float64) float64 {
	d := rij - req
	return kb * d * d
}

func eAngle(aijk, aeq, ka float64) float64 {
	d := deg2rad * (aijk - aeq)
	return ka * d * d
}

func eTorsion(tijkl, vn, gamma float64, n, paths int) float64 {
	return vn / float64(paths) * (1.0 + math.Cos(deg2rad*(float64(n)*tijkl-gamma)))
}

func eOutofplane(oijkl, vn float64) float64 {
	o := deg2rad * oijkl
	return vn * o * o
}

//eVdw is the Lennard-Jones 12-6 energy in Rmin form. The combining
//rule is fixed as arithmetic for the radius (ro = ro_i + ro_j) and
//geometric for the well depth (eps = sqrt(eps_i*eps_j)).
func eVdw(rij, ro, eps float64) float64 {
	r6 := math.Pow(ro/rij, 6)
	return eps * (r6*r6 - 2.0*r6)
}

func eElst(rij, q1, q2, dielectric float64) float64 {
	return CoulombK * q1 * q2 / (dielectric * rij)
}

//ComputeEnergy evaluates every energy term against the current
//coordinates and velocities, refreshes the per-record and per-atom
//accumulators, and assembles the category totals in fixed order. It is
//meant to be called once per simulation step; each call fully
//overwrites the previous state.
func (m *Molecule) ComputeEnergy(kin KineticType) error {
	if m.Top == nil {
		return errorf("ComputeEnergy: topology not derived")
	}
	if kin != KinNone && kin != KinDirect && kin != KinLeapfrog {
		return errorf("ComputeEnergy: kinetic energy type (%d) not recognized", int(kin))
	}
	var e Energies
	for _, at := range m.Atoms {
		at.EBonded = 0
		at.ENonbonded = 0
		at.EBound = 0
	}

	for _, b := range m.Top.Bonds {
		b.RIJ = Distance(m.Coords.VecView(b.At1), m.Coords.VecView(b.At2))
		b.E = eBond(b.RIJ, b.REq, b.KB)
		e.Bonds += b.E
		m.Atoms[b.At1].EBonded += 0.5 * b.E
		m.Atoms[b.At2].EBonded += 0.5 * b.E
	}
	for _, a := range m.Top.Angles {
		a.AIJK = Angle(m.Coords.VecView(a.At1), m.Coords.VecView(a.At2), m.Coords.VecView(a.At3))
		a.E = eAngle(a.AIJK, a.AEq, a.KA)
		e.Angles += a.E
		third := a.E / 3.0
		m.Atoms[a.At1].EBonded += third
		m.Atoms[a.At2].EBonded += third
		m.Atoms[a.At3].EBonded += third
	}
	for _, t := range m.Top.Torsions {
		t.TIJKL = Dihedral(m.Coords.VecView(t.At1), m.Coords.VecView(t.At2), m.Coords.VecView(t.At3), m.Coords.VecView(t.At4))
		t.E = eTorsion(t.TIJKL, t.VN, t.Gamma, t.N, t.Paths)
		e.Torsions += t.E
		quarter := 0.25 * t.E
		m.Atoms[t.At1].EBonded += quarter
		m.Atoms[t.At2].EBonded += quarter
		m.Atoms[t.At3].EBonded += quarter
		m.Atoms[t.At4].EBonded += quarter
	}
	for _, o := range m.Top.Outofplanes {
		o.OIJKL = OutOfPlaneAngle(m.Coords.VecView(o.At1), m.Coords.VecView(o.At2), m.Coords.VecView(o.At3), m.Coords.VecView(o.At4))
		o.E = eOutofplane(o.OIJKL, o.VN)
		e.Outofplanes += o.E
		quarter := 0.25 * o.E
		m.Atoms[o.At1].EBonded += quarter
		m.Atoms[o.At2].EBonded += quarter
		m.Atoms[o.At3].EBonded += quarter
		m.Atoms[o.At4].EBonded += quarter
	}

	//Nonbonded terms over all non-excluded pairs, in index order for
	//deterministic summation.
	n := m.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Top.Excluded(i, j) {
				continue
			}
			ai, aj := m.Atoms[i], m.Atoms[j]
			rij := Distance(m.Coords.VecView(i), m.Coords.VecView(j))
			evdw := eVdw(rij, ai.Ro+aj.Ro, ai.SrEps*aj.SrEps)
			eel := eElst(rij, ai.Charge, aj.Charge, m.Dielectric)
			e.VdW += evdw
			e.Elst += eel
			half := 0.5 * (evdw + eel)
			ai.ENonbonded += half
			aj.ENonbonded += half
		}
	}

	for i := 0; i < n; i++ {
		eb := m.boundaryEnergy(i)
		e.Bound += eb
		m.Atoms[i].EBound = eb
	}

	e.Kinetic = m.kineticEnergy(kin)

	e.Bonded = e.Bonds + e.Angles + e.Torsions + e.Outofplanes
	e.Nonbonded = e.VdW + e.Elst
	e.Potential = e.Bonded + e.Nonbonded + e.Bound
	e.Total = e.Potential + e.Kinetic
	m.Energy = e
	m.Temp = m.temperature(e.Kinetic)
	return nil
}

//boundaryEnergy returns the restraint energy of atom i against the
//system boundary, zero when the atom is inside or there is no boundary.
func (m *Molecule) boundaryEnergy(i int) float64 {
	b := &m.Boundary
	switch b.Kind {
	case BoundSphere:
		r := Distance(m.Coords.VecView(i), b.Origin)
		if r <= b.Size {
			return 0
		}
		d := r - b.Size
		return b.K * d * d
	case BoundCube:
		var e float64
		for k := 0; k < 3; k++ {
			d := math.Abs(m.Coords.At(i, k)-b.Origin.At(0, k)) - b.Size
			if d > 0 {
				e += b.K * d * d
			}
		}
		return e
	}
	return 0
}

//kineticEnergy sums 0.5*m*v^2 over atoms with the velocity estimate
//selected by kin.
func (m *Molecule) kineticEnergy(kin KineticType) float64 {
	if kin == KinNone {
		return 0
	}
	var e float64
	for i, at := range m.Atoms {
		var v2 float64
		for k := 0; k < 3; k++ {
			var v float64
			switch kin {
			case KinDirect:
				v = m.Vels.At(i, k)
			case KinLeapfrog:
				v = 0.5 * (m.Vels.At(i, k) + m.PVels.At(i, k))
			}
			v2 += v * v
		}
		e += 0.5 * at.Mass * v2 * Kin2Kcal
	}
	return e
}

//temperature derives the instantaneous temperature from the kinetic
//energy, T = 2*Ekin/(3*N*R).
func (m *Molecule) temperature(ekin float64) float64 {
	n := m.Len()
	if n == 0 {
		return 0
	}
	return 2.0 * ekin / (3.0 * float64(n) * RGas)
}
