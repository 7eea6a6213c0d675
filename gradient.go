/*
 * gradient.go, part of the computational-chemistry library.
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

	v3 "github.com/strekowski/computational-chemistry/v3"
)

//GradientType selects between the analytic gradient and the
//finite-difference fallback.
type GradientType int

const (
	GradAnalytic GradientType = iota
	GradNumerical
)

func (g GradientType) String() string {
	switch g {
	case GradAnalytic:
		return "analytic"
	case GradNumerical:
		return "numerical"
	}
	return "unknown"
}

//ParseGradientType maps a selector string to a GradientType. An
//unrecognized selector is a fatal configuration error, reported with
//the offending value.
func ParseGradientType(s string) (GradientType, error) {
	switch s {
	case "analytic", "":
		return GradAnalytic, nil
	case "numerical":
		return GradNumerical, nil
	}
	return GradAnalytic, errorf("ParseGradientType: gradient type %q not recognized", s)
}

//Displacement, in Angstroms, for the central finite difference.
const numDisp = 1e-5

//Small fixed-size vector helpers for the chain-rule math below. The
//v3.Matrix machinery would allocate in every inner loop; these don't.

func row3(M *v3.Matrix, i int) [3]float64 {
	return [3]float64{M.At(i, 0), M.At(i, 1), M.At(i, 2)}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func add3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale3(a [3]float64, f float64) [3]float64 {
	return [3]float64{f * a[0], f * a[1], f * a[2]}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func norm3(a [3]float64) float64 {
	return math.Sqrt(dot3(a, a))
}

func addTo(M *v3.Matrix, i int, v [3]float64) {
	for k := 0; k < 3; k++ {
		M.Set(i, k, M.At(i, k)+v[k])
	}
}

//ComputeGradient evaluates the gradient of the potential energy with
//respect to every atomic coordinate, either analytically or by central
//finite differences, and refreshes the per-category matrices, the
//per-atom accumulators and the virial. The gradient is +dE/dx; forces
//are the negative. ComputeEnergy must run at least once first so the
//record geometry is current; the analytic path refreshes it again
//itself.
func (m *Molecule) ComputeGradient(gt GradientType) error {
	if m.Top == nil {
		return errorf("ComputeGradient: topology not derived")
	}
	switch gt {
	case GradAnalytic:
		m.analyticGradient()
	case GradNumerical:
		if err := m.numericalGradient(); err != nil {
			return errDecorate(err, "ComputeGradient")
		}
	default:
		return errorf("ComputeGradient: gradient type (%d) not recognized", int(gt))
	}
	m.assembleGradientTotals()
	return nil
}

func zero(M *v3.Matrix) {
	M.Scale(0, M.Dense)
}

func (m *Molecule) analyticGradient() {
	g := &m.Grad
	zero(g.Bonds)
	zero(g.Angles)
	zero(g.Torsions)
	zero(g.Outofplanes)
	zero(g.VdW)
	zero(g.Elst)
	zero(g.Bound)

	for _, b := range m.Top.Bonds {
		r1 := row3(m.Coords, b.At1)
		r2 := row3(m.Coords, b.At2)
		d := sub3(r1, r2)
		b.RIJ = norm3(d)
		b.G = 2.0 * b.KB * (b.RIJ - b.REq)
		u := scale3(d, 1.0/b.RIJ)
		addTo(g.Bonds, b.At1, scale3(u, b.G))
		addTo(g.Bonds, b.At2, scale3(u, -b.G))
	}

	for _, a := range m.Top.Angles {
		ra := row3(m.Coords, a.At1)
		rb := row3(m.Coords, a.At2)
		rc := row3(m.Coords, a.At3)
		v1 := sub3(ra, rb)
		v2 := sub3(rc, rb)
		n1 := norm3(v1)
		n2 := norm3(v2)
		u1 := scale3(v1, 1.0/n1)
		u2 := scale3(v2, 1.0/n2)
		cosT := dot3(u1, u2)
		theta := math.Acos(math.Max(-1, math.Min(1, cosT)))
		sinT := math.Sin(theta)
		a.AIJK = theta * rad2deg
		a.G = 2.0 * a.KA * (theta - a.AEq*deg2rad)
		//dTheta/dr; degenerate (collinear) triples make sinT zero and
		//the result NaN, which propagates by design.
		ga := scale3(sub3(scale3(u1, cosT), u2), 1.0/(n1*sinT))
		gc := scale3(sub3(scale3(u2, cosT), u1), 1.0/(n2*sinT))
		gb := scale3(add3(ga, gc), -1)
		addTo(g.Angles, a.At1, scale3(ga, a.G))
		addTo(g.Angles, a.At2, scale3(gb, a.G))
		addTo(g.Angles, a.At3, scale3(gc, a.G))
	}

	for _, t := range m.Top.Torsions {
		ra := row3(m.Coords, t.At1)
		rb := row3(m.Coords, t.At2)
		rc := row3(m.Coords, t.At3)
		rd := row3(m.Coords, t.At4)
		b1 := sub3(rb, ra)
		b2 := sub3(rc, rb)
		b3 := sub3(rd, rc)
		n1 := cross3(b1, b2)
		n2 := cross3(b2, b3)
		lb2 := norm3(b2)
		phi := math.Atan2(lb2*dot3(b1, n2), dot3(n1, n2))
		t.TIJKL = phi * rad2deg
		t.G = -t.VN / float64(t.Paths) * float64(t.N) * math.Sin(float64(t.N)*phi-t.Gamma*deg2rad)
		//Blondel & Karplus (1996) chain rule for the dihedral.
		ga := scale3(n1, -lb2/dot3(n1, n1))
		gd := scale3(n2, lb2/dot3(n2, n2))
		s12 := dot3(b1, b2) / (lb2 * lb2)
		s32 := dot3(b3, b2) / (lb2 * lb2)
		gb := sub3(scale3(ga, s12-1), scale3(gd, s32))
		gc := sub3(scale3(gd, s32-1), scale3(ga, s12))
		addTo(g.Torsions, t.At1, scale3(ga, t.G))
		addTo(g.Torsions, t.At2, scale3(gb, t.G))
		addTo(g.Torsions, t.At3, scale3(gc, t.G))
		addTo(g.Torsions, t.At4, scale3(gd, t.G))
	}

	for _, o := range m.Top.Outofplanes {
		ra := row3(m.Coords, o.At1)
		rb := row3(m.Coords, o.At2)
		rc := row3(m.Coords, o.At3)
		rd := row3(m.Coords, o.At4)
		u := sub3(ra, rb)
		r1 := sub3(rc, rb)
		r2 := sub3(rd, rb)
		lu := norm3(u)
		u = scale3(u, 1.0/lu)
		nv := cross3(r1, r2)
		ln := norm3(nv)
		nh := scale3(nv, 1.0/ln)
		s := math.Max(-1, math.Min(1, dot3(nh, u)))
		phi := math.Asin(s)
		o.OIJKL = phi * rad2deg
		o.G = 2.0 * o.VN * phi
		cosP := math.Cos(phi)
		w := sub3(u, scale3(nh, s))
		ga := scale3(sub3(nh, scale3(u, s)), 1.0/(lu*cosP))
		gc := scale3(cross3(r2, w), 1.0/(ln*cosP))
		gd := scale3(cross3(w, r1), 1.0/(ln*cosP))
		gb := scale3(add3(add3(ga, gc), gd), -1)
		addTo(g.Outofplanes, o.At1, scale3(ga, o.G))
		addTo(g.Outofplanes, o.At2, scale3(gb, o.G))
		addTo(g.Outofplanes, o.At3, scale3(gc, o.G))
		addTo(g.Outofplanes, o.At4, scale3(gd, o.G))
	}

	n := m.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.Top.Excluded(i, j) {
				continue
			}
			ai, aj := m.Atoms[i], m.Atoms[j]
			ri := row3(m.Coords, i)
			rj := row3(m.Coords, j)
			d := sub3(ri, rj)
			rij := norm3(d)
			u := scale3(d, 1.0/rij)
			ro := ai.Ro + aj.Ro
			eps := ai.SrEps * aj.SrEps
			r6 := math.Pow(ro/rij, 6)
			dvdw := -12.0 * eps / rij * (r6*r6 - r6)
			delst := -CoulombK * ai.Charge * aj.Charge / (m.Dielectric * rij * rij)
			addTo(g.VdW, i, scale3(u, dvdw))
			addTo(g.VdW, j, scale3(u, -dvdw))
			addTo(g.Elst, i, scale3(u, delst))
			addTo(g.Elst, j, scale3(u, -delst))
		}
	}

	for i := 0; i < n; i++ {
		m.boundaryGradient(i)
	}
}

//boundaryGradient accumulates the restraint gradient of atom i into the
//Bound matrix.
func (m *Molecule) boundaryGradient(i int) {
	b := &m.Boundary
	switch b.Kind {
	case BoundSphere:
		ri := row3(m.Coords, i)
		o := row3(b.Origin, 0)
		d := sub3(ri, o)
		r := norm3(d)
		if r <= b.Size || r <= appzero {
			return
		}
		f := 2.0 * b.K * (r - b.Size) / r
		addTo(m.Grad.Bound, i, scale3(d, f))
	case BoundCube:
		var gv [3]float64
		for k := 0; k < 3; k++ {
			x := m.Coords.At(i, k) - b.Origin.At(0, k)
			d := math.Abs(x) - b.Size
			if d <= 0 {
				continue
			}
			gv[k] = 2.0 * b.K * d * math.Copysign(1, x)
		}
		addTo(m.Grad.Bound, i, gv)
	}
}

//numericalGradient estimates every per-category gradient by displacing
//each coordinate of each atom by numDisp in both directions and
//re-evaluating the energy: a central difference. It re-runs the energy
//at the original coordinates afterwards, so the aggregate state is left
//as an ordinary evaluation would.
func (m *Molecule) numericalGradient() error {
	g := &m.Grad
	zero(g.Bonds)
	zero(g.Angles)
	zero(g.Torsions)
	zero(g.Outofplanes)
	zero(g.VdW)
	zero(g.Elst)
	zero(g.Bound)

	n := m.Len()
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			orig := m.Coords.At(i, k)
			m.Coords.Set(i, k, orig+numDisp)
			if err := m.ComputeEnergy(KinNone); err != nil {
				return err
			}
			plus := m.Energy
			m.Coords.Set(i, k, orig-numDisp)
			if err := m.ComputeEnergy(KinNone); err != nil {
				return err
			}
			minus := m.Energy
			m.Coords.Set(i, k, orig)
			den := 2.0 * numDisp
			g.Bonds.Set(i, k, (plus.Bonds-minus.Bonds)/den)
			g.Angles.Set(i, k, (plus.Angles-minus.Angles)/den)
			g.Torsions.Set(i, k, (plus.Torsions-minus.Torsions)/den)
			g.Outofplanes.Set(i, k, (plus.Outofplanes-minus.Outofplanes)/den)
			g.VdW.Set(i, k, (plus.VdW-minus.VdW)/den)
			g.Elst.Set(i, k, (plus.Elst-minus.Elst)/den)
			g.Bound.Set(i, k, (plus.Bound-minus.Bound)/den)
		}
	}
	return m.ComputeEnergy(KinNone)
}

//assembleGradientTotals sums the category matrices in fixed order into
//the bonded, nonbonded and total gradients, refreshes the per-atom
//accumulators, and derives the virial, W = -sum_i r_i . grad_i E.
func (m *Molecule) assembleGradientTotals() {
	g := &m.Grad
	n := m.Len()
	var virial float64
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			bonded := g.Bonds.At(i, k) + g.Angles.At(i, k) + g.Torsions.At(i, k) + g.Outofplanes.At(i, k)
			nonbonded := g.VdW.At(i, k) + g.Elst.At(i, k)
			g.Bonded.Set(i, k, bonded)
			g.Nonbonded.Set(i, k, nonbonded)
			tot := bonded + nonbonded + g.Bound.At(i, k)
			g.Total.Set(i, k, tot)
			m.Atoms[i].GBonded[k] = bonded
			m.Atoms[i].GNonbonded[k] = nonbonded
			virial -= m.Coords.At(i, k) * tot
		}
	}
	m.Virial = virial
}

//Pressure derives the instantaneous pressure, in atm, from the ideal
//term and the virial: P = (N*R*T + W/3)/V. With no boundary the volume
//is infinite and the pressure zero. The virial convention is
//W = -sum_i r_i . grad_i E over the total potential gradient, which for
//pairwise potentials equals the usual sum of force-times-distance over
//pairs.
func (m *Molecule) Pressure() float64 {
	vol := m.Volume()
	if math.IsInf(vol, 1) {
		m.Press = 0
		return 0
	}
	p := KcalA3ToAtm * (float64(m.Len())*RGas*m.Temp + m.Virial/3.0) / vol
	m.Press = p
	return p
}
