/*
 * geometric.go, part of the computational-chemistry library.
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

//used to correct floating point errors. Everything equal or less than
//this is considered zero.
const appzero float64 = 1e-12

const (
	deg2rad = math.Pi / 180.0
	rad2deg = 180.0 / math.Pi
)

/*The functions in this file are pure functions of coordinate sets. They
 * do not trap degenerate geometries: a zero-length vector or a
 * collinear triple feeding them produces NaN, which propagates to the
 * caller. This is intentional and matches the permissive behavior
 * expected from a floating-point pipeline; consumers check for NaN/Inf
 * where it matters.*/

//Distance returns the Euclidean distance, in Angstroms, between the
//points a and b.
func Distance(a, b *v3.Matrix) float64 {
	var d float64
	for i := 0; i < 3; i++ {
		t := b.At(0, i) - a.At(0, i)
		d += t * t
	}
	return math.Sqrt(d)
}

//VecAngle returns the angle, in radians, between the vectors v1 and v2.
//The acos argument is clamped to [-1,1] to keep floating-point noise
//from leaving the function's domain.
func VecAngle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	argument := v1.Dot(v2) / normproduct
	if math.Abs(argument-1) <= appzero {
		argument = 1
	} else if math.Abs(argument+1) <= appzero {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.0
	}
	return angle
}

//Angle returns the angle a-b-c, in degrees, at the vertex b.
func Angle(a, b, c *v3.Matrix) float64 {
	ba := v3.Zeros(1)
	bc := v3.Zeros(1)
	ba.Sub(a, b)
	bc.Sub(c, b)
	return VecAngle(ba, bc) * rad2deg
}

//Dihedral returns the signed torsion angle a-b-c-d, in degrees, between
//the plane containing a,b,c and the plane containing b,c,d. The
//atan2-based formula is continuous and sign-correct over the full
//(-180,180] range.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	n1 := v3.Zeros(1)
	n2 := v3.Zeros(1)
	n1.Cross(bma, cmb)
	n2.Cross(cmb, dmc)
	bmascaled := v3.Zeros(1)
	bmascaled.Scale(cmb.Norm(), bma)
	first := bmascaled.Dot(n2)
	second := n1.Dot(n2)
	return math.Atan2(first, second) * rad2deg
}

//OutOfPlaneAngle returns the improper angle, in degrees, measuring the
//displacement of the point a from the plane through b, c and d. It is
//the angle between the vector b->a and the plane spanned by b->c and
//b->d, positive when a lies on the side pointed to by (b->c)x(b->d).
func OutOfPlaneAngle(a, b, c, d *v3.Matrix) float64 {
	ba := v3.Zeros(1)
	bc := v3.Zeros(1)
	bd := v3.Zeros(1)
	ba.Sub(a, b)
	bc.Sub(c, b)
	bd.Sub(d, b)
	n := v3.Zeros(1)
	n.Cross(bc, bd)
	n.Unit(n)
	ba.Unit(ba)
	s := n.Dot(ba)
	if math.Abs(s-1) <= appzero {
		s = 1
	} else if math.Abs(s+1) <= appzero {
		s = -1
	}
	return math.Asin(s) * rad2deg
}
