/*
 * geometric_test.go, part of the computational-chemistry library.
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

	v3 "github.com/strekowski/computational-chemistry/v3"
)

func vec(t *testing.T, x, y, z float64) *v3.Matrix {
	t.Helper()
	v, err := v3.NewMatrix([]float64{x, y, z})
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestDistance(Te *testing.T) {
	a := vec(Te, 1, 2, 3)
	b := vec(Te, 4, 6, 3)
	if d := Distance(a, b); math.Abs(d-5.0) > 1e-12 {
		Te.Errorf("Distance: got %v, want 5", d)
	}
	if d := Distance(a, a); d != 0 {
		Te.Errorf("Distance of a point to itself: got %v", d)
	}
}

func TestAngle(Te *testing.T) {
	o := vec(Te, 0, 0, 0)
	x := vec(Te, 1.5, 0, 0)
	y := vec(Te, 0, 0.7, 0)
	if a := Angle(x, o, y); math.Abs(a-90.0) > 1e-10 {
		Te.Errorf("right angle: got %v", a)
	}
	//collinear and anti-collinear
	x2 := vec(Te, 3, 0, 0)
	if a := Angle(x, o, x2); math.Abs(a) > 1e-8 {
		Te.Errorf("collinear angle: got %v", a)
	}
	mx := vec(Te, -2, 0, 0)
	if a := Angle(x, o, mx); math.Abs(a-180.0) > 1e-8 {
		Te.Errorf("anti-collinear angle: got %v", a)
	}
}

func TestDihedral(Te *testing.T) {
	b := vec(Te, 0, 0, 0)
	c := vec(Te, 0, 0, 1.4)
	a := vec(Te, 1, 0, 0)
	//trans
	d := vec(Te, -1, 0, 1.4)
	if t := Dihedral(a, b, c, d); math.Abs(math.Abs(t)-180.0) > 1e-10 {
		Te.Errorf("trans dihedral: got %v", t)
	}
	//cis
	d = vec(Te, 1, 0, 1.4)
	if t := Dihedral(a, b, c, d); math.Abs(t) > 1e-10 {
		Te.Errorf("cis dihedral: got %v", t)
	}
	//signed quarter turns must be distinguishable
	dm := vec(Te, 0, -1, 1.4)
	dp := vec(Te, 0, 1, 1.4)
	tm := Dihedral(a, b, c, dm)
	tp := Dihedral(a, b, c, dp)
	if math.Abs(math.Abs(tm)-90.0) > 1e-10 || math.Abs(math.Abs(tp)-90.0) > 1e-10 {
		Te.Errorf("quarter-turn dihedrals: got %v and %v", tm, tp)
	}
	if tm == tp {
		Te.Errorf("dihedral lost its sign: %v on both sides", tm)
	}
}

func TestOutOfPlaneAngle(Te *testing.T) {
	b := vec(Te, 0, 0, 0)
	c := vec(Te, 1, 0, 0)
	d := vec(Te, 0, 1, 0)
	//in-plane point
	a := vec(Te, -1, -1, 0)
	if o := OutOfPlaneAngle(a, b, c, d); math.Abs(o) > 1e-10 {
		Te.Errorf("planar out-of-plane angle: got %v", o)
	}
	//point straight above the plane
	a = vec(Te, 0, 0, 2)
	if o := OutOfPlaneAngle(a, b, c, d); math.Abs(o-90.0) > 1e-10 {
		Te.Errorf("perpendicular out-of-plane angle: got %v", o)
	}
	a = vec(Te, 0, 0, -2)
	if o := OutOfPlaneAngle(a, b, c, d); math.Abs(o+90.0) > 1e-10 {
		Te.Errorf("perpendicular out-of-plane angle, other side: got %v", o)
	}
}

//Degenerate geometries are not trapped: they produce NaN that the
//caller must check for.
func TestDegenerateGeometryPropagatesNaN(Te *testing.T) {
	o := vec(Te, 0, 0, 0)
	x := vec(Te, 1, 0, 0)
	if a := Angle(o, o, x); !math.IsNaN(a) {
		Te.Errorf("zero-length vector in Angle: got %v, want NaN", a)
	}
	if oa := OutOfPlaneAngle(x, o, o, x); !math.IsNaN(oa) {
		Te.Errorf("degenerate plane in OutOfPlaneAngle: got %v, want NaN", oa)
	}
}

func TestBoundaryVolume(Te *testing.T) {
	b := Boundary{Kind: BoundSphere, Size: 2.0}
	want := 4.0 * math.Pi * 8.0 / 3.0
	if v := b.Volume(); math.Abs(v-want) > 1e-10 {
		Te.Errorf("sphere volume: got %v, want %v", v, want)
	}
	b.Kind = BoundCube
	if v := b.Volume(); math.Abs(v-64.0) > 1e-10 {
		Te.Errorf("cube volume: got %v, want 64", v)
	}
	b.Kind = BoundNone
	if v := b.Volume(); !math.IsInf(v, 1) {
		Te.Errorf("unbounded volume: got %v, want +Inf", v)
	}
}
