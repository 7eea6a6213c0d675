/*
 * data.go, part of the computational-chemistry library.
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

package param

//Covalent radii, in Angstroms.
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J).
//Note that just common "bio-elements" are present.
var elementCovrad = map[string]float64{
	"H":  0.31,
	"C":  0.76, //the sp3 radius
	"N":  0.71,
	"O":  0.66,
	"P":  1.07,
	"S":  1.05,
	"F":  0.57,
	"Cl": 1.02,
}

//Default returns a table with a compact AMBER-flavored parameter set
//for H/C/O chemistry: hydroxyl and peroxide oxygens, sp3 carbons and
//carbonyl groups. Harmonic constants follow the E = k*(x - x_eq)^2
//convention, without the 1/2 factor.
func Default() *Table {
	t := NewTable()
	for el, r := range elementCovrad {
		t.SetCovalentRadius(el, r)
	}
	reg := func(name, element string) TypeID {
		id, err := t.RegisterType(name, element)
		if err != nil {
			panic(err.Error()) //covalent radii were just set, so this cannot fail
		}
		return id
	}
	ho := reg("HO", "H") //hydroxyl/water hydrogen
	oh := reg("OH", "O") //hydroxyl/water/peroxide oxygen
	hc := reg("HC", "H") //hydrogen on carbon
	ct := reg("CT", "C") //sp3 carbon
	c := reg("C", "C")   //sp2 carbonyl carbon
	o := reg("O", "O")   //carbonyl oxygen

	//Bonds: r_eq (A), k_b (kcal/(mol*A^2))
	t.SetBond(oh, ho, BondTerm{REq: 0.960, KB: 553.0})
	t.SetBond(oh, oh, BondTerm{REq: 1.475, KB: 353.0})
	t.SetBond(ct, hc, BondTerm{REq: 1.090, KB: 340.0})
	t.SetBond(ct, oh, BondTerm{REq: 1.410, KB: 320.0})
	t.SetBond(ct, ct, BondTerm{REq: 1.526, KB: 310.0})
	t.SetBond(c, o, BondTerm{REq: 1.229, KB: 570.0})
	t.SetBond(c, hc, BondTerm{REq: 1.090, KB: 367.0})

	//Angles: a_eq (degrees), k_a (kcal/(mol*rad^2))
	t.SetAngle(ho, oh, ho, AngleTerm{AEq: 104.52, KA: 100.0})
	t.SetAngle(ho, oh, oh, AngleTerm{AEq: 99.40, KA: 50.0})
	t.SetAngle(hc, ct, hc, AngleTerm{AEq: 109.50, KA: 35.0})
	t.SetAngle(hc, ct, oh, AngleTerm{AEq: 109.50, KA: 50.0})
	t.SetAngle(hc, ct, ct, AngleTerm{AEq: 110.70, KA: 50.0})
	t.SetAngle(ct, oh, ho, AngleTerm{AEq: 108.50, KA: 55.0})
	t.SetAngle(hc, c, hc, AngleTerm{AEq: 120.00, KA: 35.0})
	t.SetAngle(hc, c, o, AngleTerm{AEq: 120.00, KA: 50.0})

	//Torsions: v_n (kcal/mol), gamma (degrees), n.
	//The peroxide dihedral carries two Fourier terms.
	t.AddTorsion(ho, oh, oh, ho, TorsionTerm{VN: 1.40, Gamma: 0, N: 2})
	t.AddTorsion(ho, oh, oh, ho, TorsionTerm{VN: 0.25, Gamma: 0, N: 1})
	t.AddTorsion(hc, ct, oh, ho, TorsionTerm{VN: 0.167, Gamma: 0, N: 3})
	t.AddTorsion(hc, ct, ct, hc, TorsionTerm{VN: 0.150, Gamma: 0, N: 3})

	//Out-of-planes: the carbonyl oxygen out of the H-C-H plane.
	t.SetOutofplane(o, c, hc, hc, 10.5)
	return t
}
