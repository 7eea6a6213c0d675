/*
 * param.go, part of the computational-chemistry library.
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

//Package param provides the force-field parameter service: interned
//atom-type identifiers and order-independent lookups for covalent radii
//and bond, angle, torsion and out-of-plane parameters.
package param

import (
	"fmt"
	"strings"
)

//TypeID identifies an interned atom type. Atom types are validated and
//interned once, at registration, so the rest of the library never keys
//on raw strings.
type TypeID int

//BondTerm holds the harmonic parameters of a bond type.
//REq in Angstroms, KB in kcal/(mol*A^2).
type BondTerm struct {
	REq float64
	KB  float64
}

//AngleTerm holds the harmonic parameters of an angle type.
//AEq in degrees, KA in kcal/(mol*rad^2).
type AngleTerm struct {
	AEq float64
	KA  float64
}

//TorsionTerm holds one Fourier term of a torsion type. VN in kcal/mol,
//Gamma in degrees, N is the periodicity. A single atom-type quadruple
//may carry several terms with different periodicities.
type TorsionTerm struct {
	VN    float64
	Gamma float64
	N     int
}

//MissingError reports a force-field parameter absent from the table for
//an atom-type combination that is present in the system. It is a fatal
//configuration error: the simulation cannot proceed without the term.
type MissingError struct {
	Kind string //"bond", "angle", "torsion", "covalent radius", "atom type"
	Key  string //canonical form of the offending key
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("param: no %s parameters for %s", e.Kind, e.Key)
}

//Table is a force-field parameter table. All lookups canonicalize their
//key so that the order in which the atom types are given does not
//matter.
type Table struct {
	names    []string
	elements []string
	index    map[string]TypeID
	covrad   map[string]float64 //keyed by element
	bonds    map[[2]TypeID]BondTerm
	angles   map[[3]TypeID]AngleTerm
	torsions map[[4]TypeID][]TorsionTerm
	oops     map[[4]TypeID]float64
}

//NewTable returns an empty parameter table.
func NewTable() *Table {
	return &Table{
		index:    make(map[string]TypeID),
		covrad:   make(map[string]float64),
		bonds:    make(map[[2]TypeID]BondTerm),
		angles:   make(map[[3]TypeID]AngleTerm),
		torsions: make(map[[4]TypeID][]TorsionTerm),
		oops:     make(map[[4]TypeID]float64),
	}
}

//RegisterType adds the atom type name, belonging to element, to the
//table, and returns its TypeID. Registering the same name twice returns
//the original id, or an error if the element differs.
func (t *Table) RegisterType(name, element string) (TypeID, error) {
	if name == "" {
		return -1, fmt.Errorf("param: empty atom type name")
	}
	if id, ok := t.index[name]; ok {
		if t.elements[id] != element {
			return -1, fmt.Errorf("param: atom type %s already registered with element %s", name, t.elements[id])
		}
		return id, nil
	}
	if _, ok := t.covrad[element]; !ok {
		return -1, &MissingError{Kind: "covalent radius", Key: element}
	}
	id := TypeID(len(t.names))
	t.names = append(t.names, name)
	t.elements = append(t.elements, element)
	t.index[name] = id
	return id, nil
}

//TypeByName returns the TypeID interned for name. Unregistered names
//are a MissingError.
func (t *Table) TypeByName(name string) (TypeID, error) {
	id, ok := t.index[name]
	if !ok {
		return -1, &MissingError{Kind: "atom type", Key: name}
	}
	return id, nil
}

//Name returns the string label of the interned type id.
func (t *Table) Name(id TypeID) string {
	return t.names[id]
}

//Element returns the element symbol of the interned type id.
func (t *Table) Element(id TypeID) string {
	return t.elements[id]
}

//SetCovalentRadius sets the covalent radius (Angstroms) of element.
func (t *Table) SetCovalentRadius(element string, r float64) {
	t.covrad[element] = r
}

//CovalentRadius returns the covalent radius of element, in Angstroms.
func (t *Table) CovalentRadius(element string) (float64, error) {
	r, ok := t.covrad[element]
	if !ok {
		return 0, &MissingError{Kind: "covalent radius", Key: element}
	}
	return r, nil
}

//SetBond sets the bond term for the pair (i,j), in either order.
func (t *Table) SetBond(i, j TypeID, term BondTerm) {
	t.bonds[bondKey(i, j)] = term
}

//LookupBond returns the bond term for the pair (i,j), in either order.
func (t *Table) LookupBond(i, j TypeID) (BondTerm, error) {
	b, ok := t.bonds[bondKey(i, j)]
	if !ok {
		return BondTerm{}, &MissingError{Kind: "bond", Key: t.keyString(i, j)}
	}
	return b, nil
}

//SetAngle sets the angle term for the triple (i,j,k), with j the
//vertex. The triple (k,j,i) refers to the same term.
func (t *Table) SetAngle(i, j, k TypeID, term AngleTerm) {
	t.angles[angleKey(i, j, k)] = term
}

//LookupAngle returns the angle term for the triple (i,j,k), with j the
//vertex, in either direction.
func (t *Table) LookupAngle(i, j, k TypeID) (AngleTerm, error) {
	a, ok := t.angles[angleKey(i, j, k)]
	if !ok {
		return AngleTerm{}, &MissingError{Kind: "angle", Key: t.keyString(i, j, k)}
	}
	return a, nil
}

//AddTorsion appends a Fourier term for the quadruple (i,j,k,l). The
//reversed quadruple refers to the same term list.
func (t *Table) AddTorsion(i, j, k, l TypeID, term TorsionTerm) {
	key := torsionKey(i, j, k, l)
	t.torsions[key] = append(t.torsions[key], term)
}

//LookupTorsion returns all Fourier terms for the quadruple (i,j,k,l),
//in either direction. At least one term must exist.
func (t *Table) LookupTorsion(i, j, k, l TypeID) ([]TorsionTerm, error) {
	terms, ok := t.torsions[torsionKey(i, j, k, l)]
	if !ok || len(terms) == 0 {
		return nil, &MissingError{Kind: "torsion", Key: t.keyString(i, j, k, l)}
	}
	return terms, nil
}

//SetOutofplane sets the out-of-plane amplitude (kcal/mol) for an
//improper centered on type b, with a the out-of-plane type and c, d the
//remaining neighbors (in either order).
func (t *Table) SetOutofplane(a, b, c, d TypeID, vn float64) {
	t.oops[oopKey(a, b, c, d)] = vn
}

//LookupOutofplane returns the out-of-plane amplitude for the improper
//(a,b,c,d) and whether such a term exists. Unlike the other lookups,
//absence is not an error: most improper-capable centers carry no
//out-of-plane term in standard force fields.
func (t *Table) LookupOutofplane(a, b, c, d TypeID) (float64, bool) {
	vn, ok := t.oops[oopKey(a, b, c, d)]
	return vn, ok
}

//keyString renders a canonical, human-readable form of a lookup key,
//for error reporting.
func (t *Table) keyString(ids ...TypeID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = t.names[id]
	}
	return strings.Join(s, "-")
}

func bondKey(i, j TypeID) [2]TypeID {
	if j < i {
		i, j = j, i
	}
	return [2]TypeID{i, j}
}

func angleKey(i, j, k TypeID) [3]TypeID {
	if k < i {
		i, k = k, i
	}
	return [3]TypeID{i, j, k}
}

func torsionKey(i, j, k, l TypeID) [4]TypeID {
	fwd := [4]TypeID{i, j, k, l}
	rev := [4]TypeID{l, k, j, i}
	for n := 0; n < 4; n++ {
		if fwd[n] < rev[n] {
			return fwd
		}
		if rev[n] < fwd[n] {
			return rev
		}
	}
	return fwd
}

//oopKey keeps the out-of-plane atom a and the center b in place and
//sorts only the in-plane neighbors.
func oopKey(a, b, c, d TypeID) [4]TypeID {
	if d < c {
		c, d = d, c
	}
	return [4]TypeID{a, b, c, d}
}
