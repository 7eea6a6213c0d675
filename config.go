/*
 * config.go, part of the computational-chemistry library.
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
	"gopkg.in/gcfg.v1"

	v3 "github.com/strekowski/computational-chemistry/v3"
)

//SimConfig holds the simulation settings a driver reads from an
//ini-style file. Zero values keep the molecule defaults (dielectric 1,
//no boundary, analytic gradient, no kinetic energy).
type SimConfig struct {
	Simulation struct {
		Dielectric     float64
		Temperature    float64
		BoundaryType   string
		Boundary       float64 //radius or half-edge, Angstroms
		BoundarySpring float64 //kcal/(mol*A^2)
		Origin         []float64
		GradientType   string
		KineticType    string
	}
}

//ReadConfig parses the settings file at path.
func ReadConfig(path string) (*SimConfig, error) {
	c := new(SimConfig)
	if err := gcfg.ReadFileInto(c, path); err != nil {
		return nil, errDecorate(err, "ReadConfig")
	}
	return c, nil
}

//Apply validates the configured selectors and writes the settings into
//the molecule. It returns the parsed gradient and kinetic selectors for
//the driving loop; an unrecognized selector aborts with the offending
//value and leaves the molecule untouched.
func (c *SimConfig) Apply(m *Molecule) (GradientType, KineticType, error) {
	s := &c.Simulation
	bk, err := ParseBoundaryKind(s.BoundaryType)
	if err != nil {
		return GradAnalytic, KinNone, errDecorate(err, "Apply")
	}
	gt, err := ParseGradientType(s.GradientType)
	if err != nil {
		return GradAnalytic, KinNone, errDecorate(err, "Apply")
	}
	kt, err := ParseKineticType(s.KineticType)
	if err != nil {
		return GradAnalytic, KinNone, errDecorate(err, "Apply")
	}
	if len(s.Origin) != 0 && len(s.Origin) != 3 {
		return GradAnalytic, KinNone, errorf("Apply: boundary origin needs 3 components, got %d", len(s.Origin))
	}
	if s.Dielectric > 0 {
		m.Dielectric = s.Dielectric
	}
	if s.Temperature > 0 {
		m.Temp = s.Temperature
	}
	m.Boundary.Kind = bk
	m.Boundary.Size = s.Boundary
	m.Boundary.K = s.BoundarySpring
	if len(s.Origin) == 3 {
		o, err := v3.NewMatrix(s.Origin)
		if err != nil {
			return GradAnalytic, KinNone, errDecorate(err, "Apply")
		}
		m.Boundary.Origin = o
	}
	return gt, kt, nil
}
