package mol

import (
	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
)

// Atom is one ATOM or HETATM record that survived the alternate
// location filter. Numbers that could not be read are NaN.
type Atom struct {
	Serial  int    // structure-wide identifier
	Name    string // like "CA"
	Element string // like "C", may be empty
	cmmn.Xyz
	Occ     float32 // occupancy
	TempFac float32 // temperature factor
	res     *Residue
}

// Residue is the residue that owns the atom. It is nil until the atom
// has been added to a structure.
func (a *Atom) Residue() *Residue { return a.res }
