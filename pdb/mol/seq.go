package mol

import (
	"strings"
)

// AminoThreeToOne maps three letter amino acid names to one letter codes.
var AminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O', "MSE": 'M',
}

// nucleicOne maps the residue names used for nucleic acids to a one
// letter code. Being in this table is what makes a chain nucleic.
var nucleicOne = map[string]byte{
	"A": 'A', "C": 'C', "G": 'G', "U": 'U', "I": 'I', "T": 'T', "N": 'N',
	"DA": 'A', "DC": 'C', "DG": 'G', "DT": 'T', "DU": 'U', "DI": 'I', "DN": 'N',
}

// IsNucleic says if a residue name belongs to a nucleic acid.
func IsNucleic(resName string) bool {
	_, ok := nucleicOne[resName]
	return ok
}

// Sequence gives the one letter sequence of the chain in structural
// order. Unknown residue names become X.
func (c *Chain) Sequence() string {
	var b strings.Builder
	b.Grow(len(c.res))
	for _, r := range c.SortedResidues() {
		if one, ok := AminoThreeToOne[r.Name]; ok && c.Kind != Nucleic {
			b.WriteByte(one)
		} else if one, ok := nucleicOne[r.Name]; ok {
			b.WriteByte(one)
		} else {
			b.WriteByte('X')
		}
	}
	return b.String()
}

// SSString gives one character per residue in structural order,
// H for helix, E for sheet, - for loop.
func (c *Chain) SSString() string {
	res := c.SortedResidues()
	b := make([]byte, len(res))
	for i, r := range res {
		b[i] = r.ss.Code()
	}
	return string(b)
}
