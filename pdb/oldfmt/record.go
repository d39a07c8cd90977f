package oldfmt

import (
	"strings"
)

// RecKind is the type of record, decided by the first six columns.
type RecKind byte

const (
	RecOther RecKind = iota
	RecAtom
	RecHetatm
	RecConect
	RecSSBond
	RecHelix
	RecSheet
)

func (k RecKind) String() string {
	switch k {
	case RecAtom:
		return "ATOM"
	case RecHetatm:
		return "HETATM"
	case RecConect:
		return "CONECT"
	case RecSSBond:
		return "SSBOND"
	case RecHelix:
		return "HELIX"
	case RecSheet:
		return "SHEET"
	}
	return "other"
}

// Classify looks at the keyword in columns 1 to 6. Anything we do not
// handle is RecOther.
func Classify(line string) RecKind {
	kw := line
	if len(kw) > 6 {
		kw = kw[:6]
	}
	switch strings.TrimRight(kw, " ") {
	case "ATOM":
		return RecAtom
	case "HETATM":
		return RecHetatm
	case "CONECT":
		return RecConect
	case "SSBOND":
		return RecSSBond
	case "HELIX":
		return RecHelix
	case "SHEET":
		return RecSheet
	}
	return RecOther
}

// Column positions, counting from 1, first and last column included.
type colRange struct{ start, end int }

var (
	colSerial   = colRange{7, 11}
	colAtName   = colRange{13, 16}
	colAltLoc   = 17
	colResName  = colRange{18, 20}
	colChain    = colRange{22, 22}
	colResKey   = colRange{23, 27}
	colX        = colRange{31, 38}
	colY        = colRange{39, 46}
	colZ        = colRange{47, 54}
	colOcc      = colRange{55, 60}
	colTempFac  = colRange{61, 66}
	colElement  = colRange{77, 78}
	colConTo    = []colRange{{12, 16}, {17, 21}, {22, 26}, {27, 31}}
	colSSChain1 = colRange{16, 16}
	colSSRes1   = colRange{18, 22}
	colSSChain2 = colRange{30, 30}
	colSSRes2   = colRange{32, 36}
	colHxChain  = colRange{20, 20}
	colHxStart  = colRange{22, 26}
	colHxEnd    = colRange{34, 38}
	colShID     = colRange{12, 14}
	colShChain  = colRange{22, 22}
	colShStart  = colRange{23, 27}
	colShEnd    = colRange{34, 38}
)

func (c colRange) get(line string) string { return Cols(line, c.start, c.end) }

// Defaults for blank fields
const (
	dfltResName = "YDF"
	dfltSheetID = "A1"
)
