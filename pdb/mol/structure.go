// Package mol is the in-memory model of a structure: chains, residues,
// atoms, covalent bonds, disulfide bridges and the helix and sheet
// ranges, plus the secondary structure labels worked out from them.
//
// A Structure is built by the Add... functions while a file is read,
// then Annotate is called once. After that it is only read. Nothing is
// shared between structures, so different goroutines can build and
// read different structures without locking.
package mol

import (
	"sort"

	"github.com/andrew-torda/matrix"
)

// SSBond is a disulfide bridge, stored as read. Nobody checks that the
// residues exist. Serial is 0 if it could not be read.
type SSBond struct {
	Serial int
	Chain1 string
	Res1   string
	Chain2 string
	Res2   string
}

// Range is an inclusive range of residue sequence numbers.
type Range struct{ Start, End int }

// Contains says if n is within the range.
func (rg Range) Contains(n int) bool { return n >= rg.Start && n <= rg.End }

type sheetSet struct {
	ids    []string // sheet ids in the order they were seen
	ranges map[string][]Range
}

type intSet map[int]struct{}

// Structure is the top level container for one parsed file.
type Structure struct {
	ID       string
	chains   [nKind][]*Chain
	byID     [nKind]map[string]*Chain
	atoms    map[int]*Atom
	bonds    map[int]intSet
	unbonded intSet
	ssbonds  []SSBond
	helix    map[string][]Range
	sheet    map[string]*sheetSet
}

// NewStructure returns an empty structure with identifier id.
func NewStructure(id string) *Structure {
	s := &Structure{
		ID:       id,
		atoms:    make(map[int]*Atom),
		bonds:    make(map[int]intSet),
		unbonded: make(intSet),
		helix:    make(map[string][]Range),
		sheet:    make(map[string]*sheetSet),
	}
	for i := range s.byID {
		s.byID[i] = make(map[string]*Chain)
	}
	return s
}

// AddChain returns the chain with this kind and id, making it if this
// is the first time we have seen it.
func (s *Structure) AddChain(kind Kind, id string) *Chain {
	if c, ok := s.byID[kind][id]; ok {
		return c
	}
	c := newChain(kind, id)
	s.byID[kind][id] = c
	s.chains[kind] = append(s.chains[kind], c)
	return c
}

// AddResidue returns the residue with key in chain c. If it is new,
// it is appended to the chain with name as its residue name.
func (s *Structure) AddResidue(c *Chain, key, name string) *Residue {
	if r, ok := c.byKey[key]; ok {
		return r
	}
	r := newResidue(c, key, name)
	c.byKey[key] = r
	c.res = append(c.res, r)
	return r
}

// AddAtom puts an atom in residue r and in the atom table. A new
// atom starts out unbonded. Serials are trusted to be unique.
func (s *Structure) AddAtom(r *Residue, a *Atom) {
	r.addAtom(a)
	s.atoms[a.Serial] = a
	if _, bonded := s.bonds[a.Serial]; !bonded {
		s.unbonded[a.Serial] = struct{}{}
	}
}

// AddConnect adds an undirected bond between atoms a and b. It does
// nothing if a == b or if either atom is unknown.
func (s *Structure) AddConnect(a, b int) {
	if a == b {
		return
	}
	if _, ok := s.atoms[a]; !ok {
		return
	}
	if _, ok := s.atoms[b]; !ok {
		return
	}
	s.link(a, b)
	s.link(b, a)
	delete(s.unbonded, a)
	delete(s.unbonded, b)
}

func (s *Structure) link(from, to int) {
	set, ok := s.bonds[from]
	if !ok {
		set = make(intSet, 4)
		s.bonds[from] = set
	}
	set[to] = struct{}{}
}

// AddSSBond appends a bridge without looking at it.
func (s *Structure) AddSSBond(b SSBond) { s.ssbonds = append(s.ssbonds, b) }

// AddHelixRange appends a helix range for chain. Overlaps are not
// merged or checked.
func (s *Structure) AddHelixRange(chain string, start, end int) {
	s.helix[chain] = append(s.helix[chain], Range{start, end})
}

// AddSheetRange appends a strand to sheet sheetID of chain.
func (s *Structure) AddSheetRange(chain, sheetID string, start, end int) {
	ss, ok := s.sheet[chain]
	if !ok {
		ss = &sheetSet{ranges: make(map[string][]Range)}
		s.sheet[chain] = ss
	}
	if _, seen := ss.ranges[sheetID]; !seen {
		ss.ids = append(ss.ids, sheetID)
	}
	ss.ranges[sheetID] = append(ss.ranges[sheetID], Range{start, end})
}

// Chains returns chains of the given kinds. Chains are grouped by kind
// in the order the kinds are given and are in file order within a kind.
// With no kinds, all chains are returned.
func (s *Structure) Chains(kinds ...Kind) []*Chain {
	if len(kinds) == 0 {
		kinds = AllKinds
	}
	var ret []*Chain
	for _, k := range kinds {
		if k < nKind {
			ret = append(ret, s.chains[k]...)
		}
	}
	return ret
}

// Chain finds one chain or returns nil.
func (s *Structure) Chain(kind Kind, id string) *Chain {
	if kind >= nKind {
		return nil
	}
	return s.byID[kind][id]
}

// Atom finds an atom by serial number or returns nil.
func (s *Structure) Atom(serial int) *Atom { return s.atoms[serial] }

// NAtom is the number of atoms in the atom table.
func (s *Structure) NAtom() int { return len(s.atoms) }

func sortedKeys(set intSet) []int {
	ret := make([]int, 0, len(set))
	for k := range set {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

// Bonded returns the serials bonded to serial, in increasing order.
func (s *Structure) Bonded(serial int) []int { return sortedKeys(s.bonds[serial]) }

// IsBonded says if there is a bond between a and b.
func (s *Structure) IsBonded(a, b int) bool {
	_, ok := s.bonds[a][b]
	return ok
}

// NBond counts each undirected bond once.
func (s *Structure) NBond() (n int) {
	for _, set := range s.bonds {
		n += len(set)
	}
	return n / 2
}

// Unbonded returns the serials of atoms with no CONECT partner.
func (s *Structure) Unbonded() []int { return sortedKeys(s.unbonded) }

// SSBonds returns the disulfide bridges in file order.
func (s *Structure) SSBonds() []SSBond { return s.ssbonds }

// HelixRanges returns the helix ranges for a chain id.
func (s *Structure) HelixRanges(chain string) []Range { return s.helix[chain] }

// SheetRanges returns strands for a chain id grouped by sheet id.
func (s *Structure) SheetRanges(chain string) map[string][]Range {
	ss, ok := s.sheet[chain]
	if !ok {
		return nil
	}
	return ss.ranges
}

// sheetFlat drops the sheet grouping. Strands come in the order the
// sheets were first seen.
func (s *Structure) sheetFlat(chain string) []Range {
	ss, ok := s.sheet[chain]
	if !ok {
		return nil
	}
	var ret []Range
	for _, id := range ss.ids {
		ret = append(ret, ss.ranges[id]...)
	}
	return ret
}

// CoordMatrix returns an n x 3 matrix of coordinates for all atoms in
// chains of the given kinds, and the atoms in the same order as the rows.
func (s *Structure) CoordMatrix(kinds ...Kind) (*matrix.FMatrix2d, []*Atom) {
	var atoms []*Atom
	for _, c := range s.Chains(kinds...) {
		for _, r := range c.res {
			atoms = append(atoms, r.atoms...)
		}
	}
	if len(atoms) == 0 {
		return nil, nil
	}
	m := matrix.NewFMatrix2d(len(atoms), 3)
	for i, a := range atoms {
		m.Mat[i][0], m.Mat[i][1], m.Mat[i][2] = a.X, a.Y, a.Z
	}
	return m, atoms
}
