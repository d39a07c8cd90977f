package mol

import (
	"sort"
)

// Kind says which partition a chain lives in.
type Kind byte

const (
	Polymer Kind = iota
	Heteroatom
	Nucleic
	nKind
)

// DefaultChain is the chain id used when the file leaves it blank.
const DefaultChain = "_"

// AllKinds is every kind, in the order chains are listed.
var AllKinds = []Kind{Polymer, Heteroatom, Nucleic}

func (k Kind) String() string {
	switch k {
	case Polymer:
		return "polymer"
	case Heteroatom:
		return "heteroatom"
	case Nucleic:
		return "nucleic"
	}
	return "unknown"
}

// Chain has residues in the order they were first seen in the file.
// Exactly one chain exists for each kind and identifier.
type Chain struct {
	ID    string
	Kind  Kind
	byKey map[string]*Residue
	res   []*Residue
}

func newChain(kind Kind, id string) *Chain {
	return &Chain{
		ID:    id,
		Kind:  kind,
		byKey: make(map[string]*Residue),
		res:   make([]*Residue, 0, 25),
	}
}

// Residues returns residues in file order. Do not modify the slice.
func (c *Chain) Residues() []*Residue { return c.res }

// Residue looks up a residue by its key, like "52A".
func (c *Chain) Residue(key string) *Residue { return c.byKey[key] }

// NRes is the number of residues in the chain
func (c *Chain) NRes() int { return len(c.res) }

// NAtom is the number of atoms, summed over residues
func (c *Chain) NAtom() (n int) {
	for _, r := range c.res {
		n += len(r.atoms)
	}
	return n
}

// SortedResidues returns a new slice of residues in structural order,
// by sequence number then insertion code. Residues with equal keys
// stay in file order.
func (c *Chain) SortedResidues() []*Residue {
	ret := make([]*Residue, len(c.res))
	copy(ret, c.res)
	ids := make(map[*Residue]ResID, len(ret))
	for _, r := range ret {
		ids[r] = r.ID()
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ids[ret[i]].Less(ids[ret[j]])
	})
	return ret
}
