package mol

// Residue holds the atoms of one residue in the order they were read.
type Residue struct {
	Key   string // sequence number and insertion code as read, "52A"
	Name  string // residue name, like "ALA"
	byNm  map[string]*Atom
	atoms []*Atom
	ss    Label
	chain *Chain
}

func newResidue(c *Chain, key, name string) *Residue {
	return &Residue{
		Key:   key,
		Name:  name,
		byNm:  make(map[string]*Atom, 8),
		atoms: make([]*Atom, 0, 8),
		chain: c,
	}
}

// Atoms returns the atoms in file order. Do not modify the slice.
func (r *Residue) Atoms() []*Atom { return r.atoms }

// Atom returns the atom called name or nil.
func (r *Residue) Atom(name string) *Atom { return r.byNm[name] }

// NAtom is the number of atoms in the residue
func (r *Residue) NAtom() int { return len(r.atoms) }

// Chain is the owner of the residue.
func (r *Residue) Chain() *Chain { return r.chain }

// ID splits the key into sequence number and insertion code.
func (r *Residue) ID() ResID { return ParseResKey(r.Key) }

// SS is the secondary structure label. It is NoLabel for anything
// that is not in a polymer chain, or before Annotate has run.
func (r *Residue) SS() Label { return r.ss }

// addAtom puts an atom in the name table. A second atom with the same
// name takes the place of the first, but keeps its position.
func (r *Residue) addAtom(a *Atom) {
	a.res = r
	if old, ok := r.byNm[a.Name]; ok {
		for i := range r.atoms {
			if r.atoms[i] == old {
				r.atoms[i] = a
				break
			}
		}
	} else {
		r.atoms = append(r.atoms, a)
	}
	r.byNm[a.Name] = a
}
