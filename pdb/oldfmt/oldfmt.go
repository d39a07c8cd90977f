// Package oldfmt reads the old, fixed column PDB format and builds a
// mol.Structure.
//
// The reader is permissive. Lines it does not understand are skipped,
// numbers it cannot read become NaN, and records that point at atoms
// that do not exist are dropped. The only error you can get back is
// from the underlying io.Reader.
//
// Only ATOM, HETATM, CONECT, SSBOND, HELIX and SHEET are looked at.
// Alternate locations other than blank or 'A' are thrown away, so
// there is one conformer per atom.
package oldfmt

import (
	"bufio"
	"bytes"
	"io"
	"log"
	"strings"

	"github.com/andrew-torda/pdbmodel/pdb/mol"
)

// maxCol is how much of a line we keep. No record uses anything past
// column 80, and some programs write a lot of junk after it.
const maxCol = 80

// Parser holds options. The zero value is ready to use.
type Parser struct {
	NoCache bool        // Look up chain and residue for every atom line
	lgr     *log.Logger // where dropped records are noted
}

// SetLogger sends notes about dropped records to l. Nothing is
// logged if l is nil.
func (p *Parser) SetLogger(l *log.Logger) { p.lgr = l }

// Parse reads id's text from r and returns the annotated structure.
// An error only comes from r.
func Parse(id string, r io.Reader) (*mol.Structure, error) {
	var p Parser
	return p.Parse(id, r)
}

// ParseLines is Parse for text already split into lines.
func ParseLines(id string, lines []string) *mol.Structure {
	var p Parser
	return p.ParseLines(id, lines)
}

// Parse reads lines from r. Lines of any length are accepted. On a
// read error, we return nil and an error with the number of the line
// we were trying to read.
func (p *Parser) Parse(id string, r io.Reader) (*mol.Structure, error) {
	rdr := bufio.NewReader(r)
	b := p.newBuilder(id)
	var last slot
	var prev string
	for {
		line, err := readLine(rdr)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError{n: b.n + 1, prev: prev, desc: err.Error()}
		}
		prev = line
		b.record(line, p.cache(&last))
	}
	return b.finish(), nil
}

// readLine returns the next line, without the newline, cut to maxCol
// bytes. The rest of a longer line is read and thrown away. io.EOF
// only comes back when there is no line left at all.
func readLine(rdr *bufio.Reader) (string, error) {
	frag, err := rdr.ReadSlice('\n')
	got := len(frag) > 0
	frag = bytes.TrimSuffix(frag, []byte{'\n'})
	line := string(frag[:min(len(frag), maxCol)])
	for err == bufio.ErrBufferFull {
		_, err = rdr.ReadSlice('\n')
	}
	switch {
	case err == nil, err == io.EOF && got:
		return line, nil
	case err == io.EOF:
		return "", io.EOF
	}
	return "", err
}

// ParseLines cannot fail.
func (p *Parser) ParseLines(id string, lines []string) *mol.Structure {
	b := p.newBuilder(id)
	var last slot
	for _, l := range lines {
		b.record(l, p.cache(&last))
	}
	return b.finish()
}

func (p *Parser) cache(last *slot) *slot {
	if p.NoCache {
		return nil
	}
	return last
}

// slot remembers the chain and residue of the previous atom line.
// Consecutive lines usually belong to the same residue, so we can skip
// two map lookups. On any mismatch we fall back to the structure's
// own lookup, so the answer is the same with or without it.
type slot struct {
	kind    mol.Kind
	chainID string
	chain   *mol.Chain
	resKey  string
	res     *mol.Residue
}

// builder is the state for one parse.
type builder struct {
	s   *mol.Structure
	lgr *log.Logger
	n   int // line number
}

func (p *Parser) newBuilder(id string) *builder {
	return &builder{s: mol.NewStructure(id), lgr: p.lgr}
}

func (b *builder) note(format string, v ...interface{}) {
	if b.lgr != nil {
		b.lgr.Printf("%s line %d: "+format, append([]interface{}{b.s.ID, b.n}, v...)...)
	}
}

func (b *builder) finish() *mol.Structure {
	b.s.Annotate()
	return b.s
}

// record looks at one line and hands it to the right function.
func (b *builder) record(line string, last *slot) {
	b.n++
	line = strings.TrimRight(line, "\r")
	switch Classify(line) {
	case RecAtom:
		b.atom(line, mol.Polymer, last)
	case RecHetatm:
		b.atom(line, mol.Heteroatom, last)
	case RecConect:
		b.conect(line)
	case RecSSBond:
		b.ssbond(line)
	case RecHelix:
		b.helix(line)
	case RecSheet:
		b.sheet(line)
	case RecOther:
	}
}

func chainOrDflt(s string) string {
	if s == "" {
		return mol.DefaultChain
	}
	return s
}

// resolve finds chain and residue, using last if it matches.
func (b *builder) resolve(kind mol.Kind, chainID, resKey, resName string, last *slot) *mol.Residue {
	if last == nil {
		c := b.s.AddChain(kind, chainID)
		return b.s.AddResidue(c, resKey, resName)
	}
	if last.chain == nil || last.kind != kind || last.chainID != chainID {
		*last = slot{kind: kind, chainID: chainID, chain: b.s.AddChain(kind, chainID)}
	}
	if last.res == nil || last.resKey != resKey {
		last.resKey = resKey
		last.res = b.s.AddResidue(last.chain, resKey, resName)
	}
	return last.res
}

// atom handles ATOM and HETATM lines. kind comes from the record
// type, but nucleic acid residue names always give a nucleic chain.
func (b *builder) atom(line string, kind mol.Kind, last *slot) {
	if alt := At(line, colAltLoc); alt != ' ' && alt != 0 && alt != 'A' {
		b.note("alt loc %c dropped", alt)
		return
	}
	resKey := colResKey.get(line)
	if resKey == "" {
		b.note("no residue number")
		return
	}
	serial, ok := Serial(colSerial.get(line))
	if !ok {
		b.note("unreadable serial %q", colSerial.get(line))
		return
	}
	resName := colResName.get(line)
	if resName == "" {
		resName = dfltResName
	}
	if mol.IsNucleic(resName) {
		kind = mol.Nucleic
	}
	chainID := chainOrDflt(colChain.get(line))
	res := b.resolve(kind, chainID, resKey, resName, last)

	a := &mol.Atom{
		Serial:  serial,
		Name:    colAtName.get(line),
		Element: colElement.get(line),
		Occ:     Num(colOcc.get(line)),
		TempFac: Num(colTempFac.get(line)),
	}
	a.X = Num(colX.get(line))
	a.Y = Num(colY.get(line))
	a.Z = Num(colZ.get(line))
	b.s.AddAtom(res, a)
}

// conect adds up to four bonds from the first serial. Unreadable
// targets are skipped, the others are still tried.
func (b *builder) conect(line string) {
	from, ok := Serial(colSerial.get(line))
	if !ok {
		b.note("CONECT without source atom")
		return
	}
	for _, c := range colConTo {
		to, ok := Serial(c.get(line))
		if !ok {
			continue
		}
		if b.s.Atom(from) == nil || b.s.Atom(to) == nil || from == to {
			b.note("CONECT %d %d not added", from, to)
		}
		b.s.AddConnect(from, to)
	}
}

// ssbond stores the bridge as it is. An unreadable serial is 0.
func (b *builder) ssbond(line string) {
	serial, _ := Int(colSerial.get(line))
	b.s.AddSSBond(mol.SSBond{
		Serial: serial,
		Chain1: colSSChain1.get(line),
		Res1:   colSSRes1.get(line),
		Chain2: colSSChain2.get(line),
		Res2:   colSSRes2.get(line),
	})
}

func (b *builder) helix(line string) {
	start, ok1 := Int(colHxStart.get(line))
	end, ok2 := Int(colHxEnd.get(line))
	if !ok1 || !ok2 {
		b.note("HELIX range unreadable")
		return
	}
	b.s.AddHelixRange(chainOrDflt(colHxChain.get(line)), start, end)
}

func (b *builder) sheet(line string) {
	start, ok1 := Int(colShStart.get(line))
	end, ok2 := Int(colShEnd.get(line))
	if !ok1 || !ok2 {
		b.note("SHEET range unreadable")
		return
	}
	id := colShID.get(line)
	if id == "" {
		id = dfltSheetID
	}
	b.s.AddSheetRange(chainOrDflt(colShChain.get(line)), id, start, end)
}
