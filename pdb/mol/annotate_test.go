package mol_test

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/pdbmodel/pdb/mol"
)

// oneChain makes polymer chain A with one CA per residue number from
// first to last.
func oneChain(first, last int) (*Structure, *Chain) {
	s := NewStructure("ss")
	c := s.AddChain(Polymer, "A")
	for i := first; i <= last; i++ {
		r := s.AddResidue(c, strconv.Itoa(i), "ALA")
		s.AddAtom(r, &Atom{Serial: i, Name: "CA"})
	}
	return s, c
}

// labels returns the label for each residue key.
func labels(c *Chain) map[string]string {
	ret := make(map[string]string)
	for _, r := range c.Residues() {
		ret[r.Key] = r.SS().String()
	}
	return ret
}

func TestDegenerateHelix(t *testing.T) {
	s, c := oneChain(9, 11)
	s.AddHelixRange("A", 10, 10)
	s.Annotate()
	want := map[string]string{"9": "loop_body", "10": "helix_foot", "11": "loop_body"}
	if diff := cmp.Diff(want, labels(c)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestHelixRange(t *testing.T) {
	s, c := oneChain(3, 10)
	s.AddHelixRange("A", 5, 8)
	s.Annotate()
	want := map[string]string{
		"3": "loop_body", "4": "loop_body",
		"5": "helix_head", "6": "helix_body", "7": "helix_body", "8": "helix_foot",
		"9": "loop_body", "10": "loop_body",
	}
	if diff := cmp.Diff(want, labels(c)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

// Residue 5 is not in the chain, so the helix starts at 6.
func TestHelixStartMissing(t *testing.T) {
	s, c := oneChain(6, 10)
	s.AddHelixRange("A", 5, 8)
	s.Annotate()
	want := map[string]string{
		"6": "helix_head", "7": "helix_body", "8": "helix_foot",
		"9": "loop_body", "10": "loop_body",
	}
	if diff := cmp.Diff(want, labels(c)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

func TestSheetWinsSharedResidue(t *testing.T) {
	s, c := oneChain(15, 25)
	s.AddHelixRange("A", 16, 20)
	s.AddSheetRange("A", "S1", 20, 23)
	s.Annotate()
	got := labels(c)
	if got["20"] != "sheet_head" {
		t.Errorf("residue 20 is %s, wanted sheet_head", got["20"])
	}
	if got["19"] != "helix_foot" {
		t.Errorf("residue 19 is %s, helix should end there", got["19"])
	}
	if got["23"] != "sheet_foot" {
		t.Errorf("residue 23 is %s", got["23"])
	}
}

func TestInteriorOverlapLastWriteWins(t *testing.T) {
	s, c := oneChain(1, 12)
	s.AddHelixRange("A", 2, 11)
	s.AddSheetRange("A", "S1", 5, 7)
	s.Annotate()
	if got, want := c.SSString(), "-HHHEEEHHHH-"; got != want {
		t.Errorf("got %s wanted %s", got, want)
	}
	l := labels(c)
	for k, want := range map[string]string{"4": "helix_foot", "8": "helix_head", "11": "helix_foot"} {
		if l[k] != want {
			t.Errorf("residue %s is %s, wanted %s", k, l[k], want)
		}
	}
}

func TestAdjacentHelices(t *testing.T) {
	s, c := oneChain(1, 6)
	s.AddHelixRange("A", 1, 3)
	s.AddHelixRange("A", 4, 6)
	s.Annotate()
	var got []Label
	for _, r := range c.SortedResidues() {
		got = append(got, r.SS())
	}
	want := []Label{HelixHead, HelixBody, HelixFoot, HelixHead, HelixBody, HelixFoot}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}

// Every element has one head and one foot, whatever the ranges look like.
func TestHeadsAndFeetPair(t *testing.T) {
	s, c := oneChain(1, 40)
	s.AddHelixRange("A", 3, 12)
	s.AddHelixRange("A", 10, 18)
	s.AddHelixRange("A", 30, 30)
	s.AddSheetRange("A", "S1", 12, 14)
	s.AddSheetRange("A", "S2", 17, 22)
	s.AddSheetRange("A", "S2", 38, 60) // runs off the end of the chain
	s.Annotate()
	open := false
	for _, r := range c.SortedResidues() {
		switch l := r.SS(); l {
		case HelixHead, SheetHead:
			if open {
				t.Fatalf("residue %s opens inside an open element", r.Key)
			}
			open = true
		case HelixFoot, SheetFoot:
			open = false
		case HelixBody, SheetBody:
			if !open {
				t.Fatalf("residue %s is a body outside an element", r.Key)
			}
		case LoopBody:
			if open {
				t.Fatalf("residue %s is loop inside an element", r.Key)
			}
		default:
			t.Fatalf("residue %s has label %v", r.Key, l)
		}
	}
	if open {
		t.Error("element still open at end of chain")
	}
}

func TestOnlyPolymerLabelled(t *testing.T) {
	s := NewStructure("k")
	for i, k := range []Kind{Heteroatom, Nucleic} {
		c := s.AddChain(k, "A")
		r := s.AddResidue(c, "1", "HOH")
		s.AddAtom(r, &Atom{Serial: i + 1, Name: "O"})
	}
	s.AddHelixRange("A", 1, 1)
	s.Annotate()
	for _, c := range s.Chains() {
		for _, r := range c.Residues() {
			if r.SS() != NoLabel {
				t.Errorf("%v chain residue labelled %v", c.Kind, r.SS())
			}
		}
	}
}

func TestInsertionCodesShareElement(t *testing.T) {
	s := NewStructure("ins")
	c := s.AddChain(Polymer, "A")
	for i, k := range []string{"52", "52A", "52B", "53"} {
		r := s.AddResidue(c, k, "ALA")
		s.AddAtom(r, &Atom{Serial: i + 1, Name: "CA"})
	}
	s.AddHelixRange("A", 52, 53)
	s.Annotate()
	want := map[string]string{"52": "helix_head", "52A": "helix_body", "52B": "helix_body", "53": "helix_foot"}
	if diff := cmp.Diff(want, labels(c)); diff != "" {
		t.Errorf("labels (-want +got):\n%s", diff)
	}
}
