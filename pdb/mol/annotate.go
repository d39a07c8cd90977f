package mol

// event says which element, if any, claims a residue. rng is the
// index of the claiming range, so two ranges of the same kind that
// touch are still two elements.
type event struct {
	el  elem
	rng int
}

var noEvent = event{elNone, -1}

// claim looks through ranges and returns the last one containing n.
func claim(el elem, ranges []Range, n int, prev event) event {
	ev := prev
	for i, rg := range ranges {
		if rg.Contains(n) {
			ev = event{el, i}
		}
	}
	return ev
}

// Annotate labels every residue of every polymer chain. Heteroatom and
// nucleic chains are left alone. Call it once, after the last record.
func (s *Structure) Annotate() {
	for _, c := range s.chains[Polymer] {
		annotateChain(c, s.helix[c.ID], s.sheetFlat(c.ID))
	}
}

// annotateChain first works out which element claims each residue.
// Helices go down first, then sheets on top, so a residue in both
// belongs to the sheet. Any overlap is last write wins per residue.
// Then one sweep in structural order gives the first residue of a run
// the head label, the last residue the foot label and anything in
// between the body label. A run of one residue is a foot.
// Labels come from which residues are present inside a range, so if
// the start residue of a range is missing from the chain, the first
// residue present inside the range is the head (likewise for the end
// and the foot).
func annotateChain(c *Chain, helix, sheet []Range) {
	res := c.SortedResidues()
	evs := make([]event, len(res))
	for i, r := range res {
		n := r.ID().Num
		ev := claim(elHelix, helix, n, noEvent)
		evs[i] = claim(elSheet, sheet, n, ev)
	}

	open := noEvent
	for i, r := range res {
		ev := evs[i]
		switch {
		case ev != open && ev.el != elNone:
			r.ss = ev.el.head()
			open = ev
		case ev != open:
			r.ss = LoopBody
			open = noEvent
		default:
			r.ss = open.el.body()
		}
		if open.el != elNone && (i+1 == len(res) || evs[i+1] != open) {
			r.ss = open.el.foot()
			open = noEvent
		}
	}
}
