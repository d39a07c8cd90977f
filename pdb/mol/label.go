package mol

// Label is a per-residue secondary structure class.
type Label byte

const (
	NoLabel Label = iota
	HelixHead
	HelixBody
	HelixFoot
	SheetHead
	SheetBody
	SheetFoot
	LoopBody
)

var labelNames = [...]string{
	NoLabel:   "",
	HelixHead: "helix_head",
	HelixBody: "helix_body",
	HelixFoot: "helix_foot",
	SheetHead: "sheet_head",
	SheetBody: "sheet_body",
	SheetFoot: "sheet_foot",
	LoopBody:  "loop_body",
}

func (l Label) String() string {
	if int(l) < len(labelNames) {
		return labelNames[l]
	}
	return "bad_label"
}

// IsHelix is true for the three helix labels
func (l Label) IsHelix() bool { return l >= HelixHead && l <= HelixFoot }

// IsSheet is true for the three sheet labels
func (l Label) IsSheet() bool { return l >= SheetHead && l <= SheetFoot }

// Code is the one letter form, H, E or -, and a space for NoLabel.
func (l Label) Code() byte {
	switch {
	case l.IsHelix():
		return 'H'
	case l.IsSheet():
		return 'E'
	case l == LoopBody:
		return '-'
	}
	return ' '
}

// elem is the kind of secondary structure element that is open.
type elem byte

const (
	elNone elem = iota
	elHelix
	elSheet
)

func (e elem) head() Label {
	if e == elHelix {
		return HelixHead
	}
	return SheetHead
}

func (e elem) body() Label {
	switch e {
	case elHelix:
		return HelixBody
	case elSheet:
		return SheetBody
	}
	return LoopBody
}

func (e elem) foot() Label {
	if e == elHelix {
		return HelixFoot
	}
	return SheetFoot
}
