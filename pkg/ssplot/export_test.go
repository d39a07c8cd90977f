package ssplot

var (
	Colour   = colour
	CellRect = cellRect
)

const LabelW = labelW
