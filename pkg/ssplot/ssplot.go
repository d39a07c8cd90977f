// Package ssplot draws the secondary structure of a structure as a PNG.
// There is one row per polymer chain, one cell per residue in sequence
// number order, and the chain id written at the left.
package ssplot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/andrew-torda/pdbmodel/pdb"
	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pdb/mol"
)

const (
	margin    = 4
	labelW    = 32 // room for the chain id
	rowH      = 16
	fontSize  = 12
	CellDflt  = 4
	maxPixels = 1 << 26
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	CellWidth int    // Pixels per residue
	LogFile   string // Where the reader sends notes about dropped records
}

// colour of each label. Heads and feet are darker than bodies so the
// ends of adjacent elements can be seen.
func colour(l mol.Label) color.RGBA {
	switch l {
	case mol.HelixHead, mol.HelixFoot:
		return color.RGBA{0x99, 0x10, 0x10, 0xff}
	case mol.HelixBody:
		return color.RGBA{0xe0, 0x30, 0x30, 0xff}
	case mol.SheetHead, mol.SheetFoot:
		return color.RGBA{0x10, 0x30, 0x99, 0xff}
	case mol.SheetBody:
		return color.RGBA{0x30, 0x70, 0xe0, 0xff}
	case mol.LoopBody:
		return color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	}
	return color.RGBA{0xff, 0xff, 0xff, 0xff}
}

// cellRect is where residue i of row goes.
func cellRect(row, i, cell int) image.Rectangle {
	x := margin + labelW + i*cell
	y := margin + row*rowH + 2
	return image.Rect(x, y, x+cell, y+rowH-4)
}

// Plot draws the polymer chains of s, cell pixels per residue.
func Plot(s *mol.Structure, cell int) (*image.RGBA, error) {
	if cell < 1 {
		cell = CellDflt
	}
	chains := s.Chains(mol.Polymer)
	if len(chains) == 0 {
		return nil, errors.New(s.ID + ": no polymer chains to plot")
	}
	maxRes := 0
	for _, c := range chains {
		maxRes = max(maxRes, c.NRes())
	}
	w := 2*margin + labelW + maxRes*cell
	h := 2*margin + len(chains)*rowH
	if w*h > maxPixels {
		return nil, errors.New(s.ID + ": picture would be too big, try a smaller cell")
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(fontSize)
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.Black)

	for row, c := range chains {
		pt := freetype.Pt(margin, margin+row*rowH+fontSize)
		if _, err := ctx.DrawString(c.ID, pt); err != nil {
			return nil, err
		}
		for i, r := range c.SortedResidues() {
			src := image.NewUniform(colour(r.SS()))
			draw.Draw(img, cellRect(row, i, cell), src, image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// Mymain reads infile and writes the picture to outfile.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	s, err := pdb.ReadStructure(infile, cmmn.FileSrc, flags.LogFile)
	if err != nil {
		return err
	}
	img, err := Plot(s, flags.CellWidth)
	if err != nil {
		return err
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return err
	}
	if err := png.Encode(fp, img); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
