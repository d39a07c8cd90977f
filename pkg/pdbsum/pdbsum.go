// Package pdbsum reads one structure and writes a short text summary
// of what the reader found in it.
package pdbsum

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/pdbmodel/pdb"
	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pdb/geom"
	"github.com/andrew-torda/pdbmodel/pdb/mol"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	LogFile string // Where notes about dropped records go, "" for nowhere
	HTTP    bool   // The name is an accession code to download
	SiteNum int    // Which mirror to download from
}

// Summarise writes the summary of s to w.
func Summarise(w io.Writer, s *mol.Structure) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "id", s.ID)
	for _, c := range s.Chains() {
		fmt.Fprintf(bw, "%s %s residues %d atoms %d\n", c.Kind, c.ID, c.NRes(), c.NAtom())
		if c.Kind == mol.Heteroatom {
			continue
		}
		fmt.Fprintln(bw, "  seq", c.Sequence())
		if c.Kind != mol.Polymer {
			continue
		}
		fmt.Fprintln(bw, "  ss ", c.SSString())
		for _, b := range geom.ChainBreaks(c) {
			fmt.Fprintf(bw, "  break %s %s %.2f\n", b.Before.Key, b.After.Key, b.Dist)
		}
	}
	for _, b := range s.SSBonds() {
		fmt.Fprintf(bw, "ssbond %d %s %s %s %s %.2f\n",
			b.Serial, b.Chain1, b.Res1, b.Chain2, b.Res2, geom.SSBondDist(s, b))
	}
	fmt.Fprintln(bw, "bonds", s.NBond())
	fmt.Fprintln(bw, "unbonded", len(s.Unbonded()))
	m, _ := s.CoordMatrix()
	c := geom.Centroid(m)
	fmt.Fprintf(bw, "centroid %.3f %.3f %.3f\n", c.X, c.Y, c.Z)
	return bw.Flush()
}

// Mymain reads name, from a file or the web, and writes the summary
// to outfile. An outfile of "" or "-" means standard output.
func Mymain(flags *CmdFlag, name, outfile string) error {
	var s *mol.Structure
	var err error
	if flags.HTTP {
		s, err = pdb.FetchStructure(name, flags.SiteNum, flags.LogFile)
	} else {
		s, err = pdb.ReadStructure(name, cmmn.FileSrc, flags.LogFile)
	}
	if err != nil {
		return err
	}
	if outfile == "" || outfile == "-" {
		return Summarise(os.Stdout, s)
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return err
	}
	if err := Summarise(fp, s); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
