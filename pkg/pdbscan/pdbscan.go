// Package pdbscan walks a directory tree and reads every structure
// file it finds, a few at a time, then reports totals. Files that
// cannot be read are reported and counted, but do not stop the scan.
package pdbscan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/andrew-torda/pdbmodel/pdb"
	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pdb/mol"
)

const (
	NReaderDflt   = 3   // Default number of files read at once
	progressEvery = 100 // Files between progress messages
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	NReader  int    // How many files to read at once
	MaxFiles int    // Stop after this many files, <= 0 for no limit
	LogFile  string // Where the readers send notes about dropped records
}

// Totals are summed over every file that could be read.
type Totals struct {
	Files    int // files looked at, including failures
	Failed   int
	Chains   int
	Residues int
	Atoms    int
	Helix    int // residues labelled helix
	Sheet    int // residues labelled sheet
}

func (t *Totals) add(s *mol.Structure) {
	for _, c := range s.Chains() {
		t.Chains++
		t.Residues += c.NRes()
		for _, r := range c.Residues() {
			switch ss := r.SS(); {
			case ss.IsHelix():
				t.Helix++
			case ss.IsSheet():
				t.Sheet++
			}
		}
	}
	t.Atoms += s.NAtom()
}

// wanted says if a file name looks like a structure in the old format,
// maybe compressed.
func wanted(name string) bool {
	s := strings.TrimSuffix(strings.ToLower(name), ".gz")
	return strings.HasSuffix(s, ".pdb") || strings.HasSuffix(s, ".ent")
}

// scanner collects results from the readers. errw gets one line per
// broken file, progress gets a running count if it is not nil.
type scanner struct {
	flags    *CmdFlag
	errw     io.Writer
	progress io.Writer
	mu       sync.Mutex
	tot      Totals
	ndone    atomic.Int64
}

func (sc *scanner) one(fname string) {
	s, err := pdb.ReadStructure(fname, cmmn.FileSrc, sc.flags.LogFile)
	sc.mu.Lock()
	sc.tot.Files++
	if err != nil {
		sc.tot.Failed++
		fmt.Fprintln(sc.errw, err)
	} else {
		sc.tot.add(s)
	}
	sc.mu.Unlock()
	if n := sc.ndone.Add(1); sc.progress != nil && n%progressEvery == 0 {
		fmt.Fprintf(sc.progress, "\r%d files", n)
	}
}

// Scan reads every structure file under dir. Only a problem walking
// the tree, or ctx being cancelled, is returned as an error.
func Scan(ctx context.Context, flags *CmdFlag, dir string, errw, progress io.Writer) (Totals, error) {
	sc := scanner{flags: flags, errw: errw, progress: progress}
	nReader := flags.NReader
	if nReader < 1 {
		nReader = NReaderDflt
	}
	var g errgroup.Group
	g.SetLimit(nReader)
	nfile := 0
	werr := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !wanted(d.Name()) {
			return nil
		}
		if flags.MaxFiles > 0 && nfile >= flags.MaxFiles {
			return fs.SkipAll
		}
		nfile++
		g.Go(func() error {
			sc.one(p)
			return nil
		})
		return nil
	})
	g.Wait()
	if progress != nil && sc.ndone.Load() >= progressEvery {
		fmt.Fprintln(progress)
	}
	return sc.tot, werr
}

// WriteTotals prints totals with thousands separators.
func WriteTotals(w io.Writer, t Totals) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "files %d failed %d\nchains %d residues %d atoms %d\nhelix %d sheet %d\n",
		t.Files, t.Failed, t.Chains, t.Residues, t.Atoms, t.Helix, t.Sheet)
	return err
}

// Mymain scans dir and writes totals to outfile, "" or "-" being
// standard output. Progress is only shown if stderr is a terminal.
func Mymain(flags *CmdFlag, dir, outfile string) error {
	var progress io.Writer
	if term.IsTerminal(int(os.Stderr.Fd())) {
		progress = os.Stderr
	}
	tot, err := Scan(context.Background(), flags, dir, os.Stderr, progress)
	if err != nil {
		return err
	}
	if tot.Files == 0 {
		return errors.New("no structure files found in " + dir)
	}
	if outfile == "" || outfile == "-" {
		return WriteTotals(os.Stdout, tot)
	}
	fp, err := os.Create(outfile)
	if err != nil {
		return err
	}
	if err := WriteTotals(fp, tot); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}
