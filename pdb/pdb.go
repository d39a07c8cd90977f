// Package pdb is the upper level for reading structures. It decides
// if a file is compressed, checks that it is in the old fixed column
// format, maps or downloads it and hands the text to oldfmt.
package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pdb/mol"
	"github.com/andrew-torda/pdbmodel/pdb/oldfmt"
	"github.com/andrew-torda/pdbmodel/pdb/zwrap"
	"github.com/edsrzf/mmap-go"
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

// ErrMmcif is returned for files that look like mmCIF. We only read
// the old format.
var ErrMmcif = errors.New("mmcif format is not supported")

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	rdr, err := zwrap.Open(fname)
	if err != nil {
		return unkFmt, err
	}
	defer rdr.Close()

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(rdr)
	for i := 0; i < maxTestLines && scnnr.Scan(); i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return mmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return oldFmt, nil
			}
		}
	}
	return unkFmt, errors.New(fname + ": cannot recognise format")
}

// oldOrMmcif decides what format we have. It uses the file name if it
// can, otherwise it peeks inside. We cannot use filepath.Ext, since it
// returns .gz for a.pdb.gz.
func oldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent.gz to ent.gz
		switch {
		case strings.Contains(s, "pdb"), strings.Contains(s, "ent"):
			return oldFmt, nil
		case strings.Contains(s, "cif"):
			return mmcifFmt, nil
		}
	}
	return lookInFile(fname)
}

// idFromName turns /x/y/pdb1ABC.ent.gz into 1abc.
func idFromName(fname string) string {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i > 0 {
		s = s[:i]
	}
	s = strings.ToLower(s)
	if len(s) > 3 && strings.HasPrefix(s, "pdb") {
		s = s[3:]
	}
	return s
}

// logWhere decides where to send output. "" throws it away, "stdout"
// is standard output, anything else is a file we append to. The
// returned function closes the file, if there is one.
func logWhere(outinfo string) (*log.Logger, func() error, error) {
	nothing := func() error { return nil }
	switch outinfo {
	case "":
		return log.New(io.Discard, "", 0), nothing, nil
	case "stdout":
		return log.New(os.Stdout, "", log.Lshortfile), nothing, nil
	}
	fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nothing, err
	}
	return log.New(fp, "", log.Lshortfile), fp.Close, nil
}

// ReadStructure reads a structure. With cmmn.FileSrc, name is a file,
// maybe gzipped. With cmmn.HTTPSrc, name is a four character code and
// the first mirror is used; see FetchStructure to pick another.
// Notes about dropped records go where outinfo says (see logWhere).
func ReadStructure(name string, srcType byte, outinfo string) (*mol.Structure, error) {
	switch srcType {
	case cmmn.FileSrc:
		return readFile(name, outinfo)
	case cmmn.HTTPSrc:
		return FetchStructure(name, 0, outinfo)
	}
	return nil, fmt.Errorf("unknown source type %d", srcType)
}

// FetchStructure downloads code from mirror siteNum and parses it.
// siteNum wraps around, so any non-negative number is fine.
func FetchStructure(code string, siteNum int, outinfo string) (*mol.Structure, error) {
	outlog, closeLog, err := logWhere(outinfo)
	if err != nil {
		return nil, errors.New(err.Error() + " creating log file")
	}
	defer closeLog()
	rdr, err := getHTTP(code, siteNum)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()
	return parse(strings.ToLower(code), code, rdr, outlog)
}

// readFile maps an uncompressed file into memory and parses from the
// mapping. Compressed files go through the decompressor.
func readFile(fname, outinfo string) (*mol.Structure, error) {
	typ, err := oldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	if typ == mmcifFmt {
		return nil, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	outlog, closeLog, err := logWhere(outinfo)
	if err != nil {
		return nil, errors.New(err.Error() + " creating log file")
	}
	defer closeLog()

	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	info, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, errors.New(fname + " is not a regular file")
	}
	if info.Size() == 0 {
		return nil, errors.New(fname + " is empty")
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()

	var rdr io.Reader = bytes.NewReader(mm)
	if zwrap.IsGzip(mm) {
		fz, err := zwrap.Wrap(io.NopCloser(rdr))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fname, err)
		}
		defer fz.Close()
		rdr = fz
	}
	return parse(idFromName(fname), fname, rdr, outlog)
}

// parse runs the parser and refuses a structure with nothing in it.
func parse(id, name string, rdr io.Reader, outlog *log.Logger) (*mol.Structure, error) {
	var p oldfmt.Parser
	p.SetLogger(outlog)
	s, err := p.Parse(id, rdr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if s.NAtom() == 0 {
		return nil, errors.New(name + ": no atoms found")
	}
	outlog.Println(name, "atoms", s.NAtom(), "bonds", s.NBond())
	return s, nil
}
