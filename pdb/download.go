package pdb

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/andrew-torda/pdbmodel/pdb/zwrap"
)

// mirror is where to find a file: base + code + suffix.
type mirror struct {
	base   string
	suffix string
}

// mirrors serve the old format. Some send gzip and some do not, but
// zwrap looks at the bytes, so we do not have to remember which.
var mirrors = []mirror{
	{"https://files.rcsb.org/download/", ".pdb.gz"},
	{"https://www.ebi.ac.uk/pdbe/entry-files/download/pdb", ".ent"},
	{"https://ftp.pdbj.org/pub/pdb/data/structures/all/pdb/pdb", ".ent.gz"},
}

// getHTTP is given a four letter pdb code. It goes to one of the
// mirrors and returns a reader of the decompressed text.
// If siteNum is too big, we use a modulo to wrap it around, rather
// than generate an error. This makes it easy to cycle through them or
// pick one at random.
func getHTTP(acqCode string, siteNum int) (io.ReadCloser, error) {
	if len(acqCode) != 4 {
		return nil, errors.New("acq code should be four char, not " + acqCode)
	}
	if siteNum < 0 {
		siteNum = -siteNum
	}
	m := mirrors[siteNum%len(mirrors)]
	url := m.base + strings.ToLower(acqCode) + m.suffix

	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, errors.New("Wanted " + acqCode + " using " + url + ", got " + resp.Status)
	}
	rdr, err := zwrap.WrapMaybe(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}
	return rdr, nil
}
