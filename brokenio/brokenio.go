// Package brokenio wraps an io.ReadCloser and damages what comes out
// of it. It is for testing readers of structure files against
// truncated transfers, zero length files and junk in the middle of a
// file.
//
// Typical use: reader = brokenio.NewReader(reader), set the rates, and
// hand the result to the code under test. Loud damage (the default)
// cuts a read short and returns an error, like a broken download.
// Silent damage overwrites part of the buffer with zero bytes and
// carries on, like a corrupted file on disk.
package brokenio

import (
	"fmt"
	"io"
	"math/rand"
)

// BrknRdrClsr is a reader with settable rates of failure. The
// probabilities run from 0 to 1 and are not checked.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability that a read is damaged
	fracFail     float32 // How much of a damaged read is wiped out
	silent       bool    // Damage without returning an error
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a wrapper around rIn which, until told otherwise,
// passes everything through untouched.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:  rIn,
		rnd:      rand.New(rand.NewSource(1)),
		fracFail: 0.5,
	}
}

// SetVerbose says whether Close prints the number of calls and bytes.
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetSeed restarts the random numbers so a test can repeat damage.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetFracFail sets the fraction of a damaged read that is trashed.
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we return nothing at all on
// the first read.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability that any one read is damaged.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetSilent makes damage quiet. The bytes are zeroed, but the read
// reports its full length and no error.
func (r *BrknRdrClsr) SetSilent(s bool) { r.silent = s }

// trashSlice wipes out the second part of a slice. The amount is given
// by a fraction, so 0.3 wipes out the last 30 % of p. It returns the
// number of bytes left alone.
func trashSlice(p []byte, frac float32) int {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep < 0 {
		nkeep = 0
	}
	q := p[nkeep:]
	for i := range q {
		q[i] = 0
	}
	return nkeep
}

// Read passes the call on to the wrapped reader and then decides
// whether to damage what came back.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if n == 0 || r.fracFail <= 0 || r.rnd.Float32() >= r.probFail {
		return n, err
	}
	nkeep := trashSlice(p[:n], r.fracFail)
	if r.silent {
		return n, err
	}
	return nkeep, fmt.Errorf("randomly wiped out last %d of %d", n-nkeep, n)
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.rdrOrig.Close()
}
