package oldfmt

import (
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
)

// Cols returns columns start to end of a line, counting from 1 and
// including end, with white space trimmed. If the line does not reach
// end, we get an empty string.
func Cols(line string, start, end int) string {
	if start < 1 || end < start || end > len(line) {
		return ""
	}
	return strings.TrimSpace(line[start-1 : end])
}

// At returns the byte at column col, counting from 1, or 0 if the line
// is too short.
func At(line string, col int) byte {
	i := col - 1
	if i < 0 || i >= len(line) {
		return 0
	}
	return line[i]
}

// Num converts a field to a float32. Anything that does not parse is
// NaN. It never fails.
func Num(s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return cmmn.NaN()
	}
	return float32(f)
}

// Int reads a leading, optionally signed integer and ignores whatever
// follows, so "52A" gives 52. ok is false if there are no digits.
func Int(s string) (n int, ok bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for ; j < len(s) && s[j] >= '0' && s[j] <= '9'; j++ {
	}
	if j == i {
		return 0, false
	}
	n, err := strconv.Atoi(s[:j])
	if err != nil { // too many digits
		return 0, false
	}
	return n, true
}

// Serial reads an atom serial number. Files with more than 99999 atoms
// write serials in hybrid-36, where A0000 is 100000 and a0000 follows
// ZZZZZ. Anything else goes through Int.
func Serial(s string) (int, bool) {
	if n, ok := hybrid36(s); ok {
		return n, true
	}
	return Int(s)
}

// hybrid36 decodes a five character hybrid-36 number. The first
// character must be a letter and all letters must have the same case.
func hybrid36(s string) (int, bool) {
	const (
		width = 5
		p4    = 36 * 36 * 36 * 36
		first = 100000 // value of A0000
	)
	if len(s) != width {
		return 0, false
	}
	var lo, hi byte
	switch c := s[0]; {
	case c >= 'A' && c <= 'Z':
		lo, hi = 'A', 'Z'
	case c >= 'a' && c <= 'z':
		lo, hi = 'a', 'z'
	default:
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			n = n*36 + int(c-'0')
		case c >= lo && c <= hi:
			n = n*36 + int(c-lo) + 10
		default:
			return 0, false
		}
	}
	if lo == 'A' {
		return n - 10*p4 + first, true
	}
	return n + 16*p4 + first, true
}
