// Package pdb/cmmn has common definitions for coordinates, sources
// and exit codes shared by the pdb packages and the commands.
package cmmn

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Does our data come from a file or http source ?
const (
	FileSrc byte = iota
	HTTPSrc
)

// Exit codes for the commands
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Xyz holds one set of coordinates. A field that could not be read
// from a file is NaN.
type Xyz struct{ X, Y, Z float32 }

var nan32 = float32(math.NaN())

// BrokenXyz is what you get when none of the coordinates could be read.
var BrokenXyz = Xyz{nan32, nan32, nan32}

// NaN returns the not-a-number sentinel used for unreadable numbers.
func NaN() float32 { return nan32 }

// IsNaN says whether f is the sentinel.
func IsNaN(f float32) bool { return f != f }

// Ok is true if all three coordinates are real numbers.
func (xyz *Xyz) Ok() bool {
	return !IsNaN(xyz.X) && !IsNaN(xyz.Y) && !IsNaN(xyz.Z)
}

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}
