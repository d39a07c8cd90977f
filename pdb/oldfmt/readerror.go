package oldfmt

import (
	"strconv"
)

const maxMsgLen = 70

// readError saves the number of the line we were trying to read when
// the underlying reader broke, and the start of the line before it.
type readError struct {
	n    int    // line number
	prev string // Line n-1, the last one read completely
	desc string // Description of error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error gives the line number, the description and the start of the
// line before.
func (e readError) Error() string {
	var errmsg string
	if e.n != 0 {
		errmsg = "Line: " + strconv.Itoa(e.n) + " "
	}
	errmsg += e.desc
	if e.prev != "" && e.n > 1 {
		errmsg += "\nLine " + strconv.Itoa(e.n-1) + " starts with\n" + firstPart(e.prev)
	}
	return errmsg
}
