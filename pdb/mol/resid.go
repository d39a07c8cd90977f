package mol

import (
	"strconv"
)

// ResID is a residue key split into its parts. "52A" is {52, 'A'}.
// Keys without leading digits get Num 0, keys without anything after
// the digits get ICode 0.
type ResID struct {
	Num   int
	ICode byte
}

// ParseResKey takes the leading run of decimal digits as the number
// and the first character after it as the insertion code. It does not
// fail. A leading sign is not a digit, so "-3" is {0, '-'}.
func ParseResKey(s string) ResID {
	var r ResID
	i := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if r.Num < maxResNum {
			r.Num = r.Num*10 + int(s[i]-'0')
		}
	}
	if i < len(s) {
		r.ICode = s[i]
	}
	return r
}

// Anything with more digits than this is nonsense, but we stop the
// number from wrapping around.
const maxResNum = 1 << 40

// Cmp returns -1, 0 or 1 for r before, equal to or after o.
func (r ResID) Cmp(o ResID) int {
	switch {
	case r.Num < o.Num:
		return -1
	case r.Num > o.Num:
		return 1
	case r.ICode < o.ICode:
		return -1
	case r.ICode > o.ICode:
		return 1
	}
	return 0
}

// Less is Cmp for sorting.
func (r ResID) Less(o ResID) bool { return r.Cmp(o) < 0 }

// String gives back the key. {52, 'A'} becomes "52A".
func (r ResID) String() string {
	s := strconv.Itoa(r.Num)
	if r.ICode != 0 {
		s += string([]byte{r.ICode})
	}
	return s
}

// CompareResKey orders two residue keys as read from a file.
// "9" < "10", "52" < "52A" < "52B".
func CompareResKey(a, b string) int {
	return ParseResKey(a).Cmp(ParseResKey(b))
}
