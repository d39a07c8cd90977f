package mol_test

import (
	"testing"

	. "github.com/andrew-torda/pdbmodel/pdb/mol"
)

var cmpdata = []struct {
	a, b string
	want int
}{
	{"9", "10", -1},
	{"10", "9", 1},
	{"52A", "52B", -1},
	{"52", "52A", -1},
	{"52A", "52", 1},
	{"52A", "52A", 0},
	{"007", "7", 0}, // equal keys from different strings
	{"", "0", 0},
	{"A", "1", -1}, // no digits is zero
	{"100", "99Z", 1},
}

func TestCompareResKey(t *testing.T) {
	for _, c := range cmpdata {
		if got := CompareResKey(c.a, c.b); got != c.want {
			t.Errorf("CompareResKey(%q, %q) = %d, wanted %d", c.a, c.b, got, c.want)
		}
	}
}

func TestParseResKey(t *testing.T) {
	tests := []struct {
		in   string
		want ResID
		str  string
	}{
		{"52A", ResID{52, 'A'}, "52A"},
		{"52", ResID{52, 0}, "52"},
		{"-3", ResID{0, '-'}, "0-"},
		{"1000", ResID{1000, 0}, "1000"},
		{"", ResID{}, "0"},
	}
	for _, tt := range tests {
		got := ParseResKey(tt.in)
		if got != tt.want {
			t.Errorf("ParseResKey(%q) = %+v, wanted %+v", tt.in, got, tt.want)
		}
		if s := got.String(); s != tt.str {
			t.Errorf("String() on %+v gave %q, wanted %q", got, s, tt.str)
		}
	}
}

func TestHugeResKey(t *testing.T) {
	a := ParseResKey("99999999999999999999999999")
	b := ParseResKey("1")
	if !b.Less(a) {
		t.Error("long number should not wrap around")
	}
}
