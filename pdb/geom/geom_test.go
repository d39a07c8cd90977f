package geom_test

import (
	"math"
	"os"
	"testing"

	"github.com/andrew-torda/matrix"
	. "github.com/andrew-torda/pdbmodel/pdb/cmmn"
	. "github.com/andrew-torda/pdbmodel/pdb/geom"
	"github.com/andrew-torda/pdbmodel/pdb/mol"
	"github.com/andrew-torda/pdbmodel/pdb/oldfmt"
)

// permuteXyz rotates x, y and z for tests whose answers should not change
// when we move the axes around.
func permuteXyz(x Xyz) Xyz {
	x.X, x.Y, x.Z = x.Y, x.Z, x.X
	return x
}

// notApproxEqual returns true if x and y are not approximately equal.
func notApproxEqual(x, y float32) bool {
	diff := math.Abs(float64(x - y))
	return math.IsNaN(diff) || diff > 0.00001
}

var disttests = []struct {
	x1, x2 Xyz
	res    float32
}{
	{Xyz{X: 3.8, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 3.8},
	{Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, 1},
	{Xyz{X: 3, Y: 4, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, 5},
	{Xyz{X: 1, Y: 1, Z: 1}, Xyz{X: 1, Y: 1, Z: 1}, 0},
}

func TestDist(t *testing.T) {
	for _, test := range disttests {
		x1, x2 := test.x1, test.x2
		for i := 0; i < 3; i++ {
			if d := Dist(x1, x2); notApproxEqual(d, test.res) {
				t.Errorf("Dist(%v, %v) = %f want %f", x1, x2, d, test.res)
			}
			if Dist(x1, x2) != Dist(x2, x1) {
				t.Errorf("Dist(%v, %v) not symmetric", x1, x2)
			}
			x1, x2 = permuteXyz(x1), permuteXyz(x2)
		}
	}
	if d := Dist(BrokenXyz, Xyz{}); !IsNaN(d) {
		t.Errorf("broken coordinates should give NaN, got %f", d)
	}
}

var angletests = []struct {
	x1, x2, x3 Xyz
	res        float32
}{
	{Xyz{X: +1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 0.9999, Y: 0, Z: 0}, 0},
	{Xyz{X: -0, Y: 1, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1.0000, Y: 0, Z: 0}, math.Pi / 2},
	{Xyz{X: -1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1.0000, Y: 0, Z: 0}, math.Pi},
	{Xyz{X: +0, Y: 1, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 0.1000, Y: 0, Z: 0}, math.Pi / 2},
	{Xyz{X: +0, Y: 1, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 9.9000, Y: 0, Z: 0}, math.Pi / 2},
	{Xyz{X: -1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 1.0000, Y: 1, Z: 0}, math.Pi * 3 / 4},
	{Xyz{X: -1, Y: 0, Z: 0}, Xyz{X: 0, Y: 0, Z: 0}, Xyz{X: 9.9, Y: 9.9, Z: 0}, math.Pi * 3 / 4},
}

func TestAngle(t *testing.T) {
	for _, test := range angletests {
		x1, x2, x3 := test.x1, test.x2, test.x3
		for i := 0; i < 3; i++ {
			if a := Angle(x1, x2, x3); notApproxEqual(a, test.res) {
				t.Errorf("Angle got %f wanted %f, %v, %v, %v", a, test.res, x1, x2, x3)
			}
			x1, x2, x3 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3)
		}
	}
	if a := Angle(Xyz{}, Xyz{}, Xyz{X: 1, Y: 0, Z: 0}); !IsNaN(a) {
		t.Errorf("angle with two identical points should be NaN, got %f", a)
	}
}

var dhdrltests = []struct {
	x1, x2, x3, x4 Xyz
	res            float32
}{
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 1, Z: 0}, 0},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 1, Z: 1e-5}, 0},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: -1, Z: 0}, math.Pi},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 0, Z: 1}, -math.Pi / 2},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 0, Z: -1}, math.Pi / 2},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: 1, Z: -1}, math.Pi / 4},
	{Xyz{X: 0, Y: 1, Z: 0}, Xyz{X: 1, Y: 0, Z: 0}, Xyz{X: 2, Y: 0, Z: 0}, Xyz{X: 3, Y: -1, Z: -1}, math.Pi * (3.0 / 4.0)},
}

func TestDihedral(t *testing.T) {
	for _, test := range dhdrltests {
		x1, x2, x3, x4 := test.x1, test.x2, test.x3, test.x4
		const emsg = "error with %v %v %v %v wanted: %.3g got: %.3g"
		for i := 0; i < 3; i++ {
			if a := Dihedral(x1, x2, x3, x4); notApproxEqual(a, test.res) {
				t.Errorf(emsg, x1, x2, x3, x4, test.res, a)
			}
			x1, x2, x3, x4 = permuteXyz(x1), permuteXyz(x2), permuteXyz(x3), permuteXyz(x4)
		}
	}
}

func TestCentroid(t *testing.T) {
	m := matrix.NewFMatrix2d(3, 3)
	copy(m.Mat[0], []float32{0, 0, 0})
	copy(m.Mat[1], []float32{2, 4, 6})
	copy(m.Mat[2], []float32{NaN(), 100, 100})
	if c := Centroid(m); c != (Xyz{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Centroid got %v", c)
	}
	if c := Centroid(nil); c.Ok() {
		t.Errorf("nil matrix should give broken coordinates, got %v", c)
	}
}

func readMini(t *testing.T) *mol.Structure {
	t.Helper()
	fp, err := os.Open("../testdata/mini.pdb")
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	s, err := oldfmt.Parse("mini", fp)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestChainBreaks(t *testing.T) {
	s := readMini(t)
	brks := ChainBreaks(s.Chain(mol.Polymer, "A"))
	if len(brks) != 1 {
		t.Fatalf("want one break, got %d", len(brks))
	}
	b := brks[0]
	if b.Before.Key != "11" || b.After.Key != "12" || notApproxEqual(b.Dist, 8.8) {
		t.Errorf("break %s-%s %f", b.Before.Key, b.After.Key, b.Dist)
	}
	if brks := ChainBreaks(s.Chain(mol.Heteroatom, "C")); brks != nil {
		t.Errorf("chain with no CA gave %v", brks)
	}
}

func TestSSBondDist(t *testing.T) {
	s := readMini(t)
	bonds := s.SSBonds()
	if len(bonds) != 1 {
		t.Fatalf("got %d bonds", len(bonds))
	}
	if d := SSBondDist(s, bonds[0]); notApproxEqual(d, 2.04) {
		t.Errorf("SG-SG got %f", d)
	}
	for _, b := range []mol.SSBond{
		{Chain1: "A", Res1: "3", Chain2: "A", Res2: "4"},  // no SG
		{Chain1: "A", Res1: "3", Chain2: "Q", Res2: "10"}, // no chain
		{Chain1: "A", Res1: "3", Chain2: "A", Res2: "99"}, // no residue
	} {
		if d := SSBondDist(s, b); !IsNaN(d) {
			t.Errorf("%v: want NaN, got %f", b, d)
		}
	}
}

func TestCoordMatrixCentroid(t *testing.T) {
	s := readMini(t)
	m, atoms := s.CoordMatrix(mol.Heteroatom)
	if len(atoms) != 2 {
		t.Fatalf("got %d het atoms", len(atoms))
	}
	if c := Centroid(m); c != (Xyz{X: 0, Y: 10, Z: 0}) { // zinc has a broken x
		t.Errorf("got %v", c)
	}
}
