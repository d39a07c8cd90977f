// Package geom has distances, angles and a few checks on chains.
// Coordinates that could not be read are NaN and the NaN is passed
// through, so callers check the result, not the input.
package geom

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/pdbmodel/pdb/cmmn"
	"github.com/andrew-torda/pdbmodel/pdb/mol"
)

// MaxCADist is the longest distance between consecutive C alpha atoms
// before we call it a chain break.
const MaxCADist = 4.1

// xyzDiff gets the difference of two vectors
func xyzDiff(start, end cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{X: end.X - start.X, Y: end.Y - start.Y, Z: end.Z - start.Z}
}

// vecProd returns the vector product of two vectors
func vecProd(u, v cmmn.Xyz) cmmn.Xyz {
	return cmmn.Xyz{
		X: u.Y*v.Z - u.Z*v.Y,
		Y: u.Z*v.X - u.X*v.Z,
		Z: u.X*v.Y - u.Y*v.X,
	}
}

func sclrProd(u, v cmmn.Xyz) float32 { return u.X*v.X + u.Y*v.Y + u.Z*v.Z }

func xyzLen(v cmmn.Xyz) float32 { return float32(math.Sqrt(float64(sclrProd(v, v)))) }

// Dist is the distance between two points.
func Dist(a, b cmmn.Xyz) float32 { return xyzLen(xyzDiff(a, b)) }

// clampAcos forgives a little numerical noise outside [-1, 1].
func clampAcos(c float64) float32 {
	switch {
	case c > 1 && c < 1.01:
		return 0
	case c < -1 && c > -1.01:
		return math.Pi
	}
	return float32(math.Acos(c)) // NaN if c is really broken
}

// Angle is the angle a-b-c in radians. It is NaN if two points sit
// on top of each other.
func Angle(a, b, c cmmn.Xyz) float32 {
	x1 := xyzDiff(b, a)
	x2 := xyzDiff(b, c)
	l := float64(xyzLen(x1)) * float64(xyzLen(x2))
	if l == 0 {
		return cmmn.NaN()
	}
	return clampAcos(float64(sclrProd(x1, x2)) / l)
}

// Dihedral takes four points and returns the dihedral angle in
// radians, signed the usual way.
func Dihedral(ii, jj, kk, ll cmmn.Xyz) float32 {
	rij := xyzDiff(ii, jj)
	rkj := xyzDiff(kk, jj)
	rkl := xyzDiff(kk, ll)
	lkj2 := sclrProd(rkj, rkj)
	perp := func(v cmmn.Xyz) cmmn.Xyz { // part of v at right angles to rkj
		f := sclrProd(v, rkj) / lkj2
		return cmmn.Xyz{X: v.X - f*rkj.X, Y: v.Y - f*rkj.Y, Z: v.Z - f*rkj.Z}
	}
	rim := perp(rij)
	rln := perp(rkl)
	rln = cmmn.Xyz{X: -rln.X, Y: -rln.Y, Z: -rln.Z}
	tau := clampAcos(float64(sclrProd(rim, rln) / (xyzLen(rim) * xyzLen(rln))))
	if sclrProd(rij, vecProd(rkj, rkl)) >= 0 {
		return tau
	}
	return -tau
}

// Centroid is the mean of the rows of an n x 3 matrix, as from
// mol.Structure.CoordMatrix. Rows with a NaN are left out. If nothing
// is left, you get cmmn.BrokenXyz.
func Centroid(m *matrix.FMatrix2d) cmmn.Xyz {
	if m == nil {
		return cmmn.BrokenXyz
	}
	var sum [3]float64
	n := 0
	for _, row := range m.Mat {
		if cmmn.IsNaN(row[0]) || cmmn.IsNaN(row[1]) || cmmn.IsNaN(row[2]) {
			continue
		}
		for i := range sum {
			sum[i] += float64(row[i])
		}
		n++
	}
	if n == 0 {
		return cmmn.BrokenXyz
	}
	fn := float64(n)
	return cmmn.Xyz{X: float32(sum[0] / fn), Y: float32(sum[1] / fn), Z: float32(sum[2] / fn)}
}

// Break is a gap between two residues that follow each other in a
// chain.
type Break struct {
	Before, After *mol.Residue
	Dist          float32
}

// ChainBreaks walks a chain in structural order and reports where
// consecutive C alpha atoms are more than MaxCADist apart. Residues
// without a C alpha, or with broken coordinates, are passed over.
func ChainBreaks(c *mol.Chain) []Break {
	var ret []Break
	var prev *mol.Residue
	var prevCA *mol.Atom
	for _, r := range c.SortedResidues() {
		ca := r.Atom("CA")
		if ca == nil || !ca.Ok() {
			continue
		}
		if prevCA != nil {
			if d := Dist(prevCA.Xyz, ca.Xyz); d > MaxCADist {
				ret = append(ret, Break{Before: prev, After: r, Dist: d})
			}
		}
		prev, prevCA = r, ca
	}
	return ret
}

// findResidue looks in the polymer chain first, then in the others.
func findResidue(s *mol.Structure, chain, key string) *mol.Residue {
	if chain == "" {
		chain = mol.DefaultChain
	}
	for _, k := range mol.AllKinds {
		if c := s.Chain(k, chain); c != nil {
			if r := c.Residue(key); r != nil {
				return r
			}
		}
	}
	return nil
}

// SSBondDist is the SG to SG distance of a disulfide bridge. It is
// NaN if either residue or either SG cannot be found.
func SSBondDist(s *mol.Structure, b mol.SSBond) float32 {
	r1 := findResidue(s, b.Chain1, b.Res1)
	r2 := findResidue(s, b.Chain2, b.Res2)
	if r1 == nil || r2 == nil {
		return cmmn.NaN()
	}
	sg1, sg2 := r1.Atom("SG"), r2.Atom("SG")
	if sg1 == nil || sg2 == nil {
		return cmmn.NaN()
	}
	return Dist(sg1.Xyz, sg2.Xyz)
}
