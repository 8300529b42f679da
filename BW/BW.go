package BW

import (
	"errors"
	"fmt"

	"github.com/WXY1313/SMC/GF"
)

// ErrDecode is returned when the error locator does not divide the
// numerator polynomial, the signal that more shares were corrupted than
// the tolerance admits.
var ErrDecode = errors.New("decode failure")

// Result carries the decoded polynomial together with the decoder's
// internal Q and E polynomials. The roots of E mark the evaluation points
// the decoder rejected as corrupted.
type Result struct {
	P *GF.Poly
	Q *GF.Poly
	E *GF.Poly
}

// Decode reconstructs the polynomial of degree <= deg through the given
// points with Berlekamp-Welch decoding, tolerating up to
// e = floor((t-deg-1)/2) arbitrarily wrong values among the t points.
//
// The true relation is modeled as Q(x) = E(x)*P(x) with E the monic error
// locator of degree e and Q of degree deg+e. Each point contributes one
// linear equation Q(x_i) = y_i*E(x_i) in the deg+2e+1 unknown
// coefficients; the system is solved by Gaussian elimination over the
// field and P is recovered as Q/E. A nonzero remainder of that division
// means too many corrupted points and fails with ErrDecode.
func Decode(f *GF.Field, deg int, points []GF.Point) (*GF.Poly, error) {
	res, err := DecodeFull(f, deg, points)
	if err != nil {
		return nil, err
	}
	return res.P, nil
}

// DecodeFull is Decode but additionally returns the Q and E polynomials
// for diagnostics.
func DecodeFull(f *GF.Field, deg int, points []GF.Point) (*Result, error) {
	t := len(points)
	if deg < 0 {
		return nil, fmt.Errorf("%w: negative degree %d", GF.ErrDomain, deg)
	}
	if t < deg+1 {
		return nil, fmt.Errorf("%w: %d points cannot determine a degree-%d polynomial", GF.ErrUnderdetermined, t, deg)
	}

	degE := (t - (deg + 1)) / 2
	degQ := degE + deg
	cols := degQ + 1 + degE

	// one equation per point:
	//   sum_j Q_j*x^j - y*sum_j E_j*x^j = y*x^degE   (j < degE on the left)
	A := make([][]GF.Element, t)
	b := make([]GF.Element, t)
	for i, pt := range points {
		row := make([]GF.Element, cols)
		xp := f.One()
		for j := 0; j <= degQ; j++ {
			row[j] = xp
			xp = f.Multiply(xp, pt.X)
		}
		xp = f.One()
		for j := 0; j < degE; j++ {
			row[degQ+1+j] = f.Neg(f.Multiply(pt.Y, xp))
			xp = f.Multiply(xp, pt.X)
		}
		A[i] = row
		b[i] = f.Multiply(pt.Y, f.Exp(pt.X, degE))
	}

	z, err := GF.SolveRight(f, A, b)
	if err != nil {
		return nil, fmt.Errorf("berlekamp-welch system: %w", err)
	}

	q := f.NewPoly(z[:degQ+1])
	eCoeffs := make([]GF.Element, degE+1)
	copy(eCoeffs, z[degQ+1:])
	eCoeffs[degE] = f.One()
	e := f.NewPoly(eCoeffs)

	p, rem, err := q.QuoRem(e)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() {
		return nil, fmt.Errorf("%w: error locator does not divide Q, more than %d corrupted points", ErrDecode, degE)
	}
	if p.Degree() > deg {
		return nil, fmt.Errorf("%w: decoded polynomial has degree %d > %d", ErrDecode, p.Degree(), deg)
	}
	return &Result{P: p, Q: q, E: e}, nil
}

// CorruptedPoints returns the points whose x-coordinate is a root of the
// error locator, i.e. the points the decoder excluded. Diagnostic only.
func (r *Result) CorruptedPoints(points []GF.Point) []GF.Point {
	var bad []GF.Point
	for _, pt := range points {
		if r.E.Eval(pt.X) == 0 {
			bad = append(bad, pt)
		}
	}
	return bad
}
