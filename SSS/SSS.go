package SSS

import (
	"fmt"

	"github.com/WXY1313/SMC/BW"
	"github.com/WXY1313/SMC/GF"
)

// Share is one participant's share: the evaluation point X assigned to the
// participant and the secret polynomial's value Y at that point. Both are
// integer representations of field elements.
type Share struct {
	X int
	Y int
}

// Scheme is a (k,n)-threshold Shamir secret sharing scheme over a fixed
// finite field: the secret is the constant term of a random polynomial of
// degree k-1, evaluated at the points 1..n. Parameters are immutable after
// construction and the scheme keeps no other state.
type Scheme struct {
	f *GF.Field
	n int
	k int
}

// New validates the scheme parameters: 2 <= k <= n and n strictly below
// the field order so that all n evaluation points are distinct and nonzero.
func New(f *GF.Field, n, k int) (*Scheme, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: threshold k=%d must be at least 2", GF.ErrConfig, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: threshold k=%d exceeds share count n=%d", GF.ErrConfig, k, n)
	}
	if n >= f.Order() {
		return nil, fmt.Errorf("%w: n=%d needs more evaluation points than %s offers", GF.ErrConfig, n, f)
	}
	return &Scheme{f: f, n: n, k: k}, nil
}

// Field returns the field the scheme operates in.
func (s *Scheme) Field() *GF.Field { return s.f }

// N returns the number of shares produced by Share.
func (s *Scheme) N() int { return s.n }

// K returns the reconstruction threshold.
func (s *Scheme) K() int { return s.k }

// Share splits the secret into n shares. A polynomial
// P(x) = secret + r_1*x + ... + r_{k-1}*x^{k-1} is built with uniformly
// random coefficients and evaluated at the points 1..n. Any k shares
// reconstruct the secret; any k-1 reveal nothing about it.
func (s *Scheme) Share(secret int) ([]Share, error) {
	p, err := s.randomPoly(secret)
	if err != nil {
		return nil, err
	}
	shares := make([]Share, s.n)
	for i := 1; i <= s.n; i++ {
		x, err := s.f.ToElement(i)
		if err != nil {
			return nil, err
		}
		shares[i-1] = Share{X: i, Y: int(p.Eval(x))}
	}
	return shares, nil
}

func (s *Scheme) randomPoly(secret int) (*GF.Poly, error) {
	c0, err := s.f.ToElement(secret)
	if err != nil {
		return nil, err
	}
	coeffs := make([]GF.Element, s.k)
	coeffs[0] = c0
	for i := 1; i < s.k; i++ {
		coeffs[i], err = s.f.RandomElement()
		if err != nil {
			return nil, err
		}
	}
	return s.f.NewPoly(coeffs), nil
}

// Reconstruct recovers the secret from k or more shares by exact Lagrange
// interpolation. This path trusts every supplied share: a corrupted value
// yields a wrong secret without any error. Callers needing tamper
// tolerance must use ReconstructBW.
func (s *Scheme) Reconstruct(shares []Share) (int, error) {
	points, err := s.toPoints(shares)
	if err != nil {
		return 0, err
	}
	if len(points) < s.k {
		return 0, fmt.Errorf("%w: %d shares below threshold %d", GF.ErrUnderdetermined, len(points), s.k)
	}
	p, err := GF.Lagrange(s.f, points)
	if err != nil {
		return 0, err
	}
	return int(p.Eval(s.f.Zero())), nil
}

// ReconstructBW recovers the secret with the Berlekamp-Welch decoder,
// tolerating up to floor((t-k)/2) corrupted values among t supplied
// shares.
func (s *Scheme) ReconstructBW(shares []Share) (int, error) {
	points, err := s.toPoints(shares)
	if err != nil {
		return 0, err
	}
	p, err := BW.Decode(s.f, s.k-1, points)
	if err != nil {
		return 0, err
	}
	return int(p.Eval(s.f.Zero())), nil
}

func (s *Scheme) toPoints(shares []Share) ([]GF.Point, error) {
	points := make([]GF.Point, len(shares))
	for i, sh := range shares {
		x, err := s.f.ToElement(sh.X)
		if err != nil {
			return nil, err
		}
		y, err := s.f.ToElement(sh.Y)
		if err != nil {
			return nil, err
		}
		if x == 0 {
			return nil, fmt.Errorf("%w: share index must be nonzero", GF.ErrDomain)
		}
		points[i] = GF.Point{X: x, Y: y}
	}
	return points, nil
}
