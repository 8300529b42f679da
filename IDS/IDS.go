package IDS

import (
	"fmt"

	"github.com/WXY1313/SMC/BW"
	"github.com/WXY1313/SMC/GF"
	"github.com/WXY1313/SMC/SSS"
)

// Share is a dispersal fragment, the same (point, value) pair produced by
// Shamir sharing.
type Share = SSS.Share

// Scheme is (k,n)-Rabin information dispersal over a finite field. Unlike
// Shamir sharing it carries data in all k coefficients of the block
// polynomial, so each fragment is 1/k the data size, at the cost of any k
// fragments revealing the data. Reconstruction reuses the same exact and
// error-tolerant decoders as the sharing scheme.
type Scheme struct {
	f *GF.Field
	n int
	k int
}

// New validates the dispersal parameters, with the same bounds as Shamir
// sharing.
func New(f *GF.Field, n, k int) (*Scheme, error) {
	if k < 2 {
		return nil, fmt.Errorf("%w: k=%d must be at least 2", GF.ErrConfig, k)
	}
	if k > n {
		return nil, fmt.Errorf("%w: k=%d exceeds fragment count n=%d", GF.ErrConfig, k, n)
	}
	if n >= f.Order() {
		return nil, fmt.Errorf("%w: n=%d needs more evaluation points than %s offers", GF.ErrConfig, n, f)
	}
	return &Scheme{f: f, n: n, k: k}, nil
}

// Disperse encodes the data words into blocks of n shares each. Every
// group of k consecutive words becomes the coefficient vector of a
// degree-(k-1) polynomial evaluated at the points 1..n. The data length
// must be a multiple of k; padding is the caller's concern.
func (s *Scheme) Disperse(data []int) ([][]Share, error) {
	if len(data) == 0 || len(data)%s.k != 0 {
		return nil, fmt.Errorf("%w: data length %d is not a positive multiple of k=%d", GF.ErrDomain, len(data), s.k)
	}
	blocks := make([][]Share, len(data)/s.k)
	for bi := range blocks {
		coeffs := make([]GF.Element, s.k)
		for j := 0; j < s.k; j++ {
			c, err := s.f.ToElement(data[bi*s.k+j])
			if err != nil {
				return nil, err
			}
			coeffs[j] = c
		}
		p := s.f.NewPoly(coeffs)
		block := make([]Share, s.n)
		for i := 1; i <= s.n; i++ {
			x, err := s.f.ToElement(i)
			if err != nil {
				return nil, err
			}
			block[i-1] = Share{X: i, Y: int(p.Eval(x))}
		}
		blocks[bi] = block
	}
	return blocks, nil
}

// Reconstruct recovers the data words by exact Lagrange interpolation of
// each block. Like Shamir's exact path it has no corruption tolerance.
func (s *Scheme) Reconstruct(blocks [][]Share) ([]int, error) {
	return s.reconstruct(blocks, func(points []GF.Point) (*GF.Poly, error) {
		return GF.Lagrange(s.f, points)
	})
}

// ReconstructBW recovers the data words with the Berlekamp-Welch decoder,
// tolerating up to floor((t-k)/2) corrupted shares per block.
func (s *Scheme) ReconstructBW(blocks [][]Share) ([]int, error) {
	return s.reconstruct(blocks, func(points []GF.Point) (*GF.Poly, error) {
		return BW.Decode(s.f, s.k-1, points)
	})
}

func (s *Scheme) reconstruct(blocks [][]Share, decode func([]GF.Point) (*GF.Poly, error)) ([]int, error) {
	data := make([]int, 0, len(blocks)*s.k)
	for bi, block := range blocks {
		if len(block) < s.k {
			return nil, fmt.Errorf("%w: block %d has %d shares below k=%d", GF.ErrUnderdetermined, bi, len(block), s.k)
		}
		points := make([]GF.Point, len(block))
		for i, sh := range block {
			x, err := s.f.ToElement(sh.X)
			if err != nil {
				return nil, err
			}
			y, err := s.f.ToElement(sh.Y)
			if err != nil {
				return nil, err
			}
			points[i] = GF.Point{X: x, Y: y}
		}
		p, err := decode(points)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", bi, err)
		}
		for j := 0; j < s.k; j++ {
			data = append(data, int(p.Coeff(j)))
		}
	}
	return data, nil
}
