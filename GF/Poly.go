package GF

import (
	"fmt"
	"strings"
)

// Poly is a dense polynomial over a Field. Coefficients are stored in
// ascending order: index i holds the coefficient of x^i. Trailing zero
// coefficients are trimmed, so the zero polynomial has no coefficients and
// degree -1. Polynomials are value types; operations return new instances.
type Poly struct {
	f      *Field
	coeffs []Element
}

// Point is an (x, y) evaluation pair used for interpolation and decoding.
type Point struct {
	X, Y Element
}

// NewPoly builds a polynomial from ascending coefficients.
func (f *Field) NewPoly(coeffs []Element) *Poly {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	c := make([]Element, end)
	copy(c, coeffs[:end])
	return &Poly{f: f, coeffs: c}
}

// Degree returns the index of the highest nonzero coefficient, or -1 for
// the zero polynomial.
func (p *Poly) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 0 }

// Coeff returns the coefficient of x^i, zero beyond the degree.
func (p *Poly) Coeff(i int) Element {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// Coeffs returns a copy of the trimmed coefficient vector.
func (p *Poly) Coeffs() []Element {
	c := make([]Element, len(p.coeffs))
	copy(c, p.coeffs)
	return c
}

// Eval evaluates p at x with Horner's rule.
func (p *Poly) Eval(x Element) Element {
	acc := p.f.Zero()
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = p.f.Add(p.f.Multiply(acc, x), p.coeffs[i])
	}
	return acc
}

// Add returns p+other.
func (p *Poly) Add(other *Poly) *Poly {
	n := len(p.coeffs)
	if len(other.coeffs) > n {
		n = len(other.coeffs)
	}
	sum := make([]Element, n)
	for i := range sum {
		sum[i] = p.f.Add(p.Coeff(i), other.Coeff(i))
	}
	return p.f.NewPoly(sum)
}

// Sub returns p-other.
func (p *Poly) Sub(other *Poly) *Poly {
	n := len(p.coeffs)
	if len(other.coeffs) > n {
		n = len(other.coeffs)
	}
	diff := make([]Element, n)
	for i := range diff {
		diff[i] = p.f.Sub(p.Coeff(i), other.Coeff(i))
	}
	return p.f.NewPoly(diff)
}

// Mul returns p*other.
func (p *Poly) Mul(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return p.f.NewPoly(nil)
	}
	prod := make([]Element, len(p.coeffs)+len(other.coeffs)-1)
	for i, a := range p.coeffs {
		if a == 0 {
			continue
		}
		for j, b := range other.coeffs {
			prod[i+j] = p.f.Add(prod[i+j], p.f.Multiply(a, b))
		}
	}
	return p.f.NewPoly(prod)
}

// MulScalar returns c*p.
func (p *Poly) MulScalar(c Element) *Poly {
	scaled := make([]Element, len(p.coeffs))
	for i, a := range p.coeffs {
		scaled[i] = p.f.Multiply(a, c)
	}
	return p.f.NewPoly(scaled)
}

// QuoRem performs polynomial long division, returning quotient and
// remainder with p = q*d + r and deg(r) < deg(d). Division by the zero
// polynomial fails with ErrDomain.
func (p *Poly) QuoRem(d *Poly) (*Poly, *Poly, error) {
	if d.IsZero() {
		return nil, nil, fmt.Errorf("%w: polynomial division by zero", ErrDomain)
	}
	if p.Degree() < d.Degree() {
		return p.f.NewPoly(nil), p.f.NewPoly(p.coeffs), nil
	}
	leadInv, err := p.f.Invert(d.coeffs[d.Degree()])
	if err != nil {
		return nil, nil, err
	}
	rem := p.Coeffs()
	quot := make([]Element, p.Degree()-d.Degree()+1)
	for i := p.Degree(); i >= d.Degree(); i-- {
		if rem[i] == 0 {
			continue
		}
		factor := p.f.Multiply(rem[i], leadInv)
		quot[i-d.Degree()] = factor
		for j := 0; j <= d.Degree(); j++ {
			rem[i-d.Degree()+j] = p.f.Sub(rem[i-d.Degree()+j], p.f.Multiply(factor, d.coeffs[j]))
		}
	}
	return p.f.NewPoly(quot), p.f.NewPoly(rem), nil
}

// Lagrange builds the unique polynomial of degree < len(points) passing
// through all points using the Lagrange basis-sum formula. Duplicate
// x-coordinates fail with ErrDomain.
func Lagrange(f *Field, points []Point) (*Poly, error) {
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].X == points[j].X {
				return nil, fmt.Errorf("%w: duplicate interpolation point x=%d", ErrDomain, int(points[i].X))
			}
		}
	}
	result := f.NewPoly(nil)
	for i, pi := range points {
		basis := f.NewPoly([]Element{f.One()})
		denom := f.One()
		for j, pj := range points {
			if j == i {
				continue
			}
			basis = basis.Mul(f.NewPoly([]Element{f.Neg(pj.X), f.One()}))
			denom = f.Multiply(denom, f.Sub(pi.X, pj.X))
		}
		denomInv, err := f.Invert(denom)
		if err != nil {
			return nil, err
		}
		result = result.Add(basis.MulScalar(f.Multiply(pi.Y, denomInv)))
	}
	return result, nil
}

func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		if p.coeffs[i] == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, fmt.Sprintf("%d", int(p.coeffs[i])))
		case 1:
			terms = append(terms, fmt.Sprintf("%d*x", int(p.coeffs[i])))
		default:
			terms = append(terms, fmt.Sprintf("%d*x^%d", int(p.coeffs[i]), i))
		}
	}
	return strings.Join(terms, " + ")
}
