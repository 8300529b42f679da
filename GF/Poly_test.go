package GF

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gf7(t *testing.T) *Field {
	t.Helper()
	f, err := NewField(7, 1)
	require.NoError(t, err)
	return f
}

func TestPolyEval(t *testing.T) {
	f := gf7(t)

	// p(x) = 3 + 2x + x^2
	p := f.NewPoly([]Element{3, 2, 1})
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, Element(3), p.Eval(0))
	assert.Equal(t, Element(4), p.Eval(2)) // 3+4+4 = 11 = 4 mod 7

	zero := f.NewPoly(nil)
	assert.True(t, zero.IsZero())
	assert.Equal(t, -1, zero.Degree())
	assert.Equal(t, Element(0), zero.Eval(5))
}

func TestPolyTrim(t *testing.T) {
	f := gf7(t)
	p := f.NewPoly([]Element{4, 0, 0})
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, Element(0), p.Coeff(2))
	assert.Equal(t, []Element{4}, p.Coeffs())
}

func TestPolyArithmetic(t *testing.T) {
	f := gf7(t)
	p := f.NewPoly([]Element{1, 1})  // 1+x
	q := f.NewPoly([]Element{6, 1})  // 6+x
	sum := p.Add(q)                  // 7+2x = 2x
	assert.Equal(t, []Element{0, 2}, sum.Coeffs())

	prod := p.Mul(q) // (1+x)(6+x) = 6 + 7x + x^2 = 6 + x^2
	assert.Equal(t, []Element{6, 0, 1}, prod.Coeffs())

	diff := p.Sub(q) // -5 = 2
	assert.Equal(t, []Element{2}, diff.Coeffs())
}

func TestPolyQuoRem(t *testing.T) {
	f := gf7(t)

	// (x^2+3x+2) / (x+1) = x+2 remainder 0
	p := f.NewPoly([]Element{2, 3, 1})
	d := f.NewPoly([]Element{1, 1})
	q, r, err := p.QuoRem(d)
	require.NoError(t, err)
	assert.Equal(t, []Element{2, 1}, q.Coeffs())
	assert.True(t, r.IsZero())

	// (x^2+1) / (x+1) = x+6 remainder 2
	p = f.NewPoly([]Element{1, 0, 1})
	q, r, err = p.QuoRem(d)
	require.NoError(t, err)
	assert.Equal(t, []Element{6, 1}, q.Coeffs())
	assert.Equal(t, []Element{2}, r.Coeffs())

	// p = q*d + r must hold
	assert.Equal(t, p.Coeffs(), q.Mul(d).Add(r).Coeffs())

	_, _, err = p.QuoRem(f.NewPoly(nil))
	assert.ErrorIs(t, err, ErrDomain)

	// divisor of higher degree leaves p untouched
	q, r, err = d.QuoRem(p)
	require.NoError(t, err)
	assert.True(t, q.IsZero())
	assert.Equal(t, d.Coeffs(), r.Coeffs())
}

func TestLagrange(t *testing.T) {
	f := gf7(t)

	points := []Point{{1, 2}, {2, 5}, {3, 3}}
	p, err := Lagrange(f, points)
	require.NoError(t, err)
	assert.LessOrEqual(t, p.Degree(), 2)
	for _, pt := range points {
		assert.Equal(t, pt.Y, p.Eval(pt.X), "p(%d)", int(pt.X))
	}

	_, err = Lagrange(f, []Point{{1, 2}, {1, 3}})
	assert.ErrorIs(t, err, ErrDomain)
}

func TestLagrangeRecoversPolynomial(t *testing.T) {
	f, err := NewField(2, 8)
	require.NoError(t, err)

	orig := f.NewPoly([]Element{216, 5, 7})
	var points []Point
	for i := 1; i <= 3; i++ {
		x := Element(i)
		points = append(points, Point{X: x, Y: orig.Eval(x)})
	}
	p, err := Lagrange(f, points)
	require.NoError(t, err)
	assert.Equal(t, orig.Coeffs(), p.Coeffs())
}

func TestPolyString(t *testing.T) {
	f := gf7(t)
	assert.Equal(t, "0", f.NewPoly(nil).String())
	p := f.NewPoly([]Element{3, 2, 1})
	assert.Equal(t, "1*x^2 + 2*x + 3", p.String())
}
