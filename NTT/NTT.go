// Package NTT implements the number theoretic transform, the finite-field
// analog of the discrete Fourier transform. A transform of size n exists
// whenever n divides q^m - 1, since the multiplicative group then contains
// a primitive n-th root of unity.
package NTT

import (
	"fmt"

	"github.com/WXY1313/SMC/GF"
)

// Transform computes the size-len(a) NTT of a. It recurses on even sizes
// with an even/odd split and falls back to the direct Vandermonde product
// on odd sizes.
func Transform(f *GF.Field, a []GF.Element) ([]GF.Element, error) {
	w, err := NthRoot(f, len(a))
	if err != nil {
		return nil, err
	}
	return fntt(f, a, w), nil
}

// TransformSlow computes the NTT by multiplying with the full Vandermonde
// matrix (w^(i*j)). Quadratic, kept as the reference implementation.
func TransformSlow(f *GF.Field, a []GF.Element) ([]GF.Element, error) {
	w, err := NthRoot(f, len(a))
	if err != nil {
		return nil, err
	}
	return ntt(f, a, w), nil
}

// Inverse computes the inverse NTT: the forward transform with w^-1,
// scaled by n^-1 in the field.
func Inverse(f *GF.Field, a []GF.Element) ([]GF.Element, error) {
	return inverse(f, a, fntt)
}

// InverseSlow is Inverse using the Vandermonde product.
func InverseSlow(f *GF.Field, a []GF.Element) ([]GF.Element, error) {
	return inverse(f, a, ntt)
}

func inverse(f *GF.Field, a []GF.Element, impl func(*GF.Field, []GF.Element, GF.Element) []GF.Element) ([]GF.Element, error) {
	n := len(a)
	w, err := NthRoot(f, n)
	if err != nil {
		return nil, err
	}
	winv, err := f.Invert(w)
	if err != nil {
		return nil, err
	}
	ninv, err := f.Invert(f.FromInt(n))
	if err != nil {
		return nil, fmt.Errorf("transform size %d is a multiple of the field characteristic: %w", n, err)
	}
	out := impl(f, a, winv)
	for i := range out {
		out[i] = f.Multiply(out[i], ninv)
	}
	return out, nil
}

// NthRoot finds a primitive n-th root of unity in the field, or fails with
// ErrDomain when none exists.
func NthRoot(f *GF.Field, n int) (GF.Element, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: transform size %d", GF.ErrDomain, n)
	}
	if n == 1 {
		return f.One(), nil
	}
	if (f.Order()-1)%n != 0 {
		return 0, fmt.Errorf("%w: no %d-th root of unity in %s", GF.ErrDomain, n, f)
	}
	primes := primeFactors(n)
	exp := (f.Order() - 1) / n
	for c := 2; c < f.Order(); c++ {
		w := f.Exp(GF.Element(c), exp)
		if w == f.One() {
			continue
		}
		primitive := true
		for _, p := range primes {
			if f.Exp(w, n/p) == f.One() {
				primitive = false
				break
			}
		}
		if primitive {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: no primitive %d-th root of unity in %s", GF.ErrDomain, n, f)
}

func primeFactors(n int) []int {
	var primes []int
	for p := 2; p*p <= n; p++ {
		if n%p == 0 {
			primes = append(primes, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	if n > 1 {
		primes = append(primes, n)
	}
	return primes
}

// ntt is the direct transform: out[i] = sum_j a[j] * w^(i*j).
func ntt(f *GF.Field, a []GF.Element, w GF.Element) []GF.Element {
	n := len(a)
	out := make([]GF.Element, n)
	for i := 0; i < n; i++ {
		wi := f.Exp(w, i)
		acc := f.Zero()
		xp := f.One()
		for j := 0; j < n; j++ {
			acc = f.Add(acc, f.Multiply(a[j], xp))
			xp = f.Multiply(xp, wi)
		}
		out[i] = acc
	}
	return out
}

// fntt is the textbook radix-2 split, recursing while the size is even.
func fntt(f *GF.Field, a []GF.Element, w GF.Element) []GF.Element {
	n := len(a)
	if n == 1 {
		return []GF.Element{a[0]}
	}
	if n%2 == 1 {
		return ntt(f, a, w)
	}
	even := make([]GF.Element, n/2)
	odd := make([]GF.Element, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}
	w2 := f.Multiply(w, w)
	fe := fntt(f, even, w2)
	fo := fntt(f, odd, w2)

	out := make([]GF.Element, n)
	for i := 0; i < n/2; i++ {
		t := f.Multiply(f.Exp(w, i), fo[i])
		out[i] = f.Add(fe[i], t)
		out[i+n/2] = f.Add(fe[i], f.Multiply(f.Exp(w, i+n/2), fo[i]))
	}
	return out
}
