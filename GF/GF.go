package GF

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrConfig is returned for invalid field or scheme parameters.
	ErrConfig = errors.New("invalid configuration")
	// ErrDomain is returned for values outside the field or malformed inputs.
	ErrDomain = errors.New("domain error")
	// ErrDivisionByZero is returned when inverting the additive identity.
	ErrDivisionByZero = errors.New("division by zero")
)

// Element is the integer representation of a field element. The base-q
// digits of the integer are the coefficients of a polynomial of degree < m
// over GF(q), lowest degree first.
type Element int

// Field implements arithmetic in GF(q^m) for a prime q. Elements are coded
// as integers in [0, q^m) and all results are reduced modulo a fixed monic
// irreducible polynomial of degree m. A Field is immutable after
// construction and safe for concurrent use.
type Field struct {
	q     int
	m     int
	order int
	mod   []int // modulus polynomial digits over GF(q), ascending, mod[m] == 1
}

// Built-in irreducible moduli for binary fields GF(2^m). The GF(2^8) entry
// is the Rijndael polynomial x^8+x^4+x^3+x+1.
var binaryModulus = map[int]int{
	2:  0x7,
	3:  0xB,
	4:  0x13,
	5:  0x25,
	6:  0x43,
	7:  0x83,
	8:  0x11B,
	9:  0x211,
	10: 0x409,
	11: 0x805,
	12: 0x1053,
	13: 0x201B,
	14: 0x4443,
	15: 0x8003,
	16: 0x1100B,
}

// NewField constructs GF(q^m) with a built-in modulus. Prime fields (m=1)
// work for any prime q; binary extension fields are supported up to m=16.
// Other combinations need NewFieldWithModulus.
func NewField(q, m int) (*Field, error) {
	if m == 1 {
		// modulus x, reduction is arithmetic mod q
		return NewFieldWithModulus(q, 1, q)
	}
	if q == 2 {
		mod, ok := binaryModulus[m]
		if !ok {
			return nil, fmt.Errorf("%w: no built-in modulus for GF(2^%d)", ErrConfig, m)
		}
		return NewFieldWithModulus(2, m, mod)
	}
	return nil, fmt.Errorf("%w: no built-in modulus for GF(%d^%d), supply one explicitly", ErrConfig, q, m)
}

// NewFieldWithModulus constructs GF(q^m) with an explicit monic irreducible
// modulus of degree m, given in the same integer coding as the elements
// (base-q digits are the coefficients).
func NewFieldWithModulus(q, m, modulus int) (*Field, error) {
	if q < 2 || !isPrime(q) {
		return nil, fmt.Errorf("%w: q=%d must be prime", ErrConfig, q)
	}
	if m < 1 {
		return nil, fmt.Errorf("%w: m=%d must be positive", ErrConfig, m)
	}
	order := 1
	for i := 0; i < m; i++ {
		if order > (1<<31)/q {
			return nil, fmt.Errorf("%w: field order %d^%d too large", ErrConfig, q, m)
		}
		order *= q
	}
	mod := toDigits(modulus, q, m+1)
	if mod[m] != 1 {
		return nil, fmt.Errorf("%w: modulus must be monic of degree %d", ErrConfig, m)
	}
	rest := modulus
	for i := 0; i <= m; i++ {
		rest /= q
	}
	if rest != 0 {
		return nil, fmt.Errorf("%w: modulus degree exceeds %d", ErrConfig, m)
	}
	return &Field{q: q, m: m, order: order, mod: mod}, nil
}

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func toDigits(x, q, size int) []int {
	d := make([]int, size)
	for i := 0; i < size; i++ {
		d[i] = x % q
		x /= q
	}
	return d
}

func fromDigits(d []int, q int) int {
	x := 0
	for i := len(d) - 1; i >= 0; i-- {
		x = x*q + d[i]
	}
	return x
}

// Q returns the characteristic of the field.
func (f *Field) Q() int { return f.q }

// M returns the extension degree.
func (f *Field) M() int { return f.m }

// Order returns the number of field elements q^m.
func (f *Field) Order() int { return f.order }

func (f *Field) String() string {
	if f.m == 1 {
		return fmt.Sprintf("GF(%d)", f.q)
	}
	return fmt.Sprintf("GF(%d^%d)", f.q, f.m)
}

// ToElement checks the integer representation and returns it as a field
// element.
func (f *Field) ToElement(x int) (Element, error) {
	if x < 0 || x >= f.order {
		return 0, fmt.Errorf("%w: integer representation %d not in %s", ErrDomain, x, f)
	}
	return Element(x), nil
}

// FromInt maps an arbitrary integer n to the field element n*1, i.e. the
// sum of n copies of the multiplicative identity.
func (f *Field) FromInt(n int) Element {
	r := n % f.q
	if r < 0 {
		r += f.q
	}
	return Element(r)
}

// Zero returns the additive identity.
func (f *Field) Zero() Element { return 0 }

// One returns the multiplicative identity.
func (f *Field) One() Element { return 1 }

// Add returns a+b, coefficient-wise addition mod q. For q=2 this is the
// exclusive-or of the integer codings.
func (f *Field) Add(a, b Element) Element {
	da := toDigits(int(a), f.q, f.m)
	db := toDigits(int(b), f.q, f.m)
	for i := range da {
		da[i] = (da[i] + db[i]) % f.q
	}
	return Element(fromDigits(da, f.q))
}

// Neg returns the additive inverse of a.
func (f *Field) Neg(a Element) Element {
	da := toDigits(int(a), f.q, f.m)
	for i := range da {
		da[i] = (f.q - da[i]) % f.q
	}
	return Element(fromDigits(da, f.q))
}

// Sub returns a-b.
func (f *Field) Sub(a, b Element) Element {
	return f.Add(a, f.Neg(b))
}

// Multiply returns a*b: schoolbook product of the coefficient vectors
// followed by reduction modulo the field modulus.
func (f *Field) Multiply(a, b Element) Element {
	da := toDigits(int(a), f.q, f.m)
	db := toDigits(int(b), f.q, f.m)
	prod := make([]int, 2*f.m-1)
	for i, x := range da {
		if x == 0 {
			continue
		}
		for j, y := range db {
			prod[i+j] = (prod[i+j] + x*y) % f.q
		}
	}
	// reduce modulo the monic modulus polynomial
	for i := len(prod) - 1; i >= f.m; i-- {
		c := prod[i]
		if c == 0 {
			continue
		}
		for j := 0; j <= f.m; j++ {
			v := (prod[i-f.m+j] - c*f.mod[j]) % f.q
			if v < 0 {
				v += f.q
			}
			prod[i-f.m+j] = v
		}
	}
	return Element(fromDigits(prod[:f.m], f.q))
}

// Exp returns a^e for e >= 0 by repeated squaring.
func (f *Field) Exp(a Element, e int) Element {
	result := f.One()
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = f.Multiply(result, base)
		}
		base = f.Multiply(base, base)
		e >>= 1
	}
	return result
}

// Invert returns the multiplicative inverse a^(q^m-2). The zero element has
// no inverse.
func (f *Field) Invert(a Element) (Element, error) {
	if a == 0 {
		return 0, fmt.Errorf("%w: zero has no multiplicative inverse in %s", ErrDivisionByZero, f)
	}
	return f.Exp(a, f.order-2), nil
}

// RandomElement returns a uniformly random field element from crypto/rand.
func (f *Field) RandomElement() (Element, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(f.order)))
	if err != nil {
		return 0, err
	}
	return Element(v.Int64()), nil
}
