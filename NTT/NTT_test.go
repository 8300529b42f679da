package NTT

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WXY1313/SMC/GF"
)

// impulse vector: k ones followed by zeros, as in the reference test set
func impulse(n, k int) []GF.Element {
	a := make([]GF.Element, n)
	for i := 0; i < k; i++ {
		a[i] = 1
	}
	return a
}

func roundTrip(t *testing.T, f *GF.Field, a []GF.Element) {
	t.Helper()

	slow, err := TransformSlow(f, a)
	require.NoError(t, err)
	fast, err := Transform(f, a)
	require.NoError(t, err)
	assert.Equal(t, slow, fast, "fast and slow transforms disagree")

	back, err := InverseSlow(f, slow)
	require.NoError(t, err)
	assert.Equal(t, a, back)

	back, err = Inverse(f, fast)
	require.NoError(t, err)
	assert.Equal(t, a, back)
}

func TestTransformGF7(t *testing.T) {
	f, err := GF.NewField(7, 1)
	require.NoError(t, err)
	roundTrip(t, f, impulse(6, 3))
}

func TestTransformGF257(t *testing.T) {
	f, err := GF.NewField(257, 1)
	require.NoError(t, err)
	roundTrip(t, f, impulse(4, 3))
	roundTrip(t, f, impulse(16, 9))
	roundTrip(t, f, []GF.Element{5, 0, 250, 13})
}

func TestTransformGF256(t *testing.T) {
	f, err := GF.NewField(2, 8)
	require.NoError(t, err)
	roundTrip(t, f, impulse(15, 7))
	roundTrip(t, f, impulse(17, 5))
}

func TestNthRoot(t *testing.T) {
	f, err := GF.NewField(257, 1)
	require.NoError(t, err)

	w, err := NthRoot(f, 16)
	require.NoError(t, err)
	assert.Equal(t, f.One(), f.Exp(w, 16))
	assert.NotEqual(t, f.One(), f.Exp(w, 8))

	// 257-1 = 256, no cube roots of unity
	_, err = NthRoot(f, 3)
	assert.ErrorIs(t, err, GF.ErrDomain)
}

func TestTransformSizeWithoutRoot(t *testing.T) {
	f, err := GF.NewField(2, 8)
	require.NoError(t, err)

	// 255 = 3*5*17 has no factor 4
	_, err = Transform(f, impulse(4, 2))
	assert.ErrorIs(t, err, GF.ErrDomain)
}

func TestTransformSizeOne(t *testing.T) {
	f, err := GF.NewField(7, 1)
	require.NoError(t, err)

	out, err := Transform(f, []GF.Element{5})
	require.NoError(t, err)
	assert.Equal(t, []GF.Element{5}, out)
}
