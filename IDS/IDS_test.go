package IDS

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WXY1313/SMC/GF"
)

func newScheme(t *testing.T, n, k int) *Scheme {
	t.Helper()
	f, err := GF.NewField(2, 8)
	require.NoError(t, err)
	s, err := New(f, n, k)
	require.NoError(t, err)
	return s
}

func TestDisperseReconstruct(t *testing.T) {
	s := newScheme(t, 7, 3)

	data := make([]int, 15)
	for i := range data {
		data[i] = i
	}

	blocks, err := s.Disperse(data)
	require.NoError(t, err)
	require.Len(t, blocks, 5)
	for _, block := range blocks {
		require.Len(t, block, 7)
	}

	got, err := s.Reconstruct(blocks)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// any k fragments per block suffice
	partial := make([][]Share, len(blocks))
	for i, block := range blocks {
		partial[i] = []Share{block[1], block[4], block[6]}
	}
	got, err = s.Reconstruct(partial)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReconstructBWCorrectsCorruption(t *testing.T) {
	s := newScheme(t, 7, 3)

	data := []int{10, 20, 30, 40, 50, 60}
	blocks, err := s.Disperse(data)
	require.NoError(t, err)

	blocks[0][2].Y ^= 0x3C
	blocks[1][5].Y ^= 1

	got, err := s.ReconstructBW(blocks)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDisperseBadLength(t *testing.T) {
	s := newScheme(t, 7, 3)

	_, err := s.Disperse([]int{1, 2, 3, 4})
	assert.ErrorIs(t, err, GF.ErrDomain)
	_, err = s.Disperse(nil)
	assert.ErrorIs(t, err, GF.ErrDomain)
	_, err = s.Disperse([]int{1, 2, 300})
	assert.ErrorIs(t, err, GF.ErrDomain)
}

func TestReconstructTooFewFragments(t *testing.T) {
	s := newScheme(t, 7, 3)

	blocks, err := s.Disperse([]int{1, 2, 3})
	require.NoError(t, err)

	_, err = s.Reconstruct([][]Share{blocks[0][:2]})
	assert.ErrorIs(t, err, GF.ErrUnderdetermined)
}

func TestConfig(t *testing.T) {
	f, err := GF.NewField(2, 8)
	require.NoError(t, err)
	_, err = New(f, 3, 5)
	assert.ErrorIs(t, err, GF.ErrConfig)
	_, err = New(f, 7, 1)
	assert.ErrorIs(t, err, GF.ErrConfig)
}
