// Package VSS implements (k,n)-threshold Shamir sharing over the prime
// field Z_p with p the order of the bn256 pairing groups, extended with
// Feldman commitments: alongside the shares the dealer publishes
// C_j = g1^{a_j} for every polynomial coefficient, so each holder can
// check its share against the commitments before taking part in a
// reconstruction.
package VSS

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/fentec-project/bn256"
	"github.com/fentec-project/gofe/data"
	"github.com/fentec-project/gofe/sample"
)

// Share is one participant's share of the secret: the evaluation point
// Index and the polynomial value mod p.
type Share struct {
	Index int
	Value *big.Int
}

var errShares = errors.New("invalid shares")

// Split shares the secret among n participants with threshold k and
// returns the shares together with the k Feldman commitments. The secret
// must lie in [0, p).
func Split(secret *big.Int, n, k int) ([]Share, []*bn256.G1, error) {
	if k < 2 || k > n {
		return nil, nil, fmt.Errorf("invalid parameters n=%d k=%d", n, k)
	}
	if secret == nil || secret.Sign() < 0 || secret.Cmp(bn256.Order) >= 0 {
		return nil, nil, fmt.Errorf("secret not in Z_p")
	}

	// random coefficient vector with the secret as constant term
	sampler := sample.NewUniform(bn256.Order)
	coeffs, err := data.NewRandomVector(k, sampler)
	if err != nil {
		return nil, nil, err
	}
	coeffs[0] = new(big.Int).Set(secret)

	// evaluate at the points 1..n via the Vandermonde matrix
	mat := vandermonde(intRange(1, n), k)
	values, err := mat.MulVec(coeffs)
	if err != nil {
		return nil, nil, err
	}

	shares := make([]Share, n)
	for i, v := range values {
		shares[i] = Share{Index: i + 1, Value: new(big.Int).Mod(v, bn256.Order)}
	}
	commitments := make([]*bn256.G1, k)
	for j, a := range coeffs {
		commitments[j] = new(bn256.G1).ScalarBaseMult(new(big.Int).Mod(a, bn256.Order))
	}
	return shares, commitments, nil
}

// Verify checks a share against the published commitments:
// g1^value must equal prod_j C_j^(index^j).
func Verify(sh Share, commitments []*bn256.G1) bool {
	if sh.Value == nil || sh.Index < 1 || len(commitments) == 0 {
		return false
	}
	lhs := new(bn256.G1).ScalarBaseMult(new(big.Int).Mod(sh.Value, bn256.Order))
	rhs := new(bn256.G1).ScalarBaseMult(big.NewInt(0))
	x := big.NewInt(int64(sh.Index))
	for j, c := range commitments {
		exp := new(big.Int).Exp(x, big.NewInt(int64(j)), bn256.Order)
		rhs.Add(rhs, new(bn256.G1).ScalarMult(c, exp))
	}
	return bytes.Equal(lhs.Marshal(), rhs.Marshal())
}

// Reconstruct recovers the secret from k or more shares with distinct
// indices. The reconstruction weights are obtained by solving the
// transposed Vandermonde sub-matrix against the target vector
// (1, 0, ..., 0), so that the weighted sum of the share values is the
// constant term.
func Reconstruct(shares []Share, k int) (*big.Int, error) {
	if k < 2 {
		return nil, fmt.Errorf("invalid threshold k=%d", k)
	}
	picked := make([]Share, 0, k)
	seen := make(map[int]bool)
	for _, sh := range shares {
		if sh.Value == nil || sh.Index < 1 || seen[sh.Index] {
			continue
		}
		seen[sh.Index] = true
		picked = append(picked, sh)
		if len(picked) == k {
			break
		}
	}
	if len(picked) < k {
		return nil, fmt.Errorf("%w: %d distinct shares below threshold %d", errShares, len(picked), k)
	}

	xs := make([]int, k)
	for i, sh := range picked {
		xs[i] = sh.Index
	}
	sub := vandermonde(xs, k)

	target := make(data.Vector, k)
	target[0] = big.NewInt(1)
	for i := 1; i < k; i++ {
		target[i] = big.NewInt(0)
	}
	weights, err := data.GaussianEliminationSolver(sub.Transpose(), target, bn256.Order)
	if err != nil {
		return nil, fmt.Errorf("share system is not solvable: %w", err)
	}

	secret := big.NewInt(0)
	for i, w := range weights {
		term := new(big.Int).Mul(new(big.Int).Mod(w, bn256.Order), picked[i].Value)
		secret.Add(secret, term).Mod(secret, bn256.Order)
	}
	return secret, nil
}

func vandermonde(xs []int, cols int) data.Matrix {
	mat := make(data.Matrix, len(xs))
	for i, x := range xs {
		row := make(data.Vector, cols)
		xb := big.NewInt(int64(x))
		for j := 0; j < cols; j++ {
			row[j] = new(big.Int).Exp(xb, big.NewInt(int64(j)), bn256.Order)
		}
		mat[i] = row
	}
	return mat
}

func intRange(from, to int) []int {
	xs := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		xs = append(xs, i)
	}
	return xs
}
