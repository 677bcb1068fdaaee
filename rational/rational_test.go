package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woji/linalg/rational"
)

// mustNew builds a rational or aborts the test.
func mustNew(t *testing.T, num, den int64) rational.Rational {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err, "New(%d,%d) must construct", num, den)

	return r
}

func TestNew_Constructs(t *testing.T) {
	r := mustNew(t, 1, 2)
	assert.Equal(t, int64(1), r.Num(), "numerator")
	assert.Equal(t, int64(2), r.Den(), "denominator")
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator, "den=0 must error")
}

func TestFromInt(t *testing.T) {
	r := rational.FromInt(10)
	assert.Equal(t, int64(10), r.Num())
	assert.Equal(t, int64(1), r.Den())
}

func TestNew_ReducesToLowestTerms(t *testing.T) {
	for _, tc := range []struct {
		name             string
		num, den         int64
		wantNum, wantDen int64
	}{
		{"10/2", 10, 2, 5, 1},
		{"4/6", 4, 6, 2, 3},
		{"0/7", 0, 7, 0, 1},
		{"neg-den", 1, -2, -1, 2},
		{"both-neg", -3, -9, 1, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := mustNew(t, tc.num, tc.den)
			assert.Equal(t, tc.wantNum, r.Num(), "numerator")
			assert.Equal(t, tc.wantDen, r.Den(), "denominator")
		})
	}
}

func TestMul(t *testing.T) {
	prod := mustNew(t, 1, 5).Mul(mustNew(t, 1, 2))
	assert.True(t, prod.Eq(mustNew(t, 1, 10)), "1/5 * 1/2 = 1/10")

	prod = mustNew(t, 5, 2).Mul(mustNew(t, 3, 7))
	assert.True(t, prod.Eq(mustNew(t, 15, 14)), "5/2 * 3/7 = 15/14")

	prod = mustNew(t, 1, 5).MulInt(2)
	assert.True(t, prod.Eq(mustNew(t, 2, 5)), "1/5 * 2 = 2/5")

	prod = mustNew(t, 7, 3).MulInt(2)
	assert.True(t, prod.Eq(mustNew(t, 14, 3)), "7/3 * 2 = 14/3")
}

func TestDiv(t *testing.T) {
	quot, err := mustNew(t, 3, 2).Div(mustNew(t, 2, 7))
	require.NoError(t, err)
	assert.True(t, quot.Eq(mustNew(t, 21, 4)), "3/2 ÷ 2/7 = 21/4")

	quot, err = quot.DivInt(2)
	require.NoError(t, err)
	assert.True(t, quot.Eq(mustNew(t, 21, 8)), "21/4 ÷ 2 = 21/8")

	quot, err = mustNew(t, 3, 2).DivInt(4)
	require.NoError(t, err)
	assert.True(t, quot.Eq(mustNew(t, 3, 8)), "3/2 ÷ 4 = 3/8")
}

func TestDiv_ByZero(t *testing.T) {
	zero := rational.FromInt(0)

	_, err := mustNew(t, 3, 2).Div(zero)
	assert.ErrorIs(t, err, rational.ErrDivideByZero, "Div by 0 must error")

	_, err = mustNew(t, 3, 2).DivInt(0)
	assert.ErrorIs(t, err, rational.ErrDivideByZero, "DivInt by 0 must error")

	_, err = zero.Inv()
	assert.ErrorIs(t, err, rational.ErrDivideByZero, "Inv of 0 must error")
}

func TestAdd(t *testing.T) {
	sum := mustNew(t, 5, 7).Add(mustNew(t, 2, 3))
	assert.True(t, sum.Eq(mustNew(t, 29, 21)), "5/7 + 2/3 = 29/21")

	sum = mustNew(t, 5, 7).AddInt(2)
	assert.True(t, sum.Eq(mustNew(t, 19, 7)), "5/7 + 2 = 19/7")

	sum = mustNew(t, 2, 3).AddInt(2)
	assert.True(t, sum.Eq(mustNew(t, 8, 3)), "2/3 + 2 = 8/3")
}

func TestSubNeg(t *testing.T) {
	diff := mustNew(t, 1, 2).Sub(mustNew(t, 1, 3))
	assert.True(t, diff.Eq(mustNew(t, 1, 6)), "1/2 - 1/3 = 1/6")

	neg := mustNew(t, 1, 2).Neg()
	assert.True(t, neg.Eq(mustNew(t, -1, 2)), "-(1/2) = -1/2")
	assert.True(t, neg.Add(mustNew(t, 1, 2)).Eq(rational.FromInt(0)), "r + (-r) = 0")
}

func TestInv(t *testing.T) {
	inv, err := mustNew(t, 3, 4).Inv()
	require.NoError(t, err)
	assert.True(t, inv.Eq(mustNew(t, 4, 3)), "(3/4)^-1 = 4/3")

	inv, err = mustNew(t, -2, 5).Inv()
	require.NoError(t, err)
	assert.True(t, inv.Eq(mustNew(t, -5, 2)), "(-2/5)^-1 = -5/2")
}

func TestEq(t *testing.T) {
	r1 := mustNew(t, 1, 2)
	r2 := mustNew(t, 5, 8)
	r3 := mustNew(t, 2, 4) // reduces to 1/2

	assert.False(t, r1.Eq(r2))
	assert.True(t, r1.Eq(r3), "2/4 reduces to 1/2")
}

func TestIdentities(t *testing.T) {
	var r rational.Rational // identities are callable on the zero value

	assert.True(t, r.Zero().Eq(rational.FromInt(0)))
	assert.True(t, r.One().Eq(rational.FromInt(1)))

	half := mustNew(t, 1, 2)
	assert.True(t, half.Add(r.Zero()).Eq(half), "r + 0 = r")
	assert.True(t, half.Mul(r.One()).Eq(half), "r * 1 = r")
}

func TestString(t *testing.T) {
	assert.Equal(t, "1/2", mustNew(t, 1, 2).String())
	assert.Equal(t, "5", mustNew(t, 10, 2).String(), "whole values drop the denominator")
	assert.Equal(t, "-1/2", mustNew(t, 1, -2).String(), "sign rides the numerator")
}
