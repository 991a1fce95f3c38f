package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

// calcAll computes F for each index. ok is false as soon as one index is
// rejected, so the property fails and gopter reports the generated input.
func calcAll(calc Calculator, indices ...int) (values []uint64, ok bool) {
	values = make([]uint64, len(indices))
	for i, n := range indices {
		v, err := calc.Calculate(n)
		if err != nil {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}

// TestRecurrence_PropertyBased checks F(n) = F(n-1) + F(n-2) for every
// generated n in [2, MaxIndex].
func TestRecurrence_PropertyBased(t *testing.T) {
	properties := newProperties()
	calc := NewLinear()

	properties.Property("F(n) = F(n-1) + F(n-2)", prop.ForAll(
		func(n int) bool {
			f, ok := calcAll(calc, n, n-1, n-2)
			return ok && f[0] == f[1]+f[2]
		},
		gen.IntRange(2, MaxIndex),
	))

	properties.TestingRun(t)
}

// TestMonotonicity_PropertyBased checks F(n+1) >= F(n).
func TestMonotonicity_PropertyBased(t *testing.T) {
	properties := newProperties()
	calc := NewLinear()

	properties.Property("F(n+1) >= F(n)", prop.ForAll(
		func(n int) bool {
			f, ok := calcAll(calc, n+1, n)
			return ok && f[0] >= f[1]
		},
		gen.IntRange(0, MaxIndex-1),
	))

	properties.TestingRun(t)
}

// TestIdempotence_PropertyBased checks that repeated calls agree, including
// when other indices are computed in between.
func TestIdempotence_PropertyBased(t *testing.T) {
	properties := newProperties()
	calc := NewLinear()

	properties.Property("repeated calls return the same value", prop.ForAll(
		func(n, other int) bool {
			f, ok := calcAll(calc, n, other, n)
			return ok && f[0] == f[2]
		},
		gen.IntRange(0, MaxIndex),
		gen.IntRange(0, MaxIndex),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased verifies Cassini's Identity:
//
//	F(n-1) * F(n+1) - F(n)² = (-1)ⁿ
//
// The products overflow uint64, so the check is done in math/big.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	properties := newProperties()
	calc := NewLinear()

	properties.Property("satisfies Cassini's Identity", prop.ForAll(
		func(n int) bool {
			f, ok := calcAll(calc, n-1, n, n+1)
			if !ok {
				return false
			}
			fnMinus1 := new(big.Int).SetUint64(f[0])
			fn := new(big.Int).SetUint64(f[1])
			fnPlus1 := new(big.Int).SetUint64(f[2])

			leftSide := new(big.Int).Mul(fnMinus1, fnPlus1)
			leftSide.Sub(leftSide, new(big.Int).Mul(fn, fn))

			rightSide := big.NewInt(1)
			if n%2 != 0 {
				rightSide.Neg(rightSide)
			}
			return leftSide.Cmp(rightSide) == 0
		},
		gen.IntRange(1, MaxIndex-1),
	))

	properties.TestingRun(t)
}

func TestCalcAllStopsAtRejectedIndex(t *testing.T) {
	t.Parallel()
	calc := NewLinear()

	if values, ok := calcAll(calc, 10, 11); !ok || values[0] != 55 || values[1] != 89 {
		t.Errorf("calcAll(10, 11) = %v, %v; want [55 89], true", values, ok)
	}
	if _, ok := calcAll(calc, 5, -1); ok {
		t.Error("calcAll should report a rejected index instead of failing the test")
	}
}

// TestOutOfRange_PropertyBased checks that every index outside the supported
// range is rejected.
func TestOutOfRange_PropertyBased(t *testing.T) {
	properties := newProperties()
	calc := NewLinear()

	properties.Property("negative indices are rejected", prop.ForAll(
		func(n int) bool {
			_, err := calc.Calculate(n)
			return err != nil
		},
		gen.IntRange(-1_000_000, -1),
	))
	properties.Property("indices above MaxIndex are rejected", prop.ForAll(
		func(n int) bool {
			_, err := calc.Calculate(n)
			return err != nil
		},
		gen.IntRange(MaxIndex+1, 1_000_000),
	))

	properties.TestingRun(t)
}
