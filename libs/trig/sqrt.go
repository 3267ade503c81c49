package trig

import (
	"math"

	"github.com/beatoz/mixnum-go/types"
)

const (
	// NiirfIterations is the refinement count used by SqrtNIIRF.
	NiirfIterations = 2

	// float64 spans 4^-537 .. 4^512
	maxNormSteps = 600
)

// SqrtNIIRF is Niirf with the default two iterations.
// Relative error is below 5e-4 (about 1.3e-5 on float64).
func SqrtNIIRF[T types.Real[T]](x T) T {
	return Niirf(x, NiirfIterations)
}

// Niirf estimates sqrt(x) with the nonlinear IIR filter method.
//
// A negative input is negated first. The input is brought into [1/4, 1) by
// powers of four, seeded with y₀ = 0.666667·x + 0.354167 and refined with
//
//	y ← y + β(x)·(x − y²),  β(x) = 0.763x² − 1.5688x + 1.314
//
// before the power of two taken out is put back. The cost does not depend on
// the value, only on iterations and on how far x is from [1/4, 1).
func Niirf[T types.Real[T]](x T, iterations int) T {
	var z T
	zero := z.Zero()
	if x.IsNegative() {
		x = zero.Sub(x)
	}
	if f := x.Float64(); math.IsNaN(f) || math.IsInf(f, 0) {
		return x
	}
	if x.Cmp(zero) == 0 {
		return zero
	}

	one := z.One()
	two := z.FromInt32(2)
	four := z.FromInt32(4)
	quarter := one.Div(four)

	scale := one
	for i := 0; x.Cmp(one) >= 0 && i < maxNormSteps; i++ {
		x = x.Div(four)
		scale = scale.Mul(two)
	}
	for i := 0; x.Cmp(quarter) < 0 && i < maxNormSteps; i++ {
		x = x.Mul(four)
		scale = scale.Div(two)
	}

	c2 := z.FromFloat64(0.763)
	c1 := z.FromFloat64(1.5688)
	c0 := z.FromFloat64(1.314)
	// β is positive on [1/4, 1); summing the positive terms first keeps it
	// representable for unsigned providers
	beta := c2.Mul(x).Mul(x).Add(c0).Sub(c1.Mul(x))

	y := z.FromFloat64(0.666667).Mul(x).Add(z.FromFloat64(0.354167))
	for i := 0; i < iterations; i++ {
		y2 := y.Mul(y)
		if y2.Cmp(x) > 0 {
			y = y.Sub(beta.Mul(y2.Sub(x)))
		} else {
			y = y.Add(beta.Mul(x.Sub(y2)))
		}
	}
	return y.Mul(scale)
}
