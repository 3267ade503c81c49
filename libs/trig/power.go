package trig

import (
	"math"

	"github.com/beatoz/mixnum-go/types"
	"github.com/beatoz/mixnum-go/types/xerrors"
)

const (
	lnTerms  = 32
	expTerms = 32

	// bounds the halving/doubling in Exp and Ln; float64 needs at most ~1075
	maxScaleSteps = 1100
)

// Powi raises b to the integer power n by repeated multiplication.
// Powi(b, 0) is one and a negative n gives the reciprocal of Powi(b, -n).
func Powi[T types.Ops[T]](b T, n int) T {
	var z T
	if n == 0 {
		return z.One()
	}
	if n < 0 {
		// -(n+1) cannot overflow
		m := uint(-(n + 1)) + 1
		return z.One().Div(powu(b, m))
	}
	return powu(b, uint(n))
}

func powu[T types.Ops[T]](b T, n uint) T {
	r := b
	for i := uint(1); i < n; i++ {
		r = r.Mul(b)
	}
	return r
}

// Sign returns one for x >= 0 and minus one otherwise.
func Sign[T types.Ops[T]](x T) T {
	var z T
	if x.Cmp(z.Zero()) < 0 {
		return z.Zero().Sub(z.One())
	}
	return z.One()
}

// Exp returns e^x using Horner's method on the Taylor series:
// exp(x) ≈ 1 + x/1*(1 + x/2*(1 + ... (1 + x/N))).
// Arguments above one are halved first and the result squared back, and a
// negative argument is evaluated as 1/exp(-x).
func Exp[T types.Real[T]](x T) T {
	var z T
	zero, one, two := z.Zero(), z.One(), z.FromInt32(2)
	if x.IsNegative() {
		return one.Div(Exp(zero.Sub(x)))
	}

	k := 0
	for ; x.Cmp(one) > 0 && k < maxScaleSteps; k++ {
		x = x.Div(two)
	}

	s := one
	for n := expTerms; n > 0; n-- {
		s = one.Add(x.Div(z.FromInt32(int32(n))).Mul(s))
	}
	for ; k > 0; k-- {
		s = s.Mul(s)
	}
	return s
}

// Ln returns ln(x) for x > 0 using the identity
// ln(x) = 2 * ( t + t^3/3 + t^5/5 + ... ), where t = (x-1)/(x+1),
// after factoring x = m·2^k with m in [1, 2).
func Ln[T types.Real[T]](x T) (T, error) {
	var z T
	zero, one, two := z.Zero(), z.One(), z.FromInt32(2)
	if x.Cmp(zero) <= 0 {
		return zero, xerrors.ErrNonPositiveLn
	}

	k := 0
	for i := 0; x.Cmp(two) >= 0 && i < maxScaleSteps; i++ {
		x = x.Div(two)
		k++
	}
	for i := 0; x.Cmp(one) < 0 && i < maxScaleSteps; i++ {
		x = x.Mul(two)
		k--
	}

	t := x.Sub(one).Div(x.Add(one))
	t2 := t.Mul(t)
	sum, term := t, t
	for n := 1; n < lnTerms; n++ {
		term = term.Mul(t2)
		sum = sum.Add(term.Div(z.FromInt32(int32(2*n + 1))))
	}
	sum = sum.Mul(two)

	ln2 := z.FromFloat64(math.Ln2)
	if k > 0 {
		sum = sum.Add(ln2.Mul(z.FromInt32(int32(k))))
	} else if k < 0 {
		sum = sum.Sub(ln2.Mul(z.FromInt32(int32(-k))))
	}
	return sum, nil
}

// Pow computes b^e = exp(e * ln(b)).
func Pow[T types.Real[T]](b, e T) (T, error) {
	var z T
	lnVal, err := Ln(b)
	if err != nil {
		return z.Zero(), err
	}
	return Exp(lnVal.Mul(e)), nil
}
