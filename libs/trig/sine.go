package trig

import (
	"github.com/beatoz/mixnum-go/types"
)

// Sin evaluates the ninth order Taylor polynomial
//
//	sin(x) ≈ x − x³/6 + x⁵/120 − x⁷/5040 + x⁹/362880
//
// in nested form x·(1 − x²/6·(1 − x²/20·(1 − x²/42·(1 − x²/72)))), which keeps
// every intermediate below one in magnitude. The input is wrapped to [-π, π)
// and reflected into [-π/2, π/2] before evaluation. Worst case error is about
// 4e-6 plus the rounding of the representation.
func Sin[T types.Signed[T]](x T) T {
	var z T
	x = WrapPhase(x)

	pi := z.Pi()
	halfPi := pi.Div(z.FromInt32(2))
	if x.Cmp(halfPi.Neg()) < 0 {
		x = pi.Neg().Sub(x)
	} else if x.Cmp(halfPi) > 0 {
		x = pi.Sub(x)
	}

	one := z.One()
	x2 := x.Mul(x)
	s := one.Sub(x2.Div(z.FromInt32(72)))
	s = one.Sub(x2.Div(z.FromInt32(42)).Mul(s))
	s = one.Sub(x2.Div(z.FromInt32(20)).Mul(s))
	s = one.Sub(x2.Div(z.FromInt32(6)).Mul(s))
	return x.Mul(s)
}

// Cos is Sin shifted by π/2, wrapped before evaluation.
func Cos[T types.Signed[T]](x T) T {
	var z T
	halfPi := z.Pi().Div(z.FromInt32(2))
	return Sin(WrapPhase(x.Add(halfPi)))
}

func SinCos[T types.Signed[T]](x T) (T, T) {
	return Sin(x), Cos(x)
}

// Tan is Sin/Cos. Where the cosine vanishes the division follows the
// provider's own division-by-zero rule.
func Tan[T types.Signed[T]](x T) T {
	s, c := SinCos(x)
	return s.Div(c)
}
