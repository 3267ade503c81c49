package cplx

import (
	"github.com/beatoz/mixnum-go/types"
)

// FromCartesian is implemented by complex representations that can be built
// from Cartesian components. It lets ConjAs return either form.
type FromCartesian[T types.Signed[T], C any] interface {
	FromCartesian(Cartesian[T]) C
}

// ToPolar is {Mag(c), atan2(im, re)}.
func ToPolar[T types.Angular[T]](c Cartesian[T]) Polar[T] {
	return Polar[T]{mag: Mag(c), ang: Arg(c)}
}

// ToCartesian is {mag·cos θ, mag·sin θ} with θ the wrapped angle.
func ToCartesian[T types.Angular[T]](p Polar[T]) Cartesian[T] {
	s, c := p.ang.WrapPhase().SinCos()
	return Cartesian[T]{p.mag.Mul(c), p.mag.Mul(s)}
}

// Mag is max(|re|,|im|)·sqrt(1 + (min/max)²).
func Mag[T types.Angular[T]](c Cartesian[T]) T {
	var z T
	hi, lo := c.Re.Abs(), c.Im.Abs()
	if hi.Cmp(lo) < 0 {
		hi, lo = lo, hi
	}
	if types.IsZero(lo) {
		return hi
	}
	r := lo.Div(hi)
	return hi.Mul(z.One().Add(r.Mul(r)).Sqrt())
}

func Arg[T types.Angular[T]](c Cartesian[T]) T {
	return c.Im.Atan2(c.Re)
}

// Abs is |c| on the real axis.
func Abs[T types.Angular[T]](c Cartesian[T]) Cartesian[T] {
	return FromReal(Mag(c))
}

// ConjAs conjugates c and returns it in the representation C.
func ConjAs[C FromCartesian[T, C], T types.Signed[T]](c Cartesian[T]) C {
	var z C
	return z.FromCartesian(c.Conj())
}

// MulPolar multiplies c by p after converting p to Cartesian form.
func MulPolar[T types.Angular[T]](c Cartesian[T], p Polar[T]) Cartesian[T] {
	return c.Mul(p.ToCartesian())
}

// Powi raises c to an integer power through the polar form.
// Powi(c, 0) is exactly one and Powi(c, 1) is c.
func Powi[T types.Angular[T]](c Cartesian[T], n int) Cartesian[T] {
	switch n {
	case 0:
		return One[T]()
	case 1:
		return c
	}
	return ToPolar(c).Powi(n).ToCartesian()
}

// Exp is e^re·(cos im + i·sin im).
func Exp[T interface {
	types.Angular[T]
	types.Exponential[T]
}](c Cartesian[T]) Cartesian[T] {
	return ToCartesian(Polar[T]{mag: c.Re.Exp(), ang: c.Im})
}

// The *Mixed functions take a scalar of another kind and convert it to T
// before the operation.

func AddMixed[T types.Signed[T], K types.Kind](c Cartesian[T], k K) Cartesian[T] {
	return c.AddScalar(types.From[T](k))
}

func SubMixed[T types.Signed[T], K types.Kind](c Cartesian[T], k K) Cartesian[T] {
	return c.SubScalar(types.From[T](k))
}

func MulMixed[T types.Signed[T], K types.Kind](c Cartesian[T], k K) Cartesian[T] {
	return c.MulScalar(types.From[T](k))
}

func DivMixed[T types.Signed[T], K types.Kind](c Cartesian[T], k K) Cartesian[T] {
	return c.DivScalar(types.From[T](k))
}

// ScaleBy multiplies c by a scalar of any other provider.
func ScaleBy[T types.Signed[T], U types.Converter[U]](c Cartesian[T], u U) Cartesian[T] {
	return c.MulScalar(types.Convert[T](u))
}

// Convert moves c to another scalar provider, component by component.
func Convert[T2 types.Signed[T2], T1 types.Signed[T1]](c Cartesian[T1]) Cartesian[T2] {
	return Cartesian[T2]{types.Convert[T2](c.Re), types.Convert[T2](c.Im)}
}
