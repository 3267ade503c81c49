package trig

import (
	"github.com/beatoz/mixnum-go/types"
)

// minimax coefficients of atan(z) on [0, 1], Abramowitz & Stegun 4.4.47
const (
	atanC1 = 0.9998660
	atanC3 = -0.3302995
	atanC5 = 0.1801410
	atanC7 = -0.0851330
	atanC9 = 0.0208351
)

// atanUnit approximates atan(r) for r in [0, 1]. Error stays below 1e-5 rad.
func atanUnit[T types.Ops[T]](r T) T {
	var z T
	r2 := r.Mul(r)
	p := z.FromFloat64(atanC9)
	p = z.FromFloat64(atanC7).Add(r2.Mul(p))
	p = z.FromFloat64(atanC5).Add(r2.Mul(p))
	p = z.FromFloat64(atanC3).Add(r2.Mul(p))
	p = z.FromFloat64(atanC1).Add(r2.Mul(p))
	return r.Mul(p)
}

// Atan2 returns the angle of the point (x, y) in [-π, π).
//
// The octant is found from |y| against |x| and the two signs. The polynomial is
// always evaluated on the smaller-over-larger ratio, so its argument stays in
// [0, 1], and the octant then fixes the offset and sign. Atan2(0, 0) is 0.
func Atan2[T types.Signed[T]](y, x T) T {
	var z T
	zero := z.Zero()
	ax, ay := x.Abs(), y.Abs()
	if ax.Cmp(zero) == 0 && ay.Cmp(zero) == 0 {
		return zero
	}

	swapped := ay.Cmp(ax) > 0
	var a T
	if swapped {
		a = atanUnit(ax.Div(ay))
	} else {
		a = atanUnit(ay.Div(ax))
	}

	pi := z.Pi()
	if swapped {
		a = pi.Div(z.FromInt32(2)).Sub(a)
	}
	if x.IsNegative() {
		a = pi.Sub(a)
	}
	if y.IsNegative() {
		a = a.Neg()
	}
	if a.Cmp(pi) >= 0 {
		a = a.Sub(z.Tau())
	}
	return a
}

// Atan is Atan2(x, 1).
func Atan[T types.Signed[T]](x T) T {
	var z T
	return Atan2(x, z.One())
}
