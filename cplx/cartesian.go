// Package cplx is the complex number algebra over any scalar that satisfies
// the contracts in package types.
//
// Cartesian holds re + im·i and needs only a signed scalar. Polar holds
// mag·e^(i·ang) and needs trigonometry, so it is restricted to types.Angular.
// Both are plain values; every operation returns a new value except the
// *Assign methods, which update their receiver.
//
// Division by a zero scalar or a zero divisor never fails: the result
// saturates to the scalar's MaxValue. DivChecked reports the condition instead.
package cplx

import (
	"github.com/beatoz/mixnum-go/types"
	"github.com/beatoz/mixnum-go/types/xerrors"
)

type Cartesian[T types.Signed[T]] struct {
	Re T
	Im T
}

func NewCartesian[T types.Signed[T]](re, im T) Cartesian[T] {
	return Cartesian[T]{Re: re, Im: im}
}

func Zero[T types.Signed[T]]() Cartesian[T] {
	var z T
	return Cartesian[T]{z.Zero(), z.Zero()}
}

func One[T types.Signed[T]]() Cartesian[T] {
	var z T
	return Cartesian[T]{z.One(), z.Zero()}
}

func FromReal[T types.Signed[T]](re T) Cartesian[T] {
	var z T
	return Cartesian[T]{re, z.Zero()}
}

// FromNative reads the two components of a Go complex value.
func FromNative[T types.Signed[T], C complex64 | complex128](c C) Cartesian[T] {
	var z T
	v := complex128(c)
	return Cartesian[T]{z.FromFloat64(real(v)), z.FromFloat64(imag(v))}
}

// FromCartesian implements FromCartesian for Cartesian itself.
func (Cartesian[T]) FromCartesian(c Cartesian[T]) Cartesian[T] {
	return c
}

func (c Cartesian[T]) saturated() Cartesian[T] {
	var z T
	return Cartesian[T]{z.MaxValue(), z.MaxValue()}
}

func (c Cartesian[T]) Add(o Cartesian[T]) Cartesian[T] {
	return Cartesian[T]{c.Re.Add(o.Re), c.Im.Add(o.Im)}
}

func (c Cartesian[T]) Sub(o Cartesian[T]) Cartesian[T] {
	return Cartesian[T]{c.Re.Sub(o.Re), c.Im.Sub(o.Im)}
}

// Mul is (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (c Cartesian[T]) Mul(o Cartesian[T]) Cartesian[T] {
	return Cartesian[T]{
		Re: c.Re.Mul(o.Re).Sub(c.Im.Mul(o.Im)),
		Im: c.Re.Mul(o.Im).Add(c.Im.Mul(o.Re)),
	}
}

// Norm is re² + im², the squared magnitude. It saturates on fixed-point
// scalars once |c| exceeds sqrt(MaxValue); Mag does not.
func (c Cartesian[T]) Norm() T {
	return c.Re.Mul(c.Re).Add(c.Im.Mul(c.Im))
}

// Div is (a+bi)/(c+di) by Smith's method: the divisor is scaled by its
// larger component, so no intermediate squares the divisor.
// Only a divisor with both components zero saturates.
func (c Cartesian[T]) Div(o Cartesian[T]) Cartesian[T] {
	q, err := c.DivChecked(o)
	if err != nil {
		return c.saturated()
	}
	return q
}

// DivChecked is Div returning xerrors.ErrDivideByZero instead of saturating.
func (c Cartesian[T]) DivChecked(o Cartesian[T]) (Cartesian[T], error) {
	if o.IsZero() {
		return Cartesian[T]{}, xerrors.ErrDivideByZero
	}
	if o.Re.Abs().Cmp(o.Im.Abs()) >= 0 {
		r := o.Im.Div(o.Re)
		d := o.Re.Add(o.Im.Mul(r))
		return Cartesian[T]{
			Re: c.Re.Add(c.Im.Mul(r)).Div(d),
			Im: c.Im.Sub(c.Re.Mul(r)).Div(d),
		}, nil
	}
	r := o.Re.Div(o.Im)
	d := o.Im.Add(o.Re.Mul(r))
	return Cartesian[T]{
		Re: c.Re.Mul(r).Add(c.Im).Div(d),
		Im: c.Im.Mul(r).Sub(c.Re).Div(d),
	}, nil
}

func (c Cartesian[T]) AddScalar(s T) Cartesian[T] {
	return Cartesian[T]{c.Re.Add(s), c.Im}
}

func (c Cartesian[T]) SubScalar(s T) Cartesian[T] {
	return Cartesian[T]{c.Re.Sub(s), c.Im}
}

func (c Cartesian[T]) MulScalar(s T) Cartesian[T] {
	return Cartesian[T]{c.Re.Mul(s), c.Im.Mul(s)}
}

// DivScalar saturates both components when s is zero.
func (c Cartesian[T]) DivScalar(s T) Cartesian[T] {
	if types.IsZero(s) {
		return c.saturated()
	}
	return Cartesian[T]{c.Re.Div(s), c.Im.Div(s)}
}

func (c *Cartesian[T]) AddAssign(o Cartesian[T]) { *c = c.Add(o) }
func (c *Cartesian[T]) SubAssign(o Cartesian[T]) { *c = c.Sub(o) }
func (c *Cartesian[T]) MulAssign(o Cartesian[T]) { *c = c.Mul(o) }
func (c *Cartesian[T]) DivAssign(o Cartesian[T]) { *c = c.Div(o) }

func (c Cartesian[T]) AddNative(o complex128) Cartesian[T] { return c.Add(FromNative[T](o)) }
func (c Cartesian[T]) SubNative(o complex128) Cartesian[T] { return c.Sub(FromNative[T](o)) }
func (c Cartesian[T]) MulNative(o complex128) Cartesian[T] { return c.Mul(FromNative[T](o)) }
func (c Cartesian[T]) DivNative(o complex128) Cartesian[T] { return c.Div(FromNative[T](o)) }

func (c Cartesian[T]) Complex128() complex128 {
	return complex(c.Re.Float64(), c.Im.Float64())
}

func (c Cartesian[T]) Complex64() complex64 {
	return complex(c.Re.Float32(), c.Im.Float32())
}

func (c Cartesian[T]) Conj() Cartesian[T] {
	return Cartesian[T]{c.Re, c.Im.Neg()}
}

func (c Cartesian[T]) Neg() Cartesian[T] {
	return Cartesian[T]{c.Re.Neg(), c.Im.Neg()}
}

func (c Cartesian[T]) Equal(o Cartesian[T]) bool {
	return c.Re.Cmp(o.Re) == 0 && c.Im.Cmp(o.Im) == 0
}

func (c Cartesian[T]) IsZero() bool {
	return types.IsZero(c.Re) && types.IsZero(c.Im)
}
