package cplx

import (
	"github.com/beatoz/mixnum-go/types"
)

// Polar is mag·e^(i·ang). Values built by NewPolar keep the angle as given;
// everything that computes an angle returns it in [-π, π).
// Polar has no Add or Sub, convert to Cartesian for those.
type Polar[T types.Angular[T]] struct {
	mag T
	ang T
}

func NewPolar[T types.Angular[T]](mag, ang T) Polar[T] {
	return Polar[T]{mag: mag, ang: ang}
}

// NewPolarWrapped is NewPolar with the angle wrapped into [-π, π).
func NewPolarWrapped[T types.Angular[T]](mag, ang T) Polar[T] {
	return Polar[T]{mag: mag, ang: ang.WrapPhase()}
}

func (Polar[T]) FromCartesian(c Cartesian[T]) Polar[T] {
	return ToPolar(c)
}

func (p Polar[T]) ToCartesian() Cartesian[T] {
	return ToCartesian(p)
}

func (p Polar[T]) Mag() T { return p.mag }
func (p Polar[T]) Ang() T { return p.ang }

// Arg is Ang.
func (p Polar[T]) Arg() T { return p.ang }

// Mul is (m₁m₂)∠(θ₁+θ₂). A zero magnitude on either side gives the zero
// polar value.
func (p Polar[T]) Mul(o Polar[T]) Polar[T] {
	var z T
	if types.IsZero(p.mag) || types.IsZero(o.mag) {
		return Polar[T]{z.Zero(), z.Zero()}
	}
	return Polar[T]{p.mag.Mul(o.mag), p.ang.Add(o.ang).WrapPhase()}
}

// Div is (m₁/m₂)∠(θ₁-θ₂). A zero divisor saturates the magnitude and keeps
// the angle of p.
func (p Polar[T]) Div(o Polar[T]) Polar[T] {
	var z T
	if types.IsZero(o.mag) {
		return Polar[T]{z.MaxValue(), p.ang}
	}
	return Polar[T]{p.mag.Div(o.mag), p.ang.Sub(o.ang).WrapPhase()}
}

// MulCartesian converts c to polar form first.
func (p Polar[T]) MulCartesian(c Cartesian[T]) Polar[T] {
	return p.Mul(ToPolar(c))
}

func (p Polar[T]) MulScalar(s T) Polar[T] {
	return Polar[T]{p.mag.Mul(s), p.ang}
}

// DivScalar saturates the magnitude when s is zero.
func (p Polar[T]) DivScalar(s T) Polar[T] {
	var z T
	if types.IsZero(s) {
		return Polar[T]{z.MaxValue(), p.ang}
	}
	return Polar[T]{p.mag.Div(s), p.ang}
}

// Powi is mag^n∠(n·θ).
func (p Polar[T]) Powi(n int) Polar[T] {
	var z T
	if n == 0 {
		return Polar[T]{z.One(), z.Zero()}
	}
	return Polar[T]{p.mag.Powi(n), p.ang.Mul(z.FromInt64(int64(n))).WrapPhase()}
}

func (p Polar[T]) Conj() Polar[T] {
	return Polar[T]{p.mag, p.ang.Neg()}
}

// Abs is the magnitude on the positive real axis.
func (p Polar[T]) Abs() Polar[T] {
	var z T
	return Polar[T]{p.mag, z.Zero()}
}

// Canonical returns the same point with a non-negative magnitude and the
// angle in [-π, π).
func (p Polar[T]) Canonical() Polar[T] {
	var z T
	if p.mag.IsNegative() {
		return Polar[T]{p.mag.Neg(), p.ang.Add(z.Pi()).WrapPhase()}
	}
	return Polar[T]{p.mag, p.ang.WrapPhase()}
}

func (p Polar[T]) Equal(o Polar[T]) bool {
	return p.mag.Cmp(o.mag) == 0 && p.ang.Cmp(o.ang) == 0
}
