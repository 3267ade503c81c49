// Package types declares the capability contracts a scalar must satisfy to be
// used by the generic kernels in libs/trig and the complex algebra in cplx.
//
// Go has no operator overloading, so every operation is a method. Capabilities
// that do not depend on a value (zero, one, pi, limits, conversions from the
// canonical kinds) are methods too and are called on the zero value:
//
//	var z T
//	half := z.One().Div(z.FromInt32(2))
//
// Each contract is a small interface parameterized by the scalar type itself.
// Generic code asks for exactly the set it uses, so an unsigned scalar is never
// forced to implement negation and an ordered field without trigonometry is
// still a valid Real.
package types

type Zeroer[T any] interface {
	Zero() T
}

type Oner[T any] interface {
	One() T
}

// Consts is the identity and constant capability. Pi and Tau are expressed in
// the receiver's own representation.
type Consts[T any] interface {
	Zeroer[T]
	Oner[T]
	Pi() T
	Tau() T
}

// Converter converts to and from the canonical host kinds.
// Narrowing conversions are lossy; how they round or clamp is up to the provider.
type Converter[T any] interface {
	FromInt32(int32) T
	FromInt64(int64) T
	FromUint32(uint32) T
	FromUint64(uint64) T
	FromFloat32(float32) T
	FromFloat64(float64) T

	Int32() int32
	Int64() int64
	Uint32() uint32
	Uint64() uint64
	Float32() float32
	Float64() float64
}

// Ops is the arithmetic closure. Cmp returns -1, 0 or +1; unordered values
// (NaN) compare as 0.
type Ops[T any] interface {
	Consts[T]
	Converter[T]
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Cmp(T) int
}

// Real adds the representable range and sign queries.
// Sign returns one or minus one, zero counts as positive.
// IsPositive and IsNegative are strict: zero is neither.
type Real[T any] interface {
	Ops[T]
	MaxValue() T
	MinValue() T
	Sign() T
	IsPositive() bool
	IsNegative() bool
}

// Abser is the absolute value. Unsigned providers return the receiver.
type Abser[T any] interface {
	Abs() T
}

// Powier is the integer power.
type Powier[T any] interface {
	Powi(n int) T
}

type Negater[T any] interface {
	Neg() T
}

type Number[T any] interface {
	Real[T]
	Abser[T]
	Powier[T]
}

// Signed marks a representation that has negation.
type Signed[T any] interface {
	Number[T]
	Negater[T]
}

type Sine[T any] interface {
	Sin() T
	SinCos() (T, T)
}

type Cosine[T any] interface {
	Cos() T
}

// Arctangent computes atan2(y, x) with y as the receiver, in [-π, π).
type Arctangent[T any] interface {
	Atan2(x T) T
}

type Trigonometry[T any] interface {
	Sine[T]
	Cosine[T]
	Arctangent[T]
}

type Rooter[T any] interface {
	Sqrt() T
}

// PhaseWrapper maps an angle into [-π, π).
type PhaseWrapper[T any] interface {
	WrapPhase() T
}

type Exponential[T any] interface {
	Exp() T
}

// Angular is everything the polar conversions need.
type Angular[T any] interface {
	Signed[T]
	Trigonometry[T]
	Rooter[T]
	PhaseWrapper[T]
}
