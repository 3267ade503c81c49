// Package backend puts every scalar provider behind one float64-facing
// interface so the CLI and the accuracy harness can pick a provider by name.
//
// Inputs are converted into the provider's representation, the kernel from
// libs/trig runs there, and the result is converted back. Providers without
// negation only expose the kernels that make sense on [0, ∞).
package backend

import (
	"math"
	"sort"
	"strings"

	"github.com/beatoz/mixnum-go/libs/fxnum"
	"github.com/beatoz/mixnum-go/libs/hostf"
	"github.com/beatoz/mixnum-go/libs/qfmt"
	"github.com/beatoz/mixnum-go/libs/trig"
	"github.com/beatoz/mixnum-go/libs/uqnum"
	"github.com/beatoz/mixnum-go/types"
	"github.com/beatoz/mixnum-go/types/xerrors"
)

type Kernel string

const (
	KernelSin   Kernel = "sin"
	KernelCos   Kernel = "cos"
	KernelWrap  Kernel = "wrap"
	KernelAtan2 Kernel = "atan2"
	KernelSqrt  Kernel = "sqrt"
	KernelNiirf Kernel = "niirf"
	KernelExp   Kernel = "exp"
	KernelPowi  Kernel = "powi"
)

// AllKernels is in display order.
var AllKernels = []Kernel{
	KernelSin, KernelCos, KernelWrap, KernelAtan2,
	KernelSqrt, KernelNiirf, KernelExp, KernelPowi,
}

var signedOnly = map[Kernel]bool{
	KernelSin:   true,
	KernelCos:   true,
	KernelWrap:  true,
	KernelAtan2: true,
}

// MaxCount bounds the integer count of niirf and powi, whose cost is linear
// in it.
const MaxCount = 1 << 16

// Arity is the number of float64 arguments a kernel reads. The second
// argument of niirf and powi is an integer count.
func (k Kernel) Arity() int {
	switch k {
	case KernelAtan2, KernelNiirf, KernelPowi:
		return 2
	}
	return 1
}

func ParseKernel(s string) (Kernel, error) {
	k := Kernel(strings.ToLower(s))
	for _, known := range AllKernels {
		if k == known {
			return k, nil
		}
	}
	return "", xerrors.ErrUnknownKernel.Wrapf("%q", s)
}

type Backend interface {
	Name() string
	// Signed reports whether the provider has negation, trigonometry and
	// the complex algebra.
	Signed() bool
	Kernels() []Kernel
	// Quantize returns v as the provider stores it.
	Quantize(v float64) float64
	Eval(k Kernel, args ...float64) (float64, error)
	// Loop returns a function that runs k n times on the converted args.
	Loop(k Kernel, args ...float64) (func(n int), error)
	Complex(op ComplexOp, a, b complex128) (ComplexValue, error)
}

type operands[T any] struct {
	x, y T
	n    int
}

type kernelFunc[T any] func(operands[T]) T

type scalar[T types.Number[T]] struct {
	name    string
	signed  bool
	lookup  func(Kernel) (kernelFunc[T], error)
	complex func(ComplexOp, complex128, complex128) (ComplexValue, error)
}

func newUnsigned[T types.Number[T]](name string) *scalar[T] {
	return &scalar[T]{
		name:   name,
		lookup: numberKernel[T],
	}
}

func newSigned[T interface {
	types.Angular[T]
	types.Exponential[T]
}](name string) *scalar[T] {
	return &scalar[T]{
		name:    name,
		signed:  true,
		lookup:  signedKernel[T],
		complex: complexOp[T],
	}
}

func numberKernel[T types.Number[T]](k Kernel) (kernelFunc[T], error) {
	switch k {
	case KernelSqrt:
		return func(o operands[T]) T { return trig.SqrtNIIRF(o.x) }, nil
	case KernelNiirf:
		return func(o operands[T]) T { return trig.Niirf(o.x, o.n) }, nil
	case KernelExp:
		return func(o operands[T]) T { return trig.Exp(o.x) }, nil
	case KernelPowi:
		return func(o operands[T]) T { return trig.Powi(o.x, o.n) }, nil
	}
	return nil, xerrors.ErrUnknownKernel.Wrapf("%q", k)
}

func signedKernel[T types.Angular[T]](k Kernel) (kernelFunc[T], error) {
	switch k {
	case KernelSin:
		return func(o operands[T]) T { return trig.Sin(o.x) }, nil
	case KernelCos:
		return func(o operands[T]) T { return trig.Cos(o.x) }, nil
	case KernelWrap:
		return func(o operands[T]) T { return trig.WrapPhase(o.x) }, nil
	case KernelAtan2:
		return func(o operands[T]) T { return trig.Atan2(o.x, o.y) }, nil
	}
	return numberKernel[T](k)
}

func (s *scalar[T]) Name() string { return s.name }
func (s *scalar[T]) Signed() bool { return s.signed }

func (s *scalar[T]) Kernels() []Kernel {
	var ks []Kernel
	for _, k := range AllKernels {
		if s.signed || !signedOnly[k] {
			ks = append(ks, k)
		}
	}
	return ks
}

func (s *scalar[T]) Quantize(v float64) float64 {
	var z T
	return z.FromFloat64(v).Float64()
}

func (s *scalar[T]) prepare(k Kernel, args []float64) (kernelFunc[T], operands[T], error) {
	var (
		z  T
		op operands[T]
	)
	if !s.signed && signedOnly[k] {
		return nil, op, xerrors.ErrUnknownKernel.Wrapf("%q is not available on %s", k, s.name)
	}
	fn, err := s.lookup(k)
	if err != nil {
		return nil, op, err
	}
	if len(args) != k.Arity() {
		return nil, op, xerrors.ErrInvalidArgument.Wrapf("%s takes %d argument(s), got %d", k, k.Arity(), len(args))
	}
	op.x = z.FromFloat64(args[0])
	if len(args) > 1 {
		op.y = z.FromFloat64(args[1])
	}
	if k == KernelNiirf || k == KernelPowi {
		if op.n, err = count(k, args[1]); err != nil {
			return nil, op, err
		}
	}
	return fn, op, nil
}

// count reads v as the integer count of k. Iterations of niirf cannot be
// negative; powi accepts -MaxCount..MaxCount.
func count(k Kernel, v float64) (int, error) {
	lo := -MaxCount
	if k == KernelNiirf {
		lo = 0
	}
	if math.IsNaN(v) || v != math.Trunc(v) || v < float64(lo) || v > MaxCount {
		return 0, xerrors.ErrInvalidArgument.Wrapf("%s count must be an integer in [%d, %d], got %v", k, lo, MaxCount, v)
	}
	return int(v), nil
}

func (s *scalar[T]) Eval(k Kernel, args ...float64) (float64, error) {
	fn, op, err := s.prepare(k, args)
	if err != nil {
		return 0, err
	}
	return fn(op).Float64(), nil
}

func (s *scalar[T]) Loop(k Kernel, args ...float64) (func(n int), error) {
	fn, op, err := s.prepare(k, args)
	if err != nil {
		return nil, err
	}
	return func(n int) {
		var r T
		for i := 0; i < n; i++ {
			r = fn(op)
		}
		sink = r
	}, nil
}

// sink keeps timed loops from being optimized away.
var sink any

func (s *scalar[T]) Complex(op ComplexOp, a, b complex128) (ComplexValue, error) {
	if s.complex == nil {
		return ComplexValue{}, xerrors.ErrUnknownBackend.Wrapf("%s has no complex algebra", s.name)
	}
	return s.complex(op, a, b)
}

var registry = map[string]Backend{}

func register(b Backend) {
	registry[b.Name()] = b
}

func init() {
	register(newSigned[hostf.F64]("f64"))
	register(newSigned[hostf.F32]("f32"))
	register(newSigned[fxnum.FxNum]("fxnum"))
	register(newSigned[qfmt.I32F16]("i32f16"))
	register(newSigned[qfmt.I32F22]("i32f22"))
	register(newSigned[qfmt.I64F32]("i64f32"))
	register(newUnsigned[qfmt.U32F16]("u32f16"))
	register(newUnsigned[uqnum.UQ128]("uq128"))
}

// Lookup finds a backend by name, ignoring case.
func Lookup(name string) (Backend, error) {
	if b, ok := registry[strings.ToLower(name)]; ok {
		return b, nil
	}
	return nil, xerrors.ErrUnknownBackend.Wrapf("%q (known: %s)", name, strings.Join(Names(), ", "))
}

// Names is sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
