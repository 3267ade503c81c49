package backend

import (
	"fmt"
	"strings"

	"github.com/beatoz/mixnum-go/cplx"
	"github.com/beatoz/mixnum-go/types"
	"github.com/beatoz/mixnum-go/types/xerrors"
)

type ComplexOp string

const (
	OpPolar     ComplexOp = "polar"
	OpCartesian ComplexOp = "cartesian"
	OpMul       ComplexOp = "mul"
	OpDiv       ComplexOp = "div"
	OpConj      ComplexOp = "conj"
	OpMag       ComplexOp = "mag"
	OpArg       ComplexOp = "arg"
	OpExp       ComplexOp = "exp"
)

var AllComplexOps = []ComplexOp{
	OpPolar, OpCartesian, OpMul, OpDiv, OpConj, OpMag, OpArg, OpExp,
}

// Binary reports whether op reads a second operand.
func (op ComplexOp) Binary() bool {
	return op == OpMul || op == OpDiv
}

func ParseComplexOp(s string) (ComplexOp, error) {
	op := ComplexOp(strings.ToLower(s))
	for _, known := range AllComplexOps {
		if op == known {
			return op, nil
		}
	}
	return "", xerrors.ErrInvalidArgument.Wrapf("unknown complex op %q", s)
}

const (
	FormCartesian = "cartesian"
	FormPolar     = "polar"
	FormReal      = "real"
)

// ComplexValue is a result in the form the op produces. For the polar form
// A is the magnitude and B the angle; for the real form B is zero.
type ComplexValue struct {
	Form string  `json:"form"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	Text string  `json:"text"`
}

func cartesianValue[T types.Signed[T]](c cplx.Cartesian[T]) ComplexValue {
	return ComplexValue{Form: FormCartesian, A: c.Re.Float64(), B: c.Im.Float64(), Text: c.String()}
}

func polarValue[T types.Angular[T]](p cplx.Polar[T]) ComplexValue {
	return ComplexValue{Form: FormPolar, A: p.Mag().Float64(), B: p.Ang().Float64(), Text: p.String()}
}

func realValue[T types.Signed[T]](x T) ComplexValue {
	return ComplexValue{Form: FormReal, A: x.Float64(), Text: fmt.Sprint(x)}
}

// complexOp reads a and b as Cartesian values, except for OpCartesian where
// a holds magnitude and angle.
func complexOp[T interface {
	types.Angular[T]
	types.Exponential[T]
}](op ComplexOp, a, b complex128) (ComplexValue, error) {
	ca, cb := cplx.FromNative[T](a), cplx.FromNative[T](b)
	switch op {
	case OpPolar:
		return polarValue(cplx.ToPolar(ca)), nil
	case OpCartesian:
		return cartesianValue(cplx.NewPolar(ca.Re, ca.Im).ToCartesian()), nil
	case OpMul:
		return cartesianValue(ca.Mul(cb)), nil
	case OpDiv:
		return cartesianValue(ca.Div(cb)), nil
	case OpConj:
		return cartesianValue(ca.Conj()), nil
	case OpMag:
		return realValue(cplx.Mag(ca)), nil
	case OpArg:
		return realValue(cplx.Arg(ca)), nil
	case OpExp:
		return cartesianValue(cplx.Exp(ca)), nil
	}
	return ComplexValue{}, xerrors.ErrInvalidArgument.Wrapf("unknown complex op %q", op)
}
