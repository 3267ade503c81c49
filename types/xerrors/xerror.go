package xerrors

import (
	"errors"
	"fmt"
)

const (
	ErrCodeSuccess uint32 = iota
	ErrCodeOrdinary
	ErrCodeDivideByZero
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeParse
)

const (
	ErrCodeCommand uint32 = 1000 + iota
	ErrCodeInvalidConfig
	ErrCodeUnknownBackend
	ErrCodeUnknownKernel
	ErrLast
)

var (
	ErrCommon          = New(ErrCodeOrdinary, "mixnum error")
	ErrDivideByZero    = New(ErrCodeDivideByZero, "division by zero")
	ErrInvalidArgument = New(ErrCodeInvalidArgument, "invalid argument")
	ErrOutOfRange      = New(ErrCodeOutOfRange, "value out of representable range")
	ErrParse           = New(ErrCodeParse, "parse failed")

	ErrCommand        = New(ErrCodeCommand, "command failed")
	ErrInvalidConfig  = New(ErrCodeInvalidConfig, "invalid config")
	ErrUnknownBackend = New(ErrCodeUnknownBackend, "unknown backend")
	ErrUnknownKernel  = New(ErrCodeUnknownKernel, "unknown kernel")

	ErrNonPositiveLn = ErrInvalidArgument.Wrap(NewOrdinary("ln: input must be > 0"))
	ErrNaN           = ErrInvalidArgument.Wrap(NewOrdinary("not a number"))
)

type XError interface {
	Code() uint32
	Cause() error
	Error() string
	Msg() string
	Wrap(error) XError
	Wrapf(string, ...any) XError
	Contains(XError) bool
	Equal(XError) bool
}

type xerror struct {
	code  uint32
	msg   string
	cause error
}

func New(code uint32, msg string) XError {
	return &xerror{
		code: code,
		msg:  msg,
	}
}

func NewOrdinary(msg string) XError {
	return &xerror{
		code: ErrCodeOrdinary,
		msg:  msg,
	}
}

func From(err error) XError {
	if err == nil {
		return nil
	}
	if xerr, ok := err.(XError); ok {
		return xerr
	}
	return NewOrdinary(err.Error())
}

func Wrap(err error, msg string) XError {
	return &xerror{
		code:  ErrCodeOrdinary,
		msg:   msg,
		cause: err,
	}
}

func (xerr *xerror) Code() uint32 {
	return xerr.code
}

func (xerr *xerror) Error() string {
	msg := xerr.msg
	if xerr.cause != nil {
		msg += "\n\t" + xerr.cause.Error()
	}
	return msg
}

func (xerr *xerror) Msg() string {
	return xerr.msg
}

func (xerr *xerror) Cause() error {
	return xerr.cause
}

// Unwrap lets errors.Is and errors.As walk the cause chain.
func (xerr *xerror) Unwrap() error {
	return xerr.cause
}

// Is reports a match by code and message, so a wrapped sentinel still
// matches the sentinel it was derived from.
func (xerr *xerror) Is(target error) bool {
	other, ok := target.(XError)
	if !ok {
		return false
	}
	return xerr.code == other.Code() && xerr.msg == other.Msg()
}

func (xerr *xerror) Wrap(err error) XError {
	if xerr.cause != nil {
		if cerr, ok := xerr.cause.(*xerror); ok {
			return &xerror{
				code:  xerr.code,
				msg:   xerr.msg,
				cause: cerr.Wrap(err),
			}
		}
	}
	return &xerror{
		code:  xerr.code,
		msg:   xerr.msg,
		cause: err,
	}
}

func (xerr *xerror) Wrapf(format string, args ...any) XError {
	return xerr.Wrap(New(ErrCodeOrdinary, fmt.Sprintf(format, args...)))
}

func (xerr *xerror) Contains(other XError) bool {
	if xerr.code == other.Code() && xerr.msg == other.Msg() {
		return true
	} else if xerr.cause != nil {
		if _xerr, ok := xerr.cause.(*xerror); ok {
			return _xerr.Contains(other)
		} else {
			return errors.Is(xerr.cause, other)
		}
	}
	return false
}

func (xerr *xerror) Equal(other XError) bool {
	return xerr.code == other.Code()
}
