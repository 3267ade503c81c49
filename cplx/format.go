package cplx

import (
	"fmt"
	"strings"
)

// the imaginary sign is written explicitly
var signFlags = strings.NewReplacer("+", "", " ", "")

// Format writes "<re><sign><im>i". The verb, flags, width and precision are
// applied to each component, so %.2f prints "1.00+2.00i". The imaginary part
// is printed by magnitude after an explicit sign, without the + and space flags.
func (c Cartesian[T]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)
	sign := "+"
	if c.Im.IsNegative() {
		sign = "-"
	}
	fmt.Fprintf(f, format+"%s"+signFlags.Replace(format)+"i", c.Re, sign, c.Im.Abs())
}

func (c Cartesian[T]) String() string {
	return fmt.Sprintf("%v", c)
}

// Format writes "<mag>∠<ang>" with the verb applied to both parts.
func (p Polar[T]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)
	fmt.Fprintf(f, format+"∠"+format, p.mag, p.ang)
}

func (p Polar[T]) String() string {
	return fmt.Sprintf("%v", p)
}
