package types

func Less[T Ops[T]](a, b T) bool {
	return a.Cmp(b) < 0
}

func LessEq[T Ops[T]](a, b T) bool {
	return a.Cmp(b) <= 0
}

func Greater[T Ops[T]](a, b T) bool {
	return a.Cmp(b) > 0
}

func GreaterEq[T Ops[T]](a, b T) bool {
	return a.Cmp(b) >= 0
}

func Equal[T Ops[T]](a, b T) bool {
	return a.Cmp(b) == 0
}

func IsZero[T Ops[T]](x T) bool {
	return x.Cmp(x.Zero()) == 0
}

func Min[T Ops[T]](a, b T) T {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

func Max[T Ops[T]](a, b T) T {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func Clamp[T Ops[T]](x, lo, hi T) T {
	if x.Cmp(lo) < 0 {
		return lo
	}
	if x.Cmp(hi) > 0 {
		return hi
	}
	return x
}

// HalfPi returns π/2 in T's representation.
func HalfPi[T Ops[T]]() T {
	var z T
	return z.Pi().Div(z.FromInt32(2))
}
