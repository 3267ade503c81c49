package types

// Kind is the set of canonical host kinds every provider converts from and to.
// int is accepted so untyped constants infer; it is carried as int64.
type Kind interface {
	int | int32 | int64 | uint32 | uint64 | float32 | float64
}

// From builds a T from any canonical kind.
func From[T Converter[T], K Kind](k K) T {
	var z T
	switch v := any(k).(type) {
	case int32:
		return z.FromInt32(v)
	case int64:
		return z.FromInt64(v)
	case uint32:
		return z.FromUint32(v)
	case uint64:
		return z.FromUint64(v)
	case float32:
		return z.FromFloat32(v)
	case float64:
		return z.FromFloat64(v)
	}
	return z.FromInt64(int64(k))
}

// To converts x into the canonical kind K.
func To[K Kind, T Converter[T]](x T) K {
	var k K
	switch any(k).(type) {
	case int32:
		return K(x.Int32())
	case uint32:
		return K(x.Uint32())
	case uint64:
		return K(x.Uint64())
	case float32:
		return K(x.Float32())
	case float64:
		return K(x.Float64())
	}
	return K(x.Int64())
}

// Convert moves a value between two providers through float64.
// Precision beyond float64 is lost.
func Convert[T2 Converter[T2], T1 Converter[T1]](x T1) T2 {
	var z T2
	return z.FromFloat64(x.Float64())
}
