package jsonx

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// floatExtension writes NaN and the infinities as the strings "NaN", "+Inf"
// and "-Inf", which plain JSON numbers cannot hold. Finite values stay
// numbers. Fields tagged ",string" are left to the default codec.
type floatExtension struct {
	jsoniter.DummyExtension
}

func (e *floatExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		kind := binding.Field.Type().Kind()
		if kind != reflect.Float32 && kind != reflect.Float64 {
			continue
		}
		jsonTag := binding.Field.Tag().Get("json")
		if jsonTag == "-" || hasOption(jsonTag, "string") {
			continue
		}
		codec := &floatCodec{bits: 64}
		if kind == reflect.Float32 {
			codec.bits = 32
		}
		binding.Encoder = codec
		binding.Decoder = codec
	}
}

func hasOption(tag, opt string) bool {
	parts := strings.Split(tag, ",")
	for _, p := range parts[1:] {
		if p == opt {
			return true
		}
	}
	return false
}

type floatCodec struct {
	bits int
}

var _ jsoniter.ValEncoder = (*floatCodec)(nil)
var _ jsoniter.ValDecoder = (*floatCodec)(nil)

func (c *floatCodec) read(ptr unsafe.Pointer) float64 {
	if c.bits == 32 {
		return float64(*(*float32)(ptr))
	}
	return *(*float64)(ptr)
}

func (c *floatCodec) write(ptr unsafe.Pointer, v float64) {
	if c.bits == 32 {
		*(*float32)(ptr) = float32(v)
		return
	}
	*(*float64)(ptr) = v
}

func (c *floatCodec) IsEmpty(ptr unsafe.Pointer) bool {
	return c.read(ptr) == 0
}

func (c *floatCodec) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	v := c.read(ptr)
	switch {
	case math.IsNaN(v), math.IsInf(v, 0):
		stream.WriteString(FormatSpecial(v))
	case c.bits == 32:
		stream.WriteFloat32(float32(v))
	default:
		stream.WriteFloat64(v)
	}
}

func (c *floatCodec) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		s := iter.ReadString()
		v, err := strconv.ParseFloat(s, c.bits)
		if err != nil {
			iter.ReportError("decode float", "invalid float string "+strconv.Quote(s))
			return
		}
		c.write(ptr, v)
	case jsoniter.NumberValue:
		c.write(ptr, iter.ReadFloat64())
	default:
		iter.Skip()
	}
}

// FormatSpecial renders NaN and the infinities the way the codec writes them.
func FormatSpecial(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
