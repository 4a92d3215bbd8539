// Copyright 2025 go-vapor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vapor

import (
	"math"
	"unsafe"
)

// Format describes an IEEE-754 binary interchange layout.
type Format struct {
	// Width is the total number of bits of a lane.
	Width uint
	// ExponentBits is the width of the biased exponent field.
	ExponentBits uint
	// MantissaDigits is the number of explicitly stored mantissa bits.
	MantissaDigits uint
	// Bias is the exponent bias.
	Bias int64
}

var (
	// Binary32 is the layout of float32: 1 sign, 8 exponent, 23 mantissa bits.
	Binary32 = Format{Width: 32, ExponentBits: 8, MantissaDigits: 23, Bias: 127}
	// Binary64 is the layout of float64: 1 sign, 11 exponent, 52 mantissa bits.
	Binary64 = Format{Width: 64, ExponentBits: 11, MantissaDigits: 52, Bias: 1023}
)

// MantissaMask returns (1 << MantissaDigits) - 1.
func (f Format) MantissaMask() uint64 {
	return 1<<f.MantissaDigits - 1
}

// SignMask returns the sign bit of the format.
func (f Format) SignMask() uint64 {
	return 1 << (f.Width - 1)
}

// AbsMask returns every bit but the sign bit.
func (f Format) AbsMask() uint64 {
	return f.SignMask() - 1
}

// AllOnes returns a pattern with all Width bits set.
func (f Format) AllOnes() uint64 {
	return ^uint64(0) >> (64 - f.Width)
}

// FormatOf returns the layout of F.
func FormatOf[F Floats]() Format {
	if is32[F]() {
		return Binary32
	}
	return Binary64
}

// MantissaDigits returns the number of explicitly stored mantissa bits of F.
func MantissaDigits[F Floats]() uint {
	return FormatOf[F]().MantissaDigits
}

// MantissaMask returns the mask of the mantissa field of F.
func MantissaMask[F Floats]() uint64 {
	return FormatOf[F]().MantissaMask()
}

// Bits reinterprets x as an unsigned integer of the same width, zero-extended
// to 64 bits. No value conversion takes place.
func Bits[F Floats](x F) uint64 {
	if is32[F]() {
		return uint64(math.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// FromBits is the inverse of Bits. Bits above the width of F are ignored.
func FromBits[F Floats](b uint64) F {
	if is32[F]() {
		return F(math.Float32frombits(uint32(b)))
	}
	return F(math.Float64frombits(b))
}

// Exponent returns the biased exponent field of x, bits(|x|) >> MantissaDigits.
func Exponent[F Floats](x F) int64 {
	f := FormatOf[F]()
	return int64((Bits(x) & f.AbsMask()) >> f.MantissaDigits)
}

// AsBits reinterprets every lane as its bit pattern, zero-extended to 64 bits.
func AsBits[F Floats](v Vec[F]) Vec[uint64] {
	r := Vec[uint64]{n: v.n}
	for i := range v.n {
		r.data[i] = Bits(v.data[i])
	}
	return r
}

// BitsAs is the inverse of AsBits.
func BitsAs[F Floats](v Vec[uint64]) Vec[F] {
	r := Vec[F]{n: v.n}
	for i := range v.n {
		r.data[i] = FromBits[F](v.data[i])
	}
	return r
}

// ExponentOf returns the biased exponent field of every lane.
func ExponentOf[F Floats](v Vec[F]) Vec[int64] {
	f := FormatOf[F]()
	e := ShiftRight(And(AsBits(v), Set(f.AbsMask())), f.MantissaDigits)
	return ConvertTo[int64](e)
}

// AsUint32 reinterprets float32 lanes as uint32.
func AsUint32(v Vec[float32]) Vec[uint32] {
	r := Vec[uint32]{n: v.n}
	for i := range v.n {
		r.data[i] = math.Float32bits(v.data[i])
	}
	return r
}

// AsFloat32 reinterprets uint32 lanes as float32.
func AsFloat32(v Vec[uint32]) Vec[float32] {
	r := Vec[float32]{n: v.n}
	for i := range v.n {
		r.data[i] = math.Float32frombits(v.data[i])
	}
	return r
}

// AsUint64 reinterprets float64 lanes as uint64.
func AsUint64(v Vec[float64]) Vec[uint64] {
	r := Vec[uint64]{n: v.n}
	for i := range v.n {
		r.data[i] = math.Float64bits(v.data[i])
	}
	return r
}

// AsFloat64 reinterprets uint64 lanes as float64.
func AsFloat64(v Vec[uint64]) Vec[float64] {
	r := Vec[float64]{n: v.n}
	for i := range v.n {
		r.data[i] = math.Float64frombits(v.data[i])
	}
	return r
}

// Abs clears the sign bit of every lane. NaN payloads are preserved.
func Abs[F Floats](v Vec[F]) Vec[F] {
	f := FormatOf[F]()
	return BitsAs[F](And(AsBits(v), Set(f.AbsMask())))
}

// CopySign returns the magnitude of mag with the sign of sign.
func CopySign[F Floats](mag, sign Vec[F]) Vec[F] {
	f := FormatOf[F]()
	m := AndNot(Set(f.SignMask()), AsBits(mag))
	s := And(AsBits(sign), Set(f.SignMask()))
	return BitsAs[F](Or(m, s))
}

// SignBit returns a mask of the lanes whose sign bit is set, including -0
// and negative NaNs.
func SignBit[F Floats](v Vec[F]) Mask[F] {
	f := FormatOf[F]()
	neg := NotEqual(And(AsBits(v), Set(f.SignMask())), Zero[uint64]())
	return RebindMask[F](neg)
}

// is32 reports whether F is 32 bits wide. It inspects the size rather than
// the type so that named float types work.
func is32[F Floats]() bool {
	var zero F
	return unsafe.Sizeof(zero) == 4
}
