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

import "math"

// This file provides the scalar reference kernels. They branch per value
// and produce the same bit patterns as the select-form Base* kernels.

// TruncScalar rounds x toward zero.
func TruncScalar[F Floats](x F) F {
	f := FormatOf[F]()
	e := Exponent(x) - f.Bias
	if e >= int64(f.MantissaDigits) {
		return x
	}
	shift := uint(1)
	if e >= 0 {
		shift = uint(e) + f.ExponentBits + 1
	}
	m := f.AllOnes() >> shift
	b := Bits(x)
	if b&m == 0 {
		return x
	}
	return FromBits[F](b &^ m)
}

// FractScalar returns x - TruncScalar(x).
func FractScalar[F Floats](x F) F {
	return x - TruncScalar(x)
}

// FloorScalar rounds x toward negative infinity.
func FloorScalar[F Floats](x F) F {
	f := FormatOf[F]()
	e := Exponent(x) - f.Bias
	if e >= int64(f.MantissaDigits) {
		return x
	}
	b := Bits(x)
	neg := b&f.SignMask() != 0
	if e >= 0 {
		m := f.MantissaMask() >> uint(e)
		if b&m == 0 {
			return x
		}
		if neg {
			b += m
		}
		return FromBits[F](b &^ m)
	}
	switch {
	case !neg:
		return 0
	case b&f.AbsMask() != 0:
		return -1
	}
	return x
}

// CeilScalar rounds x toward positive infinity.
func CeilScalar[F Floats](x F) F {
	f := FormatOf[F]()
	e := Exponent(x) - f.Bias
	if e >= int64(f.MantissaDigits) {
		return x
	}
	b := Bits(x)
	neg := b&f.SignMask() != 0
	if e >= 0 {
		m := f.MantissaMask() >> uint(e)
		if b&m == 0 {
			return x
		}
		if !neg {
			b += m
		}
		return FromBits[F](b &^ m)
	}
	switch {
	case neg:
		return FromBits[F](f.SignMask())
	case b&f.AbsMask() != 0:
		return 1
	}
	return x
}

// RoundScalar rounds x to the nearest integer, ties to even.
func RoundScalar[F Floats](x F) F {
	f := FormatOf[F]()
	d := f.MantissaDigits
	exp := Exponent(x)
	if exp >= f.Bias+int64(d) {
		return x
	}
	if exp < f.Bias-1 {
		return x * 0
	}
	toint := FromBits[F](uint64(f.Bias+int64(d)) << d)
	b := Bits(x)
	y := F(FromBits[F](b&f.AbsMask())+toint) - toint
	return FromBits[F](Bits(y) | b&f.SignMask())
}

// SqrtScalar returns the correctly rounded square root of x.
func SqrtScalar[F Floats](x F) F {
	if is32[F]() {
		return F(Sqrt32Scalar(float32(x)))
	}
	return F(Sqrt64Scalar(float64(x)))
}

// Sqrt32Scalar returns the correctly rounded square root of x.
func Sqrt32Scalar(x float32) float32 {
	switch {
	case x == 0 || math.IsInf(float64(x), 1):
		return x
	case math.IsNaN(float64(x)) || x < 0:
		return math.Float32frombits(nanBits32)
	}
	ix := math.Float32bits(x)
	if ix < 0x00800000 {
		ix = math.Float32bits(x*0x1p23) - 23<<23
	}

	var m uint32
	if ix&0x00800000 != 0 {
		m = ix << 7 & 0x7fffffff
	} else {
		m = ix<<8 | 0x80000000
	}
	ey := (ix>>1 + 0x3f800000>>1) & 0x7f800000

	r := uint32(rsqrtTab[ix>>17%128]) << 16
	s := mul32(m, r)
	d := mul32(s, r)
	u := three - d
	r = mul32(r, u) << 1
	s = mul32(s, u) << 1
	d = mul32(s, r)
	u = three - d
	s = mul32(s, u)
	s = (s - 1) >> 6

	d0 := m<<16 - s*s
	d1 := s - d0
	d2 := d1 + s + 1
	s += d1 >> 31
	s = s&0x007fffff | ey
	y := math.Float32frombits(s)

	var tiny uint32
	if d2 != 0 {
		tiny = 0x01000000
	}
	tiny |= (d1 ^ d2) & 0x80000000
	return float32(y + math.Float32frombits(tiny))
}

// Sqrt64Scalar returns the correctly rounded square root of x.
func Sqrt64Scalar(x float64) float64 {
	switch {
	case x == 0 || math.IsInf(x, 1):
		return x
	case math.IsNaN(x) || x < 0:
		return math.Float64frombits(nanBits64)
	}
	ix := math.Float64bits(x)
	top := ix >> 52
	if top == 0 {
		ix = math.Float64bits(x * 0x1p52)
		top = ix>>52 - 52
	}

	m := ix<<11 | 1<<63
	if top&1 != 0 {
		m >>= 1
	}
	top = (top + 0x3ff) >> 1

	r := uint32(rsqrtTab[ix>>46%128]) << 16
	s := mul32(uint32(m>>32), r)
	d := mul32(s, r)
	u := three - d
	r = mul32(r, u) << 1
	s = mul32(s, u) << 1
	d = mul32(s, r)
	u = three - d
	r = mul32(r, u) << 1

	r64 := uint64(r) << 32
	s64 := mul64(m, r64)
	d64 := mul64(s64, r64)
	u64 := three<<32 - d64
	s64 = mul64(s64, u64)
	s64 = (s64 - 2) >> 9

	d0 := m<<42 - s64*s64
	d1 := s64 - d0
	d2 := d1 + s64 + 1
	s64 += d1 >> 63
	s64 = s64&Binary64.MantissaMask() | top<<52
	y := math.Float64frombits(s64)

	var tiny uint64
	if d2 != 0 {
		tiny = 0x0010000000000000
	}
	tiny |= (d1 ^ d2) & (1 << 63)
	return float64(y + math.Float64frombits(tiny))
}

// FMA32Scalar computes x*y + z with a single rounding.
func FMA32Scalar(x, y, z float32) float32 {
	xy := float64(float64(x) * float64(y))
	zd := float64(z)
	res := float64(xy + zd)
	b := math.Float64bits(res)
	if b&0x1fffffff != 0x10000000 || math.IsNaN(res) || (res-xy == zd && res-zd == xy) {
		return float32(res)
	}

	neg := b>>63 != 0
	var errv float64
	if neg == (zd > xy) {
		errv = xy - res + zd
	} else {
		errv = zd - res + xy
	}
	if neg == (errv < 0) {
		b++
	} else {
		b--
	}
	return float32(math.Float64frombits(b))
}

func mul32(a, b uint32) uint32 {
	return uint32(uint64(a) * uint64(b) >> 32)
}

func mul64(a, b uint64) uint64 {
	ahi, alo := a>>32, a&0xffffffff
	bhi, blo := b>>32, b&0xffffffff
	return ahi*bhi + ahi*blo>>32 + alo*bhi>>32
}
