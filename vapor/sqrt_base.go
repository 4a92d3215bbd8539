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

// Software square root in select form.
//
// The mantissa m is normalized into fixed point and a table seed r ~ 1/sqrt(m)
// is refined with Newton-Raphson steps using only the high half of integer
// products. From the refined estimate s ~ sqrt(m) the residual m - s*s decides
// the last bit exactly, so the result is correctly rounded.
//
// Every lane runs the whole computation; +Inf, zeros, negatives and NaNs are
// selected away at the end.

const (
	// nanBits32 and nanBits64 are the quiet NaNs returned for invalid inputs.
	nanBits32 = 0x7fc00000
	nanBits64 = 0x7ff8000000000000

	// three is 3.0 in the 2.30 fixed-point format of the refinement steps.
	three = 0xc0000000
)

// BaseSqrt computes the correctly rounded square root of every lane.
// sqrt(-0) is -0, sqrt(+Inf) is +Inf, and negative or NaN lanes yield NaN.
func BaseSqrt[F Floats](x Vec[F]) Vec[F] {
	if is32[F]() {
		return ConvertTo[F](BaseSqrt32(ConvertTo[float32](x)))
	}
	return ConvertTo[F](BaseSqrt64(ConvertTo[float64](x)))
}

// BaseSqrt32 computes the correctly rounded square root of float32 lanes.
func BaseSqrt32(x Vec[float32]) Vec[float32] {
	pass := MaskOr(Equal(x, Set(float32(math.Inf(1)))), Equal(x, Zero[float32]()))
	invalid := MaskOr(IsNaN(x), LessThan(x, Zero[float32]()))

	// Subnormals are normalized by 2^23; the exponent field is lowered by the
	// same amount so the result exponent comes out right.
	ix := AsUint32(x)
	sub := LessThan(ix, Set[uint32](0x00800000))
	scaled := Sub(AsUint32(Mul(x, Set[float32](0x1p23))), Set[uint32](23<<23))
	ix = IfThenElse(sub, scaled, ix)

	// m is the mantissa in 1.31 or 2.30 fixed point depending on the
	// exponent parity, so that the halved exponent is an integer.
	odd := NotEqual(And(ix, Set[uint32](0x00800000)), Zero[uint32]())
	m := IfThenElse(odd,
		And(ShiftLeft(ix, 7), Set[uint32](0x7fffffff)),
		Or(ShiftLeft(ix, 8), Set[uint32](0x80000000)))
	ey := And(Add(ShiftRight(ix, 1), Set[uint32](0x3f800000>>1)), Set[uint32](0x7f800000))

	i := And(ShiftRight(ix, 17), Set[uint32](127))
	r := ShiftLeft(ConvertTo[uint32](GatherIndex(rsqrtTab[:], i)), 16)

	// s ~ sqrt(m) and r ~ 1/sqrt(m) in 2.30; every step roughly doubles the
	// number of correct bits.
	s := MulHigh(m, r)
	d := MulHigh(s, r)
	u := Sub(Set[uint32](three), d)
	r = ShiftLeft(MulHigh(r, u), 1)
	s = ShiftLeft(MulHigh(s, u), 1)
	d = MulHigh(s, r)
	u = Sub(Set[uint32](three), d)
	s = MulHigh(s, u)
	// Rescale to 9.23; s is now at most one unit below sqrt(m).
	s = ShiftRight(Sub(s, Set[uint32](1)), 6)

	d0 := Sub(ShiftLeft(m, 16), Mul(s, s))
	d1 := Sub(s, d0)
	d2 := Add(Add(d1, s), Set[uint32](1))
	s = Add(s, ShiftRight(d1, 31))
	s = Or(And(s, Set[uint32](0x007fffff)), ey)
	y := AsFloat32(s)

	// The tiny term never changes a round-to-nearest result but lets the
	// final addition round like a single correctly rounded operation.
	tiny := IfThenZeroElse(Equal(d2, Zero[uint32]()), Set[uint32](0x01000000))
	tiny = Or(tiny, And(Xor(d1, d2), Set[uint32](0x80000000)))
	y = Add(y, AsFloat32(tiny))

	return IfThenElse(pass, x, IfThenElse(invalid, Set(math.Float32frombits(nanBits32)), y))
}

// BaseSqrt64 computes the correctly rounded square root of float64 lanes.
//
// The 16-bit seed needs three 32-bit refinements of r and one 64-bit step
// of s to reach the accuracy the residual correction relies on.
func BaseSqrt64(x Vec[float64]) Vec[float64] {
	pass := MaskOr(Equal(x, Set(math.Inf(1))), Equal(x, Zero[float64]()))
	invalid := MaskOr(IsNaN(x), LessThan(x, Zero[float64]()))

	ix := AsUint64(x)
	top := ShiftRight(ix, 52)
	sub := LessThan(ix, Set[uint64](1<<52))
	scaled := AsUint64(Mul(x, Set(0x1p52)))
	ix = IfThenElse(sub, scaled, ix)
	top = IfThenElse(sub, Sub(ShiftRight(scaled, 52), Set[uint64](52)), top)

	odd := NotEqual(And(top, Set[uint64](1)), Zero[uint64]())
	m := Or(ShiftLeft(ix, 11), Set[uint64](1<<63))
	m = IfThenElse(odd, ShiftRight(m, 1), m)
	top = ShiftRight(Add(top, Set[uint64](0x3ff)), 1)

	i := And(ShiftRight(ix, 46), Set[uint64](127))
	r := ShiftLeft(ConvertTo[uint32](GatherIndex(rsqrtTab[:], i)), 16)

	s := MulHigh(ConvertTo[uint32](ShiftRight(m, 32)), r)
	d := MulHigh(s, r)
	u := Sub(Set[uint32](three), d)
	r = ShiftLeft(MulHigh(r, u), 1)
	s = ShiftLeft(MulHigh(s, u), 1)
	d = MulHigh(s, r)
	u = Sub(Set[uint32](three), d)
	r = ShiftLeft(MulHigh(r, u), 1)

	// |r*sqrt(m) - 1| < 0x1.37p-29; one step in 64 bits finishes s.
	r64 := ShiftLeft(ConvertTo[uint64](r), 32)
	s64 := mulHigh64(m, r64)
	d64 := mulHigh64(s64, r64)
	u64 := Sub(Set[uint64](three<<32), d64)
	s64 = mulHigh64(s64, u64)
	s64 = ShiftRight(Sub(s64, Set[uint64](2)), 9)

	d0 := Sub(ShiftLeft(m, 42), Mul(s64, s64))
	d1 := Sub(s64, d0)
	d2 := Add(Add(d1, s64), Set[uint64](1))
	s64 = Add(s64, ShiftRight(d1, 63))
	s64 = Or(And(s64, Set(Binary64.MantissaMask())), ShiftLeft(top, 52))
	y := AsFloat64(s64)

	tiny := IfThenZeroElse(Equal(d2, Zero[uint64]()), Set[uint64](0x0010000000000000))
	tiny = Or(tiny, And(Xor(d1, d2), Set[uint64](1<<63)))
	y = Add(y, AsFloat64(tiny))

	return IfThenElse(pass, x, IfThenElse(invalid, Set(math.Float64frombits(nanBits64)), y))
}

// mulHigh64 approximates the high 64 bits of a*b from three 32x32 partial
// products. Dropping the low-low term and the carries leaves the result a
// few units low, which the residual correction absorbs.
func mulHigh64(a, b Vec[uint64]) Vec[uint64] {
	lo := Set[uint64](0xffffffff)
	ahi, alo := ShiftRight(a, 32), And(a, lo)
	bhi, blo := ShiftRight(b, 32), And(b, lo)
	return Add(Mul(ahi, bhi), Add(ShiftRight(Mul(ahi, blo), 32), ShiftRight(Mul(alo, bhi), 32)))
}
