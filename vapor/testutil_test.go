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
	"math/rand/v2"

	"github.com/google/go-cmp/cmp"
)

// entry adapts one exported entry point to slices so that tests can drive
// every lane count the same way. Unused operands are ignored.
type entry[F Floats] struct {
	name  string
	lanes int
	fn    func(x, y, z []F) []F
}

func unary32x2(name string, f func(F32x2) F32x2) entry[float32] {
	return entry[float32]{name, 2, func(x, _, _ []float32) []float32 {
		var a F32x2
		copy(a[:], x)
		r := f(a)
		return r[:]
	}}
}

func unary32x4(name string, f func(F32x4) F32x4) entry[float32] {
	return entry[float32]{name, 4, func(x, _, _ []float32) []float32 {
		var a F32x4
		copy(a[:], x)
		r := f(a)
		return r[:]
	}}
}

func unary32x8(name string, f func(F32x8) F32x8) entry[float32] {
	return entry[float32]{name, 8, func(x, _, _ []float32) []float32 {
		var a F32x8
		copy(a[:], x)
		r := f(a)
		return r[:]
	}}
}

func unary64x2(name string, f func(F64x2) F64x2) entry[float64] {
	return entry[float64]{name, 2, func(x, _, _ []float64) []float64 {
		var a F64x2
		copy(a[:], x)
		r := f(a)
		return r[:]
	}}
}

func unary64x4(name string, f func(F64x4) F64x4) entry[float64] {
	return entry[float64]{name, 4, func(x, _, _ []float64) []float64 {
		var a F64x4
		copy(a[:], x)
		r := f(a)
		return r[:]
	}}
}

func unary64x8(name string, f func(F64x8) F64x8) entry[float64] {
	return entry[float64]{name, 8, func(x, _, _ []float64) []float64 {
		var a F64x8
		copy(a[:], x)
		r := f(a)
		return r[:]
	}}
}

func fma32x2(x, y, z []float32) []float32 {
	var a, b, c F32x2
	copy(a[:], x)
	copy(b[:], y)
	copy(c[:], z)
	r := FMAF32x2(a, b, c)
	return r[:]
}

func fma32x4(x, y, z []float32) []float32 {
	var a, b, c F32x4
	copy(a[:], x)
	copy(b[:], y)
	copy(c[:], z)
	r := FMAF32x4(a, b, c)
	return r[:]
}

func fma32x8(x, y, z []float32) []float32 {
	var a, b, c F32x8
	copy(a[:], x)
	copy(b[:], y)
	copy(c[:], z)
	r := FMAF32x8(a, b, c)
	return r[:]
}

// op pairs the entry points of one operation with its scalar reference.
type op[F Floats] struct {
	name    string
	entries []entry[F]
	ref     func(x, y, z F) F
	arity   int
}

func ref1[F Floats](f func(F) F) func(x, _, _ F) F {
	return func(x, _, _ F) F { return f(x) }
}

func ops32() []op[float32] {
	return []op[float32]{
		{"Trunc", []entry[float32]{unary32x2("TruncF32x2", TruncF32x2), unary32x4("TruncF32x4", TruncF32x4), unary32x8("TruncF32x8", TruncF32x8)}, ref1(TruncScalar[float32]), 1},
		{"Fract", []entry[float32]{unary32x2("FractF32x2", FractF32x2), unary32x4("FractF32x4", FractF32x4), unary32x8("FractF32x8", FractF32x8)}, ref1(FractScalar[float32]), 1},
		{"Floor", []entry[float32]{unary32x2("FloorF32x2", FloorF32x2), unary32x4("FloorF32x4", FloorF32x4), unary32x8("FloorF32x8", FloorF32x8)}, ref1(FloorScalar[float32]), 1},
		{"Ceil", []entry[float32]{unary32x2("CeilF32x2", CeilF32x2), unary32x4("CeilF32x4", CeilF32x4), unary32x8("CeilF32x8", CeilF32x8)}, ref1(CeilScalar[float32]), 1},
		{"Round", []entry[float32]{unary32x2("RoundF32x2", RoundF32x2), unary32x4("RoundF32x4", RoundF32x4), unary32x8("RoundF32x8", RoundF32x8)}, ref1(RoundScalar[float32]), 1},
		{"Sqrt", []entry[float32]{unary32x2("SqrtF32x2", SqrtF32x2), unary32x4("SqrtF32x4", SqrtF32x4), unary32x8("SqrtF32x8", SqrtF32x8)}, ref1(Sqrt32Scalar), 1},
		{"FMA", []entry[float32]{{"FMAF32x2", 2, fma32x2}, {"FMAF32x4", 4, fma32x4}, {"FMAF32x8", 8, fma32x8}}, FMA32Scalar, 3},
	}
}

func ops64() []op[float64] {
	return []op[float64]{
		{"Trunc", []entry[float64]{unary64x2("TruncF64x2", TruncF64x2), unary64x4("TruncF64x4", TruncF64x4), unary64x8("TruncF64x8", TruncF64x8)}, ref1(TruncScalar[float64]), 1},
		{"Fract", []entry[float64]{unary64x2("FractF64x2", FractF64x2), unary64x4("FractF64x4", FractF64x4), unary64x8("FractF64x8", FractF64x8)}, ref1(FractScalar[float64]), 1},
		{"Floor", []entry[float64]{unary64x2("FloorF64x2", FloorF64x2), unary64x4("FloorF64x4", FloorF64x4), unary64x8("FloorF64x8", FloorF64x8)}, ref1(FloorScalar[float64]), 1},
		{"Ceil", []entry[float64]{unary64x2("CeilF64x2", CeilF64x2), unary64x4("CeilF64x4", CeilF64x4), unary64x8("CeilF64x8", CeilF64x8)}, ref1(CeilScalar[float64]), 1},
		{"Round", []entry[float64]{unary64x2("RoundF64x2", RoundF64x2), unary64x4("RoundF64x4", RoundF64x4), unary64x8("RoundF64x8", RoundF64x8)}, ref1(RoundScalar[float64]), 1},
		{"Sqrt", []entry[float64]{unary64x2("SqrtF64x2", SqrtF64x2), unary64x4("SqrtF64x4", SqrtF64x4), unary64x8("SqrtF64x8", SqrtF64x8)}, ref1(Sqrt64Scalar), 1},
	}
}

// run evaluates e over all inputs, lanes at a time.
func (e entry[F]) run(xs, ys, zs []F) []F {
	out := make([]F, 0, len(xs))
	for i := 0; i < len(xs); i += e.lanes {
		end := min(i+e.lanes, len(xs))
		var y, z []F
		if ys != nil {
			y, z = ys[i:end], zs[i:end]
		}
		out = append(out, e.fn(xs[i:end], y, z)[:end-i]...)
	}
	return out
}

// sameBits compares floats bit for bit; any two NaNs are equal.
func sameBits[F Floats]() cmp.Option {
	return cmp.Comparer(func(a, b F) bool {
		if a != a && b != b {
			return true
		}
		return Bits(a) == Bits(b)
	})
}

func specialValues[F Floats]() []F {
	f := FormatOf[F]()
	d := f.MantissaDigits
	maxExp := uint64(1)<<f.ExponentBits - 1
	two := func(e int64) F { return FromBits[F](uint64(f.Bias+e) << d) }
	vals := []F{
		0, FromBits[F](f.SignMask()), 1, -1, 0.5, -0.5, 1.5, -1.5, 2.5, -2.5, 3.5, -3.5,
		0.25, 0.75, -0.75, 4, 100.5, -100.5, 123.456, -123.456,
		two(int64(d)), -two(int64(d)), two(int64(d)) - 1, two(int64(d)-1) + 0.5, -(two(int64(d)-1) + 0.5),
		two(int64(d)) * 2, F(math.Pi) * two(20),
		FromBits[F](1), FromBits[F](f.SignMask() | 1),
		FromBits[F](uint64(1) << d), FromBits[F](uint64(1)<<d - 1),
		FromBits[F]((maxExp-1)<<d | f.MantissaMask()),
		FromBits[F](f.SignMask() | (maxExp-1)<<d | f.MantissaMask()),
		FromBits[F](maxExp << d),
		FromBits[F](f.SignMask() | maxExp<<d),
		FromBits[F](maxExp<<d | 1<<(d-1)),
		FromBits[F](f.SignMask() | maxExp<<d | 1<<(d-1)),
		FromBits[F](maxExp<<d | 1),
	}
	// Just below one half, the largest value that rounds to zero.
	vals = append(vals, FromBits[F](Bits(F(0.5))-1), -FromBits[F](Bits(F(0.5))-1))
	return vals
}

// randomBits returns n values drawn from two populations: uniform bit
// patterns, and patterns with exponents around the integral threshold.
func randomBits[F Floats](n int, seed uint64) []F {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	f := FormatOf[F]()
	out := make([]F, n)
	for i := range out {
		b := rng.Uint64()
		if f.Width == 32 {
			b &= 0xffffffff
		}
		if i%2 == 1 {
			e := uint64(f.Bias-2) + uint64(rng.IntN(int(f.MantissaDigits)+3))
			b = b&(f.SignMask()|f.MantissaMask()) | e<<f.MantissaDigits
		}
		out[i] = FromBits[F](b)
	}
	return out
}
