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

package main

import (
	"math"
	"math/rand/v2"
)

// Special values checked before any sampled input: signed zeros and
// infinities, quiet and signaling NaNs, subnormal and normal extremes, ties
// and values around the integral threshold of each format.
var (
	special32 = []float32{
		0, negZero32, 1, -1, 0.5, -0.5, 1.5, -1.5, 2.5, -2.5, 0.49999997, -0.49999997,
		4, 2, 0.25, 1e-3, -1e-3, 123.456, -123.456,
		0x1p23, -0x1p23, 0x1p23 - 1, -(0x1p23 - 1), 0x1p23 + 2, 0x1p22 + 0.5, 0x1p24,
		math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
		0x1p-126, -0x1p-126, 0x1p-126 - 0x1p-149, math.MaxFloat32, -math.MaxFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1)),
		math.Float32frombits(0x7fc00000), math.Float32frombits(0xffc00000),
		math.Float32frombits(0x7f800001), math.Float32frombits(0x7fbfffff),
	}

	special64 = []float64{
		0, math.Copysign(0, -1), 1, -1, 0.5, -0.5, 1.5, -1.5, 2.5, -2.5,
		0.49999999999999994, -0.49999999999999994,
		4, 2, 0.25, 1e-3, -1e-3, 123.456, -123.456,
		0x1p52, -0x1p52, 0x1p52 - 0.5, -(0x1p52 - 0.5), 0x1p52 + 2, 0x1p51 + 0.5, 0x1p53,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		0x1p-1022, -0x1p-1022, math.MaxFloat64, -math.MaxFloat64,
		math.Inf(1), math.Inf(-1),
		math.Float64frombits(0x7ff8000000000000), math.Float64frombits(0xfff8000000000000),
		math.Float64frombits(0x7ff0000000000001), math.Float64frombits(0x7ff7ffffffffffff),
	}
)

var negZero32 = math.Float32frombits(0x80000000)

// sample32 draws a float32 bit pattern. Half of the draws are uniform over
// all patterns; the rest have exponents near the integral threshold, where
// the rounding kernels do their work.
func sample32(rng *rand.Rand) float32 {
	b := rng.Uint32()
	if rng.IntN(2) == 0 {
		return math.Float32frombits(b)
	}
	e := uint32(127-2) + uint32(rng.IntN(23+3))
	return math.Float32frombits(b&0x807fffff | e<<23)
}

func sample64(rng *rand.Rand) float64 {
	b := rng.Uint64()
	if rng.IntN(2) == 0 {
		return math.Float64frombits(b)
	}
	e := uint64(1023-2) + uint64(rng.IntN(52+3))
	return math.Float64frombits(b&0x800fffffffffffff | e<<52)
}

// sampleFMA draws fma operands. A third of the draws set z so that x*y + z
// nearly cancels, a third use moderate magnitudes and the rest are uniform
// bit patterns.
func sampleFMA(rng *rand.Rand) (x, y, z float32) {
	switch rng.IntN(3) {
	case 0:
		x, y = moderate32(rng), moderate32(rng)
		p := -float32(float64(x) * float64(y))
		z = math.Float32frombits(math.Float32bits(p) + uint32(rng.IntN(5)) - 2)
	case 1:
		x, y, z = moderate32(rng), moderate32(rng), moderate32(rng)
	default:
		x = math.Float32frombits(rng.Uint32())
		y = math.Float32frombits(rng.Uint32())
		z = math.Float32frombits(rng.Uint32())
	}
	return x, y, z
}

// moderate32 returns a value with an unbiased exponent in [-20, 20).
func moderate32(rng *rand.Rand) float32 {
	e := uint32(127-20) + uint32(rng.IntN(40))
	return math.Float32frombits(rng.Uint32()&0x807fffff | e<<23)
}
