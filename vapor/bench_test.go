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
	"testing"
)

var (
	sinkF32x8 F32x8
	sinkF64x4 F64x4
	sinkF32   float32
)

func benchInput32() F32x8 {
	return F32x8{-2.5, 0.3, 1234.567, -0.0001, 7, 1e20, 3.5, 0x1p-140}
}

func BenchmarkRoundF32x8(b *testing.B) {
	x := benchInput32()
	for b.Loop() {
		sinkF32x8 = RoundF32x8(x)
	}
}

func BenchmarkFloorF32x8(b *testing.B) {
	x := benchInput32()
	for b.Loop() {
		sinkF32x8 = FloorF32x8(x)
	}
}

func BenchmarkFloorF64x4(b *testing.B) {
	x := F64x4{-2.5, 0.3, 1234.567, 1e300}
	for b.Loop() {
		sinkF64x4 = FloorF64x4(x)
	}
}

func BenchmarkSqrtF32x8(b *testing.B) {
	x := F32x8{1, 2, 3, 4, 1e-40, 1e30, 0.5, 12345}
	for b.Loop() {
		sinkF32x8 = SqrtF32x8(x)
	}
}

func BenchmarkSqrtF64x4(b *testing.B) {
	x := F64x4{2, 1e-310, 1e300, 0.75}
	for b.Loop() {
		sinkF64x4 = SqrtF64x4(x)
	}
}

func BenchmarkFMAF32x8(b *testing.B) {
	x := benchInput32()
	for b.Loop() {
		sinkF32x8 = FMAF32x8(x, x, x)
	}
}

// BenchmarkSqrtScalar is the per-value baseline for the vector kernels.
func BenchmarkSqrtScalar(b *testing.B) {
	x := benchInput32()
	for b.Loop() {
		for _, v := range x {
			sinkF32 = Sqrt32Scalar(float32(math.Abs(float64(v))))
		}
	}
}
