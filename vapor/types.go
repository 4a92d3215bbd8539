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

// Package vapor provides software IEEE-754 primitives over fixed-width float
// vectors: truncation, fractional part, floor, ceiling, round-to-nearest-even,
// square root and fused multiply-add.
//
// Every kernel is a bit-manipulation algorithm on the binary representation of
// its lanes and never calls a hardware sqrt/fma instruction or the math
// package. Kernels are written once against the portable register Vec and
// exported per (operation, element type, lane count):
//
//	import "github.com/ajroetker/go-vapor/vapor"
//
//	x := vapor.F32x4{1.5, -2.5, 0.5, 3}
//	r := vapor.RoundF32x4(x) // {2, -2, 0, 3}
//	s := vapor.SqrtF64x2(vapor.F64x2{4, 2})
//
// Exceptional inputs are signalled through the value domain only (NaN, Inf,
// signed zero). No kernel allocates, returns an error or panics.
package vapor

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in register lanes.
type Lanes interface {
	Floats | Integers
}

// MaxLanes is the capacity of a portable register. It is the widest lane
// count any exported entry point uses.
const MaxLanes = 8

// Vec is a portable vector register: up to MaxLanes lanes stored inline.
// Binary operations produce as many lanes as the shorter operand.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data [MaxLanes]T
	n    int
}

// Mask represents the result of a comparison operation.
// It is consumed by IfThenElse and its variants.
//
// Mask instances should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterThan instead.
type Mask[T Lanes] struct {
	// bit i is set if lane i is active.
	bits uint8
	n    int
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	return m.bits == laneBits(m.n)
}

// laneBits returns a bit set with the low n bits set.
func laneBits(n int) uint8 {
	return uint8(1<<n - 1)
}

// Register types of the exported entry points. They are plain arrays, so
// they are passed and returned by value and never alias caller memory.
type (
	F32x2 [2]float32
	F32x4 [4]float32
	F32x8 [8]float32
	F64x2 [2]float64
	F64x4 [4]float64
	F64x8 [8]float64
)
