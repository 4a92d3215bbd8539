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

// This file provides the portable register operations every kernel is
// composed of. Floating-point results are always passed through an explicit
// conversion so that the compiler cannot fuse a multiply into a following add.

// Load creates a vector by loading up to MaxLanes elements from a slice.
func Load[T Lanes](src []T) Vec[T] {
	var v Vec[T]
	v.n = copy(v.data[:], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	v := Vec[T]{n: MaxLanes}
	for i := range v.data {
		v.data[i] = value
	}
	return v
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{n: MaxLanes}
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(a.data[i] + b.data[i])
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(a.data[i] - b.data[i])
	}
	return r
}

// Mul performs element-wise multiplication. Integer lanes wrap.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(a.data[i] * b.data[i])
	}
	return r
}

// MulHigh returns the upper 32 bits of the 64-bit product of each lane pair.
func MulHigh[T ~uint32](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = T(uint64(a.data[i]) * uint64(b.data[i]) >> 32)
	}
	return r
}

// Max returns the element-wise maximum. For float lanes a NaN in b is
// returned as-is and a NaN in a yields b.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		if a.data[i] > b.data[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// And performs element-wise bitwise AND.
func And[T Integers](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// Xor performs element-wise bitwise XOR.
func Xor[T Integers](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = a.data[i] ^ b.data[i]
	}
	return r
}

// AndNot computes ^a & b.
func AndNot[T Integers](a, b Vec[T]) Vec[T] {
	n := min(a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = ^a.data[i] & b.data[i]
	}
	return r
}

// ShiftLeft shifts every lane left by a constant number of bits.
func ShiftLeft[T Integers](v Vec[T], bits uint) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] << bits
	}
	return r
}

// ShiftRight shifts every lane right by a constant number of bits.
// Signed lanes shift arithmetically.
func ShiftRight[T Integers](v Vec[T], bits uint) Vec[T] {
	r := Vec[T]{n: v.n}
	for i := range v.n {
		r.data[i] = v.data[i] >> bits
	}
	return r
}

// Shr shifts each lane of v right by the matching lane of counts.
// Counts at or above the lane width produce zero.
func Shr[T UnsignedInts](v, counts Vec[T]) Vec[T] {
	n := min(v.n, counts.n)
	r := Vec[T]{n: n}
	for i := range n {
		r.data[i] = v.data[i] >> counts.data[i]
	}
	return r
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	m := Mask[T]{n: n}
	for i := range n {
		if a.data[i] == b.data[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	m := Mask[T]{n: n}
	for i := range n {
		if a.data[i] != b.data[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	m := Mask[T]{n: n}
	for i := range n {
		if a.data[i] < b.data[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return LessThan(b, a)
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	n := min(a.n, b.n)
	m := Mask[T]{n: n}
	for i := range n {
		if a.data[i] <= b.data[i] {
			m.bits |= 1 << i
		}
	}
	return m
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return LessEqual(b, a)
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return NotEqual(v, v)
}

// IfThenElse performs conditional selection: a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(mask.n, a.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		if mask.bits&(1<<i) != 0 {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	n := min(mask.n, a.n)
	r := Vec[T]{n: n}
	for i := range n {
		if mask.bits&(1<<i) != 0 {
			r.data[i] = a.data[i]
		}
	}
	return r
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	n := min(mask.n, b.n)
	r := Vec[T]{n: n}
	for i := range n {
		if mask.bits&(1<<i) == 0 {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// RebindMask reinterprets a mask computed on lanes of type T as a mask for
// lanes of type U. Both types must have the same lane count.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits, n: m.n}
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: a.bits & b.bits & laneBits(n), n: n}
}

// MaskOr returns the lane-wise OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: (a.bits | b.bits) & laneBits(n), n: n}
}

// MaskXor returns the lane-wise XOR of two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(a.n, b.n)
	return Mask[T]{bits: (a.bits ^ b.bits) & laneBits(n), n: n}
}

// MaskNot inverts every active lane of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	return Mask[T]{bits: ^m.bits & laneBits(m.n), n: m.n}
}

// ConvertTo converts each lane to type U with Go conversion semantics.
// Conversions between integer types truncate or extend; float to integer
// conversions of out-of-range values are implementation-specific, so kernels
// only convert values known to fit.
func ConvertTo[U, T Lanes](v Vec[T]) Vec[U] {
	r := Vec[U]{n: v.n}
	for i := range v.n {
		r.data[i] = U(v.data[i])
	}
	return r
}

// GatherIndex loads table[indices[i]] into lane i.
// If an index is out of bounds (negative or >= len(table)), the result for
// that lane is zero.
func GatherIndex[T Lanes, I Integers](table []T, indices Vec[I]) Vec[T] {
	r := Vec[T]{n: indices.n}
	for i := range indices.n {
		idx := int(indices.data[i])
		if idx >= 0 && idx < len(table) {
			r.data[i] = table[idx]
		}
	}
	return r
}
