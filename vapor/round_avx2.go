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

//go:build amd64.v3 && goexperiment.simd && !noasm

package vapor

import "simd/archsimd"

// AVX2 rounding family for the 256-bit shapes.
//
// The portable kernels build a fraction mask from a per-lane shift count.
// Here the magnitude is rounded with the 2^d magic number instead, which
// needs only whole-register arithmetic, compares and Merge, and the signed
// result is patched from the truncated magnitude. Results are bit-identical
// to the portable kernels, signed zeros included.
//
// Merge semantics: a.Merge(b, mask) returns a where mask is TRUE, b where FALSE.

var (
	f32x8Sign  = archsimd.BroadcastInt32x8(-2147483648)
	f32x8Abs   = archsimd.BroadcastInt32x8(0x7fffffff)
	f32x8Zero  = archsimd.BroadcastFloat32x8(0)
	f32x8One   = archsimd.BroadcastFloat32x8(1)
	f32x8Half  = archsimd.BroadcastFloat32x8(0.5)
	f32x8ToInt = archsimd.BroadcastFloat32x8(0x1p23)
	f64x4Sign  = archsimd.BroadcastInt64x4(-9223372036854775808)
	f64x4Abs   = archsimd.BroadcastInt64x4(0x7fffffffffffffff)
	f64x4Zero  = archsimd.BroadcastFloat64x4(0)
	f64x4One   = archsimd.BroadcastFloat64x4(1)
	f64x4Half  = archsimd.BroadcastFloat64x4(0.5)
	f64x4ToInt = archsimd.BroadcastFloat64x4(0x1p52)
)

// splitF32x8 returns the sign bits and the magnitude of every lane.
func splitF32x8(v archsimd.Float32x8) (archsimd.Int32x8, archsimd.Float32x8) {
	bits := v.AsInt32x8()
	return bits.And(f32x8Sign), bits.And(f32x8Abs).AsFloat32x8()
}

// truncF32x8Vec rounds toward zero. Lanes with |x| >= 2^23, Inf and NaN fail
// the Less compare and keep x.
func truncF32x8Vec(v archsimd.Float32x8) archsimd.Float32x8 {
	sign, a := splitF32x8(v)
	t := a.Add(f32x8ToInt).Sub(f32x8ToInt)
	t = t.Sub(f32x8One).Merge(t, t.Greater(a))
	t = t.AsInt32x8().Or(sign).AsFloat32x8()
	return t.Merge(v, a.Less(f32x8ToInt))
}

func truncF32x8(x F32x8) F32x8 {
	var out F32x8
	truncF32x8Vec(archsimd.LoadFloat32x8Slice(x[:])).StoreSlice(out[:])
	return out
}

func fractF32x8(x F32x8) F32x8 {
	var out F32x8
	v := archsimd.LoadFloat32x8Slice(x[:])
	v.Sub(truncF32x8Vec(v)).StoreSlice(out[:])
	return out
}

func floorF32x8(x F32x8) F32x8 {
	var out F32x8
	v := archsimd.LoadFloat32x8Slice(x[:])
	t := truncF32x8Vec(v)
	t.Sub(f32x8One).Merge(t, v.Less(t)).StoreSlice(out[:])
	return out
}

func ceilF32x8(x F32x8) F32x8 {
	var out F32x8
	v := archsimd.LoadFloat32x8Slice(x[:])
	t := truncF32x8Vec(v)
	t.Add(f32x8One).Merge(t, v.Greater(t)).StoreSlice(out[:])
	return out
}

func roundF32x8(x F32x8) F32x8 {
	var out F32x8
	v := archsimd.LoadFloat32x8Slice(x[:])
	sign, a := splitF32x8(v)
	r := a.Add(f32x8ToInt).Sub(f32x8ToInt)
	r = r.AsInt32x8().Or(sign).AsFloat32x8()
	r = v.Mul(f32x8Zero).Merge(r, a.Less(f32x8Half))
	r.Merge(v, a.Less(f32x8ToInt)).StoreSlice(out[:])
	return out
}

func splitF64x4(v archsimd.Float64x4) (archsimd.Int64x4, archsimd.Float64x4) {
	bits := v.AsInt64x4()
	return bits.And(f64x4Sign), bits.And(f64x4Abs).AsFloat64x4()
}

func truncF64x4Vec(v archsimd.Float64x4) archsimd.Float64x4 {
	sign, a := splitF64x4(v)
	t := a.Add(f64x4ToInt).Sub(f64x4ToInt)
	t = t.Sub(f64x4One).Merge(t, t.Greater(a))
	t = t.AsInt64x4().Or(sign).AsFloat64x4()
	return t.Merge(v, a.Less(f64x4ToInt))
}

func truncF64x4(x F64x4) F64x4 {
	var out F64x4
	truncF64x4Vec(archsimd.LoadFloat64x4Slice(x[:])).StoreSlice(out[:])
	return out
}

func fractF64x4(x F64x4) F64x4 {
	var out F64x4
	v := archsimd.LoadFloat64x4Slice(x[:])
	v.Sub(truncF64x4Vec(v)).StoreSlice(out[:])
	return out
}

func floorF64x4(x F64x4) F64x4 {
	var out F64x4
	v := archsimd.LoadFloat64x4Slice(x[:])
	t := truncF64x4Vec(v)
	t.Sub(f64x4One).Merge(t, v.Less(t)).StoreSlice(out[:])
	return out
}

func ceilF64x4(x F64x4) F64x4 {
	var out F64x4
	v := archsimd.LoadFloat64x4Slice(x[:])
	t := truncF64x4Vec(v)
	t.Add(f64x4One).Merge(t, v.Greater(t)).StoreSlice(out[:])
	return out
}

func roundF64x4(x F64x4) F64x4 {
	var out F64x4
	v := archsimd.LoadFloat64x4Slice(x[:])
	sign, a := splitF64x4(v)
	r := a.Add(f64x4ToInt).Sub(f64x4ToInt)
	r = r.AsInt64x4().Or(sign).AsFloat64x4()
	r = v.Mul(f64x4Zero).Merge(r, a.Less(f64x4Half))
	r.Merge(v, a.Less(f64x4ToInt)).StoreSlice(out[:])
	return out
}
