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

// Package bulk applies the vapor kernels to whole slices.
//
// Every function writes dst[i] = op(src[i]) for i < min(len(dst), len(src))
// and returns that count; mismatched lengths are not an error. float32 and
// float64 slices run through the F32x8 and F64x4 entry points one full
// register at a time, so they reach the accelerated backend when one is
// compiled in. The remaining tail, and slices of named float types, go
// through the portable kernels. dst and src may be the same slice.
package bulk

import "github.com/ajroetker/go-vapor/vapor"

// entryPoints holds the full-register entry points of one operation.
type entryPoints struct {
	f32 func(vapor.F32x8) vapor.F32x8
	f64 func(vapor.F64x4) vapor.F64x4
}

var (
	truncEntries = entryPoints{vapor.TruncF32x8, vapor.TruncF64x4}
	fractEntries = entryPoints{vapor.FractF32x8, vapor.FractF64x4}
	floorEntries = entryPoints{vapor.FloorF32x8, vapor.FloorF64x4}
	ceilEntries  = entryPoints{vapor.CeilF32x8, vapor.CeilF64x4}
	roundEntries = entryPoints{vapor.RoundF32x8, vapor.RoundF64x4}
	sqrtEntries  = entryPoints{vapor.SqrtF32x8, vapor.SqrtF64x4}
)

// registers runs full registers of dst/src through e and returns how many
// elements it handled.
func registers[F vapor.Floats](dst, src []F, e entryPoints) int {
	switch d := any(dst).(type) {
	case []float32:
		s := any(src).([]float32)
		i := 0
		for ; i+8 <= len(d); i += 8 {
			*(*vapor.F32x8)(d[i : i+8]) = e.f32(vapor.F32x8(s[i : i+8]))
		}
		return i
	case []float64:
		s := any(src).([]float64)
		i := 0
		for ; i+4 <= len(d); i += 4 {
			*(*vapor.F64x4)(d[i : i+4]) = e.f64(vapor.F64x4(s[i : i+4]))
		}
		return i
	}
	return 0
}

func apply[F vapor.Floats](dst, src []F, e entryPoints, kernel func(vapor.Vec[F]) vapor.Vec[F]) int {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	for i := registers(dst, src, e); i < n; i += vapor.MaxLanes {
		end := min(i+vapor.MaxLanes, n)
		vapor.Store(kernel(vapor.Load(src[i:end])), dst[i:end])
	}
	return n
}

// Trunc rounds every element toward zero.
func Trunc[F vapor.Floats](dst, src []F) int {
	return apply(dst, src, truncEntries, vapor.BaseTrunc[F])
}

// Fract writes x - trunc(x) for every element.
func Fract[F vapor.Floats](dst, src []F) int {
	return apply(dst, src, fractEntries, vapor.BaseFract[F])
}

// Floor rounds every element toward negative infinity.
func Floor[F vapor.Floats](dst, src []F) int {
	return apply(dst, src, floorEntries, vapor.BaseFloor[F])
}

// Ceil rounds every element toward positive infinity.
func Ceil[F vapor.Floats](dst, src []F) int {
	return apply(dst, src, ceilEntries, vapor.BaseCeil[F])
}

// Round rounds every element to the nearest integer, ties to even.
func Round[F vapor.Floats](dst, src []F) int {
	return apply(dst, src, roundEntries, vapor.BaseRound[F])
}

// Sqrt writes the correctly rounded square root of every element.
func Sqrt[F vapor.Floats](dst, src []F) int {
	return apply(dst, src, sqrtEntries, vapor.BaseSqrt[F])
}

// FMA32 writes x[i]*y[i] + z[i] rounded once, for
// i < min(len(dst), len(x), len(y), len(z)).
func FMA32(dst, x, y, z []float32) int {
	n := min(len(dst), len(x), len(y), len(z))
	i := 0
	for ; i+8 <= n; i += 8 {
		*(*vapor.F32x8)(dst[i : i+8]) = vapor.FMAF32x8(vapor.F32x8(x[i:i+8]), vapor.F32x8(y[i:i+8]), vapor.F32x8(z[i:i+8]))
	}
	for ; i < n; i += vapor.MaxLanes {
		end := min(i+vapor.MaxLanes, n)
		r := vapor.BaseFMA32(vapor.Load(x[i:end]), vapor.Load(y[i:end]), vapor.Load(z[i:end]))
		vapor.Store(r, dst[i:end])
	}
	return n
}
