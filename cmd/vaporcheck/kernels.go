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
	"math/big"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-vapor/vapor"
)

// kernel is one vapor entry point paired with its reference.
//
// 32-bit kernels are evaluated eight lanes at a time through the F32x8 entry
// points and 64-bit kernels four lanes at a time through F64x4, which are the
// shapes with an accelerated backend.
type kernel struct {
	Name  string
	Width int
	Arity int
	// Bound is the documented ULP bound against the reference.
	Bound uint64

	eval32 func(x, y, z vapor.F32x8) vapor.F32x8
	ref32  func(x, y, z float32) float32
	eval64 func(x vapor.F64x4) vapor.F64x4
	ref64  func(x float64) float64
}

// Exhaustible reports whether every input of the kernel can be enumerated.
func (k kernel) Exhaustible() bool {
	return k.Width == 32 && k.Arity == 1
}

func unary32(fn func(vapor.F32x8) vapor.F32x8) func(x, _, _ vapor.F32x8) vapor.F32x8 {
	return func(x, _, _ vapor.F32x8) vapor.F32x8 { return fn(x) }
}

func ref32Of(fn func(float64) float64) func(x, _, _ float32) float32 {
	return func(x, _, _ float32) float32 { return float32(fn(float64(x))) }
}

func fract(x float64) float64 {
	return x - math.Trunc(x)
}

// sqrtRef returns the default quiet NaN for invalid inputs, matching the
// vapor kernels; math.Sqrt propagates NaN payloads instead.
func sqrtRef(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return math.NaN()
	}
	return math.Sqrt(x)
}

// fma32Ref computes x*y + z exactly and rounds once to float32.
func fma32Ref(x, y, z float32) float32 {
	xd, yd, zd := float64(x), float64(y), float64(z)
	switch {
	case math.IsNaN(xd) || math.IsNaN(yd) || math.IsNaN(zd),
		math.IsInf(xd, 0) || math.IsInf(yd, 0) || math.IsInf(zd, 0):
		return float32(xd*yd + zd)
	}
	// The product is exact in float64; the sum needs enough bits to cover
	// the full float32 exponent range.
	prod := new(big.Float).SetPrec(1024).SetFloat64(xd * yd)
	sum := new(big.Float).SetPrec(1024).Add(prod, new(big.Float).SetFloat64(zd))
	if sum.Sign() == 0 {
		// Exact zero: IEEE sign rules for x*y + z under round-to-nearest.
		return float32(xd*yd + zd)
	}
	f, _ := sum.Float32()
	return f
}

var kernels = []kernel{
	{Name: "trunc32", Width: 32, Arity: 1, eval32: unary32(vapor.TruncF32x8), ref32: ref32Of(math.Trunc)},
	{Name: "fract32", Width: 32, Arity: 1, eval32: unary32(vapor.FractF32x8), ref32: func(x, _, _ float32) float32 { return x - float32(math.Trunc(float64(x))) }},
	{Name: "floor32", Width: 32, Arity: 1, eval32: unary32(vapor.FloorF32x8), ref32: ref32Of(math.Floor)},
	{Name: "ceil32", Width: 32, Arity: 1, eval32: unary32(vapor.CeilF32x8), ref32: ref32Of(math.Ceil)},
	{Name: "round32", Width: 32, Arity: 1, eval32: unary32(vapor.RoundF32x8), ref32: ref32Of(math.RoundToEven)},
	{Name: "sqrt32", Width: 32, Arity: 1, eval32: unary32(vapor.SqrtF32x8), ref32: ref32Of(sqrtRef)},
	{Name: "fma32", Width: 32, Arity: 3, Bound: 1, eval32: vapor.FMAF32x8, ref32: fma32Ref},
	{Name: "trunc64", Width: 64, Arity: 1, eval64: vapor.TruncF64x4, ref64: math.Trunc},
	{Name: "fract64", Width: 64, Arity: 1, eval64: vapor.FractF64x4, ref64: fract},
	{Name: "floor64", Width: 64, Arity: 1, eval64: vapor.FloorF64x4, ref64: math.Floor},
	{Name: "ceil64", Width: 64, Arity: 1, eval64: vapor.CeilF64x4, ref64: math.Ceil},
	{Name: "round64", Width: 64, Arity: 1, eval64: vapor.RoundF64x4, ref64: math.RoundToEven},
	{Name: "sqrt64", Width: 64, Arity: 1, eval64: vapor.SqrtF64x4, ref64: sqrtRef},
}

// kernelNames lists every kernel name in sweep order.
func kernelNames() []string {
	return lo.Map(kernels, func(k kernel, _ int) string { return k.Name })
}

// selectKernels resolves a comma-separated list of kernel names. "all"
// selects every kernel.
func selectKernels(list string) ([]kernel, error) {
	if list == "" || list == "all" {
		return kernels, nil
	}
	names := lo.Uniq(lo.Map(strings.Split(list, ","), func(s string, _ int) string {
		return strings.ToLower(strings.TrimSpace(s))
	}))
	names = lo.Compact(names)
	if len(names) == 0 {
		return nil, invalidFlag("ops", "no kernels selected")
	}
	var selected []kernel
	for _, name := range names {
		k, ok := lo.Find(kernels, func(k kernel) bool { return k.Name == name })
		if !ok {
			return nil, invalidFlag("ops", "unknown kernel %q (available: %s)", name, strings.Join(kernelNames(), ", "))
		}
		selected = append(selected, k)
	}
	slices.SortStableFunc(selected, func(a, b kernel) int {
		return slices.Index(kernelNames(), a.Name) - slices.Index(kernelNames(), b.Name)
	})
	return selected, nil
}
