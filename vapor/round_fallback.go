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

//go:build !amd64.v3 || !goexperiment.simd || noasm

package vapor

// Portable rounding family for the 256-bit shapes, used when the AVX2
// backend is not compiled in.

func truncF32x8(x F32x8) F32x8 {
	var out F32x8
	Store(BaseTrunc(Load(x[:])), out[:])
	return out
}

func fractF32x8(x F32x8) F32x8 {
	var out F32x8
	Store(BaseFract(Load(x[:])), out[:])
	return out
}

func floorF32x8(x F32x8) F32x8 {
	var out F32x8
	Store(BaseFloor(Load(x[:])), out[:])
	return out
}

func ceilF32x8(x F32x8) F32x8 {
	var out F32x8
	Store(BaseCeil(Load(x[:])), out[:])
	return out
}

func roundF32x8(x F32x8) F32x8 {
	var out F32x8
	Store(BaseRound(Load(x[:])), out[:])
	return out
}

func truncF64x4(x F64x4) F64x4 {
	var out F64x4
	Store(BaseTrunc(Load(x[:])), out[:])
	return out
}

func fractF64x4(x F64x4) F64x4 {
	var out F64x4
	Store(BaseFract(Load(x[:])), out[:])
	return out
}

func floorF64x4(x F64x4) F64x4 {
	var out F64x4
	Store(BaseFloor(Load(x[:])), out[:])
	return out
}

func ceilF64x4(x F64x4) F64x4 {
	var out F64x4
	Store(BaseCeil(Load(x[:])), out[:])
	return out
}

func roundF64x4(x F64x4) F64x4 {
	var out F64x4
	Store(BaseRound(Load(x[:])), out[:])
	return out
}
