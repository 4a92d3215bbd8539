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

import "math"

// orderKey32 maps float32 bits onto an unsigned scale that increases with
// the represented value, with -0 one step below +0.
func orderKey32(b uint32) uint32 {
	if b&0x80000000 != 0 {
		return ^b
	}
	return b | 0x80000000
}

func orderKey64(b uint64) uint64 {
	if b&(1<<63) != 0 {
		return ^b
	}
	return b | 1<<63
}

// ulpDistance32 returns the number of representable values between got and
// want. Two NaNs match regardless of payload; a NaN against a number is the
// maximum distance.
func ulpDistance32(got, want float32) uint64 {
	gn, wn := math.IsNaN(float64(got)), math.IsNaN(float64(want))
	switch {
	case gn && wn:
		return 0
	case gn || wn:
		return math.MaxUint64
	}
	a, b := orderKey32(math.Float32bits(got)), orderKey32(math.Float32bits(want))
	if a < b {
		a, b = b, a
	}
	return uint64(a - b)
}

func ulpDistance64(got, want float64) uint64 {
	gn, wn := math.IsNaN(got), math.IsNaN(want)
	switch {
	case gn && wn:
		return 0
	case gn || wn:
		return math.MaxUint64
	}
	a, b := orderKey64(math.Float64bits(got)), orderKey64(math.Float64bits(want))
	if a < b {
		a, b = b, a
	}
	return a - b
}
