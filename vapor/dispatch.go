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

// DispatchLevel identifies the backend compiled in for the 256-bit shapes.
//
// The backend is chosen by build constraints only: GOAMD64=v3 together with
// GOEXPERIMENT=simd selects DispatchAVX2, and the noasm tag forces
// DispatchPortable. Nothing is detected at run time.
type DispatchLevel int

const (
	// DispatchPortable indicates the select kernels written against Vec.
	DispatchPortable DispatchLevel = iota

	// DispatchAVX2 indicates simd/archsimd kernels for F32x8 and F64x4.
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchPortable:
		return "portable"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// CurrentLevel returns the backend compiled into this binary.
func CurrentLevel() DispatchLevel {
	return compiledLevel
}

// CurrentName returns the name of the backend compiled into this binary.
func CurrentName() string {
	return compiledLevel.String()
}
