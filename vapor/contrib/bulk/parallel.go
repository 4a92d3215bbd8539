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

package bulk

import (
	"github.com/ajroetker/go-vapor/vapor"
	"github.com/ajroetker/go-vapor/vapor/contrib/workerpool"
)

// MinParallelElems is the minimum element count before the Parallel*
// functions hand work to the pool. Below it the sequential path wins.
const MinParallelElems = 1 << 15

// parallelUnary splits dst/src into one range per worker and runs fn on each.
// Range boundaries fall on multiples of vapor.MaxLanes so only the final
// range has a partial register. Falls back to fn on the whole range when pool
// is nil or the range is shorter than MinParallelElems.
func parallelUnary[F vapor.Floats](pool *workerpool.Pool, dst, src []F, fn func(dst, src []F) int) int {
	n := min(len(dst), len(src))
	if pool == nil || n < MinParallelElems {
		return fn(dst[:n], src[:n])
	}
	pool.ParallelForAligned(n, vapor.MaxLanes, func(start, end int) {
		fn(dst[start:end], src[start:end])
	})
	return n
}

// ParallelTrunc is Trunc spread across pool.
func ParallelTrunc[F vapor.Floats](pool *workerpool.Pool, dst, src []F) int {
	return parallelUnary(pool, dst, src, Trunc[F])
}

// ParallelFract is Fract spread across pool.
func ParallelFract[F vapor.Floats](pool *workerpool.Pool, dst, src []F) int {
	return parallelUnary(pool, dst, src, Fract[F])
}

// ParallelFloor is Floor spread across pool.
func ParallelFloor[F vapor.Floats](pool *workerpool.Pool, dst, src []F) int {
	return parallelUnary(pool, dst, src, Floor[F])
}

// ParallelCeil is Ceil spread across pool.
func ParallelCeil[F vapor.Floats](pool *workerpool.Pool, dst, src []F) int {
	return parallelUnary(pool, dst, src, Ceil[F])
}

// ParallelRound is Round spread across pool.
func ParallelRound[F vapor.Floats](pool *workerpool.Pool, dst, src []F) int {
	return parallelUnary(pool, dst, src, Round[F])
}

// ParallelSqrt is Sqrt spread across pool.
func ParallelSqrt[F vapor.Floats](pool *workerpool.Pool, dst, src []F) int {
	return parallelUnary(pool, dst, src, Sqrt[F])
}

// ParallelFMA32 is FMA32 spread across pool.
func ParallelFMA32(pool *workerpool.Pool, dst, x, y, z []float32) int {
	n := min(len(dst), len(x), len(y), len(z))
	if pool == nil || n < MinParallelElems {
		return FMA32(dst[:n], x[:n], y[:n], z[:n])
	}
	pool.ParallelForAligned(n, vapor.MaxLanes, func(start, end int) {
		FMA32(dst[start:end], x[start:end], y[start:end], z[start:end])
	})
	return n
}
