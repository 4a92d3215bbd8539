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
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"

	"github.com/ajroetker/go-vapor/vapor"
	"github.com/ajroetker/go-vapor/vapor/contrib/workerpool"
)

// sweepBatch is the number of inputs a worker claims at a time. It is a
// multiple of every evaluation width.
const sweepBatch = 1 << 16

// Report summarizes the sweep of one kernel.
type Report struct {
	Kernel     string
	Exhaustive bool
	Bound      uint64
	Checked    uint64
	Mismatches uint64
	WorstULP   uint64

	// Bit patterns of the inputs that produced WorstULP, and the two results.
	WorstInput []uint64
	Got, Want  uint64
}

// Failed reports whether any input exceeded the bound.
func (r Report) Failed() bool {
	return r.Mismatches > 0
}

type tally struct {
	checked    uint64
	mismatches uint64
	worst      uint64
	input      [3]uint64
	got, want  uint64
	seen       bool
}

func (t *tally) record(dist, bound uint64, input [3]uint64, got, want uint64) {
	t.checked++
	if dist > bound {
		t.mismatches++
	}
	if !t.seen || dist > t.worst {
		t.worst, t.input, t.got, t.want, t.seen = dist, input, got, want, true
	}
}

func (t *tally) merge(o tally) {
	t.checked += o.checked
	t.mismatches += o.mismatches
	if o.seen && (!t.seen || o.worst > t.worst) {
		t.worst, t.input, t.got, t.want, t.seen = o.worst, o.input, o.got, o.want, true
	}
}

// patternCount is the number of float32 bit patterns.
const patternCount = uint64(1) << 32

// exhaustiveCount returns patternCount as an int, or false when an int whose
// largest value is maxInt cannot hold it.
func exhaustiveCount(maxInt uint64) (int, bool) {
	if maxInt < patternCount {
		return 0, false
	}
	n := patternCount
	return int(n), true
}

// Sweeper compares kernels against their references.
type Sweeper struct {
	Pool   *workerpool.Pool
	Logger *Logger

	// Samples is the number of random inputs per kernel.
	Samples int
	Seed    uint64

	// Exhaustive enumerates all 2^32 inputs of unary float32 kernels.
	// Other kernels fall back to sampling.
	Exhaustive bool

	// MaxULP replaces every kernel's own bound when OverrideULP is set.
	MaxULP      uint64
	OverrideULP bool
}

// Run sweeps one kernel: the special-value corpus first, then sampled or
// enumerated inputs spread over the worker pool.
func (s *Sweeper) Run(ctx context.Context, k kernel) (Report, error) {
	bound := k.Bound
	if s.OverrideULP {
		bound = s.MaxULP
	}
	exhaustive := s.Exhaustive && k.Exhaustible()
	n := s.Samples
	if exhaustive {
		var ok bool
		if n, ok = exhaustiveCount(math.MaxInt); !ok {
			return Report{}, invalidFlag("exhaustive", "%d float32 patterns do not fit a %d-bit int", patternCount, strconv.IntSize)
		}
	}
	log := s.Logger.WithKernel(k.Name)
	log.Debug("sweep started", "inputs", n, "exhaustive", exhaustive, "bound", bound)

	var (
		mu  sync.Mutex
		sum tally
	)
	sum.merge(checkCorpus(k, bound))

	err := s.Pool.ParallelForAtomicBatchedContext(ctx, n, sweepBatch, func(start, end int) {
		var t tally
		switch {
		case exhaustive:
			xs := make([]float32, end-start)
			for i := range xs {
				xs[i] = math.Float32frombits(uint32(start + i))
			}
			check32(k, bound, xs, nil, nil, &t)
		case k.Width == 32:
			rng := rand.New(rand.NewPCG(s.Seed, uint64(start)))
			xs, ys, zs := make([]float32, end-start), make([]float32, end-start), make([]float32, end-start)
			for i := range xs {
				if k.Arity == 3 {
					xs[i], ys[i], zs[i] = sampleFMA(rng)
				} else {
					xs[i] = sample32(rng)
				}
			}
			check32(k, bound, xs, ys, zs, &t)
		default:
			rng := rand.New(rand.NewPCG(s.Seed, uint64(start)))
			xs := make([]float64, end-start)
			for i := range xs {
				xs[i] = sample64(rng)
			}
			check64(k, bound, xs, &t)
		}
		mu.Lock()
		sum.merge(t)
		mu.Unlock()
	})
	if err != nil {
		return Report{}, fmt.Errorf("sweep %s interrupted: %w", k.Name, err)
	}

	r := Report{
		Kernel:     k.Name,
		Exhaustive: exhaustive,
		Bound:      bound,
		Checked:    sum.checked,
		Mismatches: sum.mismatches,
		WorstULP:   sum.worst,
		WorstInput: sum.input[:k.Arity],
		Got:        sum.got,
		Want:       sum.want,
	}
	if r.Failed() {
		log.Warn("kernel exceeds bound", "mismatches", r.Mismatches, "worst_ulp", r.WorstULP, "input", fmt.Sprintf("%#x", r.WorstInput))
	} else {
		log.Info("kernel ok", "checked", r.Checked, "worst_ulp", r.WorstULP)
	}
	return r, nil
}

// checkCorpus runs the special values; fma32 gets every triple.
func checkCorpus(k kernel, bound uint64) tally {
	var t tally
	switch {
	case k.Width == 64:
		check64(k, bound, special64, &t)
	case k.Arity == 1:
		check32(k, bound, special32, nil, nil, &t)
	default:
		n := len(special32)
		xs, ys, zs := make([]float32, 0, n*n*n), make([]float32, 0, n*n*n), make([]float32, 0, n*n*n)
		for _, x := range special32 {
			for _, y := range special32 {
				for _, z := range special32 {
					xs, ys, zs = append(xs, x), append(ys, y), append(zs, z)
				}
			}
		}
		check32(k, bound, xs, ys, zs, &t)
	}
	return t
}

// check32 evaluates k over the inputs eight lanes at a time. ys and zs are
// only read for ternary kernels.
func check32(k kernel, bound uint64, xs, ys, zs []float32, t *tally) {
	for i := 0; i < len(xs); i += 8 {
		var x, y, z vapor.F32x8
		m := copy(x[:], xs[i:])
		if k.Arity == 3 {
			copy(y[:], ys[i:])
			copy(z[:], zs[i:])
		}
		out := k.eval32(x, y, z)
		for l := range m {
			want := k.ref32(x[l], y[l], z[l])
			in := [3]uint64{uint64(math.Float32bits(x[l])), uint64(math.Float32bits(y[l])), uint64(math.Float32bits(z[l]))}
			t.record(ulpDistance32(out[l], want), bound, in, uint64(math.Float32bits(out[l])), uint64(math.Float32bits(want)))
		}
	}
}

// check64 evaluates k over the inputs four lanes at a time.
func check64(k kernel, bound uint64, xs []float64, t *tally) {
	for i := 0; i < len(xs); i += 4 {
		var x vapor.F64x4
		m := copy(x[:], xs[i:])
		out := k.eval64(x)
		for l := range m {
			want := k.ref64(x[l])
			t.record(ulpDistance64(out[l], want), bound, [3]uint64{math.Float64bits(x[l])}, math.Float64bits(out[l]), math.Float64bits(want))
		}
	}
}
