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

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestEntryPointsMatchScalar checks every exported entry point, whatever
// backend serves it, against the branching scalar reference.
func TestEntryPointsMatchScalar(t *testing.T) {
	t.Run("float32", func(t *testing.T) { testEntryPoints(t, ops32()) })
	t.Run("float64", func(t *testing.T) { testEntryPoints(t, ops64()) })
}

func testEntryPoints[F Floats](t *testing.T, ops []op[F]) {
	xs := append(specialValues[F](), randomBits[F](4096, 1)...)
	for _, o := range ops {
		var ys, zs []F
		if o.arity == 3 {
			ys = randomBits[F](len(xs), 2)
			zs = randomBits[F](len(xs), 3)
		}
		want := make([]F, len(xs))
		for i, x := range xs {
			if o.arity == 3 {
				want[i] = o.ref(x, ys[i], zs[i])
			} else {
				want[i] = o.ref(x, 0, 0)
			}
		}
		for _, e := range o.entries {
			t.Run(e.name, func(t *testing.T) {
				got := e.run(xs, ys, zs)
				if diff := cmp.Diff(want, got, sameBits[F]()); diff != "" {
					t.Errorf("%s mismatch (-scalar +vector):\n%s", e.name, diff)
				}
			})
		}
	}
}

// TestScalarMatchesMath checks the scalar references against the math
// package, which implements the same IEEE-754 operations.
func TestScalarMatchesMath(t *testing.T) {
	refs := []struct {
		name   string
		scalar func(float64) float64
		math   func(float64) float64
	}{
		{"Trunc", TruncScalar[float64], math.Trunc},
		{"Floor", FloorScalar[float64], math.Floor},
		{"Ceil", CeilScalar[float64], math.Ceil},
		{"Round", RoundScalar[float64], math.RoundToEven},
		{"Sqrt", SqrtScalar[float64], math.Sqrt},
	}
	same := sameBits[float64]()
	xs := append(specialValues[float64](), randomBits[float64](1<<14, 7)...)
	for _, r := range refs {
		t.Run(r.name+"64", func(t *testing.T) {
			for _, x := range xs {
				if got, want := r.scalar(x), r.math(x); !cmp.Equal(got, want, same) {
					t.Errorf("%s(%v [%#x]): got %v [%#x], want %v [%#x]", r.name, x, Bits(x), got, Bits(got), want, Bits(want))
				}
			}
		})
		t.Run(r.name+"32", func(t *testing.T) {
			for _, x := range randomBits[float32](1<<14, 8) {
				var got float32
				switch r.name {
				case "Trunc":
					got = TruncScalar(x)
				case "Floor":
					got = FloorScalar(x)
				case "Ceil":
					got = CeilScalar(x)
				case "Round":
					got = RoundScalar(x)
				case "Sqrt":
					got = SqrtScalar(x)
				}
				want := float32(r.math(float64(x)))
				if !cmp.Equal(got, want, sameBits[float32]()) {
					t.Errorf("%s(%v [%#x]): got %v, want %v", r.name, x, Bits(x), got, want)
				}
			}
		})
	}
}

func TestRoundingSpecialCases(t *testing.T) {
	negZero := math.Copysign(0, -1)
	inf := math.Inf(1)
	tests := []struct {
		op   string
		in   float64
		want float64
	}{
		{"Round", 2.5, 2},
		{"Round", -2.5, -2},
		{"Round", 0.5, 0},
		{"Round", 1.5, 2},
		{"Round", 3.5, 4},
		{"Round", -0.4, negZero},
		{"Round", 0x1p52 + 1, 0x1p52 + 1},
		{"Floor", 0, 0},
		{"Floor", negZero, negZero},
		{"Floor", -0.5, -1},
		{"Floor", 0.5, 0},
		{"Floor", -1, -1},
		{"Floor", -inf, -inf},
		{"Ceil", negZero, negZero},
		{"Ceil", 0.5, 1},
		{"Ceil", -0.5, negZero},
		{"Ceil", 1.25, 2},
		{"Ceil", inf, inf},
		{"Trunc", -1.75, -1},
		{"Trunc", -0.75, negZero},
		{"Trunc", 1e300, 1e300},
		{"Fract", 1.75, 0.75},
		{"Fract", -1.75, -0.75},
		{"Fract", 3, 0},
		{"Fract", inf, math.NaN()},
	}

	kernels32 := map[string]func(F32x4) F32x4{
		"Round": RoundF32x4, "Floor": FloorF32x4, "Ceil": CeilF32x4, "Trunc": TruncF32x4, "Fract": FractF32x4,
	}
	kernels64 := map[string]func(F64x4) F64x4{
		"Round": RoundF64x4, "Floor": FloorF64x4, "Ceil": CeilF64x4, "Trunc": TruncF64x4, "Fract": FractF64x4,
	}
	same32, same64 := sameBits[float32](), sameBits[float64]()
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s(%v)", tt.op, tt.in), func(t *testing.T) {
			if got := kernels64[tt.op](F64x4{tt.in, tt.in, tt.in, tt.in}); !cmp.Equal(got[2], tt.want, same64) {
				t.Errorf("%sF64x4(%v): got %v, want %v", tt.op, tt.in, got[2], tt.want)
			}
			// Inputs beyond float32 range only apply to float64.
			if math.Abs(tt.in) > math.MaxFloat32 && !math.IsInf(tt.in, 0) || tt.in == 0x1p52+1 {
				return
			}
			in, want := float32(tt.in), float32(tt.want)
			if got := kernels32[tt.op](F32x4{in, in, in, in}); !cmp.Equal(got[1], want, same32) {
				t.Errorf("%sF32x4(%v): got %v, want %v", tt.op, in, got[1], want)
			}
		})
	}
}

// roundingEntries holds the rounding entry points of one register shape.
type roundingEntries[F Floats] struct {
	trunc, fract, floor, ceil, round entry[F]
}

func roundingInputs[F Floats](seed uint64) []F {
	xs := specialValues[F]()
	for i := range 512 {
		xs = append(xs, F(i)/4-64)
	}
	return append(xs, randomBits[F](4096, seed)...)
}

func checkRoundingProperties[F Floats](t *testing.T, e roundingEntries[F], xs []F) {
	t.Helper()
	same := sameBits[F]()
	tr, fr := e.trunc.run(xs, nil, nil), e.fract.run(xs, nil, nil)
	fl, ce, ro := e.floor.run(xs, nil, nil), e.ceil.run(xs, nil, nil), e.round.run(xs, nil, nil)
	trTwice, flTwice := e.trunc.run(tr, nil, nil), e.floor.run(fl, nil, nil)
	ceTwice, roTwice := e.ceil.run(ce, nil, nil), e.round.run(ro, nil, nil)

	for i, v := range xs {
		if v != v {
			continue
		}
		// Idempotence.
		if !cmp.Equal(trTwice[i], tr[i], same) {
			t.Errorf("%s twice on %v = %v, want %v", e.trunc.name, v, trTwice[i], tr[i])
		}
		if !cmp.Equal(flTwice[i], fl[i], same) {
			t.Errorf("%s twice on %v = %v, want %v", e.floor.name, v, flTwice[i], fl[i])
		}
		if !cmp.Equal(ceTwice[i], ce[i], same) {
			t.Errorf("%s twice on %v = %v, want %v", e.ceil.name, v, ceTwice[i], ce[i])
		}
		if !cmp.Equal(roTwice[i], ro[i], same) {
			t.Errorf("%s twice on %v = %v, want %v", e.round.name, v, roTwice[i], ro[i])
		}

		wide := float64(v)
		if math.IsInf(wide, 0) {
			continue
		}
		integral := math.Trunc(wide) == wide
		if (fl[i] == v) != integral {
			t.Errorf("%s(%v) = %v, but %v integral is %v", e.floor.name, v, fl[i], v, integral)
		}
		if (ce[i] == v) != integral {
			t.Errorf("%s(%v) = %v, but %v integral is %v", e.ceil.name, v, ce[i], v, integral)
		}
		if tr[i]+fr[i] != v {
			t.Errorf("%s(%v) + %s(%v) = %v", e.trunc.name, v, e.fract.name, v, tr[i]+fr[i])
		}
		if fl[i] > v || ce[i] < v || ce[i]-fl[i] > 1 {
			t.Errorf("%s/%s(%v) = %v/%v do not bracket", e.floor.name, e.ceil.name, v, fl[i], ce[i])
		}
		if math.Abs(float64(ro[i])-wide) > 0.5 {
			t.Errorf("%s(%v) = %v is more than one half away", e.round.name, v, ro[i])
		}
	}
}

func TestRoundingProperties(t *testing.T) {
	t.Run("F32x4", func(t *testing.T) {
		checkRoundingProperties(t, roundingEntries[float32]{
			unary32x4("TruncF32x4", TruncF32x4), unary32x4("FractF32x4", FractF32x4),
			unary32x4("FloorF32x4", FloorF32x4), unary32x4("CeilF32x4", CeilF32x4),
			unary32x4("RoundF32x4", RoundF32x4),
		}, roundingInputs[float32](12))
	})
	t.Run("F32x8", func(t *testing.T) {
		checkRoundingProperties(t, roundingEntries[float32]{
			unary32x8("TruncF32x8", TruncF32x8), unary32x8("FractF32x8", FractF32x8),
			unary32x8("FloorF32x8", FloorF32x8), unary32x8("CeilF32x8", CeilF32x8),
			unary32x8("RoundF32x8", RoundF32x8),
		}, roundingInputs[float32](13))
	})
	t.Run("F64x2", func(t *testing.T) {
		checkRoundingProperties(t, roundingEntries[float64]{
			unary64x2("TruncF64x2", TruncF64x2), unary64x2("FractF64x2", FractF64x2),
			unary64x2("FloorF64x2", FloorF64x2), unary64x2("CeilF64x2", CeilF64x2),
			unary64x2("RoundF64x2", RoundF64x2),
		}, roundingInputs[float64](14))
	})
	t.Run("F64x4", func(t *testing.T) {
		checkRoundingProperties(t, roundingEntries[float64]{
			unary64x4("TruncF64x4", TruncF64x4), unary64x4("FractF64x4", FractF64x4),
			unary64x4("FloorF64x4", FloorF64x4), unary64x4("CeilF64x4", CeilF64x4),
			unary64x4("RoundF64x4", RoundF64x4),
		}, roundingInputs[float64](11))
	})
}

func TestSqrtSpecialCases(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		in, want float64
	}{
		{4, 2},
		{2, math.Sqrt2},
		{0, 0},
		{negZero, negZero},
		{math.Inf(1), math.Inf(1)},
		{-1, math.NaN()},
		{math.Inf(-1), math.NaN()},
		{math.NaN(), math.NaN()},
		{0x1p-1074, 0x1p-537},
		{0x1p-1022, 0x1p-511},
	}
	same := sameBits[float64]()
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			got := SqrtF64x2(F64x2{tt.in, 1})
			if !cmp.Equal(got[0], tt.want, same) {
				t.Errorf("SqrtF64x2(%v): got %v, want %v", tt.in, got[0], tt.want)
			}
			if got[1] != 1 {
				t.Errorf("SqrtF64x2: neighbouring lane changed to %v", got[1])
			}
		})
	}

	// Invalid inputs produce the canonical quiet NaN.
	got := SqrtF32x4(F32x4{-1, float32(math.Inf(-1)), math.Float32frombits(0x7f800001), -0x1p-149})
	for i, v := range got {
		if b := math.Float32bits(v); b != nanBits32 {
			t.Errorf("SqrtF32x4: lane %d: got %#x, want %#x", i, b, nanBits32)
		}
	}
	if got := SqrtF32x2(F32x2{0x1p-148, 0x1p-149}); got[0] != 0x1p-74 || got[1] != float32(math.Sqrt(0x1p-149)) {
		t.Errorf("SqrtF32x2 subnormals: got %v", got)
	}
}

func TestFMA32(t *testing.T) {
	x := float32(1 + 0x1p-12)
	tests := []struct {
		name    string
		x, y, z float32
		want    float32
	}{
		// The float64 sum is a float32 tie; only the exact value breaks it.
		{"Halfway", x, x, 0x1p-70, 1 + 0x1p-11 + 0x1p-23},
		{"HalfwayBelow", x, x, -0x1p-70, 1 + 0x1p-11},
		{"Exact", 3, 4, 5, 17},
		{"Cancellation", 1 + 0x1p-23, 1 - 0x1p-23, -1, -0x1p-46},
		{"SignedZero", 2, -3, 6, 0},
		{"InfProduct", float32(math.Inf(1)), 2, 1, float32(math.Inf(1))},
		{"InfMinusInf", float32(math.Inf(1)), 1, float32(math.Inf(-1)), float32(math.NaN())},
		{"NaN", float32(math.NaN()), 1, 1, float32(math.NaN())},
		{"Overflow", math.MaxFloat32, 2, 0, float32(math.Inf(1))},
	}
	same := sameBits[float32]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FMAF32x8(F32x8{tt.x}, F32x8{tt.y}, F32x8{tt.z})
			if !cmp.Equal(got[0], tt.want, same) {
				t.Errorf("FMAF32x8(%v, %v, %v): got %v, want %v", tt.x, tt.y, tt.z, got[0], tt.want)
			}
			if s := FMA32Scalar(tt.x, tt.y, tt.z); !cmp.Equal(s, tt.want, same) {
				t.Errorf("FMA32Scalar(%v, %v, %v): got %v, want %v", tt.x, tt.y, tt.z, s, tt.want)
			}
		})
	}
}

// TestFMA32MixedRegister runs registers whose lanes all take the plain
// float64 path next to registers where some lanes need the halfway nudge.
func TestFMA32MixedRegister(t *testing.T) {
	h := float32(1 + 0x1p-12)
	tests := []struct {
		name    string
		x, y, z F32x8
	}{
		{"Plain", F32x8{1, 2, 3, 4, 5, 6, 7, 8}, F32x8{0.5, 0.25, -1, 3, 1e-3, 7, 1e10, -2}, F32x8{1, -1, 0.1, 2, 3, 4, 5, 6}},
		{"OneHalfway", F32x8{1, 2, h, 4, 5, 6, 7, 8}, F32x8{0.5, 0.25, h, 3, 1e-3, 7, 1e10, -2}, F32x8{1, -1, 0x1p-70, 2, 3, 4, 5, 6}},
		{"AllHalfway", F32x8{h, h, h, h, h, h, h, h}, F32x8{h, h, h, h, h, h, h, h}, F32x8{0x1p-70, -0x1p-70, 0x1p-70, -0x1p-70, 0x1p-70, -0x1p-70, 0x1p-70, -0x1p-70}},
	}
	same := sameBits[float32]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FMAF32x8(tt.x, tt.y, tt.z)
			base := BaseFMA32(Load(tt.x[:]), Load(tt.y[:]), Load(tt.z[:]))
			for i := range 8 {
				want := FMA32Scalar(tt.x[i], tt.y[i], tt.z[i])
				if !cmp.Equal(got[i], want, same) {
					t.Errorf("FMAF32x8: lane %d: got %v, want %v", i, got[i], want)
				}
				if !cmp.Equal(base.data[i], want, same) {
					t.Errorf("BaseFMA32: lane %d: got %v, want %v", i, base.data[i], want)
				}
			}
			// A partial register stays partial on either path.
			if short := BaseFMA32(Load(tt.x[:3]), Load(tt.y[:3]), Load(tt.z[:3])); short.n != 3 {
				t.Errorf("BaseFMA32 of 3 lanes: got %d lanes", short.n)
			}
		})
	}
}

// TestFMA32MatchesMath compares against math.FMA where its float64 result
// narrows to float32 without a second rounding.
func TestFMA32MatchesMath(t *testing.T) {
	xs := randomBits[float32](1<<14, 21)
	ys := randomBits[float32](1<<14, 22)
	zs := randomBits[float32](1<<14, 23)
	for i := range xs {
		wide := math.FMA(float64(xs[i]), float64(ys[i]), float64(zs[i]))
		if float64(float32(wide)) != wide {
			continue
		}
		want := float32(wide)
		if got := FMA32Scalar(xs[i], ys[i], zs[i]); !cmp.Equal(got, want, sameBits[float32]()) {
			t.Errorf("FMA32Scalar(%v, %v, %v): got %v, want %v", xs[i], ys[i], zs[i], got, want)
		}
	}
}

func TestLanesIndependent(t *testing.T) {
	in := F32x8{2.5, -0.5, float32(math.NaN()), 7.25, float32(math.Inf(-1)), 1e10, -3.5, 0}
	got := RoundF32x8(in)
	for i, v := range in {
		one := RoundF32x2(F32x2{v, v})
		if !cmp.Equal(got[i], one[0], sameBits[float32]()) {
			t.Errorf("RoundF32x8: lane %d: got %v, want %v", i, got[i], one[0])
		}
	}
}

func TestCurrentLevel(t *testing.T) {
	level := CurrentLevel()
	if level != DispatchPortable && level != DispatchAVX2 {
		t.Fatalf("CurrentLevel() = %d", level)
	}
	if CurrentName() != level.String() {
		t.Errorf("CurrentName() = %q, want %q", CurrentName(), level.String())
	}
	t.Logf("select backend: %s", CurrentName())
}
