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

// BaseFMA32 computes x*y + z with a single rounding for float32 lanes.
//
// The product of two float32 values is exact in float64, so only the sum is
// rounded before narrowing. That double rounding can go wrong only when the
// float64 sum lands exactly halfway between two float32 values; those lanes
// are nudged one float64 ulp toward the exact value so the narrowing rounds
// the right way.
//
// The technique relies on float64 carrying more than twice the float32
// mantissa bits and has no float64 counterpart.
func BaseFMA32(x, y, z Vec[float32]) Vec[float32] {
	xd := ConvertTo[float64](x)
	zd := ConvertTo[float64](z)
	xy := Mul(xd, ConvertTo[float64](y))
	res := Add(xy, zd)
	rb := AsUint64(res)

	halfway := RebindMask[float64](Equal(And(rb, Set[uint64](0x1fffffff)), Set[uint64](0x10000000)))
	exact := MaskAnd(Equal(Sub(res, xy), zd), Equal(Sub(res, zd), xy))
	fast := MaskOr(MaskNot(halfway), MaskOr(IsNaN(res), exact))
	if fast.AllTrue() {
		return ConvertTo[float32](res)
	}

	// errv is the rounding error of the float64 sum; its sign says which way
	// the exact value lies.
	neg := SignBit(res)
	zFirst := MaskNot(MaskXor(neg, GreaterThan(zd, xy)))
	errv := IfThenElse(zFirst, Add(Sub(xy, res), zd), Add(Sub(zd, res), xy))

	up := RebindMask[uint64](MaskNot(MaskXor(neg, LessThan(errv, Zero[float64]()))))
	nudged := AsFloat64(IfThenElse(up, Add(rb, Set[uint64](1)), Sub(rb, Set[uint64](1))))

	return ConvertTo[float32](IfThenElse(fast, res, nudged))
}
