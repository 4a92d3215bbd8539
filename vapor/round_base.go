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

// Rounding family in select form. Every lane computes all candidate results
// and the exponent decides which one is kept; there is no per-lane branch.
//
// With e the unbiased exponent and d the mantissa digits of the format:
//
//	e >= d      already integral, Inf or NaN: the input is returned
//	0 <= e < d  the low d-e mantissa bits are the fraction
//	e < 0       |x| < 1: the result is a signed zero or ±1

// BaseTrunc rounds every lane toward zero.
func BaseTrunc[F Floats](x Vec[F]) Vec[F] {
	f := FormatOf[F]()
	e := Sub(ExponentOf(x), Set(f.Bias))

	// Shifting the all-ones pattern right by sign+exponent+e bits leaves the
	// fraction. For |x| < 1 everything but the sign is fraction.
	shift := IfThenElse(LessThan(e, Zero[int64]()), Set[int64](1), Add(e, Set(int64(f.ExponentBits+1))))
	frac := Shr(Set(f.AllOnes()), ConvertTo[uint64](shift))
	t := BitsAs[F](AndNot(frac, AsBits(x)))

	integral := GreaterEqual(e, Set(int64(f.MantissaDigits)))
	return IfThenElse(RebindMask[F](integral), x, t)
}

// BaseFract returns x - trunc(x) for every lane.
func BaseFract[F Floats](x Vec[F]) Vec[F] {
	return Sub(x, BaseTrunc(x))
}

// BaseFloor rounds every lane toward negative infinity.
func BaseFloor[F Floats](x Vec[F]) Vec[F] {
	return roundDirected(x, false)
}

// BaseCeil rounds every lane toward positive infinity.
func BaseCeil[F Floats](x Vec[F]) Vec[F] {
	return roundDirected(x, true)
}

// roundDirected implements floor (up == false) and ceil (up == true).
func roundDirected[F Floats](x Vec[F], up bool) Vec[F] {
	f := FormatOf[F]()
	b := AsBits(x)
	e := Sub(ExponentOf(x), Set(f.Bias))
	neg := SignBit(x)
	isZero := RebindMask[F](Equal(And(b, Set(f.AbsMask())), Zero[uint64]()))

	// Adding the fraction mask before clearing it carries into the integer
	// part exactly when a fraction bit is set. Only lanes rounding away from
	// zero take the carry.
	frac := Shr(Set(f.MantissaMask()), ConvertTo[uint64](Max(e, Zero[int64]())))
	away := RebindMask[uint64](neg)
	if up {
		away = MaskNot(away)
	}
	mid := BitsAs[F](AndNot(frac, Add(b, IfThenElseZero(away, frac))))

	var small Vec[F]
	if up {
		one := Set(FromBits[F](uint64(f.Bias) << f.MantissaDigits))
		negZero := Set(FromBits[F](f.SignMask()))
		small = IfThenElse(neg, negZero, IfThenElse(isZero, x, one))
	} else {
		minusOne := Set(FromBits[F](f.SignMask() | uint64(f.Bias)<<f.MantissaDigits))
		small = IfThenElse(neg, IfThenElse(isZero, x, minusOne), Zero[F]())
	}

	integral := RebindMask[F](GreaterEqual(e, Set(int64(f.MantissaDigits))))
	fractional := RebindMask[F](GreaterEqual(e, Zero[int64]()))
	return IfThenElse(integral, x, IfThenElse(fractional, mid, small))
}

// BaseRound rounds every lane to the nearest integer, ties to even.
//
// Adding 2^d to a magnitude below 2^d leaves no fraction bits in the sum, so
// the addition itself performs the round-to-nearest-even step.
func BaseRound[F Floats](x Vec[F]) Vec[F] {
	f := FormatOf[F]()
	exp := ExponentOf(x)
	toint := Set(FromBits[F](uint64(f.Bias+int64(f.MantissaDigits)) << f.MantissaDigits))

	r := CopySign(Sub(Add(Abs(x), toint), toint), x)
	tiny := Mul(x, Zero[F]())

	huge := RebindMask[F](GreaterEqual(exp, Set(f.Bias+int64(f.MantissaDigits))))
	belowHalf := RebindMask[F](LessThan(exp, Set(f.Bias-1)))
	return IfThenElse(huge, x, IfThenElse(belowHalf, tiny, r))
}
