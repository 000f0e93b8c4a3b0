package tunit

import (
	"math/big"
	"math/bits"
)

// algebra.go implements component D: the unit algebra over
// Descriptors -- conversion factor, divisibility, GCD and castability.

// CastingMode is the caller-provided strictness dial (spec.md §6, §4.D),
// ordered strictest to most permissive.
type CastingMode int

const (
	CastNo CastingMode = iota
	CastEquiv
	CastSafe
	CastSameKind
	CastUnsafe
)

func (m CastingMode) String() string {
	switch m {
	case CastNo:
		return "No"
	case CastEquiv:
		return "Equiv"
	case CastSafe:
		return "Safe"
	case CastSameKind:
		return "SameKind"
	case CastUnsafe:
		return "Unsafe"
	default:
		return "Invalid"
	}
}

func gcdInt64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// linearChainFactor returns the exact multiplicative step from
// linearOrder[coarseIdx] down to linearOrder[fineIdx], or false if the
// accumulated product overflows int64 -- a checked multiplication,
// replacing the source's "top 8 bits nonzero" heuristic per design
// note §9.
func linearChainFactor(coarseIdx, fineIdx int) (int64, bool) {
	acc := uint64(1)
	for i := coarseIdx; i < fineIdx; i++ {
		f := uint64(subDayFactors[linearOrder[i]])
		hi, lo := bits.Mul64(acc, f)
		if hi != 0 || lo > uint64(1)<<62 {
			return 0, false
		}
		acc = lo
	}
	return int64(acc), true
}

// exactFactorCoarserToFiner returns the exact integer count of `fine`
// units per one `coarse` unit, for coarse/fine both linear or both the
// two nonlinear bases (Year, Month). It must not be called across the
// nonlinear/linear boundary, whose factors are inexact (rule 5).
func exactFactorCoarserToFiner(coarse, fine Base) (int64, error) {
	if coarse.IsNonlinear() && fine.IsNonlinear() {
		// The only pair is Year (coarser) -> Month (finer).
		return 12, nil
	}
	ci, ok1 := linearIndex(coarse)
	fi, ok2 := linearIndex(fine)
	if !ok1 || !ok2 {
		return 0, newErr(KindOverflow, "no exact linear factor between %s and %s", coarse, fine)
	}
	f, ok := linearChainFactor(ci, fi)
	if !ok {
		return 0, newErr(KindOverflow, "conversion factor between %s and %s overflows", coarse, fine)
	}
	return f, nil
}

// averageGregorianFactor returns (num, den) such that 1 unit of the
// nonlinear base nb equals num/den units of the linear base lb,
// using the average-Gregorian constants of spec.md §4.D rule 5. Only
// valid for instant (non-strict) conversions.
func averageGregorianFactor(nb, lb Base) (num, den int64, err error) {
	// Year -> Day: (97 + 400*365) / 400.
	num, den = 97+400*365, 400
	switch nb {
	case BaseYear:
		// num/den already in days-per-year.
	case BaseMonth:
		den *= 12
	default:
		return 0, 0, newErr(KindCastingForbidden, "%s is not a nonlinear base", nb)
	}

	switch lb {
	case BaseWeek:
		den *= 7
		return num, den, nil
	case BaseDay:
		return num, den, nil
	default:
		dayIdx, _ := linearIndex(BaseDay)
		lbIdx, ok := linearIndex(lb)
		if !ok {
			return 0, 0, newErr(KindOverflow, "no linear target for %s", lb)
		}
		f, ok := linearChainFactor(dayIdx, lbIdx)
		if !ok {
			return 0, 0, newErr(KindOverflow, "average-Gregorian factor to %s overflows", lb)
		}
		num *= f
		return num, den, nil
	}
}

// ConversionFactor returns the exact reduced fraction (num, den) such
// that a source tick t_s becomes t_s*num/den in the destination unit
// (spec.md §4.D). strictNonlinear selects the duration path (Year and
// Month never convert to anything else) versus the instant path
// (average-Gregorian factors permitted).
func ConversionFactor(src, dst Descriptor, strictNonlinear bool) (num, den int64, err error) {
	if src.Base == BaseGeneric {
		return 1, 1, nil
	}
	if dst.Base == BaseGeneric {
		return 0, 0, newErr(KindGenericUnitMisuse, "cannot convert a specific unit to Generic")
	}

	if src.Base == dst.Base {
		num, den = src.Num, dst.Num
		g := gcdInt64(num, den)
		return num / g, den / g, nil
	}

	var baseNum, baseDen int64 = 1, 1
	{
		srcNonlinear := src.Base.IsNonlinear()
		dstNonlinear := dst.Base.IsNonlinear()

		switch {
		case srcNonlinear && dstNonlinear:
			if src.Base == BaseYear {
				baseNum, baseDen = 12, 1
			} else {
				baseNum, baseDen = 1, 12
			}
		case !srcNonlinear && !dstNonlinear:
			srcIdx, _ := linearIndex(src.Base)
			dstIdx, _ := linearIndex(dst.Base)
			if srcIdx <= dstIdx {
				f, ok := linearChainFactor(srcIdx, dstIdx)
				if !ok {
					return 0, 0, newErr(KindOverflow, "conversion factor %s->%s overflows", src.Base, dst.Base)
				}
				baseNum, baseDen = f, 1
			} else {
				f, ok := linearChainFactor(dstIdx, srcIdx)
				if !ok {
					return 0, 0, newErr(KindOverflow, "conversion factor %s->%s overflows", src.Base, dst.Base)
				}
				baseNum, baseDen = 1, f
			}
		case srcNonlinear && !dstNonlinear:
			if strictNonlinear {
				return 0, 0, newErr(KindCastingForbidden, "%s and %s sit on opposite sides of the nonlinear barrier", src.Base, dst.Base)
			}
			n, d, aerr := averageGregorianFactor(src.Base, dst.Base)
			if aerr != nil {
				return 0, 0, aerr
			}
			baseNum, baseDen = n, d
		default: // !srcNonlinear && dstNonlinear
			if strictNonlinear {
				return 0, 0, newErr(KindCastingForbidden, "%s and %s sit on opposite sides of the nonlinear barrier", src.Base, dst.Base)
			}
			n, d, aerr := averageGregorianFactor(dst.Base, src.Base)
			if aerr != nil {
				return 0, 0, aerr
			}
			baseNum, baseDen = d, n
		}
	}

	num = baseNum * src.Num
	den = baseDen * dst.Num
	g := gcdInt64(num, den)
	return num / g, den / g, nil
}

// Divisible reports whether dividend is evenly divisible by divisor,
// after aligning their bases (spec.md §4.D). strictNonlinear selects
// the duration path, under which mixing Year/Month with any other
// unit is an error rather than an optimistic "could divide".
func Divisible(dividend, divisor Descriptor, strictNonlinear bool) (bool, error) {
	if dividend.Base == divisor.Base {
		return dividend.Num%divisor.Num == 0, nil
	}

	dividendNonlinear := dividend.Base.IsNonlinear()
	divisorNonlinear := divisor.Base.IsNonlinear()
	if dividendNonlinear != divisorNonlinear {
		if strictNonlinear {
			return false, newErr(KindCastingForbidden, "cannot mix nonlinear and linear units under strict casting")
		}
		return true, nil
	}

	num, den, err := ConversionFactor(dividend, divisor, strictNonlinear)
	if err != nil {
		return false, err
	}
	if num%den != 0 {
		return false, nil
	}
	return true, nil
}

// pickFiner returns (finer, coarser) between two descriptors of the
// same linear/nonlinear class, ordering by the Base enum's built-in
// coarsest-to-finest layout.
func pickFiner(a, b Descriptor) (fine, coarse Descriptor) {
	if a.Base > b.Base {
		return a, b
	}
	return b, a
}

// GCDDescriptors computes the GCD of two descriptors (spec.md §4.D):
// align the coarser multiplier into the finer base via an exact
// factor, then take the Euclidean GCD of the two aligned multipliers.
//
// Crossing the nonlinear/linear barrier has no exact factor (rule 5 is
// an average, not exact), so in non-strict (instant) mode the finer
// linear side's own descriptor is returned unchanged -- this matches
// spec.md §8 scenario E5 (GCD(Year,1, Day,1) under instants -> (Day,1)).
func GCDDescriptors(a, b Descriptor, strictNonlinear bool) (Descriptor, error) {
	if a.Base == BaseGeneric {
		return b, nil
	}
	if b.Base == BaseGeneric {
		return a, nil
	}
	if a.Base == b.Base {
		return Descriptor{Base: a.Base, Num: gcdInt64(a.Num, b.Num)}, nil
	}

	aNonlinear := a.Base.IsNonlinear()
	bNonlinear := b.Base.IsNonlinear()
	if aNonlinear != bNonlinear {
		if strictNonlinear {
			return Descriptor{}, newErr(KindCastingForbidden, "cannot take the GCD of %s and %s across the nonlinear barrier under strict casting", a.Base, b.Base)
		}
		if aNonlinear {
			return b, nil
		}
		return a, nil
	}

	fine, coarse := pickFiner(a, b)
	factor, err := exactFactorCoarserToFiner(coarse.Base, fine.Base)
	if err != nil {
		return Descriptor{}, err
	}

	coarseAligned := coarse.Num * factor
	return Descriptor{Base: fine.Base, Num: gcdInt64(fine.Num, coarseAligned)}, nil
}

func sameKindOK(src, dst Descriptor, strictNonlinear bool) bool {
	if dst.Base == BaseGeneric && src.Base != BaseGeneric {
		return false
	}
	if src.Base == BaseGeneric {
		return true
	}
	if strictNonlinear {
		return src.Base.IsNonlinear() == dst.Base.IsNonlinear()
	}
	return true
}

// Castable reports whether src can be cast to dst under mode
// (spec.md §4.D). strictNonlinear selects the duration path for
// SameKind's extra nonlinear-barrier requirement.
func Castable(src, dst Descriptor, mode CastingMode, strictNonlinear bool) bool {
	switch mode {
	case CastUnsafe:
		return true
	case CastNo, CastEquiv:
		return src.Base == dst.Base && src.Num == dst.Num
	case CastSameKind:
		return sameKindOK(src, dst, strictNonlinear)
	case CastSafe:
		if !sameKindOK(src, dst, strictNonlinear) {
			return false
		}
		if src.Base == BaseGeneric {
			return true
		}
		if src.Base > dst.Base {
			return false
		}
		ok, err := Divisible(src, dst, strictNonlinear)
		return err == nil && ok
	default:
		return false
	}
}

// CastTick converts tick, expressed in src, into the equivalent tick
// expressed in dst, under the given casting mode. NaT propagates
// without consulting castability (spec.md §4.F).
func CastTick(tick int64, src, dst Descriptor, mode CastingMode, strictNonlinear bool) (int64, error) {
	if tick == NaTTick {
		return NaTTick, nil
	}
	if !Castable(src, dst, mode, strictNonlinear) {
		return 0, newErr(KindCastingForbidden, "cannot cast %v to %v under %s casting", src, dst, mode)
	}

	num, den, err := ConversionFactor(src, dst, strictNonlinear)
	if err != nil {
		return 0, err
	}

	prod := new(big.Int).Mul(big.NewInt(tick), big.NewInt(num))
	q, r := new(big.Int), new(big.Int)
	// den is always positive (see ConversionFactor), so Euclidean
	// DivMod (0 <= r < den) coincides exactly with floor division
	// toward -infinity, as spec.md §4.C requires.
	q.DivMod(prod, big.NewInt(den), r)
	if !q.IsInt64() {
		return 0, newErr(KindOverflow, "cast result overflows int64")
	}
	out := q.Int64()
	if out == NaTTick {
		return 0, newErr(KindOverflow, "cast result collides with the NaT sentinel")
	}
	return out, nil
}
