package tunit

import "math/big"

// tick.go implements component C: the exact bidirectional map between
// a broken-down Struct and a Tick, for every base unit.

// unitsPerSecond gives the tick count of base b per second, for bases
// from BaseSecond down to BaseAttosecond. It is not meaningful for
// coarser bases.
func unitsPerSecond(b Base) int64 {
	switch b {
	case BaseSecond:
		return 1
	case BaseMillisecond:
		return 1_000
	case BaseMicrosecond:
		return 1_000_000
	case BaseNanosecond:
		return 1_000_000_000
	case BasePicosecond:
		return 1_000_000_000_000
	case BaseFemtosecond:
		return 1_000_000_000_000_000
	case BaseAttosecond:
		return 1_000_000_000_000_000_000
	default:
		return 0
	}
}

// attosecondsPerSecond is the finest resolution the Struct sub-second
// fields (Us, Ps, As) jointly represent: 1e6 * 1e6 * 1e6 = 1e18.
const attosecondsPerSecond = int64(1_000_000_000_000_000_000)

// subSecondAttoseconds folds the three mixed-radix sub-second fields
// into a single attosecond-of-second count in [0, 1e18).
func subSecondAttoseconds(s Struct) int64 {
	return (int64(s.Us)*1_000_000+int64(s.Ps))*1_000_000 + int64(s.As)
}

// splitSubSecondAttoseconds is the inverse of subSecondAttoseconds.
func splitSubSecondAttoseconds(atto int64) (us, ps, as int) {
	as = int(atto % 1_000_000)
	rem := atto / 1_000_000
	ps = int(rem % 1_000_000)
	us = int(rem / 1_000_000)
	return
}

// EncodeStruct maps a broken-down Struct to a Tick at the resolution
// described by d. NaT propagates (spec.md §4.C). base == Generic with
// a concrete struct, and base == Error, are both rejected.
func EncodeStruct(s Struct, d Descriptor) (int64, error) {
	if s.IsNaT() {
		return NaTTick, nil
	}
	if d.Base == BaseError {
		return 0, newErr(KindInvalidDescriptor, "descriptor carries the Error sentinel base")
	}
	if d.Base == BaseGeneric {
		return 0, newErr(KindGenericUnitMisuse, "cannot create a non-NaT generic-unit value")
	}
	if err := s.Validate(false); err != nil {
		return 0, err
	}

	tick, err := encodeAtUnitBase(s, d.Base)
	if err != nil {
		return 0, err
	}

	if d.Num > 1 {
		tick = floorDiv(tick, d.Num)
	}
	return tick, nil
}

// DecodeStruct maps a Tick at the resolution described by d back to a
// broken-down Struct. NaT propagates.
func DecodeStruct(tick int64, d Descriptor) (Struct, error) {
	if tick == NaTTick {
		return NaTStruct, nil
	}
	if d.Base == BaseError {
		return Struct{}, newErr(KindInvalidDescriptor, "descriptor carries the Error sentinel base")
	}
	if d.Base == BaseGeneric {
		return Struct{}, newErr(KindGenericUnitMisuse, "cannot decode a concrete tick at the Generic base")
	}

	if d.Num > 1 {
		tick *= d.Num
	}

	return decodeAtUnitBase(tick, d.Base)
}

func encodeAtUnitBase(s Struct, base Base) (int64, error) {
	switch base {
	case BaseYear:
		return s.Year - 1970, nil
	case BaseMonth:
		return 12*(s.Year-1970) + int64(s.Month-1), nil
	case BaseWeek:
		return floorDiv(daysFromCivil(s.Year, s.Month, s.Day), 7), nil
	case BaseDay:
		return daysFromCivil(s.Year, s.Month, s.Day), nil
	case BaseHour:
		days := daysFromCivil(s.Year, s.Month, s.Day)
		return checkedMulAdd(days, 24, int64(s.Hour))
	case BaseMinute:
		days := daysFromCivil(s.Year, s.Month, s.Day)
		intraDay := int64(s.Hour)*60 + int64(s.Min)
		return checkedMulAdd(days, 1440, intraDay)
	case BaseSecond, BaseMillisecond, BaseMicrosecond, BaseNanosecond,
		BasePicosecond, BaseFemtosecond, BaseAttosecond:
		days := daysFromCivil(s.Year, s.Month, s.Day)
		secOfDay := int64(s.Hour)*3600 + int64(s.Min)*60 + int64(s.Sec)
		ups := unitsPerSecond(base)
		scale := attosecondsPerSecond / ups
		subUnits := subSecondAttoseconds(s) / scale
		return checkedDaySecondsToTick(days, secOfDay, ups, subUnits)
	default:
		return 0, newErr(KindInvalidUnit, "base %s is not a concrete encodable unit", base)
	}
}

func decodeAtUnitBase(tick int64, base Base) (Struct, error) {
	switch base {
	case BaseYear:
		return Struct{Year: tick + 1970, Month: 1, Day: 1}, nil
	case BaseMonth:
		y := 1970 + floorDiv(tick, 12)
		m := int(floorMod(tick, 12)) + 1
		return Struct{Year: y, Month: m, Day: 1}, nil
	case BaseWeek:
		y, m, d := civilFromDays(tick * 7)
		return Struct{Year: y, Month: m, Day: d}, nil
	case BaseDay:
		y, m, d := civilFromDays(tick)
		return Struct{Year: y, Month: m, Day: d}, nil
	case BaseHour:
		days := floorDiv(tick, 24)
		hour := int(floorMod(tick, 24))
		y, m, d := civilFromDays(days)
		return Struct{Year: y, Month: m, Day: d, Hour: hour}, nil
	case BaseMinute:
		days := floorDiv(tick, 1440)
		rem := floorMod(tick, 1440)
		y, m, d := civilFromDays(days)
		return Struct{Year: y, Month: m, Day: d, Hour: int(rem / 60), Min: int(rem % 60)}, nil
	case BaseSecond, BaseMillisecond, BaseMicrosecond, BaseNanosecond,
		BasePicosecond, BaseFemtosecond, BaseAttosecond:
		ups := unitsPerSecond(base)
		wholeSeconds := floorDiv(tick, ups)
		subUnits := floorMod(tick, ups)
		scale := attosecondsPerSecond / ups

		days := floorDiv(wholeSeconds, 86400)
		secOfDay := floorMod(wholeSeconds, 86400)

		y, m, d := civilFromDays(days)
		hour := int(secOfDay / 3600)
		min := int((secOfDay % 3600) / 60)
		sec := int(secOfDay % 60)

		us, ps, as := splitSubSecondAttoseconds(subUnits * scale)
		return Struct{Year: y, Month: m, Day: d, Hour: hour, Min: min, Sec: sec, Us: us, Ps: ps, As: as}, nil
	default:
		return Struct{}, newErr(KindInvalidUnit, "base %s is not a concrete decodable unit", base)
	}
}

// checkedMulAdd computes days*factor+add, returning KindOverflow if
// the product overflows an int64 -- used for the Hour/Minute encode
// paths, whose factors (24, 1440) are small enough that plain int64
// multiplication is fine for any in-range day count, but are still
// checked via math/big for uniformity with the Second..Attosecond path.
func checkedMulAdd(days, factor, add int64) (int64, error) {
	total := new(big.Int).Mul(big.NewInt(days), big.NewInt(factor))
	total.Add(total, big.NewInt(add))
	if !total.IsInt64() {
		return 0, newErr(KindOverflow, "tick overflows int64")
	}
	return total.Int64(), nil
}

// checkedDaySecondsToTick computes (days*86400+secOfDay)*ups+subUnits
// using arbitrary-precision arithmetic so the overflow that is
// certain for Femtosecond/Attosecond ticks more than a few hours or
// seconds from the epoch (design note §9) is reported as KindOverflow
// rather than silently wrapped.
func checkedDaySecondsToTick(days, secOfDay, ups, subUnits int64) (int64, error) {
	total := new(big.Int).Mul(big.NewInt(days), big.NewInt(86400))
	total.Add(total, big.NewInt(secOfDay))
	total.Mul(total, big.NewInt(ups))
	total.Add(total, big.NewInt(subUnits))
	if !total.IsInt64() {
		return 0, newErr(KindOverflow, "tick overflows int64")
	}
	v := total.Int64()
	if v == NaTTick {
		return 0, newErr(KindOverflow, "tick collides with the NaT sentinel")
	}
	return v, nil
}
