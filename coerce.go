package tunit

// coerce.go implements component F: converting heterogeneous external
// inputs into a (Descriptor, Tick) pair, applying the casting-rule
// checks of component D along the way.

// DateTimeLike is the host "datetime-like object" collaborator
// contract of spec.md §6: integer year/month/day and optionally
// hour/minute/second/microsecond, plus an optional UTC offset in
// minutes (the tzinfo.utcoffset()/fromutc() contract, abstracted to
// its one observable effect on this package).
type DateTimeLike interface {
	Date() (year int64, month, day int)
	HasTimeComponent() bool
	Time() (hour, min, sec, microsecond int)
	UTCOffsetMinutes() (offset int64, ok bool)
}

// DurationLike is the host "timedelta-like object" collaborator
// contract of spec.md §6: integer days, seconds and microseconds.
type DurationLike interface {
	Days() int64
	Seconds() int64
	Microseconds() int64
}

// NaT is the sentinel input value representing an explicit
// Not-a-Time/None input to the coercion layer (spec.md §4.F, §6).
type NaT struct{}

// scalar is satisfied by Datetime64 and Timedelta64, letting the
// coercion layer accept an existing scalar of either kind as a source
// value without importing a cyclic dependency on their concrete types.
type scalar interface {
	descriptor() Descriptor
	tick() int64
}

// coerceValue is the shared dispatch of component F. strictNonlinear
// selects the duration path (true) or the instant path (false) for
// every castability and conversion-factor check it performs.
func coerceValue(value interface{}, target Descriptor, mode CastingMode, strictNonlinear bool) (Descriptor, int64, error) {
	switch v := value.(type) {
	case nil, NaT:
		if mode == CastSameKind || mode == CastUnsafe {
			return GenericDescriptor, NaTTick, nil
		}
		return Descriptor{}, 0, newErr(KindConversionFailure, "could not convert NaT/None input under %s casting", mode)

	case string:
		return coerceString(v, target, mode, strictNonlinear)

	case int64:
		return coerceInteger(v, target)
	case int:
		return coerceInteger(int64(v), target)

	case scalar:
		return coerceScalar(v.descriptor(), v.tick(), target, mode, strictNonlinear)

	case DurationLike:
		return coerceDurationLike(v.Days(), v.Seconds(), v.Microseconds(), target, mode, strictNonlinear)

	case DateTimeLike:
		return coerceDateTimeLike(v, target, strictNonlinear)

	default:
		if mode == CastSameKind || mode == CastUnsafe {
			return GenericDescriptor, NaTTick, nil
		}
		return Descriptor{}, 0, newErr(KindConversionFailure, "could not convert value of type %T", value)
	}
}

func coerceString(text string, target Descriptor, mode CastingMode, strictNonlinear bool) (Descriptor, int64, error) {
	s, suggested, err := defaultParser.Parse(text, target, mode)
	if err != nil {
		if mode == CastUnsafe {
			if terr, ok := err.(*TemporalError); ok && terr.Kind == KindConversionFailure {
				return GenericDescriptor, NaTTick, nil
			}
		}
		return Descriptor{}, 0, err
	}

	resolved := target
	if target == errDescriptor || target.Base == BaseError {
		resolved = suggested
	}

	tick, err := EncodeStruct(s, resolved)
	if err != nil {
		return Descriptor{}, 0, err
	}
	return resolved, tick, nil
}

func coerceInteger(v int64, target Descriptor) (Descriptor, int64, error) {
	if target.Base == BaseError || target.Base == BaseGeneric {
		return Descriptor{}, 0, newErr(KindGenericUnitMisuse, "integer input requires a specified unit")
	}
	return target, v, nil
}

func coerceScalar(srcDesc Descriptor, srcTick int64, target Descriptor, mode CastingMode, strictNonlinear bool) (Descriptor, int64, error) {
	if target.Base == BaseError {
		return srcDesc, srcTick, nil
	}
	out, err := CastTick(srcTick, srcDesc, target, mode, strictNonlinear)
	if err != nil {
		return Descriptor{}, 0, err
	}
	return target, out, nil
}

func coerceDurationLike(days, seconds, microseconds int64, target Descriptor, mode CastingMode, strictNonlinear bool) (Descriptor, int64, error) {
	var impliedBase Base
	var tick int64
	switch {
	case microseconds != 0:
		impliedBase, tick = BaseMicrosecond, days*86_400_000_000+seconds*1_000_000+microseconds
	case seconds != 0:
		impliedBase, tick = BaseSecond, days*86400+seconds
	default:
		impliedBase, tick = BaseDay, days
	}

	src := Descriptor{Base: impliedBase, Num: 1}
	if target.Base == BaseError {
		return src, tick, nil
	}
	out, err := CastTick(tick, src, target, mode, strictNonlinear)
	if err != nil {
		return Descriptor{}, 0, err
	}
	return target, out, nil
}

func coerceDateTimeLike(v DateTimeLike, target Descriptor, strictNonlinear bool) (Descriptor, int64, error) {
	year, month, day := v.Date()
	s := Struct{Year: year, Month: month, Day: day}

	best := Descriptor{Base: BaseDay, Num: 1}
	if v.HasTimeComponent() {
		hour, min, sec, us := v.Time()
		s.Hour, s.Min, s.Sec, s.Us = hour, min, sec, us
		best = Descriptor{Base: BaseMicrosecond, Num: 1}
	}

	if offset, ok := v.UTCOffsetMinutes(); ok {
		warnTzinfo()
		if err := addMinutes(&s, -offset); err != nil {
			return Descriptor{}, 0, err
		}
	}

	resolved := target
	if target.Base == BaseError {
		resolved = best
	}

	tick, err := EncodeStruct(s, resolved)
	if err != nil {
		return Descriptor{}, 0, err
	}
	return resolved, tick, nil
}
