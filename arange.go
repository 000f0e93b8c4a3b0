package tunit

import "math/big"

// arange.go implements component G: the arithmetic-progression range
// generator, resolving start/stop/step onto a common unit via repeated
// GCD before generating the sequence.

func checkedAdd(a, b int64) (int64, error) {
	total := new(big.Int).Add(big.NewInt(a), big.NewInt(b))
	if !total.IsInt64() {
		return 0, newErr(KindOverflow, "range bound addition overflows int64")
	}
	return total.Int64(), nil
}

func checkedSub(a, b int64) (int64, error) {
	total := new(big.Int).Sub(big.NewInt(a), big.NewInt(b))
	if !total.IsInt64() {
		return 0, newErr(KindOverflow, "range bound subtraction overflows int64")
	}
	return total.Int64(), nil
}

// Arange generates the arithmetic progression start, start+step,
// start+2*step, ... stopping strictly before stop (spec.md §4.G).
//
// start, stop and step may each be expressed in a different descriptor;
// a common descriptor is derived by taking the GCD of all three before
// any arithmetic is performed, so the generated ticks are exact when the
// bounds sit on one side of the Year/Month barrier. An instant range
// that mixes Year or Month with a finer unit keeps the finer unit and
// converts the Year/Month values with the average-Gregorian factor,
// rounded down.
//
// When stopIsDuration is set, stop is not an instant but a span: the
// effective stop bound is start+stop in the common unit, matching the
// "instant plus duration" calling convention spec.md §4.G and §6
// describe for a datetime64 range called with an offset stop.
func Arange(start Descriptor, startTick int64, stop Descriptor, stopTick int64, step Descriptor, stepTick int64, stopIsDuration, strictNonlinear bool) (Descriptor, []int64, error) {
	if stepTick == 0 {
		return Descriptor{}, nil, newErr(KindStepZero, "range step must not be zero")
	}
	if startTick == NaTTick || stopTick == NaTTick || stepTick == NaTTick {
		return Descriptor{}, nil, newErr(KindConversionFailure, "range bounds must not be NaT")
	}

	common, err := GCDDescriptors(start, stop, strictNonlinear)
	if err != nil {
		return Descriptor{}, nil, err
	}
	common, err = GCDDescriptors(common, step, strictNonlinear)
	if err != nil {
		return Descriptor{}, nil, err
	}

	startC, err := CastTick(startTick, start, common, CastUnsafe, strictNonlinear)
	if err != nil {
		return Descriptor{}, nil, err
	}
	stopC, err := CastTick(stopTick, stop, common, CastUnsafe, strictNonlinear)
	if err != nil {
		return Descriptor{}, nil, err
	}
	stepC, err := CastTick(stepTick, step, common, CastUnsafe, strictNonlinear)
	if err != nil {
		return Descriptor{}, nil, err
	}

	if stopIsDuration {
		stopC, err = checkedAdd(startC, stopC)
		if err != nil {
			return Descriptor{}, nil, err
		}
	}

	diff, err := checkedSub(stopC, startC)
	if err != nil {
		return Descriptor{}, nil, err
	}

	if (stepC > 0 && diff <= 0) || (stepC < 0 && diff >= 0) {
		return common, []int64{}, nil
	}

	length := diff / stepC
	if diff%stepC != 0 {
		length++
	}

	out := make([]int64, length)
	cur := startC
	for i := int64(0); i < length; i++ {
		out[i] = cur
		cur, err = checkedAdd(cur, stepC)
		if err != nil {
			return Descriptor{}, nil, err
		}
	}
	return common, out, nil
}

// isInstantTyped reports whether v is one of the instant-shaped input
// kinds component F accepts (an existing Datetime64, or a host
// datetime-like object), as opposed to a duration-shaped one.
func isInstantTyped(v interface{}) bool {
	switch v.(type) {
	case Datetime64:
		return true
	case DateTimeLike:
		return true
	default:
		return false
	}
}

// isDurationTyped reports whether v is one of the duration-shaped input
// kinds component F accepts (an existing Timedelta64, or a host
// timedelta-like object).
func isDurationTyped(v interface{}) bool {
	switch v.(type) {
	case Timedelta64:
		return true
	case DurationLike:
		return true
	default:
		return false
	}
}

// rangeBounds resolves start and stop to (Descriptor, tick) pairs and
// reports whether stop denotes a span to be added to start rather than
// an instant/duration end point in its own right, implementing the
// "if stop is absent, (start, stop) := (0, start)" defaulting rule of
// spec.md §4.G. All coercion runs through component F under SameKind
// casting, per the Data-flow section's "G uses F+D+C end-to-end".
func rangeBounds(start, stop interface{}, strictNonlinear bool) (startD Descriptor, startT int64, stopD Descriptor, stopT int64, stopIsDuration bool, err error) {
	if stop == nil {
		stopD, stopT, err = coerceValue(start, errDescriptor, CastSameKind, strictNonlinear)
		if err != nil {
			return Descriptor{}, 0, Descriptor{}, 0, false, err
		}
		return stopD, 0, stopD, stopT, false, nil
	}

	startD, startT, err = coerceValue(start, errDescriptor, CastSameKind, strictNonlinear)
	if err != nil {
		return Descriptor{}, 0, Descriptor{}, 0, false, err
	}

	stopIsDuration = !strictNonlinear && isDurationTyped(stop)
	stopD, stopT, err = coerceValue(stop, errDescriptor, CastSameKind, strictNonlinear || stopIsDuration)
	if err != nil {
		return Descriptor{}, 0, Descriptor{}, 0, false, err
	}
	return startD, startT, stopD, stopT, stopIsDuration, nil
}

// rangeStep resolves step to a (Descriptor, tick) pair, defaulting a
// missing step to one tick of the common unit of start and stop, and
// rejecting a step expressed as an instant rather than a duration.
func rangeStep(step interface{}, startD, stopD Descriptor, strictNonlinear bool) (Descriptor, int64, error) {
	if step == nil {
		common, err := GCDDescriptors(startD, stopD, strictNonlinear)
		if err != nil {
			return Descriptor{}, 0, err
		}
		return common, 1, nil
	}
	if isInstantTyped(step) {
		return Descriptor{}, 0, newErr(KindCastingForbidden, "range step must be a duration, not an instant")
	}
	return coerceValue(step, errDescriptor, CastSameKind, true)
}

// ArangeDatetime64 is the top-level component-G entry point for an
// instant range: it accepts raw start/stop/step values of any shape
// component F understands (a nil stop makes the range run from zero up
// to start, a nil step defaults to one tick of the common unit; a nil
// start becomes NaT and is rejected), coerces and normalizes them, and
// returns the generated
// instants. stop may be an instant (end point) or a duration (offset
// from start); step must be a duration.
func ArangeDatetime64(start, stop, step interface{}) (Descriptor, []Datetime64, error) {
	startD, startT, stopD, stopT, stopIsDuration, err := rangeBounds(start, stop, false)
	if err != nil {
		return Descriptor{}, nil, err
	}
	stepD, stepT, err := rangeStep(step, startD, stopD, false)
	if err != nil {
		return Descriptor{}, nil, err
	}

	common, ticks, err := Arange(startD, startT, stopD, stopT, stepD, stepT, stopIsDuration, false)
	if err != nil {
		return Descriptor{}, nil, err
	}
	out := make([]Datetime64, len(ticks))
	for i, t := range ticks {
		out[i] = Datetime64{d: common, t: t}
	}
	return common, out, nil
}

// ArangeTimedelta64 is the top-level component-G entry point for a
// duration range: the same raw-input defaulting and step validation as
// ArangeDatetime64, but over Timedelta64 bounds instead of instants.
func ArangeTimedelta64(start, stop, step interface{}) (Descriptor, []Timedelta64, error) {
	startD, startT, stopD, stopT, stopIsDuration, err := rangeBounds(start, stop, true)
	if err != nil {
		return Descriptor{}, nil, err
	}
	stepD, stepT, err := rangeStep(step, startD, stopD, true)
	if err != nil {
		return Descriptor{}, nil, err
	}

	common, ticks, err := Arange(startD, startT, stopD, stopT, stepD, stepT, stopIsDuration, true)
	if err != nil {
		return Descriptor{}, nil, err
	}
	out := make([]Timedelta64, len(ticks))
	for i, t := range ticks {
		out[i] = Timedelta64{d: common, t: t}
	}
	return common, out, nil
}
