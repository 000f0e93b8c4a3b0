package tunit

import "math"

// datetime.go defines Datetime64, the public instant scalar tying a
// Descriptor to a tick, plus its comparison, arithmetic and formatting
// surface (SPEC_FULL.md §5).

// Datetime64 is an instant-in-time value at a fixed unit resolution.
// The zero value is not meaningful; construct one with NewDatetime64.
type Datetime64 struct {
	d Descriptor
	t int64
}

func (v Datetime64) descriptor() Descriptor { return v.d }
func (v Datetime64) tick() int64            { return v.t }

// NewDatetime64 coerces value into an instant at target. Pass
// InferredUnit() as target to let the coercion layer pick the best
// unit for the input instead of a caller-specified one.
func NewDatetime64(value interface{}, target Descriptor, mode CastingMode) (Datetime64, error) {
	d, t, err := coerceValue(value, target, mode, false)
	if err != nil {
		return Datetime64{}, err
	}
	return Datetime64{d: d, t: t}, nil
}

// NaTDatetime64 returns the Not-a-Time instant at the Generic unit.
func NaTDatetime64() Datetime64 {
	return Datetime64{d: GenericDescriptor, t: NaTTick}
}

// MinDatetime64 returns the earliest representable instant at unit d,
// reserving math.MinInt64 for the NaT sentinel.
func MinDatetime64(d Descriptor) Datetime64 {
	return Datetime64{d: d, t: math.MinInt64 + 1}
}

// MaxDatetime64 returns the latest representable instant at unit d.
func MaxDatetime64(d Descriptor) Datetime64 {
	return Datetime64{d: d, t: math.MaxInt64}
}

// IsNaT reports whether v is Not-a-Time.
func (v Datetime64) IsNaT() bool { return v.t == NaTTick }

// Unit returns v's descriptor.
func (v Datetime64) Unit() Descriptor { return v.d }

// Tick returns v's raw tick count.
func (v Datetime64) Tick() int64 { return v.t }

// AsUnit recasts v into target under mode.
func (v Datetime64) AsUnit(target Descriptor, mode CastingMode) (Datetime64, error) {
	t, err := CastTick(v.t, v.d, target, mode, false)
	if err != nil {
		return Datetime64{}, err
	}
	return Datetime64{d: target, t: t}, nil
}

// Struct decodes v back to its broken-down representation.
func (v Datetime64) Struct() (Struct, error) {
	return DecodeStruct(v.t, v.d)
}

// String renders v as an ISO-8601 string, or "NaT".
func (v Datetime64) String() string {
	s, err := v.Struct()
	if err != nil {
		return "invalid"
	}
	return FormatISO8601(s)
}

func compareInstants(a, b Datetime64) (int, error) {
	if a.t == NaTTick || b.t == NaTTick {
		return 0, newErr(KindConversionFailure, "NaT does not participate in ordering")
	}
	common, err := GCDDescriptors(a.d, b.d, false)
	if err != nil {
		return 0, err
	}
	ac, err := CastTick(a.t, a.d, common, CastUnsafe, false)
	if err != nil {
		return 0, err
	}
	bc, err := CastTick(b.t, b.d, common, CastUnsafe, false)
	if err != nil {
		return 0, err
	}
	switch {
	case ac < bc:
		return -1, nil
	case ac > bc:
		return 1, nil
	default:
		return 0, nil
	}
}

// Compare returns -1, 0 or 1 as v is before, equal to, or after other,
// after promoting both to the GCD of their units. It errors if either
// operand is NaT, since NaT does not participate in ordering.
func (v Datetime64) Compare(other Datetime64) (int, error) {
	return compareInstants(v, other)
}

// Equal reports whether v and other denote the same instant. Per the
// NaT/NaN analogy (spec.md §3), NaT is never equal to anything,
// including another NaT.
func (v Datetime64) Equal(other Datetime64) bool {
	if v.t == NaTTick || other.t == NaTTick {
		return false
	}
	c, err := compareInstants(v, other)
	return err == nil && c == 0
}

// Before reports whether v denotes an instant strictly earlier than other.
func (v Datetime64) Before(other Datetime64) bool {
	c, err := compareInstants(v, other)
	return err == nil && c < 0
}

// After reports whether v denotes an instant strictly later than other.
func (v Datetime64) After(other Datetime64) bool {
	c, err := compareInstants(v, other)
	return err == nil && c > 0
}

// Add returns v offset by delta, at the GCD of their two units.
func (v Datetime64) Add(delta Timedelta64) (Datetime64, error) {
	if v.t == NaTTick || delta.t == NaTTick {
		return NaTDatetime64(), nil
	}
	common, err := GCDDescriptors(v.d, delta.d, false)
	if err != nil {
		return Datetime64{}, err
	}
	vc, err := CastTick(v.t, v.d, common, CastUnsafe, false)
	if err != nil {
		return Datetime64{}, err
	}
	dc, err := CastTick(delta.t, delta.d, common, CastUnsafe, true)
	if err != nil {
		return Datetime64{}, err
	}
	sum, err := checkedAdd(vc, dc)
	if err != nil {
		return Datetime64{}, err
	}
	return Datetime64{d: common, t: sum}, nil
}

// Sub returns the duration between v and other, at the GCD of their
// two units.
func (v Datetime64) Sub(other Datetime64) (Timedelta64, error) {
	if v.t == NaTTick || other.t == NaTTick {
		return NaTTimedelta64(), nil
	}
	common, err := GCDDescriptors(v.d, other.d, false)
	if err != nil {
		return Timedelta64{}, err
	}
	vc, err := CastTick(v.t, v.d, common, CastUnsafe, false)
	if err != nil {
		return Timedelta64{}, err
	}
	oc, err := CastTick(other.t, other.d, common, CastUnsafe, false)
	if err != nil {
		return Timedelta64{}, err
	}
	diff, err := checkedSub(vc, oc)
	if err != nil {
		return Timedelta64{}, err
	}
	return Timedelta64{d: common, t: diff}, nil
}
