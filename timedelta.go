package tunit

import (
	"fmt"
	"math"
)

// timedelta.go defines Timedelta64, the public duration scalar, plus
// its arithmetic, comparison and formatting surface (SPEC_FULL.md §5).

// Timedelta64 is a signed duration at a fixed unit resolution.
type Timedelta64 struct {
	d Descriptor
	t int64
}

func (v Timedelta64) descriptor() Descriptor { return v.d }
func (v Timedelta64) tick() int64            { return v.t }

// NewTimedelta64 coerces value into a duration at target. Pass
// InferredUnit() as target to let the coercion layer pick the best
// unit for the input.
func NewTimedelta64(value interface{}, target Descriptor, mode CastingMode) (Timedelta64, error) {
	d, t, err := coerceValue(value, target, mode, true)
	if err != nil {
		return Timedelta64{}, err
	}
	return Timedelta64{d: d, t: t}, nil
}

// NaTTimedelta64 returns the Not-a-Time duration at the Generic unit.
func NaTTimedelta64() Timedelta64 {
	return Timedelta64{d: GenericDescriptor, t: NaTTick}
}

// MinTimedelta64 returns the most negative representable duration at
// unit d, reserving math.MinInt64 for the NaT sentinel.
func MinTimedelta64(d Descriptor) Timedelta64 {
	return Timedelta64{d: d, t: math.MinInt64 + 1}
}

// MaxTimedelta64 returns the largest representable duration at unit d.
func MaxTimedelta64(d Descriptor) Timedelta64 {
	return Timedelta64{d: d, t: math.MaxInt64}
}

// IsNaT reports whether v is Not-a-Time.
func (v Timedelta64) IsNaT() bool { return v.t == NaTTick }

// Unit returns v's descriptor.
func (v Timedelta64) Unit() Descriptor { return v.d }

// Tick returns v's raw tick count.
func (v Timedelta64) Tick() int64 { return v.t }

// AsUnit recasts v into target under mode.
func (v Timedelta64) AsUnit(target Descriptor, mode CastingMode) (Timedelta64, error) {
	t, err := CastTick(v.t, v.d, target, mode, true)
	if err != nil {
		return Timedelta64{}, err
	}
	return Timedelta64{d: target, t: t}, nil
}

// String renders v as "<tick><unit>", e.g. "5D" or "3[2h]"; NaT
// renders as "NaT".
func (v Timedelta64) String() string {
	if v.IsNaT() {
		return "NaT"
	}
	if v.d.Num > 1 {
		return fmt.Sprintf("%d%s", v.t, FormatDescriptor(v.d))
	}
	return fmt.Sprintf("%d%s", v.t, FormatDescriptorBare(v.d))
}

func compareDurations(a, b Timedelta64) (int, error) {
	if a.t == NaTTick || b.t == NaTTick {
		return 0, newErr(KindConversionFailure, "NaT does not participate in ordering")
	}
	common, err := GCDDescriptors(a.d, b.d, true)
	if err != nil {
		return 0, err
	}
	ac, err := CastTick(a.t, a.d, common, CastUnsafe, true)
	if err != nil {
		return 0, err
	}
	bc, err := CastTick(b.t, b.d, common, CastUnsafe, true)
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

// Compare returns -1, 0 or 1 as v is shorter than, equal to, or longer
// than other, after promoting both to the GCD of their units. It errors
// if either operand is NaT, since NaT does not participate in ordering.
func (v Timedelta64) Compare(other Timedelta64) (int, error) {
	return compareDurations(v, other)
}

// Equal reports whether v and other denote the same duration. NaT is
// never equal to anything, including another NaT.
func (v Timedelta64) Equal(other Timedelta64) bool {
	if v.t == NaTTick || other.t == NaTTick {
		return false
	}
	c, err := compareDurations(v, other)
	return err == nil && c == 0
}

// Before reports whether v is strictly shorter than other.
func (v Timedelta64) Before(other Timedelta64) bool {
	c, err := compareDurations(v, other)
	return err == nil && c < 0
}

// After reports whether v is strictly longer than other.
func (v Timedelta64) After(other Timedelta64) bool {
	c, err := compareDurations(v, other)
	return err == nil && c > 0
}

// Add returns v+other, at the GCD of their two units.
func (v Timedelta64) Add(other Timedelta64) (Timedelta64, error) {
	if v.t == NaTTick || other.t == NaTTick {
		return NaTTimedelta64(), nil
	}
	common, err := GCDDescriptors(v.d, other.d, true)
	if err != nil {
		return Timedelta64{}, err
	}
	vc, err := CastTick(v.t, v.d, common, CastUnsafe, true)
	if err != nil {
		return Timedelta64{}, err
	}
	oc, err := CastTick(other.t, other.d, common, CastUnsafe, true)
	if err != nil {
		return Timedelta64{}, err
	}
	sum, err := checkedAdd(vc, oc)
	if err != nil {
		return Timedelta64{}, err
	}
	return Timedelta64{d: common, t: sum}, nil
}

// Sub returns v-other, at the GCD of their two units.
func (v Timedelta64) Sub(other Timedelta64) (Timedelta64, error) {
	if v.t == NaTTick || other.t == NaTTick {
		return NaTTimedelta64(), nil
	}
	common, err := GCDDescriptors(v.d, other.d, true)
	if err != nil {
		return Timedelta64{}, err
	}
	vc, err := CastTick(v.t, v.d, common, CastUnsafe, true)
	if err != nil {
		return Timedelta64{}, err
	}
	oc, err := CastTick(other.t, other.d, common, CastUnsafe, true)
	if err != nil {
		return Timedelta64{}, err
	}
	diff, err := checkedSub(vc, oc)
	if err != nil {
		return Timedelta64{}, err
	}
	return Timedelta64{d: common, t: diff}, nil
}

// Neg returns -v.
func (v Timedelta64) Neg() (Timedelta64, error) {
	if v.t == NaTTick {
		return v, nil
	}
	return Timedelta64{d: v.d, t: -v.t}, nil
}

// Scale returns v*n.
func (v Timedelta64) Scale(n int64) (Timedelta64, error) {
	if v.t == NaTTick {
		return v, nil
	}
	prod, err := checkedMul(v.t, n)
	if err != nil {
		return Timedelta64{}, err
	}
	return Timedelta64{d: v.d, t: prod}, nil
}

func checkedMul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a {
		return 0, newErr(KindOverflow, "duration scaling overflows int64")
	}
	return p, nil
}
