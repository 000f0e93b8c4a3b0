package tunit

import "fmt"

// Base is a closed enumeration of unit bases, ordered from coarsest to
// finest resolution. The gap at baseReservedGap once held a "business
// day" unit; it is preserved so that the integer code of every other
// base stays stable across persisted data.
type Base int8

// The base units, in the order spec.md §3 pins them.
const (
	BaseYear Base = iota
	BaseMonth
	BaseWeek
	baseReservedGap // never constructible; preserved for code stability
	BaseDay
	BaseHour
	BaseMinute
	BaseSecond
	BaseMillisecond
	BaseMicrosecond
	BaseNanosecond
	BasePicosecond
	BaseFemtosecond
	BaseAttosecond
	BaseGeneric
	BaseError
)

var baseSymbols = [...]string{
	BaseYear:        "Y",
	BaseMonth:       "M",
	BaseWeek:        "W",
	baseReservedGap: "",
	BaseDay:         "D",
	BaseHour:        "h",
	BaseMinute:      "m",
	BaseSecond:      "s",
	BaseMillisecond: "ms",
	BaseMicrosecond: "us",
	BaseNanosecond:  "ns",
	BasePicosecond:  "ps",
	BaseFemtosecond: "fs",
	BaseAttosecond:  "as",
	BaseGeneric:     "generic",
	BaseError:       "",
}

// String returns the canonical symbol for b, or a placeholder for the
// reserved gap and the Error sentinel, neither of which appears in a
// valid persisted descriptor.
func (b Base) String() string {
	if b < BaseYear || b > BaseError {
		return fmt.Sprintf("%%!Base(%d)", int(b))
	}
	if b == baseReservedGap {
		return "%!Base(reserved)"
	}
	if b == BaseError {
		return "%!Base(error)"
	}
	return baseSymbols[b]
}

// IsLinear reports whether b belongs to the linear sub-chain Week and
// finer, as opposed to the nonlinear Year/Month monoid (design note
// §9: the nonlinear barrier is expressed as two sub-algebras rather
// than a runtime flag threaded through every comparison).
func (b Base) IsLinear() bool {
	return b >= BaseWeek && b <= BaseAttosecond && b != baseReservedGap
}

// IsNonlinear reports whether b is Year or Month.
func (b Base) IsNonlinear() bool {
	return b == BaseYear || b == BaseMonth
}

// daysInMonths holds the Gregorian month lengths for non-leap years,
// indexed by month-1.
var daysInMonths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysInMonth returns the length of month m (1-12) in year y.
func daysInMonth(y int64, m int) int {
	if m == 2 && isLeapYear(y) {
		return 29
	}
	return daysInMonths[m-1]
}

// subDayFactors gives the multiplicative step from base k to base
// k+1 in the sub-day chain: Day->Hour, Hour->Minute, Minute->Second,
// then 1000 at every step down to Attosecond.
var subDayFactors = map[Base]int64{
	BaseWeek:        7,
	BaseDay:         24,
	BaseHour:        60,
	BaseMinute:      60,
	BaseSecond:      1000,
	BaseMillisecond: 1000,
	BaseMicrosecond: 1000,
	BaseNanosecond:  1000,
	BasePicosecond:  1000,
	BaseFemtosecond: 1000,
}

// linearOrder lists the linear sub-chain bases, coarsest first, so that
// "step down n places" and "step up n places" can be expressed as
// index arithmetic.
var linearOrder = []Base{
	BaseWeek, BaseDay, BaseHour, BaseMinute, BaseSecond,
	BaseMillisecond, BaseMicrosecond, BaseNanosecond,
	BasePicosecond, BaseFemtosecond, BaseAttosecond,
}

func linearIndex(b Base) (int, bool) {
	for i, v := range linearOrder {
		if v == b {
			return i, true
		}
	}
	return -1, false
}

// Descriptor is the pair (base, num) describing the unit of a tick.
// num must be >= 1; num must equal 1 whenever base is BaseGeneric.
type Descriptor struct {
	Base Base
	Num  int64
}

// GenericDescriptor is the (Generic, 1) descriptor meaning "resolution
// not yet chosen".
var GenericDescriptor = Descriptor{Base: BaseGeneric, Num: 1}

// errDescriptor is the (Error, 1) sentinel meaning "unit not yet
// determined"; it must never appear in a descriptor persisted outside
// a single routine.
var errDescriptor = Descriptor{Base: BaseError, Num: 1}

// InferredUnit returns the sentinel target descriptor that tells
// NewDatetime64/NewTimedelta64 to infer the best unit from the input
// rather than casting to a caller-chosen one.
func InferredUnit() Descriptor {
	return errDescriptor
}

// valid reports whether d satisfies the data-model invariants of
// spec.md §3.
func (d Descriptor) valid() bool {
	if d.Num < 1 {
		return false
	}
	if d.Base == BaseGeneric && d.Num != 1 {
		return false
	}
	return d.Base >= BaseYear && d.Base <= BaseGeneric && d.Base != baseReservedGap
}
