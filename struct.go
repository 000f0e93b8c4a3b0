package tunit

import "math"

// NaTMarker is the sentinel value of Struct.Year that signals
// Not-a-Time (spec.md §3).
const NaTMarker int64 = math.MinInt64

// NaTTick is the sentinel Tick value meaning Not-a-Time (spec.md §3).
// It must never be synthesised by a valid arithmetic computation
// (design note §9); it is produced only at the points this package
// defines as NaT-producing.
const NaTTick int64 = math.MinInt64

// Struct is the broken-down representation of a calendar moment
// (spec.md §3). A Struct with Year == NaTMarker represents Not-a-Time
// and every other field is meaningless.
type Struct struct {
	Year  int64
	Month int // [1,12]
	Day   int // [1, days_in_month(Year,Month)]
	Hour  int // [0,23]
	Min   int // [0,59]
	Sec   int // [0,60]; 60 tolerated only on read-back of an integer tick
	Us    int // [0,999999]
	Ps    int // [0,999999]
	As    int // [0,999999]
}

// NaTStruct is the canonical Not-a-Time Struct value.
var NaTStruct = Struct{Year: NaTMarker}

// IsNaT reports whether s represents Not-a-Time.
func (s Struct) IsNaT() bool {
	return s.Year == NaTMarker
}

// Validate checks every field of s against the ranges spec.md §3
// pins, tolerating a leap second (Sec == 60) only when allowLeapSecond
// is set. The ISO-8601 parser validates with it set; EncodeStruct
// validates with it clear, so a parsed Sec == 60 is rejected there.
func (s Struct) Validate(allowLeapSecond bool) error {
	if s.IsNaT() {
		return nil
	}
	if err := validateDate(s.Year, s.Month, s.Day); err != nil {
		return err
	}
	return validateTime(s.Hour, s.Min, s.Sec, s.Us, s.Ps, s.As, allowLeapSecond)
}
