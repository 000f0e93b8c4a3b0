package tunit

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies the taxonomy of errors this package raises (spec.md §7).
// These are kinds, not Go types: a *TemporalError carries one.
type Kind int

const (
	// KindInvalidUnit indicates a textual unit not in the descriptor grammar.
	KindInvalidUnit Kind = iota
	// KindInvalidDescriptor indicates a malformed "[...]" literal or a tuple outside size 2-4.
	KindInvalidDescriptor
	// KindGenericUnitMisuse indicates a non-NaT value demanded at Generic base,
	// an integer input without a specified unit, or a specific-to-Generic conversion.
	KindGenericUnitMisuse
	// KindCastingForbidden indicates the castability check failed under the requested mode.
	KindCastingForbidden
	// KindOverflow indicates a conversion factor or GCD alignment exceeded the safety margin.
	KindOverflow
	// KindInvalidDate indicates month outside [1,12] or day outside [1, days_in_month].
	KindInvalidDate
	// KindInvalidTime indicates hour/minute/second/microsecond out of range.
	KindInvalidTime
	// KindStepZero indicates the range generator saw a zero step.
	KindStepZero
	// KindConversionFailure indicates the coercion layer exhausted all strategies.
	KindConversionFailure
)

func (k Kind) String() string {
	switch k {
	case KindInvalidUnit:
		return "InvalidUnit"
	case KindInvalidDescriptor:
		return "InvalidDescriptor"
	case KindGenericUnitMisuse:
		return "GenericUnitMisuse"
	case KindCastingForbidden:
		return "CastingForbidden"
	case KindOverflow:
		return "Overflow"
	case KindInvalidDate:
		return "InvalidDate"
	case KindInvalidTime:
		return "InvalidTime"
	case KindStepZero:
		return "StepZero"
	case KindConversionFailure:
		return "ConversionFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// TemporalError is the concrete error type this package returns. It
// carries a Kind so callers can branch with errors.Is/errors.As, and
// wraps the underlying cause (if any) with pkg/errors so a stack trace
// survives to the top of the call chain.
type TemporalError struct {
	Kind Kind
	msg  string
	err  error
}

func (e *TemporalError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *TemporalError) Unwrap() error { return e.err }

// Is reports whether target is a *TemporalError with the same Kind,
// supporting errors.Is(err, newErr(SomeKind, "")).
func (e *TemporalError) Is(target error) bool {
	t, ok := target.(*TemporalError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(kind Kind, format string, args ...interface{}) *TemporalError {
	return &TemporalError{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

func wrapErr(kind Kind, cause error, format string, args ...interface{}) *TemporalError {
	return &TemporalError{Kind: kind, msg: fmt.Sprintf(format, args...), err: errors.WithStack(cause)}
}
