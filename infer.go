package tunit

import (
	"errors"
	"reflect"
)

// infer.go implements component H: recursive unit inference over a
// nested input (a scalar, or a slice/array of scalars and further
// nested slices), folding each leaf's own inferred descriptor via the
// component D GCD so the whole structure can share one resolution.

// defaultRecursionLimit bounds the nesting depth InferUnit will walk
// before giving up, guarding against a pathologically deep or cyclic
// slice-of-slices input turning into an unbounded stack recursion.
const defaultRecursionLimit = 64

// InferOption configures a single InferUnit call.
type InferOption func(*inferConfig)

type inferConfig struct {
	maxDepth int
}

// WithRecursionLimit overrides the default nesting-depth bound InferUnit
// walks before reporting KindOverflow.
func WithRecursionLimit(n int) InferOption {
	return func(c *inferConfig) { c.maxDepth = n }
}

// InferUnit walks input, coercing every leaf value with coerceValue
// and folding the resulting descriptors together with GCDDescriptors.
// An input containing no leaves at all (an empty slice, or a slice of
// empty slices) infers to GenericDescriptor.
func InferUnit(input interface{}, mode CastingMode, strictNonlinear bool, opts ...InferOption) (Descriptor, error) {
	cfg := inferConfig{maxDepth: defaultRecursionLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	result, found, err := inferRec(input, mode, strictNonlinear, 0, cfg.maxDepth)
	if err != nil {
		return Descriptor{}, err
	}
	if !found {
		return GenericDescriptor, nil
	}
	return result, nil
}

func inferRec(value interface{}, mode CastingMode, strictNonlinear bool, depth, maxDepth int) (Descriptor, bool, error) {
	if depth > maxDepth {
		return Descriptor{}, false, newErr(KindOverflow, "nested input exceeds recursion limit %d", maxDepth)
	}

	if value == nil {
		desc, _, err := coerceValue(value, errDescriptor, mode, strictNonlinear)
		if err != nil {
			if ignorableLeafErr(err) {
				return Descriptor{}, false, nil
			}
			return Descriptor{}, false, err
		}
		return desc, true, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		desc, _, err := coerceValue(value, errDescriptor, mode, strictNonlinear)
		if err != nil {
			if ignorableLeafErr(err) {
				return Descriptor{}, false, nil
			}
			return Descriptor{}, false, err
		}
		return desc, true, nil
	}

	var acc Descriptor
	found := false
	for i := 0; i < rv.Len(); i++ {
		child, childFound, err := inferRec(rv.Index(i).Interface(), mode, strictNonlinear, depth+1, maxDepth)
		if err != nil {
			return Descriptor{}, false, err
		}
		if !childFound {
			continue
		}
		if !found {
			acc, found = child, true
			continue
		}
		merged, err := GCDDescriptors(acc, child, strictNonlinear)
		if err != nil {
			return Descriptor{}, false, err
		}
		acc = merged
	}
	return acc, found, nil
}

// ignorableLeafErr reports whether err is a malformed-date/time leaf,
// anywhere in its cause chain, that §4.H treats as "ignore this leaf"
// rather than aborting the whole walk, so one bad element in a mixed
// array doesn't prevent inferring a unit from the rest. A string leaf's
// invalid-date error normally surfaces wrapped as ConversionFailure, so
// the cause chain has to be walked rather than checked at the top only.
func ignorableLeafErr(err error) bool {
	for err != nil {
		if terr, ok := err.(*TemporalError); ok && (terr.Kind == KindInvalidDate || terr.Kind == KindInvalidTime) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
