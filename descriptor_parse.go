package tunit

import (
	"fmt"
	"strconv"
	"strings"
)

// descriptor_parse.go implements component E: the textual descriptor
// grammar and its inverse formatter, plus the legacy tuple and
// type-string ingestion forms spec.md §6 also accepts on input.

var symbolToBase = func() map[string]Base {
	m := make(map[string]Base, len(baseSymbols))
	for b, sym := range baseSymbols {
		if sym == "" {
			continue
		}
		m[sym] = Base(b)
	}
	return m
}()

func splitLeadingDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

// rewriteDivisor implements the "/den" rewrite rule of spec.md §4.E: a
// trailing "/den" is rewritten to (base', num*q) where base' is the
// first base, stepping down the factors[] chain from base, at which den
// divides the accumulated factor, and q = factor/den.
func rewriteDivisor(base Base, num, den int64) (Descriptor, error) {
	if den < 1 {
		return Descriptor{}, newErr(KindInvalidDescriptor, "divisor must be a positive integer")
	}
	if den == 1 {
		return Descriptor{Base: base, Num: num}, nil
	}
	if !base.IsLinear() {
		return Descriptor{}, newErr(KindInvalidDescriptor, "divisor is not a multiple of a lower unit")
	}

	idx, ok := linearIndex(base)
	if !ok {
		return Descriptor{}, newErr(KindInvalidDescriptor, "divisor is not a multiple of a lower unit")
	}

	factor := int64(1)
	for i := idx; i < len(linearOrder)-1; i++ {
		factor *= subDayFactors[linearOrder[i]]
		if factor%den == 0 {
			return Descriptor{Base: linearOrder[i+1], Num: num * (factor / den)}, nil
		}
	}
	return Descriptor{}, newErr(KindInvalidDescriptor, "divisor is not a multiple of a lower unit")
}

// ParseDescriptor parses the bracketed descriptor grammar of spec.md
// §4.E: "" | "[" [integer] base ["/" integer] "]" | "[generic]".
func ParseDescriptor(s string) (Descriptor, error) {
	if s == "" {
		return GenericDescriptor, nil
	}
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Descriptor{}, newErr(KindInvalidDescriptor, "descriptor literal must be wrapped in '[' ']': %q", s)
	}

	inner := s[1 : len(s)-1]
	if inner == "" || inner == "generic" {
		return GenericDescriptor, nil
	}

	basePart, denStr := inner, ""
	if i := strings.IndexByte(inner, '/'); i >= 0 {
		basePart, denStr = inner[:i], inner[i+1:]
	}

	numStr, symStr := splitLeadingDigits(basePart)
	num := int64(1)
	if numStr != "" {
		n, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil || n < 1 {
			return Descriptor{}, newErr(KindInvalidDescriptor, "invalid multiplier in %q", s)
		}
		num = n
	}

	base, ok := symbolToBase[symStr]
	if !ok {
		return Descriptor{}, newErr(KindInvalidUnit, "unrecognised base unit %q", symStr)
	}
	if base == BaseGeneric && numStr != "" {
		return Descriptor{}, newErr(KindInvalidDescriptor, "the generic unit cannot carry a multiplier")
	}

	if denStr == "" {
		return Descriptor{Base: base, Num: num}, nil
	}

	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil || den < 1 {
		return Descriptor{}, newErr(KindInvalidDescriptor, "invalid divisor in %q", s)
	}
	return rewriteDivisor(base, num, den)
}

// FormatDescriptor is ParseDescriptor's inverse, always bracketed.
func FormatDescriptor(d Descriptor) string {
	if d.Base == BaseGeneric {
		return "[]"
	}
	if d.Num == 1 {
		return "[" + d.Base.String() + "]"
	}
	return fmt.Sprintf("[%d%s]", d.Num, d.Base.String())
}

// FormatDescriptorBare renders d without surrounding brackets, used for
// dtype-string contexts; the Generic unit renders as "generic".
func FormatDescriptorBare(d Descriptor) string {
	if d.Base == BaseGeneric {
		return "generic"
	}
	if d.Num == 1 {
		return d.Base.String()
	}
	return fmt.Sprintf("%d%s", d.Num, d.Base.String())
}

// ParseTypeString strips one of the dtype prefixes spec.md §6 accepts
// ("M8", "m8", "datetime64", "timedelta64") and parses the remainder
// as a descriptor, reporting whether the prefix denotes an instant
// (datetime64/M8) or a duration (timedelta64/m8) type.
func ParseTypeString(s string) (isInstant bool, d Descriptor, err error) {
	if len(s) < 2 {
		return false, Descriptor{}, newErr(KindInvalidDescriptor, "type string %q shorter than minimum length 2", s)
	}

	switch {
	case strings.HasPrefix(s, "datetime64"):
		d, err = ParseDescriptor(s[len("datetime64"):])
		return true, d, err
	case strings.HasPrefix(s, "timedelta64"):
		d, err = ParseDescriptor(s[len("timedelta64"):])
		return false, d, err
	case strings.HasPrefix(s, "M8"):
		d, err = ParseDescriptor(s[len("M8"):])
		return true, d, err
	case strings.HasPrefix(s, "m8"):
		d, err = ParseDescriptor(s[len("m8"):])
		return false, d, err
	default:
		return false, Descriptor{}, newErr(KindInvalidDescriptor, "unrecognised dtype prefix in %q", s)
	}
}

func descriptorFromSymbolNum(symbol string, num int64) (Descriptor, error) {
	base, ok := symbolToBase[symbol]
	if !ok {
		return Descriptor{}, newErr(KindInvalidUnit, "unrecognised base unit %q", symbol)
	}
	if num < 1 {
		return Descriptor{}, newErr(KindInvalidDescriptor, "multiplier must be >= 1")
	}
	if base == BaseGeneric && num != 1 {
		return Descriptor{}, newErr(KindInvalidDescriptor, "the generic unit cannot carry a multiplier")
	}
	return Descriptor{Base: base, Num: num}, nil
}

// DescriptorFromTuple2 builds a descriptor from the canonical 2-tuple
// in-memory representation (unit-symbol, num).
func DescriptorFromTuple2(symbol string, num int64) (Descriptor, error) {
	return descriptorFromSymbolNum(symbol, num)
}

// DescriptorFromTuple3 accepts the legacy 3-tuple form (symbol, num,
// event); the event slot is ignored with a one-shot deprecation
// notice (spec.md §4.E, §7).
func DescriptorFromTuple3(symbol string, num, legacyEvent int64) (Descriptor, error) {
	warnLegacyTuple()
	return descriptorFromSymbolNum(symbol, num)
}

// DescriptorFromTuple4 accepts the legacy 4-tuple form (symbol, num,
// den, event): the event slot is ignored with a one-shot deprecation
// notice, and den is applied via the §4.E divisor rewrite.
func DescriptorFromTuple4(symbol string, num, den, legacyEvent int64) (Descriptor, error) {
	warnLegacyTuple()
	base, ok := symbolToBase[symbol]
	if !ok {
		return Descriptor{}, newErr(KindInvalidUnit, "unrecognised base unit %q", symbol)
	}
	return rewriteDivisor(base, num, den)
}
