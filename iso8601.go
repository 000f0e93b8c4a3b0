package tunit

import (
	"fmt"
	"strconv"
	"strings"
)

// iso8601.go defines the out-of-scope ISO-8601 string collaborator
// (spec.md §1, §6) as an interface, plus a default implementation
// covering the subset of ISO-8601 the coercion layer and this
// package's own tests need:
//
//	YYYY-MM-DD[THH:MM:SS[.ffffff]][Z|+-HH:MM]
//
// Full ISO-8601 textual parsing/formatting is explicitly out of scope
// for the core (spec.md §1); a host application may supply its own
// ISO8601Parser to replace DefaultISO8601Parser without touching any
// other component.

// ISO8601Parser is the external string-codec collaborator contract of
// spec.md §6: parse_iso_8601(text, hint_unit, casting) -> (struct,
// suggested_unit) or error.
type ISO8601Parser interface {
	Parse(text string, hint Descriptor, mode CastingMode) (Struct, Descriptor, error)
}

// DefaultISO8601Parser is the bundled ISO-8601 collaborator.
type DefaultISO8601Parser struct{}

var defaultParser ISO8601Parser = DefaultISO8601Parser{}

// Parse implements ISO8601Parser.
func (DefaultISO8601Parser) Parse(text string, hint Descriptor, mode CastingMode) (Struct, Descriptor, error) {
	if strings.EqualFold(text, "nat") {
		return NaTStruct, GenericDescriptor, nil
	}

	s, offsetMinutes, hasOffset, hasTime, err := parseISO8601(text)
	if err != nil {
		return Struct{}, Descriptor{}, wrapErr(KindConversionFailure, err, "parsing %q as ISO-8601", text)
	}

	if hasOffset {
		warnTzinfo()
		if err := addMinutes(&s, -offsetMinutes); err != nil {
			return Struct{}, Descriptor{}, err
		}
	}

	suggested := Descriptor{Base: BaseDay, Num: 1}
	if hasTime {
		suggested = Descriptor{Base: BaseMicrosecond, Num: 1}
	}
	return s, suggested, nil
}

// parseISO8601 parses "YYYY-MM-DD[THH:MM:SS[.ffffff]][Z|+-HH:MM]".
func parseISO8601(text string) (s Struct, offsetMinutes int64, hasOffset, hasTime bool, err error) {
	rest := text

	year, rest, err := takeSignedDigits(rest, 4)
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	rest, err = expect(rest, '-')
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	month, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	rest, err = expect(rest, '-')
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	day, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}

	s = Struct{Year: year, Month: int(month), Day: int(day)}

	if rest == "" {
		if err := validateDate(s.Year, s.Month, s.Day); err != nil {
			return Struct{}, 0, false, false, err
		}
		return s, 0, false, false, nil
	}

	rest, err = expect(rest, 'T')
	if err != nil {
		return Struct{}, 0, false, false, err
	}

	hour, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	rest, err = expect(rest, ':')
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	min, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	rest, err = expect(rest, ':')
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	sec, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}

	s.Hour, s.Min, s.Sec = int(hour), int(min), int(sec)

	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		digits, r := takeWhileDigits(rest)
		rest = r
		us, ps, as := fractionToSubSecond(digits)
		s.Us, s.Ps, s.As = us, ps, as
	}

	if rest == "" {
		if err := s.Validate(true); err != nil {
			return Struct{}, 0, false, false, err
		}
		return s, 0, false, true, nil
	}

	if rest == "Z" {
		if err := s.Validate(true); err != nil {
			return Struct{}, 0, false, false, err
		}
		return s, 0, true, true, nil
	}

	sign := int64(1)
	switch rest[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return Struct{}, 0, false, false, newErr(KindConversionFailure, "unexpected trailing characters %q", rest)
	}
	rest = rest[1:]
	offHour, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	rest, err = expect(rest, ':')
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	offMin, rest, err := takeDigits(rest, 2)
	if err != nil {
		return Struct{}, 0, false, false, err
	}
	if rest != "" {
		return Struct{}, 0, false, false, newErr(KindConversionFailure, "unexpected trailing characters %q", rest)
	}

	if err := s.Validate(true); err != nil {
		return Struct{}, 0, false, false, err
	}
	return s, sign * (offHour*60 + offMin), true, true, nil
}

// fractionToSubSecond maps up to 18 fractional-second digits onto the
// (Us, Ps, As) mixed-radix fields, zero-padding/truncating as needed.
func fractionToSubSecond(digits string) (us, ps, as int) {
	padded := (digits + "000000000000000000")[:18]
	us64, _ := strconv.ParseInt(padded[0:6], 10, 64)
	ps64, _ := strconv.ParseInt(padded[6:12], 10, 64)
	as64, _ := strconv.ParseInt(padded[12:18], 10, 64)
	return int(us64), int(ps64), int(as64)
}

func takeDigits(s string, n int) (int64, string, error) {
	if len(s) < n {
		return 0, s, newErr(KindConversionFailure, "expected %d digits in %q", n, s)
	}
	v, err := strconv.ParseInt(s[:n], 10, 64)
	if err != nil {
		return 0, s, newErr(KindConversionFailure, "expected %d digits in %q", n, s)
	}
	return v, s[n:], nil
}

func takeSignedDigits(s string, n int) (int64, string, error) {
	sign := int64(1)
	rest := s
	if strings.HasPrefix(rest, "-") {
		sign = -1
		rest = rest[1:]
	} else if strings.HasPrefix(rest, "+") {
		rest = rest[1:]
	}
	v, rest, err := takeDigits(rest, n)
	if err != nil {
		return 0, s, err
	}
	return sign * v, rest, nil
}

func takeWhileDigits(s string) (digits, rest string) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i], s[i:]
}

func expect(s string, c byte) (string, error) {
	if len(s) == 0 || s[0] != c {
		return s, newErr(KindConversionFailure, "expected %q at %q", string(c), s)
	}
	return s[1:], nil
}

// FormatISO8601 renders s in the subset grammar parseISO8601 accepts,
// used by Datetime64.String(). NaT renders as "NaT".
func FormatISO8601(s Struct) string {
	if s.IsNaT() {
		return "NaT"
	}
	out := fmt.Sprintf("%04d-%02d-%02d", s.Year, s.Month, s.Day)
	if s.Hour == 0 && s.Min == 0 && s.Sec == 0 && s.Us == 0 && s.Ps == 0 && s.As == 0 {
		return out
	}
	out += fmt.Sprintf("T%02d:%02d:%02d", s.Hour, s.Min, s.Sec)
	if s.Us != 0 || s.Ps != 0 || s.As != 0 {
		frac := fmt.Sprintf("%06d%06d%06d", s.Us, s.Ps, s.As)
		frac = strings.TrimRight(frac, "0")
		out += "." + frac
	}
	return out
}
