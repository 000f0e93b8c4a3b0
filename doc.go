// Package tunit implements a typed temporal value library: two scalar
// kinds, Datetime64 (an absolute instant) and Timedelta64 (a signed
// duration), each carrying a unit Descriptor (a base unit plus an
// integer multiplier).
//
// The package is organised around the unit algebra (converting,
// promoting and dividing descriptors), a calendar engine (broken-down
// date/time structs versus a tick count since the Unix epoch), a
// textual descriptor grammar, a coercion layer that accepts
// heterogeneous external inputs, and a range generator that produces
// arithmetic progressions of scalars sharing a common resolved unit.
//
// The package is single-threaded and purely computational: every
// operation takes its inputs by value and returns its outputs by
// value. The state shared across calls is the read-only tables in
// units.go and descriptor_parse.go, initialised once at package load and
// never mutated, plus the logger and one-shot warning flags in warn.go.
package tunit
