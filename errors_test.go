package tunit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemporalErrorIsMatchesByKind(t *testing.T) {
	err := newErr(KindOverflow, "tick overflows int64")
	assert.True(t, errors.Is(err, newErr(KindOverflow, "")))
	assert.False(t, errors.Is(err, newErr(KindInvalidDate, "")))
}

func TestTemporalErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := wrapErr(KindConversionFailure, cause, "parsing failed")
	assert.ErrorIs(t, err, cause)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "StepZero", KindStepZero.String())
	assert.Equal(t, "Overflow", KindOverflow.String())
}
