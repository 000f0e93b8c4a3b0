package tunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDescriptorEmpty(t *testing.T) {
	d, err := ParseDescriptor("")
	require.NoError(t, err)
	assert.Equal(t, GenericDescriptor, d)
}

func TestParseDescriptorGeneric(t *testing.T) {
	d, err := ParseDescriptor("[generic]")
	require.NoError(t, err)
	assert.Equal(t, GenericDescriptor, d)
}

func TestParseDescriptorSimple(t *testing.T) {
	d, err := ParseDescriptor("[s]")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseSecond, Num: 1}, d)
}

func TestParseDescriptorMultiplier(t *testing.T) {
	d, err := ParseDescriptor("[5ms]")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseMillisecond, Num: 5}, d)
}

func TestParseDescriptorDivisorRewrite(t *testing.T) {
	// [1W/7] -> (Day, 1): one 7th of a week is exactly one day.
	d, err := ParseDescriptor("[1W/7]")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 1}, d)
}

func TestParseDescriptorDivisorRewriteNonTrivialNumerator(t *testing.T) {
	d, err := ParseDescriptor("[2W/7]")
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 2}, d)
}

func TestParseDescriptorMalformed(t *testing.T) {
	for _, s := range []string{"s", "[s", "s]", "[9999generic]", "[xyz]"} {
		_, err := ParseDescriptor(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestFormatDescriptorRoundTrip(t *testing.T) {
	for _, d := range []Descriptor{
		{Base: BaseSecond, Num: 1},
		{Base: BaseMillisecond, Num: 5},
		GenericDescriptor,
	} {
		s := FormatDescriptor(d)
		got, err := ParseDescriptor(s)
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
}

func TestParseTypeString(t *testing.T) {
	isInstant, d, err := ParseTypeString("datetime64[s]")
	require.NoError(t, err)
	assert.True(t, isInstant)
	assert.Equal(t, Descriptor{Base: BaseSecond, Num: 1}, d)

	isInstant, d, err = ParseTypeString("m8[D]")
	require.NoError(t, err)
	assert.False(t, isInstant)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 1}, d)
}

func TestDescriptorFromTupleLegacyForms(t *testing.T) {
	d, err := DescriptorFromTuple3("s", 1, 0)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseSecond, Num: 1}, d)

	d, err = DescriptorFromTuple4("W", 1, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 1}, d)
}
