package tunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionFactorSameBase(t *testing.T) {
	num, den, err := ConversionFactor(Descriptor{Base: BaseSecond, Num: 30}, Descriptor{Base: BaseSecond, Num: 45}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), num)
	assert.Equal(t, int64(3), den)
}

func TestConversionFactorLinearChain(t *testing.T) {
	num, den, err := ConversionFactor(Descriptor{Base: BaseDay, Num: 1}, Descriptor{Base: BaseHour, Num: 1}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(24), num)
	assert.Equal(t, int64(1), den)
}

func TestConversionFactorNonlinearStrictRejected(t *testing.T) {
	_, _, err := ConversionFactor(Descriptor{Base: BaseYear, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, true)
	var terr *TemporalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindCastingForbidden, terr.Kind)
}

func TestConversionFactorNonlinearInstantAllowed(t *testing.T) {
	_, _, err := ConversionFactor(Descriptor{Base: BaseYear, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, false)
	assert.NoError(t, err)
}

func TestGCDDescriptorsSameBase(t *testing.T) {
	g, err := GCDDescriptors(Descriptor{Base: BaseSecond, Num: 30}, Descriptor{Base: BaseSecond, Num: 120}, true)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseSecond, Num: 30}, g)
}

func TestGCDDescriptorsSecondMinute(t *testing.T) {
	// GCD(Second,30 & Minute,2) -> (Second,30): 2 minutes = 120 seconds,
	// gcd(30,120) = 30.
	g, err := GCDDescriptors(Descriptor{Base: BaseSecond, Num: 30}, Descriptor{Base: BaseMinute, Num: 2}, true)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseSecond, Num: 30}, g)
}

func TestGCDDescriptorsYearMonth(t *testing.T) {
	// GCD(Year,1 & Month,6) -> (Month,6): 1 year = 12 months,
	// gcd(12,6) = 6.
	g, err := GCDDescriptors(Descriptor{Base: BaseYear, Num: 1}, Descriptor{Base: BaseMonth, Num: 6}, true)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseMonth, Num: 6}, g)
}

func TestGCDDescriptorsNonlinearBarrier(t *testing.T) {
	_, err := GCDDescriptors(Descriptor{Base: BaseYear, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, true)
	var terr *TemporalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindCastingForbidden, terr.Kind)

	g, err := GCDDescriptors(Descriptor{Base: BaseYear, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, false)
	require.NoError(t, err)
	assert.Equal(t, Descriptor{Base: BaseDay, Num: 1}, g)
}

func TestCastableDayToHourSafe(t *testing.T) {
	assert.True(t, Castable(Descriptor{Base: BaseDay, Num: 1}, Descriptor{Base: BaseHour, Num: 1}, CastSafe, true))
}

func TestCastableHourToDaySafeFails(t *testing.T) {
	assert.False(t, Castable(Descriptor{Base: BaseHour, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, CastSafe, true))
}

func TestCastableHourToDaySameKindSucceeds(t *testing.T) {
	assert.True(t, Castable(Descriptor{Base: BaseHour, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, CastSameKind, true))
}

func TestCastTickOverflowsAreReported(t *testing.T) {
	_, err := CastTick(1<<62, Descriptor{Base: BaseSecond, Num: 1}, Descriptor{Base: BaseNanosecond, Num: 1}, CastUnsafe, true)
	var terr *TemporalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindOverflow, terr.Kind)
}

func TestCastTickNaTPropagatesWithoutCastabilityCheck(t *testing.T) {
	out, err := CastTick(NaTTick, Descriptor{Base: BaseYear, Num: 1}, Descriptor{Base: BaseAttosecond, Num: 1}, CastNo, true)
	require.NoError(t, err)
	assert.Equal(t, NaTTick, out)
}

func TestDivisible(t *testing.T) {
	ok, err := Divisible(Descriptor{Base: BaseHour, Num: 1}, Descriptor{Base: BaseDay, Num: 1}, true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Divisible(Descriptor{Base: BaseDay, Num: 1}, Descriptor{Base: BaseHour, Num: 1}, true)
	require.NoError(t, err)
	assert.True(t, ok)
}
