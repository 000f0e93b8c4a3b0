package tunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseString(t *testing.T) {
	for _, tt := range []struct {
		name string
		b    Base
		want string
	}{
		{"year", BaseYear, "Y"},
		{"month", BaseMonth, "M"},
		{"week", BaseWeek, "W"},
		{"day", BaseDay, "D"},
		{"attosecond", BaseAttosecond, "as"},
		{"generic", BaseGeneric, "generic"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.b.String())
		})
	}
}

func TestBaseLinearNonlinear(t *testing.T) {
	assert.True(t, BaseYear.IsNonlinear())
	assert.True(t, BaseMonth.IsNonlinear())
	assert.False(t, BaseDay.IsNonlinear())
	assert.True(t, BaseDay.IsLinear())
	assert.True(t, BaseWeek.IsLinear())
	assert.False(t, BaseYear.IsLinear())
	assert.False(t, baseReservedGap.IsLinear())
}

func TestDaysInMonthLeapYear(t *testing.T) {
	for _, tt := range []struct {
		name string
		year int64
		want int
	}{
		{"divisible by 4 not 100", 2024, 29},
		{"divisible by 100 not 400", 1900, 28},
		{"divisible by 400", 2000, 29},
		{"ordinary year", 2023, 28},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysInMonth(tt.year, 2))
		})
	}
}

func TestDescriptorValid(t *testing.T) {
	require.True(t, Descriptor{Base: BaseDay, Num: 1}.valid())
	require.True(t, Descriptor{Base: BaseGeneric, Num: 1}.valid())
	require.False(t, Descriptor{Base: BaseGeneric, Num: 2}.valid())
	require.False(t, Descriptor{Base: BaseDay, Num: 0}.valid())
	require.False(t, Descriptor{Base: baseReservedGap, Num: 1}.valid())
}
