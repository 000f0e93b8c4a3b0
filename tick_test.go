package tunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStructDayUnit(t *testing.T) {
	tick, err := EncodeStruct(Struct{Year: 2000, Month: 2, Day: 29}, Descriptor{Base: BaseDay, Num: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(11016), tick)
}

func TestEncodeDecodeRoundTripAllLinearBases(t *testing.T) {
	// 1970-02-14 lies inside the roughly +-106-day span an int64
	// picosecond tick covers around the epoch.
	s := Struct{Year: 1970, Month: 2, Day: 14, Hour: 13, Min: 45, Sec: 30, Us: 123456, Ps: 654321, As: 999999}
	for _, base := range []Base{
		BaseDay, BaseHour, BaseMinute, BaseSecond, BaseMillisecond,
		BaseMicrosecond, BaseNanosecond, BasePicosecond,
	} {
		t.Run(base.String(), func(t *testing.T) {
			d := Descriptor{Base: base, Num: 1}
			tick, err := EncodeStruct(s, d)
			require.NoError(t, err)

			got, err := DecodeStruct(tick, d)
			require.NoError(t, err)

			// Round trip is only lossless at or finer than the field's
			// own resolution; truncate the source for comparison.
			want := s
			switch base {
			case BaseDay:
				want.Hour, want.Min, want.Sec, want.Us, want.Ps, want.As = 0, 0, 0, 0, 0, 0
			case BaseHour:
				want.Min, want.Sec, want.Us, want.Ps, want.As = 0, 0, 0, 0, 0
			case BaseMinute:
				want.Sec, want.Us, want.Ps, want.As = 0, 0, 0, 0
			case BaseSecond:
				want.Us, want.Ps, want.As = 0, 0, 0
			case BaseMillisecond:
				want.Us, want.Ps, want.As = (want.Us/1000)*1000, 0, 0
			case BaseMicrosecond:
				want.Ps, want.As = 0, 0
			case BaseNanosecond:
				want.Ps, want.As = (want.Ps/1000)*1000, 0
			case BasePicosecond:
				want.As = 0
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeDecodeYearMonth(t *testing.T) {
	tick, err := EncodeStruct(Struct{Year: 2020, Month: 6, Day: 1}, Descriptor{Base: BaseMonth, Num: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(12*50+5), tick)

	got, err := DecodeStruct(tick, Descriptor{Base: BaseMonth, Num: 1})
	require.NoError(t, err)
	assert.Equal(t, Struct{Year: 2020, Month: 6, Day: 1}, got)
}

func TestEncodeStructNaTPropagates(t *testing.T) {
	tick, err := EncodeStruct(NaTStruct, Descriptor{Base: BaseDay, Num: 1})
	require.NoError(t, err)
	assert.Equal(t, NaTTick, tick)

	s, err := DecodeStruct(NaTTick, Descriptor{Base: BaseDay, Num: 1})
	require.NoError(t, err)
	assert.True(t, s.IsNaT())
}

func TestEncodeStructRejectsGenericAndError(t *testing.T) {
	_, err := EncodeStruct(Struct{Year: 2020, Month: 1, Day: 1}, GenericDescriptor)
	assert.Error(t, err)

	_, err = EncodeStruct(Struct{Year: 2020, Month: 1, Day: 1}, errDescriptor)
	assert.Error(t, err)
}

func TestEncodeStructRejectsInvalidDate(t *testing.T) {
	_, err := EncodeStruct(Struct{Year: 2021, Month: 2, Day: 29}, Descriptor{Base: BaseDay, Num: 1})
	assert.Error(t, err)
}

func TestEncodeStructFemtosecondOverflowsFarFromEpoch(t *testing.T) {
	// Femtosecond resolution spans roughly 2.6 hours either side of the
	// epoch in an int64 tick; a date far from 1970 overflows by design.
	_, err := EncodeStruct(Struct{Year: 2020, Month: 1, Day: 1}, Descriptor{Base: BaseFemtosecond, Num: 1})
	var terr *TemporalError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, KindOverflow, terr.Kind)
}

func TestSubSecondAttosecondRoundTrip(t *testing.T) {
	for _, atto := range []int64{0, 1, 999999999999999999, 123456789012345678} {
		us, ps, as := splitSubSecondAttoseconds(atto)
		s := Struct{Us: us, Ps: ps, As: as}
		assert.Equal(t, atto, subSecondAttoseconds(s))
	}
}
