package nonzero

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt128_String(t *testing.T) {
	tests := []struct {
		v    Int128
		want string
	}{
		{I128From64(0), "0"},
		{I128From64(-1), "-1"},
		{I128From64(math.MinInt64), "-9223372036854775808"},
		{I128From64(math.MaxInt64), "9223372036854775807"},
		{Int128{Lo: 1 << 63}, "9223372036854775808"},
		{Int128{Hi: 1}, "18446744073709551616"},
		{Int128{Hi: math.MinInt64}, "-170141183460469231731687303715884105728"},
		{Int128{Lo: math.MaxUint64, Hi: math.MaxInt64}, "170141183460469231731687303715884105727"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
			assert.Equal(t, tt.want, tt.v.Big().String())
		})
	}
}

func TestUint128_String(t *testing.T) {
	assert.Equal(t, "0", Uint128{}.String())
	assert.Equal(t, "18446744073709551615", U128From64(math.MaxUint64).String())
	assert.Equal(t, "18446744073709551616", Uint128{Hi: 1}.String())
	assert.Equal(t, "340282366920938463463374607431768211455", Uint128{Lo: math.MaxUint64, Hi: math.MaxUint64}.String())
}

func TestInt128_IsZero(t *testing.T) {
	assert.True(t, Int128{}.IsZero())
	assert.True(t, Uint128{}.IsZero())
	assert.False(t, Int128{Hi: -1}.IsZero())
	assert.False(t, Uint128{Lo: 1}.IsZero())
}

func TestI128From64_SignExtends(t *testing.T) {
	assert.Equal(t, Int128{Lo: math.MaxUint64, Hi: -1}, I128From64(-1))
	assert.Equal(t, Int128{Lo: 5}, I128From64(5))
}
