package consteval

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/nonzero"
	"github.com/roach88/nonzero/internal/decl"
)

func validated(t *testing.T, decls ...decl.Decl) *decl.File {
	t.Helper()
	f := &decl.File{Package: "limits", Decls: decls}
	require.Empty(t, decl.Validate(f))
	return f
}

func TestEvaluate_Scenarios(t *testing.T) {
	f := validated(t,
		decl.Decl{Name: "One", Lit: "1usize"},
		decl.Decl{Name: "MinusOne", Lit: "-1i8"},
		decl.Decl{Name: "Twenty", Lit: "20usize"},
		decl.Decl{Name: "Nineteen", Lit: "19usize"},
		decl.Decl{Name: "Diff", Expr: "Twenty - Nineteen", Type: "usize"},
		decl.Decl{Name: "Inline", Expr: "20 - 19", Type: "usize"},
	)

	values, errs := Evaluate(f)
	require.Empty(t, errs)
	require.Len(t, values, 6)

	assert.Equal(t, "1", values[0].Int.String())
	assert.Equal(t, "-1", values[1].Int.String())
	assert.Equal(t, []byte{0xff}, values[1].Bytes)
	assert.Equal(t, "1", values[4].Int.String())
	assert.Equal(t, "1", values[5].Int.String())
}

func TestEvaluate_RejectsZeroForEveryKind(t *testing.T) {
	for _, k := range nonzero.Kinds() {
		t.Run(k.Suffix(), func(t *testing.T) {
			f := validated(t, decl.Decl{Name: "Zero", Lit: "0" + k.Suffix()})
			values, errs := Evaluate(f)
			assert.Empty(t, values)
			require.Len(t, errs, 1)

			var eErr *Error
			require.True(t, errors.As(errs[0], &eErr))
			assert.Equal(t, CodeZero, eErr.Code)
			assert.Equal(t, "argument was zero", eErr.Message)
		})
	}
}

func TestEvaluate_ZeroByExpression(t *testing.T) {
	f := validated(t,
		decl.Decl{Name: "A", Lit: "7u32"},
		decl.Decl{Name: "B", Expr: "A - 7", Type: "u32"},
	)
	_, errs := Evaluate(f)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "argument was zero")
}

func TestEvaluate_BoundaryValues(t *testing.T) {
	tests := []struct {
		lit   string
		value string
		bytes []byte
	}{
		{"-128i8", "-128", []byte{0x80}},
		{"127i8", "127", []byte{0x7f}},
		{"255u8", "255", []byte{0xff}},
		{"-32768i16", "-32768", []byte{0x00, 0x80}},
		{"65535u16", "65535", []byte{0xff, 0xff}},
		{"-2147483648i32", "-2147483648", []byte{0, 0, 0, 0x80}},
		{"0xffff_ffffu32", "4294967295", []byte{0xff, 0xff, 0xff, 0xff}},
		{"-9223372036854775808i64", "-9223372036854775808", []byte{0, 0, 0, 0, 0, 0, 0, 0x80}},
		{"18446744073709551615u64", "18446744073709551615", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.lit, func(t *testing.T) {
			f := validated(t, decl.Decl{Name: "V", Lit: tt.lit})
			values, errs := Evaluate(f)
			require.Empty(t, errs)
			require.Len(t, values, 1)
			assert.Equal(t, tt.value, values[0].Int.String())
			assert.Equal(t, tt.bytes, values[0].Bytes)
		})
	}
}

func TestEvaluate_128Bit(t *testing.T) {
	f := validated(t,
		decl.Decl{Name: "MaxU", Lit: "340282366920938463463374607431768211455u128"},
		decl.Decl{Name: "MinI", Expr: "-1 << 127", Type: "i128"},
		decl.Decl{Name: "High", Expr: "1 << 64", Type: "u128"},
	)
	values, errs := Evaluate(f)
	require.Empty(t, errs)
	require.Len(t, values, 3)

	assert.Len(t, values[0].Bytes, 16)
	for _, b := range values[0].Bytes {
		assert.Equal(t, byte(0xff), b)
	}
	assert.Equal(t, byte(0x80), values[1].Bytes[15])
	assert.Equal(t, byte(1), values[2].Bytes[8])
}

func TestEvaluate_Overflow(t *testing.T) {
	tests := []string{"256u8", "128i8", "-129i8", "-1u32", "340282366920938463463374607431768211456u128"}
	for _, lit := range tests {
		t.Run(lit, func(t *testing.T) {
			f := validated(t, decl.Decl{Name: "V", Lit: lit})
			_, errs := Evaluate(f)
			require.Len(t, errs, 1)

			var eErr *Error
			require.True(t, errors.As(errs[0], &eErr))
			assert.Equal(t, CodeOverflow, eErr.Code)
			assert.Contains(t, eErr.Message, "overflows")
		})
	}
}

func TestEvaluate_NotInteger(t *testing.T) {
	f := validated(t,
		decl.Decl{Name: "Half", Expr: "1.5", Type: "u8"},
		decl.Decl{Name: "Str", Expr: `"x"`, Type: "u8"},
		decl.Decl{Name: "Thousand", Expr: "1e3", Type: "u16"},
	)
	values, errs := Evaluate(f)
	require.Len(t, errs, 2)
	require.Len(t, values, 1)
	assert.Equal(t, "1000", values[0].Int.String())
}

func TestEvaluate_UndefinedName(t *testing.T) {
	f := validated(t,
		decl.Decl{Name: "A", Expr: "B + 1", Type: "u8"},
		decl.Decl{Name: "B", Lit: "1u8"},
	)
	values, errs := Evaluate(f)
	require.Len(t, errs, 1, "names are only visible after their declaration")
	assert.Contains(t, errs[0].Error(), "B")
	require.Len(t, values, 1)
	assert.Equal(t, "B", values[0].Decl.Name)
}

func TestEvaluate_NotConstant(t *testing.T) {
	f := validated(t, decl.Decl{Name: "A", Expr: "len([]int{1})", Type: "usize"})
	_, errs := Evaluate(f)
	require.Len(t, errs, 1)

	var eErr *Error
	require.True(t, errors.As(errs[0], &eErr))
	assert.Equal(t, CodeNotConstant, eErr.Code)
}

func TestInRangeAndEncode(t *testing.T) {
	assert.True(t, InRange(big.NewInt(-1), nonzero.KindI8))
	assert.False(t, InRange(big.NewInt(-1), nonzero.KindU8))
	assert.False(t, InRange(big.NewInt(256), nonzero.KindU8))
	assert.True(t, InRange(big.NewInt(255), nonzero.KindU8))

	assert.Equal(t, []byte{0xfe, 0xff}, Encode(big.NewInt(-2), nonzero.KindI16))
	assert.Equal(t, []byte{0x01, 0x02, 0, 0}, Encode(big.NewInt(0x0201), nonzero.KindU32))
}

func TestIsZero(t *testing.T) {
	for _, k := range nonzero.Kinds() {
		assert.True(t, IsZero(big.NewInt(0), k), k.String())
		assert.False(t, IsZero(big.NewInt(1), k), k.String())
	}
	assert.False(t, IsZero(big.NewInt(-1), nonzero.KindI128))
	assert.False(t, IsZero(new(big.Int).Lsh(big.NewInt(1), 127), nonzero.KindU128))
}
