package nonzero

import (
	"math/big"
	"strconv"
)

// Uint128 is an unsigned 128-bit integer. Lo holds the low 64 bits and comes
// first, so on little-endian machines the memory layout matches a native
// 128-bit integer.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// Int128 is a two's complement signed 128-bit integer laid out like Uint128.
type Int128 struct {
	Lo uint64
	Hi int64
}

// U128From64 widens v to 128 bits.
func U128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// I128From64 sign-extends v to 128 bits.
func I128From64(v int64) Int128 {
	return Int128{Lo: uint64(v), Hi: v >> 63}
}

// IsZero reports whether all 128 bits are zero.
func (u Uint128) IsZero() bool { return u.Lo == 0 && u.Hi == 0 }

// IsZero reports whether all 128 bits are zero.
func (i Int128) IsZero() bool { return i.Lo == 0 && i.Hi == 0 }

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	b := new(big.Int).SetUint64(u.Hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(u.Lo))
}

// Big returns i as a big.Int.
func (i Int128) Big() *big.Int {
	b := big.NewInt(i.Hi)
	b.Lsh(b, 64)
	return b.Add(b, new(big.Int).SetUint64(i.Lo))
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	return u.Big().String()
}

func (i Int128) String() string {
	if (i.Hi == 0 && i.Lo <= 1<<63-1) || (i.Hi == -1 && i.Lo >= 1<<63) {
		return strconv.FormatInt(int64(i.Lo), 10)
	}
	return i.Big().String()
}
