package nonzero

import (
	"fmt"
	"strconv"
)

// Primitive is the closed set of integer types that have a non-zero wrapper.
// The terms carry no ~ so named types built on these are rejected.
type Primitive interface {
	int8 | int16 | int32 | int64 | Int128 | int |
		uint8 | uint16 | uint32 | uint64 | Uint128 | uint
}

// Kind identifies one of the twelve primitive kinds.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindIsize
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindUsize
)

type kindInfo struct {
	suffix string
	goType string
	alias  string
	bits   int
	signed bool
}

var kindTable = [...]kindInfo{
	KindI8:    {"i8", "int8", "I8", 8, true},
	KindI16:   {"i16", "int16", "I16", 16, true},
	KindI32:   {"i32", "int32", "I32", 32, true},
	KindI64:   {"i64", "int64", "I64", 64, true},
	KindI128:  {"i128", "nonzero.Int128", "I128", 128, true},
	KindIsize: {"isize", "int", "Int", strconv.IntSize, true},
	KindU8:    {"u8", "uint8", "U8", 8, false},
	KindU16:   {"u16", "uint16", "U16", 16, false},
	KindU32:   {"u32", "uint32", "U32", 32, false},
	KindU64:   {"u64", "uint64", "U64", 64, false},
	KindU128:  {"u128", "nonzero.Uint128", "U128", 128, false},
	KindUsize: {"usize", "uint", "Uint", strconv.IntSize, false},
}

// Kinds returns the twelve kinds, signed first, in ascending width.
func Kinds() []Kind {
	return []Kind{
		KindI8, KindI16, KindI32, KindI64, KindI128, KindIsize,
		KindU8, KindU16, KindU32, KindU64, KindU128, KindUsize,
	}
}

// ParseKind maps a literal suffix such as "usize" to its kind.
func ParseKind(suffix string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindTable[k].suffix == suffix {
			return k, true
		}
	}
	return KindInvalid, false
}

// Valid reports whether k is one of the twelve kinds.
func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(kindTable)
}

func (k Kind) info() kindInfo {
	if !k.Valid() {
		panic(fmt.Sprintf("nonzero: invalid kind %d", uint8(k)))
	}
	return kindTable[k]
}

// Suffix is the literal suffix naming k, e.g. "u8".
func (k Kind) Suffix() string { return k.info().suffix }

// GoType is the Go spelling of the primitive, qualified with the package name
// for the 128-bit kinds.
func (k Kind) GoType() string { return k.info().goType }

// Alias is the name of the wrapper alias for k in this package.
func (k Kind) Alias() string { return k.info().alias }

// Bits is the width of the primitive in bits.
func (k Kind) Bits() int { return k.info().bits }

// Size is the width of the primitive in bytes.
func (k Kind) Size() int { return k.info().bits / 8 }

// Signed reports whether the primitive is two's complement signed.
func (k Kind) Signed() bool { return k.info().signed }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindTable[k].suffix
}

// KindOf returns the kind of the primitive type T.
func KindOf[T Primitive]() Kind {
	switch any((*T)(nil)).(type) {
	case *int8:
		return KindI8
	case *int16:
		return KindI16
	case *int32:
		return KindI32
	case *int64:
		return KindI64
	case *Int128:
		return KindI128
	case *int:
		return KindIsize
	case *uint8:
		return KindU8
	case *uint16:
		return KindU16
	case *uint32:
		return KindU32
	case *uint64:
		return KindU64
	case *Uint128:
		return KindU128
	case *uint:
		return KindUsize
	}
	panic("nonzero: unreachable primitive type")
}
