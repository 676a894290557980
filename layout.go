package nonzero

import "unsafe"

// Build-time layout checks: each pair below must have equal size and
// alignment, otherwise one of the array lengths is negative.
var (
	_ [unsafe.Sizeof(I8{}) - unsafe.Sizeof(int8(0))]struct{}
	_ [unsafe.Sizeof(int8(0)) - unsafe.Sizeof(I8{})]struct{}
	_ [unsafe.Alignof(I8{}) - unsafe.Alignof(int8(0))]struct{}
	_ [unsafe.Alignof(int8(0)) - unsafe.Alignof(I8{})]struct{}

	_ [unsafe.Sizeof(I16{}) - unsafe.Sizeof(int16(0))]struct{}
	_ [unsafe.Sizeof(int16(0)) - unsafe.Sizeof(I16{})]struct{}
	_ [unsafe.Alignof(I16{}) - unsafe.Alignof(int16(0))]struct{}
	_ [unsafe.Alignof(int16(0)) - unsafe.Alignof(I16{})]struct{}

	_ [unsafe.Sizeof(I32{}) - unsafe.Sizeof(int32(0))]struct{}
	_ [unsafe.Sizeof(int32(0)) - unsafe.Sizeof(I32{})]struct{}
	_ [unsafe.Alignof(I32{}) - unsafe.Alignof(int32(0))]struct{}
	_ [unsafe.Alignof(int32(0)) - unsafe.Alignof(I32{})]struct{}

	_ [unsafe.Sizeof(I64{}) - unsafe.Sizeof(int64(0))]struct{}
	_ [unsafe.Sizeof(int64(0)) - unsafe.Sizeof(I64{})]struct{}
	_ [unsafe.Alignof(I64{}) - unsafe.Alignof(int64(0))]struct{}
	_ [unsafe.Alignof(int64(0)) - unsafe.Alignof(I64{})]struct{}

	_ [unsafe.Sizeof(I128{}) - unsafe.Sizeof(Int128{})]struct{}
	_ [unsafe.Sizeof(Int128{}) - unsafe.Sizeof(I128{})]struct{}
	_ [unsafe.Sizeof(Int128{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(Int128{})]struct{}
	_ [unsafe.Alignof(I128{}) - unsafe.Alignof(Int128{})]struct{}
	_ [unsafe.Alignof(Int128{}) - unsafe.Alignof(I128{})]struct{}

	_ [unsafe.Sizeof(Int{}) - unsafe.Sizeof(int(0))]struct{}
	_ [unsafe.Sizeof(int(0)) - unsafe.Sizeof(Int{})]struct{}
	_ [unsafe.Alignof(Int{}) - unsafe.Alignof(int(0))]struct{}
	_ [unsafe.Alignof(int(0)) - unsafe.Alignof(Int{})]struct{}

	_ [unsafe.Sizeof(U8{}) - unsafe.Sizeof(uint8(0))]struct{}
	_ [unsafe.Sizeof(uint8(0)) - unsafe.Sizeof(U8{})]struct{}
	_ [unsafe.Alignof(U8{}) - unsafe.Alignof(uint8(0))]struct{}
	_ [unsafe.Alignof(uint8(0)) - unsafe.Alignof(U8{})]struct{}

	_ [unsafe.Sizeof(U16{}) - unsafe.Sizeof(uint16(0))]struct{}
	_ [unsafe.Sizeof(uint16(0)) - unsafe.Sizeof(U16{})]struct{}
	_ [unsafe.Alignof(U16{}) - unsafe.Alignof(uint16(0))]struct{}
	_ [unsafe.Alignof(uint16(0)) - unsafe.Alignof(U16{})]struct{}

	_ [unsafe.Sizeof(U32{}) - unsafe.Sizeof(uint32(0))]struct{}
	_ [unsafe.Sizeof(uint32(0)) - unsafe.Sizeof(U32{})]struct{}
	_ [unsafe.Alignof(U32{}) - unsafe.Alignof(uint32(0))]struct{}
	_ [unsafe.Alignof(uint32(0)) - unsafe.Alignof(U32{})]struct{}

	_ [unsafe.Sizeof(U64{}) - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Sizeof(uint64(0)) - unsafe.Sizeof(U64{})]struct{}
	_ [unsafe.Alignof(U64{}) - unsafe.Alignof(uint64(0))]struct{}
	_ [unsafe.Alignof(uint64(0)) - unsafe.Alignof(U64{})]struct{}

	_ [unsafe.Sizeof(U128{}) - unsafe.Sizeof(Uint128{})]struct{}
	_ [unsafe.Sizeof(Uint128{}) - unsafe.Sizeof(U128{})]struct{}
	_ [unsafe.Sizeof(Uint128{}) - 16]struct{}
	_ [16 - unsafe.Sizeof(Uint128{})]struct{}
	_ [unsafe.Alignof(U128{}) - unsafe.Alignof(Uint128{})]struct{}
	_ [unsafe.Alignof(Uint128{}) - unsafe.Alignof(U128{})]struct{}

	_ [unsafe.Sizeof(Uint{}) - unsafe.Sizeof(uint(0))]struct{}
	_ [unsafe.Sizeof(uint(0)) - unsafe.Sizeof(Uint{})]struct{}
	_ [unsafe.Alignof(Uint{}) - unsafe.Alignof(uint(0))]struct{}
	_ [unsafe.Alignof(uint(0)) - unsafe.Alignof(Uint{})]struct{}
)
