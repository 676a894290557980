package a

import "github.com/roach88/nonzero"

const pageSize = 4096

var (
	_ = nonzero.Lit(uint(1))
	_ = nonzero.Lit(int8(-1))
	_ = nonzero.Lit(uint(20 - 19))
	_ = nonzero.Lit(uint(pageSize))
	_ = nonzero.Lit((uint16(0x1f90)))
	_ = nonzero.Lit(uint8(0))      // want "argument was zero"
	_ = nonzero.Lit(uint(20 - 20)) // want "argument was zero"
	_ = nonzero.Lit(int8(1 - 1))   // want "argument was zero"
)

var (
	_ = nonzero.Lit(nonzero.Uint128{Hi: 1})
	_ = nonzero.Lit(nonzero.Uint128{Lo: pageSize, Hi: 0})
	_ = nonzero.Lit(nonzero.U128From64(7))
	_ = nonzero.Lit(nonzero.I128From64(-1))
	_ = nonzero.Lit(nonzero.Uint128{})            // want "argument was zero"
	_ = nonzero.Lit(nonzero.Int128{Lo: 0, Hi: 0}) // want "argument was zero"
	_ = nonzero.Lit(nonzero.U128From64(0))        // want "argument was zero"
)

func fromParam(n uint16) nonzero.U16 {
	return nonzero.Lit(n) // want "argument must be a constant expression"
}

func wideFromParam(lo uint64) nonzero.U128 {
	return nonzero.Lit(nonzero.Uint128{Lo: lo}) // want "argument must be a constant expression"
}

func wideFromCall(lo uint64) nonzero.U128 {
	return nonzero.Lit(nonzero.U128From64(lo)) // want "argument must be a constant expression"
}

var zeroWrapper = nonzero.U8{} // want `zero value of .*Of\[uint8\] bypasses construction`

var declaredOnly nonzero.U8 // want `zero value of .*Of\[uint8\] bypasses construction`

var initialized nonzero.U8 = nonzero.Lit(uint8(3))

var first, second nonzero.Uint // want `zero value of .*Of\[uint\] bypasses` `zero value of .*Of\[uint\] bypasses`

func locals() {
	var local nonzero.U16 // want `zero value of .*Of\[uint16\] bypasses construction`
	p := new(nonzero.U32) // want `zero value of .*Of\[uint32\] bypasses construction`
	q := new(uint32)
	var assigned = nonzero.Lit(uint16(9))
	_, _, _, _ = local, p, q, assigned
}

func viaRef(v *uint32) nonzero.U32 {
	return nonzero.FromRef(v)
}
