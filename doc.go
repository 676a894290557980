// Package nonzero provides non-zero integer wrappers whose construction is
// checked before the program runs.
//
// Each of the twelve supported primitive kinds has a wrapper with the same
// in-memory layout as the primitive:
//
//	I8  I16  I32  I64  I128  Int
//	U8  U16  U32  U64  U128  Uint
//
// Wrappers are built with Lit from a constant expression:
//
//	var pageSize = nonzero.Lit(uint(4096))
//	var minusOne = nonzero.Lit(int8(-1))
//
// Lit is the checked entry point. The nonzerolit vet analyzer (cmd/nonzerovet)
// rejects any call whose argument is not a constant or is zero, and files
// produced by nonzerogen divide by every value in a constant declaration so
// that a zero value fails `go build` itself. If a zero argument reaches Lit at run time
// anyway, Lit panics with "argument was zero".
//
// FromRef is the fallback underneath Lit. It performs the same byte comparison
// on the value behind a pointer and panics if it is zero. It guards against
// programmer error; it is not a way to validate untrusted input.
//
// The zero value of a wrapper type (for example a field that was never
// assigned) has not been through either constructor. The analyzer reports
// composite literals such as nonzero.U8{}.
package nonzero
