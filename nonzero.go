package nonzero

import (
	"fmt"
	"unsafe"

	"github.com/roach88/nonzero/internal/bitpattern"
)

// Of is the non-zero wrapper of the primitive T. Its only field is a T, so an
// Of[T] occupies exactly the bytes of a T.
type Of[T Primitive] struct {
	v T
}

// Wrapper aliases, one per primitive kind.
type (
	I8   = Of[int8]
	I16  = Of[int16]
	I32  = Of[int32]
	I64  = Of[int64]
	I128 = Of[Int128]
	Int  = Of[int]
	U8   = Of[uint8]
	U16  = Of[uint16]
	U32  = Of[uint32]
	U64  = Of[uint64]
	U128 = Of[Uint128]
	Uint = Of[uint]
)

// Panic messages of the two entry points.
const (
	msgArgumentZero = "argument was zero"
	msgSrcZero      = "`src` may not be zero"
	msgSrcNil       = "`src` may not be nil"
)

// Lit returns v as a non-zero wrapper. The argument is expected to be a
// constant expression; nonzerolit reports calls where it is not, or where it
// evaluates to zero, so the zero case is caught before the program is built.
// Lit panics with "argument was zero" if a zero value gets through anyway.
func Lit[T Primitive](v T) Of[T] {
	w, ok := construct(&v)
	if !ok {
		panic(msgArgumentZero)
	}
	return w
}

// FromRef reinterprets the value behind src as its non-zero wrapper after
// comparing its bytes against the zero pattern of T. It panics if the value
// is zero.
//
// FromRef is the mechanism underneath Lit. Call it only where the value is
// known to be non-zero; it is not an input-validation API.
func FromRef[T Primitive](src *T) Of[T] {
	if src == nil {
		panic(msgSrcNil)
	}
	w, ok := construct(src)
	if !ok {
		panic(msgSrcZero)
	}
	return w
}

// construct is the single place a wrapper is produced from a primitive. The
// unsafe conversion is sound because Of[T] has the layout of T and the bytes
// were just shown to differ from T's zero pattern.
func construct[T Primitive](src *T) (Of[T], bool) {
	if bitpattern.Equal(bytesOf(src), bytesOf(zeroRef[T]())) {
		return Of[T]{}, false
	}
	return *(*Of[T])(unsafe.Pointer(src)), true
}

// bytesOf views the memory of *p as a byte slice without copying.
func bytesOf[T Primitive](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// Get returns the primitive value.
func (o Of[T]) Get() T {
	return o.v
}

// Kind returns the primitive kind of the wrapper.
func (o Of[T]) Kind() Kind {
	return KindOf[T]()
}

// Bytes returns a copy of the wrapper's in-memory representation.
func (o Of[T]) Bytes() []byte {
	return append([]byte(nil), bytesOf(&o.v)...)
}

func (o Of[T]) String() string {
	return fmt.Sprint(o.v)
}

// MarshalText encodes the wrapper as its decimal value.
func (o Of[T]) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
