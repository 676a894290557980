package nonzero

// Canonical zero of every primitive. Nothing in the package writes to these;
// zeroRef hands out their addresses for byte comparison only.
var (
	zeroI8    int8
	zeroI16   int16
	zeroI32   int32
	zeroI64   int64
	zeroI128  Int128
	zeroIsize int
	zeroU8    uint8
	zeroU16   uint16
	zeroU32   uint32
	zeroU64   uint64
	zeroU128  Uint128
	zeroUsize uint
)

// zeroRef returns the address of the canonical zero value of T. The pointee
// is valid for the life of the program and all of its bytes are zero.
func zeroRef[T Primitive]() *T {
	var p any
	switch any((*T)(nil)).(type) {
	case *int8:
		p = &zeroI8
	case *int16:
		p = &zeroI16
	case *int32:
		p = &zeroI32
	case *int64:
		p = &zeroI64
	case *Int128:
		p = &zeroI128
	case *int:
		p = &zeroIsize
	case *uint8:
		p = &zeroU8
	case *uint16:
		p = &zeroU16
	case *uint32:
		p = &zeroU32
	case *uint64:
		p = &zeroU64
	case *Uint128:
		p = &zeroU128
	case *uint:
		p = &zeroUsize
	default:
		panic("nonzero: unreachable primitive type")
	}
	return p.(*T)
}

// ZeroPattern returns a copy of the all-zero byte pattern of kind k.
func ZeroPattern(k Kind) []byte {
	var b []byte
	switch k {
	case KindI8:
		b = bytesOf(zeroRef[int8]())
	case KindI16:
		b = bytesOf(zeroRef[int16]())
	case KindI32:
		b = bytesOf(zeroRef[int32]())
	case KindI64:
		b = bytesOf(zeroRef[int64]())
	case KindI128:
		b = bytesOf(zeroRef[Int128]())
	case KindIsize:
		b = bytesOf(zeroRef[int]())
	case KindU8:
		b = bytesOf(zeroRef[uint8]())
	case KindU16:
		b = bytesOf(zeroRef[uint16]())
	case KindU32:
		b = bytesOf(zeroRef[uint32]())
	case KindU64:
		b = bytesOf(zeroRef[uint64]())
	case KindU128:
		b = bytesOf(zeroRef[Uint128]())
	case KindUsize:
		b = bytesOf(zeroRef[uint]())
	default:
		panic("nonzero: invalid kind " + k.String())
	}
	return append([]byte(nil), b...)
}
