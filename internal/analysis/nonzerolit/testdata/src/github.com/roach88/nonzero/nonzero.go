package nonzero

type Int128 struct {
	Lo uint64
	Hi int64
}

type Uint128 struct{ Lo, Hi uint64 }

func U128From64(v uint64) Uint128 { return Uint128{Lo: v} }

func I128From64(v int64) Int128 { return Int128{Lo: uint64(v), Hi: v >> 63} }

type Primitive interface {
	int8 | int16 | int32 | int64 | Int128 | int |
		uint8 | uint16 | uint32 | uint64 | Uint128 | uint
}

type Of[T Primitive] struct{ v T }

type (
	I8   = Of[int8]
	U8   = Of[uint8]
	U16  = Of[uint16]
	U32  = Of[uint32]
	U128 = Of[Uint128]
	Uint = Of[uint]
)

func Lit[T Primitive](v T) Of[T] { return Of[T]{v: v} }

func FromRef[T Primitive](src *T) Of[T] { return Lit(*src) }

var zeroU8 = U8{}
