package b

import "github.com/roach88/nonzero"

func viaRef(v *uint32) nonzero.U32 {
	return nonzero.FromRef(v) // want "nonzero.FromRef panics at run time on zero"
}

var ok = nonzero.Lit(uint(4096))
