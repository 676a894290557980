// Command nonzerovet reports nonzero.Lit calls whose argument is zero or not
// a compile-time constant.
//
// It can be run directly or through go vet:
//
//	go vet -vettool=$(which nonzerovet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/roach88/nonzero/internal/analysis/nonzerolit"
)

func main() {
	singlechecker.Main(nonzerolit.Analyzer)
}
