// Package nonzerolit defines an analyzer that moves the zero check of
// nonzero.Lit to build time.
//
// # Analyzer nonzerolit
//
// nonzerolit: check that nonzero.Lit is only called with non-zero constants
//
// Every call to nonzero.Lit must have an argument whose value is known at
// compile time: a constant expression, or an Int128/Uint128 composite literal
// (or U128From64/I128From64 call) built from constants. A zero argument is
// reported as "argument was zero"; anything else is reported as "argument must
// be a constant expression".
//
// The analyzer also reports the ways of producing a wrapper's zero value
// without construction: composite literals such as nonzero.U8{}, variables
// declared with a wrapper type and no initializer, and new(nonzero.U8). Zero
// wrappers reached through an enclosing value (an omitted struct field, make
// of a slice, a named result) are not reported.
//
// With -fromref, direct calls to nonzero.FromRef outside the nonzero package
// are reported as well.
package nonzerolit

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// PkgPath is the import path of the wrapper package.
const PkgPath = "github.com/roach88/nonzero"

// Diagnostic messages.
const (
	MsgZero        = "argument was zero"
	MsgNotConstant = "argument must be a constant expression"
)

var Analyzer = &analysis.Analyzer{
	Name:     "nonzerolit",
	Doc:      "check that nonzero.Lit is only called with non-zero constants",
	URL:      "https://pkg.go.dev/github.com/roach88/nonzero/internal/analysis/nonzerolit",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var reportFromRef bool

func init() {
	Analyzer.Flags.BoolVar(&reportFromRef, "fromref", false,
		"also report direct calls to nonzero.FromRef outside the nonzero package")
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	inWrapperPkg := pass.Pkg.Path() == PkgPath

	reportZeroValue := func(pos token.Pos, t types.Type) {
		if inWrapperPkg {
			return
		}
		if name, ok := wrapperType(t); ok {
			pass.Reportf(pos, "zero value of %s bypasses construction; use nonzero.Lit", name)
		}
	}

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
		(*ast.CompositeLit)(nil),
		(*ast.ValueSpec)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		switch n := n.(type) {
		case *ast.CallExpr:
			callee := typeutil.Callee(pass.TypesInfo, n)
			if b, ok := callee.(*types.Builtin); ok {
				if b.Name() == "new" && len(n.Args) == 1 && pass.TypesInfo.Types[n.Args[0]].IsType() {
					reportZeroValue(n.Pos(), pass.TypesInfo.TypeOf(n.Args[0]))
				}
				return
			}
			fn, ok := callee.(*types.Func)
			if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath {
				return
			}
			switch fn.Name() {
			case "Lit":
				if inWrapperPkg || len(n.Args) != 1 {
					return
				}
				switch classify(pass.TypesInfo, n.Args[0]) {
				case argZero:
					pass.Reportf(n.Args[0].Pos(), MsgZero)
				case argNotConstant:
					pass.Reportf(n.Args[0].Pos(), MsgNotConstant)
				}
			case "FromRef":
				if reportFromRef && !inWrapperPkg {
					pass.Reportf(n.Pos(), "nonzero.FromRef panics at run time on zero; use nonzero.Lit with a constant")
				}
			}

		case *ast.CompositeLit:
			reportZeroValue(n.Pos(), pass.TypesInfo.TypeOf(n))

		case *ast.ValueSpec:
			if n.Type == nil || len(n.Values) > 0 {
				return
			}
			for _, name := range n.Names {
				reportZeroValue(name.Pos(), pass.TypesInfo.TypeOf(n.Type))
			}
		}
	})

	return nil, nil
}

type argClass int

const (
	argNonZero argClass = iota
	argZero
	argNotConstant
)

// classify decides whether e is a compile-time constant and, if so, whether
// it is zero.
func classify(info *types.Info, e ast.Expr) argClass {
	if tv, ok := info.Types[e]; ok && tv.Value != nil {
		if isZeroConst(tv.Value) {
			return argZero
		}
		return argNonZero
	}

	switch x := ast.Unparen(e).(type) {
	case *ast.CompositeLit:
		if !isWide(info.TypeOf(x)) {
			return argNotConstant
		}
		zero := true
		for _, elt := range x.Elts {
			if kv, ok := elt.(*ast.KeyValueExpr); ok {
				elt = kv.Value
			}
			tv, ok := info.Types[elt]
			if !ok || tv.Value == nil {
				return argNotConstant
			}
			if !isZeroConst(tv.Value) {
				zero = false
			}
		}
		if zero {
			return argZero
		}
		return argNonZero

	case *ast.CallExpr:
		fn, ok := typeutil.Callee(info, x).(*types.Func)
		if !ok || fn.Pkg() == nil || fn.Pkg().Path() != PkgPath || len(x.Args) != 1 {
			return argNotConstant
		}
		if fn.Name() != "U128From64" && fn.Name() != "I128From64" {
			return argNotConstant
		}
		return classify(info, x.Args[0])
	}

	return argNotConstant
}

func isZeroConst(v constant.Value) bool {
	v = constant.ToInt(v)
	return v.Kind() == constant.Int && constant.Sign(v) == 0
}

// isWide reports whether t is nonzero.Int128 or nonzero.Uint128.
func isWide(t types.Type) bool {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != PkgPath {
		return false
	}
	return obj.Name() == "Int128" || obj.Name() == "Uint128"
}

// wrapperType reports whether t is an instantiation of nonzero.Of.
func wrapperType(t types.Type) (string, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return "", false
	}
	obj := named.Origin().Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != PkgPath || obj.Name() != "Of" {
		return "", false
	}
	return types.TypeString(named, types.RelativeTo(nil)), true
}
