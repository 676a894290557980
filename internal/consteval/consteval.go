// Package consteval evaluates declarations with the Go type checker's
// constant arithmetic and proves each value non-zero before any code is
// generated.
package consteval

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"log/slog"
	"math/big"

	"github.com/roach88/nonzero"
	"github.com/roach88/nonzero/internal/bitpattern"
	"github.com/roach88/nonzero/internal/decl"
	"github.com/roach88/nonzero/internal/suffix"
)

// Error codes reported by Evaluate.
const (
	CodeEval        = "E301"
	CodeNotConstant = "E302"
	CodeNotInteger  = "E303"
	CodeOverflow    = "E304"
	CodeZero        = "E305"
)

// MsgZero is the diagnostic for a declaration that evaluates to zero.
const MsgZero = "argument was zero"

// Error is an evaluation failure for one declaration.
type Error struct {
	Decl    string
	Code    string
	Message string
	Pos     decl.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Decl, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Decl, e.Message)
}

// Value is a declaration whose value has been proven non-zero for its kind.
type Value struct {
	Decl decl.Decl
	// GoExpr is the Go constant expression that was evaluated.
	GoExpr string
	Int    *big.Int
	// Bytes is the two's complement little-endian encoding, Kind.Size() long.
	Bytes []byte
}

// Evaluate computes every declaration of a validated file in order. A
// declaration may refer to the names declared before it. Evaluation keeps
// going after a failure so that all problems are reported; a failed name is
// not defined for later declarations.
func Evaluate(f *decl.File) ([]Value, []error) {
	fset := token.NewFileSet()
	pkg := types.NewPackage("nonzerodecls/"+f.Package, f.Package)

	var (
		values []Value
		errs   []error
	)
	for _, d := range f.Decls {
		v, err := evaluate(fset, pkg, d)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		pkg.Scope().Insert(types.NewConst(token.NoPos, pkg, d.Name,
			types.Typ[types.UntypedInt], constant.Make(v.Int)))
		slog.Debug("declaration evaluated",
			"name", d.Name,
			"kind", d.Kind.String(),
			"value", v.Int.String())
		values = append(values, v)
	}
	return values, errs
}

func evaluate(fset *token.FileSet, pkg *types.Package, d decl.Decl) (Value, error) {
	fail := func(code, msg string) (Value, error) {
		return Value{}, &Error{Decl: d.Name, Code: code, Message: msg, Pos: d.Pos}
	}

	if !d.Kind.Valid() {
		return fail(CodeEval, "declaration has no kind; validate it first")
	}

	expr := d.Expr
	if d.Lit != "" {
		lit, err := suffix.Parse(d.Lit)
		if err != nil {
			return fail(CodeEval, err.Error())
		}
		expr = lit.GoExpr()
	}

	tv, err := types.Eval(fset, pkg, token.NoPos, expr)
	if err != nil {
		return fail(CodeEval, err.Error())
	}
	if tv.Value == nil {
		return fail(CodeNotConstant, "argument must be a constant expression")
	}

	iv := constant.ToInt(tv.Value)
	if iv.Kind() != constant.Int {
		return fail(CodeNotInteger, fmt.Sprintf("constant %s is not an integer", tv.Value.ExactString()))
	}
	n, ok := new(big.Int).SetString(iv.ExactString(), 10)
	if !ok {
		return fail(CodeNotInteger, fmt.Sprintf("constant %s is not an integer", iv.ExactString()))
	}

	if !InRange(n, d.Kind) {
		return fail(CodeOverflow, fmt.Sprintf("constant %s overflows %s", n, d.Kind))
	}

	b := Encode(n, d.Kind)
	if isZeroPattern(b, d.Kind) {
		return fail(CodeZero, MsgZero)
	}

	return Value{Decl: d, GoExpr: expr, Int: n, Bytes: b}, nil
}

// IsZero reports whether n encodes to the zero pattern of kind k. n must be
// in range for k.
func IsZero(n *big.Int, k nonzero.Kind) bool {
	return isZeroPattern(Encode(n, k), k)
}

func isZeroPattern(b []byte, k nonzero.Kind) bool {
	return bitpattern.Equal(b, nonzero.ZeroPattern(k))
}

// InRange reports whether n is representable in kind k.
func InRange(n *big.Int, k nonzero.Kind) bool {
	bits := uint(k.Bits())
	if k.Signed() {
		limit := new(big.Int).Lsh(big.NewInt(1), bits-1)
		lo := new(big.Int).Neg(limit)
		return n.Cmp(lo) >= 0 && n.Cmp(limit) < 0
	}
	limit := new(big.Int).Lsh(big.NewInt(1), bits)
	return n.Sign() >= 0 && n.Cmp(limit) < 0
}

// Encode returns the two's complement little-endian representation of n in
// k.Size() bytes. n must be in range for k.
func Encode(n *big.Int, k nonzero.Kind) []byte {
	size := k.Size()
	u := new(big.Int).Set(n)
	if u.Sign() < 0 {
		u.Add(u, new(big.Int).Lsh(big.NewInt(1), uint(k.Bits())))
	}
	be := u.FillBytes(make([]byte, size))
	le := make([]byte, size)
	for i := range be {
		le[size-1-i] = be[i]
	}
	return le
}
