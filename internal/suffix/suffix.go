// Package suffix maps suffixed integer literals such as "1usize" or "-1i8"
// to the non-zero wrapper kind they select.
//
// The package only resolves the kind. Whether the value is zero or fits the
// kind is decided later by constant evaluation.
package suffix

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/roach88/nonzero"
)

// Error codes reported by Parse.
const (
	CodeMissingSuffix = "E201"
	CodeUnknownSuffix = "E202"
	CodeInvalidDigit  = "E203"
	CodeEmpty         = "E204"
)

// Diagnostic messages.
const (
	MsgMissingSuffix = "must have a suffix like the `usize` in `1usize`"
	MsgUnknownSuffix = "unknown integer literal suffix"
	MsgInvalidDigit  = "invalid digit in integer literal"
	MsgEmpty         = "expected an integer literal"
)

// Error describes a literal whose suffix could not be resolved.
type Error struct {
	Code    string
	Literal string
	Suffix  string
	Message string
}

func (e *Error) Error() string {
	if e.Suffix != "" {
		return fmt.Sprintf("%s: %q (suffix %q): %s", e.Code, e.Literal, e.Suffix, e.Message)
	}
	return fmt.Sprintf("%s: %q: %s", e.Code, e.Literal, e.Message)
}

// Literal is a parsed integer literal.
type Literal struct {
	Source   string
	Negative bool
	Base     int
	Digits   string // without prefix or underscores
	Kind     nonzero.Kind
}

var suffixes = Table()

// Table returns the suffix vocabulary, one entry per kind.
func Table() map[string]nonzero.Kind {
	m := make(map[string]nonzero.Kind, 12)
	for _, k := range nonzero.Kinds() {
		m[k.Suffix()] = k
	}
	return m
}

// Parse resolves lit. Accepted forms follow integer literal syntax: an
// optional leading '-', an optional 0x/0o/0b prefix, digits with optional '_'
// separators, and a suffix naming one of the twelve kinds.
func Parse(lit string) (Literal, error) {
	src := strings.TrimSpace(lit)
	if src == "" {
		return Literal{}, &Error{Code: CodeEmpty, Literal: lit, Message: MsgEmpty}
	}

	out := Literal{Source: src, Base: 10}
	body := src
	if strings.HasPrefix(body, "-") {
		out.Negative = true
		body = strings.TrimSpace(body[1:])
	}

	if len(body) >= 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			out.Base = 16
		case 'o', 'O':
			out.Base = 8
		case 'b', 'B':
			out.Base = 2
		}
		if out.Base != 10 {
			body = body[2:]
		}
	}

	// The suffix starts at the first character that cannot be part of a
	// number in this base. Hex digits never include 'i' or 'u'.
	end := 0
	for end < len(body) && (body[end] == '_' || isDigitOf(body[end], 16)) {
		if out.Base != 16 && !isDigitOf(body[end], 10) && body[end] != '_' {
			break
		}
		end++
	}
	digits, sfx := body[:end], body[end:]

	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return Literal{}, &Error{Code: CodeEmpty, Literal: src, Message: MsgEmpty}
	}
	for i := 0; i < len(digits); i++ {
		if !isDigitOf(digits[i], out.Base) {
			return Literal{}, &Error{Code: CodeInvalidDigit, Literal: src, Message: MsgInvalidDigit}
		}
	}
	out.Digits = digits

	if sfx == "" {
		return Literal{}, &Error{Code: CodeMissingSuffix, Literal: src, Message: MsgMissingSuffix}
	}
	kind, ok := suffixes[sfx]
	if !ok {
		return Literal{}, &Error{Code: CodeUnknownSuffix, Literal: src, Suffix: sfx, Message: MsgUnknownSuffix}
	}
	out.Kind = kind

	return out, nil
}

// Big returns the literal's value.
func (l Literal) Big() *big.Int {
	v, ok := new(big.Int).SetString(l.Digits, l.Base)
	if !ok {
		// Parse only produces digits valid for Base.
		panic("suffix: malformed literal " + l.Source)
	}
	if l.Negative {
		v.Neg(v)
	}
	return v
}

// GoExpr renders the literal as a Go untyped integer constant.
func (l Literal) GoExpr() string {
	var prefix string
	switch l.Base {
	case 16:
		prefix = "0x"
	case 8:
		prefix = "0o"
	case 2:
		prefix = "0b"
	}
	if l.Negative {
		return "-" + prefix + l.Digits
	}
	return prefix + l.Digits
}

func isDigitOf(c byte, base int) bool {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return false
	}
	return d < base
}
