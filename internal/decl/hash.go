package decl

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// DomainDecls prefixes the declaration hash. The version suffix allows the
// encoding to change without colliding with old ledger entries.
const DomainDecls = "nonzero/decls/v1"

// Hash returns the content hash of the declarations in f: SHA-256 over
// DomainDecls, a 0x00 separator and the canonical JSON of the file. Source
// positions and the file path do not contribute.
func Hash(f *File) string {
	h := sha256.New()
	h.Write([]byte(DomainDecls))
	h.Write([]byte{0x00})
	h.Write(canonical(f))
	return hex.EncodeToString(h.Sum(nil))
}

// canonical encodes f with object keys in UTF-16 code unit order, NFC
// normalized strings and no HTML escaping.
func canonical(f *File) []byte {
	decls := make([]any, len(f.Decls))
	for i, d := range f.Decls {
		obj := map[string]any{"name": d.Name}
		if d.Lit != "" {
			obj["lit"] = d.Lit
		}
		if d.Expr != "" {
			obj["expr"] = d.Expr
		}
		if d.Type != "" {
			obj["type"] = d.Type
		}
		if d.Doc != "" {
			obj["doc"] = d.Doc
		}
		decls[i] = obj
	}

	var buf bytes.Buffer
	writeCanonical(&buf, map[string]any{
		"package": f.Package,
		"decls":   decls,
	})
	return buf.Bytes()
}

func writeCanonical(buf *bytes.Buffer, v any) {
	switch val := v.(type) {
	case string:
		writeString(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonical(buf, elem)
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return lessUTF16(keys[i], keys[j]) })

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, k)
			buf.WriteByte(':')
			writeCanonical(buf, val[k])
		}
		buf.WriteByte('}')
	}
}

func writeString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(norm.NFC.String(s))
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
}

func lessUTF16(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}
