// Package decl loads named non-zero constant declarations.
//
// Declarations live in CUE packages or YAML files. In CUE every field of the
// top-level `nonzero` struct is one declaration:
//
//	package limits
//
//	nonzero: {
//		PageSize: "4096usize"
//		MinusOne: {lit: "-1i8", doc: "all bits set"}
//		One:      {expr: "PageSize - 4095", type: "usize"}
//	}
//
// The YAML form carries the same fields as a list:
//
//	package: limits
//	nonzero:
//	  - name: PageSize
//	    lit: 4096usize
//	  - name: One
//	    expr: PageSize - 4095
//	    type: usize
//
// Loading only reads structure. Validate resolves each declaration's kind
// through the suffix table and reports every problem it finds.
package decl
