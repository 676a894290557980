package bitpattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want bool
	}{
		{"both empty", nil, []byte{}, true},
		{"same bytes", []byte{1, 2, 3}, []byte{1, 2, 3}, true},
		{"differs in lowest byte", []byte{0, 2, 3}, []byte{1, 2, 3}, false},
		{"differs in highest byte", []byte{1, 2, 4}, []byte{1, 2, 3}, false},
		{"length mismatch", []byte{0, 0}, []byte{0, 0, 0}, false},
		{"prefix is not equal", []byte{1}, []byte{1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
			assert.Equal(t, tt.want, Equal(tt.b, tt.a), "Equal must be symmetric")
		})
	}
}

func TestEqual_Idempotent(t *testing.T) {
	a := []byte{0, 0, 0, 1}
	b := []byte{0, 0, 0, 0}
	first := Equal(a, b)
	second := Equal(a, b)
	assert.Equal(t, first, second)
	assert.Equal(t, []byte{0, 0, 0, 1}, a, "comparison must not mutate its input")
	assert.Equal(t, []byte{0, 0, 0, 0}, b, "comparison must not mutate its input")
}
