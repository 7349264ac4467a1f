package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAt(t *testing.T) {
	s := []int{10, 20}

	v, ok := At(s, 1)
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	_, ok = At(s, 2)
	assert.False(t, ok)

	_, ok = At(s, -1)
	assert.False(t, ok)
}

func TestResize(t *testing.T) {
	tests := []struct {
		name    string
		in      []int
		n       int
		want    []int
		wantCmp int
	}{
		{"pad", []int{1}, 3, []int{1, 0, 0}, -1},
		{"truncate", []int{1, 2, 3}, 2, []int{1, 2}, 1},
		{"equal", []int{1, 2}, 2, []int{1, 2}, 0},
		{"empty to zero", nil, 0, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cmp := Resize(tt.in, tt.n)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCmp, cmp)
			assert.Len(t, got, tt.n)
		})
	}
}
