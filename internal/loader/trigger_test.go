package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldLoad(t *testing.T) {
	tests := []struct {
		name      string
		position  int
		total     int
		threshold int
		want      bool
	}{
		{"empty list loads on mount", 0, 0, 5, true},
		{"far from end", 0, 20, 5, false},
		{"at threshold", 14, 20, 5, true},
		{"just before threshold", 13, 20, 5, false},
		{"last row", 19, 20, 5, true},
		{"zero threshold needs last row", 18, 20, 0, false},
		{"negative threshold treated as zero", 19, 20, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldLoad(tt.position, tt.total, tt.threshold))
		})
	}
}
