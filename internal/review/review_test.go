package review

import (
	"math"
	"testing"

	"anirex/internal/apperr"

	"github.com/stretchr/testify/assert"
)

func ratings(rs ...float64) []Entry {
	out := make([]Entry, len(rs))
	for i, r := range rs {
		out[i] = Entry{Rating: r}
	}
	return out
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    float64
	}{
		{"empty", nil, 0},
		{"empty slice", []Entry{}, 0},
		{"single", ratings(7), 7},
		{"two", ratings(8, 10), 9.0},
		{"rounds down", ratings(7.5, 8.5, 9), 8.3},
		{"rounds exact tie away from zero", ratings(7, 7.5), 7.3},
		{"exact quarter tie", ratings(8, 8.5), 8.3},
		{"near tie below", ratings(8.4, 8.5), 8.4},
		{"near tie sum below", ratings(2.3, 2.4), 2.3},
		{"rounds up", ratings(1, 2, 2), 1.7},
		{"boundaries", ratings(1, 10), 5.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.entries))
		})
	}
}

func TestAggregate_RecomputesOverWholeSequence(t *testing.T) {
	entries := ratings(6, 8)
	assert.Equal(t, 7.0, Aggregate(entries))

	entries = append([]Entry{{Rating: 10}}, entries...)
	assert.Equal(t, 8.0, Aggregate(entries))
}

func TestAggregate_DoesNotClamp(t *testing.T) {
	assert.Equal(t, 12.0, Aggregate(ratings(12)))
}

func TestValidateRating(t *testing.T) {
	for _, r := range []float64{1, 10, 5.5, 9.9} {
		assert.NoError(t, ValidateRating(r), "rating %v", r)
	}
	for _, r := range []float64{0, 11, 0.9, 10.1, -3, math.NaN()} {
		assert.ErrorIs(t, ValidateRating(r), apperr.ErrValidation, "rating %v", r)
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Average: 8.3, Count: 3}, Summarize(ratings(7.5, 8.5, 9)))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Anonymous", DisplayName(""))
	assert.Equal(t, "Rin", DisplayName("Rin"))
}
