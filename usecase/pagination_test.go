package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		limit    int
		wantTake int
		wantSkip int
	}{
		{name: "first page default limit", page: 1, limit: 10, wantTake: 10, wantSkip: 0},
		{name: "second page", page: 2, limit: 5, wantTake: 5, wantSkip: 5},
		{name: "zero page falls back to first", page: 0, limit: 10, wantTake: 10, wantSkip: 0},
		{name: "negative page falls back to first", page: -3, limit: 10, wantTake: 10, wantSkip: 0},
		{name: "zero limit falls back to default", page: 1, limit: 0, wantTake: 10, wantSkip: 0},
		{name: "negative limit falls back to default", page: 2, limit: -1, wantTake: 10, wantSkip: 10},
		{name: "limit capped at maximum", page: 1, limit: 500, wantTake: 100, wantSkip: 0},
		{name: "skip uses capped limit", page: 3, limit: 500, wantTake: 100, wantSkip: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			take, skip := normalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantTake, take)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}
