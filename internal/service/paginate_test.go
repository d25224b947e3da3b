package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zizouhuweidi/trivia/internal/domain"
)

func TestPaginate(t *testing.T) {
	questions := make([]domain.Question, 19)
	for i := range questions {
		questions[i].ID = i + 1
	}

	tests := []struct {
		name    string
		page    int
		wantLen int
		wantID  int
	}{
		{"first page", 1, 10, 1},
		{"last partial page", 2, 9, 11},
		{"past the end", 3, 0, 0},
		{"far past the end", 999, 0, 0},
		{"huge page", math.MaxInt, 0, 0},
		{"zero", 0, 0, 0},
		{"negative", -1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := Paginate(questions, tt.page)
			assert.NotNil(t, window)
			assert.Len(t, window, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantID, window[0].ID)
			}
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	assert.Empty(t, Paginate(nil, 1))
}
