package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluationValue_Weight(t *testing.T) {
	tests := []struct {
		value EvaluationValue
		want  int
		valid bool
	}{
		{EvaluationHigh, 3, true},
		{EvaluationMedium, 2, true},
		{EvaluationLow, 1, true},
		{"high", 0, false},
		{"", 0, false},
		{"CRITICAL", 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Weight())
			assert.Equal(t, tt.valid, tt.value.Valid())
		})
	}
}

func TestUseCasePatch_Empty(t *testing.T) {
	assert.True(t, UseCasePatch{}.Empty())

	title := "New title"
	assert.False(t, UseCasePatch{Title: &title}.Empty())
	assert.False(t, UseCasePatch{Priority: &title}.Empty())
}
