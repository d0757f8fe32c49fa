package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIntUnmarshal(t *testing.T) {
	var v struct {
		ID FlexInt `json:"id"`
	}

	for input, want := range map[string]int{
		`{"id":3}`:     3,
		`{"id":"4"}`:   4,
		`{"id":" 5 "}`: 5,
		`{"id":null}`:  0,
		`{}`:           0,
		`{"id":"0"}`:   0,
		`{"id":"-2"}`:  -2,
	} {
		v.ID = 0
		require.NoError(t, json.Unmarshal([]byte(input), &v), input)
		assert.Equal(t, want, v.ID.Int(), input)
	}

	for _, input := range []string{`{"id":"three"}`, `{"id":1.5}`, `{"id":true}`} {
		assert.Error(t, json.Unmarshal([]byte(input), &v), input)
	}
}

func TestQuestionValidate(t *testing.T) {
	valid := Question{Question: "Q?", Answer: "A", Category: 1, Difficulty: 3}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty question", func(q *Question) { q.Question = "" }},
		{"empty answer", func(q *Question) { q.Answer = "" }},
		{"missing category", func(q *Question) { q.Category = 0 }},
		{"difficulty too low", func(q *Question) { q.Difficulty = 0 }},
		{"difficulty too high", func(q *Question) { q.Difficulty = 6 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := valid
			tt.mutate(&q)
			assert.ErrorIs(t, q.Validate(), ErrInvalidQuestion)
		})
	}
}

func TestCategoryMap(t *testing.T) {
	m := CategoryMap([]*Category{{ID: 1, Type: "Science"}, {ID: 4, Type: "History"}})
	assert.Equal(t, map[int]string{1: "Science", 4: "History"}, m)
	assert.NotNil(t, CategoryMap(nil))
}

func TestQuizSessionLookups(t *testing.T) {
	s := &QuizSession{Asked: []int{1, 2}, Answered: []int{2}}
	assert.True(t, s.HasAsked(1))
	assert.False(t, s.HasAsked(3))
	assert.True(t, s.HasAnswered(2))
	assert.False(t, s.HasAnswered(1))
}
