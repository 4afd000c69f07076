package completion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/charterforge/charter-forge/internal/domain/completion"
	"github.com/charterforge/charter-forge/internal/domain/entity"
)

func threeQuestionPillar() entity.Pillar {
	return entity.Pillar{
		ID:    1,
		Title: "Values & Vision",
		Questions: []entity.Question{
			{ID: 1, Text: "q1"},
			{ID: 2, Text: "q2"},
			{ID: 3, Text: "q3"},
		},
	}
}

func TestPercent(t *testing.T) {
	p := threeQuestionPillar()

	assert.Equal(t, 0, completion.Percent(p, map[int]string{}))
	assert.Equal(t, 33, completion.Percent(p, map[int]string{1: "an answer"}))
	assert.Equal(t, 67, completion.Percent(p, map[int]string{1: "a", 2: "b"}))
	assert.Equal(t, 100, completion.Percent(p, map[int]string{1: "a", 2: "b", 3: "c"}))
}

func TestPercentIgnoresWhitespaceAnswers(t *testing.T) {
	p := threeQuestionPillar()
	assert.Equal(t, 0, completion.Percent(p, map[int]string{1: "   ", 2: "\n\t"}))
}

func TestPercentIgnoresForeignQuestionIDs(t *testing.T) {
	p := threeQuestionPillar()
	// Answers for questions outside the pillar must not inflate progress.
	assert.Equal(t, 33, completion.Percent(p, map[int]string{1: "a", 99: "b", 100: "c"}))
}

func TestPercentBounds(t *testing.T) {
	p := threeQuestionPillar()
	for _, m := range []map[int]string{
		nil,
		{1: "a"},
		{1: "a", 2: "b", 3: "c"},
		{1: "a", 2: "b", 3: "c", 4: "d"},
	} {
		got := completion.Percent(p, m)
		assert.GreaterOrEqual(t, got, 0)
		assert.LessOrEqual(t, got, 100)
	}
}

func TestPercentEmptyPillar(t *testing.T) {
	assert.Equal(t, 0, completion.Percent(entity.Pillar{ID: 9}, map[int]string{1: "a"}))
}

func TestIsComplete(t *testing.T) {
	p := threeQuestionPillar()

	assert.False(t, completion.IsComplete(p, map[int]string{}))
	assert.False(t, completion.IsComplete(p, map[int]string{1: "a", 2: "b"}))
	assert.False(t, completion.IsComplete(p, map[int]string{1: "a", 2: "b", 3: "  "}))
	assert.True(t, completion.IsComplete(p, map[int]string{1: "a", 2: "b", 3: "c"}))
	assert.False(t, completion.IsComplete(entity.Pillar{}, map[int]string{}))
}

func TestOverall(t *testing.T) {
	assert.Equal(t, 0, completion.Overall(nil))
	assert.Equal(t, 0, completion.Overall([]int{}))
	assert.Equal(t, 50, completion.Overall([]int{50, 50}))
	assert.Equal(t, 8, completion.Overall([]int{33, 0, 0, 0}))   // round(8.25)
	assert.Equal(t, 34, completion.Overall([]int{33, 34}))       // round(33.5)
	assert.Equal(t, 100, completion.Overall([]int{100, 100, 100, 100}))
}

func TestAnswered(t *testing.T) {
	assert.Equal(t, 0, completion.Answered(nil))
	assert.Equal(t, 2, completion.Answered(map[int]string{1: "a", 2: "b", 3: " "}))
}
