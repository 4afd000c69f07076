package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charterforge/charter-forge/internal/application"
)

func TestUserPillarsFreshUser(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	pillars, err := e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)
	require.Len(t, pillars, 4)
	for i, p := range pillars {
		assert.Equal(t, i+1, p.ID, "pillars must come back in fixture order")
		assert.Equal(t, 0, p.Completion)
		assert.False(t, p.IsComplete)
		assert.Empty(t, p.Responses)
	}
}

func TestUpdateResponseRoundTrip(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "our family values"))
	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 2, 4, "board decides"))

	pillars, err := e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "our family values", pillars[0].Responses[1])
	assert.Equal(t, "board decides", pillars[1].Responses[4])

	// Editing one answer leaves every other answer untouched.
	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 2, "grow steadily"))
	pillars, err = e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "our family values", pillars[0].Responses[1])
	assert.Equal(t, "grow steadily", pillars[0].Responses[2])
	assert.Equal(t, "board decides", pillars[1].Responses[4])
}

func TestUpdateResponseIdempotent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "same text"))
	once, err := e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)

	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "same text"))
	twice, err := e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)

	for i := range once {
		assert.Equal(t, once[i].Responses, twice[i].Responses)
	}
}

func TestPillarCompletionScenario(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Pillar 1 has 3 questions; one answer -> 33%.
	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "an answer"))
	pillars, err := e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 33, pillars[0].Completion)
	assert.False(t, pillars[0].IsComplete)

	// All three -> 100% and complete.
	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 2, "second"))
	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 3, "third"))
	pillars, err = e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 100, pillars[0].Completion)
	assert.True(t, pillars[0].IsComplete)
}

func TestBlankAnswerMarksUnanswered(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "something"))
	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "   "))

	pillars, err := e.pillar.UserPillars(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 0, pillars[0].Completion)
}

func TestUpdateResponseUnknownTarget(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	err := e.pillar.UpdateResponse(ctx, "4", 99, 1, "text")
	assert.ErrorIs(t, err, application.ErrPillarNotFound)

	// Question 4 belongs to pillar 2, not pillar 1.
	err = e.pillar.UpdateResponse(ctx, "4", 1, 4, "text")
	assert.ErrorIs(t, err, application.ErrPillarNotFound)
}

func TestPillarByID(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	p, err := e.pillar.PillarByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Ownership & Succession", p.Title)

	_, err = e.pillar.PillarByID(ctx, 42)
	assert.ErrorIs(t, err, application.ErrPillarNotFound)
}

func TestUpdateResponsePersistenceFailure(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	broken := application.NewPillarService(e.pillar.Fixtures, brokenResponses(), e.pillar.Activity, nil, 0)
	err := broken.UpdateResponse(ctx, "4", 1, 1, "text")
	assert.ErrorIs(t, err, application.ErrPersistence)
}

func TestUpdateResponseStampsActivity(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, ok, err := e.pillar.Activity.Get(ctx, "4")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, e.pillar.UpdateResponse(ctx, "4", 1, 1, "text"))
	a, ok, err := e.pillar.Activity.Get(ctx, "4")
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, a.UpdatedAt.IsZero())
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
}
