package matches

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

func TestScoringSideGoal(t *testing.T) {
	for _, team := range []string{"A", "B", "C", "D"} {
		side, err := scoringSide(fsdb.EventGoal, team)
		require.NoError(t, err)
		assert.Equal(t, team, side, "a goal credits its own side")
	}
}

func TestScoringSideOwnGoal(t *testing.T) {
	side, err := scoringSide(fsdb.EventOwnGoal, "A")
	require.NoError(t, err)
	assert.Equal(t, "B", side, "team A own goal credits team B")

	side, err = scoringSide(fsdb.EventOwnGoal, "B")
	require.NoError(t, err)
	assert.Equal(t, "A", side, "team B own goal credits team A")
}

func TestScoringSideOwnGoalRejectedForExtraSides(t *testing.T) {
	_, err := scoringSide(fsdb.EventOwnGoal, "C")
	assert.ErrorIs(t, err, ErrOwnGoalSide)

	_, err = scoringSide(fsdb.EventOwnGoal, "D")
	assert.ErrorIs(t, err, ErrOwnGoalSide)
}

func TestValidateEvent(t *testing.T) {
	assert.NoError(t, validateEvent(fsdb.EventYellowCard, "A"))
	assert.ErrorIs(t, validateEvent("header", "A"), ErrUnknownEventType)
	assert.ErrorIs(t, validateEvent(fsdb.EventGoal, "E"), ErrUnknownSide)
}

func TestHasScoreEffect(t *testing.T) {
	assert.True(t, hasScoreEffect(fsdb.EventGoal))
	assert.True(t, hasScoreEffect(fsdb.EventOwnGoal))
	assert.False(t, hasScoreEffect(fsdb.EventAssist))
	assert.False(t, hasScoreEffect(fsdb.EventYellowCard))
	assert.False(t, hasScoreEffect(fsdb.EventRedCard))
}

func TestApplyDelta(t *testing.T) {
	assert.Equal(t, int64(1), applyDelta(0, 1))
	assert.Equal(t, int64(0), applyDelta(1, -1))
	assert.Equal(t, int64(0), applyDelta(0, -1), "a decrement never drives a score below zero")
}

func TestRecountScores(t *testing.T) {
	events := []*fsdb.MatchEvent{
		{Type: fsdb.EventGoal, Team: "A"},
		{Type: fsdb.EventGoal, Team: "A"},
		{Type: fsdb.EventOwnGoal, Team: "A"}, // credits B
		{Type: fsdb.EventGoal, Team: "B"},
		{Type: fsdb.EventYellowCard, Team: "A"},
		{Type: fsdb.EventAssist, Team: "B"},
	}

	totals := recountScores(events)
	assert.Equal(t, int64(2), totals["scoreA"])
	assert.Equal(t, int64(2), totals["scoreB"])
	assert.Equal(t, int64(0), totals["scoreC"])
	assert.Equal(t, int64(0), totals["scoreD"])
}

func TestRecountScoresEmpty(t *testing.T) {
	totals := recountScores(nil)
	for _, path := range []string{"scoreA", "scoreB", "scoreC", "scoreD"} {
		assert.Equal(t, int64(0), totals[path])
	}
}

// Walks the create/delete sequence from the propagation rules: goal for A,
// own goal for A, then deleting both, applied to a match starting 0-0.
func TestPropagationSequence(t *testing.T) {
	match := &fsdb.Match{}

	apply := func(eventType, team string, delta int64) {
		side, err := scoringSide(eventType, team)
		require.NoError(t, err)
		next := applyDelta(match.Score(side), delta)
		switch side {
		case "A":
			match.ScoreA = next
		case "B":
			match.ScoreB = next
		}
	}

	apply(fsdb.EventGoal, "A", 1)
	assert.Equal(t, int64(1), match.ScoreA)
	assert.Equal(t, int64(0), match.ScoreB)

	apply(fsdb.EventOwnGoal, "A", 1)
	assert.Equal(t, int64(1), match.ScoreB)

	apply(fsdb.EventOwnGoal, "A", -1)
	assert.Equal(t, int64(0), match.ScoreB)

	apply(fsdb.EventGoal, "A", -1)
	apply(fsdb.EventGoal, "A", -1) // repeated delete stays floored at zero
	assert.Equal(t, int64(0), match.ScoreA)
}
