package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

func TestSummarizeAttendanceEmpty(t *testing.T) {
	total, present, rate := summarizeAttendance(nil)
	assert.Equal(t, 0, total)
	assert.Equal(t, 0, present)
	assert.Equal(t, float64(0), rate, "no records means a 0 rate, not NaN")
}

func TestSummarizeAttendance(t *testing.T) {
	attendances := []*fsdb.Attendance{
		{Status: fsdb.AttendancePresent},
		{Status: fsdb.AttendancePresent},
		{Status: fsdb.AttendanceAbsent},
		{Status: fsdb.AttendancePending},
	}

	total, present, rate := summarizeAttendance(attendances)
	assert.Equal(t, 4, total)
	assert.Equal(t, 2, present)
	assert.Equal(t, 50.0, rate)
}

func TestSummarizeAttendanceRounding(t *testing.T) {
	attendances := []*fsdb.Attendance{
		{Status: fsdb.AttendancePresent},
		{Status: fsdb.AttendancePresent},
		{Status: fsdb.AttendanceAbsent},
	}

	_, _, rate := summarizeAttendance(attendances)
	assert.Equal(t, 66.7, rate, "rate is rounded to one decimal")
}

// An own goal never counts towards the scorer's personal goal tally, even when
// the event carries their member id.
func TestCountGoalsExcludesOwnGoals(t *testing.T) {
	events := []*fsdb.MatchEvent{
		{MemberID: "m", Type: fsdb.EventGoal},
		{MemberID: "m", Type: fsdb.EventOwnGoal},
		{MemberID: "m", Type: fsdb.EventGoal},
		{MemberID: "m", Type: fsdb.EventYellowCard},
		{MemberID: "n", Type: fsdb.EventGoal},
	}

	before := countGoals([]*fsdb.MatchEvent{
		{MemberID: "m", Type: fsdb.EventGoal},
		{MemberID: "m", Type: fsdb.EventGoal},
	}, "m")

	assert.Equal(t, 2, countGoals(events, "m"))
	assert.Equal(t, before, countGoals(events, "m"), "adding an own goal leaves totalGoals unchanged")
	assert.Equal(t, 1, countGoals(events, "n"))
}

func TestCountGoalsEmpty(t *testing.T) {
	assert.Equal(t, 0, countGoals(nil, "m"))
}

func TestCountAssists(t *testing.T) {
	m := "m"
	events := []*fsdb.MatchEvent{
		{MemberID: "n", Type: fsdb.EventGoal, AssisterID: &m},
		{MemberID: "n", Type: fsdb.EventGoal},
		{MemberID: "m", Type: fsdb.EventGoal},
	}

	assert.Equal(t, 1, countAssists(events, "m"))
	assert.Equal(t, 0, countAssists(events, "n"))
}

func TestClassifyOutcomeWinAndLoss(t *testing.T) {
	assignment := &fsdb.TeamAssignment{
		TeamA: []string{"m"},
		TeamB: []string{"n"},
	}
	match := &fsdb.Match{Status: fsdb.MatchCompleted, ScoreA: 3, ScoreB: 1}

	assert.Equal(t, win, classifyOutcome("m", assignment, match))
	assert.Equal(t, loss, classifyOutcome("n", assignment, match))
}

func TestClassifyOutcomeDraw(t *testing.T) {
	assignment := &fsdb.TeamAssignment{
		TeamA: []string{"m"},
		TeamB: []string{"n"},
	}
	match := &fsdb.Match{Status: fsdb.MatchCompleted, ScoreA: 2, ScoreB: 2}

	assert.Equal(t, draw, classifyOutcome("m", assignment, match))
	assert.Equal(t, draw, classifyOutcome("n", assignment, match))
}

func TestClassifyOutcomeSkipsNonCompleted(t *testing.T) {
	assignment := &fsdb.TeamAssignment{TeamA: []string{"m"}, TeamB: []string{"n"}}

	for _, status := range []string{fsdb.MatchScheduled, fsdb.MatchInProgress, fsdb.MatchCancelled} {
		match := &fsdb.Match{Status: status, ScoreA: 3, ScoreB: 1}
		assert.Equal(t, notPlayed, classifyOutcome("m", assignment, match))
	}
	assert.Equal(t, notPlayed, classifyOutcome("m", assignment, nil))
}

func TestClassifyOutcomeMemberNotOnRoster(t *testing.T) {
	assignment := &fsdb.TeamAssignment{TeamA: []string{"m"}, TeamB: []string{"n"}}
	match := &fsdb.Match{Status: fsdb.MatchCompleted, ScoreA: 3, ScoreB: 1}

	assert.Equal(t, notPlayed, classifyOutcome("someone-else", assignment, match))
}

func TestClassifyOutcomeFourSides(t *testing.T) {
	assignment := &fsdb.TeamAssignment{
		TeamA: []string{"a"},
		TeamB: []string{"b"},
		TeamC: []string{"c"},
		TeamD: []string{"d"},
	}
	match := &fsdb.Match{Status: fsdb.MatchCompleted, ScoreA: 2, ScoreB: 2, ScoreC: 3, ScoreD: 0}

	// C beat everyone; A and B tie the best of the rest; D lost to all.
	assert.Equal(t, win, classifyOutcome("c", assignment, match))
	assert.Equal(t, loss, classifyOutcome("a", assignment, match))
	assert.Equal(t, loss, classifyOutcome("b", assignment, match))
	assert.Equal(t, loss, classifyOutcome("d", assignment, match))
}

func TestClassifyOutcomeTwoSidedScoresAgainstAbsentSides(t *testing.T) {
	// Sides C/D are unused and read as 0: a side that scored still wins, a
	// 0-0 two-team match is a draw.
	assignment := &fsdb.TeamAssignment{TeamA: []string{"m"}, TeamB: []string{"n"}}

	match := &fsdb.Match{Status: fsdb.MatchCompleted, ScoreA: 1, ScoreB: 0}
	assert.Equal(t, win, classifyOutcome("m", assignment, match))

	goalless := &fsdb.Match{Status: fsdb.MatchCompleted}
	assert.Equal(t, draw, classifyOutcome("m", assignment, goalless))
}

func TestWinRate(t *testing.T) {
	assert.Equal(t, float64(0), winRate(0, 0, 0), "no qualifying matches means 0, not NaN")
	assert.Equal(t, 100.0, winRate(3, 0, 0))
	assert.Equal(t, 33.3, winRate(1, 1, 1))
	assert.Equal(t, 50.0, winRate(1, 1, 0))
}

// Recomputing from the same inputs must produce identical aggregates.
func TestAggregationIdempotence(t *testing.T) {
	attendances := []*fsdb.Attendance{
		{Status: fsdb.AttendancePresent},
		{Status: fsdb.AttendanceAbsent},
		{Status: fsdb.AttendancePresent},
	}
	assignment := &fsdb.TeamAssignment{TeamA: []string{"m"}, TeamB: []string{"n"}}
	match := &fsdb.Match{Status: fsdb.MatchCompleted, ScoreA: 2, ScoreB: 1}

	type snapshot struct {
		total, present int
		rate           float64
		outcome        outcome
		winRate        float64
	}

	run := func() snapshot {
		total, present, rate := summarizeAttendance(attendances)
		result := classifyOutcome("m", assignment, match)
		return snapshot{total, present, rate, result, winRate(1, 0, 0)}
	}

	assert.Equal(t, run(), run())
}
