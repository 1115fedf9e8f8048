package relay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/services/stats"
)

func TestFormatMatch(t *testing.T) {
	match := &fsdb.Match{
		Title:    pointer.String("League round 4"),
		Date:     time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC),
		Location: pointer.String("Riverside pitch"),
	}

	assert.Equal(t, "League round 4 on Sun 9 Mar 15:00 at Riverside pitch", formatMatch(match))
}

func TestFormatMatchWithoutOptionalFields(t *testing.T) {
	match := &fsdb.Match{Date: time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)}

	assert.Equal(t, "Match on Sun 9 Mar 15:00", formatMatch(match))
}

func TestFormatResultTwoSides(t *testing.T) {
	match := &fsdb.Match{
		Date:   time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC),
		ScoreA: 3,
		ScoreB: 1,
	}

	assert.Equal(t, "9 Mar: 3-1", formatResult(match))
}

func TestFormatResultFourSides(t *testing.T) {
	match := &fsdb.Match{
		Date:   time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC),
		ScoreA: 2,
		ScoreB: 1,
		ScoreC: 4,
	}

	assert.Equal(t, "9 Mar: 2-1-4-0", formatResult(match))
}

func TestFormatLeaderboard(t *testing.T) {
	entries := []*stats.LeaderboardEntry{
		{Rank: 1, StatsView: stats.StatsView{MemberName: "Kim", Statistics: fsdb.Statistics{TotalGoals: 12}}},
		{Rank: 2, StatsView: stats.StatsView{MemberName: "Lee", Statistics: fsdb.Statistics{TotalGoals: 9}}},
	}

	assert.Equal(t, "Top goals:\n1. Kim (12)\n2. Lee (9)", formatLeaderboard("goals", entries))
}

// Rate categories print the matching rate field, not the goal count.
func TestFormatLeaderboardRateCategories(t *testing.T) {
	entries := []*stats.LeaderboardEntry{
		{Rank: 1, StatsView: stats.StatsView{
			MemberName: "Kim",
			Statistics: fsdb.Statistics{TotalGoals: 12, WinRate: 66.7, AttendanceRate: 91.5},
		}},
	}

	assert.Equal(t, "Top winRate:\n1. Kim (66.7%)", formatLeaderboard("winRate", entries))
	assert.Equal(t, "Top attendance:\n1. Kim (91.5%)", formatLeaderboard("attendance", entries))
}

func TestFormatLeaderboardAssists(t *testing.T) {
	entries := []*stats.LeaderboardEntry{
		{Rank: 1, StatsView: stats.StatsView{
			MemberName: "Lee",
			Statistics: fsdb.Statistics{TotalGoals: 12, TotalAssists: 7},
		}},
	}

	assert.Equal(t, "Top assists:\n1. Lee (7)", formatLeaderboard("assists", entries))
}

func TestFormatLeaderboardEmpty(t *testing.T) {
	assert.Equal(t, "No statistics yet.", formatLeaderboard("goals", nil))
}

func TestEarliestUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	past := &fsdb.Match{ID: "past", Date: now.AddDate(0, 0, -7)}
	soon := &fsdb.Match{ID: "soon", Date: now.AddDate(0, 0, 2)}
	later := &fsdb.Match{ID: "later", Date: now.AddDate(0, 0, 9)}

	// Matches arrive newest-first.
	next := earliestUpcoming([]*fsdb.Match{later, soon, past}, now)

	assert.NotNil(t, next)
	assert.Equal(t, "soon", next.ID)
}

func TestEarliestUpcomingNone(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	past := &fsdb.Match{Date: now.AddDate(0, 0, -1)}

	assert.Nil(t, earliestUpcoming([]*fsdb.Match{past}, now))
	assert.Nil(t, earliestUpcoming(nil, now))
}
