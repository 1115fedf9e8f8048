package stats

import (
	"math"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

// outcome of one completed match for one member.
type outcome int

const (
	notPlayed outcome = iota
	win
	loss
	draw
)

var rosterOrder = []string{fsdb.SideA, fsdb.SideB, fsdb.SideC, fsdb.SideD}

// summarizeAttendance folds a member's attendance history. The rate is the
// share of present records over all records, one decimal, 0 for an empty
// history.
func summarizeAttendance(attendances []*fsdb.Attendance) (total, present int, rate float64) {
	total = len(attendances)
	for _, att := range attendances {
		if att.Status == fsdb.AttendancePresent {
			present++
		}
	}
	if total > 0 {
		rate = round1(float64(present) / float64(total) * 100)
	}
	return total, present, rate
}

// countGoals tallies a member's personal goals. Only events of type goal
// count; an own goal never increments the tally, whatever member id it
// carries.
func countGoals(events []*fsdb.MatchEvent, memberID string) int {
	count := 0
	for _, event := range events {
		if event.Type == fsdb.EventGoal && event.MemberID == memberID {
			count++
		}
	}
	return count
}

// countAssists tallies the events crediting the member with an assist.
func countAssists(events []*fsdb.MatchEvent, memberID string) int {
	count := 0
	for _, event := range events {
		if event.AssisterID != nil && *event.AssisterID == memberID {
			count++
		}
	}
	return count
}

// classifyOutcome decides win/loss/draw for a member in one match. The member's
// side is the first roster containing them (A through D); its score is compared
// against the maximum score among the other sides, with absent sides counting
// as 0. Only completed matches qualify.
func classifyOutcome(memberID string, assignment *fsdb.TeamAssignment, match *fsdb.Match) outcome {
	if match == nil || match.Status != fsdb.MatchCompleted {
		return notPlayed
	}

	memberSide := ""
	for _, side := range rosterOrder {
		if containsID(assignment.Roster(side), memberID) {
			memberSide = side
			break
		}
	}
	if memberSide == "" {
		return notPlayed
	}

	memberScore := match.Score(memberSide)
	maxOther := int64(math.MinInt64)
	for _, side := range rosterOrder {
		if side == memberSide {
			continue
		}
		if score := match.Score(side); score > maxOther {
			maxOther = score
		}
	}

	switch {
	case memberScore > maxOther:
		return win
	case memberScore < maxOther:
		return loss
	default:
		return draw
	}
}

// winRate computes the win percentage, one decimal, 0 when no matches qualify.
func winRate(wins, losses, draws int) float64 {
	total := wins + losses + draws
	if total == 0 {
		return 0
	}
	return round1(float64(wins) / float64(total) * 100)
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
