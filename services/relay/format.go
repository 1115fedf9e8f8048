package relay

import (
	"fmt"
	"strings"
	"time"

	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/services/stats"
)

const helpText = `Available commands:
- next match
- recent matches
- my stats
- leaderboard
- notices
- link <code>`

func formatMatch(match *fsdb.Match) string {
	title := "Match"
	if match.Title != nil && *match.Title != "" {
		title = *match.Title
	}

	line := fmt.Sprintf("%s on %s", title, match.Date.Format("Mon 2 Jan 15:04"))
	if match.Location != nil && *match.Location != "" {
		line += " at " + *match.Location
	}
	return line
}

func formatResult(match *fsdb.Match) string {
	score := fmt.Sprintf("%d-%d", match.ScoreA, match.ScoreB)
	if match.ScoreC > 0 || match.ScoreD > 0 {
		score = fmt.Sprintf("%d-%d-%d-%d", match.ScoreA, match.ScoreB, match.ScoreC, match.ScoreD)
	}
	return fmt.Sprintf("%s: %s", match.Date.Format("2 Jan"), score)
}

func formatStats(view *stats.StatsView) string {
	return fmt.Sprintf(
		"%s\nMatches: %d (attendance %.1f%%)\nGoals: %d, Assists: %d\nW/D/L: %d/%d/%d (win rate %.1f%%)",
		view.MemberName,
		view.TotalMatches, view.AttendanceRate,
		view.TotalGoals, view.TotalAssists,
		view.TotalWins, view.TotalDraws, view.TotalLosses, view.WinRate,
	)
}

func formatLeaderboard(category string, entries []*stats.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "No statistics yet."
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, fmt.Sprintf("Top %s:", category))
	for _, entry := range entries {
		var value string
		switch category {
		case "assists":
			value = fmt.Sprintf("%d", entry.TotalAssists)
		case "attendance", "attendanceRate":
			value = fmt.Sprintf("%.1f%%", entry.AttendanceRate)
		case "winRate":
			value = fmt.Sprintf("%.1f%%", entry.WinRate)
		default:
			value = fmt.Sprintf("%d", entry.TotalGoals)
		}
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", entry.Rank, entry.MemberName, value))
	}
	return strings.Join(lines, "\n")
}

func formatNotices(notices []*fsdb.Notice) string {
	if len(notices) == 0 {
		return "No notices."
	}

	lines := make([]string, 0, len(notices))
	for _, notice := range notices {
		prefix := ""
		if notice.Important {
			prefix = "[!] "
		}
		lines = append(lines, fmt.Sprintf("%s%s (%s)", prefix, notice.Title, notice.CreatedAt.Format("2 Jan")))
	}
	return strings.Join(lines, "\n")
}

// earliestUpcoming picks the soonest match on or after now. The store returns
// matches newest-first, so this scans rather than trusting order.
func earliestUpcoming(matches []*fsdb.Match, now time.Time) *fsdb.Match {
	var next *fsdb.Match
	for _, match := range matches {
		if match.Date.Before(now) {
			continue
		}
		if next == nil || match.Date.Before(next.Date) {
			next = match
		}
	}
	return next
}
