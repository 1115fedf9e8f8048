package stats

import "github.com/sundayfc/club-sync/repos/fsdb"

// StatsView is a statistics snapshot with member info resolved for display.
type StatsView struct {
	fsdb.Statistics
	MemberName   string `json:"memberName"`
	Position     string `json:"position,omitempty"`
	JerseyNumber int    `json:"jerseyNumber,omitempty"`
}

type LeaderboardEntry struct {
	Rank int `json:"rank"`
	StatsView
}
