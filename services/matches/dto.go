package matches

import "github.com/sundayfc/club-sync/repos/fsdb"

// ListMatchesQuery carries the raw query parameters for listing matches.
type ListMatchesQuery struct {
	Status    string
	StartDate string
	EndDate   string
	Month     int
}

// CreateMatchRequest creates either a single match or, when DaysOfWeek plus
// the date range are present, a recurring series.
type CreateMatchRequest struct {
	Title            string `json:"title"`
	Date             string `json:"date"`
	Location         string `json:"location"`
	Notes            string `json:"notes"`
	DaysOfWeek       []int  `json:"daysOfWeek"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	SendNotification bool   `json:"sendNotification"`
}

// UpdateMatchRequest carries a partial match update. Nil fields are left
// untouched.
type UpdateMatchRequest struct {
	Title    *string `json:"title"`
	Date     *string `json:"date"`
	Location *string `json:"location"`
	Notes    *string `json:"notes"`
	Status   *string `json:"status"`
	ScoreA   *int64  `json:"scoreA"`
	ScoreB   *int64  `json:"scoreB"`
	ScoreC   *int64  `json:"scoreC"`
	ScoreD   *int64  `json:"scoreD"`
}

type CreateEventRequest struct {
	MatchID    string  `json:"matchId" binding:"required"`
	MemberID   string  `json:"memberId" binding:"required"`
	AssisterID *string `json:"assisterId"`
	Team       string  `json:"team" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Minute     *int    `json:"minute"`
	Notes      *string `json:"notes"`
}

// EventView is a match event with member names resolved for display.
type EventView struct {
	fsdb.MatchEvent
	MemberName   string  `json:"memberName"`
	AssisterName *string `json:"assisterName"`
}
