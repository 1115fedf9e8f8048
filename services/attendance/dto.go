package attendance

import (
	"github.com/sundayfc/club-sync/repos/fsdb"
)

// ListAttendanceQuery carries the supported list filters.
type ListAttendanceQuery struct {
	MatchID  string
	MemberID string
	Status   string
}

// AttendanceItem is one member's status inside a bulk upsert.
type AttendanceItem struct {
	MemberID string `json:"memberId" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// BulkUpsertRequest records attendance for many members of one match at once.
type BulkUpsertRequest struct {
	MatchID string           `json:"matchId" binding:"required"`
	Items   []AttendanceItem `json:"items" binding:"required"`
}

// UpdateAttendanceRequest changes the status of a single attendance record.
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required"`
}

// AttendanceView is an attendance record with the member's info joined in.
type AttendanceView struct {
	*fsdb.Attendance
	MemberName string `json:"memberName"`
}

// MemberSummary is the slice of member info shown on resolved rosters.
type MemberSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
}

// AssignmentView is a team assignment with its rosters resolved to members.
type AssignmentView struct {
	*fsdb.TeamAssignment
	TeamAMembers []MemberSummary `json:"teamAMembers"`
	TeamBMembers []MemberSummary `json:"teamBMembers"`
	TeamCMembers []MemberSummary `json:"teamCMembers,omitempty"`
	TeamDMembers []MemberSummary `json:"teamDMembers,omitempty"`
}

// SaveAssignmentRequest creates or replaces the rosters for a match.
type SaveAssignmentRequest struct {
	MatchID          string   `json:"matchId" binding:"required"`
	TeamA            []string `json:"teamA"`
	TeamB            []string `json:"teamB"`
	TeamC            []string `json:"teamC"`
	TeamD            []string `json:"teamD"`
	SendNotification bool     `json:"sendNotification"`
}

// UpdateAssignmentRequest patches individual rosters of an assignment.
type UpdateAssignmentRequest struct {
	TeamA *[]string `json:"teamA"`
	TeamB *[]string `json:"teamB"`
	TeamC *[]string `json:"teamC"`
	TeamD *[]string `json:"teamD"`
}
