package fsdb

import "time"

// Member positions.
const (
	PositionForward    = "FW"
	PositionMidfielder = "MF"
	PositionDefender   = "DF"
	PositionGoalkeeper = "GK"
)

// Match lifecycle statuses. Cancelled is terminal and reachable from any
// non-completed state.
const (
	MatchScheduled  = "scheduled"
	MatchInProgress = "in_progress"
	MatchCompleted  = "completed"
	MatchCancelled  = "cancelled"
)

// Attendance statuses.
const (
	AttendancePending = "pending"
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Match event types. Only goals and own goals mutate the parent match's score.
const (
	EventGoal       = "goal"
	EventAssist     = "assist"
	EventYellowCard = "yellowCard"
	EventRedCard    = "redCard"
	EventOwnGoal    = "ownGoal"
)

// Team sides within a match. C and D are only used for multi-squad match days.
const (
	SideA = "A"
	SideB = "B"
	SideC = "C"
	SideD = "D"
)

type Member struct {
	ID           string    `firestore:"-"`
	Name         string    `firestore:"name"`
	Phone        *string   `firestore:"phone"`
	Email        *string   `firestore:"email"`
	TeamID       *string   `firestore:"teamId"`
	Position     string    `firestore:"position"`
	JerseyNumber int       `firestore:"jerseyNumber"`
	PhotoURL     *string   `firestore:"photoURL"`
	IsActive     bool      `firestore:"isActive"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

type Team struct {
	ID          string    `firestore:"-"`
	Name        string    `firestore:"name"`
	Color       string    `firestore:"color"`
	Description *string   `firestore:"description"`
	CaptainID   *string   `firestore:"captainId"`
	IsActive    bool      `firestore:"isActive"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

type Match struct {
	ID          string    `firestore:"-"`
	Title       *string   `firestore:"title"`
	Date        time.Time `firestore:"date"`
	MatchNumber int       `firestore:"matchNumber"`
	Location    *string   `firestore:"location"`
	Status      string    `firestore:"status"`
	ScoreA      int64     `firestore:"scoreA"`
	ScoreB      int64     `firestore:"scoreB"`
	ScoreC      int64     `firestore:"scoreC"`
	ScoreD      int64     `firestore:"scoreD"`
	Notes       *string   `firestore:"notes"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// Score returns the score for one side of the match.
func (m *Match) Score(side string) int64 {
	switch side {
	case SideA:
		return m.ScoreA
	case SideB:
		return m.ScoreB
	case SideC:
		return m.ScoreC
	case SideD:
		return m.ScoreD
	}
	return 0
}

// MatchEvent records a single in-match occurrence. MemberID and AssisterID hold
// the wire-level values, including the legacy sentinels; use pkg/memberref to
// interpret them.
type MatchEvent struct {
	ID         string    `firestore:"-"`
	MatchID    string    `firestore:"matchId"`
	MemberID   string    `firestore:"memberId"`
	AssisterID *string   `firestore:"assisterId"`
	Team       string    `firestore:"team"`
	Type       string    `firestore:"type"`
	Minute     *int      `firestore:"minute"`
	Notes      *string   `firestore:"notes"`
	CreatedAt  time.Time `firestore:"createdAt"`
}

type Attendance struct {
	ID        string     `firestore:"-"`
	MatchID   string     `firestore:"matchId"`
	MemberID  string     `firestore:"memberId"`
	Status    string     `firestore:"status"`
	CheckedAt *time.Time `firestore:"checkedAt"`
	CreatedAt time.Time  `firestore:"createdAt"`
	UpdatedAt time.Time  `firestore:"updatedAt"`
}

type TeamAssignment struct {
	ID        string    `firestore:"-"`
	MatchID   string    `firestore:"matchId"`
	TeamA     []string  `firestore:"teamA"`
	TeamB     []string  `firestore:"teamB"`
	TeamC     []string  `firestore:"teamC"`
	TeamD     []string  `firestore:"teamD"`
	CreatedAt time.Time `firestore:"createdAt"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// Roster returns the member ids for one side.
func (a *TeamAssignment) Roster(side string) []string {
	switch side {
	case SideA:
		return a.TeamA
	case SideB:
		return a.TeamB
	case SideC:
		return a.TeamC
	case SideD:
		return a.TeamD
	}
	return nil
}

// AllMembers returns every member id on any side, in roster order.
func (a *TeamAssignment) AllMembers() []string {
	var ids []string
	ids = append(ids, a.TeamA...)
	ids = append(ids, a.TeamB...)
	ids = append(ids, a.TeamC...)
	ids = append(ids, a.TeamD...)
	return ids
}

// Statistics is the per-member materialized view. The statistics service is the
// only writer; it is fully rebuildable from the other collections.
type Statistics struct {
	MemberID        string    `firestore:"memberId"`
	TotalMatches    int       `firestore:"totalMatches"`
	TotalAttendance int       `firestore:"totalAttendance"`
	AttendanceRate  float64   `firestore:"attendanceRate"`
	TotalGoals      int       `firestore:"totalGoals"`
	TotalAssists    int       `firestore:"totalAssists"`
	TotalWins       int       `firestore:"totalWins"`
	TotalLosses     int       `firestore:"totalLosses"`
	TotalDraws      int       `firestore:"totalDraws"`
	WinRate         float64   `firestore:"winRate"`
	LastUpdated     time.Time `firestore:"lastUpdated"`
}

type Notice struct {
	ID          string    `firestore:"-"`
	Title       string    `firestore:"title"`
	Content     string    `firestore:"content"`
	Important   bool      `firestore:"important"`
	Attachments []string  `firestore:"attachments"`
	AuthorID    *string   `firestore:"authorId"`
	IsActive    bool      `firestore:"isActive"`
	CreatedAt   time.Time `firestore:"createdAt"`
	UpdatedAt   time.Time `firestore:"updatedAt"`
}

// Notification types.
const (
	NotifyMatch   = "match"
	NotifyTeam    = "team"
	NotifyNotice  = "notice"
	NotifyGeneral = "general"
)

type Notification struct {
	ID        string    `firestore:"-"`
	UserID    *string   `firestore:"userId"`
	Type      string    `firestore:"type"`
	Title     string    `firestore:"title"`
	Content   string    `firestore:"content"`
	RelatedID *string   `firestore:"relatedId"`
	IsRead    bool      `firestore:"isRead"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// ChatLink binds a messaging-platform user id (the doc id) to a member.
type ChatLink struct {
	UserID   string    `firestore:"-"`
	MemberID string    `firestore:"memberId"`
	LinkedAt time.Time `firestore:"linkedAt"`
}
