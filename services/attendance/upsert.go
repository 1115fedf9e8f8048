package attendance

import (
	"github.com/sundayfc/club-sync/repos/fsdb"
)

var attendanceStatuses = map[string]bool{
	fsdb.AttendancePending: true,
	fsdb.AttendancePresent: true,
	fsdb.AttendanceAbsent:  true,
}

func validStatus(status string) bool {
	return attendanceStatuses[status]
}

// upsertOp is one planned write. An empty AttendanceID means a new document.
type upsertOp struct {
	AttendanceID string
	MemberID     string
	Status       string
}

// planUpserts turns the requested items into one write per member. Duplicate
// member ids collapse to the last status given for them, and members with an
// existing record for the match become updates instead of inserts.
func planUpserts(items []AttendanceItem, existing []*fsdb.Attendance) []upsertOp {
	statuses := make(map[string]string, len(items))
	var order []string
	for _, item := range items {
		if _, seen := statuses[item.MemberID]; !seen {
			order = append(order, item.MemberID)
		}
		statuses[item.MemberID] = item.Status
	}

	existingIDs := make(map[string]string, len(existing))
	for _, att := range existing {
		if _, ok := existingIDs[att.MemberID]; !ok {
			existingIDs[att.MemberID] = att.ID
		}
	}

	ops := make([]upsertOp, 0, len(order))
	for _, memberID := range order {
		ops = append(ops, upsertOp{
			AttendanceID: existingIDs[memberID],
			MemberID:     memberID,
			Status:       statuses[memberID],
		})
	}
	return ops
}

// assignmentWrite is the planned write for a match's rosters. An empty
// AssignmentID means a new document.
type assignmentWrite struct {
	AssignmentID string
	Rosters      map[string][]string
}

// planAssignmentWrite decides between updating the match's existing assignment
// document and inserting a fresh one, keeping at most one document per match.
func planAssignmentWrite(existing *fsdb.TeamAssignment, req SaveAssignmentRequest) assignmentWrite {
	w := assignmentWrite{
		Rosters: map[string][]string{
			"teamA": rosterOrEmpty(req.TeamA),
			"teamB": rosterOrEmpty(req.TeamB),
			"teamC": rosterOrEmpty(req.TeamC),
			"teamD": rosterOrEmpty(req.TeamD),
		},
	}
	if existing != nil {
		w.AssignmentID = existing.ID
	}
	return w
}
