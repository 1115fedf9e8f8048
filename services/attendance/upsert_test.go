package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

func TestPlanUpsertsInsertsAndUpdates(t *testing.T) {
	existing := []*fsdb.Attendance{
		{ID: "att-1", MatchID: "match-1", MemberID: "m1", Status: fsdb.AttendancePending},
	}
	items := []AttendanceItem{
		{MemberID: "m1", Status: fsdb.AttendancePresent},
		{MemberID: "m2", Status: fsdb.AttendanceAbsent},
	}

	ops := planUpserts(items, existing)

	assert.Len(t, ops, 2)
	assert.Equal(t, upsertOp{AttendanceID: "att-1", MemberID: "m1", Status: fsdb.AttendancePresent}, ops[0])
	assert.Equal(t, upsertOp{AttendanceID: "", MemberID: "m2", Status: fsdb.AttendanceAbsent}, ops[1])
}

// Duplicate member ids in the input collapse to one write carrying the last
// status given.
func TestPlanUpsertsLastStatusWins(t *testing.T) {
	items := []AttendanceItem{
		{MemberID: "m1", Status: fsdb.AttendancePresent},
		{MemberID: "m2", Status: fsdb.AttendancePresent},
		{MemberID: "m1", Status: fsdb.AttendanceAbsent},
	}

	ops := planUpserts(items, nil)

	assert.Len(t, ops, 2)
	assert.Equal(t, "m1", ops[0].MemberID)
	assert.Equal(t, fsdb.AttendanceAbsent, ops[0].Status)
	assert.Equal(t, "m2", ops[1].MemberID)
	assert.Equal(t, fsdb.AttendancePresent, ops[1].Status)
}

func TestPlanUpsertsOneWritePerMember(t *testing.T) {
	items := []AttendanceItem{
		{MemberID: "m1", Status: fsdb.AttendancePending},
		{MemberID: "m1", Status: fsdb.AttendancePresent},
		{MemberID: "m1", Status: fsdb.AttendancePending},
	}

	ops := planUpserts(items, nil)

	assert.Len(t, ops, 1)
	assert.Equal(t, fsdb.AttendancePending, ops[0].Status)
}

func TestPlanUpsertsEmpty(t *testing.T) {
	assert.Empty(t, planUpserts(nil, nil))
}

// A match keeps at most one assignment document: the first save inserts, every
// save after that updates the same document in place.
func TestPlanAssignmentWriteRepeatedSaves(t *testing.T) {
	req := SaveAssignmentRequest{
		MatchID: "match-1",
		TeamA:   []string{"m1", "m2"},
		TeamB:   []string{"m3"},
	}

	first := planAssignmentWrite(nil, req)
	assert.Empty(t, first.AssignmentID, "no existing document means an insert")

	stored := &fsdb.TeamAssignment{
		ID:      "as-1",
		MatchID: "match-1",
		TeamA:   req.TeamA,
		TeamB:   req.TeamB,
	}

	second := planAssignmentWrite(stored, req)
	assert.Equal(t, "as-1", second.AssignmentID, "a repeated save updates in place")

	third := planAssignmentWrite(stored, SaveAssignmentRequest{
		MatchID: "match-1",
		TeamA:   []string{"m3"},
		TeamB:   []string{"m1", "m2"},
	})
	assert.Equal(t, "as-1", third.AssignmentID)
	assert.Equal(t, []string{"m3"}, third.Rosters["teamA"])
}

func TestPlanAssignmentWriteEmptyRosters(t *testing.T) {
	w := planAssignmentWrite(nil, SaveAssignmentRequest{MatchID: "match-1"})

	for _, path := range []string{"teamA", "teamB", "teamC", "teamD"} {
		assert.NotNil(t, w.Rosters[path])
		assert.Empty(t, w.Rosters[path])
	}
}

func TestValidStatus(t *testing.T) {
	assert.True(t, validStatus(fsdb.AttendancePending))
	assert.True(t, validStatus(fsdb.AttendancePresent))
	assert.True(t, validStatus(fsdb.AttendanceAbsent))
	assert.False(t, validStatus("maybe"))
	assert.False(t, validStatus(""))
}
