package attendance

import (
	"context"
	"errors"
	"log"

	"cloud.google.com/go/firestore"

	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/repos/notify"
)

var ErrBadAttendanceStatus = errors.New("invalid attendance status")

// AttendanceService maintains attendance records and team assignments.
type AttendanceService struct {
	store         *fsdb.Store
	notifyService *notify.Service
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(store *fsdb.Store, notifyService *notify.Service) *AttendanceService {
	return &AttendanceService{
		store:         store,
		notifyService: notifyService,
	}
}

func (s *AttendanceService) ListAttendance(ctx context.Context, query ListAttendanceQuery) ([]*AttendanceView, error) {
	if query.Status != "" && !validStatus(query.Status) {
		return nil, ErrBadAttendanceStatus
	}

	attendances, err := s.store.QueryAttendances(ctx, fsdb.AttendanceFilter{
		MatchID:  query.MatchID,
		MemberID: query.MemberID,
		Status:   query.Status,
	})
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	views := make([]*AttendanceView, 0, len(attendances))
	for _, att := range attendances {
		name, ok := names[att.MemberID]
		if !ok {
			name = s.memberName(ctx, att.MemberID)
			names[att.MemberID] = name
		}
		views = append(views, &AttendanceView{Attendance: att, MemberName: name})
	}
	return views, nil
}

// UpdateAttendance changes the status of one record. checkedAt is stamped when
// the member is marked present and cleared otherwise.
func (s *AttendanceService) UpdateAttendance(ctx context.Context, id string, req UpdateAttendanceRequest) (*fsdb.Attendance, error) {
	if !validStatus(req.Status) {
		return nil, ErrBadAttendanceStatus
	}

	updates := []firestore.Update{
		{Path: "status", Value: req.Status},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	}
	if req.Status == fsdb.AttendancePresent {
		updates = append(updates, firestore.Update{Path: "checkedAt", Value: firestore.ServerTimestamp})
	} else {
		updates = append(updates, firestore.Update{Path: "checkedAt", Value: nil})
	}

	if err := s.store.UpdateAttendance(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.store.GetAttendance(ctx, id)
}

// BulkUpsert records attendance for many members of one match in a single
// batch. One document per (match, member) pair is kept: existing records are
// updated in place, new members get a fresh document. Returns the number of
// writes committed.
func (s *AttendanceService) BulkUpsert(ctx context.Context, req BulkUpsertRequest) (int, error) {
	for _, item := range req.Items {
		if !validStatus(item.Status) {
			return 0, ErrBadAttendanceStatus
		}
	}

	if _, err := s.store.GetMatch(ctx, req.MatchID); err != nil {
		return 0, err
	}

	existing, err := s.store.QueryAttendances(ctx, fsdb.AttendanceFilter{MatchID: req.MatchID})
	if err != nil {
		return 0, err
	}

	ops := planUpserts(req.Items, existing)
	if len(ops) == 0 {
		return 0, nil
	}

	batch := s.store.Batch()
	for _, op := range ops {
		if op.AttendanceID == "" {
			data := map[string]interface{}{
				"matchId":   req.MatchID,
				"memberId":  op.MemberID,
				"status":    op.Status,
				"checkedAt": nil,
				"createdAt": firestore.ServerTimestamp,
				"updatedAt": firestore.ServerTimestamp,
			}
			if op.Status == fsdb.AttendancePresent {
				data["checkedAt"] = firestore.ServerTimestamp
			}
			batch.Set(s.store.AttendanceRef(""), data)
			continue
		}

		updates := []firestore.Update{
			{Path: "status", Value: op.Status},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
		}
		if op.Status == fsdb.AttendancePresent {
			updates = append(updates, firestore.Update{Path: "checkedAt", Value: firestore.ServerTimestamp})
		} else {
			updates = append(updates, firestore.Update{Path: "checkedAt", Value: nil})
		}
		batch.Update(s.store.AttendanceRef(op.AttendanceID), updates)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return 0, err
	}
	return len(ops), nil
}

// GetAssignment returns the single assignment for a match with its rosters
// resolved to member summaries.
func (s *AttendanceService) GetAssignment(ctx context.Context, matchID string) (*AssignmentView, error) {
	assignment, err := s.store.TeamAssignmentForMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, assignment), nil
}

// SaveAssignment creates the rosters for a match, or replaces them when the
// match already has an assignment. At most one assignment document exists per
// match.
func (s *AttendanceService) SaveAssignment(ctx context.Context, req SaveAssignmentRequest) (*AssignmentView, error) {
	if _, err := s.store.GetMatch(ctx, req.MatchID); err != nil {
		return nil, err
	}

	existing, err := s.store.TeamAssignmentForMatch(ctx, req.MatchID)
	if err != nil && !errors.Is(err, fsdb.ErrNotFound) {
		return nil, err
	}

	plan := planAssignmentWrite(existing, req)
	assignmentID := plan.AssignmentID
	if assignmentID == "" {
		data := map[string]interface{}{
			"matchId":   req.MatchID,
			"createdAt": firestore.ServerTimestamp,
			"updatedAt": firestore.ServerTimestamp,
		}
		for path, roster := range plan.Rosters {
			data[path] = roster
		}
		assignmentID, err = s.store.CreateTeamAssignment(ctx, data)
		if err != nil {
			return nil, err
		}
	} else {
		updates := make([]firestore.Update, 0, len(plan.Rosters)+1)
		for path, roster := range plan.Rosters {
			updates = append(updates, firestore.Update{Path: path, Value: roster})
		}
		updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
		if err := s.store.UpdateTeamAssignment(ctx, assignmentID, updates); err != nil {
			return nil, err
		}
	}

	assignment, err := s.store.GetTeamAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	if req.SendNotification {
		members := assignment.AllMembers()
		go s.notifyService.NotifyMembers(context.Background(), members, notify.Message{
			Type:      fsdb.NotifyTeam,
			Title:     "Team assignment",
			Content:   "You have been assigned to a team for an upcoming match.",
			RelatedID: &req.MatchID,
		})
	}

	return s.toView(ctx, assignment), nil
}

// UpdateAssignment patches individual rosters of an assignment.
func (s *AttendanceService) UpdateAssignment(ctx context.Context, id string, req UpdateAssignmentRequest) (*AssignmentView, error) {
	updates := []firestore.Update{}
	if req.TeamA != nil {
		updates = append(updates, firestore.Update{Path: "teamA", Value: rosterOrEmpty(*req.TeamA)})
	}
	if req.TeamB != nil {
		updates = append(updates, firestore.Update{Path: "teamB", Value: rosterOrEmpty(*req.TeamB)})
	}
	if req.TeamC != nil {
		updates = append(updates, firestore.Update{Path: "teamC", Value: rosterOrEmpty(*req.TeamC)})
	}
	if req.TeamD != nil {
		updates = append(updates, firestore.Update{Path: "teamD", Value: rosterOrEmpty(*req.TeamD)})
	}
	if len(updates) > 0 {
		updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})
		if err := s.store.UpdateTeamAssignment(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	assignment, err := s.store.GetTeamAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, assignment), nil
}

func (s *AttendanceService) DeleteAssignment(ctx context.Context, id string) error {
	if _, err := s.store.GetTeamAssignment(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteTeamAssignment(ctx, id)
}

func (s *AttendanceService) toView(ctx context.Context, assignment *fsdb.TeamAssignment) *AssignmentView {
	summaries := map[string]MemberSummary{}
	resolve := func(ids []string) []MemberSummary {
		roster := make([]MemberSummary, 0, len(ids))
		for _, id := range ids {
			summary, ok := summaries[id]
			if !ok {
				summary = s.memberSummary(ctx, id)
				summaries[id] = summary
			}
			roster = append(roster, summary)
		}
		return roster
	}

	return &AssignmentView{
		TeamAssignment: assignment,
		TeamAMembers:   resolve(assignment.TeamA),
		TeamBMembers:   resolve(assignment.TeamB),
		TeamCMembers:   resolve(assignment.TeamC),
		TeamDMembers:   resolve(assignment.TeamD),
	}
}

func (s *AttendanceService) memberSummary(ctx context.Context, id string) MemberSummary {
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		log.Printf("Failed to resolve member %s: %v\n", id, err)
		return MemberSummary{ID: id, Name: "Unknown"}
	}
	return MemberSummary{
		ID:           member.ID,
		Name:         member.Name,
		Position:     member.Position,
		JerseyNumber: member.JerseyNumber,
	}
}

func (s *AttendanceService) memberName(ctx context.Context, id string) string {
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return member.Name
}

func rosterOrEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
