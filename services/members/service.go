package members

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

var ErrBadPosition = errors.New("invalid position")

var memberPositions = map[string]bool{
	fsdb.PositionForward:    true,
	fsdb.PositionMidfielder: true,
	fsdb.PositionDefender:   true,
	fsdb.PositionGoalkeeper: true,
}

// validPosition accepts the position enum or an absent position.
func validPosition(position string) bool {
	return position == "" || memberPositions[position]
}

// MembersService is the member registry. Delete means isActive=false; the
// member keeps their place in historical statistics and rosters. Hard deletion
// is an admin operation.
type MembersService struct {
	store *fsdb.Store
}

// NewMembersService creates a new members service.
func NewMembersService(store *fsdb.Store) *MembersService {
	return &MembersService{store: store}
}

func (s *MembersService) ListMembers(ctx context.Context, query ListMembersQuery) ([]*fsdb.Member, error) {
	filter := fsdb.MemberFilter{TeamID: query.TeamID}
	if !query.IncludeInactive {
		active := true
		filter.IsActive = &active
	}
	return s.store.QueryMembers(ctx, filter)
}

func (s *MembersService) GetMember(ctx context.Context, id string) (*fsdb.Member, error) {
	return s.store.GetMember(ctx, id)
}

func (s *MembersService) CreateMember(ctx context.Context, req CreateMemberRequest) (*fsdb.Member, error) {
	if !validPosition(req.Position) {
		return nil, ErrBadPosition
	}

	id, err := s.store.CreateMember(ctx, memberData(req))
	if err != nil {
		return nil, err
	}
	return s.store.GetMember(ctx, id)
}

// BulkImport registers many members in a single batch. All rows are validated
// before any write; the batch commits all of them or none.
func (s *MembersService) BulkImport(ctx context.Context, req BulkImportRequest) ([]string, error) {
	for _, row := range req.Members {
		if !validPosition(row.Position) {
			return nil, ErrBadPosition
		}
	}
	if len(req.Members) == 0 {
		return []string{}, nil
	}

	batch := s.store.Batch()
	ids := make([]string, 0, len(req.Members))
	for _, row := range req.Members {
		ref := s.store.MemberRef()
		batch.Set(ref, memberData(row))
		ids = append(ids, ref.ID)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *MembersService) UpdateMember(ctx context.Context, id string, req UpdateMemberRequest) (*fsdb.Member, error) {
	if req.Position != nil && !validPosition(*req.Position) {
		return nil, ErrBadPosition
	}

	updates := memberUpdates(req)
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if err := s.store.UpdateMember(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.store.GetMember(ctx, id)
}

// DeactivateMember soft-deletes a member. They drop out of new rosters and
// notification fan-out but stay in historical data.
func (s *MembersService) DeactivateMember(ctx context.Context, id string) error {
	return s.store.UpdateMember(ctx, id, []firestore.Update{
		{Path: "isActive", Value: false},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
}

func memberData(req CreateMemberRequest) map[string]interface{} {
	return map[string]interface{}{
		"name":         req.Name,
		"phone":        req.Phone,
		"email":        req.Email,
		"teamId":       req.TeamID,
		"position":     req.Position,
		"jerseyNumber": req.JerseyNumber,
		"photoURL":     req.PhotoURL,
		"isActive":     true,
		"createdAt":    firestore.ServerTimestamp,
		"updatedAt":    firestore.ServerTimestamp,
	}
}

func memberUpdates(req UpdateMemberRequest) []firestore.Update {
	var updates []firestore.Update
	if req.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *req.Name})
	}
	if req.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *req.Phone})
	}
	if req.Email != nil {
		updates = append(updates, firestore.Update{Path: "email", Value: *req.Email})
	}
	if req.TeamID != nil {
		updates = append(updates, firestore.Update{Path: "teamId", Value: *req.TeamID})
	}
	if req.Position != nil {
		updates = append(updates, firestore.Update{Path: "position", Value: *req.Position})
	}
	if req.JerseyNumber != nil {
		updates = append(updates, firestore.Update{Path: "jerseyNumber", Value: *req.JerseyNumber})
	}
	if req.PhotoURL != nil {
		updates = append(updates, firestore.Update{Path: "photoURL", Value: *req.PhotoURL})
	}
	if req.IsActive != nil {
		updates = append(updates, firestore.Update{Path: "isActive", Value: *req.IsActive})
	}
	return updates
}
