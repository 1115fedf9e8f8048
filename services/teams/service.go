package teams

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

// TeamsService is the team registry. Teams are soft-deleted only; members keep
// their teamId references.
type TeamsService struct {
	store *fsdb.Store
}

// NewTeamsService creates a new teams service.
func NewTeamsService(store *fsdb.Store) *TeamsService {
	return &TeamsService{store: store}
}

func (s *TeamsService) ListTeams(ctx context.Context, includeInactive bool) ([]*fsdb.Team, error) {
	var isActive *bool
	if !includeInactive {
		active := true
		isActive = &active
	}
	return s.store.QueryTeams(ctx, isActive)
}

func (s *TeamsService) GetTeam(ctx context.Context, id string) (*TeamView, error) {
	team, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.store.QueryMembers(ctx, fsdb.MemberFilter{TeamID: id})
	if err != nil {
		return nil, err
	}
	return &TeamView{Team: team, Members: members}, nil
}

func (s *TeamsService) CreateTeam(ctx context.Context, req CreateTeamRequest) (*fsdb.Team, error) {
	id, err := s.store.CreateTeam(ctx, map[string]interface{}{
		"name":        req.Name,
		"color":       req.Color,
		"description": req.Description,
		"captainId":   req.CaptainID,
		"isActive":    true,
		"createdAt":   firestore.ServerTimestamp,
		"updatedAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return nil, err
	}
	return s.store.GetTeam(ctx, id)
}

func (s *TeamsService) UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*fsdb.Team, error) {
	updates := teamUpdates(req)
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if err := s.store.UpdateTeam(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.store.GetTeam(ctx, id)
}

// DeactivateTeam soft-deletes a team.
func (s *TeamsService) DeactivateTeam(ctx context.Context, id string) error {
	return s.store.UpdateTeam(ctx, id, []firestore.Update{
		{Path: "isActive", Value: false},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
}

func teamUpdates(req UpdateTeamRequest) []firestore.Update {
	var updates []firestore.Update
	if req.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *req.Name})
	}
	if req.Color != nil {
		updates = append(updates, firestore.Update{Path: "color", Value: *req.Color})
	}
	if req.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *req.Description})
	}
	if req.CaptainID != nil {
		updates = append(updates, firestore.Update{Path: "captainId", Value: *req.CaptainID})
	}
	if req.IsActive != nil {
		updates = append(updates, firestore.Update{Path: "isActive", Value: *req.IsActive})
	}
	return updates
}
