package admin

import (
	"context"
	"log"

	"github.com/sundayfc/club-sync/pkg/linkcode"
	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/services/matches"
	"github.com/sundayfc/club-sync/services/stats"
)

// AdminService bundles the maintenance operations kept off the member-facing
// surface: full statistics rebuilds, score reconciliation and hard deletion.
type AdminService struct {
	store          *fsdb.Store
	statsService   *stats.StatsService
	matchesService *matches.MatchesService
}

func NewAdminService(store *fsdb.Store, statsService *stats.StatsService, matchesService *matches.MatchesService) *AdminService {
	return &AdminService{
		store:          store,
		statsService:   statsService,
		matchesService: matchesService,
	}
}

// RecalculateAllStatistics rebuilds statistics for every active member.
// Returns how many members completed before the first failure, if any.
func (s *AdminService) RecalculateAllStatistics(ctx context.Context) (int, error) {
	return s.statsService.RecalculateAll(ctx)
}

// RecountMatchScores rebuilds one match's score fields from its events.
func (s *AdminService) RecountMatchScores(ctx context.Context, matchID string) (*fsdb.Match, error) {
	return s.matchesService.RecountScores(ctx, matchID)
}

// PurgeMember removes a member document permanently. Their attendance, event
// and assignment history stays in place; statistics will resolve the id to
// "Unknown" from then on.
func (s *AdminService) PurgeMember(ctx context.Context, memberID string) error {
	if _, err := s.store.GetMember(ctx, memberID); err != nil {
		return err
	}

	if err := s.store.DeleteMember(ctx, memberID); err != nil {
		return err
	}
	log.Printf("Member %s permanently deleted\n", memberID)
	return nil
}

// IssueLinkCode mints a chat link code for a member. The member redeems it
// through the relay's link action.
func (s *AdminService) IssueLinkCode(ctx context.Context, memberID string) (string, error) {
	if _, err := s.store.GetMember(ctx, memberID); err != nil {
		return "", err
	}
	return linkcode.GenerateCode(memberID), nil
}
