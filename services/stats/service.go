package stats

import (
	"context"
	"errors"
	"log"

	"cloud.google.com/go/firestore"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

type StatsService struct {
	store *fsdb.Store
}

func NewStatsService(store *fsdb.Store) *StatsService {
	return &StatsService{
		store: store,
	}
}

// Recalculate rebuilds one member's statistics snapshot from scratch and
// merge-writes it to the statistics collection. The full attendance, event and
// assignment history for the member is re-scanned on every call, so running it
// twice with no intervening writes produces identical aggregates.
func (s *StatsService) Recalculate(ctx context.Context, memberID string) (*fsdb.Statistics, error) {
	attendances, err := s.store.QueryAttendances(ctx, fsdb.AttendanceFilter{MemberID: memberID})
	if err != nil {
		return nil, err
	}
	totalMatches, totalAttendance, attendanceRate := summarizeAttendance(attendances)

	events, err := s.store.QueryMatchEvents(ctx, fsdb.EventFilter{MemberID: memberID})
	if err != nil {
		return nil, err
	}
	totalGoals := countGoals(events, memberID)

	assistEvents, err := s.store.QueryMatchEvents(ctx, fsdb.EventFilter{AssisterID: memberID})
	if err != nil {
		return nil, err
	}
	totalAssists := countAssists(assistEvents, memberID)

	wins, losses, draws, err := s.tallyResults(ctx, memberID)
	if err != nil {
		return nil, err
	}

	err = s.store.MergeStatistics(ctx, memberID, map[string]interface{}{
		"memberId":        memberID,
		"totalMatches":    totalMatches,
		"totalAttendance": totalAttendance,
		"attendanceRate":  attendanceRate,
		"totalGoals":      totalGoals,
		"totalAssists":    totalAssists,
		"totalWins":       wins,
		"totalLosses":     losses,
		"totalDraws":      draws,
		"winRate":         winRate(wins, losses, draws),
		"lastUpdated":     firestore.ServerTimestamp,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Statistics updated for member %s\n", memberID)
	return s.store.GetStatistics(ctx, memberID)
}

// tallyResults walks every team assignment, resolves its match and classifies
// completed ones. One match lookup per assignment; acceptable at club scale.
func (s *StatsService) tallyResults(ctx context.Context, memberID string) (wins, losses, draws int, err error) {
	assignments, err := s.store.AllTeamAssignments(ctx)
	if err != nil {
		return 0, 0, 0, err
	}

	for _, assignment := range assignments {
		match, err := s.store.GetMatch(ctx, assignment.MatchID)
		if err != nil {
			if errors.Is(err, fsdb.ErrNotFound) {
				continue
			}
			return 0, 0, 0, err
		}

		switch classifyOutcome(memberID, assignment, match) {
		case win:
			wins++
		case loss:
			losses++
		case draw:
			draws++
		}
	}
	return wins, losses, draws, nil
}

// RecalculateAll recomputes statistics for every active member, sequentially.
// The first failing member aborts the batch; the count reports how many
// members completed before that.
func (s *StatsService) RecalculateAll(ctx context.Context) (int, error) {
	members, err := s.store.ActiveMembers(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, member := range members {
		if _, err := s.Recalculate(ctx, member.ID); err != nil {
			return count, err
		}
		count++
	}

	log.Printf("Statistics recalculated for %d members\n", count)
	return count, nil
}

// RecalculateForMatch recomputes statistics for every member on the match's
// rosters. A match without an assignment is a no-op.
func (s *StatsService) RecalculateForMatch(ctx context.Context, matchID string) error {
	assignment, err := s.store.TeamAssignmentForMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, fsdb.ErrNotFound) {
			log.Printf("No team assignment found for match %s\n", matchID)
			return nil
		}
		return err
	}

	memberIDs := assignment.AllMembers()
	for _, memberID := range memberIDs {
		if _, err := s.Recalculate(ctx, memberID); err != nil {
			return err
		}
	}

	log.Printf("Statistics updated for match %s (%d members)\n", matchID, len(memberIDs))
	return nil
}

// Get returns a member's statistics, computing them on first access.
func (s *StatsService) Get(ctx context.Context, memberID string) (*StatsView, error) {
	statistics, err := s.store.GetStatistics(ctx, memberID)
	if errors.Is(err, fsdb.ErrNotFound) {
		statistics, err = s.Recalculate(ctx, memberID)
	}
	if err != nil {
		return nil, err
	}
	return s.toView(ctx, statistics), nil
}

// List returns statistics sorted descending by the given category. Order among
// equal values is store order and not stable.
func (s *StatsService) List(ctx context.Context, sortBy string, limit, offset int) ([]*StatsView, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	results, err := s.store.TopStatistics(ctx, fsdb.StatSortField(sortBy), limit, offset)
	if err != nil {
		return nil, err
	}

	views := make([]*StatsView, 0, len(results))
	for _, statistics := range results {
		views = append(views, s.toView(ctx, statistics))
	}
	return views, nil
}

// Leaderboard returns the top members by category with ranks assigned in
// result order.
func (s *StatsService) Leaderboard(ctx context.Context, category string, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	results, err := s.store.TopStatistics(ctx, fsdb.StatSortField(category), limit, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]*LeaderboardEntry, 0, len(results))
	for i, statistics := range results {
		entries = append(entries, &LeaderboardEntry{
			Rank:      i + 1,
			StatsView: *s.toView(ctx, statistics),
		})
	}
	return entries, nil
}

func (s *StatsService) toView(ctx context.Context, statistics *fsdb.Statistics) *StatsView {
	view := &StatsView{Statistics: *statistics, MemberName: "Unknown"}

	member, err := s.store.GetMember(ctx, statistics.MemberID)
	if err != nil {
		return view
	}
	view.MemberName = member.Name
	view.Position = member.Position
	view.JerseyNumber = member.JerseyNumber
	return view
}
