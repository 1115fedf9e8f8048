package relay

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/sundayfc/club-sync/pkg/linkcode"
	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/services/stats"
)

const recentMatchLimit = 5

// Swapped out in tests.
var timeNow = time.Now

// RelayService answers chatbot webhook calls with plain-text summaries read
// from the same backend the REST surface uses. Chat users map to members
// through the chatLinks collection.
type RelayService struct {
	store        *fsdb.Store
	statsService *stats.StatsService
}

func NewRelayService(store *fsdb.Store, statsService *stats.StatsService) *RelayService {
	return &RelayService{
		store:        store,
		statsService: statsService,
	}
}

// Dispatch routes one webhook call to its action. Unknown actions get the
// help text rather than an error, the platform retries on non-200s.
func (s *RelayService) Dispatch(ctx context.Context, req RelayRequest) RelayResponse {
	switch req.Action {
	case "next_match":
		return s.nextMatch(ctx)
	case "recent_matches":
		return s.recentMatches(ctx)
	case "my_stats":
		return s.myStats(ctx, req.UserRequest.UserID)
	case "leaderboard":
		return s.leaderboard(ctx, req.Params["category"])
	case "notices":
		return s.notices(ctx)
	case "link":
		return s.link(ctx, req.UserRequest.UserID, req.Params["code"])
	default:
		return RelayResponse{Text: helpText}
	}
}

func (s *RelayService) nextMatch(ctx context.Context) RelayResponse {
	now := timeNow()
	matches, err := s.store.QueryMatches(ctx, fsdb.MatchFilter{
		Status: fsdb.MatchScheduled,
		From:   &now,
	})
	if err != nil {
		return s.failure(err)
	}

	next := earliestUpcoming(matches, now)
	if next == nil {
		return RelayResponse{Text: "No upcoming matches."}
	}
	return RelayResponse{Text: "Next match: " + formatMatch(next)}
}

func (s *RelayService) recentMatches(ctx context.Context) RelayResponse {
	matches, err := s.store.QueryMatches(ctx, fsdb.MatchFilter{Status: fsdb.MatchCompleted})
	if err != nil {
		return s.failure(err)
	}
	if len(matches) == 0 {
		return RelayResponse{Text: "No completed matches yet."}
	}
	if len(matches) > recentMatchLimit {
		matches = matches[:recentMatchLimit]
	}

	text := "Recent results:"
	for _, match := range matches {
		text += "\n" + formatResult(match)
	}
	return RelayResponse{Text: text}
}

func (s *RelayService) myStats(ctx context.Context, userID string) RelayResponse {
	if userID == "" {
		return RelayResponse{Text: "Could not identify you."}
	}

	chatLink, err := s.store.GetChatLink(ctx, userID)
	if errors.Is(err, fsdb.ErrNotFound) {
		return RelayResponse{Text: "Your chat account is not linked to a member yet. Ask an admin for a link code and send: link <code>"}
	}
	if err != nil {
		return s.failure(err)
	}

	view, err := s.statsService.Get(ctx, chatLink.MemberID)
	if err != nil {
		return s.failure(err)
	}
	return RelayResponse{Text: formatStats(view)}
}

func (s *RelayService) leaderboard(ctx context.Context, category string) RelayResponse {
	if category == "" {
		category = "goals"
	}

	entries, err := s.statsService.Leaderboard(ctx, category, 5)
	if err != nil {
		return s.failure(err)
	}
	return RelayResponse{Text: formatLeaderboard(category, entries)}
}

func (s *RelayService) notices(ctx context.Context) RelayResponse {
	active := true
	notices, err := s.store.QueryNotices(ctx, fsdb.NoticeFilter{IsActive: &active})
	if err != nil {
		return s.failure(err)
	}
	if len(notices) > 3 {
		notices = notices[:3]
	}
	return RelayResponse{Text: formatNotices(notices)}
}

func (s *RelayService) link(ctx context.Context, userID, code string) RelayResponse {
	if userID == "" || code == "" {
		return RelayResponse{Text: "Send: link <code>"}
	}

	memberID, _, err := linkcode.Decode(code)
	if err != nil {
		return RelayResponse{Text: "That code is not valid."}
	}

	member, err := s.store.GetMember(ctx, memberID)
	if errors.Is(err, fsdb.ErrNotFound) {
		return RelayResponse{Text: "That code is not valid."}
	}
	if err != nil {
		return s.failure(err)
	}

	if err := s.store.PutChatLink(ctx, userID, member.ID); err != nil {
		return s.failure(err)
	}
	return RelayResponse{Text: "Linked to " + member.Name + "."}
}

func (s *RelayService) failure(err error) RelayResponse {
	log.Printf("Relay request failed: %v\n", err)
	return RelayResponse{Text: "Something went wrong, try again later."}
}
