package matches

import (
	"context"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/samborkent/uuidv7"

	"github.com/sundayfc/club-sync/pkg/memberref"
	"github.com/sundayfc/club-sync/pkg/timeutil"
	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/repos/notify"
)

var (
	ErrMatchCompleted = errors.New("completed matches cannot be cancelled")
	ErrBadDate        = errors.New("invalid date")
	ErrBadStatus      = errors.New("invalid match status")
)

var matchStatuses = map[string]bool{
	fsdb.MatchScheduled:  true,
	fsdb.MatchInProgress: true,
	fsdb.MatchCompleted:  true,
	fsdb.MatchCancelled:  true,
}

type MatchesService struct {
	store         *fsdb.Store
	notifyService *notify.Service
}

func NewMatchesService(store *fsdb.Store, notifyService *notify.Service) *MatchesService {
	return &MatchesService{
		store:         store,
		notifyService: notifyService,
	}
}

func (s *MatchesService) ListMatches(ctx context.Context, query ListMatchesQuery) ([]*fsdb.Match, error) {
	filter := fsdb.MatchFilter{Status: query.Status}

	if query.Month >= 1 && query.Month <= 12 {
		start, end := timeutil.MonthBounds(query.Month, time.Local)
		filter.From = &start
		filter.To = &end
	} else {
		if query.StartDate != "" {
			from, err := time.Parse(time.RFC3339, query.StartDate)
			if err != nil {
				return nil, ErrBadDate
			}
			filter.From = &from
		}
		if query.EndDate != "" {
			to, err := time.Parse(time.RFC3339, query.EndDate)
			if err != nil {
				return nil, ErrBadDate
			}
			filter.To = &to
		}
	}

	return s.store.QueryMatches(ctx, filter)
}

func (s *MatchesService) GetMatch(ctx context.Context, id string) (*fsdb.Match, error) {
	return s.store.GetMatch(ctx, id)
}

// CreateMatch creates one match, or a recurring series when daysOfWeek and the
// date range are supplied. Returns the ids of the created matches.
func (s *MatchesService) CreateMatch(ctx context.Context, req CreateMatchRequest) ([]string, error) {
	if len(req.DaysOfWeek) > 0 && req.StartDate != "" && req.EndDate != "" {
		ids, err := s.createRecurring(ctx, req)
		if err != nil {
			return nil, err
		}
		if req.SendNotification && len(ids) > 0 {
			s.notifyService.BroadcastAsync(notify.Message{
				Type:    fsdb.NotifyMatch,
				Title:   "New matches scheduled",
				Content: "A new match series has been scheduled.",
			})
		}
		return ids, nil
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		return nil, ErrBadDate
	}

	id, err := s.createOne(ctx, req.Title, date, req.Location, req.Notes)
	if err != nil {
		return nil, err
	}

	if req.SendNotification {
		s.notifyService.BroadcastAsync(notify.Message{
			Type:      fsdb.NotifyMatch,
			Title:     "New match scheduled",
			Content:   "A new match has been scheduled.",
			RelatedID: &id,
		})
	}
	return []string{id}, nil
}

func (s *MatchesService) createOne(ctx context.Context, title string, date time.Time, location, notes string) (string, error) {
	dayStart, dayEnd := timeutil.DayBounds(date)
	sameDay, err := s.store.CountMatchesOn(ctx, dayStart, dayEnd)
	if err != nil {
		return "", err
	}

	matchData := map[string]interface{}{
		"title":       nullable(title),
		"date":        date,
		"matchNumber": sameDay + 1,
		"location":    nullable(location),
		"notes":       nullable(notes),
		"status":      fsdb.MatchScheduled,
		"scoreA":      0,
		"scoreB":      0,
		"scoreC":      0,
		"scoreD":      0,
		"createdAt":   firestore.ServerTimestamp,
		"updatedAt":   firestore.ServerTimestamp,
	}

	id, err := s.store.CreateMatch(ctx, matchData)
	if err != nil {
		return "", err
	}

	if err := s.seedAttendance(ctx, id); err != nil {
		// The match exists; missing pending records surface through the
		// attendance endpoints and can be re-seeded there.
		log.Printf("Failed to seed attendance for match %s: %v\n", id, err)
	}
	return id, nil
}

// seedAttendance creates one pending attendance record per active member.
func (s *MatchesService) seedAttendance(ctx context.Context, matchID string) error {
	members, err := s.store.ActiveMembers(ctx)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		return nil
	}

	batch := s.store.Batch()
	for _, member := range members {
		batch.Set(s.store.AttendanceRef(""), map[string]interface{}{
			"matchId":   matchID,
			"memberId":  member.ID,
			"status":    fsdb.AttendancePending,
			"checkedAt": nil,
			"createdAt": firestore.ServerTimestamp,
			"updatedAt": firestore.ServerTimestamp,
		})
	}
	_, err = batch.Commit(ctx)
	return err
}

func (s *MatchesService) createRecurring(ctx context.Context, req CreateMatchRequest) ([]string, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrBadDate
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrBadDate
	}

	startTime := req.StartTime
	if startTime == "" {
		startTime = "15:00"
	}
	kickoff, err := time.Parse("15:04", startTime)
	if err != nil {
		return nil, ErrBadDate
	}

	wanted := map[int]bool{}
	for _, day := range req.DaysOfWeek {
		wanted[day] = true
	}

	notes := req.Notes
	if req.StartTime != "" && req.EndTime != "" {
		notes = req.StartTime + " ~ " + req.EndTime
	}

	var ids []string
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !wanted[int(day.Weekday())] {
			continue
		}
		matchDate := time.Date(day.Year(), day.Month(), day.Day(),
			kickoff.Hour(), kickoff.Minute(), 0, 0, time.Local)

		id, err := s.createOne(ctx, req.Title, matchDate, req.Location, notes)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (s *MatchesService) UpdateMatch(ctx context.Context, id string, req UpdateMatchRequest) (*fsdb.Match, error) {
	if req.Status != nil && !matchStatuses[*req.Status] {
		return nil, ErrBadStatus
	}

	updates, err := matchUpdates(req)
	if err != nil {
		return nil, err
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if err := s.store.UpdateMatch(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.store.GetMatch(ctx, id)
}

func matchUpdates(req UpdateMatchRequest) ([]firestore.Update, error) {
	var updates []firestore.Update

	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			return nil, ErrBadDate
		}
		updates = append(updates, firestore.Update{Path: "date", Value: date})
	}
	if req.Location != nil {
		updates = append(updates, firestore.Update{Path: "location", Value: *req.Location})
	}
	if req.Notes != nil {
		updates = append(updates, firestore.Update{Path: "notes", Value: *req.Notes})
	}
	if req.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *req.Status})
	}
	if req.ScoreA != nil {
		updates = append(updates, firestore.Update{Path: "scoreA", Value: *req.ScoreA})
	}
	if req.ScoreB != nil {
		updates = append(updates, firestore.Update{Path: "scoreB", Value: *req.ScoreB})
	}
	if req.ScoreC != nil {
		updates = append(updates, firestore.Update{Path: "scoreC", Value: *req.ScoreC})
	}
	if req.ScoreD != nil {
		updates = append(updates, firestore.Update{Path: "scoreD", Value: *req.ScoreD})
	}
	return updates, nil
}

// CancelMatch marks a match cancelled. Completed matches stay completed.
func (s *MatchesService) CancelMatch(ctx context.Context, id string) error {
	match, err := s.store.GetMatch(ctx, id)
	if err != nil {
		return err
	}
	if match.Status == fsdb.MatchCompleted {
		return ErrMatchCompleted
	}

	return s.store.UpdateMatch(ctx, id, []firestore.Update{
		{Path: "status", Value: fsdb.MatchCancelled},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
}

func (s *MatchesService) ListEvents(ctx context.Context, matchID, eventType string) ([]*EventView, error) {
	events, err := s.store.QueryMatchEvents(ctx, fsdb.EventFilter{MatchID: matchID, Type: eventType})
	if err != nil {
		return nil, err
	}

	views := make([]*EventView, 0, len(events))
	for _, event := range events {
		view := &EventView{MatchEvent: *event}
		view.MemberName = s.refName(ctx, memberref.ScorerFromWire(event.MemberID))

		assister := memberref.AssisterFromWire(event.AssisterID)
		if assister.Kind() != memberref.KindNone {
			name := s.refName(ctx, assister)
			view.AssisterName = &name
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *MatchesService) refName(ctx context.Context, ref memberref.Ref) string {
	switch ref.Kind() {
	case memberref.KindOwnGoal:
		return "Own goal"
	case memberref.KindUnknown, memberref.KindNone:
		return "Unknown"
	}

	id, _ := ref.MemberID()
	member, err := s.store.GetMember(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return member.Name
}

// CreateEvent persists a match event and, for goals and own goals, bumps the
// parent match's score. The two writes are sequential and not transactional;
// RecountScores reconciles any drift between them.
func (s *MatchesService) CreateEvent(ctx context.Context, req CreateEventRequest) (*fsdb.MatchEvent, error) {
	if err := validateEvent(req.Type, req.Team); err != nil {
		return nil, err
	}

	assister := memberref.None()
	if req.Type == fsdb.EventGoal {
		assister = memberref.AssisterFromWire(req.AssisterID)
	}

	eventData := map[string]interface{}{
		"matchId":   req.MatchID,
		"memberId":  req.MemberID,
		"team":      req.Team,
		"type":      req.Type,
		"minute":    req.Minute,
		"notes":     req.Notes,
		"createdAt": firestore.ServerTimestamp,
	}
	if wire := assister.WireOptional(); wire != nil {
		eventData["assisterId"] = *wire
	}

	eventID := uuidv7.New().String()
	if err := s.store.CreateMatchEvent(ctx, eventID, eventData); err != nil {
		return nil, err
	}

	if hasScoreEffect(req.Type) {
		s.propagateScore(ctx, req.MatchID, req.Type, req.Team, 1)
	}

	event, err := s.store.GetMatchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes an event, first mirroring its score effect back out of
// the parent match (floored at zero).
func (s *MatchesService) DeleteEvent(ctx context.Context, id string) error {
	event, err := s.store.GetMatchEvent(ctx, id)
	if err != nil {
		return err
	}

	if hasScoreEffect(event.Type) {
		s.propagateScore(ctx, event.MatchID, event.Type, event.Team, -1)
	}

	return s.store.DeleteMatchEvent(ctx, id)
}

// propagateScore applies a ±1 goal delta to the proper side of a match. A
// missing parent match is tolerated: the event stands on its own and the skip
// is only logged.
func (s *MatchesService) propagateScore(ctx context.Context, matchID, eventType, team string, delta int64) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		log.Printf("Skipping score update, match %s unavailable: %v\n", matchID, err)
		return
	}

	side, err := scoringSide(eventType, team)
	if err != nil {
		log.Printf("Skipping score update for match %s: %v\n", matchID, err)
		return
	}

	next := applyDelta(match.Score(side), delta)
	err = s.store.UpdateMatch(ctx, matchID, []firestore.Update{
		{Path: scorePath(side), Value: next},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		log.Printf("Failed to update score for match %s: %v\n", matchID, err)
	}
}

// RecountScores rebuilds a match's score fields from its surviving goal and
// own-goal events. Manual reconciliation, not run automatically.
func (s *MatchesService) RecountScores(ctx context.Context, matchID string) (*fsdb.Match, error) {
	if _, err := s.store.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}

	events, err := s.store.QueryMatchEvents(ctx, fsdb.EventFilter{MatchID: matchID})
	if err != nil {
		return nil, err
	}

	totals := recountScores(events)
	updates := make([]firestore.Update, 0, len(totals)+1)
	for path, total := range totals {
		updates = append(updates, firestore.Update{Path: path, Value: total})
	}
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if err := s.store.UpdateMatch(ctx, matchID, updates); err != nil {
		return nil, err
	}
	return s.store.GetMatch(ctx, matchID)
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
