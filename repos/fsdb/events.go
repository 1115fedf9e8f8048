package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

// EventFilter enumerates the supported match-event query predicates.
type EventFilter struct {
	MatchID    string
	MemberID   string
	AssisterID string
	Type       string
}

func (f EventFilter) apply(q firestore.Query) firestore.Query {
	if f.MatchID != "" {
		q = q.Where("matchId", "==", f.MatchID)
	}
	if f.MemberID != "" {
		q = q.Where("memberId", "==", f.MemberID)
	}
	if f.AssisterID != "" {
		q = q.Where("assisterId", "==", f.AssisterID)
	}
	if f.Type != "" {
		q = q.Where("type", "==", f.Type)
	}
	return q
}

func (s *Store) GetMatchEvent(ctx context.Context, id string) (*MatchEvent, error) {
	doc, err := s.Client.Collection(ColMatchEvents).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var event MatchEvent
	if err := doc.DataTo(&event); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	event.ID = doc.Ref.ID
	return &event, nil
}

func (s *Store) QueryMatchEvents(ctx context.Context, filter EventFilter) ([]*MatchEvent, error) {
	docs, err := filter.apply(s.Client.Collection(ColMatchEvents).Query).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	events := make([]*MatchEvent, 0, len(docs))
	for _, doc := range docs {
		var event MatchEvent
		if err := doc.DataTo(&event); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		event.ID = doc.Ref.ID
		events = append(events, &event)
	}
	return events, nil
}

// CreateMatchEvent writes the event under the supplied document id.
func (s *Store) CreateMatchEvent(ctx context.Context, id string, data map[string]interface{}) error {
	_, err := s.Client.Collection(ColMatchEvents).Doc(id).Set(ctx, data)
	return err
}

func (s *Store) DeleteMatchEvent(ctx context.Context, id string) error {
	_, err := s.Client.Collection(ColMatchEvents).Doc(id).Delete(ctx)
	return err
}
