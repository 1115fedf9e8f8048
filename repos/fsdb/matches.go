package fsdb

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
)

// MatchFilter enumerates the supported match query predicates.
type MatchFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

func (f MatchFilter) apply(q firestore.Query) firestore.Query {
	if f.Status != "" {
		q = q.Where("status", "==", f.Status)
	}
	if f.From != nil {
		q = q.Where("date", ">=", *f.From)
	}
	if f.To != nil {
		q = q.Where("date", "<=", *f.To)
	}
	return q
}

func (s *Store) GetMatch(ctx context.Context, id string) (*Match, error) {
	doc, err := s.Client.Collection(ColMatches).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var match Match
	if err := doc.DataTo(&match); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	match.ID = doc.Ref.ID
	return &match, nil
}

func (s *Store) QueryMatches(ctx context.Context, filter MatchFilter) ([]*Match, error) {
	docs, err := filter.apply(s.Client.Collection(ColMatches).Query).
		OrderBy("date", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	matches := make([]*Match, 0, len(docs))
	for _, doc := range docs {
		var match Match
		if err := doc.DataTo(&match); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		match.ID = doc.Ref.ID
		matches = append(matches, &match)
	}
	return matches, nil
}

// CountMatchesOn counts matches whose date falls on the given day. Used to
// assign matchNumber when several matches share a date.
func (s *Store) CountMatchesOn(ctx context.Context, dayStart, dayEnd time.Time) (int, error) {
	docs, err := s.Client.Collection(ColMatches).
		Where("date", ">=", dayStart).
		Where("date", "<=", dayEnd).
		Documents(ctx).
		GetAll()
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}

func (s *Store) CreateMatch(ctx context.Context, data map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(ColMatches).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *Store) UpdateMatch(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := s.Client.Collection(ColMatches).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}
