package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

func (s *Store) GetTeam(ctx context.Context, id string) (*Team, error) {
	doc, err := s.Client.Collection(ColTeams).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var team Team
	if err := doc.DataTo(&team); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	team.ID = doc.Ref.ID
	return &team, nil
}

func (s *Store) QueryTeams(ctx context.Context, isActive *bool) ([]*Team, error) {
	q := s.Client.Collection(ColTeams).Query
	if isActive != nil {
		q = q.Where("isActive", "==", *isActive)
	}
	docs, err := q.OrderBy("name", firestore.Asc).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	teams := make([]*Team, 0, len(docs))
	for _, doc := range docs {
		var team Team
		if err := doc.DataTo(&team); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		team.ID = doc.Ref.ID
		teams = append(teams, &team)
	}
	return teams, nil
}

func (s *Store) CreateTeam(ctx context.Context, data map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(ColTeams).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *Store) UpdateTeam(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := s.Client.Collection(ColTeams).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}
