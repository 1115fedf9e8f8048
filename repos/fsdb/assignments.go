package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

func (s *Store) GetTeamAssignment(ctx context.Context, id string) (*TeamAssignment, error) {
	doc, err := s.Client.Collection(ColTeamAssignments).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var assignment TeamAssignment
	if err := doc.DataTo(&assignment); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	assignment.ID = doc.Ref.ID
	return &assignment, nil
}

// TeamAssignmentForMatch returns the single assignment for a match, or
// ErrNotFound when none exists. At most one assignment per match is maintained
// by look-up-before-write in the attendance service.
func (s *Store) TeamAssignmentForMatch(ctx context.Context, matchID string) (*TeamAssignment, error) {
	docs, err := s.Client.Collection(ColTeamAssignments).
		Where("matchId", "==", matchID).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}

	var assignment TeamAssignment
	if err := docs[0].DataTo(&assignment); err != nil {
		return nil, decodeError(docs[0].Ref.ID, err)
	}
	assignment.ID = docs[0].Ref.ID
	return &assignment, nil
}

func (s *Store) AllTeamAssignments(ctx context.Context) ([]*TeamAssignment, error) {
	docs, err := s.Client.Collection(ColTeamAssignments).Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	assignments := make([]*TeamAssignment, 0, len(docs))
	for _, doc := range docs {
		var assignment TeamAssignment
		if err := doc.DataTo(&assignment); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		assignment.ID = doc.Ref.ID
		assignments = append(assignments, &assignment)
	}
	return assignments, nil
}

func (s *Store) CreateTeamAssignment(ctx context.Context, data map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(ColTeamAssignments).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *Store) UpdateTeamAssignment(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := s.Client.Collection(ColTeamAssignments).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (s *Store) DeleteTeamAssignment(ctx context.Context, id string) error {
	_, err := s.Client.Collection(ColTeamAssignments).Doc(id).Delete(ctx)
	return err
}
