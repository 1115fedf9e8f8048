package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

// MemberFilter enumerates the supported member query predicates.
type MemberFilter struct {
	TeamID   string
	IsActive *bool
}

func (f MemberFilter) apply(q firestore.Query) firestore.Query {
	if f.TeamID != "" {
		q = q.Where("teamId", "==", f.TeamID)
	}
	if f.IsActive != nil {
		q = q.Where("isActive", "==", *f.IsActive)
	}
	return q
}

func (s *Store) GetMember(ctx context.Context, id string) (*Member, error) {
	doc, err := s.Client.Collection(ColMembers).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var member Member
	if err := doc.DataTo(&member); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	member.ID = doc.Ref.ID
	return &member, nil
}

func (s *Store) QueryMembers(ctx context.Context, filter MemberFilter) ([]*Member, error) {
	docs, err := filter.apply(s.Client.Collection(ColMembers).Query).
		OrderBy("name", firestore.Asc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	members := make([]*Member, 0, len(docs))
	for _, doc := range docs {
		var member Member
		if err := doc.DataTo(&member); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		member.ID = doc.Ref.ID
		members = append(members, &member)
	}
	return members, nil
}

// ActiveMembers lists members that are not soft-deleted. This is the
// enumeration source for statistics recomputation and notification fan-out.
func (s *Store) ActiveMembers(ctx context.Context) ([]*Member, error) {
	active := true
	return s.QueryMembers(ctx, MemberFilter{IsActive: &active})
}

func (s *Store) CreateMember(ctx context.Context, data map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(ColMembers).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// MemberRef returns a fresh document ref in the members collection. Used by
// the bulk import batch.
func (s *Store) MemberRef() *firestore.DocumentRef {
	return s.Client.Collection(ColMembers).NewDoc()
}

func (s *Store) UpdateMember(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := s.Client.Collection(ColMembers).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

// DeleteMember removes the document permanently. Soft delete goes through
// UpdateMember with isActive=false instead.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	_, err := s.Client.Collection(ColMembers).Doc(id).Delete(ctx)
	return err
}
