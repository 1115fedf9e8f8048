package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

// NoticeFilter enumerates the supported notice query predicates.
type NoticeFilter struct {
	Important *bool
	IsActive  *bool
}

func (f NoticeFilter) apply(q firestore.Query) firestore.Query {
	if f.Important != nil {
		q = q.Where("important", "==", *f.Important)
	}
	if f.IsActive != nil {
		q = q.Where("isActive", "==", *f.IsActive)
	}
	return q
}

func (s *Store) GetNotice(ctx context.Context, id string) (*Notice, error) {
	doc, err := s.Client.Collection(ColNotices).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var notice Notice
	if err := doc.DataTo(&notice); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	notice.ID = doc.Ref.ID
	return &notice, nil
}

func (s *Store) QueryNotices(ctx context.Context, filter NoticeFilter) ([]*Notice, error) {
	docs, err := filter.apply(s.Client.Collection(ColNotices).Query).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	notices := make([]*Notice, 0, len(docs))
	for _, doc := range docs {
		var notice Notice
		if err := doc.DataTo(&notice); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		notice.ID = doc.Ref.ID
		notices = append(notices, &notice)
	}
	return notices, nil
}

func (s *Store) CreateNotice(ctx context.Context, data map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(ColNotices).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *Store) UpdateNotice(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := s.Client.Collection(ColNotices).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}
