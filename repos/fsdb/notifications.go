package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

// NotificationFilter enumerates the supported notification query predicates.
type NotificationFilter struct {
	UserID string
	IsRead *bool
}

func (f NotificationFilter) apply(q firestore.Query) firestore.Query {
	if f.UserID != "" {
		q = q.Where("userId", "==", f.UserID)
	}
	if f.IsRead != nil {
		q = q.Where("isRead", "==", *f.IsRead)
	}
	return q
}

func (s *Store) QueryNotifications(ctx context.Context, filter NotificationFilter, limit int) ([]*Notification, error) {
	docs, err := filter.apply(s.Client.Collection(ColNotifications).Query).
		OrderBy("createdAt", firestore.Desc).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	notifications := make([]*Notification, 0, len(docs))
	for _, doc := range docs {
		var notification Notification
		if err := doc.DataTo(&notification); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		notification.ID = doc.Ref.ID
		notifications = append(notifications, &notification)
	}
	return notifications, nil
}

func (s *Store) GetNotification(ctx context.Context, id string) (*Notification, error) {
	doc, err := s.Client.Collection(ColNotifications).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var notification Notification
	if err := doc.DataTo(&notification); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	notification.ID = doc.Ref.ID
	return &notification, nil
}

func (s *Store) CreateNotification(ctx context.Context, data map[string]interface{}) (string, error) {
	ref, _, err := s.Client.Collection(ColNotifications).Add(ctx, data)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

// NotificationRef returns a fresh document ref for batched fan-out writes.
func (s *Store) NotificationRef() *firestore.DocumentRef {
	return s.Client.Collection(ColNotifications).NewDoc()
}

func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := s.Client.Collection(ColNotifications).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (s *Store) DeleteNotification(ctx context.Context, id string) error {
	_, err := s.Client.Collection(ColNotifications).Doc(id).Delete(ctx)
	return err
}
