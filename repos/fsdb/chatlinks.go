package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

func (s *Store) GetChatLink(ctx context.Context, userID string) (*ChatLink, error) {
	doc, err := s.Client.Collection(ColChatLinks).Doc(userID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var link ChatLink
	if err := doc.DataTo(&link); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	link.UserID = doc.Ref.ID
	return &link, nil
}

// PutChatLink binds a chat user to a member, replacing any previous binding.
func (s *Store) PutChatLink(ctx context.Context, userID, memberID string) error {
	_, err := s.Client.Collection(ColChatLinks).Doc(userID).Set(ctx, map[string]interface{}{
		"memberId": memberID,
		"linkedAt": firestore.ServerTimestamp,
	})
	return err
}
