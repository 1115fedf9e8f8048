package notices

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/sundayfc/club-sync/repos/fsdb"
	"github.com/sundayfc/club-sync/repos/notify"
)

// NoticesService manages authored notices and the per-member notification
// inbox. Publishing an important notice fans out a broadcast notification and
// an email digest, both best-effort.
type NoticesService struct {
	store         *fsdb.Store
	notifyService *notify.Service
}

// NewNoticesService creates a new notices service.
func NewNoticesService(store *fsdb.Store, notifyService *notify.Service) *NoticesService {
	return &NoticesService{
		store:         store,
		notifyService: notifyService,
	}
}

func (s *NoticesService) ListNotices(ctx context.Context, query ListNoticesQuery) ([]*fsdb.Notice, error) {
	filter := fsdb.NoticeFilter{}
	if query.ImportantOnly {
		important := true
		filter.Important = &important
	}
	if !query.IncludeInactive {
		active := true
		filter.IsActive = &active
	}
	return s.store.QueryNotices(ctx, filter)
}

func (s *NoticesService) GetNotice(ctx context.Context, id string) (*fsdb.Notice, error) {
	return s.store.GetNotice(ctx, id)
}

func (s *NoticesService) CreateNotice(ctx context.Context, req CreateNoticeRequest) (*fsdb.Notice, error) {
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	id, err := s.store.CreateNotice(ctx, map[string]interface{}{
		"title":       req.Title,
		"content":     req.Content,
		"important":   req.Important,
		"attachments": attachments,
		"authorId":    req.AuthorID,
		"isActive":    true,
		"createdAt":   firestore.ServerTimestamp,
		"updatedAt":   firestore.ServerTimestamp,
	})
	if err != nil {
		return nil, err
	}

	if req.Important {
		s.notifyService.BroadcastAsync(notify.Message{
			Type:      fsdb.NotifyNotice,
			Title:     req.Title,
			Content:   req.Content,
			RelatedID: &id,
		})
		go s.notifyService.MailImportantNotice(req.Title, req.Content)
	}

	return s.store.GetNotice(ctx, id)
}

func (s *NoticesService) UpdateNotice(ctx context.Context, id string, req UpdateNoticeRequest) (*fsdb.Notice, error) {
	updates := noticeUpdates(req)
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp})

	if err := s.store.UpdateNotice(ctx, id, updates); err != nil {
		return nil, err
	}
	return s.store.GetNotice(ctx, id)
}

// DeactivateNotice soft-deletes a notice.
func (s *NoticesService) DeactivateNotice(ctx context.Context, id string) error {
	return s.store.UpdateNotice(ctx, id, []firestore.Update{
		{Path: "isActive", Value: false},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
}

func (s *NoticesService) ListNotifications(ctx context.Context, query ListNotificationsQuery) ([]*fsdb.Notification, error) {
	filter := fsdb.NotificationFilter{UserID: query.UserID}
	if query.UnreadOnly {
		unread := false
		filter.IsRead = &unread
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.store.QueryNotifications(ctx, filter, limit)
}

func (s *NoticesService) MarkNotificationRead(ctx context.Context, id string) error {
	return s.store.MarkNotificationRead(ctx, id)
}

func (s *NoticesService) DeleteNotification(ctx context.Context, id string) error {
	if _, err := s.store.GetNotification(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteNotification(ctx, id)
}

func noticeUpdates(req UpdateNoticeRequest) []firestore.Update {
	var updates []firestore.Update
	if req.Title != nil {
		updates = append(updates, firestore.Update{Path: "title", Value: *req.Title})
	}
	if req.Content != nil {
		updates = append(updates, firestore.Update{Path: "content", Value: *req.Content})
	}
	if req.Important != nil {
		updates = append(updates, firestore.Update{Path: "important", Value: *req.Important})
	}
	if req.Attachments != nil {
		updates = append(updates, firestore.Update{Path: "attachments", Value: *req.Attachments})
	}
	return updates
}
