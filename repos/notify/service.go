package notify

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	resend "github.com/resend/resend-go/v2"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

// Service writes notification documents for members. Callers treat it as a
// best-effort side channel: fan-out failures are logged and never abort the
// state change that triggered them.
type Service struct {
	store        *fsdb.Store
	resendClient *resend.Client
	mailFrom     string
	mailTo       string
}

// NewService creates the fan-out service. resendKey may be empty, which
// disables the email digest for important notices.
func NewService(store *fsdb.Store, resendKey, mailFrom, mailTo string) *Service {
	s := &Service{
		store:    store,
		mailFrom: mailFrom,
		mailTo:   mailTo,
	}
	if resendKey != "" {
		s.resendClient = resend.NewClient(resendKey)
	}
	return s
}

// SendToMember writes a single notification document for one member.
func (s *Service) SendToMember(ctx context.Context, memberID string, msg Message) error {
	_, err := s.store.CreateNotification(ctx, map[string]interface{}{
		"userId":    memberID,
		"type":      msg.Type,
		"title":     msg.Title,
		"content":   msg.Content,
		"relatedId": msg.RelatedID,
		"isRead":    false,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		log.Printf("Failed to write notification for member %s: %v\n", memberID, err)
		return err
	}
	return nil
}

// Broadcast writes one notification document per active member in a single
// batch and returns how many were written.
func (s *Service) Broadcast(ctx context.Context, msg Message) (int, error) {
	members, err := s.store.ActiveMembers(ctx)
	if err != nil {
		log.Printf("Failed to list members for broadcast: %v\n", err)
		return 0, err
	}

	batch := s.store.Batch()
	for _, member := range members {
		batch.Set(s.store.NotificationRef(), map[string]interface{}{
			"userId":    member.ID,
			"type":      msg.Type,
			"title":     msg.Title,
			"content":   msg.Content,
			"relatedId": msg.RelatedID,
			"isRead":    false,
			"createdAt": firestore.ServerTimestamp,
		})
	}

	if len(members) > 0 {
		if _, err := batch.Commit(ctx); err != nil {
			log.Printf("Failed to commit notification broadcast: %v\n", err)
			return 0, err
		}
	}
	return len(members), nil
}

// BroadcastAsync fires a broadcast without making the caller wait on it.
func (s *Service) BroadcastAsync(msg Message) {
	go func() {
		ctx := context.Background()
		count, err := s.Broadcast(ctx, msg)
		if err != nil {
			return
		}
		log.Printf("Notifications sent to %d members\n", count)
	}()
}

// NotifyMembers writes one notification per listed member, sequentially.
// Failures are logged per member and do not stop the rest.
func (s *Service) NotifyMembers(ctx context.Context, memberIDs []string, msg Message) {
	for _, memberID := range memberIDs {
		if err := s.SendToMember(ctx, memberID, msg); err != nil {
			log.Printf("Skipping member %s after notification failure\n", memberID)
		}
	}
}

// MailImportantNotice sends an email digest for an important notice. Best
// effort: a missing client or a send failure only logs.
func (s *Service) MailImportantNotice(title, content string) {
	if s.resendClient == nil || s.mailTo == "" {
		return
	}

	params := &resend.SendEmailRequest{
		From:    s.mailFrom,
		To:      []string{s.mailTo},
		Subject: fmt.Sprintf("Notice: %s", title),
		Html:    noticeMailTemplate(title, content),
	}

	if _, err := s.resendClient.Emails.Send(params); err != nil {
		log.Printf("Failed to send notice mail: %v\n", err)
	}
}

func noticeMailTemplate(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>%s</h2>
        <p>%s</p>
        <p style="color: #888;">Sent by club-sync</p>
    </div>
</body>
</html>`, title, content)
}
