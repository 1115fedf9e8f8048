package fsdb

import (
	"errors"

	"cloud.google.com/go/firestore"
	"golang.org/x/xerrors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names. These match the documents the mobile client reads, so they
// must not change without a data migration.
const (
	ColMembers         = "members"
	ColTeams           = "teams"
	ColMatches         = "matches"
	ColMatchEvents     = "matchEvents"
	ColAttendances     = "attendances"
	ColTeamAssignments = "teamAssignments"
	ColStatistics      = "statistics"
	ColNotices         = "notices"
	ColNotifications   = "notifications"
	ColChatLinks       = "chatLinks"
)

// ErrNotFound is returned when a document that an operation requires does not exist.
var ErrNotFound = errors.New("document not found")

// Store wraps the Firestore client with typed access to the app's collections.
type Store struct {
	Client *firestore.Client
}

func NewStore(client *firestore.Client) *Store {
	return &Store{Client: client}
}

// Batch starts a write batch. All writes added to it commit atomically.
func (s *Store) Batch() *firestore.WriteBatch {
	return s.Client.Batch()
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func decodeError(docID string, err error) error {
	// If this fails, we have an inconsistency error as we control both the data
	// written to Firestore and the shape of our document structs.
	return xerrors.Errorf("consistency error. decoding document %s failed: %w", docID, err)
}
