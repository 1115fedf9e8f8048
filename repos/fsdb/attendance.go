package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

// AttendanceFilter enumerates the supported attendance query predicates.
type AttendanceFilter struct {
	MatchID  string
	MemberID string
	Status   string
}

func (f AttendanceFilter) apply(q firestore.Query) firestore.Query {
	if f.MatchID != "" {
		q = q.Where("matchId", "==", f.MatchID)
	}
	if f.MemberID != "" {
		q = q.Where("memberId", "==", f.MemberID)
	}
	if f.Status != "" {
		q = q.Where("status", "==", f.Status)
	}
	return q
}

func (s *Store) GetAttendance(ctx context.Context, id string) (*Attendance, error) {
	doc, err := s.Client.Collection(ColAttendances).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var att Attendance
	if err := doc.DataTo(&att); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	att.ID = doc.Ref.ID
	return &att, nil
}

func (s *Store) QueryAttendances(ctx context.Context, filter AttendanceFilter) ([]*Attendance, error) {
	docs, err := filter.apply(s.Client.Collection(ColAttendances).Query).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	attendances := make([]*Attendance, 0, len(docs))
	for _, doc := range docs {
		var att Attendance
		if err := doc.DataTo(&att); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		att.ID = doc.Ref.ID
		attendances = append(attendances, &att)
	}
	return attendances, nil
}

func (s *Store) UpdateAttendance(ctx context.Context, id string, updates []firestore.Update) error {
	_, err := s.Client.Collection(ColAttendances).Doc(id).Update(ctx, updates)
	if isNotFound(err) {
		return ErrNotFound
	}
	return err
}

// AttendanceRef returns a document ref in the attendances collection, a fresh
// one when id is empty. Used by batch upserts.
func (s *Store) AttendanceRef(id string) *firestore.DocumentRef {
	if id == "" {
		return s.Client.Collection(ColAttendances).NewDoc()
	}
	return s.Client.Collection(ColAttendances).Doc(id)
}
