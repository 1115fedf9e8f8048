package fsdb

import (
	"context"

	"cloud.google.com/go/firestore"
)

// Leaderboard sort fields, keyed by the category names the API accepts.
var statSortFields = map[string]string{
	"goals":          "totalGoals",
	"assists":        "totalAssists",
	"attendance":     "attendanceRate",
	"attendanceRate": "attendanceRate",
	"winRate":        "winRate",
}

// StatSortField maps a leaderboard category to its document field, defaulting
// to goals for unknown categories.
func StatSortField(category string) string {
	if field, ok := statSortFields[category]; ok {
		return field
	}
	return "totalGoals"
}

func (s *Store) GetStatistics(ctx context.Context, memberID string) (*Statistics, error) {
	doc, err := s.Client.Collection(ColStatistics).Doc(memberID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var stats Statistics
	if err := doc.DataTo(&stats); err != nil {
		return nil, decodeError(doc.Ref.ID, err)
	}
	return &stats, nil
}

// TopStatistics returns statistics documents ordered descending by the given
// field. Order among tied values follows store order and is not stable.
func (s *Store) TopStatistics(ctx context.Context, sortField string, limit, offset int) ([]*Statistics, error) {
	docs, err := s.Client.Collection(ColStatistics).
		OrderBy(sortField, firestore.Desc).
		Offset(offset).
		Limit(limit).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}

	results := make([]*Statistics, 0, len(docs))
	for _, doc := range docs {
		var stats Statistics
		if err := doc.DataTo(&stats); err != nil {
			return nil, decodeError(doc.Ref.ID, err)
		}
		results = append(results, &stats)
	}
	return results, nil
}

// MergeStatistics writes the aggregate fields for a member, creating the
// document when absent and leaving untouched fields alone.
func (s *Store) MergeStatistics(ctx context.Context, memberID string, data map[string]interface{}) error {
	_, err := s.Client.Collection(ColStatistics).Doc(memberID).Set(ctx, data, firestore.MergeAll)
	return err
}
