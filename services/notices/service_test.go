package notices

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"
)

func TestNoticeUpdatesOnlySetFields(t *testing.T) {
	updates := noticeUpdates(UpdateNoticeRequest{
		Title:     pointer.String("Season kickoff"),
		Important: pointer.Bool(true),
	})

	assert.Equal(t, []firestore.Update{
		{Path: "title", Value: "Season kickoff"},
		{Path: "important", Value: true},
	}, updates)
}

func TestNoticeUpdatesEmptyRequest(t *testing.T) {
	assert.Empty(t, noticeUpdates(UpdateNoticeRequest{}))
}

func TestNoticeUpdatesClearsAttachments(t *testing.T) {
	attachments := []string{}
	updates := noticeUpdates(UpdateNoticeRequest{Attachments: &attachments})

	assert.Equal(t, []firestore.Update{
		{Path: "attachments", Value: []string{}},
	}, updates)
}
