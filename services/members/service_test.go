package members

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	"github.com/sundayfc/club-sync/repos/fsdb"
)

func TestValidPosition(t *testing.T) {
	assert.True(t, validPosition(fsdb.PositionForward))
	assert.True(t, validPosition(fsdb.PositionMidfielder))
	assert.True(t, validPosition(fsdb.PositionDefender))
	assert.True(t, validPosition(fsdb.PositionGoalkeeper))
	assert.True(t, validPosition(""), "position is optional")
	assert.False(t, validPosition("ST"))
}

func TestMemberUpdatesOnlySetFields(t *testing.T) {
	updates := memberUpdates(UpdateMemberRequest{
		Name:         pointer.String("Kim"),
		JerseyNumber: pointer.Int(10),
	})

	assert.Equal(t, []firestore.Update{
		{Path: "name", Value: "Kim"},
		{Path: "jerseyNumber", Value: 10},
	}, updates)
}

func TestMemberUpdatesEmptyRequest(t *testing.T) {
	assert.Empty(t, memberUpdates(UpdateMemberRequest{}))
}

func TestMemberUpdatesDeactivation(t *testing.T) {
	updates := memberUpdates(UpdateMemberRequest{IsActive: pointer.Bool(false)})

	assert.Equal(t, []firestore.Update{
		{Path: "isActive", Value: false},
	}, updates)
}

func TestMemberDataDefaults(t *testing.T) {
	data := memberData(CreateMemberRequest{
		Name:     "Kim",
		Position: fsdb.PositionForward,
	})

	assert.Equal(t, true, data["isActive"])
	assert.Equal(t, "Kim", data["name"])
	assert.Equal(t, fsdb.PositionForward, data["position"])
	assert.Nil(t, data["phone"])
	assert.Nil(t, data["teamId"])
}
