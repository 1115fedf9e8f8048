package teams

import (
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"
)

func TestTeamUpdatesOnlySetFields(t *testing.T) {
	updates := teamUpdates(UpdateTeamRequest{
		Name:  pointer.String("Reds"),
		Color: pointer.String("#ff0000"),
	})

	assert.Equal(t, []firestore.Update{
		{Path: "name", Value: "Reds"},
		{Path: "color", Value: "#ff0000"},
	}, updates)
}

func TestTeamUpdatesEmptyRequest(t *testing.T) {
	assert.Empty(t, teamUpdates(UpdateTeamRequest{}))
}
