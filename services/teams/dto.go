package teams

import (
	"github.com/sundayfc/club-sync/repos/fsdb"
)

// CreateTeamRequest registers a new team.
type CreateTeamRequest struct {
	Name        string  `json:"name" binding:"required"`
	Color       string  `json:"color" binding:"required"`
	Description *string `json:"description"`
	CaptainID   *string `json:"captainId"`
}

// UpdateTeamRequest patches individual team fields.
type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	CaptainID   *string `json:"captainId"`
	IsActive    *bool   `json:"isActive"`
}

// TeamView is a team with its current members joined in.
type TeamView struct {
	*fsdb.Team
	Members []*fsdb.Member `json:"members"`
}
