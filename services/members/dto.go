package members

// ListMembersQuery carries the supported list filters. Inactive members are
// hidden unless asked for.
type ListMembersQuery struct {
	TeamID          string
	IncludeInactive bool
}

// CreateMemberRequest registers a single member.
type CreateMemberRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	TeamID       *string `json:"teamId"`
	Position     string  `json:"position"`
	JerseyNumber int     `json:"jerseyNumber"`
	PhotoURL     *string `json:"photoURL"`
}

// UpdateMemberRequest patches individual member fields.
type UpdateMemberRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	TeamID       *string `json:"teamId"`
	Position     *string `json:"position"`
	JerseyNumber *int    `json:"jerseyNumber"`
	PhotoURL     *string `json:"photoURL"`
	IsActive     *bool   `json:"isActive"`
}

// BulkImportRequest registers many members in one call.
type BulkImportRequest struct {
	Members []CreateMemberRequest `json:"members" binding:"required"`
}
