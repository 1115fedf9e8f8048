package notices

// ListNoticesQuery carries the supported list filters. Deactivated notices are
// hidden unless asked for.
type ListNoticesQuery struct {
	ImportantOnly   bool
	IncludeInactive bool
}

// CreateNoticeRequest publishes a new notice. Important notices fan out a
// broadcast notification and an email digest.
type CreateNoticeRequest struct {
	Title       string   `json:"title" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Important   bool     `json:"important"`
	Attachments []string `json:"attachments"`
	AuthorID    *string  `json:"authorId"`
}

// UpdateNoticeRequest patches individual notice fields.
type UpdateNoticeRequest struct {
	Title       *string   `json:"title"`
	Content     *string   `json:"content"`
	Important   *bool     `json:"important"`
	Attachments *[]string `json:"attachments"`
}

// ListNotificationsQuery carries the notification list filters.
type ListNotificationsQuery struct {
	UserID     string
	UnreadOnly bool
	Limit      int
}
