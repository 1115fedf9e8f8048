package notify

// Message is one notification to fan out. A nil UserID means broadcast.
type Message struct {
	UserID    *string
	Type      string
	Title     string
	Content   string
	RelatedID *string
}
