package relay

// RelayUser identifies the messaging-platform user behind a webhook call.
type RelayUser struct {
	UserID string `json:"userId"`
}

// RelayRequest is the webhook payload. Params carries action-specific values,
// for link the code being redeemed.
type RelayRequest struct {
	Action      string            `json:"action" binding:"required"`
	UserRequest RelayUser         `json:"userRequest"`
	Params      map[string]string `json:"params"`
}

// RelayResponse is a plain-text reply. The platform-side template formatting
// happens outside this service.
type RelayResponse struct {
	Text string `json:"text"`
}
