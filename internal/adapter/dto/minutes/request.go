package minutes

// CreateMinutesRequest represents submitted minutes. CreatedBy falls back
// to the signed-in user when zero.
type CreateMinutesRequest struct {
	Summary     string   `json:"summary" validate:"required"`
	Decisions   string   `json:"decisions"`
	ActionItems []string `json:"action_items"`
	Attendees   []string `json:"attendees"`
	CreatedBy   uint     `json:"created_by"`
}
