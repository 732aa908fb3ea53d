package meeting

// CreateMeetingRequest represents a meeting being recorded. Dates accept
// RFC 3339 or a local "YYYY-MM-DDTHH:MM" as sent by datetime-local inputs.
type CreateMeetingRequest struct {
	CompanyID        uint   `json:"company_id" validate:"required"`
	MeetingWith      []uint `json:"meeting_with"`
	Participants     []uint `json:"participants"`
	Medium           string `json:"medium"`
	MeetingDate      string `json:"meeting_date" validate:"required"`
	DiscussedMatter  string `json:"discussed_matter"`
	Outcome          string `json:"outcome"`
	NextMeetingDate  string `json:"next_meeting_date"`
	NextMeetingTopic string `json:"next_meeting_topic"`
}
