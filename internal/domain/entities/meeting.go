package entities

import "time"

// MeetingType tells whether a follow-up meeting was planned
type MeetingType string

const (
	MeetingTypeNew      MeetingType = "new"
	MeetingTypeExisting MeetingType = "existing"
)

// Meeting is a recorded client meeting
type Meeting struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	CompanyID        uint        `json:"company_id" gorm:"not null;index"`
	Medium           string      `json:"medium" gorm:"type:varchar(100);not null;default:''"`
	MeetingDate      time.Time   `json:"meeting_date" gorm:"type:timestamptz;not null;index"`
	DiscussedMatter  string      `json:"discussed_matter" gorm:"type:text;not null;default:''"`
	Outcome          string      `json:"outcome" gorm:"type:text;not null;default:''"`
	NextMeetingDate  *time.Time  `json:"next_meeting_date" gorm:"type:timestamptz"`
	NextMeetingTopic string      `json:"next_meeting_topic" gorm:"type:text;not null;default:''"`
	CreatedBy        uint        `json:"created_by" gorm:"not null;index"`
	MeetingType      MeetingType `json:"meeting_type" gorm:"type:varchar(20);not null;default:'new'"`
	CreatedAt        time.Time   `json:"created_at" gorm:"autoCreateTime"`
}

// DeriveMeetingType returns existing when a next meeting is planned
func DeriveMeetingType(next *time.Time) MeetingType {
	if next != nil {
		return MeetingTypeExisting
	}
	return MeetingTypeNew
}

// MeetingWith links a meeting to a company contact that attended it
type MeetingWith struct {
	MeetingID uint `gorm:"primaryKey;autoIncrement:false"`
	ContactID uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName overrides the table name used by MeetingWith
func (MeetingWith) TableName() string {
	return "meeting_with"
}

// MeetingParticipant links a meeting to an internal user
type MeetingParticipant struct {
	MeetingID uint `gorm:"primaryKey;autoIncrement:false"`
	UserID    uint `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName overrides the table name used by MeetingParticipant
func (MeetingParticipant) TableName() string {
	return "meeting_participants"
}

// MeetingSummary is a meeting joined with the names of the company, the
// contacts met and the participating users
type MeetingSummary struct {
	Meeting
	CompanyName  *string `json:"company_name"`
	MeetingWith  *string `json:"meeting_with"`
	Participants *string `json:"participants,omitempty"`
}
