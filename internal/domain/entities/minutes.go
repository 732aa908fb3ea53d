package entities

import (
	"time"

	"gorm.io/datatypes"
)

// MeetingMinutes are the written record of a meeting. They are never edited
// after creation.
type MeetingMinutes struct {
	ID          uint                        `json:"id" gorm:"primaryKey"`
	Summary     string                      `json:"summary" gorm:"type:text;not null"`
	Decisions   string                      `json:"decisions" gorm:"type:text;not null;default:''"`
	ActionItems datatypes.JSONSlice[string] `json:"action_items" gorm:"type:jsonb;not null;default:'[]'"`
	Attendees   datatypes.JSONSlice[string] `json:"attendees" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedBy   uint                        `json:"created_by" gorm:"not null;index"`
	CreatedAt   time.Time                   `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by MeetingMinutes
func (MeetingMinutes) TableName() string {
	return "meeting_minutes"
}

// NewMeetingMinutes builds minutes, keeping list order and never storing null lists
func NewMeetingMinutes(summary, decisions string, actionItems, attendees []string, createdBy uint) *MeetingMinutes {
	return &MeetingMinutes{
		Summary:     summary,
		Decisions:   decisions,
		ActionItems: nonNil(actionItems),
		Attendees:   nonNil(attendees),
		CreatedBy:   createdBy,
	}
}

func nonNil(items []string) datatypes.JSONSlice[string] {
	if items == nil {
		return datatypes.JSONSlice[string]{}
	}
	out := make(datatypes.JSONSlice[string], len(items))
	copy(out, items)
	return out
}
