package entities

import "time"

// VideoMeetingType mirrors Zoom's meeting type codes
type VideoMeetingType int

const (
	VideoMeetingInstant   VideoMeetingType = 1
	VideoMeetingScheduled VideoMeetingType = 2
)

// IsValid checks if the meeting type is one we create
func (t VideoMeetingType) IsValid() bool {
	return t == VideoMeetingInstant || t == VideoMeetingScheduled
}

// VideoMeeting is the local copy of a meeting created on Zoom. Zoom remains
// the source of truth; this row is only written after the remote create.
type VideoMeeting struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	Topic         string           `json:"topic" gorm:"type:varchar(300);not null"`
	StartTime     time.Time        `json:"start_time" gorm:"type:timestamptz;not null;index"`
	Duration      int              `json:"duration" gorm:"not null"`
	Type          VideoMeetingType `json:"type" gorm:"not null"`
	ZoomMeetingID string           `json:"zoom_meeting_id" gorm:"type:varchar(64);not null"`
	JoinURL       string           `json:"join_url" gorm:"type:text;not null"`
	CreatedBy     uint             `json:"created_by" gorm:"not null;index"`
	CreatedAt     time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// TableName overrides the table name used by VideoMeeting
func (VideoMeeting) TableName() string {
	return "zoom_meetings"
}
