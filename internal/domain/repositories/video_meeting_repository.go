package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// VideoMeetingRepository defines the interface for locally mirrored Zoom meetings
type VideoMeetingRepository interface {
	Create(ctx context.Context, meeting *entities.VideoMeeting) error

	// ListByCreator returns the user's meetings, latest start first
	ListByCreator(ctx context.Context, userID uint) ([]*entities.VideoMeeting, error)
}
