package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create inserts the meeting together with its contact and participant links
	Create(ctx context.Context, meeting *entities.Meeting, contactIDs, participantIDs []uint) error

	// ListSummaries returns all meetings with joined names, ordered by meeting date
	ListSummaries(ctx context.Context, ascending bool) ([]*entities.MeetingSummary, error)

	// ListForUser returns meetings the user takes part in or created
	ListForUser(ctx context.Context, userID uint) ([]*entities.MeetingSummary, error)

	// ListForParticipantBetween returns the user's meetings with from <= meeting_date < to
	ListForParticipantBetween(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Meeting, error)
}
