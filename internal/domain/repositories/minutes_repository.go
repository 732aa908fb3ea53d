package repositories

import (
	"context"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// MinutesRepository defines the interface for meeting minutes data access
type MinutesRepository interface {
	Create(ctx context.Context, minutes *entities.MeetingMinutes) error
	FindByID(ctx context.Context, id uint) (*entities.MeetingMinutes, error)
	List(ctx context.Context) ([]*entities.MeetingMinutes, error)
}
