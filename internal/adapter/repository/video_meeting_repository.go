package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
)

type videoMeetingRepository struct {
	db *gorm.DB
}

// NewVideoMeetingRepository creates a repository for locally stored Zoom meetings
func NewVideoMeetingRepository(db *gorm.DB) repositories.VideoMeetingRepository {
	return &videoMeetingRepository{db: db}
}

func (r *videoMeetingRepository) Create(ctx context.Context, meeting *entities.VideoMeeting) error {
	if err := r.db.WithContext(ctx).Create(meeting).Error; err != nil {
		return fmt.Errorf("failed to save video meeting: %w", err)
	}
	return nil
}

func (r *videoMeetingRepository) ListByCreator(ctx context.Context, userID uint) ([]*entities.VideoMeeting, error) {
	var meetings []*entities.VideoMeeting
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("start_time DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list video meetings: %w", err)
	}
	return meetings, nil
}
