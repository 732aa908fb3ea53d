package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
)

type minutesRepository struct {
	db *gorm.DB
}

// NewMinutesRepository creates a new meeting minutes repository
func NewMinutesRepository(db *gorm.DB) repositories.MinutesRepository {
	return &minutesRepository{db: db}
}

func (r *minutesRepository) Create(ctx context.Context, minutes *entities.MeetingMinutes) error {
	if err := r.db.WithContext(ctx).Create(minutes).Error; err != nil {
		return fmt.Errorf("failed to create meeting minutes: %w", err)
	}
	return nil
}

func (r *minutesRepository) FindByID(ctx context.Context, id uint) (*entities.MeetingMinutes, error) {
	var minutes entities.MeetingMinutes
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&minutes).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrMinutesNotFound
		}
		return nil, fmt.Errorf("failed to find meeting minutes: %w", err)
	}
	return &minutes, nil
}

// List returns all minutes, newest first
func (r *minutesRepository) List(ctx context.Context) ([]*entities.MeetingMinutes, error) {
	var list []*entities.MeetingMinutes
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list meeting minutes: %w", err)
	}
	return list, nil
}
