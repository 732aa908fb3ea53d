package minutes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
)

// Service defines the interface for meeting minutes
type Service interface {
	Create(ctx context.Context, callerID uint, input CreateInput) (*entities.MeetingMinutes, error)
	List(ctx context.Context) ([]*entities.MeetingMinutes, error)
	Get(ctx context.Context, id uint) (*entities.MeetingMinutes, error)
}

// CreateInput represents submitted minutes. CreatedBy is optional and
// falls back to the caller.
type CreateInput struct {
	Summary     string
	Decisions   string
	ActionItems []string
	Attendees   []string
	CreatedBy   uint
}

// MinutesService handles meeting minutes
type MinutesService struct {
	minutesRepo repositories.MinutesRepository
	logger      *zap.Logger
}

var _ Service = (*MinutesService)(nil)

// NewMinutesService creates a new minutes service
func NewMinutesService(minutesRepo repositories.MinutesRepository, logger *zap.Logger) *MinutesService {
	return &MinutesService{minutesRepo: minutesRepo, logger: logger}
}

func (s *MinutesService) Create(ctx context.Context, callerID uint, input CreateInput) (*entities.MeetingMinutes, error) {
	if strings.TrimSpace(input.Summary) == "" {
		return nil, usecaseErrors.ErrSummaryRequired
	}

	createdBy := input.CreatedBy
	if createdBy == 0 {
		createdBy = callerID
	}

	m := entities.NewMeetingMinutes(input.Summary, input.Decisions, input.ActionItems, input.Attendees, createdBy)
	if err := s.minutesRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save minutes: %w", err)
	}

	s.logger.Info("minutes saved", zap.Uint("minutes_id", m.ID), zap.Uint("created_by", createdBy))
	return m, nil
}

func (s *MinutesService) List(ctx context.Context) ([]*entities.MeetingMinutes, error) {
	list, err := s.minutesRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch minutes: %w", err)
	}
	if list == nil {
		list = []*entities.MeetingMinutes{}
	}
	return list, nil
}

func (s *MinutesService) Get(ctx context.Context, id uint) (*entities.MeetingMinutes, error) {
	m, err := s.minutesRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrMinutesNotFound) {
			return nil, usecaseErrors.ErrMinutesNotFound
		}
		return nil, fmt.Errorf("failed to fetch minutes: %w", err)
	}
	return m, nil
}
