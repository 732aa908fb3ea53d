package meeting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
)

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	loc         *time.Location
	now         func() time.Time
	logger      *zap.Logger
}

var _ Service = (*MeetingService)(nil)

// NewMeetingService creates a new meeting service. loc decides what
// "today" means and how zone-less dates are read.
func NewMeetingService(meetingRepo repositories.MeetingRepository, loc *time.Location, logger *zap.Logger) *MeetingService {
	if loc == nil {
		loc = time.Local
	}
	return &MeetingService{
		meetingRepo: meetingRepo,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
	}
}

// WithClock replaces the time source, for tests
func (s *MeetingService) WithClock(now func() time.Time) *MeetingService {
	s.now = now
	return s
}

// Create records a meeting with its contact and participant links
func (s *MeetingService) Create(ctx context.Context, creatorID uint, input CreateInput) (*entities.Meeting, error) {
	if input.CompanyID == 0 || input.MeetingDate == "" {
		return nil, usecaseErrors.ErrMeetingFieldsRequired
	}

	meetingDate, err := ParseDateTime(input.MeetingDate, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidMeetingDate, err)
	}

	var next *time.Time
	if input.NextMeetingDate != "" {
		t, err := ParseDateTime(input.NextMeetingDate, s.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrInvalidNextMeeting, err)
		}
		next = &t
	}

	meeting := &entities.Meeting{
		CompanyID:        input.CompanyID,
		Medium:           input.Medium,
		MeetingDate:      meetingDate,
		DiscussedMatter:  input.DiscussedMatter,
		Outcome:          input.Outcome,
		NextMeetingDate:  next,
		NextMeetingTopic: input.NextMeetingTopic,
		CreatedBy:        creatorID,
		MeetingType:      entities.DeriveMeetingType(next),
	}

	contactIDs := uniqueIDs(input.MeetingWith)
	participantIDs := uniqueIDs(input.Participants)

	if err := s.meetingRepo.Create(ctx, meeting, contactIDs, participantIDs); err != nil {
		return nil, fmt.Errorf("failed to add meeting: %w", err)
	}

	s.logger.Info("meeting added",
		zap.Uint("meeting_id", meeting.ID),
		zap.Uint("company_id", meeting.CompanyID),
		zap.Int("contacts", len(contactIDs)),
		zap.Int("participants", len(participantIDs)),
	)
	return meeting, nil
}

func (s *MeetingService) List(ctx context.Context) ([]*entities.MeetingSummary, error) {
	meetings, err := s.meetingRepo.ListSummaries(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}
	return nonNilSummaries(meetings), nil
}

func (s *MeetingService) Grouped(ctx context.Context) (*GroupedMeetings, error) {
	meetings, err := s.meetingRepo.ListSummaries(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grouped meetings: %w", err)
	}
	return GroupByDate(s.now(), s.loc, meetings), nil
}

func (s *MeetingService) Dashboard(ctx context.Context, actor Actor, userID uint) ([]*entities.MeetingSummary, error) {
	if !actor.CanView(userID) {
		return nil, usecaseErrors.ErrOwnResourcesOnly
	}

	meetings, err := s.meetingRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meetings: %w", err)
	}
	return nonNilSummaries(meetings), nil
}

func (s *MeetingService) Notifications(ctx context.Context, actor Actor, userID uint) ([]*entities.Meeting, error) {
	if !actor.CanView(userID) {
		return nil, usecaseErrors.ErrOwnResourcesOnly
	}

	from := startOfDay(s.now(), s.loc)
	to := from.AddDate(0, 0, 1)

	meetings, err := s.meetingRepo.ListForParticipantBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	if meetings == nil {
		meetings = []*entities.Meeting{}
	}
	return meetings, nil
}

// uniqueIDs drops zero and repeated ids, keeping first-seen order
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func nonNilSummaries(in []*entities.MeetingSummary) []*entities.MeetingSummary {
	if in == nil {
		return []*entities.MeetingSummary{}
	}
	return in
}
