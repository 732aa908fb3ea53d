package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

const meetingSummarySelect = `
SELECT m.*,
       c.name AS company_name,
       STRING_AGG(DISTINCT cc.name, ', ') AS meeting_with,
       STRING_AGG(DISTINCT u.name, ', ') AS participants
FROM meetings m
LEFT JOIN companies c ON c.id = m.company_id
LEFT JOIN meeting_with mw ON mw.meeting_id = m.id
LEFT JOIN company_contacts cc ON cc.id = mw.contact_id
LEFT JOIN meeting_participants mp ON mp.meeting_id = m.id
LEFT JOIN users u ON u.id = mp.user_id`

const meetingSummaryGroup = `
GROUP BY m.id, c.name`

// Create writes the meeting row and both link tables in one transaction
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting, contactIDs, participantIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(meeting).Error; err != nil {
			return fmt.Errorf("failed to create meeting: %w", err)
		}

		if len(contactIDs) > 0 {
			links := make([]entities.MeetingWith, 0, len(contactIDs))
			for _, id := range contactIDs {
				links = append(links, entities.MeetingWith{MeetingID: meeting.ID, ContactID: id})
			}
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("failed to link meeting contacts: %w", err)
			}
		}

		if len(participantIDs) > 0 {
			links := make([]entities.MeetingParticipant, 0, len(participantIDs))
			for _, id := range participantIDs {
				links = append(links, entities.MeetingParticipant{MeetingID: meeting.ID, UserID: id})
			}
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("failed to link meeting participants: %w", err)
			}
		}
		return nil
	})
}

// ListSummaries returns every meeting joined with company, contact and participant names
func (r *meetingRepository) ListSummaries(ctx context.Context, ascending bool) ([]*entities.MeetingSummary, error) {
	order := "DESC"
	if ascending {
		order = "ASC"
	}

	var summaries []*entities.MeetingSummary
	query := meetingSummarySelect + meetingSummaryGroup + "\nORDER BY m.meeting_date " + order
	if err := r.db.WithContext(ctx).Raw(query).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings: %w", err)
	}
	return summaries, nil
}

// ListForUser returns meetings the user created or participates in, soonest first
func (r *meetingRepository) ListForUser(ctx context.Context, userID uint) ([]*entities.MeetingSummary, error) {
	var summaries []*entities.MeetingSummary
	query := meetingSummarySelect + `
WHERE m.created_by = ?
   OR m.id IN (SELECT meeting_id FROM meeting_participants WHERE user_id = ?)` +
		meetingSummaryGroup + "\nORDER BY m.meeting_date ASC"
	if err := r.db.WithContext(ctx).Raw(query, userID, userID).Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list meetings for user: %w", err)
	}
	return summaries, nil
}

// ListForParticipantBetween returns the user's meetings in the half-open range [from, to)
func (r *meetingRepository) ListForParticipantBetween(ctx context.Context, userID uint, from, to time.Time) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	participating := r.db.Model(&entities.MeetingParticipant{}).
		Select("meeting_id").
		Where("user_id = ?", userID)

	err := r.db.WithContext(ctx).
		Where("id IN (?)", participating).
		Where("meeting_date >= ? AND meeting_date < ?", from, to).
		Order("meeting_date ASC").
		Find(&meetings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list meetings in range: %w", err)
	}
	return meetings, nil
}
