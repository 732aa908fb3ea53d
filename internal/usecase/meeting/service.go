package meeting

import (
	"context"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

// Service defines the interface for the meeting use case
type Service interface {
	// Create records a meeting together with the contacts met and the participating users
	Create(ctx context.Context, creatorID uint, input CreateInput) (*entities.Meeting, error)

	// List returns every meeting with joined names, newest first
	List(ctx context.Context) ([]*entities.MeetingSummary, error)

	// Grouped buckets meetings and planned follow-ups into today, tomorrow and the following week
	Grouped(ctx context.Context) (*GroupedMeetings, error)

	// Dashboard returns the meetings a user created or takes part in
	Dashboard(ctx context.Context, actor Actor, userID uint) ([]*entities.MeetingSummary, error)

	// Notifications returns today's meetings the user takes part in
	Notifications(ctx context.Context, actor Actor, userID uint) ([]*entities.Meeting, error)
}

// Actor is the authenticated caller
type Actor struct {
	ID   uint
	Role entities.UserRole
}

// CanView reports whether the actor may read another user's meetings
func (a Actor) CanView(userID uint) bool {
	return a.Role == entities.RoleAdmin || a.ID == userID
}

// CreateInput represents input for recording a meeting. Dates are kept as
// submitted and parsed in the configured location.
type CreateInput struct {
	CompanyID        uint
	MeetingWith      []uint
	Participants     []uint
	Medium           string
	MeetingDate      string
	DiscussedMatter  string
	Outcome          string
	NextMeetingDate  string
	NextMeetingTopic string
}
