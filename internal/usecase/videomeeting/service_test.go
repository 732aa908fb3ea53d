package videomeeting

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/infrastructure/external/zoom"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
)

type fakeZoom struct {
	got   *zoom.CreateMeetingRequest
	resp  *zoom.Meeting
	err   error
	calls int
}

func (f *fakeZoom) CreateMeeting(_ context.Context, req *zoom.CreateMeetingRequest) (*zoom.Meeting, error) {
	f.calls++
	f.got = req
	return f.resp, f.err
}

type fakeRepo struct {
	saved []*entities.VideoMeeting
	err   error
}

func (r *fakeRepo) Create(_ context.Context, m *entities.VideoMeeting) error {
	if r.err != nil {
		return r.err
	}
	m.ID = uint(len(r.saved) + 1)
	r.saved = append(r.saved, m)
	return nil
}

func (r *fakeRepo) ListByCreator(_ context.Context, userID uint) ([]*entities.VideoMeeting, error) {
	var out []*entities.VideoMeeting
	for _, m := range r.saved {
		if m.CreatedBy == userID {
			out = append(out, m)
		}
	}
	return out, r.err
}

func intPtr(v int) *int { return &v }

func remoteMeeting() *zoom.Meeting {
	raw := json.RawMessage(`{"id":123456789,"join_url":"https://zoom.us/j/123456789","start_time":"2026-03-10T09:00:00Z"}`)
	return &zoom.Meeting{
		ID:        123456789,
		JoinURL:   "https://zoom.us/j/123456789",
		StartTime: "2026-03-10T09:00:00Z",
		Raw:       raw,
	}
}

func TestVideoMeetingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("scheduled with defaults", func(t *testing.T) {
		client := &fakeZoom{resp: remoteMeeting()}
		repo := &fakeRepo{}
		svc := NewVideoMeetingService(client, repo, time.UTC, zap.NewNop())

		out, err := svc.Create(ctx, 5, CreateInput{Topic: "Demo", StartTime: "2026-03-10T09:00"})
		require.NoError(t, err)

		assert.Equal(t, 2, client.got.Type)
		assert.Equal(t, 60, client.got.Duration)
		assert.Equal(t, "2026-03-10T09:00:00Z", client.got.StartTime)

		require.Len(t, repo.saved, 1)
		saved := repo.saved[0]
		assert.Equal(t, "123456789", saved.ZoomMeetingID)
		assert.Equal(t, uint(5), saved.CreatedBy)
		assert.Equal(t, entities.VideoMeetingScheduled, saved.Type)
		assert.True(t, saved.StartTime.Equal(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)))
		assert.JSONEq(t, string(remoteMeeting().Raw), string(out.Remote))
	})

	t.Run("instant meeting needs no start time", func(t *testing.T) {
		client := &fakeZoom{resp: &zoom.Meeting{ID: 1, JoinURL: "u"}}
		repo := &fakeRepo{}
		now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		svc := NewVideoMeetingService(client, repo, time.UTC, zap.NewNop())
		svc.now = func() time.Time { return now }

		_, err := svc.Create(ctx, 5, CreateInput{Topic: "Now", Type: intPtr(1), Duration: intPtr(15)})
		require.NoError(t, err)
		assert.Empty(t, client.got.StartTime)
		assert.Equal(t, 15, repo.saved[0].Duration)
		assert.True(t, repo.saved[0].StartTime.Equal(now))
	})

	t.Run("validation never calls zoom", func(t *testing.T) {
		client := &fakeZoom{}
		svc := NewVideoMeetingService(client, &fakeRepo{}, time.UTC, zap.NewNop())

		_, err := svc.Create(ctx, 5, CreateInput{StartTime: "2026-03-10T09:00"})
		assert.ErrorIs(t, err, usecaseErrors.ErrTopicRequired)
		_, err = svc.Create(ctx, 5, CreateInput{Topic: "x"})
		assert.ErrorIs(t, err, usecaseErrors.ErrStartTimeRequired)
		_, err = svc.Create(ctx, 5, CreateInput{Topic: "x", Type: intPtr(8)})
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidMeetingType)
		_, err = svc.Create(ctx, 5, CreateInput{Topic: "x", Type: intPtr(1), Duration: intPtr(0)})
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidDuration)
		_, err = svc.Create(ctx, 5, CreateInput{Topic: "x", StartTime: "someday"})
		assert.ErrorIs(t, err, usecaseErrors.ErrInvalidMeetingDate)

		assert.Zero(t, client.calls)
	})

	t.Run("not configured", func(t *testing.T) {
		svc := NewVideoMeetingService(nil, &fakeRepo{}, time.UTC, zap.NewNop())
		_, err := svc.Create(ctx, 5, CreateInput{Topic: "x", Type: intPtr(1)})
		assert.ErrorIs(t, err, usecaseErrors.ErrZoomNotConfigured)
	})

	t.Run("zoom failure stores nothing", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewVideoMeetingService(&fakeZoom{err: errors.New("401 invalid token")}, repo, time.UTC, zap.NewNop())

		_, err := svc.Create(ctx, 5, CreateInput{Topic: "x", Type: intPtr(1)})
		assert.ErrorIs(t, err, usecaseErrors.ErrZoomRequestFailed)
		assert.Empty(t, repo.saved)
	})

	t.Run("local failure logs the orphan", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		svc := NewVideoMeetingService(&fakeZoom{resp: remoteMeeting()}, &fakeRepo{err: errors.New("disk full")}, time.UTC, zap.New(core))

		_, err := svc.Create(ctx, 5, CreateInput{Topic: "x", StartTime: "2026-03-10T09:00"})
		assert.ErrorIs(t, err, usecaseErrors.ErrVideoMeetingSave)

		entries := logs.FilterField(zap.String("zoom_meeting_id", "123456789")).All()
		assert.Len(t, entries, 1)
	})
}

func TestVideoMeetingService_List(t *testing.T) {
	repo := &fakeRepo{saved: []*entities.VideoMeeting{{ID: 1, CreatedBy: 5}, {ID: 2, CreatedBy: 6}}}
	svc := NewVideoMeetingService(nil, repo, time.UTC, zap.NewNop())

	list, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].ID)

	list, err = svc.List(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, list)
}
