package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

func TestVideoMeetingRepository_Create(t *testing.T) {
	ctx := context.Background()
	meeting := func() *entities.VideoMeeting {
		return &entities.VideoMeeting{
			Topic:         "Weekly sync",
			StartTime:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Duration:      60,
			Type:          entities.VideoMeetingScheduled,
			ZoomMeetingID: "85012345678",
			JoinURL:       "https://zoom.us/j/85012345678",
			CreatedBy:     2,
		}
	}

	t.Run("success", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewVideoMeetingRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "zoom_meetings"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectCommit()

		m := meeting()
		require.NoError(t, repo.Create(ctx, m))
		assert.Equal(t, uint(12), m.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db failure is wrapped", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewVideoMeetingRepository(db)

		boom := errors.New("connection reset")
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "zoom_meetings"`).WillReturnError(boom)
		mock.ExpectRollback()

		err := repo.Create(ctx, meeting())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "failed to save video meeting")
	})
}

func TestVideoMeetingRepository_ListByCreator(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewVideoMeetingRepository(db)

	rows := sqlmock.NewRows([]string{"id", "topic", "type", "created_by"}).
		AddRow(5, "Later", 2, 2).
		AddRow(4, "Sooner", 1, 2)
	mock.ExpectQuery(`SELECT \* FROM "zoom_meetings" WHERE created_by = \$1 ORDER BY start_time DESC`).
		WithArgs(2).
		WillReturnRows(rows)

	list, err := repo.ListByCreator(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Later", list[0].Topic)
	assert.Equal(t, entities.VideoMeetingInstant, list[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
