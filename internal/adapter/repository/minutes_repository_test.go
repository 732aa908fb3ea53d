package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

func TestMinutesRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMinutesRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "meeting_minutes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	minutes := entities.NewMeetingMinutes("Kickoff", "Ship it", []string{"b", "a"}, nil, 2)
	require.NoError(t, repo.Create(context.Background(), minutes))
	assert.Equal(t, uint(3), minutes.ID)
	assert.NotNil(t, minutes.Attendees)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMinutesRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("lists keep their order", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewMinutesRepository(db)

		rows := sqlmock.NewRows([]string{"id", "summary", "decisions", "action_items", "attendees", "created_by", "created_at"}).
			AddRow(3, "Kickoff", "", []byte(`["second","first"]`), []byte(`[]`), 2, time.Now())
		mock.ExpectQuery(`SELECT \* FROM "meeting_minutes" WHERE id = \$1`).
			WillReturnRows(rows)

		minutes, err := repo.FindByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"second", "first"}, []string(minutes.ActionItems))
		assert.Empty(t, minutes.Attendees)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewMinutesRepository(db)

		mock.ExpectQuery(`SELECT \* FROM "meeting_minutes" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByID(ctx, 99)
		assert.ErrorIs(t, err, entities.ErrMinutesNotFound)
	})
}

func TestMinutesRepository_List(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewMinutesRepository(db)

	rows := sqlmock.NewRows([]string{"id", "summary", "action_items", "attendees"}).
		AddRow(2, "Later", []byte(`["x"]`), []byte(`["Ana"]`)).
		AddRow(1, "Earlier", []byte(`[]`), []byte(`[]`))
	mock.ExpectQuery(`SELECT \* FROM "meeting_minutes" ORDER BY created_at DESC,id DESC`).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Later", list[0].Summary)
	assert.Equal(t, []string{"Ana"}, []string(list[0].Attendees))
	assert.NoError(t, mock.ExpectationsWereMet())
}
