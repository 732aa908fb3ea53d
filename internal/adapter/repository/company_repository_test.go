package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-scheduler/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
)

func TestCompanyRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("company with contacts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewCompanyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "companies"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(`INSERT INTO "company_contacts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11).AddRow(12))
		mock.ExpectCommit()

		company := &entities.Company{
			Name:    "Acme",
			Address: "1 Road",
			Contacts: []entities.CompanyContact{
				{Name: "Raj", Designation: "CTO"},
				{Name: "Mia", Email: "mia@acme.io"},
			},
		}
		require.NoError(t, repo.Create(ctx, company))

		assert.Equal(t, uint(7), company.ID)
		require.Len(t, company.Contacts, 2)
		assert.Equal(t, uint(7), company.Contacts[0].CompanyID)
		assert.Equal(t, uint(11), company.Contacts[0].ID)
		assert.Equal(t, "Mia", company.Contacts[1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("company without contacts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewCompanyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "companies"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
		mock.ExpectCommit()

		company := &entities.Company{Name: "Solo"}
		require.NoError(t, repo.Create(ctx, company))
		assert.Equal(t, uint(8), company.ID)
		assert.Empty(t, company.Contacts)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("contact insert fails rolls back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewCompanyRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "companies"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
		mock.ExpectQuery(`INSERT INTO "company_contacts"`).
			WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		company := &entities.Company{
			Name:     "Broken",
			Contacts: []entities.CompanyContact{{Name: "X"}},
		}
		assert.Error(t, repo.Create(ctx, company))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompanyRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces contacts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewCompanyRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "companies" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "company_contacts" WHERE company_id = \$1`).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectQuery(`INSERT INTO "company_contacts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(40))
		mock.ExpectCommit()

		company := &entities.Company{
			ID:       3,
			Name:     "Acme",
			Contacts: []entities.CompanyContact{{ID: 99, Name: "Raj"}},
		}
		require.NoError(t, repo.Update(ctx, company))
		require.Len(t, company.Contacts, 1)
		assert.Equal(t, uint(40), company.Contacts[0].ID)
		assert.Equal(t, uint(3), company.Contacts[0].CompanyID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown company", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewCompanyRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "companies" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Update(ctx, &entities.Company{ID: 404, Name: "Ghost"})
		assert.ErrorIs(t, err, entities.ErrCompanyNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompanyRepository_FindByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCompanyRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "companies" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	company, err := repo.FindByID(context.Background(), 5)
	assert.Nil(t, company)
	assert.ErrorIs(t, err, entities.ErrCompanyNotFound)
}
