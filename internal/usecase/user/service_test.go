package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
)

type fakeUserRepo struct {
	created []*entities.User
	list    []*entities.User
	err     error
}

func (r *fakeUserRepo) Create(_ context.Context, u *entities.User) error {
	if r.err != nil {
		return r.err
	}
	for _, existing := range r.created {
		if existing.Email == u.Email {
			return entities.ErrUserAlreadyExists
		}
	}
	u.ID = uint(len(r.created) + 1)
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) FindByID(context.Context, uint) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}

func (r *fakeUserRepo) List(context.Context) ([]*entities.User, error) {
	return r.list, r.err
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		actor    entities.UserRole
		input    CreateInput
		wantErr  error
		wantRole entities.UserRole
	}{
		{"admin adds default role", entities.RoleAdmin, CreateInput{Name: "Bo", Email: "bo@x.io", Password: "pw"}, nil, entities.RoleUser},
		{"admin adds admin", entities.RoleAdmin, CreateInput{Email: "root@x.io", Password: "pw", Role: "Admin"}, nil, entities.RoleAdmin},
		{"non admin", entities.RoleUser, CreateInput{Email: "bo@x.io", Password: "pw"}, usecaseErrors.ErrAdminOnly, ""},
		{"missing password", entities.RoleAdmin, CreateInput{Email: "bo@x.io"}, usecaseErrors.ErrMissingFields, ""},
		{"missing email", entities.RoleAdmin, CreateInput{Password: "pw"}, usecaseErrors.ErrMissingFields, ""},
		{"bad role", entities.RoleAdmin, CreateInput{Email: "bo@x.io", Password: "pw", Role: "Root"}, usecaseErrors.ErrInvalidRole, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUserService(&fakeUserRepo{}, zap.NewNop())

			user, err := svc.Create(ctx, tt.actor, tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.NotEmpty(t, user.PasswordHash)
		})
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, zap.NewNop())
	in := CreateInput{Email: "bo@x.io", Password: "pw"}

	_, err := svc.Create(context.Background(), entities.RoleAdmin, in)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), entities.RoleAdmin, in)
	assert.ErrorIs(t, err, usecaseErrors.ErrEmailTaken)
}

func TestUserService_List(t *testing.T) {
	repo := &fakeUserRepo{list: []*entities.User{{ID: 2, Name: "Bo"}, {ID: 1, Name: "Ana"}}}
	svc := NewUserService(repo, zap.NewNop())

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)

	repo.err = errors.New("db down")
	_, err = svc.List(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestUserService_Create_LogsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewUserService(&fakeUserRepo{}, zap.New(core))

	u, err := svc.Create(context.Background(), entities.RoleAdmin, CreateInput{Email: "ana@x.io", Password: "pw"})
	require.NoError(t, err)

	entries := logs.FilterMessage("user added").AllUntimed()
	require.Len(t, entries, 1)
	assert.EqualValues(t, u.ID, entries[0].ContextMap()["user_id"])
	assert.Equal(t, "User", entries[0].ContextMap()["role"])
}
