package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/company"
	ucErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/minutes"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/user"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/videomeeting"
	"github.com/johnquangdev/meeting-scheduler/pkg/config"
	"github.com/johnquangdev/meeting-scheduler/pkg/jwt"
	"github.com/johnquangdev/meeting-scheduler/pkg/validator"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

// fakeAuth verifies the two fixed tokens and records what the handlers pass in
type fakeAuth struct {
	registerErr error
	loginOut    *auth.LoginOutput
	loginErr    error
	revoked     []string
	registered  []auth.RegisterInput
}

func (f *fakeAuth) Register(_ context.Context, in auth.RegisterInput) (*entities.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, in)
	return &entities.User{ID: 10, Name: in.Name, Email: in.Email, Role: entities.RoleUser}, nil
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (*auth.LoginOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeAuth) Logout(_ context.Context, claims *jwt.Claims) error {
	f.revoked = append(f.revoked, claims.TokenID())
	return nil
}

func (f *fakeAuth) VerifyToken(_ context.Context, token string) (*jwt.Claims, error) {
	switch jwt.StripBearer(token) {
	case adminToken:
		return testClaims(1, entities.RoleAdmin, "jti-admin"), nil
	case userToken:
		return testClaims(2, entities.RoleUser, "jti-user"), nil
	}
	return nil, ucErrors.ErrTokenInvalid
}

func (f *fakeAuth) Me(_ context.Context, userID uint) (*entities.User, error) {
	if userID == 1 {
		return &entities.User{ID: 1, Name: "Root", Email: "root@example.com", Role: entities.RoleAdmin}, nil
	}
	return nil, ucErrors.ErrUserNotFound
}

func testClaims(id uint, role entities.UserRole, jti string) *jwt.Claims {
	return &jwt.Claims{
		UserID: id,
		Role:   string(role),
		RegisteredClaims: gojwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

type fakeUsers struct {
	users     []*entities.User
	createErr error
	created   []user.CreateInput
}

func (f *fakeUsers) List(context.Context) ([]*entities.User, error) {
	return f.users, nil
}

func (f *fakeUsers) Create(_ context.Context, role entities.UserRole, in user.CreateInput) (*entities.User, error) {
	if role != entities.RoleAdmin {
		return nil, ucErrors.ErrAdminOnly
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &entities.User{ID: 11, Email: in.Email, Role: entities.UserRole(in.Role)}, nil
}

type fakeCompanies struct {
	companies map[uint]*entities.Company
	listErr   error
	lastInput company.Input
}

func (f *fakeCompanies) List(context.Context) ([]*entities.Company, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entities.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanies) Get(_ context.Context, id uint) (*entities.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, ucErrors.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanies) Create(_ context.Context, in company.Input) (*entities.Company, error) {
	f.lastInput = in
	c := &entities.Company{ID: uint(len(f.companies) + 1), Name: in.Name, Address: in.Address}
	for _, ct := range in.Contacts {
		c.Contacts = append(c.Contacts, entities.CompanyContact{Name: ct.Name})
	}
	f.companies[c.ID] = c
	return c, nil
}

func (f *fakeCompanies) Update(_ context.Context, id uint, in company.Input) (*entities.Company, error) {
	if _, ok := f.companies[id]; !ok {
		return nil, ucErrors.ErrCompanyNotFound
	}
	f.lastInput = in
	c := &entities.Company{ID: id, Name: in.Name}
	for _, ct := range in.Contacts {
		c.Contacts = append(c.Contacts, entities.CompanyContact{Name: ct.Name})
	}
	f.companies[id] = c
	return c, nil
}

type fakeMeetings struct {
	created   []meeting.CreateInput
	creatorID uint
	grouped   *meeting.GroupedMeetings
	createErr error
}

func (f *fakeMeetings) Create(_ context.Context, creatorID uint, in meeting.CreateInput) (*entities.Meeting, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.creatorID = creatorID
	f.created = append(f.created, in)
	return &entities.Meeting{ID: 42}, nil
}

func (f *fakeMeetings) List(context.Context) ([]*entities.MeetingSummary, error) {
	return []*entities.MeetingSummary{}, nil
}

func (f *fakeMeetings) Grouped(context.Context) (*meeting.GroupedMeetings, error) {
	return f.grouped, nil
}

func (f *fakeMeetings) Dashboard(_ context.Context, actor meeting.Actor, userID uint) ([]*entities.MeetingSummary, error) {
	if !actor.CanView(userID) {
		return nil, ucErrors.ErrOwnResourcesOnly
	}
	return []*entities.MeetingSummary{{Meeting: entities.Meeting{ID: 5, CreatedBy: userID}}}, nil
}

func (f *fakeMeetings) Notifications(_ context.Context, actor meeting.Actor, userID uint) ([]*entities.Meeting, error) {
	if !actor.CanView(userID) {
		return nil, ucErrors.ErrOwnResourcesOnly
	}
	return []*entities.Meeting{}, nil
}

type fakeMinutes struct {
	callerID uint
	created  []minutes.CreateInput
}

func (f *fakeMinutes) Create(_ context.Context, callerID uint, in minutes.CreateInput) (*entities.MeetingMinutes, error) {
	if strings.TrimSpace(in.Summary) == "" {
		return nil, ucErrors.ErrSummaryRequired
	}
	f.callerID = callerID
	f.created = append(f.created, in)
	return &entities.MeetingMinutes{ID: 1}, nil
}

func (f *fakeMinutes) List(context.Context) ([]*entities.MeetingMinutes, error) {
	return []*entities.MeetingMinutes{}, nil
}

func (f *fakeMinutes) Get(_ context.Context, id uint) (*entities.MeetingMinutes, error) {
	return nil, ucErrors.ErrMinutesNotFound
}

type fakeVideoMeetings struct {
	out *videomeeting.CreateOutput
	err error
	got videomeeting.CreateInput
}

func (f *fakeVideoMeetings) Create(_ context.Context, _ uint, in videomeeting.CreateInput) (*videomeeting.CreateOutput, error) {
	f.got = in
	return f.out, f.err
}

func (f *fakeVideoMeetings) List(context.Context, uint) ([]*entities.VideoMeeting, error) {
	return []*entities.VideoMeeting{}, nil
}

type testServer struct {
	e         *echo.Echo
	auth      *fakeAuth
	users     *fakeUsers
	companies *fakeCompanies
	meetings  *fakeMeetings
	minutes   *fakeMinutes
	zoom      *fakeVideoMeetings
}

func newTestServer(t *testing.T, production bool) *testServer {
	t.Helper()

	ts := &testServer{
		auth:      &fakeAuth{},
		users:     &fakeUsers{},
		companies: &fakeCompanies{companies: map[uint]*entities.Company{}},
		meetings:  &fakeMeetings{},
		minutes:   &fakeMinutes{},
		zoom:      &fakeVideoMeetings{},
	}

	logger := zap.NewNop()
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = HTTPErrorHandler(logger, production)

	cfg := &config.Config{}
	cfg.Server.Environment = "test"

	NewRouter(cfg, ts.auth, Handlers{
		Auth:    NewAuth(ts.auth, false),
		User:    NewUser(ts.users),
		Company: NewCompany(ts.companies),
		Meeting: NewMeeting(ts.meetings),
		Minutes: NewMinutes(ts.minutes),
		Zoom:    NewZoom(ts.zoom),
	}, nil).Setup(e)

	ts.e = e
	return ts
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var out []interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
