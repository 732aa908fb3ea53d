package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-scheduler/errors"
	"github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/common"
	ucErrors "github.com/johnquangdev/meeting-scheduler/internal/usecase/errors"
	"github.com/johnquangdev/meeting-scheduler/pkg/validator"
)

const accessTokenCookie = "access_token"

// getRequestID reads the request id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// toAppError maps usecase sentinels to AppError. Anything unrecognised
// becomes a 500 carrying fallback as its message.
func toAppError(err error, fallback string) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	// auth
	case stdErrors.Is(err, ucErrors.ErrMissingFields):
		return errors.ErrInvalidArgument("Missing required fields")
	case stdErrors.Is(err, ucErrors.ErrEmailTaken):
		appErr := errors.ErrUserAlreadyExists("")
		appErr.Details = nil
		return appErr
	case stdErrors.Is(err, ucErrors.ErrUserNotFound):
		return errors.ErrUserNotFound()
	case stdErrors.Is(err, ucErrors.ErrInvalidPassword):
		return errors.ErrInvalidCredentials("Invalid password")
	case stdErrors.Is(err, ucErrors.ErrTokenExpired):
		return errors.ErrTokenExpired()
	case stdErrors.Is(err, ucErrors.ErrTokenRevoked):
		return errors.ErrTokenRevoked()
	case stdErrors.Is(err, ucErrors.ErrTokenInvalid):
		return errors.ErrInvalidToken()
	case stdErrors.Is(err, ucErrors.ErrAdminOnly):
		return errors.ErrPermissionDenied("Only Admin can add users")
	case stdErrors.Is(err, ucErrors.ErrOwnResourcesOnly):
		return errors.ErrPermissionDenied("Access denied")
	case stdErrors.Is(err, ucErrors.ErrBlocklistFailed):
		return errors.ErrCacheFailed("token blocklist", err)
	case stdErrors.Is(err, ucErrors.ErrInvalidRole):
		return errors.ErrInvalidArgument("Role must be Admin or User")

	// companies
	case stdErrors.Is(err, ucErrors.ErrCompanyNameRequired):
		return errors.ErrInvalidArgument("Company name required")
	case stdErrors.Is(err, ucErrors.ErrCompanyNotFound):
		return errors.ErrNotFound("Company")

	// meetings
	case stdErrors.Is(err, ucErrors.ErrMeetingFieldsRequired):
		return errors.ErrInvalidArgument("Company and date required")
	case stdErrors.Is(err, ucErrors.ErrInvalidMeetingDate):
		return errors.ErrInvalidArgument("Invalid meeting_date")
	case stdErrors.Is(err, ucErrors.ErrInvalidNextMeeting):
		return errors.ErrInvalidArgument("Invalid next_meeting_date")

	// minutes
	case stdErrors.Is(err, ucErrors.ErrSummaryRequired):
		return errors.ErrInvalidArgument("Missing required fields")
	case stdErrors.Is(err, ucErrors.ErrMinutesNotFound):
		return errors.ErrNotFound("Minutes")

	// zoom
	case stdErrors.Is(err, ucErrors.ErrTopicRequired), stdErrors.Is(err, ucErrors.ErrStartTimeRequired):
		return errors.ErrInvalidArgument("Topic and start_time required for scheduled meeting")
	case stdErrors.Is(err, ucErrors.ErrInvalidMeetingType):
		return errors.ErrInvalidArgument("Type must be 1 (instant) or 2 (scheduled)")
	case stdErrors.Is(err, ucErrors.ErrInvalidDuration):
		return errors.ErrInvalidArgument("Duration must be a positive number of minutes")
	case stdErrors.Is(err, ucErrors.ErrZoomNotConfigured):
		appErr := errors.ErrZoomFailed(err).WithMessage("Zoom integration is not configured")
		appErr.HTTPCode = http.StatusServiceUnavailable
		return appErr
	case stdErrors.Is(err, ucErrors.ErrZoomRequestFailed):
		return errors.ErrZoomFailed(err)
	case stdErrors.Is(err, ucErrors.ErrVideoMeetingSave):
		return errors.ErrDBQueryFailed("Zoom meeting created but could not be saved", err)
	}

	return errors.ErrDBQueryFailed(fallback, err)
}

// invalidRequest turns a validator failure into a 400. Missing fields get
// message and are listed as a detail; any other rule failure is described.
func invalidRequest(err error, message string) errors.AppError {
	if fields := validator.MissingFields(err); len(fields) > 0 {
		return errors.ErrInvalidArgument(message).WithDetail("fields", strings.Join(fields, ","))
	}
	return errors.ErrInvalidArgument(validator.Describe(err))
}

// bindAndValidate binds the JSON body into req and runs its validate tags.
// A malformed body gives INVALID_PAYLOAD, a failed rule gives message.
func bindAndValidate(c echo.Context, req interface{}, message string) error {
	if err := c.Bind(req); err != nil {
		appErr := errors.ErrInvalidPayload()
		var he *echo.HTTPError
		if stdErrors.As(err, &he) && he.Internal != nil {
			appErr.Raw = he.Internal
		}
		return appErr
	}
	if err := c.Validate(req); err != nil {
		return invalidRequest(err, message)
	}
	return nil
}

// parseID reads a positive integer path parameter
func parseID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.ErrInvalidArgument(fmt.Sprintf("Invalid %s", name)).WithDetail(name, raw)
	}
	return uint(id), nil
}

// HandleError renders err as {code, message, error}. The raw cause is only
// exposed outside production.
func HandleError(logger *zap.Logger, c echo.Context, err error, production bool) error {
	appErr := toAppError(err, "Internal server error")

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Int("status", appErr.HTTPCode),
			zap.String("app_code", appErr.Code.String()),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := common.ErrorResponse{
		Code:    appErr.Code.String(),
		Message: appErr.Message,
		Details: appErr.Details,
	}
	if !production && appErr.Raw != nil {
		body.Error = appErr.Raw.Error()
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(appErr.HTTPCode)
	}
	return c.JSON(appErr.HTTPCode, body)
}

// HTTPErrorHandler renders every error returned by handlers and middleware,
// including echo's own 404 and 405, in the AppError shape
func HTTPErrorHandler(logger *zap.Logger, production bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var appErr errors.AppError
		var he *echo.HTTPError
		if !stdErrors.As(err, &appErr) && stdErrors.As(err, &he) {
			appErr = errors.FromHTTPStatus(he.Code, fmt.Sprint(he.Message))
			appErr.Raw = he.Internal
			err = appErr
		}

		if renderErr := HandleError(logger, c, err, production); renderErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(renderErr))
		}
	}
}

// setTokenCookie stores the access token for the static pages
func setTokenCookie(c echo.Context, token string, maxAge int, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     accessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// clearTokenCookie deletes the access token cookie
func clearTokenCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:   accessTokenCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
