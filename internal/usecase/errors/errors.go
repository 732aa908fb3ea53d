package errors

import "errors"

// Auth errors
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrTokenExpired     = errors.New("token expired")
	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenRevoked     = errors.New("token revoked")
	ErrAdminOnly        = errors.New("only admin can add users")
	ErrInvalidRole      = errors.New("role must be Admin or User")
	ErrOwnResourcesOnly = errors.New("users may only view their own meetings")
	ErrBlocklistFailed  = errors.New("token blocklist unavailable")
)

// Company errors
var (
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrCompanyNotFound     = errors.New("company not found")
)

// Meeting errors
var (
	ErrMeetingFieldsRequired = errors.New("company_id and meeting_date are required")
	ErrInvalidMeetingDate    = errors.New("invalid meeting date")
	ErrInvalidNextMeeting    = errors.New("invalid next meeting date")
)

// Minutes errors
var (
	ErrSummaryRequired = errors.New("summary is required")
	ErrMinutesNotFound = errors.New("minutes not found")
)

// Video meeting errors
var (
	ErrTopicRequired      = errors.New("topic is required")
	ErrStartTimeRequired  = errors.New("start_time is required for scheduled meetings")
	ErrInvalidMeetingType = errors.New("type must be 1 (instant) or 2 (scheduled)")
	ErrInvalidDuration    = errors.New("duration must be positive")
	ErrZoomNotConfigured  = errors.New("zoom integration is not configured")
	ErrZoomRequestFailed  = errors.New("zoom request failed")
	ErrVideoMeetingSave   = errors.New("failed to save video meeting")
)
