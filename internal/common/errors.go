package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrForbidden = errors.New("forbidden")

	// Channel errors
	ErrChannelNotFound    = errors.New("channel not found")
	ErrDuplicateName      = errors.New("channel name already exists")
	ErrManagerNotFound    = errors.New("manager user not found")
	ErrManagerRequired    = errors.New("channel must have a manager")
	ErrPrivateNoSub       = errors.New("private channel has no subscriber")
	ErrPrivateChannel     = errors.New("private channel is not readable")
	ErrReadForbidden      = errors.New("no read access to private channel content")
	ErrAlreadySubscribed  = errors.New("already subscribed")
	ErrNotSubscribed      = errors.New("not subscribed")
	ErrTargetSubscribed   = errors.New("target user already subscribed")
	ErrNeverRequested     = errors.New("target user never requested to join")
	ErrInvalidColor       = errors.New("color is not in the theme palette")

	// Content errors
	ErrNoticeNotFound  = errors.New("notice not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrInvalidInterval = errors.New("start must not be after due")
	ErrTimeRequired    = errors.New("start_time and due_time are required when has_time is set")

	// Search errors
	ErrQueryTooShort = errors.New("search query must be at least 2 characters")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrSamePassword       = errors.New("new password equals old password")
	ErrWrongPassword      = errors.New("wrong password")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")
)
