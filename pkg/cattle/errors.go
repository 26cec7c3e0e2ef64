package cattle

import "errors"

var (
	ErrCowNotFound          = errors.New("cow not found")
	ErrCowNotDeleted        = errors.New("cow is not deleted")
	ErrTagTaken             = errors.New("tag already used by another active cow")
	ErrNoReadings           = errors.New("no readings for cow")
	ErrUnknownSensor        = errors.New("unknown sensor type")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotifierUnavailable  = errors.New("notification service not available")
)
