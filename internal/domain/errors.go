package domain

import "errors"

var (
	// ErrItemRequired is returned when a meal is submitted without an item name
	ErrItemRequired = errors.New("item name is required")

	// ErrEntryNotFound is returned when a meal entry does not exist or
	// belongs to a different user
	ErrEntryNotFound = errors.New("meal entry not found")

	// ErrGoalNotFound is returned when a user has no goal on record
	ErrGoalNotFound = errors.New("no goal set")

	// ErrUserExists is returned when registering a username that is taken
	ErrUserExists = errors.New("username already exists")

	// ErrUserNotFound is returned when a user record cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials is returned for a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCredentialsRequired is returned when registering with a blank
	// username or password
	ErrCredentialsRequired = errors.New("username and password are required")

	// ErrRegistrationClosed is returned when an unauthenticated caller tries
	// to register after the first account has been created
	ErrRegistrationClosed = errors.New("registration is closed")

	// ErrInvalidPeriod is returned for an unrecognized summary grouping
	ErrInvalidPeriod = errors.New("period must be day, week, or month")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
