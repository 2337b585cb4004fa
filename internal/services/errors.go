package services

import "errors"

// Sentinel errors handlers translate into user-facing envelope messages.
var (
	ErrMissingDetails = errors.New("missing details")
	ErrCompanyExists  = errors.New("company already registered")
	ErrNoAccount      = errors.New("no account with this email")
	ErrWrongPassword  = errors.New("incorrect password")
	ErrJobNotFound    = errors.New("job not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrAlreadyApplied = errors.New("already applied")
	ErrNoApplications = errors.New("no applications")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrInvalidSalary  = errors.New("salary must not be negative")
	ErrAppNotFound    = errors.New("application not found")
)
