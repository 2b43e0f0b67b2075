package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Store errors
	ErrEmptyText    = fmt.Errorf("task text is empty")
	ErrTaskNotFound = fmt.Errorf("task not found")
	ErrAmbiguousID  = fmt.Errorf("ambiguous task id")

	// Sync and API errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrSyncFailed         = fmt.Errorf("sync failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
