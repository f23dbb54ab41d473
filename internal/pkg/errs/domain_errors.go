package errs

import "errors"

// Sentinel errors shared between the usecase layers and the HTTP handlers.
var (
	// Range and validation errors
	ErrInvalidRange = errors.New("departure must be after arrival")
	ErrValidation   = errors.New("validation failed")

	// Lookup errors
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrRatePeriodNotFound = errors.New("rate period not found")
	ErrOfferNotFound      = errors.New("offer not found")
	ErrFeeNotFound        = errors.New("fee not found")

	// Write conflicts
	ErrRatePeriodConflict = errors.New("rate period overlaps an existing period")

	// External calendar feed errors
	ErrFeedUnavailable = errors.New("calendar feed unavailable or malformed")
	ErrFeedURLMissing  = errors.New("property has no calendar feed url")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
