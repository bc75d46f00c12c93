package domain

import "errors"

var (
	// ErrPairCountMismatch is returned when the number of captured images and
	// user entries differ. This is a configuration error that aborts the
	// batch before any collaborator call.
	ErrPairCountMismatch = errors.New("captured image count does not match user entry count")

	// ErrExtractionFailed is returned when the vision collaborator could not
	// produce a field set for an image.
	ErrExtractionFailed = errors.New("product info extraction failed")

	// ErrComparisonFailed is returned when the comparator collaborator call fails.
	ErrComparisonFailed = errors.New("field comparison failed")

	// ErrVisionAPIFailure is returned when the vision API request itself fails.
	ErrVisionAPIFailure = errors.New("vision API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrRecordNotFound is returned when a verification record is not in the store.
	ErrRecordNotFound = errors.New("verification record not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")
)
