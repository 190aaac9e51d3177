// Package usecase implements the business logic for the messages feature.
package usecase

import "errors"

var (
	// ErrInvalidMessageType is returned when a submission carries a type
	// outside the enquiry/feedback set.
	ErrInvalidMessageType = errors.New("message type must be enquiry or feedback")

	// ErrInvalidTypeFilter is returned when a listing filter is neither empty
	// nor one of the enumerated types.
	ErrInvalidTypeFilter = errors.New("type filter must be enquiry or feedback")

	// ErrMissingField is returned when a required submission field is empty.
	ErrMissingField = errors.New("name, email, subject and message are required")
)
