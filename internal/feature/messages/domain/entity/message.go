// Package entity defines the domain entities for the messages feature.
package entity

import "time"

// Message types. The set is closed: every stored message is one of the two.
const (
	TypeEnquiry  = "enquiry"
	TypeFeedback = "feedback"
)

// ValidType reports whether t is one of the enumerated message types.
func ValidType(t string) bool {
	return t == TypeEnquiry || t == TypeFeedback
}

// Message represents a submitted enquiry or feedback entry.
// The body is stored verbatim; escaping and linkification happen only at
// display time (e.g. in the notification email), never at rest.
type Message struct {
	// ID is the server-assigned unique identifier.
	ID uint `gorm:"primaryKey"`

	// Type discriminates enquiry from feedback. Always one of the two constants.
	Type string `gorm:"size:20;not null;index"`

	// Name and Email are the contact details supplied by the submitter.
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:255;not null"`

	// Subject and Body are the free-text content, both required.
	Subject string `gorm:"size:255;not null"`
	Body    string `gorm:"column:message;type:text;not null"`

	// CreatedAt is assigned by the server on insert.
	CreatedAt time.Time
}
