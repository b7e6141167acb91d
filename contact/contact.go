package contact

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrContactNotFound is returned when a contact is not found.
	ErrContactNotFound = errors.New("contact not found")

	// ErrDuplicateEmail is returned when a contact email is already in use.
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrInvalidName is returned when a contact name is empty or too short.
	ErrInvalidName = errors.New("contact name must be at least 2 characters")

	// ErrInvalidEmail is returned when an email is empty.
	ErrInvalidEmail = errors.New("contact email is required")

	// ErrInvalidStatus is returned when a status is not a known contact status.
	ErrInvalidStatus = errors.New("invalid contact status")

	// ErrNotProspect is returned when promoting a contact that is not a prospect.
	ErrNotProspect = errors.New("contact is not a prospect")
)

// Status is the lifecycle state of a contact.
type Status string

const (
	// StatusProspect is the initial state of every contact.
	StatusProspect Status = "PROSPECT"

	// StatusClient is the state of a contact with accepted work.
	StatusClient Status = "CLIENT"
)

// Valid reports whether s is a known contact status.
func (s Status) Valid() bool {
	switch s {
	case StatusProspect, StatusClient:
		return true
	}
	return false
}

// Contact represents a prospect or client in the system.
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	Status    Status    `json:"status" gorm:"type:varchar(16);not null;default:'PROSPECT'"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks if the contact has valid required fields.
func (c *Contact) Validate() error {
	if len(c.Name) < 2 {
		return ErrInvalidName
	}
	if c.Email == "" {
		return ErrInvalidEmail
	}
	if !c.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// Promote transitions the contact from PROSPECT to CLIENT. The transition is
// one-directional; promoting a contact in any other state returns
// ErrNotProspect and leaves the status unchanged.
func (c *Contact) Promote() error {
	if c.Status != StatusProspect {
		return ErrNotProspect
	}
	c.Status = StatusClient
	return nil
}
