package project

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidTitle is returned when a project title is empty.
	ErrInvalidTitle = errors.New("project title is required")

	// ErrInvalidContact is returned when contact_id is not set.
	ErrInvalidContact = errors.New("contact_id is required")

	// ErrInvalidStatus is returned when a status is not a known project status.
	ErrInvalidStatus = errors.New("invalid project status")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("project amount must be positive")

	// ErrDescriptionTooLong is returned when a description exceeds the limit.
	ErrDescriptionTooLong = errors.New("project description must be at most 1000 characters")
)

// MaxDescriptionLength is the upper bound on project descriptions.
const MaxDescriptionLength = 1000

// Status is the lifecycle state of a project.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusQuoteSent  Status = "QUOTE_SENT"
	StatusAccepted   Status = "ACCEPTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

// Valid reports whether s is a known project status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusQuoteSent, StatusAccepted,
		StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project represents a unit of work owned by a contact.
type Project struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	Amount      *float64   `json:"amount,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      Status     `json:"status" gorm:"type:varchar(16);not null;default:'PENDING'"`
	ContactID   uuid.UUID  `json:"contactId" gorm:"type:char(36);not null;index:idx_contact_id"`
	CreatedAt   time.Time  `json:"createdAt"`

	// ContactName is populated from the joined contact at read time. It is
	// never written and is not authoritative.
	ContactName string `json:"contactName,omitempty" gorm:"->;-:migration"`
}

// Validate checks if the project has valid required fields.
func (p *Project) Validate() error {
	if p.Title == "" {
		return ErrInvalidTitle
	}
	if p.ContactID == uuid.Nil {
		return ErrInvalidContact
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.Amount != nil && *p.Amount <= 0 {
		return ErrInvalidAmount
	}
	if len(p.Description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

// Start moves a pending project into progress. It is a no-op for any other
// starting state.
func (p *Project) Start() {
	if p.Status == StatusPending {
		p.Status = StatusInProgress
	}
}

// Complete marks an in-progress project as completed. It is a no-op for any
// other starting state.
func (p *Project) Complete() {
	if p.Status == StatusInProgress {
		p.Status = StatusCompleted
	}
}

// Cancel cancels a pending or in-progress project. It is a no-op for any
// other starting state.
func (p *Project) Cancel() {
	switch p.Status {
	case StatusPending, StatusInProgress:
		p.Status = StatusCancelled
	}
}
