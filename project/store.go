package project

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for project persistence operations.
type Store interface {
	// Create creates a new project in the store.
	Create(ctx context.Context, project *Project) error

	// GetByID retrieves a project by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// List retrieves a page of projects ordered by creation time.
	List(ctx context.Context, limit, offset int) ([]*Project, error)

	// ListByContact retrieves a page of projects owned by a specific contact.
	ListByContact(ctx context.Context, contactID uuid.UUID, limit, offset int) ([]*Project, error)

	// Count returns the total number of projects.
	Count(ctx context.Context) (int, error)

	// CountByContact returns the number of projects owned by a specific contact.
	CountByContact(ctx context.Context, contactID uuid.UUID) (int, error)

	// Update updates a project with the given setters.
	Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error

	// Delete removes a project by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateSetter is a function that updates a project field.
type UpdateSetter func(*Project) error
