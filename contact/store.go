package contact

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the interface for contact persistence operations.
type Store interface {
	// Create creates a new contact in the store.
	Create(ctx context.Context, contact *Contact) error

	// GetByID retrieves a contact by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)

	// GetByEmail retrieves a contact by its unique email address.
	GetByEmail(ctx context.Context, email string) (*Contact, error)

	// List retrieves a page of contacts ordered by creation time.
	List(ctx context.Context, limit, offset int) ([]*Contact, error)

	// Count returns the total number of contacts.
	Count(ctx context.Context) (int, error)

	// Update updates a contact with the given setters.
	Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error

	// Delete removes a contact by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpdateSetter is a function that updates a contact field.
type UpdateSetter func(*Contact) error
