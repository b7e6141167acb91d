package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
)

// GetContact retrieves a single contact by ID.
type GetContact struct {
	contacts contact.Store
	logger   logger.Logger
}

// NewGetContact builds the use case.
func NewGetContact(contacts contact.Store, log logger.Logger) *GetContact {
	return &GetContact{contacts: contacts, logger: log}
}

// Execute returns the contact or a not-found error naming the ID.
func (uc *GetContact) Execute(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return nil, apperr.NotFound("contact %s not found", id)
		}
		uc.logger.Error(ctx, "failed to get contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, apperr.Internal("failed to get contact")
	}
	return c, nil
}
