package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
)

// DeleteContact removes a contact. Deletion is not idempotent: a second
// delete of the same ID fails with not found.
type DeleteContact struct {
	contacts contact.Store
	logger   logger.Logger
}

// NewDeleteContact builds the use case.
func NewDeleteContact(contacts contact.Store, log logger.Logger) *DeleteContact {
	return &DeleteContact{contacts: contacts, logger: log}
}

// Execute deletes the contact.
func (uc *DeleteContact) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.contacts.GetByID(ctx, id); err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return apperr.NotFound("contact %s not found", id)
		}
		uc.logger.Error(ctx, "failed to load contact for delete", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return apperr.Internal("failed to delete contact")
	}

	if err := uc.contacts.Delete(ctx, id); err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return apperr.NotFound("contact %s not found", id)
		}
		uc.logger.Error(ctx, "failed to delete contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return apperr.Internal("failed to delete contact")
	}

	return nil
}
