package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
)

// UpdateContact partially updates an existing contact.
type UpdateContact struct {
	contacts contact.Store
	logger   logger.Logger
}

// NewUpdateContact builds the use case.
func NewUpdateContact(contacts contact.Store, log logger.Logger) *UpdateContact {
	return &UpdateContact{contacts: contacts, logger: log}
}

// Execute applies the given setters to the contact and returns the updated
// entity. The existence check runs before any mutation so a missing contact
// never reaches the store's update path.
func (uc *UpdateContact) Execute(ctx context.Context, id uuid.UUID, setters ...contact.UpdateSetter) (*contact.Contact, error) {
	if _, err := uc.contacts.GetByID(ctx, id); err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return nil, apperr.NotFound("contact %s not found", id)
		}
		uc.logger.Error(ctx, "failed to load contact for update", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, apperr.Internal("failed to update contact")
	}

	if err := uc.contacts.Update(ctx, id, setters...); err != nil {
		switch {
		case errors.Is(err, contact.ErrContactNotFound):
			return nil, apperr.NotFound("contact %s not found", id)
		case errors.Is(err, contact.ErrDuplicateEmail):
			return nil, apperr.Conflict("email is already in use by another contact")
		case errors.Is(err, contact.ErrInvalidName),
			errors.Is(err, contact.ErrInvalidEmail),
			errors.Is(err, contact.ErrInvalidStatus):
			return nil, apperr.BadRequest("%s", err.Error())
		}
		uc.logger.Error(ctx, "failed to update contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, apperr.Internal("failed to update contact")
	}

	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error(ctx, "failed to reload updated contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, apperr.Internal("failed to update contact")
	}
	return c, nil
}
