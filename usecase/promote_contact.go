package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
)

// PromoteContact transitions a contact from PROSPECT to CLIENT. The
// transition is strict: promoting a contact in any other state fails rather
// than no-oping, so callers always learn the contact's actual state.
type PromoteContact struct {
	contacts contact.Store
	logger   logger.Logger
}

// NewPromoteContact builds the use case.
func NewPromoteContact(contacts contact.Store, log logger.Logger) *PromoteContact {
	return &PromoteContact{contacts: contacts, logger: log}
}

// Execute promotes the contact and returns the updated entity.
func (uc *PromoteContact) Execute(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	c, err := uc.contacts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			return nil, apperr.NotFound("contact %s not found", id)
		}
		uc.logger.Error(ctx, "failed to load contact for promotion", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, apperr.Internal("failed to promote contact")
	}

	previous := c.Status
	if err := c.Promote(); err != nil {
		return nil, apperr.BadRequest("Only prospects can be promoted. Current status: %s", previous)
	}

	if err := uc.contacts.Update(ctx, id, contact.SetStatus(contact.StatusClient)); err != nil {
		uc.logger.Error(ctx, "failed to promote contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, apperr.Internal("failed to promote contact")
	}

	uc.logger.Info(ctx, "contact promoted", map[string]interface{}{
		"contact_id": id.String(),
	})

	return c, nil
}
