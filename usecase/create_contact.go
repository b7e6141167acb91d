package usecase

import (
	"context"
	"errors"

	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
)

// CreateContactInput carries the validated fields for a new contact.
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Notes   string
	Status  contact.Status
}

// CreateContact creates a contact, enforcing email uniqueness. New contacts
// default to PROSPECT when no status is given.
type CreateContact struct {
	contacts contact.Store
	logger   logger.Logger
}

// NewCreateContact builds the use case.
func NewCreateContact(contacts contact.Store, log logger.Logger) *CreateContact {
	return &CreateContact{contacts: contacts, logger: log}
}

// Execute creates the contact and returns it.
func (uc *CreateContact) Execute(ctx context.Context, input CreateContactInput) (*contact.Contact, error) {
	existing, err := uc.contacts.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, contact.ErrContactNotFound) {
		uc.logger.Error(ctx, "failed to check email availability", map[string]interface{}{
			"error": err.Error(),
			"email": input.Email,
		})
		return nil, apperr.Internal("failed to create contact")
	}
	if existing != nil {
		return nil, apperr.Conflict("a contact with email %s already exists", input.Email)
	}

	status := input.Status
	if status == "" {
		status = contact.StatusProspect
	}

	c := &contact.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Company: input.Company,
		Notes:   input.Notes,
		Status:  status,
	}

	if err := uc.contacts.Create(ctx, c); err != nil {
		switch {
		case errors.Is(err, contact.ErrDuplicateEmail):
			// Lost the read-then-write race; the unique constraint caught it.
			return nil, apperr.Conflict("a contact with email %s already exists", input.Email)
		case errors.Is(err, contact.ErrInvalidName),
			errors.Is(err, contact.ErrInvalidEmail),
			errors.Is(err, contact.ErrInvalidStatus):
			return nil, apperr.BadRequest("%s", err.Error())
		}
		uc.logger.Error(ctx, "failed to create contact", map[string]interface{}{
			"error": err.Error(),
			"email": input.Email,
		})
		return nil, apperr.Internal("failed to create contact")
	}

	return c, nil
}
