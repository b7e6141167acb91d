package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/internal/uuidutil"
	"github.com/relaymark/crm-backend/logger"
	"gorm.io/gorm"
)

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed contact store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new contact in the database. The ID and status are
// assigned here when unset so callers never persist a half-initialized row.
func (s *MySQLStore) Create(ctx context.Context, contact *Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuidutil.New()
	}
	if contact.Status == "" {
		contact.Status = StatusProspect
	}

	if err := contact.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		// Check for duplicate key error (MySQL and SQLite)
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		s.logger.Error(ctx, "failed to create contact", map[string]interface{}{
			"error": err.Error(),
			"email": contact.Email,
		})
		return err
	}

	s.logger.Info(ctx, "contact created", map[string]interface{}{
		"contact_id": contact.ID.String(),
		"email":      contact.Email,
		"status":     string(contact.Status),
	})

	return nil
}

// GetByID retrieves a contact by its ID.
func (s *MySQLStore) GetByID(ctx context.Context, id uuid.UUID) (*Contact, error) {
	var contact Contact
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		s.logger.Error(ctx, "failed to get contact by ID", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return nil, err
	}

	return &contact, nil
}

// GetByEmail retrieves a contact by its email address.
func (s *MySQLStore) GetByEmail(ctx context.Context, email string) (*Contact, error) {
	var contact Contact
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		s.logger.Error(ctx, "failed to get contact by email", map[string]interface{}{
			"error": err.Error(),
			"email": email,
		})
		return nil, err
	}

	return &contact, nil
}

// List retrieves a paginated list of contacts, newest first.
func (s *MySQLStore) List(ctx context.Context, limit, offset int) ([]*Contact, error) {
	var contacts []*Contact
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&contacts).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list contacts", map[string]interface{}{
			"error":  err.Error(),
			"limit":  limit,
			"offset": offset,
		})
		return nil, err
	}

	return contacts, nil
}

// Count returns the total number of contacts.
func (s *MySQLStore) Count(ctx context.Context) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&Contact{}).
		Count(&count).Error

	if err != nil {
		s.logger.Error(ctx, "failed to count contacts", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	return int(count), nil
}

// Update updates a contact with the given setters.
func (s *MySQLStore) Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error {
	contact, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(contact); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Save(contact).Error; err != nil {
		// Check for duplicate key error (MySQL and SQLite)
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrDuplicateEmail
		}
		s.logger.Error(ctx, "failed to update contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "contact updated", map[string]interface{}{
		"contact_id": id.String(),
	})

	return nil
}

// Delete removes a contact. Deleting an absent contact returns
// ErrContactNotFound; the database FK policy rejects deletes of contacts
// that still own projects.
func (s *MySQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Contact{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete contact", map[string]interface{}{
			"error":      result.Error.Error(),
			"contact_id": id.String(),
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}

	s.logger.Info(ctx, "contact deleted", map[string]interface{}{
		"contact_id": id.String(),
	})

	return nil
}
