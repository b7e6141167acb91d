package project

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/internal/uuidutil"
	"github.com/relaymark/crm-backend/logger"
	"gorm.io/gorm"
)

// contactNameSelect joins the owning contact so reads carry its display name.
const contactNameSelect = "projects.*, contacts.name AS contact_name"

// MySQLStore implements the Store interface using GORM and MySQL.
type MySQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewMySQLStore creates a new MySQL-backed project store.
func NewMySQLStore(db *gorm.DB, log logger.Logger) *MySQLStore {
	return &MySQLStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new project in the database. The ID and status are
// assigned here when unset. The contact_id FK constraint rejects projects
// referencing a missing contact.
func (s *MySQLStore) Create(ctx context.Context, project *Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuidutil.New()
	}
	if project.Status == "" {
		project.Status = StatusPending
	}

	if err := project.Validate(); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Create(project).Error; err != nil {
		s.logger.Error(ctx, "failed to create project", map[string]interface{}{
			"error":      err.Error(),
			"title":      project.Title,
			"contact_id": project.ContactID.String(),
		})
		return err
	}

	s.logger.Info(ctx, "project created", map[string]interface{}{
		"project_id": project.ID.String(),
		"title":      project.Title,
		"contact_id": project.ContactID.String(),
		"status":     string(project.Status),
	})

	return nil
}

// GetByID retrieves a project by its ID, with the owning contact's name.
func (s *MySQLStore) GetByID(ctx context.Context, id uuid.UUID) (*Project, error) {
	var project Project
	err := s.db.WithContext(ctx).
		Select(contactNameSelect).
		Joins("LEFT JOIN contacts ON contacts.id = projects.contact_id").
		Where("projects.id = ?", id).
		First(&project).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		s.logger.Error(ctx, "failed to get project by ID", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return nil, err
	}

	return &project, nil
}

// List retrieves a paginated list of projects, newest first.
func (s *MySQLStore) List(ctx context.Context, limit, offset int) ([]*Project, error) {
	var projects []*Project
	err := s.db.WithContext(ctx).
		Select(contactNameSelect).
		Joins("LEFT JOIN contacts ON contacts.id = projects.contact_id").
		Order("projects.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list projects", map[string]interface{}{
			"error":  err.Error(),
			"limit":  limit,
			"offset": offset,
		})
		return nil, err
	}

	return projects, nil
}

// ListByContact retrieves a paginated list of projects for a specific contact.
func (s *MySQLStore) ListByContact(ctx context.Context, contactID uuid.UUID, limit, offset int) ([]*Project, error) {
	var projects []*Project
	err := s.db.WithContext(ctx).
		Select(contactNameSelect).
		Joins("LEFT JOIN contacts ON contacts.id = projects.contact_id").
		Where("projects.contact_id = ?", contactID).
		Order("projects.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&projects).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list projects by contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": contactID.String(),
			"limit":      limit,
			"offset":     offset,
		})
		return nil, err
	}

	return projects, nil
}

// Count returns the total number of projects.
func (s *MySQLStore) Count(ctx context.Context) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&Project{}).
		Count(&count).Error

	if err != nil {
		s.logger.Error(ctx, "failed to count projects", map[string]interface{}{
			"error": err.Error(),
		})
		return 0, err
	}

	return int(count), nil
}

// CountByContact returns the number of projects owned by a specific contact.
func (s *MySQLStore) CountByContact(ctx context.Context, contactID uuid.UUID) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&Project{}).
		Where("contact_id = ?", contactID).
		Count(&count).Error

	if err != nil {
		s.logger.Error(ctx, "failed to count projects by contact", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": contactID.String(),
		})
		return 0, err
	}

	return int(count), nil
}

// Update updates a project with the given setters.
func (s *MySQLStore) Update(ctx context.Context, id uuid.UUID, setters ...UpdateSetter) error {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(project); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Save(project).Error; err != nil {
		s.logger.Error(ctx, "failed to update project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return err
	}

	s.logger.Info(ctx, "project updated", map[string]interface{}{
		"project_id": id.String(),
	})

	return nil
}

// Delete removes a project. Deleting an absent project returns
// ErrProjectNotFound.
func (s *MySQLStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Project{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete project", map[string]interface{}{
			"error":      result.Error.Error(),
			"project_id": id.String(),
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}

	s.logger.Info(ctx, "project deleted", map[string]interface{}{
		"project_id": id.String(),
	})

	return nil
}
