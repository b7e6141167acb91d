package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
)

// CreateProjectInput carries the validated fields for a new project.
type CreateProjectInput struct {
	Title       string
	Description string
	Amount      *float64
	DueDate     *time.Time
	Status      project.Status
	ContactID   uuid.UUID
}

// CreateProject creates a project. A due date, when given, must be strictly
// in the future; the check runs before the store is touched. Contact
// existence is left to the database FK constraint.
type CreateProject struct {
	projects project.Store
	logger   logger.Logger
	now      func() time.Time
}

// NewCreateProject builds the use case. A nil clock defaults to time.Now.
func NewCreateProject(projects project.Store, log logger.Logger, now func() time.Time) *CreateProject {
	if now == nil {
		now = time.Now
	}
	return &CreateProject{projects: projects, logger: log, now: now}
}

// Execute creates the project and returns it.
func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput) (*project.Project, error) {
	if input.DueDate != nil && !input.DueDate.After(uc.now()) {
		return nil, apperr.BadRequest("due date must be a future date")
	}

	status := input.Status
	if status == "" {
		status = project.StatusPending
	}

	p := &project.Project{
		Title:       input.Title,
		Description: input.Description,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Status:      status,
		ContactID:   input.ContactID,
	}

	if err := uc.projects.Create(ctx, p); err != nil {
		switch {
		case errors.Is(err, project.ErrInvalidTitle),
			errors.Is(err, project.ErrInvalidContact),
			errors.Is(err, project.ErrInvalidStatus),
			errors.Is(err, project.ErrInvalidAmount),
			errors.Is(err, project.ErrDescriptionTooLong):
			return nil, apperr.BadRequest("%s", err.Error())
		}
		uc.logger.Error(ctx, "failed to create project", map[string]interface{}{
			"error":      err.Error(),
			"title":      input.Title,
			"contact_id": input.ContactID.String(),
		})
		return nil, apperr.Internal("failed to create project")
	}

	return p, nil
}
