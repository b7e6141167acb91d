package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
)

// UpdateProject partially updates an existing project.
type UpdateProject struct {
	projects project.Store
	logger   logger.Logger
}

// NewUpdateProject builds the use case.
func NewUpdateProject(projects project.Store, log logger.Logger) *UpdateProject {
	return &UpdateProject{projects: projects, logger: log}
}

// Execute applies the given setters to the project and returns the updated
// entity. The existence check runs before any mutation.
func (uc *UpdateProject) Execute(ctx context.Context, id uuid.UUID, setters ...project.UpdateSetter) (*project.Project, error) {
	if _, err := uc.projects.GetByID(ctx, id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return nil, apperr.NotFound("project %s not found", id)
		}
		uc.logger.Error(ctx, "failed to load project for update", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return nil, apperr.Internal("failed to update project")
	}

	if err := uc.projects.Update(ctx, id, setters...); err != nil {
		switch {
		case errors.Is(err, project.ErrProjectNotFound):
			return nil, apperr.NotFound("project %s not found", id)
		case errors.Is(err, project.ErrInvalidTitle),
			errors.Is(err, project.ErrInvalidStatus),
			errors.Is(err, project.ErrInvalidAmount),
			errors.Is(err, project.ErrDescriptionTooLong):
			return nil, apperr.BadRequest("%s", err.Error())
		}
		uc.logger.Error(ctx, "failed to update project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return nil, apperr.Internal("failed to update project")
	}

	p, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error(ctx, "failed to reload updated project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return nil, apperr.Internal("failed to update project")
	}
	return p, nil
}
