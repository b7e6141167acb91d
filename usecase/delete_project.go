package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
)

// DeleteProject removes a project. A missing project and a failed delete
// are reported as distinct errors.
type DeleteProject struct {
	projects project.Store
	logger   logger.Logger
}

// NewDeleteProject builds the use case.
func NewDeleteProject(projects project.Store, log logger.Logger) *DeleteProject {
	return &DeleteProject{projects: projects, logger: log}
}

// Execute deletes the project.
func (uc *DeleteProject) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.projects.GetByID(ctx, id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return apperr.NotFound("project %s not found", id)
		}
		uc.logger.Error(ctx, "failed to load project for delete", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return apperr.Internal("failed to delete project")
	}

	if err := uc.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return apperr.NotFound("project %s not found", id)
		}
		uc.logger.Error(ctx, "failed to delete project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return apperr.Internal("failed to delete project")
	}

	return nil
}
