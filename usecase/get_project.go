package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
)

// GetProject retrieves a single project by ID, with the owning contact's
// display name populated.
type GetProject struct {
	projects project.Store
	logger   logger.Logger
}

// NewGetProject builds the use case.
func NewGetProject(projects project.Store, log logger.Logger) *GetProject {
	return &GetProject{projects: projects, logger: log}
}

// Execute returns the project or a not-found error naming the ID.
func (uc *GetProject) Execute(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return nil, apperr.NotFound("project %s not found", id)
		}
		uc.logger.Error(ctx, "failed to get project", map[string]interface{}{
			"error":      err.Error(),
			"project_id": id.String(),
		})
		return nil, apperr.Internal("failed to get project")
	}
	return p, nil
}
