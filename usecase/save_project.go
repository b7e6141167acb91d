package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
)

// ShouldPromote reports whether saving a project with the target status
// warrants promoting the owning contact. Promotion is only sensible when
// the contact is still a prospect and the project signals accepted work.
func ShouldPromote(contactStatus contact.Status, target project.Status) bool {
	if contactStatus != contact.StatusProspect {
		return false
	}
	return target == project.StatusAccepted || target == project.StatusInProgress
}

// SaveProject sequences an optional contact promotion ahead of a project
// mutation. The caller-supplied promote flag is advisory: the workflow
// recomputes eligibility from the contact's and project's actual states and
// silently skips promotion when it does not apply. Project mutations never
// auto-promote on their own.
type SaveProject struct {
	contacts      contact.Store
	createProject *CreateProject
	updateProject *UpdateProject
	getProject    *GetProject
	promote       *PromoteContact
	logger        logger.Logger
}

// NewSaveProject builds the workflow from its constituent use cases.
func NewSaveProject(
	contacts contact.Store,
	createProject *CreateProject,
	updateProject *UpdateProject,
	getProject *GetProject,
	promote *PromoteContact,
	log logger.Logger,
) *SaveProject {
	return &SaveProject{
		contacts:      contacts,
		createProject: createProject,
		updateProject: updateProject,
		getProject:    getProject,
		promote:       promote,
		logger:        log,
	}
}

// Create runs the promotion step when requested and eligible, then creates
// the project.
func (uc *SaveProject) Create(ctx context.Context, input CreateProjectInput, promote bool) (*project.Project, error) {
	target := input.Status
	if target == "" {
		target = project.StatusPending
	}

	if err := uc.maybePromote(ctx, input.ContactID, target, promote); err != nil {
		return nil, err
	}

	return uc.createProject.Execute(ctx, input)
}

// Update runs the promotion step when requested and eligible, then applies
// the project update. The target status is the status the update sets; pass
// an empty status when the update leaves it unchanged.
func (uc *SaveProject) Update(ctx context.Context, id uuid.UUID, target project.Status, promote bool, setters ...project.UpdateSetter) (*project.Project, error) {
	if promote && target != "" {
		existing, err := uc.getProject.Execute(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := uc.maybePromote(ctx, existing.ContactID, target, true); err != nil {
			return nil, err
		}
	}

	return uc.updateProject.Execute(ctx, id, setters...)
}

func (uc *SaveProject) maybePromote(ctx context.Context, contactID uuid.UUID, target project.Status, requested bool) error {
	if !requested {
		return nil
	}

	c, err := uc.contacts.GetByID(ctx, contactID)
	if err != nil {
		if errors.Is(err, contact.ErrContactNotFound) {
			// Let the project mutation surface the missing contact.
			return nil
		}
		uc.logger.Error(ctx, "failed to load contact for promotion", map[string]interface{}{
			"error":      err.Error(),
			"contact_id": contactID.String(),
		})
		return apperr.Internal("failed to save project")
	}

	if !ShouldPromote(c.Status, target) {
		return nil
	}

	if _, err := uc.promote.Execute(ctx, contactID); err != nil {
		return err
	}

	return nil
}
