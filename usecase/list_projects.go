package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
)

// ProjectPage is one page of projects plus the collection total.
type ProjectPage struct {
	Data       []*project.Project `json:"data"`
	TotalCount int                `json:"totalCount"`
}

// ListProjects returns a page of all projects and the total count.
type ListProjects struct {
	projects project.Store
	logger   logger.Logger
}

// NewListProjects builds the use case.
func NewListProjects(projects project.Store, log logger.Logger) *ListProjects {
	return &ListProjects{projects: projects, logger: log}
}

// Execute fetches the requested page; the slice and count are fetched
// concurrently with the same normalization as contact listing.
func (uc *ListProjects) Execute(ctx context.Context, page, limit int) (*ProjectPage, error) {
	take, skip := normalizePage(page, limit)

	var (
		wg       sync.WaitGroup
		data     []*project.Project
		total    int
		listErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data, listErr = uc.projects.List(ctx, take, skip)
	}()
	go func() {
		defer wg.Done()
		total, countErr = uc.projects.Count(ctx)
	}()
	wg.Wait()

	if listErr != nil || countErr != nil {
		uc.logger.Error(ctx, "failed to list projects", map[string]interface{}{
			"list_error":  errString(listErr),
			"count_error": errString(countErr),
		})
		return nil, apperr.Internal("failed to list projects")
	}

	if data == nil {
		data = []*project.Project{}
	}

	return &ProjectPage{Data: data, TotalCount: total}, nil
}

// ListProjectsByContact returns a page of one contact's projects and the
// contact-scoped total.
type ListProjectsByContact struct {
	projects project.Store
	logger   logger.Logger
}

// NewListProjectsByContact builds the use case.
func NewListProjectsByContact(projects project.Store, log logger.Logger) *ListProjectsByContact {
	return &ListProjectsByContact{projects: projects, logger: log}
}

// Execute fetches the requested page scoped to contactID.
func (uc *ListProjectsByContact) Execute(ctx context.Context, contactID uuid.UUID, page, limit int) (*ProjectPage, error) {
	take, skip := normalizePage(page, limit)

	var (
		wg       sync.WaitGroup
		data     []*project.Project
		total    int
		listErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data, listErr = uc.projects.ListByContact(ctx, contactID, take, skip)
	}()
	go func() {
		defer wg.Done()
		total, countErr = uc.projects.CountByContact(ctx, contactID)
	}()
	wg.Wait()

	if listErr != nil || countErr != nil {
		uc.logger.Error(ctx, "failed to list projects by contact", map[string]interface{}{
			"list_error":  errString(listErr),
			"count_error": errString(countErr),
			"contact_id":  contactID.String(),
		})
		return nil, apperr.Internal("failed to list projects")
	}

	if data == nil {
		data = []*project.Project{}
	}

	return &ProjectPage{Data: data, TotalCount: total}, nil
}
