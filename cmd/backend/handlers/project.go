package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/project"
	"github.com/relaymark/crm-backend/usecase"
	"github.com/relaymark/crm-backend/validation"
)

// ProjectHandler handles project-related requests. Creates and updates run
// through the save workflow so the promoteContact flag can take effect.
type ProjectHandler struct {
	saveProject   *usecase.SaveProject
	getProject    *usecase.GetProject
	deleteProject *usecase.DeleteProject
	listProjects  *usecase.ListProjects
	listByContact *usecase.ListProjectsByContact
	validate      *validation.Validator
	logger        logger.Logger
}

// NewProjectHandler creates a new project handler wired to its use cases.
func NewProjectHandler(projects project.Store, contacts contact.Store, validate *validation.Validator, log logger.Logger) *ProjectHandler {
	createProject := usecase.NewCreateProject(projects, log, nil)
	updateProject := usecase.NewUpdateProject(projects, log)
	getProject := usecase.NewGetProject(projects, log)
	promote := usecase.NewPromoteContact(contacts, log)

	return &ProjectHandler{
		saveProject:   usecase.NewSaveProject(contacts, createProject, updateProject, getProject, promote, log),
		getProject:    getProject,
		deleteProject: usecase.NewDeleteProject(projects, log),
		listProjects:  usecase.NewListProjects(projects, log),
		listByContact: usecase.NewListProjectsByContact(projects, log),
		validate:      validate,
		logger:        log,
	}
}

// Create handles creating a project.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.ProjectCreate
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.validate.Struct(req); errs != nil {
		respondValidationErrors(w, errs)
		return
	}

	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid contact ID: must be a valid UUID")
		return
	}

	input := usecase.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Status:      project.Status(req.Status),
		ContactID:   contactID,
	}

	if req.DueDate != "" {
		due, err := validation.ParseDate(req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "dueDate must be a valid ISO date")
			return
		}
		input.DueDate = &due
	}

	p, err := h.saveProject.Create(r.Context(), input, req.PromoteContact)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

// List handles listing projects with pagination.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	result, err := h.listProjects.Execute(r.Context(), page, limit)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ListByContact handles listing one contact's projects with pagination.
func (h *ProjectHandler) ListByContact(w http.ResponseWriter, r *http.Request) {
	contactID, ok := parseUUIDOrRespond(w, r, "contactId", "contact")
	if !ok {
		return
	}

	page, limit := parsePagination(r)

	result, err := h.listByContact.Execute(r.Context(), contactID, page, limit)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID handles getting a single project by ID.
func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "project")
	if !ok {
		return
	}

	p, err := h.getProject.Execute(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Update handles partially updating a project.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "project")
	if !ok {
		return
	}

	var req validation.ProjectUpdate
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.validate.Struct(req); errs != nil {
		respondValidationErrors(w, errs)
		return
	}

	// Build setters
	var setters []project.UpdateSetter
	var target project.Status

	if req.Title != nil {
		setters = append(setters, project.SetTitle(*req.Title))
	}
	if req.Description != nil {
		setters = append(setters, project.SetDescription(*req.Description))
	}
	if req.Amount != nil {
		setters = append(setters, project.SetAmount(*req.Amount))
	}
	if req.DueDate != nil {
		due, err := validation.ParseDate(*req.DueDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "dueDate must be a valid ISO date")
			return
		}
		setters = append(setters, project.SetDueDate(due))
	}
	if req.Status != nil {
		target = project.Status(*req.Status)
		setters = append(setters, project.SetStatus(target))
	}

	if len(setters) == 0 {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	p, err := h.saveProject.Update(r.Context(), id, target, req.PromoteContact, setters...)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

// Delete handles deleting a project.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "project")
	if !ok {
		return
	}

	if err := h.deleteProject.Execute(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}

	respondSuccess(w, "project deleted successfully")
}
