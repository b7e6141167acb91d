package handlers

import (
	"net/http"

	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/usecase"
	"github.com/relaymark/crm-backend/validation"
)

// ContactHandler handles contact-related requests.
type ContactHandler struct {
	createContact *usecase.CreateContact
	getContact    *usecase.GetContact
	updateContact *usecase.UpdateContact
	deleteContact *usecase.DeleteContact
	listContacts  *usecase.ListContacts
	validate      *validation.Validator
	logger        logger.Logger
}

// NewContactHandler creates a new contact handler wired to its use cases.
func NewContactHandler(store contact.Store, validate *validation.Validator, log logger.Logger) *ContactHandler {
	return &ContactHandler{
		createContact: usecase.NewCreateContact(store, log),
		getContact:    usecase.NewGetContact(store, log),
		updateContact: usecase.NewUpdateContact(store, log),
		deleteContact: usecase.NewDeleteContact(store, log),
		listContacts:  usecase.NewListContacts(store, log),
		validate:      validate,
		logger:        log,
	}
}

// Create handles creating a contact.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req validation.ContactCreate
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.validate.Struct(req); errs != nil {
		respondValidationErrors(w, errs)
		return
	}

	c, err := h.createContact.Execute(r.Context(), usecase.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Notes:   req.Notes,
		Status:  contact.Status(req.Status),
	})
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, c)
}

// List handles listing contacts with pagination.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	result, err := h.listContacts.Execute(r.Context(), page, limit)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID handles getting a single contact by ID.
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "contact")
	if !ok {
		return
	}

	c, err := h.getContact.Execute(r.Context(), id)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Update handles partially updating a contact.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "contact")
	if !ok {
		return
	}

	var req validation.ContactUpdate
	if err := parseJSON(r, &req, h.logger); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := h.validate.Struct(req); errs != nil {
		respondValidationErrors(w, errs)
		return
	}

	// Build setters
	var setters []contact.UpdateSetter

	if req.Name != nil {
		setters = append(setters, contact.SetName(*req.Name))
	}
	if req.Email != nil {
		setters = append(setters, contact.SetEmail(*req.Email))
	}
	if req.Phone != nil {
		setters = append(setters, contact.SetPhone(*req.Phone))
	}
	if req.Company != nil {
		setters = append(setters, contact.SetCompany(*req.Company))
	}
	if req.Notes != nil {
		setters = append(setters, contact.SetNotes(*req.Notes))
	}
	if req.Status != nil {
		setters = append(setters, contact.SetStatus(contact.Status(*req.Status)))
	}

	if len(setters) == 0 {
		respondError(w, http.StatusBadRequest, "no fields to update")
		return
	}

	c, err := h.updateContact.Execute(r.Context(), id, setters...)
	if err != nil {
		respondAppError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// Delete handles deleting a contact.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUIDOrRespond(w, r, "id", "contact")
	if !ok {
		return
	}

	if err := h.deleteContact.Execute(r.Context(), id); err != nil {
		respondAppError(w, err)
		return
	}

	respondSuccess(w, "contact deleted successfully")
}
