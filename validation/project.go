package validation

import (
	"github.com/go-playground/validator/v10"
)

// ProjectCreate is the schema for creating a project. PromoteContact is an
// advisory flag; the save workflow re-checks eligibility against domain
// state before acting on it.
type ProjectCreate struct {
	Title          string   `json:"title" validate:"required"`
	Description    string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Amount         *float64 `json:"amount,omitempty" validate:"omitnil,gt=0"`
	DueDate        string   `json:"dueDate,omitempty" validate:"omitempty,isodate"`
	Status         string   `json:"status,omitempty" validate:"omitempty,oneof=PENDING QUOTE_SENT ACCEPTED IN_PROGRESS COMPLETED CANCELLED"`
	ContactID      string   `json:"contactId" validate:"required,entityid"`
	PromoteContact bool     `json:"promoteContact,omitempty"`
}

// ProjectUpdate is the schema for partially updating a project. Nil fields
// are left untouched; set fields are validated even when empty.
type ProjectUpdate struct {
	Title          *string  `json:"title,omitempty" validate:"omitnil,min=1"`
	Description    *string  `json:"description,omitempty" validate:"omitnil,max=1000"`
	Amount         *float64 `json:"amount,omitempty" validate:"omitnil,gt=0"`
	DueDate        *string  `json:"dueDate,omitempty" validate:"omitnil,isodate"`
	Status         *string  `json:"status,omitempty" validate:"omitnil,oneof=PENDING QUOTE_SENT ACCEPTED IN_PROGRESS COMPLETED CANCELLED"`
	PromoteContact bool     `json:"promoteContact,omitempty"`
}

// projectCreateStructLevel enforces the cross-field rule that terminal
// statuses carry a due date at creation time.
func projectCreateStructLevel(sl validator.StructLevel) {
	pc := sl.Current().Interface().(ProjectCreate)
	if (pc.Status == "COMPLETED" || pc.Status == "CANCELLED") && pc.DueDate == "" {
		sl.ReportError(pc.DueDate, "dueDate", "DueDate", "required_with_status", "")
	}
}
