package validation

// ContactCreate is the schema for creating a contact.
type ContactCreate struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"omitempty,phone10"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=PROSPECT CLIENT"`
}

// ContactUpdate is the schema for partially updating a contact. Nil fields
// are left untouched; set fields are validated even when empty.
type ContactUpdate struct {
	Name    *string `json:"name,omitempty" validate:"omitnil,min=2"`
	Email   *string `json:"email,omitempty" validate:"omitnil,email"`
	Phone   *string `json:"phone,omitempty" validate:"omitnil,phone10"`
	Company *string `json:"company,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Status  *string `json:"status,omitempty" validate:"omitnil,oneof=PROSPECT CLIENT"`
}
