// Package validation defines the request schemas for contacts and projects.
// Schemas validate raw transport input and report a structured list of
// field errors; they never decide how a failure is surfaced.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/relaymark/crm-backend/internal/uuidutil"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// FieldError is a single validation failure, addressed by JSON field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the list of field errors produced by a failed validation.
type Errors []FieldError

// Error implements the error interface with the first failure, which is the
// message surfaced to API clients.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%s %s", e[0].Field, e[0].Message)
}

// Validator validates request schemas.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the CRM's custom rules registered.
func New() *Validator {
	v := validator.New()

	// Report JSON field names rather than Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("entityid", func(fl validator.FieldLevel) bool {
		return uuidutil.IsValid(fl.Field().String())
	})

	v.RegisterStructValidation(projectCreateStructLevel, ProjectCreate{})

	return &Validator{validate: v}
}

// Struct validates a schema value and returns the field errors, or nil when
// the value is valid.
func (v *Validator) Struct(s interface{}) Errors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{{Field: "", Message: err.Error()}}
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldPath(fe),
			Message: messageFor(fe),
		})
	}
	return out
}

// ParseDate parses an ISO date string, accepting either a full RFC 3339
// timestamp or a bare calendar date.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// fieldPath strips the schema type prefix from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone10":
		return "must be exactly 10 digits"
	case "isodate":
		return "must be a valid ISO date"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "entityid":
		return "must be a valid identifier"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "required_with_status":
		return "is required when status is COMPLETED or CANCELLED"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
