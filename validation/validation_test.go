package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestContactCreate(t *testing.T) {
	v := New()

	t.Run("valid input", func(t *testing.T) {
		errs := v.Struct(ContactCreate{
			Name:   "Jane Doe",
			Email:  "jane@example.com",
			Phone:  "5551234567",
			Status: "PROSPECT",
		})
		assert.Nil(t, errs)
	})

	t.Run("optional fields may be empty", func(t *testing.T) {
		errs := v.Struct(ContactCreate{Name: "Jane Doe", Email: "jane@example.com"})
		assert.Nil(t, errs)
	})

	t.Run("name too short", func(t *testing.T) {
		errs := v.Struct(ContactCreate{Name: "J", Email: "jane@example.com"})
		require.Len(t, errs, 1)
		assert.Equal(t, "name", errs[0].Field)
		assert.Equal(t, "must be at least 2 characters", errs[0].Message)
	})

	t.Run("invalid email", func(t *testing.T) {
		errs := v.Struct(ContactCreate{Name: "Jane Doe", Email: "not-an-email"})
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
		assert.Equal(t, "must be a valid email address", errs[0].Message)
	})

	t.Run("phone must be exactly 10 digits", func(t *testing.T) {
		for _, phone := range []string{"123", "12345678901", "555-123-456", "555123456a"} {
			errs := v.Struct(ContactCreate{Name: "Jane Doe", Email: "jane@example.com", Phone: phone})
			require.Len(t, errs, 1, phone)
			assert.Equal(t, "phone", errs[0].Field)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		errs := v.Struct(ContactCreate{Name: "Jane Doe", Email: "jane@example.com", Status: "LEAD"})
		require.Len(t, errs, 1)
		assert.Equal(t, "status", errs[0].Field)
		assert.Equal(t, "must be one of: PROSPECT, CLIENT", errs[0].Message)
	})

	t.Run("multiple failures reported together", func(t *testing.T) {
		errs := v.Struct(ContactCreate{Name: "J", Email: "bad", Phone: "123"})
		assert.Len(t, errs, 3)
	})
}

func TestContactUpdate(t *testing.T) {
	v := New()

	t.Run("empty update is valid", func(t *testing.T) {
		assert.Nil(t, v.Struct(ContactUpdate{}))
	})

	t.Run("set fields are validated", func(t *testing.T) {
		errs := v.Struct(ContactUpdate{Email: strptr("nope")})
		require.Len(t, errs, 1)
		assert.Equal(t, "email", errs[0].Field)
	})
}

func TestProjectCreate(t *testing.T) {
	v := New()
	contactID := "7b4a3f9e-6f0a-4a8e-9c1d-2b5e8d4f6a10"

	t.Run("valid input", func(t *testing.T) {
		amount := 4800.0
		errs := v.Struct(ProjectCreate{
			Title:     "Site redesign",
			Amount:    &amount,
			DueDate:   "2031-06-15",
			Status:    "PENDING",
			ContactID: contactID,
		})
		assert.Nil(t, errs)
	})

	t.Run("missing title", func(t *testing.T) {
		errs := v.Struct(ProjectCreate{ContactID: contactID})
		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
		assert.Equal(t, "is required", errs[0].Message)
	})

	t.Run("missing contact id", func(t *testing.T) {
		errs := v.Struct(ProjectCreate{Title: "Site redesign"})
		require.Len(t, errs, 1)
		assert.Equal(t, "contactId", errs[0].Field)
	})

	t.Run("malformed contact id", func(t *testing.T) {
		errs := v.Struct(ProjectCreate{Title: "Site redesign", ContactID: "c1"})
		require.Len(t, errs, 1)
		assert.Equal(t, "contactId", errs[0].Field)
		assert.Equal(t, "must be a valid identifier", errs[0].Message)
	})

	t.Run("unparseable due date", func(t *testing.T) {
		errs := v.Struct(ProjectCreate{Title: "Site redesign", ContactID: contactID, DueDate: "next tuesday"})
		require.Len(t, errs, 1)
		assert.Equal(t, "dueDate", errs[0].Field)
		assert.Equal(t, "must be a valid ISO date", errs[0].Message)
	})

	t.Run("rfc3339 due date accepted", func(t *testing.T) {
		errs := v.Struct(ProjectCreate{Title: "Site redesign", ContactID: contactID, DueDate: "2031-06-15T09:00:00Z"})
		assert.Nil(t, errs)
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		zero := 0.0
		errs := v.Struct(ProjectCreate{Title: "Site redesign", ContactID: contactID, Amount: &zero})
		require.Len(t, errs, 1)
		assert.Equal(t, "amount", errs[0].Field)
	})

	t.Run("terminal status requires due date", func(t *testing.T) {
		for _, status := range []string{"COMPLETED", "CANCELLED"} {
			errs := v.Struct(ProjectCreate{Title: "Site redesign", ContactID: contactID, Status: status})
			require.Len(t, errs, 1, status)
			assert.Equal(t, "dueDate", errs[0].Field)
			assert.Equal(t, "is required when status is COMPLETED or CANCELLED", errs[0].Message)
		}
	})

	t.Run("terminal status with due date passes", func(t *testing.T) {
		errs := v.Struct(ProjectCreate{
			Title:     "Site redesign",
			ContactID: contactID,
			Status:    "COMPLETED",
			DueDate:   "2031-06-15",
		})
		assert.Nil(t, errs)
	})
}

func TestProjectUpdate(t *testing.T) {
	v := New()

	t.Run("empty update is valid", func(t *testing.T) {
		assert.Nil(t, v.Struct(ProjectUpdate{}))
	})

	t.Run("terminal status without due date allowed on update", func(t *testing.T) {
		assert.Nil(t, v.Struct(ProjectUpdate{Status: strptr("CANCELLED")}))
	})

	t.Run("empty title rejected", func(t *testing.T) {
		errs := v.Struct(ProjectUpdate{Title: strptr("")})
		require.Len(t, errs, 1)
		assert.Equal(t, "title", errs[0].Field)
	})

	t.Run("description over limit rejected", func(t *testing.T) {
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'x'
		}
		s := string(long)
		errs := v.Struct(ProjectUpdate{Description: &s})
		require.Len(t, errs, 1)
		assert.Equal(t, "description", errs[0].Field)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("calendar date", func(t *testing.T) {
		d, err := ParseDate("2031-06-15")
		require.NoError(t, err)
		assert.Equal(t, 2031, d.Year())
	})

	t.Run("rfc3339", func(t *testing.T) {
		d, err := ParseDate("2031-06-15T09:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 9, d.Hour())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseDate("15/06/2031")
		assert.Error(t, err)
	})
}
