package contact

// SetName returns an UpdateSetter that sets the contact's name.
func SetName(name string) UpdateSetter {
	return func(c *Contact) error {
		if len(name) < 2 {
			return ErrInvalidName
		}
		c.Name = name
		return nil
	}
}

// SetEmail returns an UpdateSetter that sets the contact's email.
func SetEmail(email string) UpdateSetter {
	return func(c *Contact) error {
		if email == "" {
			return ErrInvalidEmail
		}
		c.Email = email
		return nil
	}
}

// SetPhone returns an UpdateSetter that sets the contact's phone number.
func SetPhone(phone string) UpdateSetter {
	return func(c *Contact) error {
		c.Phone = phone
		return nil
	}
}

// SetCompany returns an UpdateSetter that sets the contact's company.
func SetCompany(company string) UpdateSetter {
	return func(c *Contact) error {
		c.Company = company
		return nil
	}
}

// SetNotes returns an UpdateSetter that sets the contact's notes.
func SetNotes(notes string) UpdateSetter {
	return func(c *Contact) error {
		c.Notes = notes
		return nil
	}
}

// SetStatus returns an UpdateSetter that sets the contact's status.
func SetStatus(status Status) UpdateSetter {
	return func(c *Contact) error {
		if !status.Valid() {
			return ErrInvalidStatus
		}
		c.Status = status
		return nil
	}
}
