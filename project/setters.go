package project

import "time"

// SetTitle returns an UpdateSetter that sets the project's title.
func SetTitle(title string) UpdateSetter {
	return func(p *Project) error {
		if title == "" {
			return ErrInvalidTitle
		}
		p.Title = title
		return nil
	}
}

// SetDescription returns an UpdateSetter that sets the project's description.
func SetDescription(description string) UpdateSetter {
	return func(p *Project) error {
		if len(description) > MaxDescriptionLength {
			return ErrDescriptionTooLong
		}
		p.Description = description
		return nil
	}
}

// SetAmount returns an UpdateSetter that sets the project's amount.
func SetAmount(amount float64) UpdateSetter {
	return func(p *Project) error {
		if amount <= 0 {
			return ErrInvalidAmount
		}
		p.Amount = &amount
		return nil
	}
}

// SetDueDate returns an UpdateSetter that sets the project's due date.
func SetDueDate(dueDate time.Time) UpdateSetter {
	return func(p *Project) error {
		p.DueDate = &dueDate
		return nil
	}
}

// SetStatus returns an UpdateSetter that sets the project's status.
func SetStatus(status Status) UpdateSetter {
	return func(p *Project) error {
		if !status.Valid() {
			return ErrInvalidStatus
		}
		p.Status = status
		return nil
	}
}
