package usecase

import (
	"context"
	"sync"

	"github.com/relaymark/crm-backend/apperr"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/logger"
)

// ContactPage is one page of contacts plus the collection total.
type ContactPage struct {
	Data       []*contact.Contact `json:"data"`
	TotalCount int                `json:"totalCount"`
}

// ListContacts returns a page of contacts and the total count. The page
// slice and count are fetched concurrently; either failure aborts the pair.
type ListContacts struct {
	contacts contact.Store
	logger   logger.Logger
}

// NewListContacts builds the use case.
func NewListContacts(contacts contact.Store, log logger.Logger) *ListContacts {
	return &ListContacts{contacts: contacts, logger: log}
}

// Execute fetches the requested page. Page and limit are normalized to
// positive values (defaults: page 1, limit 10).
func (uc *ListContacts) Execute(ctx context.Context, page, limit int) (*ContactPage, error) {
	take, skip := normalizePage(page, limit)

	var (
		wg       sync.WaitGroup
		data     []*contact.Contact
		total    int
		listErr  error
		countErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		data, listErr = uc.contacts.List(ctx, take, skip)
	}()
	go func() {
		defer wg.Done()
		total, countErr = uc.contacts.Count(ctx)
	}()
	wg.Wait()

	if listErr != nil || countErr != nil {
		uc.logger.Error(ctx, "failed to list contacts", map[string]interface{}{
			"list_error":  errString(listErr),
			"count_error": errString(countErr),
		})
		return nil, apperr.Internal("failed to list contacts")
	}

	if data == nil {
		data = []*contact.Contact{}
	}

	return &ContactPage{Data: data, TotalCount: total}, nil
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
