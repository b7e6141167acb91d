package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/contact"
	"github.com/relaymark/crm-backend/project"
)

var errStoreDown = errors.New("store unavailable")

// fakeContactStore is an in-memory contact.Store for use-case tests.
type fakeContactStore struct {
	byID  map[uuid.UUID]*contact.Contact
	order []uuid.UUID

	failAll     bool
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{byID: map[uuid.UUID]*contact.Contact{}}
}

func (s *fakeContactStore) add(c *contact.Contact) *contact.Contact {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return c
}

func (s *fakeContactStore) Create(ctx context.Context, c *contact.Contact) error {
	if s.failAll {
		return errStoreDown
	}
	s.createCalls++
	if c.Status == "" {
		c.Status = contact.StatusProspect
	}
	for _, existing := range s.byID {
		if existing.Email == c.Email {
			return contact.ErrDuplicateEmail
		}
	}
	s.add(c)
	return nil
}

func (s *fakeContactStore) GetByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	c, ok := s.byID[id]
	if !ok {
		return nil, contact.ErrContactNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *fakeContactStore) GetByEmail(ctx context.Context, email string) (*contact.Contact, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	for _, c := range s.byID {
		if c.Email == email {
			cp := *c
			return &cp, nil
		}
	}
	return nil, contact.ErrContactNotFound
}

func (s *fakeContactStore) List(ctx context.Context, limit, offset int) ([]*contact.Contact, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	var out []*contact.Contact
	for i := offset; i < len(s.order) && len(out) < limit; i++ {
		cp := *s.byID[s.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeContactStore) Count(ctx context.Context) (int, error) {
	if s.failAll {
		return 0, errStoreDown
	}
	return len(s.byID), nil
}

func (s *fakeContactStore) Update(ctx context.Context, id uuid.UUID, setters ...contact.UpdateSetter) error {
	if s.failAll {
		return errStoreDown
	}
	s.updateCalls++
	c, ok := s.byID[id]
	if !ok {
		return contact.ErrContactNotFound
	}
	for _, setter := range setters {
		if err := setter(c); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeContactStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.failAll {
		return errStoreDown
	}
	s.deleteCalls++
	if _, ok := s.byID[id]; !ok {
		return contact.ErrContactNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeProjectStore is an in-memory project.Store for use-case tests.
type fakeProjectStore struct {
	byID  map[uuid.UUID]*project.Project
	order []uuid.UUID

	failAll     bool
	createCalls int
	updateCalls int
	deleteCalls int
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{byID: map[uuid.UUID]*project.Project{}}
}

func (s *fakeProjectStore) add(p *project.Project) *project.Project {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	s.byID[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}

func (s *fakeProjectStore) Create(ctx context.Context, p *project.Project) error {
	if s.failAll {
		return errStoreDown
	}
	s.createCalls++
	if p.Status == "" {
		p.Status = project.StatusPending
	}
	s.add(p)
	return nil
}

func (s *fakeProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	p, ok := s.byID[id]
	if !ok {
		return nil, project.ErrProjectNotFound
	}
	pp := *p
	return &pp, nil
}

func (s *fakeProjectStore) List(ctx context.Context, limit, offset int) ([]*project.Project, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	var out []*project.Project
	for i := offset; i < len(s.order) && len(out) < limit; i++ {
		pp := *s.byID[s.order[i]]
		out = append(out, &pp)
	}
	return out, nil
}

func (s *fakeProjectStore) ListByContact(ctx context.Context, contactID uuid.UUID, limit, offset int) ([]*project.Project, error) {
	if s.failAll {
		return nil, errStoreDown
	}
	var scoped []*project.Project
	for _, id := range s.order {
		if s.byID[id].ContactID == contactID {
			pp := *s.byID[id]
			scoped = append(scoped, &pp)
		}
	}
	var out []*project.Project
	for i := offset; i < len(scoped) && len(out) < limit; i++ {
		out = append(out, scoped[i])
	}
	return out, nil
}

func (s *fakeProjectStore) Count(ctx context.Context) (int, error) {
	if s.failAll {
		return 0, errStoreDown
	}
	return len(s.byID), nil
}

func (s *fakeProjectStore) CountByContact(ctx context.Context, contactID uuid.UUID) (int, error) {
	if s.failAll {
		return 0, errStoreDown
	}
	count := 0
	for _, p := range s.byID {
		if p.ContactID == contactID {
			count++
		}
	}
	return count, nil
}

func (s *fakeProjectStore) Update(ctx context.Context, id uuid.UUID, setters ...project.UpdateSetter) error {
	if s.failAll {
		return errStoreDown
	}
	s.updateCalls++
	p, ok := s.byID[id]
	if !ok {
		return project.ErrProjectNotFound
	}
	for _, setter := range setters {
		if err := setter(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	if s.failAll {
		return errStoreDown
	}
	s.deleteCalls++
	if _, ok := s.byID[id]; !ok {
		return project.ErrProjectNotFound
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
