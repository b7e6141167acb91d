package project

import (
	"testing"

	"github.com/google/uuid"
	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/testutil"
	"gorm.io/gorm"
)

// testContact mirrors the contacts table for the read-time name join.
type testContact struct {
	ID   uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name string
}

func (testContact) TableName() string { return "contacts" }

// setupTestStore creates a test database and project store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &testContact{}, &Project{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// seedContact inserts a contact row the projects under test can reference.
func seedContact(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	c := testContact{ID: uuid.New(), Name: name}
	testutil.CreateFixture(t, db, &c)
	return c.ID
}

// createTestProject creates a test project with default values.
func createTestProject(title string, contactID uuid.UUID) *Project {
	return &Project{
		Title:     title,
		ContactID: contactID,
		Status:    StatusPending,
	}
}
