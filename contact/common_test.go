package contact

import (
	"testing"

	"github.com/relaymark/crm-backend/logger"
	"github.com/relaymark/crm-backend/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and contact store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t)
	testutil.AutoMigrate(t, db, &Contact{})

	log := logger.NewTestLogger()
	store := NewMySQLStore(db, log)

	return db, store
}

// createTestContact creates a test contact with default values.
func createTestContact(name, email string) *Contact {
	return &Contact{
		Name:   name,
		Email:  email,
		Status: StatusProspect,
	}
}
