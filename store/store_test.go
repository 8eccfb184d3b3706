package store_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mariafernandahr/pharmacy-api/models"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with the full schema
// and foreign keys enforced, named after the test so parallel tests do
// not share state.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.SetupJoinTable(&models.Order{}, "Medicines", &models.OrderMedicine{}))
	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.ClientAccount{},
		&models.Laboratory{},
		&models.Medicine{},
		&models.Order{},
	))
	return db
}

func createTestClient(t *testing.T, db *gorm.DB, first, last string) *models.Client {
	t.Helper()
	client, err := store.CreateClient(db, store.ClientInput{FirstName: first, LastName: last})
	require.NoError(t, err)
	return client
}

func createTestLaboratory(t *testing.T, db *gorm.DB, name string) *models.Laboratory {
	t.Helper()
	lab, err := store.CreateLaboratory(db, store.LaboratoryInput{Name: name})
	require.NoError(t, err)
	return lab
}

func createTestMedicine(t *testing.T, db *gorm.DB, name string, labID uint) *models.Medicine {
	t.Helper()
	due := time.Now().Add(365 * 24 * time.Hour).UTC().Truncate(time.Second)
	medicine, err := store.CreateMedicine(db, store.MedicineInput{
		Name:         name,
		DueDate:      &due,
		LaboratoryID: labID,
	})
	require.NoError(t, err)
	return medicine
}
