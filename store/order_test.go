package store_test

import (
	"testing"

	"github.com/mariafernandahr/pharmacy-api/models"
	"github.com/mariafernandahr/pharmacy-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func countLinks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.OrderMedicine{}).Count(&n).Error)
	return n
}

func TestPlaceOrderScenario(t *testing.T) {
	db := openTestDB(t)

	lab := createTestLaboratory(t, db, "LabA")
	medicine := createTestMedicine(t, db, "Aspirin", lab.ID)
	client := createTestClient(t, db, "Jo", "Doe")

	order, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: client.ID, MedicineID: medicine.ID})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, client.ID, order.ClientID)
	assert.False(t, order.Date.IsZero())

	medicines, err := store.OrderedMedicines(db, order.ID)
	require.NoError(t, err)
	require.Len(t, medicines, 1)
	assert.Equal(t, "Aspirin", medicines[0].Name)

	// Exactly one order row and one association row exist.
	assert.EqualValues(t, 1, countOrders(t, db))
	assert.EqualValues(t, 1, countLinks(t, db))

	var link models.OrderMedicine
	require.NoError(t, db.First(&link).Error)
	assert.Equal(t, order.ID, link.OrderID)
	assert.Equal(t, medicine.ID, link.MedicineID)
}

func TestPlaceOrderMissingFields(t *testing.T) {
	db := openTestDB(t)

	_, err := store.PlaceOrder(db, store.PlaceOrderInput{MedicineID: 1})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = store.PlaceOrder(db, store.PlaceOrderInput{ClientID: 1})
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	assert.Zero(t, countOrders(t, db))
}

func TestPlaceOrderUnknownClient(t *testing.T) {
	db := openTestDB(t)

	lab := createTestLaboratory(t, db, "LabA")
	medicine := createTestMedicine(t, db, "Aspirin", lab.ID)

	_, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: 42, MedicineID: medicine.ID})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, countOrders(t, db))
	assert.Zero(t, countLinks(t, db))
}

func TestPlaceOrderUnknownMedicine(t *testing.T) {
	db := openTestDB(t)

	client := createTestClient(t, db, "Jo", "Doe")

	_, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: client.ID, MedicineID: 42})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, countOrders(t, db))
	assert.Zero(t, countLinks(t, db))
}

func TestPlaceOrderForDeletedClient(t *testing.T) {
	db := openTestDB(t)

	lab := createTestLaboratory(t, db, "LabA")
	medicine := createTestMedicine(t, db, "Aspirin", lab.ID)
	client := createTestClient(t, db, "Jo", "Doe")
	require.NoError(t, store.DeleteClient(db, client.ID))

	_, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: client.ID, MedicineID: medicine.ID})
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, countOrders(t, db))
}

func TestPlaceOrderRollsBackWhenAssociationInsertFails(t *testing.T) {
	db := openTestDB(t)

	lab := createTestLaboratory(t, db, "LabA")
	medicine := createTestMedicine(t, db, "Aspirin", lab.ID)
	client := createTestClient(t, db, "Jo", "Doe")

	// Break the association insert so the order insert succeeds but the
	// link insert cannot: the whole transaction must roll back, leaving
	// no orphan order behind.
	require.NoError(t, db.Migrator().DropTable("orders_medicines"))

	_, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: client.ID, MedicineID: medicine.ID})
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrInvalidInput)
	assert.NotErrorIs(t, err, store.ErrNotFound)

	assert.Zero(t, countOrders(t, db))
}

func TestDeleteOrderKeepsMedicine(t *testing.T) {
	db := openTestDB(t)

	lab := createTestLaboratory(t, db, "LabA")
	medicine := createTestMedicine(t, db, "Aspirin", lab.ID)
	client := createTestClient(t, db, "Jo", "Doe")
	order, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: client.ID, MedicineID: medicine.ID})
	require.NoError(t, err)

	require.NoError(t, store.DeleteOrder(db, order.ID))

	_, err = store.GetOrder(db, order.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, countLinks(t, db))

	_, err = store.GetMedicine(db, medicine.ID)
	assert.NoError(t, err)
}

func TestDeleteMedicineReferencedByOrder(t *testing.T) {
	db := openTestDB(t)

	lab := createTestLaboratory(t, db, "LabA")
	medicine := createTestMedicine(t, db, "Aspirin", lab.ID)
	client := createTestClient(t, db, "Jo", "Doe")
	_, err := store.PlaceOrder(db, store.PlaceOrderInput{ClientID: client.ID, MedicineID: medicine.ID})
	require.NoError(t, err)

	err = store.DeleteMedicine(db, medicine.ID)
	assert.ErrorIs(t, err, store.ErrConstraint)

	_, err = store.GetMedicine(db, medicine.ID)
	assert.NoError(t, err)
}

func TestOrderedMedicinesNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := store.OrderedMedicines(db, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
