package store

import (
	"fmt"

	"github.com/mariafernandahr/pharmacy-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlaceOrderInput struct {
	ClientID   uint `json:"client_id"`
	MedicineID uint `json:"medicine_id"`
}

func ListOrders(db *gorm.DB) ([]models.Order, error) {
	orders := []models.Order{}
	if err := db.Order("id").Find(&orders).Error; err != nil {
		return nil, classify(err)
	}
	return orders, nil
}

func GetOrder(db *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return nil, classify(err)
	}
	return &order, nil
}

// PlaceOrder creates an order for an existing client together with its
// first association row, as one atomic unit: if the association insert
// fails, the order insert rolls back with it. An order therefore never
// exists without the medicine it was created with.
func PlaceOrder(db *gorm.DB, in PlaceOrderInput) (*models.Order, error) {
	if in.ClientID == 0 {
		return nil, fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}
	if in.MedicineID == 0 {
		return nil, fmt.Errorf("%w: medicine_id is required", ErrInvalidInput)
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, in.ClientID).Error; err != nil {
			return classify(err)
		}
		var medicine models.Medicine
		if err := tx.First(&medicine, in.MedicineID).Error; err != nil {
			return classify(err)
		}

		order = models.Order{ClientID: client.ID}
		if err := tx.Create(&order).Error; err != nil {
			return classify(err)
		}

		link := models.OrderMedicine{OrderID: order.ID, MedicineID: medicine.ID}
		if err := tx.Omit(clause.Associations).Create(&link).Error; err != nil {
			return classify(err)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return &order, nil
}

// DeleteOrder removes the order and its association rows in one
// transaction. Referenced medicines are left untouched.
func DeleteOrder(db *gorm.DB, id uint) error {
	return classify(db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			return classify(err)
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderMedicine{}).Error; err != nil {
			return classify(err)
		}
		return classify(tx.Delete(&order).Error)
	}))
}

// OrderedMedicines returns the medicines linked to an existing order
// through the association table.
func OrderedMedicines(db *gorm.DB, id uint) ([]models.Medicine, error) {
	order, err := GetOrder(db, id)
	if err != nil {
		return nil, err
	}
	medicines := []models.Medicine{}
	if err := db.Model(order).Association("Medicines").Find(&medicines); err != nil {
		return nil, classify(err)
	}
	return medicines, nil
}
