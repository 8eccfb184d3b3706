package store

import (
	"fmt"

	"github.com/mariafernandahr/pharmacy-api/models"
	"gorm.io/gorm"
)

type ClientInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func ListClients(db *gorm.DB) ([]models.Client, error) {
	clients := []models.Client{}
	if err := db.Order("id").Find(&clients).Error; err != nil {
		return nil, classify(err)
	}
	return clients, nil
}

func GetClient(db *gorm.DB, id uint) (*models.Client, error) {
	var client models.Client
	if err := db.First(&client, id).Error; err != nil {
		return nil, classify(err)
	}
	return &client, nil
}

func CreateClient(db *gorm.DB, in ClientInput) (*models.Client, error) {
	if in.FirstName == "" {
		return nil, fmt.Errorf("%w: first_name is required", ErrInvalidInput)
	}
	if in.LastName == "" {
		return nil, fmt.Errorf("%w: last_name is required", ErrInvalidInput)
	}
	client := models.Client{FirstName: in.FirstName, LastName: in.LastName}
	if err := db.Create(&client).Error; err != nil {
		return nil, classify(err)
	}
	return &client, nil
}

// DeleteClient removes the client together with everything it owns: the
// association rows of its orders go first, then the orders and the login
// account cascade at the schema level.
func DeleteClient(db *gorm.DB, id uint) error {
	client, err := GetClient(db, id)
	if err != nil {
		return err
	}
	return classify(db.Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Model(&models.Order{}).Select("id").Where("client_id = ?", client.ID)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&models.OrderMedicine{}).Error; err != nil {
			return classify(err)
		}
		return classify(tx.Delete(client).Error)
	}))
}

// ClientOrders returns the orders placed by an existing client, in
// primary-key order.
func ClientOrders(db *gorm.DB, id uint) ([]models.Order, error) {
	if _, err := GetClient(db, id); err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := db.Where("client_id = ?", id).Order("id").Find(&orders).Error; err != nil {
		return nil, classify(err)
	}
	return orders, nil
}
