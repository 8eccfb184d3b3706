package models

import "time"

type Order struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date     time.Time `gorm:"not null;autoCreateTime" json:"date"`
	ClientID uint      `gorm:"not null" json:"client_id"`

	Medicines []Medicine `gorm:"many2many:orders_medicines" json:"-"`
}

// OrderMedicine is the customized join table behind Order.Medicines
// (wired with SetupJoinTable). Association rows go with their order,
// but a medicine referenced by an order cannot be deleted.
type OrderMedicine struct {
	OrderID    uint `gorm:"primaryKey;autoIncrement:false" json:"order_id"`
	MedicineID uint `gorm:"primaryKey;autoIncrement:false" json:"medicine_id"`

	Order    Order    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Medicine Medicine `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}

func (OrderMedicine) TableName() string {
	return "orders_medicines"
}
