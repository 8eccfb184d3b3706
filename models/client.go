package models

type Client struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"size:128;not null" json:"first_name"`
	LastName  string `gorm:"size:128;not null" json:"last_name"`

	// A client exclusively owns its orders and its login account;
	// both are removed with the client.
	Orders  []Order        `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	Account *ClientAccount `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
}
