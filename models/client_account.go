package models

// ClientAccount holds the login credentials for a client. ID and Password
// are never serialized; the public shape is {username, client_id}.
type ClientAccount struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Username string `gorm:"size:128;unique;not null" json:"username"`
	Password string `gorm:"size:128;not null" json:"-"`
	ClientID uint   `gorm:"uniqueIndex;not null" json:"client_id"` // one account per client
}

func (ClientAccount) TableName() string {
	return "clients_accounts"
}
