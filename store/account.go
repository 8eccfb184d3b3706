package store

import (
	"fmt"

	"github.com/mariafernandahr/pharmacy-api/models"
	"gorm.io/gorm"
)

const minPasswordLen = 5

type AccountInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	ClientID uint   `json:"client_id"`
}

// AccountUpdate applies only the supplied fields; nil means "leave as is".
type AccountUpdate struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func ListAccounts(db *gorm.DB) ([]models.ClientAccount, error) {
	accounts := []models.ClientAccount{}
	if err := db.Order("id").Find(&accounts).Error; err != nil {
		return nil, classify(err)
	}
	return accounts, nil
}

func GetAccount(db *gorm.DB, id uint) (*models.ClientAccount, error) {
	var account models.ClientAccount
	if err := db.First(&account, id).Error; err != nil {
		return nil, classify(err)
	}
	return &account, nil
}

func GetAccountByUsername(db *gorm.DB, username string) (*models.ClientAccount, error) {
	var account models.ClientAccount
	if err := db.Where("username = ?", username).First(&account).Error; err != nil {
		return nil, classify(err)
	}
	return &account, nil
}

func GetAccountByClientID(db *gorm.DB, clientID uint) (*models.ClientAccount, error) {
	var account models.ClientAccount
	if err := db.Where("client_id = ?", clientID).First(&account).Error; err != nil {
		return nil, classify(err)
	}
	return &account, nil
}

func CreateAccount(db *gorm.DB, in AccountInput) (*models.ClientAccount, error) {
	if len(in.Username) < 1 {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
	}
	if in.ClientID == 0 {
		return nil, fmt.Errorf("%w: client_id is required", ErrInvalidInput)
	}
	account := models.ClientAccount{
		Username: in.Username,
		Password: in.Password,
		ClientID: in.ClientID,
	}
	if err := db.Create(&account).Error; err != nil {
		return nil, classify(err)
	}
	return &account, nil
}

func UpdateAccount(db *gorm.DB, id uint, upd AccountUpdate) (*models.ClientAccount, error) {
	account, err := GetAccount(db, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if upd.Username != nil {
		if len(*upd.Username) < 1 {
			return nil, fmt.Errorf("%w: username cannot be empty", ErrInvalidInput)
		}
		updates["username"] = *upd.Username
	}
	if upd.Password != nil {
		if len(*upd.Password) < minPasswordLen {
			return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLen)
		}
		updates["password"] = *upd.Password
	}

	if len(updates) > 0 {
		if err := db.Model(account).Updates(updates).Error; err != nil {
			return nil, classify(err)
		}
	}
	return GetAccount(db, id)
}

func DeleteAccount(db *gorm.DB, id uint) error {
	account, err := GetAccount(db, id)
	if err != nil {
		return err
	}
	return classify(db.Delete(account).Error)
}
