package store

import (
	"fmt"
	"time"

	"github.com/mariafernandahr/pharmacy-api/models"
	"gorm.io/gorm"
)

const maxRecommendationsLen = 280

type MedicineInput struct {
	Name            string     `json:"name"`
	DueDate         *time.Time `json:"due_date"`
	Recommendations *string    `json:"recommendations"`
	LaboratoryID    uint       `json:"laboratory_id"`
}

// MedicineUpdate applies only the supplied fields; nil means "leave as is".
type MedicineUpdate struct {
	Name            *string    `json:"name"`
	DueDate         *time.Time `json:"due_date"`
	Recommendations *string    `json:"recommendations"`
}

func ListMedicines(db *gorm.DB) ([]models.Medicine, error) {
	medicines := []models.Medicine{}
	if err := db.Order("id").Find(&medicines).Error; err != nil {
		return nil, classify(err)
	}
	return medicines, nil
}

func GetMedicine(db *gorm.DB, id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	if err := db.First(&medicine, id).Error; err != nil {
		return nil, classify(err)
	}
	return &medicine, nil
}

func CreateMedicine(db *gorm.DB, in MedicineInput) (*models.Medicine, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if in.DueDate == nil {
		return nil, fmt.Errorf("%w: due_date is required", ErrInvalidInput)
	}
	if in.LaboratoryID == 0 {
		return nil, fmt.Errorf("%w: laboratory_id is required", ErrInvalidInput)
	}
	if in.Recommendations != nil && len(*in.Recommendations) > maxRecommendationsLen {
		return nil, fmt.Errorf("%w: recommendations exceeds %d characters", ErrInvalidInput, maxRecommendationsLen)
	}
	medicine := models.Medicine{
		Name:            in.Name,
		DueDate:         *in.DueDate,
		Recommendations: in.Recommendations,
		LaboratoryID:    in.LaboratoryID,
	}
	if err := db.Create(&medicine).Error; err != nil {
		return nil, classify(err)
	}
	return &medicine, nil
}

func UpdateMedicine(db *gorm.DB, id uint, upd MedicineUpdate) (*models.Medicine, error) {
	medicine, err := GetMedicine(db, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		updates["name"] = *upd.Name
	}
	if upd.DueDate != nil {
		updates["due_date"] = *upd.DueDate
	}
	if upd.Recommendations != nil {
		if len(*upd.Recommendations) > maxRecommendationsLen {
			return nil, fmt.Errorf("%w: recommendations exceeds %d characters", ErrInvalidInput, maxRecommendationsLen)
		}
		updates["recommendations"] = *upd.Recommendations
	}

	if len(updates) > 0 {
		if err := db.Model(medicine).Updates(updates).Error; err != nil {
			return nil, classify(err)
		}
	}
	return GetMedicine(db, id)
}

// DeleteMedicine fails with ErrConstraint while orders still reference
// the medicine (ON DELETE RESTRICT on the association table).
func DeleteMedicine(db *gorm.DB, id uint) error {
	medicine, err := GetMedicine(db, id)
	if err != nil {
		return err
	}
	return classify(db.Delete(medicine).Error)
}
