package store

import (
	"fmt"

	"github.com/mariafernandahr/pharmacy-api/models"
	"gorm.io/gorm"
)

type LaboratoryInput struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

func ListLaboratories(db *gorm.DB) ([]models.Laboratory, error) {
	labs := []models.Laboratory{}
	if err := db.Order("id").Find(&labs).Error; err != nil {
		return nil, classify(err)
	}
	return labs, nil
}

func GetLaboratory(db *gorm.DB, id uint) (*models.Laboratory, error) {
	var lab models.Laboratory
	if err := db.First(&lab, id).Error; err != nil {
		return nil, classify(err)
	}
	return &lab, nil
}

func CreateLaboratory(db *gorm.DB, in LaboratoryInput) (*models.Laboratory, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	lab := models.Laboratory{Name: in.Name, Location: in.Location}
	if err := db.Create(&lab).Error; err != nil {
		return nil, classify(err)
	}
	return &lab, nil
}

// DeleteLaboratory fails with ErrConstraint while medicines still
// reference the laboratory (ON DELETE RESTRICT).
func DeleteLaboratory(db *gorm.DB, id uint) error {
	lab, err := GetLaboratory(db, id)
	if err != nil {
		return err
	}
	return classify(db.Delete(lab).Error)
}
