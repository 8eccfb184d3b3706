package models

import "time"

type Medicine struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:128;not null" json:"name"`
	DueDate         time.Time `gorm:"not null" json:"due_date"`
	Recommendations *string   `gorm:"size:280" json:"recommendations"`
	LaboratoryID    uint      `gorm:"not null" json:"laboratory_id"`
}
