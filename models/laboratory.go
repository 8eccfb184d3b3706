package models

type Laboratory struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string  `gorm:"size:128;unique;not null" json:"name"`
	Location *string `gorm:"size:128" json:"location"`

	// Medicines reference the laboratory but are not owned by it:
	// deleting a laboratory with medicines attached is rejected.
	Medicines []Medicine `gorm:"foreignKey:LaboratoryID;constraint:OnDelete:RESTRICT" json:"-"`
}
