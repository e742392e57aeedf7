package models

// Patient represents a registered patient
type Patient struct {
	PatientID uint   `gorm:"column:patient_id;primaryKey" json:"patient_id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Age       int    `gorm:"not null" json:"age"`
	Gender    string `gorm:"size:20" json:"gender"`
	ContactNo string `gorm:"size:50" json:"contact_no"`
	Address   string `gorm:"type:text" json:"address"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
