package models

// Doctor represents a doctor on staff
type Doctor struct {
	DoctorID  uint   `gorm:"column:doctor_id;primaryKey" json:"doctor_id"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Specialty string `gorm:"size:100" json:"specialty"`
	ContactNo string `gorm:"size:50" json:"contact_no"`
	Schedule  string `gorm:"type:text;comment:Free-text visiting schedule" json:"schedule"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
