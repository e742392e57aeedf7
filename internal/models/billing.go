package models

// Billing represents a billing record for a patient
type Billing struct {
	BillingID   uint    `gorm:"column:billing_id;primaryKey" json:"billing_id"`
	PatientID   uint    `gorm:"not null;index" json:"patient_id"`
	Amount      float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	BillingDate string  `gorm:"type:date;not null" json:"billing_date"`
	Status      string  `gorm:"type:enum('Unpaid','Paid','Pending');default:'Unpaid'" json:"status"`
	Notes       string  `gorm:"type:text" json:"notes"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for Billing model
func (Billing) TableName() string {
	return "billing"
}

// BillingWithPatient is the joined shape used by the billing list view
type BillingWithPatient struct {
	BillingID   uint    `json:"billing_id"`
	PatientID   uint    `json:"patient_id"`
	PatientName string  `json:"patient_name"`
	Amount      float64 `json:"amount"`
	BillingDate string  `json:"billing_date"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
}
