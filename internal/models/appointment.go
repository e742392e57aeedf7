package models

// Appointment represents a scheduled visit between a patient and a doctor.
// Status is free text ("Scheduled", "Completed", "Cancelled") and is not
// enumerated server-side.
type Appointment struct {
	AppointmentID   uint   `gorm:"column:appointment_id;primaryKey" json:"appointment_id"`
	PatientID       uint   `gorm:"not null;index" json:"patient_id"`
	DoctorID        uint   `gorm:"not null;index" json:"doctor_id"`
	AppointmentDate string `gorm:"type:date;not null" json:"appointment_date"`
	AppointmentTime string `gorm:"size:10;not null" json:"appointment_time"`
	Status          string `gorm:"size:50" json:"status"`
	Notes           string `gorm:"type:text" json:"notes"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentWithNames is the joined shape used by the appointment list view
type AppointmentWithNames struct {
	AppointmentID   uint   `json:"appointment_id"`
	PatientID       uint   `json:"patient_id"`
	PatientName     string `json:"patient_name"`
	DoctorID        uint   `json:"doctor_id"`
	DoctorName      string `json:"doctor_name"`
	Specialty       string `json:"specialty"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`
}
