package models

import "time"

// Stay represents one admission: a patient occupying a room from check-in
// until check-out. A NULL check-out means the patient is currently admitted.
type Stay struct {
	StayID    uint       `gorm:"column:stay_id;primaryKey" json:"stay_id"`
	PatientID uint       `gorm:"not null;index" json:"patient_id"`
	RoomID    uint       `gorm:"not null;index" json:"room_id"`
	CheckIn   time.Time  `gorm:"not null" json:"check_in"`
	CheckOut  *time.Time `json:"check_out"`
	Notes     string     `gorm:"type:text" json:"notes"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Room    Room    `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Stay model
func (Stay) TableName() string {
	return "patient_room"
}

// Active reports whether the patient is still admitted
func (s *Stay) Active() bool {
	return s.CheckOut == nil
}

// StayWithDetails is the joined shape used by the admissions list view
type StayWithDetails struct {
	StayID      uint       `json:"stay_id"`
	PatientID   uint       `json:"patient_id"`
	PatientName string     `json:"patient_name"`
	RoomID      uint       `json:"room_id"`
	RoomNumber  string     `json:"room_number"`
	CheckIn     time.Time  `json:"check_in"`
	CheckOut    *time.Time `json:"check_out"`
	Notes       string     `json:"notes"`
}
