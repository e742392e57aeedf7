package repository

import (
	"errors"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// GetAllWithNames retrieves all appointments joined with patient and doctor
// display fields, ordered by date and time
func (r *AppointmentRepository) GetAllWithNames() ([]models.AppointmentWithNames, error) {
	var results []models.AppointmentWithNames
	err := r.db.Table("appointments a").
		Select(`a.appointment_id, a.appointment_date, a.appointment_time, a.status, a.notes,
			p.patient_id, CONCAT(p.first_name, ' ', p.last_name) AS patient_name,
			d.doctor_id, CONCAT(d.first_name, ' ', d.last_name) AS doctor_name, d.specialty`).
		Joins("JOIN patients p ON a.patient_id = p.patient_id").
		Joins("JOIN doctors d ON a.doctor_id = d.doctor_id").
		Order("a.appointment_date, a.appointment_time").
		Scan(&results).Error
	return results, err
}

// GetAppointmentByID retrieves an appointment by ID
func (r *AppointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.First(&appointment, "appointment_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// CreateAppointment creates a new appointment
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// UpdateAppointment replaces an existing appointment record
func (r *AppointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// DeleteAppointment removes an appointment by ID
func (r *AppointmentRepository) DeleteAppointment(id uint) error {
	return r.db.Delete(&models.Appointment{}, "appointment_id = ?", id).Error
}
