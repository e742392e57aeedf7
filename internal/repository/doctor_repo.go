package repository

import (
	"errors"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// GetAllDoctors retrieves all doctors ordered by id
func (r *DoctorRepository) GetAllDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("doctor_id ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, "doctor_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor creates a new doctor
func (r *DoctorRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// UpdateDoctor replaces an existing doctor record
func (r *DoctorRepository) UpdateDoctor(doctor *models.Doctor) error {
	return r.db.Save(doctor).Error
}

// DeleteDoctor removes a doctor by ID
func (r *DoctorRepository) DeleteDoctor(id uint) error {
	return r.db.Delete(&models.Doctor{}, "doctor_id = ?", id).Error
}
