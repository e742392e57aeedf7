package repository

import (
	"errors"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

type BillingRepository struct {
	db *gorm.DB
}

func NewBillingRepo(db *gorm.DB) *BillingRepository {
	return &BillingRepository{db: db}
}

// GetAllWithPatient retrieves all billing records joined with the patient
// name, newest billing date first
func (r *BillingRepository) GetAllWithPatient() ([]models.BillingWithPatient, error) {
	var results []models.BillingWithPatient
	err := r.db.Table("billing b").
		Select(`b.billing_id, b.patient_id, b.amount, b.billing_date, b.status, b.notes,
			CONCAT(p.first_name, ' ', p.last_name) AS patient_name`).
		Joins("JOIN patients p ON b.patient_id = p.patient_id").
		Order("b.billing_date DESC").
		Scan(&results).Error
	return results, err
}

// GetBillingByID retrieves a billing record by ID
func (r *BillingRepository) GetBillingByID(id uint) (*models.Billing, error) {
	var billing models.Billing
	err := r.db.First(&billing, "billing_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillingNotFound
		}
		return nil, err
	}
	return &billing, nil
}

// CreateBilling creates a new billing record
func (r *BillingRepository) CreateBilling(billing *models.Billing) error {
	return r.db.Create(billing).Error
}

// UpdateBilling replaces an existing billing record
func (r *BillingRepository) UpdateBilling(billing *models.Billing) error {
	return r.db.Save(billing).Error
}

// DeleteBilling removes a billing record by ID
func (r *BillingRepository) DeleteBilling(id uint) error {
	return r.db.Delete(&models.Billing{}, "billing_id = ?", id).Error
}
