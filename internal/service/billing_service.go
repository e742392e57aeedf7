package service

import (
	"errors"
	"fmt"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

type BillingService struct {
	billingRepo *repository.BillingRepository
	patientRepo *repository.PatientRepository
	auditRepo   *repository.AuditRepository
}

func NewBillingService(
	billingRepo *repository.BillingRepository,
	patientRepo *repository.PatientRepository,
	auditRepo *repository.AuditRepository,
) *BillingService {
	return &BillingService{
		billingRepo: billingRepo,
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// GetAllBilling retrieves all billing records with the patient name joined
func (s *BillingService) GetAllBilling() ([]models.BillingWithPatient, error) {
	return s.billingRepo.GetAllWithPatient()
}

// CreateBilling creates a new billing record
func (s *BillingService) CreateBilling(billing *models.Billing) error {
	if billing.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if _, err := s.patientRepo.GetPatientByID(billing.PatientID); err != nil {
		return err
	}

	if err := s.billingRepo.CreateBilling(billing); err != nil {
		return fmt.Errorf("failed to create billing record: %w", err)
	}

	details := fmt.Sprintf("Created billing %d (patient %d, amount %.2f, status %s)",
		billing.BillingID, billing.PatientID, billing.Amount, billing.Status)
	_ = s.auditRepo.CreateAuditLog(nil, "billing_create", details)

	return nil
}

// UpdateBilling replaces an existing billing record
func (s *BillingService) UpdateBilling(billing *models.Billing) error {
	if _, err := s.billingRepo.GetBillingByID(billing.BillingID); err != nil {
		return err
	}
	if billing.Amount < 0 {
		return errors.New("amount must not be negative")
	}
	if _, err := s.patientRepo.GetPatientByID(billing.PatientID); err != nil {
		return err
	}

	if err := s.billingRepo.UpdateBilling(billing); err != nil {
		return fmt.Errorf("failed to update billing record: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(nil, "billing_update", fmt.Sprintf("Updated billing %d", billing.BillingID))

	return nil
}

// DeleteBilling removes a billing record
func (s *BillingService) DeleteBilling(id uint) error {
	if _, err := s.billingRepo.GetBillingByID(id); err != nil {
		return err
	}

	if err := s.billingRepo.DeleteBilling(id); err != nil {
		return fmt.Errorf("failed to delete billing record: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(nil, "billing_delete", fmt.Sprintf("Deleted billing %d", id))

	return nil
}
