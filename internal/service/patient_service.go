package service

import (
	"errors"
	"fmt"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

type PatientService struct {
	patientRepo *repository.PatientRepository
	auditRepo   *repository.AuditRepository
}

func NewPatientService(patientRepo *repository.PatientRepository, auditRepo *repository.AuditRepository) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		auditRepo:   auditRepo,
	}
}

// GetAllPatients retrieves the full patient collection
func (s *PatientService) GetAllPatients() ([]models.Patient, error) {
	return s.patientRepo.GetAllPatients()
}

// CreatePatient creates a new patient
func (s *PatientService) CreatePatient(patient *models.Patient) error {
	if patient.Age < 0 || patient.Age > 120 {
		return errors.New("age must be between 0 and 120")
	}

	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}

	details := fmt.Sprintf("Created patient: %s %s (ID: %d)", patient.FirstName, patient.LastName, patient.PatientID)
	_ = s.auditRepo.CreateAuditLog(nil, "patient_create", details)

	return nil
}

// UpdatePatient replaces an existing patient record
func (s *PatientService) UpdatePatient(patient *models.Patient) error {
	if _, err := s.patientRepo.GetPatientByID(patient.PatientID); err != nil {
		return err
	}
	if patient.Age < 0 || patient.Age > 120 {
		return errors.New("age must be between 0 and 120")
	}

	if err := s.patientRepo.UpdatePatient(patient); err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	details := fmt.Sprintf("Updated patient: %s %s (ID: %d)", patient.FirstName, patient.LastName, patient.PatientID)
	_ = s.auditRepo.CreateAuditLog(nil, "patient_update", details)

	return nil
}

// DeletePatient removes a patient
func (s *PatientService) DeletePatient(id uint) error {
	patient, err := s.patientRepo.GetPatientByID(id)
	if err != nil {
		return err
	}

	if err := s.patientRepo.DeletePatient(id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	details := fmt.Sprintf("Deleted patient: %s %s (ID: %d)", patient.FirstName, patient.LastName, id)
	_ = s.auditRepo.CreateAuditLog(nil, "patient_delete", details)

	return nil
}
