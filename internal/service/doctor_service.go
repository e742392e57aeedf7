package service

import (
	"fmt"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

type DoctorService struct {
	doctorRepo *repository.DoctorRepository
	auditRepo  *repository.AuditRepository
}

func NewDoctorService(doctorRepo *repository.DoctorRepository, auditRepo *repository.AuditRepository) *DoctorService {
	return &DoctorService{
		doctorRepo: doctorRepo,
		auditRepo:  auditRepo,
	}
}

// GetAllDoctors retrieves the full doctor collection
func (s *DoctorService) GetAllDoctors() ([]models.Doctor, error) {
	return s.doctorRepo.GetAllDoctors()
}

// CreateDoctor creates a new doctor
func (s *DoctorService) CreateDoctor(doctor *models.Doctor) error {
	if err := s.doctorRepo.CreateDoctor(doctor); err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}

	details := fmt.Sprintf("Created doctor: %s %s (ID: %d)", doctor.FirstName, doctor.LastName, doctor.DoctorID)
	_ = s.auditRepo.CreateAuditLog(nil, "doctor_create", details)

	return nil
}

// UpdateDoctor replaces an existing doctor record
func (s *DoctorService) UpdateDoctor(doctor *models.Doctor) error {
	if _, err := s.doctorRepo.GetDoctorByID(doctor.DoctorID); err != nil {
		return err
	}

	if err := s.doctorRepo.UpdateDoctor(doctor); err != nil {
		return fmt.Errorf("failed to update doctor: %w", err)
	}

	details := fmt.Sprintf("Updated doctor: %s %s (ID: %d)", doctor.FirstName, doctor.LastName, doctor.DoctorID)
	_ = s.auditRepo.CreateAuditLog(nil, "doctor_update", details)

	return nil
}

// DeleteDoctor removes a doctor
func (s *DoctorService) DeleteDoctor(id uint) error {
	doctor, err := s.doctorRepo.GetDoctorByID(id)
	if err != nil {
		return err
	}

	if err := s.doctorRepo.DeleteDoctor(id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}

	details := fmt.Sprintf("Deleted doctor: %s %s (ID: %d)", doctor.FirstName, doctor.LastName, id)
	_ = s.auditRepo.CreateAuditLog(nil, "doctor_delete", details)

	return nil
}
