package service

import (
	"fmt"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	patientRepo     *repository.PatientRepository
	doctorRepo      *repository.DoctorRepository
	auditRepo       *repository.AuditRepository
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	patientRepo *repository.PatientRepository,
	doctorRepo *repository.DoctorRepository,
	auditRepo *repository.AuditRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditRepo:       auditRepo,
	}
}

// GetAllAppointments retrieves all appointments with patient and doctor names
func (s *AppointmentService) GetAllAppointments() ([]models.AppointmentWithNames, error) {
	return s.appointmentRepo.GetAllWithNames()
}

// CreateAppointment creates a new appointment after verifying both references
func (s *AppointmentService) CreateAppointment(appointment *models.Appointment) error {
	if _, err := s.patientRepo.GetPatientByID(appointment.PatientID); err != nil {
		return err
	}
	if _, err := s.doctorRepo.GetDoctorByID(appointment.DoctorID); err != nil {
		return err
	}

	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	details := fmt.Sprintf("Created appointment %d (patient %d, doctor %d, %s %s)",
		appointment.AppointmentID, appointment.PatientID, appointment.DoctorID,
		appointment.AppointmentDate, appointment.AppointmentTime)
	_ = s.auditRepo.CreateAuditLog(nil, "appointment_create", details)

	return nil
}

// UpdateAppointment replaces an existing appointment record
func (s *AppointmentService) UpdateAppointment(appointment *models.Appointment) error {
	if _, err := s.appointmentRepo.GetAppointmentByID(appointment.AppointmentID); err != nil {
		return err
	}
	if _, err := s.patientRepo.GetPatientByID(appointment.PatientID); err != nil {
		return err
	}
	if _, err := s.doctorRepo.GetDoctorByID(appointment.DoctorID); err != nil {
		return err
	}

	if err := s.appointmentRepo.UpdateAppointment(appointment); err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	details := fmt.Sprintf("Updated appointment %d", appointment.AppointmentID)
	_ = s.auditRepo.CreateAuditLog(nil, "appointment_update", details)

	return nil
}

// DeleteAppointment removes an appointment
func (s *AppointmentService) DeleteAppointment(id uint) error {
	if _, err := s.appointmentRepo.GetAppointmentByID(id); err != nil {
		return err
	}

	if err := s.appointmentRepo.DeleteAppointment(id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(nil, "appointment_delete", fmt.Sprintf("Deleted appointment %d", id))

	return nil
}
