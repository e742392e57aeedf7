package service

import (
	"fmt"
	"time"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

// StayStore is the transactional store behind the admission lifecycle.
// Admit must insert the stay and claim the room atomically, failing with
// repository.ErrRoomOccupied when the room was already taken; Discharge
// must set the check-out and free the room atomically.
type StayStore interface {
	GetAllWithDetails() ([]models.StayWithDetails, error)
	Admit(stay *models.Stay) error
	Discharge(stayID uint, checkOut time.Time) (*models.Stay, error)
}

// PatientFinder resolves a patient reference
type PatientFinder interface {
	GetPatientByID(id uint) (*models.Patient, error)
}

// RoomFinder resolves a room reference
type RoomFinder interface {
	GetRoomByID(id uint) (*models.Room, error)
}

// AuditSink records lifecycle actions
type AuditSink interface {
	CreateAuditLog(userID *uint, action string, details string) error
}

// AdmissionService owns the admit/discharge lifecycle. These two operations
// are the only writers of the room occupancy flag.
type AdmissionService struct {
	stayStore   StayStore
	patientRepo PatientFinder
	roomRepo    RoomFinder
	auditRepo   AuditSink
}

func NewAdmissionService(
	stayStore StayStore,
	patientRepo PatientFinder,
	roomRepo RoomFinder,
	auditRepo AuditSink,
) *AdmissionService {
	return &AdmissionService{
		stayStore:   stayStore,
		patientRepo: patientRepo,
		roomRepo:    roomRepo,
		auditRepo:   auditRepo,
	}
}

// GetAllAdmissions retrieves all stays with patient name and room number
func (s *AdmissionService) GetAllAdmissions() ([]models.StayWithDetails, error) {
	return s.stayStore.GetAllWithDetails()
}

// Admit creates a stay for the patient and claims the room. Both references
// must resolve; a room that is already occupied fails the admit even though
// the admission form only offers free rooms, so two clients racing on the
// same room cannot both win.
func (s *AdmissionService) Admit(stay *models.Stay) error {
	if _, err := s.patientRepo.GetPatientByID(stay.PatientID); err != nil {
		return err
	}
	room, err := s.roomRepo.GetRoomByID(stay.RoomID)
	if err != nil {
		return err
	}
	if room.IsOccupied {
		return repository.ErrRoomOccupied
	}

	if stay.CheckIn.IsZero() {
		stay.CheckIn = time.Now()
	}
	stay.CheckOut = nil

	if err := s.stayStore.Admit(stay); err != nil {
		return err
	}

	details := fmt.Sprintf("Admitted patient %d to room %s (stay %d)", stay.PatientID, room.RoomNumber, stay.StayID)
	_ = s.auditRepo.CreateAuditLog(nil, "patient_admit", details)

	return nil
}

// Discharge ends an active stay: sets check-out to now and frees the room.
// Unknown stays and stays already discharged fail without writes.
func (s *AdmissionService) Discharge(stayID uint) (*models.Stay, error) {
	stay, err := s.stayStore.Discharge(stayID, time.Now())
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Discharged patient %d from room %d (stay %d)", stay.PatientID, stay.RoomID, stay.StayID)
	_ = s.auditRepo.CreateAuditLog(nil, "patient_discharge", details)

	return stay, nil
}
