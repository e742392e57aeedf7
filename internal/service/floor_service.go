package service

import (
	"fmt"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

type FloorService struct {
	floorRepo *repository.FloorRepository
	auditRepo *repository.AuditRepository
}

func NewFloorService(floorRepo *repository.FloorRepository, auditRepo *repository.AuditRepository) *FloorService {
	return &FloorService{
		floorRepo: floorRepo,
		auditRepo: auditRepo,
	}
}

// GetAllFloors retrieves the full floor collection
func (s *FloorService) GetAllFloors() ([]models.Floor, error) {
	return s.floorRepo.GetAllFloors()
}

// CreateFloor creates a new floor
func (s *FloorService) CreateFloor(floor *models.Floor) error {
	if err := s.floorRepo.CreateFloor(floor); err != nil {
		return fmt.Errorf("failed to create floor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(nil, "floor_create", fmt.Sprintf("Created floor %d (number %d)", floor.FloorID, floor.FloorNumber))

	return nil
}

// UpdateFloor replaces an existing floor record
func (s *FloorService) UpdateFloor(floor *models.Floor) error {
	if _, err := s.floorRepo.GetFloorByID(floor.FloorID); err != nil {
		return err
	}

	if err := s.floorRepo.UpdateFloor(floor); err != nil {
		return fmt.Errorf("failed to update floor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(nil, "floor_update", fmt.Sprintf("Updated floor %d", floor.FloorID))

	return nil
}

// DeleteFloor removes a floor
func (s *FloorService) DeleteFloor(id uint) error {
	if _, err := s.floorRepo.GetFloorByID(id); err != nil {
		return err
	}

	if err := s.floorRepo.DeleteFloor(id); err != nil {
		return fmt.Errorf("failed to delete floor: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(nil, "floor_delete", fmt.Sprintf("Deleted floor %d", id))

	return nil
}
