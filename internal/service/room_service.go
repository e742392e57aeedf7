package service

import (
	"fmt"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
)

type RoomService struct {
	roomRepo  *repository.RoomRepository
	floorRepo *repository.FloorRepository
	auditRepo *repository.AuditRepository
}

func NewRoomService(
	roomRepo *repository.RoomRepository,
	floorRepo *repository.FloorRepository,
	auditRepo *repository.AuditRepository,
) *RoomService {
	return &RoomService{
		roomRepo:  roomRepo,
		floorRepo: floorRepo,
		auditRepo: auditRepo,
	}
}

// GetAllRooms retrieves all rooms with floor information joined
func (s *RoomService) GetAllRooms() ([]models.RoomWithFloor, error) {
	return s.roomRepo.GetAllWithFloor()
}

// GetAvailableRooms retrieves rooms currently not occupied, for the
// admission form's room dropdown
func (s *RoomService) GetAvailableRooms() ([]models.Room, error) {
	return s.roomRepo.GetAvailableRooms()
}

// CreateRoom creates a new room after verifying the floor exists
func (s *RoomService) CreateRoom(room *models.Room) error {
	if _, err := s.floorRepo.GetFloorByID(room.FloorID); err != nil {
		return err
	}

	if err := s.roomRepo.CreateRoom(room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	details := fmt.Sprintf("Created room %s (ID: %d, floor %d)", room.RoomNumber, room.RoomID, room.FloorID)
	_ = s.auditRepo.CreateAuditLog(nil, "room_create", details)

	return nil
}

// UpdateRoom replaces an existing room record
func (s *RoomService) UpdateRoom(room *models.Room) error {
	existing, err := s.roomRepo.GetRoomByID(room.RoomID)
	if err != nil {
		return err
	}
	if room.FloorID != existing.FloorID {
		if _, err := s.floorRepo.GetFloorByID(room.FloorID); err != nil {
			return err
		}
	}

	if err := s.roomRepo.UpdateRoom(room); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	details := fmt.Sprintf("Updated room %s (ID: %d)", room.RoomNumber, room.RoomID)
	_ = s.auditRepo.CreateAuditLog(nil, "room_update", details)

	return nil
}

// DeleteRoom removes a room
func (s *RoomService) DeleteRoom(id uint) error {
	room, err := s.roomRepo.GetRoomByID(id)
	if err != nil {
		return err
	}

	if err := s.roomRepo.DeleteRoom(id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	details := fmt.Sprintf("Deleted room %s (ID: %d)", room.RoomNumber, id)
	_ = s.auditRepo.CreateAuditLog(nil, "room_delete", details)

	return nil
}
