package repository

import (
	"errors"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllWithFloor retrieves all rooms joined with floor information,
// ordered by room number
func (r *RoomRepository) GetAllWithFloor() ([]models.RoomWithFloor, error) {
	var results []models.RoomWithFloor
	err := r.db.Table("rooms r").
		Select(`r.room_id, r.room_number, r.room_type, r.room_rate, r.is_occupied,
			r.floor_id, f.floor_number, f.description`).
		Joins("JOIN floors f ON r.floor_id = f.floor_id").
		Order("r.room_number ASC").
		Scan(&results).Error
	return results, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, "room_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// GetAvailableRooms retrieves all rooms currently not occupied
func (r *RoomRepository) GetAvailableRooms() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Where("is_occupied = ?", false).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// UpdateRoom replaces an existing room record
func (r *RoomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Save(room).Error
}

// DeleteRoom removes a room by ID
func (r *RoomRepository) DeleteRoom(id uint) error {
	return r.db.Delete(&models.Room{}, "room_id = ?", id).Error
}
