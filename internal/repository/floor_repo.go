package repository

import (
	"errors"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

type FloorRepository struct {
	db *gorm.DB
}

func NewFloorRepo(db *gorm.DB) *FloorRepository {
	return &FloorRepository{db: db}
}

// GetAllFloors retrieves all floors ordered by floor number
func (r *FloorRepository) GetAllFloors() ([]models.Floor, error) {
	var floors []models.Floor
	err := r.db.Order("floor_number ASC").Find(&floors).Error
	return floors, err
}

// GetFloorByID retrieves a floor by ID
func (r *FloorRepository) GetFloorByID(id uint) (*models.Floor, error) {
	var floor models.Floor
	err := r.db.First(&floor, "floor_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFloorNotFound
		}
		return nil, err
	}
	return &floor, nil
}

// CreateFloor creates a new floor
func (r *FloorRepository) CreateFloor(floor *models.Floor) error {
	return r.db.Create(floor).Error
}

// UpdateFloor replaces an existing floor record
func (r *FloorRepository) UpdateFloor(floor *models.Floor) error {
	return r.db.Save(floor).Error
}

// DeleteFloor removes a floor by ID
func (r *FloorRepository) DeleteFloor(id uint) error {
	return r.db.Delete(&models.Floor{}, "floor_id = ?", id).Error
}
