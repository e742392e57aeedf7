package repository

import (
	"errors"
	"time"

	"hospital-admin-backend/internal/models"

	"gorm.io/gorm"
)

type StayRepository struct {
	db *gorm.DB
}

func NewStayRepo(db *gorm.DB) *StayRepository {
	return &StayRepository{db: db}
}

// GetAllWithDetails retrieves all admissions joined with the patient name
// and room number, newest check-in first
func (r *StayRepository) GetAllWithDetails() ([]models.StayWithDetails, error) {
	var results []models.StayWithDetails
	err := r.db.Table("patient_room pr").
		Select(`pr.stay_id, pr.patient_id, pr.room_id, pr.check_in, pr.check_out, pr.notes,
			CONCAT(p.first_name, ' ', p.last_name) AS patient_name,
			r.room_number`).
		Joins("JOIN patients p ON pr.patient_id = p.patient_id").
		Joins("JOIN rooms r ON pr.room_id = r.room_id").
		Order("pr.check_in DESC").
		Scan(&results).Error
	return results, err
}

// Admit inserts the stay and claims the room in a single transaction.
// The room claim is conditional on the room being free, so two admits
// racing on the same room cannot both succeed: the loser gets
// ErrRoomOccupied and its stay insert is rolled back.
func (r *StayRepository) Admit(stay *models.Stay) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stay).Error; err != nil {
			return err
		}

		claim := tx.Model(&models.Room{}).
			Where("room_id = ? AND is_occupied = ?", stay.RoomID, false).
			Update("is_occupied", true)
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			return ErrRoomOccupied
		}
		return nil
	})
}

// Discharge sets the stay's check-out and frees its room in a single
// transaction. Returns ErrStayNotFound for an unknown stay and
// ErrAlreadyDischarged when check-out is already set; neither case writes.
func (r *StayRepository) Discharge(stayID uint, checkOut time.Time) (*models.Stay, error) {
	var stay models.Stay
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&stay, "stay_id = ?", stayID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStayNotFound
			}
			return err
		}
		if !stay.Active() {
			return ErrAlreadyDischarged
		}

		if err := tx.Model(&models.Stay{}).
			Where("stay_id = ?", stayID).
			Update("check_out", checkOut).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).
			Where("room_id = ?", stay.RoomID).
			Update("is_occupied", false).Error; err != nil {
			return err
		}

		stay.CheckOut = &checkOut
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stay, nil
}
