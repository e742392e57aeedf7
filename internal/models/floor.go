package models

// Floor represents a hospital floor
type Floor struct {
	FloorID     uint   `gorm:"column:floor_id;primaryKey" json:"floor_id"`
	FloorNumber int    `gorm:"not null" json:"floor_number"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName specifies the table name for Floor model
func (Floor) TableName() string {
	return "floors"
}
