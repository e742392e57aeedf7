package models

// Room represents a patient room on a hospital floor.
// IsOccupied is the sole persisted signal of availability; it is written
// only by the admission lifecycle (admit claims it, discharge frees it).
type Room struct {
	RoomID     uint    `gorm:"column:room_id;primaryKey" json:"room_id"`
	FloorID    uint    `gorm:"not null;index" json:"floor_id"`
	RoomNumber string  `gorm:"size:20;not null" json:"room_number"`
	RoomType   string  `gorm:"size:50" json:"room_type"`
	RoomRate   float64 `gorm:"type:decimal(10,2);default:0" json:"room_rate"`
	IsOccupied bool    `gorm:"default:false" json:"is_occupied"`

	// Relationships
	Floor Floor `gorm:"foreignKey:FloorID" json:"floor,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// RoomWithFloor is the joined shape used by the room list view
type RoomWithFloor struct {
	RoomID      uint    `json:"room_id"`
	RoomNumber  string  `json:"room_number"`
	RoomType    string  `json:"room_type"`
	RoomRate    float64 `json:"room_rate"`
	IsOccupied  bool    `json:"is_occupied"`
	FloorID     uint    `json:"floor_id"`
	FloorNumber int     `json:"floor_number"`
	Description string  `json:"description"`
}
