package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/internal/service"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

// GetRooms retrieves all rooms with floor information joined
func (h *RoomHandler) GetRooms(c *gin.Context) {
	rooms, err := h.roomService.GetAllRooms()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	utils.SuccessResponse(c, rooms)
}

// GetAvailableRooms retrieves rooms currently not occupied
func (h *RoomHandler) GetAvailableRooms(c *gin.Context) {
	rooms, err := h.roomService.GetAvailableRooms()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	utils.SuccessResponse(c, rooms)
}

// CreateRoom creates a new room
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if room.FloorID == 0 || room.RoomNumber == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "floor_id and room_number are required")
		return
	}

	if err := h.roomService.CreateRoom(&room); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, room)
}

// UpdateRoom replaces an existing room record
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	room.RoomID = uint(id)

	if err := h.roomService.UpdateRoom(&room); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) || errors.Is(err, repository.ErrFloorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Room updated successfully")
}

// DeleteRoom removes a room
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.roomService.DeleteRoom(uint(id)); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Room deleted successfully")
}
