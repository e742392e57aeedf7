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

type FloorHandler struct {
	floorService *service.FloorService
}

func NewFloorHandler(floorService *service.FloorService) *FloorHandler {
	return &FloorHandler{
		floorService: floorService,
	}
}

// GetFloors retrieves all floors
func (h *FloorHandler) GetFloors(c *gin.Context) {
	floors, err := h.floorService.GetAllFloors()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch floors")
		return
	}
	utils.SuccessResponse(c, floors)
}

// CreateFloor creates a new floor
func (h *FloorHandler) CreateFloor(c *gin.Context) {
	var floor models.Floor
	if err := c.ShouldBindJSON(&floor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.floorService.CreateFloor(&floor); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SuccessResponse(c, floor)
}

// UpdateFloor replaces an existing floor record
func (h *FloorHandler) UpdateFloor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid floor ID")
		return
	}

	var floor models.Floor
	if err := c.ShouldBindJSON(&floor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	floor.FloorID = uint(id)

	if err := h.floorService.UpdateFloor(&floor); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Floor updated successfully")
}

// DeleteFloor removes a floor
func (h *FloorHandler) DeleteFloor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid floor ID")
		return
	}

	if err := h.floorService.DeleteFloor(uint(id)); err != nil {
		if errors.Is(err, repository.ErrFloorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Floor deleted successfully")
}
