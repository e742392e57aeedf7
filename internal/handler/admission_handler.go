package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/internal/service"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

type AdmitRequest struct {
	PatientID uint   `json:"patient_id" binding:"required"`
	RoomID    uint   `json:"room_id" binding:"required"`
	CheckIn   string `json:"check_in"`
	Notes     string `json:"notes"`
}

// checkInLayouts covers the datetime-local form value and common API formats
var checkInLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseCheckIn(value string) (time.Time, error) {
	for _, layout := range checkInLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("invalid check_in format")
}

// GetAdmissions retrieves all stays with patient name and room number
func (h *AdmissionHandler) GetAdmissions(c *gin.Context) {
	admissions, err := h.admissionService.GetAllAdmissions()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch admissions")
		return
	}
	utils.SuccessResponse(c, admissions)
}

// Admit creates a stay and marks the room occupied
func (h *AdmissionHandler) Admit(c *gin.Context) {
	var req AdmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	stay := models.Stay{
		PatientID: req.PatientID,
		RoomID:    req.RoomID,
		Notes:     req.Notes,
	}
	if req.CheckIn != "" {
		checkIn, err := parseCheckIn(req.CheckIn)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
		stay.CheckIn = checkIn
	}

	if err := h.admissionService.Admit(&stay); err != nil {
		switch {
		case errors.Is(err, repository.ErrPatientNotFound), errors.Is(err, repository.ErrRoomNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, repository.ErrRoomOccupied):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": "Patient admitted successfully",
		"stay":    stay,
	})
}

// Discharge ends an active stay and frees its room
func (h *AdmissionHandler) Discharge(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}

	stay, err := h.admissionService.Discharge(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStayNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		case errors.Is(err, repository.ErrAlreadyDischarged):
			utils.ErrorResponse(c, http.StatusConflict, err.Error())
		default:
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":   "Patient discharged successfully",
		"check_out": stay.CheckOut,
	})
}
