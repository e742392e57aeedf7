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

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

// GetAppointments retrieves all appointments with patient and doctor names
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	appointments, err := h.appointmentService.GetAllAppointments()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}
	utils.SuccessResponse(c, appointments)
}

// CreateAppointment creates a new appointment
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := h.appointmentService.CreateAppointment(&appointment); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) || errors.Is(err, repository.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, appointment)
}

// UpdateAppointment replaces an existing appointment record
func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	appointment.AppointmentID = uint(id)

	if err := h.appointmentService.UpdateAppointment(&appointment); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) ||
			errors.Is(err, repository.ErrPatientNotFound) ||
			errors.Is(err, repository.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Appointment updated successfully")
}

// DeleteAppointment removes an appointment
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	if err := h.appointmentService.DeleteAppointment(uint(id)); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Appointment deleted successfully")
}
