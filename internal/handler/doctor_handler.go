package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hospital-admin-backend/internal/listview"
	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/internal/service"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	doctorService *service.DoctorService
}

func NewDoctorHandler(doctorService *service.DoctorService) *DoctorHandler {
	return &DoctorHandler{
		doctorService: doctorService,
	}
}

// doctorListFields wires the doctor page's list behavior: search on the
// full name, id and surname sorts. Doctors have no categorical filter.
var doctorListFields = listview.Adapter[models.Doctor]{
	ID:         func(d models.Doctor) uint { return d.DoctorID },
	SearchText: func(d models.Doctor) []string { return []string{d.FirstName + " " + d.LastName} },
	Surname:    func(d models.Doctor) string { return d.LastName },
}

// GetDoctors retrieves all doctors, paginated when list parameters are given
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.doctorService.GetAllDoctors()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}

	if q, ok := listQuery(c, ""); ok {
		utils.SuccessResponse(c, listview.Apply(doctors, q, doctorListFields))
		return
	}
	utils.SuccessResponse(c, doctors)
}

// CreateDoctor creates a new doctor
func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if doctor.FirstName == "" || doctor.LastName == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "first_name and last_name are required")
		return
	}

	if err := h.doctorService.CreateDoctor(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, doctor)
}

// UpdateDoctor replaces an existing doctor record
func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	doctor.DoctorID = uint(id)

	if err := h.doctorService.UpdateDoctor(&doctor); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Doctor updated successfully")
}

// DeleteDoctor removes a doctor
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}

	if err := h.doctorService.DeleteDoctor(uint(id)); err != nil {
		if errors.Is(err, repository.ErrDoctorNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Doctor deleted successfully")
}
