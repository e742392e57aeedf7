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

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// patientListFields wires the patient page's list behavior: search on the
// full name, filter by gender, all six sort keys.
var patientListFields = listview.Adapter[models.Patient]{
	ID:         func(p models.Patient) uint { return p.PatientID },
	SearchText: func(p models.Patient) []string { return []string{p.FirstName + " " + p.LastName} },
	Category:   func(p models.Patient) string { return p.Gender },
	Surname:    func(p models.Patient) string { return p.LastName },
	Age:        func(p models.Patient) int { return p.Age },
}

// GetPatients retrieves all patients. With search/gender/sort/page query
// parameters it returns the visible page plus pagination metadata instead.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	patients, err := h.patientService.GetAllPatients()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	if q, ok := listQuery(c, "gender"); ok {
		utils.SuccessResponse(c, listview.Apply(patients, q, patientListFields))
		return
	}
	utils.SuccessResponse(c, patients)
}

// CreatePatient creates a new patient
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if patient.FirstName == "" || patient.LastName == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "first_name and last_name are required")
		return
	}

	if err := h.patientService.CreatePatient(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.SuccessResponse(c, patient)
}

// UpdatePatient replaces an existing patient record
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	patient.PatientID = uint(id)

	if err := h.patientService.UpdatePatient(&patient); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Patient updated successfully")
}

// DeletePatient removes a patient
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	if err := h.patientService.DeletePatient(uint(id)); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Patient deleted successfully")
}
