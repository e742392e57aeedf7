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

type BillingHandler struct {
	billingService *service.BillingService
}

func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

// billingListFields wires the billing page's list behavior: search on the
// patient name and notes, filter by status, id sorts only.
var billingListFields = listview.Adapter[models.BillingWithPatient]{
	ID:         func(b models.BillingWithPatient) uint { return b.BillingID },
	SearchText: func(b models.BillingWithPatient) []string { return []string{b.PatientName, b.Notes} },
	Category:   func(b models.BillingWithPatient) string { return b.Status },
}

// GetBilling retrieves all billing records with the patient name joined.
// With search/status/sort/page query parameters it returns the visible page.
func (h *BillingHandler) GetBilling(c *gin.Context) {
	records, err := h.billingService.GetAllBilling()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch billing records")
		return
	}

	if q, ok := listQuery(c, "status"); ok {
		utils.SuccessResponse(c, listview.Apply(records, q, billingListFields))
		return
	}
	utils.SuccessResponse(c, records)
}

// CreateBilling creates a new billing record. Billing is the one entity with
// an explicit required-field check, answered with 400.
func (h *BillingHandler) CreateBilling(c *gin.Context) {
	var billing models.Billing
	if err := c.ShouldBindJSON(&billing); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if billing.PatientID == 0 || billing.Amount == 0 || billing.BillingDate == "" || billing.Status == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	if err := h.billingService.CreateBilling(&billing); err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, billing)
}

// UpdateBilling replaces an existing billing record
func (h *BillingHandler) UpdateBilling(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid billing ID")
		return
	}

	var billing models.Billing
	if err := c.ShouldBindJSON(&billing); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	billing.BillingID = uint(id)

	if err := h.billingService.UpdateBilling(&billing); err != nil {
		if errors.Is(err, repository.ErrBillingNotFound) || errors.Is(err, repository.ErrPatientNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Billing record updated successfully")
}

// DeleteBilling removes a billing record
func (h *BillingHandler) DeleteBilling(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid billing ID")
		return
	}

	if err := h.billingService.DeleteBilling(uint(id)); err != nil {
		if errors.Is(err, repository.ErrBillingNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, err.Error())
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	utils.MessageResponse(c, "Billing record deleted successfully")
}
