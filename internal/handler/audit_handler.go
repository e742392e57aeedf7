package handler

import (
	"net/http"
	"strconv"

	"hospital-admin-backend/internal/repository"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditRepo *repository.AuditRepository
}

func NewAuditHandler(auditRepo *repository.AuditRepository) *AuditHandler {
	return &AuditHandler{
		auditRepo: auditRepo,
	}
}

// GetLogs retrieves recent audit log entries (admin only)
func (h *AuditHandler) GetLogs(c *gin.Context) {
	limit := 100
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 1000 {
			limit = n
		}
	}

	logs, err := h.auditRepo.GetRecentLogs(limit)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch audit logs")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"logs":  logs,
		"count": len(logs),
	})
}
