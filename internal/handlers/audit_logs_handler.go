package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/foodbridge/pickup-scheduler/internal/httperr"
	"github.com/foodbridge/pickup-scheduler/internal/httpresp"
	"github.com/foodbridge/pickup-scheduler/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	locationID, ok := paramUint(c, "locationId")
	if !ok {
		return
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("location_id = ?", locationID).
		Order("created_at DESC").
		Limit(200).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not load audit logs.")
		return
	}

	httpresp.List(c, logs)
}
