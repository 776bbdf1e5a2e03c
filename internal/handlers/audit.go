// internal/handlers/audit.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/product-catalog/internal/services"
	"github.com/javajoker/product-catalog/internal/utils"
)

type AuditHandler struct {
	auditService *services.AuditService
	defaultLimit int
}

func NewAuditHandler(auditService *services.AuditService, defaultLimit int) *AuditHandler {
	return &AuditHandler{auditService: auditService, defaultLimit: defaultLimit}
}

// GET /audit-logs
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c, h.defaultLimit)

	logs, total, err := h.auditService.List(c.Request.Context(), params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(logs, total, params)
	utils.PaginatedResponse(c, result)
}
