// internal/services/audit_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/product-catalog/internal/models"
	"github.com/javajoker/product-catalog/internal/utils"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Record(ctx context.Context, entry *models.AuditLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (s *AuditService) List(ctx context.Context, params utils.PaginationParams) ([]models.AuditLog, int64, error) {
	// Get total count
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	// Apply sorting and pagination
	allowedSortFields := []string{"created_at", "id", "status", "duration_ms"}
	query := utils.ApplySort(s.db.WithContext(ctx).Model(&models.AuditLog{}), params, allowedSortFields)
	query = utils.ApplyPagination(query.Order("id "+params.Order), params)

	logs := []models.AuditLog{}
	if err := query.Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return logs, total, nil
}
