package repo

import (
	"context"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
)

type SubmissionAuditFilter struct {
	UserID string
	CartID string
}

type SubmissionAuditRepository interface {
	Create(ctx context.Context, audit *domain.SubmissionAudit) error
	List(ctx context.Context, filter SubmissionAuditFilter, limit int) ([]domain.SubmissionAudit, error)
}
