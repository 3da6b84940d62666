package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sh1vam31/food-inventory-console/internal/domain"
	"github.com/sh1vam31/food-inventory-console/internal/inventory"
	"github.com/sh1vam31/food-inventory-console/internal/repo"
	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderInventory interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	CancelOrder(ctx context.Context, id int64) (domain.OrderStatus, error)
	CompleteOrder(ctx context.Context, id int64) (domain.OrderStatus, error)
}

type OrderService struct {
	inventory OrderInventory
	auditRepo repo.SubmissionAuditRepository
	logger    *zap.SugaredLogger
}

func NewOrderService(
	inventory OrderInventory,
	auditRepo repo.SubmissionAuditRepository,
	logger *zap.SugaredLogger,
) *OrderService {
	return &OrderService{
		inventory: inventory,
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.inventory.ListOrders(ctx)
}

func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.inventory.GetOrder(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrOrderNotFound)
	}

	return order, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, id int64, userID string) (domain.OrderStatus, error) {
	status, err := s.inventory.CancelOrder(ctx, id)
	if err != nil {
		return "", notFoundAs(err, ErrOrderNotFound)
	}

	s.logger.Infow("order cancelled", "order_id", id, "user_id", userID)

	return status, nil
}

func (s *OrderService) CompleteOrder(ctx context.Context, id int64, userID string) (domain.OrderStatus, error) {
	status, err := s.inventory.CompleteOrder(ctx, id)
	if err != nil {
		return "", notFoundAs(err, ErrOrderNotFound)
	}

	s.logger.Infow("order completed", "order_id", id, "user_id", userID)

	return status, nil
}

func (s *OrderService) RecordSubmission(ctx context.Context, event domain.SubmissionEvent) error {
	audit := &domain.SubmissionAudit{
		EventType:  event.EventType,
		CartID:     event.CartID,
		UserID:     event.UserID,
		OrderID:    event.OrderID,
		TotalPrice: event.TotalPrice,
		Items:      make([]domain.AuditLine, 0, len(event.Items)),
		Reason:     event.Reason,
		Timestamp:  event.Timestamp,
	}
	for _, l := range event.Items {
		audit.Items = append(audit.Items, domain.AuditLine{MenuItemID: l.MenuItemID, Quantity: l.Quantity})
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}

	s.logger.Infow("submission audit created", "cart_id", event.CartID, "event_type", event.EventType)

	return nil
}

func (s *OrderService) ListSubmissions(ctx context.Context, filter repo.SubmissionAuditFilter, limit int) ([]domain.SubmissionAudit, error) {
	audits, err := s.auditRepo.List(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	return audits, nil
}

func notFoundAs(err error, target error) error {
	var apiErr *inventory.APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		return target
	}
	return err
}
