package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"sourcing-system/internal/dto"
	"sourcing-system/internal/entities"
	"sourcing-system/internal/events"
	"sourcing-system/internal/repositories"
	"sourcing-system/internal/upstream"
	"sourcing-system/internal/workflow"
	apperrors "sourcing-system/pkg/errors"
	"sourcing-system/pkg/eventbus"
)

const statusCacheKeyPrefix = "workflow:last:"

type WorkflowServiceInterface interface {
	ListBuyerRequests(ctx context.Context, buyerID int64) ([]dto.RequestWorkflowDTO, error)
	RequestStatus(ctx context.Context, cartID string) (*dto.RequestWorkflowDTO, error)
	ListSalesPipeline(ctx context.Context) ([]dto.RequestWorkflowDTO, error)
	ListOpsQueue(ctx context.Context) ([]dto.RequestWorkflowDTO, error)
	OrderTransitions(ctx context.Context, orderID string) (*dto.OrderTransitionsDTO, error)
	RefreshAll(ctx context.Context) error
}

// WorkflowService assembles per-request snapshots from the platform API and
// derives the canonical status every view renders. It holds no state of its
// own beyond the last-derived status cached for change detection.
type WorkflowService struct {
	provider  upstream.Provider
	cacheRepo repositories.CacheRepositoryInterface
	bus       *eventbus.Bus
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewWorkflowService(
	provider upstream.Provider,
	cacheRepo repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *WorkflowService {
	return &WorkflowService{
		provider:  provider,
		cacheRepo: cacheRepo,
		bus:       bus,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// projection pairs a cart with its assembled snapshot.
type projection struct {
	cart      entities.Cart
	quotation entities.Quotation
	snap      workflow.Snapshot
}

// fetchProjections pulls all three upstream collections and assembles one
// snapshot per non-draft cart.
func (s *WorkflowService) fetchProjections(ctx context.Context) ([]projection, error) {
	carts, err := s.provider.FetchCarts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching carts: %w", err)
	}
	quotations, err := s.provider.FetchQuotations(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching quotations: %w", err)
	}
	orders, err := s.provider.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}

	latestQuotation := make(map[string]entities.Quotation, len(quotations))
	for _, q := range quotations {
		current, ok := latestQuotation[q.CartID]
		if !ok || quotationNewer(q, current) {
			latestQuotation[q.CartID] = q
		}
	}

	newestOrder := make(map[string]entities.Order, len(orders))
	for _, o := range orders {
		current, ok := newestOrder[o.CartID]
		if !ok || orderNewer(o, current) {
			newestOrder[o.CartID] = o
		}
	}

	projections := make([]projection, 0, len(carts))
	for _, cart := range carts {
		if cart.Status == workflow.CartStatusDraft {
			continue
		}
		quotation := latestQuotation[cart.ID]
		projections = append(projections, projection{
			cart:      cart,
			quotation: quotation,
			snap:      BuildSnapshot(cart, quotation, newestOrder[cart.ID]),
		})
	}
	return projections, nil
}

// BuildSnapshot assembles the deriver input for one cart. The zero values of
// quotation/order mean "absent". Built fresh per call, never persisted.
func BuildSnapshot(cart entities.Cart, quotation entities.Quotation, order entities.Order) workflow.Snapshot {
	snap := workflow.Snapshot{
		CartStatus:            cart.Status,
		LatestQuotationStatus: quotation.Status,
		OpsForwarded:          cart.OpsForwarded,
	}
	if order.ID != "" {
		payments := make([]workflow.PaymentSnapshot, 0, len(order.Payments))
		for _, p := range order.Payments {
			payments = append(payments, workflow.PaymentSnapshot{
				Status:    p.Status,
				PaidAt:    p.PaidAt.Ptr(),
				CreatedAt: p.CreatedAt.Ptr(),
			})
		}
		snap.Order = &workflow.OrderSnapshot{
			ID:                     order.ID,
			Status:                 order.Status,
			TotalAmount:            order.TotalAmount,
			PaidAmount:             order.PaidAmount,
			PaymentLinkSentAt:      order.PaymentLinkSentAt.Ptr(),
			PaymentConfirmedAt:     order.PaymentConfirmedAt.Ptr(),
			ForwardedToOpsAt:       order.ForwardedToOpsAt.Ptr(),
			OpsProcessingStartedAt: order.OpsProcessingStartedAt.Ptr(),
			OpsFinalCheckStatus:    order.OpsFinalCheckStatus.String,
			Payments:               payments,
		}
	}
	return snap
}

func quotationNewer(a, b entities.Quotation) bool {
	if a.Round != b.Round {
		return a.Round > b.Round
	}
	at, bt := a.UpdatedAt.Time, b.UpdatedAt.Time
	if at.Equal(bt) {
		return a.SentAt.Time.After(b.SentAt.Time)
	}
	return at.After(bt)
}

func orderNewer(a, b entities.Order) bool {
	return a.CreatedAt.Time.After(b.CreatedAt.Time)
}

func (s *WorkflowService) toDTO(p projection, status workflow.CanonicalStatus) dto.RequestWorkflowDTO {
	d := dto.RequestWorkflowDTO{
		CartID:          p.cart.ID,
		BuyerID:         p.cart.BuyerID,
		TenantID:        p.cart.TenantID,
		Status:          status.String(),
		Label:           status.Label(),
		BadgeClass:      string(status.BadgeClass()),
		Terminal:        status.IsTerminal(),
		CartStatus:      p.cart.Status,
		QuotationStatus: p.snap.LatestQuotationStatus,
		QuotationRound:  p.quotation.Round,
		ItemCount:       p.cart.ItemCount,
		DerivedAt:       time.Now().UTC(),
	}
	if p.snap.Order != nil {
		d.OrderID = p.snap.Order.ID
		d.OrderStatus = p.snap.Order.Status
		d.TotalAmount = p.snap.Order.TotalAmount
		d.PaidAmount = p.snap.Order.PaidAmount
	}
	return d
}

// ListBuyerRequests returns the canonical projection of one buyer's
// requests, newest signal first as upstream orders them.
func (s *WorkflowService) ListBuyerRequests(ctx context.Context, buyerID int64) ([]dto.RequestWorkflowDTO, error) {
	projections, err := s.fetchProjections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequestWorkflowDTO, 0)
	for _, p := range projections {
		if p.cart.BuyerID != buyerID {
			continue
		}
		out = append(out, s.toDTO(p, workflow.Derive(p.snap)))
	}
	return out, nil
}

// RequestStatus returns the projection of a single request.
func (s *WorkflowService) RequestStatus(ctx context.Context, cartID string) (*dto.RequestWorkflowDTO, error) {
	projections, err := s.fetchProjections(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projections {
		if p.cart.ID == cartID {
			d := s.toDTO(p, workflow.Derive(p.snap))
			return &d, nil
		}
	}
	return nil, apperrors.NewHttpError(http.StatusNotFound, "request not found", apperrors.ErrNotFound,
		map[string]interface{}{"cart_id": cartID})
}

// ListSalesPipeline returns the coarser sales-scoped projection: conversion
// tracking without fulfillment granularity.
func (s *WorkflowService) ListSalesPipeline(ctx context.Context) ([]dto.RequestWorkflowDTO, error) {
	projections, err := s.fetchProjections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequestWorkflowDTO, 0, len(projections))
	for _, p := range projections {
		out = append(out, s.toDTO(p, workflow.DeriveSales(p.snap)))
	}
	return out, nil
}

// ListOpsQueue returns only the requests operations works on: paid orders
// and orders already in fulfillment.
func (s *WorkflowService) ListOpsQueue(ctx context.Context) ([]dto.RequestWorkflowDTO, error) {
	projections, err := s.fetchProjections(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RequestWorkflowDTO, 0)
	for _, p := range projections {
		status := workflow.Derive(p.snap)
		switch status {
		case workflow.StatusPaidConfirmed, workflow.StatusReadyForOps, workflow.StatusInOpsProcessing:
			out = append(out, s.toDTO(p, status))
		}
	}
	return out, nil
}

// OrderTransitions returns the allowed next fulfillment statuses for one
// order, for rendering action buttons.
func (s *WorkflowService) OrderTransitions(ctx context.Context, orderID string) (*dto.OrderTransitionsDTO, error) {
	orders, err := s.provider.FetchOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching orders: %w", err)
	}
	for _, o := range orders {
		if o.ID != orderID {
			continue
		}
		status, err := workflow.ParseOrderStatus(o.Status)
		if err != nil {
			return nil, apperrors.NewHttpError(http.StatusConflict, "order has an unknown status", err,
				map[string]interface{}{"order_id": orderID, "status": o.Status})
		}
		next := workflow.NextStatuses(status)
		allowed := make([]string, 0, len(next))
		for _, n := range next {
			allowed = append(allowed, string(n))
		}
		return &dto.OrderTransitionsDTO{
			OrderID:     o.ID,
			Status:      o.Status,
			AllowedNext: allowed,
		}, nil
	}
	return nil, apperrors.NewHttpError(http.StatusNotFound, "order not found", apperrors.ErrNotFound,
		map[string]interface{}{"order_id": orderID})
}

// RefreshAll recomputes every projection, compares against the previously
// derived status in the cache and publishes a status-changed event per
// transition observed.
func (s *WorkflowService) RefreshAll(ctx context.Context) error {
	projections, err := s.fetchProjections(ctx)
	if err != nil {
		return err
	}

	for _, p := range projections {
		current := workflow.Derive(p.snap)
		key := statusCacheKeyPrefix + p.cart.ID

		previous, err := s.cacheRepo.Get(ctx, key)
		if err != nil && !errors.Is(err, repositories.ErrCacheMiss) {
			s.logger.Warn("status cache read failed", zap.String("cart_id", p.cart.ID), zap.Error(err))
		}
		if previous == current.String() {
			continue
		}

		if err := s.cacheRepo.Set(ctx, key, current.String(), s.cacheTTL); err != nil {
			s.logger.Warn("status cache write failed", zap.String("cart_id", p.cart.ID), zap.Error(err))
		}

		// First sighting of a request is not a transition.
		if previous == "" {
			continue
		}

		s.logger.Info("workflow status changed",
			zap.String("cart_id", p.cart.ID),
			zap.String("previous", previous),
			zap.String("current", current.String()),
		)
		s.bus.Publish(ctx, events.StatusChangedEvent{
			CartID:   p.cart.ID,
			BuyerID:  p.cart.BuyerID,
			TenantID: p.cart.TenantID,
			Previous: workflow.CanonicalStatus(previous),
			Current:  current,
		})
	}
	return nil
}
