package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"sourcing-system/internal/dto"
	"sourcing-system/pkg/contextkeys"
	apperrors "sourcing-system/pkg/errors"
)

// stubWorkflowService returns canned projections.
type stubWorkflowService struct {
	requests  []dto.RequestWorkflowDTO
	notFound  bool
	pipeline  []dto.RequestWorkflowDTO
	listedFor int64
}

func (s *stubWorkflowService) ListBuyerRequests(_ context.Context, buyerID int64) ([]dto.RequestWorkflowDTO, error) {
	s.listedFor = buyerID
	return s.requests, nil
}

func (s *stubWorkflowService) RequestStatus(context.Context, string) (*dto.RequestWorkflowDTO, error) {
	if s.notFound {
		return nil, apperrors.NewHttpError(http.StatusNotFound, "request not found", apperrors.ErrNotFound, nil)
	}
	return &s.requests[0], nil
}

func (s *stubWorkflowService) ListSalesPipeline(context.Context) ([]dto.RequestWorkflowDTO, error) {
	return s.pipeline, nil
}

func (s *stubWorkflowService) ListOpsQueue(context.Context) ([]dto.RequestWorkflowDTO, error) {
	return nil, nil
}

func (s *stubWorkflowService) OrderTransitions(context.Context, string) (*dto.OrderTransitionsDTO, error) {
	return &dto.OrderTransitionsDTO{OrderID: "o-1", Status: "confirmed", AllowedNext: []string{"in_production", "cancelled"}}, nil
}

func (s *stubWorkflowService) RefreshAll(context.Context) error { return nil }

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func newAuthedContext(e *echo.Echo, method, target string, userID int64) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), contextkeys.UserIDKey, userID)
	ctx = context.WithValue(ctx, contextkeys.UserRoleKey, "buyer")
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetMyRequests(t *testing.T) {
	e := echo.New()
	stub := &stubWorkflowService{
		requests: []dto.RequestWorkflowDTO{
			{CartID: "c-1", Status: "QUOTED", Label: "Quoted", BadgeClass: "info"},
		},
	}
	ctrl := NewWorkflowController(stub, zap.NewNop())

	c, rec := newAuthedContext(e, http.MethodGet, "/api/workflow/requests", 7)
	require.NoError(t, ctrl.GetMyRequests(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), stub.listedFor)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Status)

	var body []dto.RequestWorkflowDTO
	require.NoError(t, json.Unmarshal(env.Body, &body))
	require.Len(t, body, 1)
	assert.Equal(t, "QUOTED", body[0].Status)
}

func TestGetMyRequests_NoClaims(t *testing.T) {
	e := echo.New()
	ctrl := NewWorkflowController(&stubWorkflowService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/workflow/requests", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, ctrl.GetMyRequests(e.NewContext(req, rec)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Status)
}

func TestGetRequestStatus_NotFound(t *testing.T) {
	e := echo.New()
	ctrl := NewWorkflowController(&stubWorkflowService{notFound: true}, zap.NewNop())

	c, rec := newAuthedContext(e, http.MethodGet, "/api/workflow/requests/c-404", 7)
	c.SetParamNames("id")
	c.SetParamValues("c-404")
	require.NoError(t, ctrl.GetRequestStatus(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrderTransitions(t *testing.T) {
	e := echo.New()
	ctrl := NewWorkflowController(&stubWorkflowService{}, zap.NewNop())

	c, rec := newAuthedContext(e, http.MethodGet, "/api/orders/o-1/transitions", 7)
	c.SetParamNames("id")
	c.SetParamValues("o-1")
	require.NoError(t, ctrl.GetOrderTransitions(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var body dto.OrderTransitionsDTO
	require.NoError(t, json.Unmarshal(env.Body, &body))
	assert.Equal(t, []string{"in_production", "cancelled"}, body.AllowedNext)
}
