package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jpillora/backoff"
	"go.uber.org/zap"

	"sourcing-system/internal/entities"
)

// Endpoints of the platform API this service projects from.
const (
	endpointCarts      = "/internal/quotations/requests"
	endpointQuotations = "/orders/my-quotations"
	endpointOrders     = "/operations/orders"
)

// Provider is the typed client for the platform API. It is the only way the
// service reaches the system of record.
type Provider interface {
	Name() string
	FetchCarts(ctx context.Context) ([]entities.Cart, error)
	FetchQuotations(ctx context.Context) ([]entities.Quotation, error)
	FetchOrders(ctx context.Context) ([]entities.Order, error)
}

type provider struct {
	httpClient   *http.Client
	baseURL      string
	serviceToken string
	logger       *zap.Logger
}

// New builds the platform API client. The service token is issued out of
// band by the platform auth service.
func New(baseURL, serviceToken string, timeout time.Duration, logger *zap.Logger) Provider {
	return &provider{
		httpClient:   &http.Client{Timeout: timeout},
		baseURL:      baseURL,
		serviceToken: serviceToken,
		logger:       logger.Named("upstream"),
	}
}

func (p *provider) Name() string {
	return "sourcing-platform"
}

// fetchEndpoint fetches, parses and narrows one endpoint's rows. Ext is the
// raw API row, Int the domain entity. Rows that fail to narrow are logged
// and skipped so one malformed record cannot blank a whole view.
func fetchEndpoint[Ext interface{ GetID() string }, Int any](
	p *provider,
	ctx context.Context,
	endpoint string,
	mapper func(Ext) (Int, error),
) ([]Int, error) {
	rawData, err := p.fetchData(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", endpoint, err)
	}

	var rows []Ext
	if err := json.Unmarshal(rawData, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", endpoint, err)
	}
	p.logger.Debug("fetched rows",
		zap.String("endpoint", endpoint),
		zap.Int("count", len(rows)),
	)

	out := make([]Int, 0, len(rows))
	for _, row := range rows {
		mapped, err := mapper(row)
		if err != nil {
			p.logger.Warn("skipping row that failed to narrow",
				zap.String("endpoint", endpoint),
				zap.String("external_id", row.GetID()),
				zap.Error(err),
			)
			continue
		}
		out = append(out, mapped)
	}
	return out, nil
}

func (p *provider) FetchCarts(ctx context.Context) ([]entities.Cart, error) {
	return fetchEndpoint(p, ctx, endpointCarts, mapCart)
}

func (p *provider) FetchQuotations(ctx context.Context) ([]entities.Quotation, error) {
	return fetchEndpoint(p, ctx, endpointQuotations, mapQuotation)
}

func (p *provider) FetchOrders(ctx context.Context) ([]entities.Order, error) {
	return fetchEndpoint(p, ctx, endpointOrders, mapOrder)
}

// newBackoff returns the retry schedule for transient transport failures.
func newBackoff() *backoff.Backoff {
	return &backoff.Backoff{
		Min:    200 * time.Millisecond,
		Max:    2 * time.Second,
		Factor: 2,
		Jitter: true,
	}
}
