package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	contracts "github.com/murkotick/grocery-pos-service/internal/app/cart/contracts"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/domain"
	"github.com/murkotick/grocery-pos-service/internal/app/cart/dto"
	"github.com/murkotick/grocery-pos-service/internal/pkg/clock"
)

const (
	salesPath     = "/sales"
	shoppingsPath = "/shoppings"

	maxErrorBody = 4 << 10
)

// BackendError is a non-2xx answer from the backend.
type BackendError struct {
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether retrying later may succeed.
func (e *BackendError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration

	// Breaker trips after this many consecutive failures. Zero means 5.
	FailureThreshold uint32
	// OpenTimeout is how long the breaker stays open. Zero means 30s.
	OpenTimeout time.Duration
}

// Gateway posts finalized carts to the sales / shoppings endpoints of the backend.
type Gateway struct {
	baseURL string
	token   string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[*dto.SubmitResult]
	clock   clock.Clock
	logger  *zap.Logger
}

func NewGateway(cfg Config, clk clock.Clock, logger *zap.Logger) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := &Gateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Timeout,
		},
		clock:  clk,
		logger: logger,
	}

	threshold := cfg.FailureThreshold
	g.breaker = gobreaker.NewCircuitBreaker[*dto.SubmitResult](gobreaker.Settings{
		Name:        "transaction-backend",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			// A rejected request means the backend is up.
			var be *BackendError
			if errors.As(err, &be) {
				return !be.Temporary()
			}
			return err == nil
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return g
}

func (g *Gateway) Submit(ctx context.Context, req *domain.TransactionRequest) (*dto.SubmitResult, error) {
	var (
		path string
		body interface{}
	)
	switch req.Kind {
	case domain.KindSale:
		path, body = salesPath, dto.NewSaleRequest(req)
	case domain.KindPurchase:
		path, body = shoppingsPath, dto.NewShoppingRequest(req)
	default:
		return nil, fmt.Errorf("%w: %w", contracts.ErrSubmissionFailed, domain.ErrInvalidKind)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %w", contracts.ErrSubmissionFailed, err)
	}

	result, err := g.breaker.Execute(func() (*dto.SubmitResult, error) {
		return g.post(ctx, path, payload, req)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.ErrSubmissionFailed, err)
	}
	return result, nil
}

func (g *Gateway) post(ctx context.Context, path string, payload []byte, req *domain.TransactionRequest) (*dto.SubmitResult, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if g.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &BackendError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var created struct {
		ID json.Number `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode backend response: %w", err)
	}

	return &dto.SubmitResult{
		TransactionID: created.ID.String(),
		Kind:          string(req.Kind),
		Total:         req.Total.String(),
		ItemCount:     req.ItemCount(),
		RecordedAt:    g.clock.Now(),
	}, nil
}
