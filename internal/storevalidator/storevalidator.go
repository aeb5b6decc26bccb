package storevalidator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	maxRetries    = 2
	retryInterval = time.Millisecond * 300
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status from store validator")
	ErrNotConfigured    = errors.New("store validator is not configured")
)

type verifyRequest struct {
	Token     string `json:"token"`
	ProductID string `json:"product_id"`
}

type verifyResponse struct {
	Valid         bool            `json:"valid"`
	ProductID     string          `json:"product_id"`
	TransactionID string          `json:"transaction_id"`
	Price         decimal.Decimal `json:"price"`
}

// Gateway checks receipts against the store validation service, one
// instance per platform.
type Gateway struct {
	url    string
	client clients.HTTPClientI
}

func NewGateway(baseURL string, platform domain.Platform, client clients.HTTPClientI) *Gateway {
	return &Gateway{
		url:    baseURL + "/api/" + string(platform) + "/verify",
		client: client,
	}
}

func (g *Gateway) Validate(ctx context.Context, receipt domain.StoreReceipt) (*domain.ValidatedReceipt, error) {
	body, err := json.Marshal(verifyRequest{Token: receipt.Token, ProductID: receipt.ProductID})
	if err != nil {
		return nil, err
	}

	var statusCode int
	var respBody []byte
	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, err = g.client.Post(g.url, nil, body)
		if err == nil && statusCode < http.StatusInternalServerError {
			break
		}
		zap.L().Warn("store validator call failed",
			zap.String("platform", string(receipt.Platform)),
			zap.Int("status", statusCode),
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryInterval * time.Duration(attempt)):
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("validate receipt: %w", err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusUnprocessableEntity:
		return &domain.ValidatedReceipt{Valid: false}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var resp verifyResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	return &domain.ValidatedReceipt{
		Valid:         resp.Valid,
		ProductID:     resp.ProductID,
		TransactionID: resp.TransactionID,
		Price:         resp.Price,
	}, nil
}

// Sandbox accepts every non-empty receipt as-is. It is wired only when
// STORE_SANDBOX is set and no validator address is configured.
type Sandbox struct{}

func (Sandbox) Validate(_ context.Context, receipt domain.StoreReceipt) (*domain.ValidatedReceipt, error) {
	if receipt.Token == "" || receipt.ProductID == "" {
		return &domain.ValidatedReceipt{Valid: false}, nil
	}
	return &domain.ValidatedReceipt{
		Valid:         true,
		ProductID:     receipt.ProductID,
		TransactionID: receipt.Token,
	}, nil
}

// Unavailable rejects every receipt with ErrNotConfigured.
type Unavailable struct{}

func (Unavailable) Validate(context.Context, domain.StoreReceipt) (*domain.ValidatedReceipt, error) {
	return nil, ErrNotConfigured
}
