package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/GlebRadaev/lwcoin/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrProviderUnavailable = errors.New("ai provider unavailable")

// HTTPProvider forwards paid feature requests to the AI backend.
type HTTPProvider struct {
	url    string
	client clients.HTTPClientI
}

func New(baseURL string, client clients.HTTPClientI) *HTTPProvider {
	return &HTTPProvider{
		url:    baseURL,
		client: client,
	}
}

// Complete posts the payload for the feature and returns the provider's raw
// JSON answer.
func (p *HTTPProvider) Complete(ctx context.Context, feature string, payload json.RawMessage) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	requestID := uuid.NewString()
	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("X-Request-ID", requestID)

	start := time.Now()
	statusCode, body, err := p.client.Post(p.url+"/api/ai/"+feature, headers, payload)
	status := strconv.Itoa(statusCode)
	if err != nil {
		status = "error"
	}
	metrics.ObserveAIRequest(feature, status, time.Since(start).Seconds())

	if err != nil {
		zap.L().Error("ai provider request failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}
	if statusCode != http.StatusOK {
		zap.L().Error("ai provider returned error status",
			zap.String("request_id", requestID),
			zap.String("feature", feature),
			zap.Int("status", statusCode))
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, statusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: malformed response", ErrProviderUnavailable)
	}
	return body, nil
}
