package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/config"
	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/GlebRadaev/lwcoin/pkg/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile

const (
	maxRetries = 3
	staleAfter = time.Minute
	batchLimit = 100
	poolSize   = 10
)

var retryInterval = time.Second

var ErrUnexpectedStatus = errors.New("unexpected status code")

type PaymentRepo interface {
	FindStalePayments(ctx context.Context, before time.Time, limit uint32) ([]domain.PendingPayment, error)
}

type PaymentProcessor interface {
	HandlePaymentWebhook(ctx context.Context, event domain.PaymentEvent) (*domain.PurchaseResult, error)
}

// Response is the provider's view of one payment.
type Response struct {
	PaymentID string          `json:"payment_id"`
	Status    string          `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
}

var openStatuses = map[string]struct{}{
	"":           {},
	"pending":    {},
	"processing": {},
	"created":    {},
}

// Service polls the payment provider for payments whose webhook never
// arrived and applies the final status through the regular webhook path.
type Service struct {
	url        string
	repo       PaymentRepo
	payments   PaymentProcessor
	client     clients.HTTPClientI
	workerPool WorkerPoolI
	interval   time.Duration
	limit      uint32
	inFlight   sync.Map
	now        func() time.Time
}

func New(cfg *config.Config, repo PaymentRepo, payments PaymentProcessor, client clients.HTTPClientI) *Service {
	return &Service{
		url:        strings.TrimRight(cfg.PaymentProviderAddress, "/"),
		repo:       repo,
		payments:   payments,
		client:     client,
		workerPool: NewWorkerPool(poolSize),
		interval:   cfg.ReconcileInterval,
		limit:      batchLimit,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("payment reconciler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping payment reconciler")
			return
		case <-ticker.C:
			s.processPayments(ctx)
		}
	}
}

func (s *Service) processPayments(ctx context.Context) {
	payments, err := s.repo.FindStalePayments(ctx, s.now().Add(-staleAfter), s.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending payments", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, payment := range payments {
		if _, loaded := s.inFlight.LoadOrStore(payment.PaymentID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(payment.PaymentID)
				return s.handlePayment(ctx, payment)
			})
			if err != nil {
				s.inFlight.Delete(payment.PaymentID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling payment reconciliation", zap.Error(err))
	}
}

func (s *Service) handlePayment(ctx context.Context, payment domain.PendingPayment) error {
	endpoint := s.url + "/api/payments/" + url.PathEscape(payment.PaymentID)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		statusCode, respBody, respHeaders, err := s.client.Get(endpoint, nil)
		if err != nil {
			if attempt < maxRetries {
				if err := sleep(ctx, retryInterval*time.Duration(attempt)); err != nil {
					return err
				}
				continue
			}
			metrics.RecordReconcile("unreachable")
			return fmt.Errorf("failed to query payment %s after %d retries: %w", payment.PaymentID, maxRetries, err)
		}

		switch statusCode {
		case http.StatusOK:
			return s.applyStatus(ctx, payment, respBody)
		case http.StatusNotFound:
			zap.L().Warn("payment unknown to provider", zap.String("payment_id", payment.PaymentID))
			metrics.RecordReconcile("unknown")
			return nil
		case http.StatusTooManyRequests:
			if attempt == maxRetries {
				break
			}
			if err := sleep(ctx, retryAfter(respHeaders, attempt)); err != nil {
				return err
			}
			continue
		default:
			zap.L().Error("unexpected status code",
				zap.Int("status", statusCode),
				zap.String("payment_id", payment.PaymentID),
			)
			return ErrUnexpectedStatus
		}
	}
	metrics.RecordReconcile("throttled")
	return fmt.Errorf("payment %s still throttled after %d retries", payment.PaymentID, maxRetries)
}

func (s *Service) applyStatus(ctx context.Context, payment domain.PendingPayment, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	if response.PaymentID != "" && response.PaymentID != payment.PaymentID {
		return fmt.Errorf("payment id mismatch: expected %s, got %s", payment.PaymentID, response.PaymentID)
	}

	status := strings.ToLower(response.Status)
	if _, open := openStatuses[status]; open {
		metrics.RecordReconcile("pending")
		return nil
	}

	amount := response.Amount
	if amount.IsZero() {
		amount = payment.Amount
	}
	result, err := s.payments.HandlePaymentWebhook(ctx, domain.PaymentEvent{
		OrderID:    payment.PaymentID,
		Amount:     amount,
		TelegramID: payment.TelegramID,
		Status:     status,
	})
	if err != nil {
		return fmt.Errorf("failed to apply payment %s: %w", payment.PaymentID, err)
	}

	zap.L().Info("payment reconciled",
		zap.String("payment_id", payment.PaymentID),
		zap.String("status", status),
		zap.String("outcome", string(result.Status)),
	)
	metrics.RecordReconcile(string(result.Status))
	return nil
}

func retryAfter(headers http.Header, attempt int) time.Duration {
	wait := retryInterval * time.Duration(attempt)
	if seconds, err := strconv.Atoi(headers.Get("Retry-After")); err == nil && seconds >= 0 {
		wait = time.Duration(seconds) * time.Second
	}
	return wait
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
