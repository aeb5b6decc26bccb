package reconcile

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/config"
	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const providerURL = "http://payments:8082"

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type mocks struct {
	repo     *MockPaymentRepo
	payments *MockPaymentProcessor
	client   *clients.MockHTTPClientI
	pool     *MockWorkerPoolI
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:     NewMockPaymentRepo(ctrl),
		payments: NewMockPaymentProcessor(ctrl),
		client:   clients.NewMockHTTPClientI(ctrl),
		pool:     NewMockWorkerPoolI(ctrl),
	}
	cfg := &config.Config{PaymentProviderAddress: providerURL + "/", ReconcileInterval: 10 * time.Millisecond}
	s := New(cfg, m.repo, m.payments, m.client)
	s.workerPool.Close()
	s.workerPool = m.pool
	s.now = func() time.Time { return now }

	retryInterval = time.Millisecond
	t.Cleanup(func() { retryInterval = time.Second })
	return s, m
}

func pending(id string) domain.PendingPayment {
	return domain.PendingPayment{
		ID:         1,
		PaymentID:  id,
		TelegramID: 42,
		UserID:     7,
		Amount:     decimal.NewFromInt(5),
		Status:     domain.PaymentPending,
	}
}

func TestService_Start(t *testing.T) {
	s, m := NewMock(t)
	m.repo.EXPECT().FindStalePayments(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	m.pool.EXPECT().Close().Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)
}

func TestService_processPayments(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
	}{
		{
			name: "Completes stale payments",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindStalePayments(gomock.Any(), now.Add(-staleAfter), uint32(batchLimit)).
					Return([]domain.PendingPayment{pending("pay-1"), pending("pay-2")}, nil)
				m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, task Task) error { return task() }).Times(2)
				m.client.EXPECT().Get(providerURL+"/api/payments/pay-1", gomock.Any()).
					Return(http.StatusOK, []byte(`{"payment_id":"pay-1","status":"paid","amount":"5"}`), http.Header{}, nil)
				m.client.EXPECT().Get(providerURL+"/api/payments/pay-2", gomock.Any()).
					Return(http.StatusOK, []byte(`{"payment_id":"pay-2","status":"pending"}`), http.Header{}, nil)
				m.payments.EXPECT().HandlePaymentWebhook(gomock.Any(), domain.PaymentEvent{
					OrderID:    "pay-1",
					Amount:     decimal.NewFromInt(5),
					TelegramID: 42,
					Status:     "paid",
				}).Return(&domain.PurchaseResult{Status: domain.OutcomeCompleted}, nil)
			},
		},
		{
			name: "Repository failure",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindStalePayments(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
		},
		{
			name: "Pool rejects task",
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().FindStalePayments(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]domain.PendingPayment{pending("pay-3")}, nil)
				m.pool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			s.processPayments(context.Background())

			s.inFlight.Range(func(key, _ any) bool {
				t.Errorf("payment %v left in flight", key)
				return true
			})
		})
	}
}

func TestService_processPaymentsSkipsInFlight(t *testing.T) {
	s, m := NewMock(t)
	s.inFlight.Store("pay-1", struct{}{})

	m.repo.EXPECT().FindStalePayments(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.PendingPayment{pending("pay-1")}, nil)

	s.processPayments(context.Background())
}

func TestService_handlePayment(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
		wantErr     error
		wantAnyErr  bool
	}{
		{
			name: "Failed payment is applied",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"payment_id":"pay-1","status":"FAILED"}`), http.Header{}, nil)
				m.payments.EXPECT().HandlePaymentWebhook(gomock.Any(), domain.PaymentEvent{
					OrderID:    "pay-1",
					Amount:     decimal.NewFromInt(5),
					TelegramID: 42,
					Status:     "failed",
				}).Return(&domain.PurchaseResult{Status: domain.OutcomeIgnored}, nil)
			},
		},
		{
			name: "Unknown to provider",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusNotFound, nil, http.Header{}, nil)
			},
		},
		{
			name: "Transport error then success",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection refused")),
					m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
						Return(http.StatusOK, []byte(`{"status":"processing"}`), http.Header{}, nil),
				)
			},
		},
		{
			name: "Transport error on every attempt",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(0, nil, nil, errors.New("connection refused")).Times(maxRetries)
			},
			wantAnyErr: true,
		},
		{
			name: "Throttled then success",
			prepareMock: func(m *mocks) {
				gomock.InOrder(
					m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
						Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"0"}}, nil),
					m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
						Return(http.StatusOK, []byte(`{"payment_id":"pay-1","status":"success"}`), http.Header{}, nil),
				)
				m.payments.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any()).
					Return(&domain.PurchaseResult{Status: domain.OutcomeAlreadyProcessed}, nil)
			},
		},
		{
			name: "Throttled on every attempt",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusTooManyRequests, nil, http.Header{"Retry-After": []string{"0"}}, nil).Times(maxRetries)
			},
			wantAnyErr: true,
		},
		{
			name: "Unexpected status",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusInternalServerError, nil, http.Header{}, nil)
			},
			wantErr: ErrUnexpectedStatus,
		},
		{
			name: "Mismatched payment id",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"payment_id":"other","status":"paid"}`), http.Header{}, nil)
			},
			wantAnyErr: true,
		},
		{
			name: "Malformed body",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(http.StatusOK, []byte(`{`), http.Header{}, nil)
			},
			wantAnyErr: true,
		},
		{
			name: "Processing failure",
			prepareMock: func(m *mocks) {
				m.client.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(http.StatusOK, []byte(`{"payment_id":"pay-1","status":"paid"}`), http.Header{}, nil)
				m.payments.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)

			err := s.handlePayment(context.Background(), pending("pay-1"))

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantAnyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
			}
		})
	}
}

func TestService_handlePaymentCanceled(t *testing.T) {
	s, m := NewMock(t)
	retryInterval = time.Minute

	m.client.EXPECT().Get(gomock.Any(), gomock.Any()).Return(0, nil, nil, errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.handlePayment(ctx, pending("pay-1"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, retryAfter(http.Header{"Retry-After": []string{"3"}}, 1))
	assert.Equal(t, 2*retryInterval, retryAfter(http.Header{}, 2))
	assert.Equal(t, retryInterval, retryAfter(http.Header{"Retry-After": []string{"soon"}}, 1))
}
