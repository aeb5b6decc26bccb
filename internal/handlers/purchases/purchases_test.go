package purchases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/dto"
	"github.com/GlebRadaev/lwcoin/internal/service/purchaseservice"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const testSecret = "test-hook-secret"

func NewMock(t *testing.T) (*PurchaseHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service, testSecret), service
}

func withUser(req *http.Request) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, 1))
}

func TestVerifyGoogle(t *testing.T) {
	handler, service := NewMock(t)
	receipt := domain.StoreReceipt{Platform: domain.PlatformGoogle, Token: "tok-1", ProductID: "lw_coins_300"}

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name: "Verified",
			body: `{"purchase_token":"tok-1","product_id":"lw_coins_300"}`,
			prepareMock: func() {
				service.EXPECT().VerifyStorePurchase(gomock.Any(), 1, receipt).Return(&domain.PurchaseResult{
					Status:        domain.OutcomeVerified,
					CoinsCredited: decimal.NewFromInt(300),
				}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "verified",
		},
		{
			name: "Replay",
			body: `{"purchase_token":"tok-1","product_id":"lw_coins_300"}`,
			prepareMock: func() {
				service.EXPECT().VerifyStorePurchase(gomock.Any(), 1, receipt).Return(&domain.PurchaseResult{
					Status:        domain.OutcomeAlreadyVerified,
					CoinsCredited: decimal.Zero,
				}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "already_verified",
		},
		{
			name: "Unknown product",
			body: `{"purchase_token":"tok-1","product_id":"lw_coins_300"}`,
			prepareMock: func() {
				service.EXPECT().VerifyStorePurchase(gomock.Any(), 1, receipt).Return(&domain.PurchaseResult{
					Status:        domain.OutcomeInvalidPackage,
					CoinsCredited: decimal.Zero,
				}, nil)
			},
			expectedCode:   http.StatusUnprocessableEntity,
			expectedStatus: "invalid_package",
		},
		{
			name: "Validator down",
			body: `{"purchase_token":"tok-1","product_id":"lw_coins_300"}`,
			prepareMock: func() {
				service.EXPECT().VerifyStorePurchase(gomock.Any(), 1, receipt).
					Return(nil, errors.Join(purchaseservice.ErrValidatorFailed, errors.New("dial tcp")))
			},
			expectedCode: http.StatusBadGateway,
		},
		{
			name:         "Missing token",
			body:         `{"product_id":"lw_coins_300"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/user/purchases/google", bytes.NewReader([]byte(tt.body))))
			rr := httptest.NewRecorder()
			handler.VerifyGoogle(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedStatus != "" {
				var resp dto.PurchaseResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStatus, resp.Status)
			}
		})
	}
}

func TestVerifyApple(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().VerifyStorePurchase(gomock.Any(), 1, domain.StoreReceipt{
		Platform:   domain.PlatformApple,
		Token:      "2000000123",
		ProductID:  "lw_sub_month",
		IsRestored: true,
	}).Return(&domain.PurchaseResult{Status: domain.OutcomeVerified, CoinsCredited: decimal.NewFromInt(300), Days: 30}, nil)

	body := `{"transaction_id":"2000000123","product_id":"lw_sub_month","is_restored":true}`
	rr := httptest.NewRecorder()
	handler.VerifyApple(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/user/purchases/apple", bytes.NewReader([]byte(body)))))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRegisterPayment(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Registered",
			prepareMock: func() {
				service.EXPECT().RegisterPayment(gomock.Any(), 1, "pay-1", gomock.Any()).Return(&domain.PendingPayment{
					PaymentID: "pay-1",
					Amount:    decimal.NewFromInt(5),
					Status:    domain.PaymentPending,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Duplicate",
			prepareMock: func() {
				service.EXPECT().RegisterPayment(gomock.Any(), 1, "pay-1", gomock.Any()).Return(nil, purchaseservice.ErrPaymentExists)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Telegram not linked",
			prepareMock: func() {
				service.EXPECT().RegisterPayment(gomock.Any(), 1, "pay-1", gomock.Any()).Return(nil, purchaseservice.ErrTelegramNotLinked)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			body := `{"payment_id":"pay-1","amount":"5"}`
			rr := httptest.NewRecorder()
			handler.RegisterPayment(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/user/payments", bytes.NewReader([]byte(body)))))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestPaymentWebhook(t *testing.T) {
	handler, service := NewMock(t)
	body := []byte(`{"order_id":"pay-1","amount":"5","telegram_id":777,"status":"success"}`)

	tests := []struct {
		name           string
		signature      string
		prepareMock    func()
		expectedCode   int
		expectedStatus string
	}{
		{
			name:      "Completed",
			signature: Sign([]byte(testSecret), body),
			prepareMock: func() {
				service.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event domain.PaymentEvent) (*domain.PurchaseResult, error) {
						assert.Equal(t, "pay-1", event.OrderID)
						assert.Equal(t, int64(777), event.TelegramID)
						assert.True(t, decimal.NewFromInt(5).Equal(event.Amount))
						return &domain.PurchaseResult{Status: domain.OutcomeCompleted, CoinsCredited: decimal.NewFromInt(300), Days: 90}, nil
					})
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "completed",
		},
		{
			name:      "Replay",
			signature: Sign([]byte(testSecret), body),
			prepareMock: func() {
				service.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any()).
					Return(&domain.PurchaseResult{Status: domain.OutcomeAlreadyProcessed, CoinsCredited: decimal.Zero}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "already_processed",
		},
		{
			name:         "Wrong secret",
			signature:    Sign([]byte("guess"), body),
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Missing signature",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not hex",
			signature:    "zz",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:      "Unknown payer",
			signature: Sign([]byte(testSecret), body),
			prepareMock: func() {
				service.EXPECT().HandlePaymentWebhook(gomock.Any(), gomock.Any()).Return(nil, purchaseservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payments", bytes.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			rr := httptest.NewRecorder()
			handler.PaymentWebhook(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedStatus != "" {
				var resp dto.PurchaseResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedStatus, resp.Status)
			}
		})
	}
}

func TestPaymentWebhookWithoutSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := New(NewMockService(ctrl), "")
	body := []byte(`{"order_id":"pay-1","amount":"5","telegram_id":777,"status":"success"}`)

	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/payments", bytes.NewReader(body))
	req.Header.Set(SignatureHeader, Sign(nil, body))
	rr := httptest.NewRecorder()
	handler.PaymentWebhook(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
