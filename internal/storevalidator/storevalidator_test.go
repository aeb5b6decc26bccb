package storevalidator

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const verifyURL = "http://validator/api/google/verify"

func TestGateway_Validate(t *testing.T) {
	receipt := domain.StoreReceipt{Platform: domain.PlatformGoogle, Token: "tok-1", ProductID: "lw_coins_100"}
	body := []byte(`{"token":"tok-1","product_id":"lw_coins_100"}`)

	tests := []struct {
		name          string
		prepareMock   func(client *clients.MockHTTPClientI)
		expected      *domain.ValidatedReceipt
		expectedError error
	}{
		{
			name: "Valid receipt",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(verifyURL, nil, body).
					Return(http.StatusOK, []byte(`{"valid":true,"product_id":"lw_coins_100","transaction_id":"GPA.1","price":"0.99"}`), nil)
			},
			expected: &domain.ValidatedReceipt{
				Valid: true, ProductID: "lw_coins_100", TransactionID: "GPA.1", Price: decimal.RequireFromString("0.99"),
			},
		},
		{
			name: "Unknown receipt",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(verifyURL, nil, body).Return(http.StatusNotFound, nil, nil)
			},
			expected: &domain.ValidatedReceipt{Valid: false},
		},
		{
			name: "Retries a server error",
			prepareMock: func(client *clients.MockHTTPClientI) {
				gomock.InOrder(
					client.EXPECT().Post(verifyURL, nil, body).Return(http.StatusBadGateway, nil, nil),
					client.EXPECT().Post(verifyURL, nil, body).
						Return(http.StatusOK, []byte(`{"valid":false}`), nil),
				)
			},
			expected: &domain.ValidatedReceipt{Valid: false},
		},
		{
			name: "Transport failure",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(verifyURL, nil, body).Return(0, nil, errors.New("dial tcp")).Times(maxRetries)
			},
			expectedError: errors.New("validate receipt: dial tcp"),
		},
		{
			name: "Unexpected status",
			prepareMock: func(client *clients.MockHTTPClientI) {
				client.EXPECT().Post(verifyURL, nil, body).Return(http.StatusForbidden, nil, nil)
			},
			expectedError: ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := clients.NewMockHTTPClientI(ctrl)
			tt.prepareMock(client)

			gateway := NewGateway("http://validator", domain.PlatformGoogle, client)
			got, err := gateway.Validate(context.Background(), receipt)
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, ErrUnexpectedStatus) {
					assert.ErrorIs(t, err, ErrUnexpectedStatus)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Valid, got.Valid)
			assert.Equal(t, tt.expected.ProductID, got.ProductID)
			assert.Equal(t, tt.expected.TransactionID, got.TransactionID)
			assert.True(t, tt.expected.Price.Equal(got.Price))
		})
	}
}

func TestSandbox_Validate(t *testing.T) {
	got, err := Sandbox{}.Validate(context.Background(), domain.StoreReceipt{Token: "t", ProductID: "lw_sub_month"})
	require.NoError(t, err)
	assert.True(t, got.Valid)
	assert.Equal(t, "t", got.TransactionID)

	got, err = Sandbox{}.Validate(context.Background(), domain.StoreReceipt{ProductID: "lw_sub_month"})
	require.NoError(t, err)
	assert.False(t, got.Valid)
}

func TestUnavailable_Validate(t *testing.T) {
	got, err := Unavailable{}.Validate(context.Background(), domain.StoreReceipt{Token: "t", ProductID: "lw_sub_month"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
