package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var paymentColumnNames = []string{"id", "payment_id", "telegram_id", "user_id", "amount", "status", "created_at", "completed_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_ReserveVerification(t *testing.T) {
	repo, mock := NewMock(t)
	v := &domain.PurchaseVerification{
		UserID:        1,
		Platform:      domain.PlatformGoogle,
		PurchaseToken: "token-1",
		ProductID:     "lw_coins_300",
		CoinsAmount:   decimal.NewFromInt(300),
		Price:         decimal.NewFromInt(5),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		created   bool
	}{
		{
			name: "New natural key is reserved",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (platform, purchase_token) DO NOTHING")).
					WithArgs(1, "google", "token-1", "lw_coins_300", "pending", pgxmock.AnyArg(), 0, pgxmock.AnyArg(), false).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			created: true,
		},
		{
			name: "Known natural key is left alone",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (platform, purchase_token) DO NOTHING")).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			created: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (platform, purchase_token) DO NOTHING")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.ReserveVerification(context.Background(), v)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.created, created)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindVerificationForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "platform", "purchase_token", "product_id", "verification_status",
		"coins_amount", "duration_days", "price", "is_restored", "created_at", "verified_at"}

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE platform = $1 AND purchase_token = $2 FOR UPDATE")).
			WithArgs("apple", "tx-1").
			WillReturnRows(pgxmock.NewRows(columns).AddRow(
				5, 1, domain.PlatformApple, "tx-1", "lw_coins_100", domain.VerificationVerified,
				decimal.NewFromInt(100), 0, decimal.NewFromInt(2), false, now, &now))

		v, err := repo.FindVerificationForUpdate(context.Background(), domain.PlatformApple, "tx-1")
		assert.NoError(t, err)
		assert.Equal(t, 5, v.ID)
		assert.Equal(t, domain.VerificationVerified, v.VerificationStatus)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE platform = $1 AND purchase_token = $2 FOR UPDATE")).
			WithArgs("apple", "tx-2").
			WillReturnError(pgx.ErrNoRows)

		v, err := repo.FindVerificationForUpdate(context.Background(), domain.PlatformApple, "tx-2")
		assert.NoError(t, err)
		assert.Nil(t, v)
	})
}

func TestRepository_FindPaymentForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM pending_payments WHERE payment_id = $1 FOR UPDATE")).
		WithArgs("order-1").
		WillReturnRows(pgxmock.NewRows(paymentColumnNames).AddRow(
			9, "order-1", int64(555), 1, decimal.NewFromInt(5), domain.PaymentPending, now, (*time.Time)(nil)))

	p, err := repo.FindPaymentForUpdate(context.Background(), "order-1")
	assert.NoError(t, err)
	assert.Equal(t, 9, p.ID)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Nil(t, p.CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePaymentStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE pending_payments SET status = $1, completed_at = $2 WHERE id = $3")).
		WithArgs("completed", &now, 9).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdatePaymentStatus(context.Background(), 9, domain.PaymentCompleted, &now))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindStalePayments(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Pending payments returned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' AND created_at < $1")).
					WithArgs(now, 100).
					WillReturnRows(pgxmock.NewRows(paymentColumnNames).
						AddRow(1, "order-1", int64(555), 1, decimal.NewFromInt(5), domain.PaymentPending, now.Add(-time.Hour), (*time.Time)(nil)).
						AddRow(2, "order-2", int64(556), 2, decimal.NewFromInt(2), domain.PaymentPending, now.Add(-time.Minute), (*time.Time)(nil)))
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' AND created_at < $1")).
					WithArgs(now, 100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Iteration error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE status = 'pending' AND created_at < $1")).
					WithArgs(now, 100).
					WillReturnRows(pgxmock.NewRows(paymentColumnNames).
						AddRow(1, "order-1", int64(555), 1, decimal.NewFromInt(5), domain.PaymentPending, now.Add(-time.Hour), (*time.Time)(nil)).
						AddRow(2, "order-2", int64(556), 2, decimal.NewFromInt(2), domain.PaymentPending, now.Add(-time.Minute), (*time.Time)(nil)).
						RowError(2, errors.New("connection reset")))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			payments, err := repo.FindStalePayments(context.Background(), now, 100)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, payments, tt.count)
			}
		})
	}
}
