package transactionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		tx        *domain.CoinTransaction
		mockSetup func()
		expectErr bool
		expectID  int
	}{
		{
			name: "Spend entry appended",
			tx: &domain.CoinTransaction{
				UserID:           1,
				Amount:           -1,
				FractionalAmount: decimal.NewFromInt(-1),
				Type:             domain.TxSpent,
				CoinSource:       domain.SourcePermanent,
				FeatureUsed:      "ai_food_scan",
				UsageDate:        "2026-10-19",
				CreatedAt:        now,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO coin_transactions")).
					WithArgs(1, int64(-1), pgxmock.AnyArg(), "spent", "permanent", "ai_food_scan",
						"", (*decimal.Decimal)(nil), "", "2026-10-19", (*int)(nil), now).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(15))
			},
			expectErr: false,
			expectID:  15,
		},
		{
			name: "Database error",
			tx: &domain.CoinTransaction{
				UserID:     1,
				Type:       domain.TxEarned,
				CoinSource: domain.SourcePermanent,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO coin_transactions")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Append(context.Background(), tt.tx)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectID, result.ID)
			}
		})
	}
}

func TestRepository_ListByUser(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "amount", "fractional_amount", "type", "coin_source", "feature_used",
		"description", "price", "period", "usage_date", "subscription_id", "created_at"}

	t.Run("Transactions returned newest first", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).
			AddRow(2, 1, int64(-1), decimal.NewFromInt(-1), domain.TxSpent, domain.SourceMonthlyFree, "ai_chat",
				"", (*decimal.Decimal)(nil), "", "2026-10-19", (*int)(nil), now).
			AddRow(1, 1, int64(50), decimal.NewFromInt(50), domain.TxRegistration, domain.SourcePermanent, "",
				"registration", (*decimal.Decimal)(nil), "", "2026-10-18", (*int)(nil), now.Add(-24*time.Hour))
		mock.ExpectQuery(regexp.QuoteMeta("FROM coin_transactions WHERE user_id = $1")).
			WithArgs(1, 20).
			WillReturnRows(rows)

		txs, err := repo.ListByUser(context.Background(), 1, 20)
		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, domain.TxSpent, txs[0].Type)
		assert.Equal(t, domain.SourceMonthlyFree, txs[0].CoinSource)
		assert.Equal(t, domain.TxRegistration, txs[1].Type)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM coin_transactions WHERE user_id = $1")).
			WithArgs(1, 20).
			WillReturnError(errors.New("database error"))

		txs, err := repo.ListByUser(context.Background(), 1, 20)
		assert.Error(t, err)
		assert.Nil(t, txs)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasEntry(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(1, "registration", "registration").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasEntry(context.Background(), 1, domain.TxRegistration, "registration")
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
