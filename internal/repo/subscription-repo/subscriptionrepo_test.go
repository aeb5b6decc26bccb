package subscriptionrepo

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

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	purchased := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	sub := &domain.Subscription{
		UserID:         1,
		Type:           "lw_sub_quarter",
		Price:          decimal.NewFromInt(5),
		PurchasedAt:    purchased,
		ExpiresAt:      purchased.AddDate(0, 0, 90),
		IsActive:       true,
		CoinsGranted:   decimal.NewFromInt(300),
		CoinsRemaining: decimal.NewFromInt(300),
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subscriptions")).
		WithArgs(1, "lw_sub_quarter", pgxmock.AnyArg(), purchased, purchased.AddDate(0, 0, 90), true,
			pgxmock.AnyArg(), pgxmock.AnyArg(), false).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	result, err := repo.Create(context.Background(), sub)
	assert.NoError(t, err)
	assert.Equal(t, 7, result.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO subscriptions")).
		WillReturnError(errors.New("database error"))

	result, err = repo.Create(context.Background(), &domain.Subscription{UserID: 1})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActiveForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	purchased := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	columns := []string{"id", "user_id", "type", "price", "purchased_at", "expires_at", "is_active",
		"coins_granted", "coins_remaining", "premium"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM subscriptions WHERE user_id = $1 AND is_active ORDER BY expires_at ASC, id ASC FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(3, 1, "lw_sub_month", decimal.NewFromInt(2), purchased, purchased.AddDate(0, 0, 30), true,
				decimal.NewFromInt(100), decimal.NewFromInt(40), false).
			AddRow(4, 1, "lw_sub_year", decimal.NewFromInt(20), purchased, purchased.AddDate(0, 0, 365), true,
				decimal.NewFromInt(1200), decimal.NewFromInt(1200), false))

	subs, err := repo.ListActiveForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, subs, 2)
	assert.Equal(t, 3, subs[0].ID)
	assert.True(t, subs[0].CoinsRemaining.Equal(decimal.NewFromInt(40)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateRemaining(t *testing.T) {
	repo, mock := NewMock(t)
	sub := &domain.Subscription{ID: 3, CoinsRemaining: decimal.Zero, IsActive: false}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE subscriptions SET coins_remaining = $1, is_active = $2 WHERE id = $3")).
		WithArgs(pgxmock.AnyArg(), false, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateRemaining(context.Background(), sub))
	assert.NoError(t, mock.ExpectationsWereMet())
}
