package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var userColumnNames = []string{
	"id", "login", "password_hash", "coin_balance", "fractional_coin_balance", "has_premium_subscription",
	"premium_expires_at", "monthly_coins_used", "current_month_start", "last_monthly_refill", "level", "experience",
	"referral_code", "referred_by", "telegram_id", "created_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func testUser(now time.Time) *domain.User {
	tgID := int64(777)
	return &domain.User{
		ID:                    1,
		Login:                 "test_user",
		PasswordHash:          "hashed_password",
		CoinBalance:           10,
		FractionalCoinBalance: decimal.RequireFromString("10.5"),
		MonthlyCoinsUsed:      decimal.NewFromInt(3),
		CurrentMonthStart:     now,
		Level:                 2,
		Experience:            120,
		ReferralCode:          "12345674",
		TelegramID:            &tgID,
		CreatedAt:             now,
	}
}

func userRows(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumnNames).AddRow(
		u.ID, u.Login, u.PasswordHash, u.CoinBalance, u.FractionalCoinBalance, u.HasPremiumSubscription,
		u.PremiumExpiresAt, u.MonthlyCoinsUsed, u.CurrentMonthStart, u.LastMonthlyRefill, u.Level, u.Experience,
		u.ReferralCode, u.ReferredBy, u.TelegramID, u.CreatedAt,
	)
}

func TestRepository_FindByLogin(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	user := testUser(now)

	tests := []struct {
		name      string
		login     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("test_user").
					WillReturnRows(userRows(user))
			},
			expectErr: false,
			result:    user,
		},
		{
			name:  "User not found",
			login: "non_existing_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("non_existing_user").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:  "Database error",
			login: "test_user",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE login = $1")).
					WithArgs("test_user").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByLogin(context.Background(), tt.login)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	user := testUser(now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(userRows(user))

	result, err := repo.FindByIDForUpdate(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, user, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByTelegramID(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE telegram_id = $1")).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.FindByTelegramID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	monthStart := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Login:             "new_user",
				PasswordHash:      "hashed_password",
				ReferralCode:      "12345674",
				CurrentMonthStart: monthStart,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
					INSERT INTO users (login, password_hash, referral_code, referred_by, current_month_start)
					VALUES ($1, $2, $3, $4, $5)
					RETURNING id, created_at
				`)).
					WithArgs("new_user", "hashed_password", "12345674", (*int)(nil), monthStart).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
			},
			expectErr: false,
			result: &domain.User{
				ID:                1,
				Login:             "new_user",
				PasswordHash:      "hashed_password",
				ReferralCode:      "12345674",
				CurrentMonthStart: monthStart,
				CreatedAt:         createdAt,
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Login:             "new_user",
				PasswordHash:      "hashed_password",
				ReferralCode:      "12345674",
				CurrentMonthStart: monthStart,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_CreateDuplicateLogin(t *testing.T) {
	repo, mock := NewMock(t)
	user := &domain.User{Login: "taken", PasswordHash: "hashed_password", ReferralCode: "12345674"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_login_key"})

	result, err := repo.Create(context.Background(), user)
	assert.ErrorIs(t, err, ErrDuplicateLogin)
	assert.Nil(t, result)
}

func TestRepository_UpdateWallet(t *testing.T) {
	repo, mock := NewMock(t)
	user := testUser(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	t.Run("Wallet updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET coin_balance = $1")).
			WithArgs(user.CoinBalance, pgxmock.AnyArg(), false, user.PremiumExpiresAt,
				pgxmock.AnyArg(), user.CurrentMonthStart, user.LastMonthlyRefill, 1).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, repo.UpdateWallet(context.Background(), user))
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET coin_balance = $1")).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.UpdateWallet(context.Background(), user))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProgression(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET level = $1, experience = $2 WHERE id = $3")).
		WithArgs(3, 260, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateProgression(context.Background(), 1, 3, 260))
	assert.NoError(t, mock.ExpectationsWereMet())
}
