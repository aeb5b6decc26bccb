package userrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const uniqueViolation = "23505"

var ErrDuplicateLogin = errors.New("login already exists")

const userColumns = `id, login, password_hash, coin_balance, fractional_coin_balance, has_premium_subscription,
	premium_expires_at, monthly_coins_used, current_month_start, last_monthly_refill, level, experience,
	referral_code, referred_by, telegram_id, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Login, &user.PasswordHash, &user.CoinBalance, &user.FractionalCoinBalance,
		&user.HasPremiumSubscription, &user.PremiumExpiresAt, &user.MonthlyCoinsUsed, &user.CurrentMonthStart,
		&user.LastMonthlyRefill, &user.Level, &user.Experience, &user.ReferralCode, &user.ReferredBy,
		&user.TelegramID, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE login = $1", login)
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// FindByIDForUpdate locks the user row until the surrounding transaction ends.
// Every wallet mutation goes through it, which serializes spends per user.
func (repo *Repository) FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1 FOR UPDATE", id)
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE referral_code = $1", code)
}

func (repo *Repository) FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	return repo.findOne(ctx, "SELECT "+userColumns+" FROM users WHERE telegram_id = $1", telegramID)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, referral_code, referred_by, current_month_start)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.ReferralCode, user.ReferredBy, user.CurrentMonthStart).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			zap.L().Info("login already exists", zap.String("login", user.Login))
			return nil, ErrDuplicateLogin
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) UpdateWallet(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET coin_balance = $1, fractional_coin_balance = $2, has_premium_subscription = $3, premium_expires_at = $4,
			monthly_coins_used = $5, current_month_start = $6, last_monthly_refill = $7
		WHERE id = $8
	`
	_, err := repo.db.Exec(ctx, query,
		user.CoinBalance, user.FractionalCoinBalance, user.HasPremiumSubscription, user.PremiumExpiresAt,
		user.MonthlyCoinsUsed, user.CurrentMonthStart, user.LastMonthlyRefill, user.ID,
	)
	if err != nil {
		zap.L().Error("can't update user wallet", zap.Int("user_id", user.ID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) UpdateProgression(ctx context.Context, userID, level, experience int) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET level = $1, experience = $2 WHERE id = $3", level, experience, userID)
	if err != nil {
		zap.L().Error("can't update user progression", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (repo *Repository) LinkTelegram(ctx context.Context, userID int, telegramID int64) error {
	_, err := repo.db.Exec(ctx, "UPDATE users SET telegram_id = $1 WHERE id = $2", telegramID, userID)
	if err != nil {
		zap.L().Error("can't link telegram account", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}
