package subscriptionrepo

import (
	"context"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"go.uber.org/zap"
)

const subscriptionColumns = `id, user_id, type, price, purchased_at, expires_at, is_active, coins_granted, coins_remaining, premium`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	query := `
		INSERT INTO subscriptions (user_id, type, price, purchased_at, expires_at, is_active, coins_granted, coins_remaining, premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		sub.UserID, sub.Type, sub.Price, sub.PurchasedAt, sub.ExpiresAt, sub.IsActive,
		sub.CoinsGranted, sub.CoinsRemaining, sub.Premium,
	).Scan(&sub.ID)
	if err != nil {
		zap.L().Error("can't save subscription", zap.Int("user_id", sub.UserID), zap.Error(err))
		return nil, err
	}
	return sub, nil
}

// ListActive returns active grants, earliest expiry first.
func (r *Repository) ListActive(ctx context.Context, userID int) ([]domain.Subscription, error) {
	return r.list(ctx, "SELECT "+subscriptionColumns+" FROM subscriptions WHERE user_id = $1 AND is_active ORDER BY expires_at ASC, id ASC", userID)
}

func (r *Repository) ListActiveForUpdate(ctx context.Context, userID int) ([]domain.Subscription, error) {
	return r.list(ctx, "SELECT "+subscriptionColumns+" FROM subscriptions WHERE user_id = $1 AND is_active ORDER BY expires_at ASC, id ASC FOR UPDATE", userID)
}

func (r *Repository) list(ctx context.Context, query string, userID int) ([]domain.Subscription, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get subscriptions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		var sub domain.Subscription
		err := rows.Scan(&sub.ID, &sub.UserID, &sub.Type, &sub.Price, &sub.PurchasedAt, &sub.ExpiresAt,
			&sub.IsActive, &sub.CoinsGranted, &sub.CoinsRemaining, &sub.Premium)
		if err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, err
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate subscriptions", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (r *Repository) UpdateRemaining(ctx context.Context, sub *domain.Subscription) error {
	query := `
		UPDATE subscriptions
		SET coins_remaining = $1, is_active = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, sub.CoinsRemaining, sub.IsActive, sub.ID)
	if err != nil {
		zap.L().Error("failed to update subscription", zap.Int("subscription_id", sub.ID), zap.Error(err))
		return err
	}
	return nil
}
