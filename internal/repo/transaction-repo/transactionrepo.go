package transactionrepo

import (
	"context"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"go.uber.org/zap"
)

// Repository is the append-only coin ledger. There is deliberately no update
// or delete.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Append(ctx context.Context, tx *domain.CoinTransaction) (*domain.CoinTransaction, error) {
	query := `
		INSERT INTO coin_transactions (user_id, amount, fractional_amount, type, coin_source, feature_used,
			description, price, period, usage_date, subscription_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		tx.UserID, tx.Amount, tx.FractionalAmount, string(tx.Type), string(tx.CoinSource), tx.FeatureUsed,
		tx.Description, tx.Price, tx.Period, tx.UsageDate, tx.SubscriptionID, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't append coin transaction", zap.Int("user_id", tx.UserID), zap.Error(err))
		return nil, err
	}
	return tx, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID, limit int) ([]domain.CoinTransaction, error) {
	query := `
		SELECT id, user_id, amount, fractional_amount, type, coin_source, feature_used, description, price, period,
			to_char(usage_date, 'YYYY-MM-DD'), subscription_id, created_at
		FROM coin_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch coin transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txs []domain.CoinTransaction
	for rows.Next() {
		var tx domain.CoinTransaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Amount, &tx.FractionalAmount, &tx.Type, &tx.CoinSource,
			&tx.FeatureUsed, &tx.Description, &tx.Price, &tx.Period, &tx.UsageDate, &tx.SubscriptionID, &tx.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan coin transaction row", zap.Error(err))
			return nil, err
		}
		txs = append(txs, tx)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate coin transactions", zap.Error(err))
		return nil, err
	}

	return txs, nil
}

// HasEntry reports whether the user already has a ledger entry of the given
// type and description. One-time grants use it as their exactly-once guard.
func (r *Repository) HasEntry(ctx context.Context, userID int, txType domain.TransactionType, description string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM coin_transactions WHERE user_id = $1 AND type = $2 AND description = $3
		)
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, string(txType), description).Scan(&exists); err != nil {
		zap.L().Error("failed to check coin transaction", zap.Error(err))
		return false, err
	}
	return exists, nil
}
