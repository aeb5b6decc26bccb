package purchaserepo

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	verificationColumns = `id, user_id, platform, purchase_token, product_id, verification_status, coins_amount,
		duration_days, price, is_restored, created_at, verified_at`
	paymentColumns = `id, payment_id, telegram_id, user_id, amount, status, created_at, completed_at`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// ReserveVerification inserts a pending record unless one already exists for
// the (platform, token) natural key. It reports whether this call created it.
func (r *Repository) ReserveVerification(ctx context.Context, v *domain.PurchaseVerification) (bool, error) {
	query := `
		INSERT INTO purchase_verifications (user_id, platform, purchase_token, product_id, verification_status,
			coins_amount, duration_days, price, is_restored)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (platform, purchase_token) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, v.UserID, string(v.Platform), v.PurchaseToken, v.ProductID,
		string(domain.VerificationPending), v.CoinsAmount, v.DurationDays, v.Price, v.IsRestored)
	if err != nil {
		zap.L().Error("can't reserve purchase verification", zap.String("token", v.PurchaseToken), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindVerificationForUpdate(ctx context.Context, platform domain.Platform, token string) (*domain.PurchaseVerification, error) {
	query := "SELECT " + verificationColumns + " FROM purchase_verifications WHERE platform = $1 AND purchase_token = $2 FOR UPDATE"

	var v domain.PurchaseVerification
	err := r.db.QueryRow(ctx, query, string(platform), token).Scan(
		&v.ID, &v.UserID, &v.Platform, &v.PurchaseToken, &v.ProductID, &v.VerificationStatus, &v.CoinsAmount,
		&v.DurationDays, &v.Price, &v.IsRestored, &v.CreatedAt, &v.VerifiedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find purchase verification", zap.Error(err))
		return nil, err
	}
	return &v, nil
}

func (r *Repository) UpdateVerification(ctx context.Context, v *domain.PurchaseVerification) error {
	query := `
		UPDATE purchase_verifications
		SET verification_status = $1, product_id = $2, coins_amount = $3, duration_days = $4, price = $5, verified_at = $6
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, string(v.VerificationStatus), v.ProductID, v.CoinsAmount, v.DurationDays,
		v.Price, v.VerifiedAt, v.ID)
	if err != nil {
		zap.L().Error("failed to update purchase verification", zap.Int("id", v.ID), zap.Error(err))
		return err
	}
	return nil
}

// ReservePayment registers a payment intent unless the payment id is known.
func (r *Repository) ReservePayment(ctx context.Context, p *domain.PendingPayment) (bool, error) {
	query := `
		INSERT INTO pending_payments (payment_id, telegram_id, user_id, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (payment_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query, p.PaymentID, p.TelegramID, p.UserID, p.Amount, string(domain.PaymentPending))
	if err != nil {
		zap.L().Error("can't reserve pending payment", zap.String("payment_id", p.PaymentID), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *Repository) FindPaymentForUpdate(ctx context.Context, paymentID string) (*domain.PendingPayment, error) {
	return r.findPayment(ctx, "SELECT "+paymentColumns+" FROM pending_payments WHERE payment_id = $1 FOR UPDATE", paymentID)
}

func (r *Repository) FindPayment(ctx context.Context, paymentID string) (*domain.PendingPayment, error) {
	return r.findPayment(ctx, "SELECT "+paymentColumns+" FROM pending_payments WHERE payment_id = $1", paymentID)
}

func (r *Repository) findPayment(ctx context.Context, query, paymentID string) (*domain.PendingPayment, error) {
	var p domain.PendingPayment
	err := r.db.QueryRow(ctx, query, paymentID).Scan(
		&p.ID, &p.PaymentID, &p.TelegramID, &p.UserID, &p.Amount, &p.Status, &p.CreatedAt, &p.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pending payment", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, id int, status domain.PaymentStatus, completedAt *time.Time) error {
	query := `
		UPDATE pending_payments
		SET status = $1, completed_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, string(status), completedAt, id)
	if err != nil {
		zap.L().Error("failed to update pending payment", zap.Int("id", id), zap.Error(err))
		return err
	}
	return nil
}

// FindStalePayments returns payments still pending that were created before
// the given moment, oldest first.
func (r *Repository) FindStalePayments(ctx context.Context, before time.Time, limit uint32) ([]domain.PendingPayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM pending_payments
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at ASC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, before, int(limit))
	if err != nil {
		zap.L().Error("can't get pending payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.PendingPayment
	for rows.Next() {
		var p domain.PendingPayment
		err := rows.Scan(&p.ID, &p.PaymentID, &p.TelegramID, &p.UserID, &p.Amount, &p.Status, &p.CreatedAt, &p.CompletedAt)
		if err != nil {
			zap.L().Error("can't scan pending payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate pending payments", zap.Error(err))
		return nil, err
	}
	return payments, nil
}
