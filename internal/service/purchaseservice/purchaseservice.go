package purchaseservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/GlebRadaev/lwcoin/pkg/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=purchaseservice.go -destination=mock_purchaseservice.go -package=purchaseservice

type Repo interface {
	ReserveVerification(ctx context.Context, v *domain.PurchaseVerification) (bool, error)
	FindVerificationForUpdate(ctx context.Context, platform domain.Platform, token string) (*domain.PurchaseVerification, error)
	UpdateVerification(ctx context.Context, v *domain.PurchaseVerification) error
	ReservePayment(ctx context.Context, p *domain.PendingPayment) (bool, error)
	FindPayment(ctx context.Context, paymentID string) (*domain.PendingPayment, error)
	FindPaymentForUpdate(ctx context.Context, paymentID string) (*domain.PendingPayment, error)
	UpdatePaymentStatus(ctx context.Context, id int, status domain.PaymentStatus, completedAt *time.Time) error
}

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
}

type Wallet interface {
	AddCoins(ctx context.Context, userID int, credit domain.Credit) (*domain.BalanceView, error)
	GrantSubscription(ctx context.Context, userID int, grant domain.SubscriptionGrant) (*domain.BalanceView, error)
}

// ReceiptValidator checks a store receipt with its platform.
type ReceiptValidator interface {
	Validate(ctx context.Context, receipt domain.StoreReceipt) (*domain.ValidatedReceipt, error)
}

var (
	ErrInvalidPlatform   = errors.New("unsupported platform")
	ErrMissingKey        = errors.New("purchase key is required")
	ErrRecordMissing     = errors.New("reserved purchase record not found")
	ErrValidatorFailed   = errors.New("receipt validation unavailable")
	ErrUserNotFound      = errors.New("user not found")
	ErrTelegramNotLinked = errors.New("telegram account not linked")
	ErrUnmappedAmount    = errors.New("amount does not match any package")
	ErrPaymentExists     = errors.New("payment already registered")
)

const webhookChannel = "webhook"

var successStatuses = map[string]struct{}{
	"success":   {},
	"succeeded": {},
	"paid":      {},
	"completed": {},
}

type Service struct {
	repo       Repo
	users      UserRepo
	wallet     Wallet
	txManager  pg.TXManager
	validators map[domain.Platform]ReceiptValidator
	now        func() time.Time
}

func New(repo Repo, users UserRepo, wallet Wallet, txManager pg.TXManager, validators map[domain.Platform]ReceiptValidator) *Service {
	return &Service{
		repo:       repo,
		users:      users,
		wallet:     wallet,
		txManager:  txManager,
		validators: validators,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// VerifyAndCredit credits a store purchase at most once per (platform, key).
// A key that was rejected once stays rejected.
// The record is reserved first and then locked, so concurrent callers with
// the same key queue on the row and only the first one credits.
func (s *Service) VerifyAndCredit(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if !req.Platform.Valid() {
		return nil, ErrInvalidPlatform
	}
	if req.NaturalKey == "" {
		return nil, ErrMissingKey
	}
	if !creditable(req.Coins, req.Days, req.Premium) {
		zap.L().Warn("purchase maps to no coins",
			zap.String("platform", string(req.Platform)),
			zap.String("product_id", req.ProductID),
		)
		metrics.RecordPurchase(string(req.Platform), string(domain.OutcomeInvalidPackage))
		return &domain.PurchaseResult{Status: domain.OutcomeInvalidPackage, CoinsCredited: decimal.Zero}, nil
	}

	record := &domain.PurchaseVerification{
		UserID:        req.UserID,
		Platform:      req.Platform,
		PurchaseToken: req.NaturalKey,
		ProductID:     req.ProductID,
		CoinsAmount:   req.Coins,
		DurationDays:  req.Days,
		Price:         req.Price,
		IsRestored:    req.IsRestored,
	}
	if _, err := s.repo.ReserveVerification(ctx, record); err != nil {
		return nil, fmt.Errorf("reserve verification: %w", err)
	}

	var result *domain.PurchaseResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		v, err := s.repo.FindVerificationForUpdate(ctx, req.Platform, req.NaturalKey)
		if err != nil {
			return fmt.Errorf("lock verification: %w", err)
		}
		if v == nil {
			return ErrRecordMissing
		}
		switch v.VerificationStatus {
		case domain.VerificationVerified:
			result = &domain.PurchaseResult{Status: domain.OutcomeAlreadyVerified, CoinsCredited: decimal.Zero}
			return nil
		case domain.VerificationFailed:
			result = &domain.PurchaseResult{Status: domain.OutcomeInvalid, CoinsCredited: decimal.Zero}
			return nil
		}

		now := s.now()
		view, err := s.credit(ctx, v.UserID, req.ProductID, req.Coins, req.Days, req.Price, req.Premium, now)
		if err != nil {
			return fmt.Errorf("credit purchase: %w", err)
		}

		v.VerificationStatus = domain.VerificationVerified
		v.ProductID = req.ProductID
		v.CoinsAmount = req.Coins
		v.DurationDays = req.Days
		v.Price = req.Price
		v.VerifiedAt = &now
		if err := s.repo.UpdateVerification(ctx, v); err != nil {
			return fmt.Errorf("mark verified: %w", err)
		}

		result = &domain.PurchaseResult{
			Status:        domain.OutcomeVerified,
			CoinsCredited: req.Coins,
			Days:          req.Days,
			Balance:       view,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to credit purchase",
			zap.String("platform", string(req.Platform)),
			zap.Int("user_id", req.UserID),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordPurchase(string(req.Platform), string(result.Status))
	return result, nil
}

// VerifyStorePurchase validates a receipt with its platform and credits the
// product it names.
func (s *Service) VerifyStorePurchase(ctx context.Context, userID int, receipt domain.StoreReceipt) (*domain.PurchaseResult, error) {
	validator, ok := s.validators[receipt.Platform]
	if !ok {
		return nil, ErrInvalidPlatform
	}
	if receipt.Token == "" {
		return nil, ErrMissingKey
	}

	validated, err := validator.Validate(ctx, receipt)
	if err != nil {
		zap.L().Error("receipt validation failed", zap.String("platform", string(receipt.Platform)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrValidatorFailed, err)
	}

	key := receipt.Token
	if receipt.Platform == domain.PlatformApple && validated.TransactionID != "" {
		key = validated.TransactionID
	}
	productID := validated.ProductID
	if productID == "" {
		productID = receipt.ProductID
	}

	if !validated.Valid {
		if err := s.markFailed(ctx, userID, receipt, key, productID); err != nil {
			return nil, err
		}
		metrics.RecordPurchase(string(receipt.Platform), string(domain.OutcomeInvalid))
		return &domain.PurchaseResult{Status: domain.OutcomeInvalid, CoinsCredited: decimal.Zero}, nil
	}

	pkg, ok := LookupProduct(productID)
	if !ok {
		zap.L().Warn("unknown product", zap.String("platform", string(receipt.Platform)), zap.String("product_id", productID))
		metrics.RecordPurchase(string(receipt.Platform), string(domain.OutcomeInvalidPackage))
		return &domain.PurchaseResult{Status: domain.OutcomeInvalidPackage, CoinsCredited: decimal.Zero}, nil
	}

	return s.VerifyAndCredit(ctx, domain.PurchaseRequest{
		Platform:   receipt.Platform,
		NaturalKey: key,
		ProductID:  pkg.ProductID,
		UserID:     userID,
		Coins:      pkg.Coins,
		Days:       pkg.Days,
		Price:      validated.Price,
		Premium:    pkg.Premium,
		IsRestored: receipt.IsRestored,
	})
}

// markFailed records a rejected receipt. A record that was already verified
// keeps its status.
func (s *Service) markFailed(ctx context.Context, userID int, receipt domain.StoreReceipt, key, productID string) error {
	record := &domain.PurchaseVerification{
		UserID:        userID,
		Platform:      receipt.Platform,
		PurchaseToken: key,
		ProductID:     productID,
		IsRestored:    receipt.IsRestored,
	}
	if _, err := s.repo.ReserveVerification(ctx, record); err != nil {
		return fmt.Errorf("reserve verification: %w", err)
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		v, err := s.repo.FindVerificationForUpdate(ctx, receipt.Platform, key)
		if err != nil {
			return fmt.Errorf("lock verification: %w", err)
		}
		if v == nil || v.VerificationStatus != domain.VerificationPending {
			return nil
		}
		v.VerificationStatus = domain.VerificationFailed
		if err := s.repo.UpdateVerification(ctx, v); err != nil {
			return fmt.Errorf("mark failed: %w", err)
		}
		return nil
	})
}

// HandlePaymentWebhook applies an already-verified payment notification.
// Replays of a completed payment are reported and ignored.
func (s *Service) HandlePaymentWebhook(ctx context.Context, event domain.PaymentEvent) (*domain.PurchaseResult, error) {
	if event.OrderID == "" {
		return nil, ErrMissingKey
	}

	if _, ok := successStatuses[strings.ToLower(event.Status)]; !ok {
		if err := s.failPayment(ctx, event.OrderID); err != nil {
			return nil, err
		}
		zap.L().Info("payment not successful", zap.String("order_id", event.OrderID), zap.String("status", event.Status))
		metrics.RecordPurchase(webhookChannel, string(domain.OutcomeIgnored))
		return &domain.PurchaseResult{Status: domain.OutcomeIgnored, CoinsCredited: decimal.Zero}, nil
	}

	coins, days := DetermineCoinsFromAmount(event.Amount)
	if coins.IsZero() {
		zap.L().Warn("unmapped payment amount",
			zap.String("order_id", event.OrderID),
			zap.String("amount", event.Amount.String()),
			zap.Int64("telegram_id", event.TelegramID),
		)
		if err := s.failPayment(ctx, event.OrderID); err != nil {
			return nil, err
		}
		metrics.RecordPurchase(webhookChannel, string(domain.OutcomeUnmapped))
		return &domain.PurchaseResult{Status: domain.OutcomeUnmapped, CoinsCredited: decimal.Zero}, nil
	}

	if err := s.ensurePayment(ctx, event); err != nil {
		return nil, err
	}

	var result *domain.PurchaseResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.repo.FindPaymentForUpdate(ctx, event.OrderID)
		if err != nil {
			return fmt.Errorf("lock payment: %w", err)
		}
		if p == nil {
			return ErrRecordMissing
		}
		if p.Status == domain.PaymentCompleted {
			result = &domain.PurchaseResult{Status: domain.OutcomeAlreadyProcessed, CoinsCredited: decimal.Zero}
			return nil
		}

		now := s.now()
		view, err := s.credit(ctx, p.UserID, fmt.Sprintf("payment_%dd", days), coins, days, event.Amount, false, now)
		if err != nil {
			return fmt.Errorf("credit payment: %w", err)
		}
		if err := s.repo.UpdatePaymentStatus(ctx, p.ID, domain.PaymentCompleted, &now); err != nil {
			return fmt.Errorf("complete payment: %w", err)
		}

		result = &domain.PurchaseResult{
			Status:        domain.OutcomeCompleted,
			CoinsCredited: coins,
			Days:          days,
			Balance:       view,
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to process payment", zap.String("order_id", event.OrderID), zap.Error(err))
		return nil, err
	}

	metrics.RecordPurchase(webhookChannel, string(result.Status))
	return result, nil
}

// RegisterPayment records a payment intent for a user with a linked
// Telegram account.
func (s *Service) RegisterPayment(ctx context.Context, userID int, paymentID string, amount decimal.Decimal) (*domain.PendingPayment, error) {
	if paymentID == "" {
		return nil, ErrMissingKey
	}
	if coins, _ := DetermineCoinsFromAmount(amount); coins.IsZero() {
		return nil, ErrUnmappedAmount
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.TelegramID == nil {
		return nil, ErrTelegramNotLinked
	}

	payment := &domain.PendingPayment{
		PaymentID:  paymentID,
		TelegramID: *user.TelegramID,
		UserID:     userID,
		Amount:     amount,
		Status:     domain.PaymentPending,
	}
	created, err := s.repo.ReservePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("reserve payment: %w", err)
	}
	if !created {
		return nil, ErrPaymentExists
	}
	return payment, nil
}

// ensurePayment makes sure a pending record exists for the event, resolving
// the user by Telegram id when the bot did not register the payment first.
func (s *Service) ensurePayment(ctx context.Context, event domain.PaymentEvent) error {
	existing, err := s.repo.FindPayment(ctx, event.OrderID)
	if err != nil {
		return fmt.Errorf("find payment: %w", err)
	}
	if existing != nil {
		return nil
	}

	user, err := s.users.FindByTelegramID(ctx, event.TelegramID)
	if err != nil {
		return fmt.Errorf("find user by telegram id: %w", err)
	}
	if user == nil {
		zap.L().Warn("payment for unknown telegram user", zap.Int64("telegram_id", event.TelegramID))
		return ErrUserNotFound
	}

	_, err = s.repo.ReservePayment(ctx, &domain.PendingPayment{
		PaymentID:  event.OrderID,
		TelegramID: event.TelegramID,
		UserID:     user.ID,
		Amount:     event.Amount,
		Status:     domain.PaymentPending,
	})
	if err != nil {
		return fmt.Errorf("reserve payment: %w", err)
	}
	return nil
}

func (s *Service) failPayment(ctx context.Context, paymentID string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		p, err := s.repo.FindPaymentForUpdate(ctx, paymentID)
		if err != nil {
			return fmt.Errorf("lock payment: %w", err)
		}
		if p == nil || p.Status != domain.PaymentPending {
			return nil
		}
		if err := s.repo.UpdatePaymentStatus(ctx, p.ID, domain.PaymentFailed, nil); err != nil {
			return fmt.Errorf("fail payment: %w", err)
		}
		return nil
	})
}

func (s *Service) credit(ctx context.Context, userID int, productID string, coins decimal.Decimal, days int,
	price decimal.Decimal, premium bool, now time.Time) (*domain.BalanceView, error) {
	if days > 0 {
		return s.wallet.GrantSubscription(ctx, userID, domain.SubscriptionGrant{
			Type:        productID,
			Coins:       coins,
			Days:        days,
			Price:       price,
			Premium:     premium,
			PurchasedAt: now,
		})
	}
	return s.wallet.AddCoins(ctx, userID, domain.Credit{
		Amount:      coins,
		Source:      domain.SourcePermanent,
		Type:        domain.TxPurchase,
		Description: productID,
		Price:       &price,
	})
}

func creditable(coins decimal.Decimal, days int, premium bool) bool {
	if coins.IsNegative() {
		return false
	}
	return coins.IsPositive() || (premium && days > 0)
}
