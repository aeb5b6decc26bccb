package coinservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/GlebRadaev/lwcoin/pkg/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=coinservice.go -destination=mock_coinservice.go -package=coinservice

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.User, error)
	UpdateWallet(ctx context.Context, user *domain.User) error
}

type SubscriptionRepo interface {
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	ListActive(ctx context.Context, userID int) ([]domain.Subscription, error)
	ListActiveForUpdate(ctx context.Context, userID int) ([]domain.Subscription, error)
	UpdateRemaining(ctx context.Context, sub *domain.Subscription) error
}

type TransactionRepo interface {
	Append(ctx context.Context, tx *domain.CoinTransaction) (*domain.CoinTransaction, error)
	ListByUser(ctx context.Context, userID, limit int) ([]domain.CoinTransaction, error)
	HasEntry(ctx context.Context, userID int, txType domain.TransactionType, description string) (bool, error)
}

var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidSource   = errors.New("coins of this source can't be added directly")
	ErrInvalidDuration = errors.New("subscription duration must be positive")
	ErrUserNotFound    = errors.New("user not found")
	ErrUnknownFeature  = errors.New("unknown feature")
	ErrBonusNotGranted = errors.New("bonus not granted")
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 100

	dateLayout = "2006-01-02"
)

var featurePrices = map[string]decimal.Decimal{
	"ai_food_scan":    decimal.NewFromInt(1),
	"ai_voice_log":    decimal.NewFromInt(1),
	"ai_workout_plan": decimal.NewFromInt(3),
	"ai_meal_plan":    decimal.NewFromInt(3),
	"ai_chat":         decimal.RequireFromString("0.5"),
}

type Options struct {
	MonthlyFreeCoins  decimal.Decimal
	RegistrationBonus decimal.Decimal
	ReferralBonus     decimal.Decimal
	BonusRetryDelay   time.Duration
}

func DefaultOptions() Options {
	return Options{
		MonthlyFreeCoins:  decimal.NewFromInt(300),
		RegistrationBonus: decimal.NewFromInt(50),
		ReferralBonus:     decimal.NewFromInt(100),
		BonusRetryDelay:   200 * time.Millisecond,
	}
}

type Service struct {
	users     UserRepo
	subs      SubscriptionRepo
	txs       TransactionRepo
	txManager pg.TXManager
	opts      Options
	now       func() time.Time
}

func New(users UserRepo, subs SubscriptionRepo, txs TransactionRepo, txManager pg.TXManager, opts Options) *Service {
	return &Service{
		users:     users,
		subs:      subs,
		txs:       txs,
		txManager: txManager,
		opts:      opts,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// PriceFor returns the coin cost of a paid feature.
func (s *Service) PriceFor(feature string) (decimal.Decimal, error) {
	price, ok := featurePrices[feature]
	if !ok {
		return decimal.Zero, ErrUnknownFeature
	}
	return price, nil
}

// GetBalance reports the effective balance. Pending rollover and expiry are
// applied to the returned view only and are not written back.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.BalanceView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	subs, err := s.subs.ListActive(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get subscriptions", zap.Int("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("load subscriptions: %w", err)
	}

	w := &wallet{user: user, subs: subs}
	w.settle(s.now())
	return w.view(s.opts.MonthlyFreeCoins), nil
}

func (s *Service) Spend(ctx context.Context, userID int, req domain.SpendRequest) (*domain.SpendResult, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !req.Type.Valid() {
		req.Type = domain.TxSpent
	}

	var result *domain.SpendResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()
		w, _, err := s.settleForUpdate(ctx, userID, now)
		if err != nil {
			return err
		}

		if w.premiumActive(now) {
			tx, err := s.txs.Append(ctx, s.entry(w.user.ID, now, decimal.Zero, req.Type, domain.SourceSubscription, req.Description, req.FeatureUsed))
			if err != nil {
				return fmt.Errorf("append premium usage: %w", err)
			}
			result = &domain.SpendResult{
				Allowed:      true,
				Charged:      decimal.Zero,
				Premium:      true,
				Balance:      w.view(s.opts.MonthlyFreeCoins),
				Transactions: []domain.CoinTransaction{*tx},
			}
			return nil
		}

		view := w.view(s.opts.MonthlyFreeCoins)
		if view.Spendable.LessThan(req.Amount) {
			result = &domain.SpendResult{
				Allowed: false,
				Reason:  domain.ReasonInsufficientBalance,
				Charged: decimal.Zero,
				Balance: view,
			}
			return nil
		}

		draws := w.debit(req.Amount, s.opts.MonthlyFreeCoins)
		txs := make([]domain.CoinTransaction, 0, len(draws))
		for _, d := range draws {
			entry := s.entry(w.user.ID, now, d.amount.Neg(), req.Type, d.source, req.Description, req.FeatureUsed)
			if d.sub != nil {
				if err := s.subs.UpdateRemaining(ctx, d.sub); err != nil {
					return fmt.Errorf("update subscription: %w", err)
				}
				entry.SubscriptionID = &d.sub.ID
			}
			tx, err := s.txs.Append(ctx, entry)
			if err != nil {
				return fmt.Errorf("append spend: %w", err)
			}
			txs = append(txs, *tx)
		}
		if err := s.users.UpdateWallet(ctx, w.user); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}

		result = &domain.SpendResult{
			Allowed:      true,
			Charged:      req.Amount,
			Balance:      w.view(s.opts.MonthlyFreeCoins),
			Transactions: txs,
		}
		for _, d := range draws {
			metrics.AddCoinsSpent(string(d.source), d.amount.InexactFloat64())
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to spend coins", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	metrics.RecordSpend(req.FeatureUsed, result.Allowed)
	return result, nil
}

// AddCoins credits permanent coins. Subscription coins go through
// GrantSubscription, the monthly allowance is never credited directly.
func (s *Service) AddCoins(ctx context.Context, userID int, credit domain.Credit) (*domain.BalanceView, error) {
	if !credit.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if credit.Source != domain.SourcePermanent {
		return nil, ErrInvalidSource
	}
	if credit.Type == "" {
		credit.Type = domain.TxEarned
	}

	var view *domain.BalanceView
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()
		w, _, err := s.settleForUpdate(ctx, userID, now)
		if err != nil {
			return err
		}
		if err := s.applyCredit(ctx, w, credit, now); err != nil {
			return err
		}
		view = w.view(s.opts.MonthlyFreeCoins)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to add coins", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return view, nil
}

// GrantSubscription stores a time-boxed grant and credits its coins as
// subscription coins. Premium grants extend the premium window.
func (s *Service) GrantSubscription(ctx context.Context, userID int, grant domain.SubscriptionGrant) (*domain.BalanceView, error) {
	if grant.Days <= 0 {
		return nil, ErrInvalidDuration
	}
	if grant.Coins.IsNegative() || (grant.Coins.IsZero() && !grant.Premium) {
		return nil, ErrInvalidAmount
	}

	var view *domain.BalanceView
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()
		w, _, err := s.settleForUpdate(ctx, userID, now)
		if err != nil {
			return err
		}

		purchasedAt := grant.PurchasedAt
		if purchasedAt.IsZero() {
			purchasedAt = now
		}
		sub, err := s.subs.Create(ctx, &domain.Subscription{
			UserID:         userID,
			Type:           grant.Type,
			Price:          grant.Price,
			PurchasedAt:    purchasedAt,
			ExpiresAt:      purchasedAt.AddDate(0, 0, grant.Days),
			IsActive:       true,
			CoinsGranted:   grant.Coins,
			CoinsRemaining: grant.Coins,
			Premium:        grant.Premium,
		})
		if err != nil {
			return fmt.Errorf("create subscription: %w", err)
		}
		w.subs = append(w.subs, *sub)
		w.credit(grant.Coins)

		if grant.Premium {
			w.user.HasPremiumSubscription = true
			if w.user.PremiumExpiresAt == nil || sub.ExpiresAt.After(*w.user.PremiumExpiresAt) {
				expires := sub.ExpiresAt
				w.user.PremiumExpiresAt = &expires
			}
		}

		entry := s.entry(userID, now, grant.Coins, domain.TxPurchase, domain.SourceSubscription, grant.Type, "")
		price := grant.Price
		entry.Price = &price
		entry.Period = fmt.Sprintf("%dd", grant.Days)
		entry.SubscriptionID = &sub.ID
		if _, err := s.txs.Append(ctx, entry); err != nil {
			return fmt.Errorf("append subscription grant: %w", err)
		}
		if err := s.users.UpdateWallet(ctx, w.user); err != nil {
			return fmt.Errorf("update wallet: %w", err)
		}
		view = w.view(s.opts.MonthlyFreeCoins)
		return nil
	})
	if err != nil {
		zap.L().Error("failed to grant subscription", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	metrics.AddCoinsCredited(string(domain.TxPurchase), grant.Coins.InexactFloat64())
	return view, nil
}

func (s *Service) History(ctx context.Context, userID, limit int) ([]domain.CoinTransaction, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	txs, err := s.txs.ListByUser(ctx, userID, limit)
	if err != nil {
		zap.L().Error("failed to fetch coin history", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return txs, nil
}

// settleForUpdate locks the user and their grants, then persists whatever
// lazy settlement is due. Must run inside a transaction.
func (s *Service) settleForUpdate(ctx context.Context, userID int, now time.Time) (*wallet, settlement, error) {
	user, err := s.users.FindByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, settlement{}, fmt.Errorf("lock user: %w", err)
	}
	if user == nil {
		return nil, settlement{}, ErrUserNotFound
	}
	subs, err := s.subs.ListActiveForUpdate(ctx, userID)
	if err != nil {
		return nil, settlement{}, fmt.Errorf("lock subscriptions: %w", err)
	}

	w := &wallet{user: user, subs: subs}
	st := w.settle(now)
	if err := s.persistSettlement(ctx, w, st, now); err != nil {
		return nil, settlement{}, err
	}
	return w, st, nil
}

func (s *Service) persistSettlement(ctx context.Context, w *wallet, st settlement, now time.Time) error {
	if !st.changed() {
		return nil
	}

	if st.rolledOver {
		entry := s.entry(w.user.ID, now, s.opts.MonthlyFreeCoins, domain.TxRefill, domain.SourceMonthlyFree, "monthly allowance", "")
		entry.Period = now.Format("2006-01")
		if _, err := s.txs.Append(ctx, entry); err != nil {
			return fmt.Errorf("append refill: %w", err)
		}
		metrics.RecordMonthlyRefill()
	}

	for i := range st.expired {
		grant := &st.expired[i]
		if err := s.subs.UpdateRemaining(ctx, &grant.sub); err != nil {
			return fmt.Errorf("expire subscription: %w", err)
		}
		if !grant.forfeited.IsPositive() {
			continue
		}
		entry := s.entry(w.user.ID, now, grant.forfeited.Neg(), domain.TxExpired, domain.SourceSubscription, grant.sub.Type, "")
		entry.SubscriptionID = &grant.sub.ID
		if _, err := s.txs.Append(ctx, entry); err != nil {
			return fmt.Errorf("append expiry: %w", err)
		}
	}

	if err := s.users.UpdateWallet(ctx, w.user); err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	return nil
}

func (s *Service) applyCredit(ctx context.Context, w *wallet, credit domain.Credit, now time.Time) error {
	w.credit(credit.Amount)

	entry := s.entry(w.user.ID, now, credit.Amount, credit.Type, credit.Source, credit.Description, "")
	entry.Price = credit.Price
	entry.Period = credit.Period
	if _, err := s.txs.Append(ctx, entry); err != nil {
		return fmt.Errorf("append credit: %w", err)
	}
	if err := s.users.UpdateWallet(ctx, w.user); err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}

	metrics.AddCoinsCredited(string(credit.Type), credit.Amount.InexactFloat64())
	return nil
}

func (s *Service) entry(userID int, now time.Time, amount decimal.Decimal, txType domain.TransactionType,
	source domain.CoinSource, description, feature string) *domain.CoinTransaction {
	return &domain.CoinTransaction{
		UserID:           userID,
		Amount:           amount.Truncate(0).IntPart(),
		FractionalAmount: amount,
		Type:             txType,
		CoinSource:       source,
		FeatureUsed:      feature,
		Description:      description,
		UsageDate:        now.Format(dateLayout),
		CreatedAt:        now,
	}
}
