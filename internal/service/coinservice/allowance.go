package coinservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"go.uber.org/zap"
)

const (
	bonusAttempts = 2

	RegistrationDescription = "registration"
)

// ReferralDescription tags the referrer's ledger entry with the referred user.
func ReferralDescription(referredID int) string {
	return fmt.Sprintf("referral:%d", referredID)
}

// CheckAndApplyMonthlyRefill persists a calendar-month rollover when one is
// due and reports whether it happened.
func (s *Service) CheckAndApplyMonthlyRefill(ctx context.Context, userID int) (bool, error) {
	var rolledOver bool
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, st, err := s.settleForUpdate(ctx, userID, s.now())
		if err != nil {
			return err
		}
		rolledOver = st.rolledOver
		return nil
	})
	if err != nil {
		zap.L().Error("failed to apply monthly refill", zap.Int("user_id", userID), zap.Error(err))
		return false, err
	}
	if rolledOver {
		zap.L().Info("monthly allowance refilled", zap.Int("user_id", userID))
	}
	return rolledOver, nil
}

func (s *Service) GrantRegistrationBonus(ctx context.Context, userID int) error {
	return s.grantOnce(ctx, userID, domain.Credit{
		Amount:      s.opts.RegistrationBonus,
		Source:      domain.SourcePermanent,
		Type:        domain.TxRegistration,
		Description: RegistrationDescription,
	})
}

func (s *Service) GrantReferralBonus(ctx context.Context, referrerID, referredID int) error {
	return s.grantOnce(ctx, referrerID, domain.Credit{
		Amount:      s.opts.ReferralBonus,
		Source:      domain.SourcePermanent,
		Type:        domain.TxReferral,
		Description: ReferralDescription(referredID),
	})
}

// grantOnce credits a one-time bonus. The ledger lookup runs under the user
// row lock, so a bonus already present is never credited again. A failed
// attempt is retried once.
func (s *Service) grantOnce(ctx context.Context, userID int, credit domain.Credit) error {
	if !credit.Amount.IsPositive() {
		return nil
	}

	var err error
retry:
	for attempt := 1; ; attempt++ {
		err = s.txManager.Begin(ctx, func(ctx context.Context) error {
			now := s.now()
			w, _, err := s.settleForUpdate(ctx, userID, now)
			if err != nil {
				return err
			}
			granted, err := s.txs.HasEntry(ctx, userID, credit.Type, credit.Description)
			if err != nil {
				return fmt.Errorf("check ledger: %w", err)
			}
			if granted {
				return nil
			}
			return s.applyCredit(ctx, w, credit, now)
		})
		if err == nil || errors.Is(err, ErrUserNotFound) || attempt == bonusAttempts {
			break
		}

		zap.L().Warn("bonus attempt failed",
			zap.Int("user_id", userID),
			zap.String("type", string(credit.Type)),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break retry
		case <-time.After(s.opts.BonusRetryDelay):
		}
	}
	if err != nil {
		zap.L().Error("bonus not granted",
			zap.Int("user_id", userID),
			zap.String("type", string(credit.Type)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %w", ErrBonusNotGranted, err)
	}
	return nil
}
