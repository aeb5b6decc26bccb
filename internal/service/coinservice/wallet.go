package coinservice

import (
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/shopspring/decimal"
)

// wallet is the coin state of one user loaded for a single operation.
// subs holds the active grants ordered by expiry, earliest first.
type wallet struct {
	user *domain.User
	subs []domain.Subscription
}

type expiredGrant struct {
	sub       domain.Subscription
	forfeited decimal.Decimal
}

// settlement describes what lazy evaluation changed on a wallet.
type settlement struct {
	rolledOver     bool
	expired        []expiredGrant
	premiumExpired bool
}

func (st settlement) changed() bool {
	return st.rolledOver || st.premiumExpired || len(st.expired) > 0
}

// draw is the part of a debit taken from one bucket.
type draw struct {
	source domain.CoinSource
	amount decimal.Decimal
	sub    *domain.Subscription
}

func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func sameMonth(a, b time.Time) bool {
	a, b = a.UTC(), b.UTC()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// settle applies month rollover, grant expiry and premium expiry as of now.
// It only touches memory; callers decide whether to persist the result.
func (w *wallet) settle(now time.Time) settlement {
	var st settlement
	u := w.user

	if !sameMonth(now, u.CurrentMonthStart) {
		u.CurrentMonthStart = monthStart(now)
		u.MonthlyCoinsUsed = decimal.Zero
		refilled := now
		u.LastMonthlyRefill = &refilled
		st.rolledOver = true
	}

	active := w.subs[:0]
	for _, sub := range w.subs {
		if now.Before(sub.ExpiresAt) {
			active = append(active, sub)
			continue
		}
		forfeited := sub.CoinsRemaining
		sub.CoinsRemaining = decimal.Zero
		sub.IsActive = false
		u.FractionalCoinBalance = nonNegative(u.FractionalCoinBalance.Sub(forfeited))
		st.expired = append(st.expired, expiredGrant{sub: sub, forfeited: forfeited})
	}
	w.subs = active

	if u.HasPremiumSubscription && (u.PremiumExpiresAt == nil || !now.Before(*u.PremiumExpiresAt)) {
		u.HasPremiumSubscription = false
		st.premiumExpired = true
	}

	w.syncDisplay()
	return st
}

func (w *wallet) premiumActive(now time.Time) bool {
	u := w.user
	return u.HasPremiumSubscription && u.PremiumExpiresAt != nil && now.Before(*u.PremiumExpiresAt)
}

func (w *wallet) subscriptionCoins() decimal.Decimal {
	total := decimal.Zero
	for _, sub := range w.subs {
		total = total.Add(sub.CoinsRemaining)
	}
	return total
}

func (w *wallet) permanentCoins() decimal.Decimal {
	return nonNegative(w.user.FractionalCoinBalance.Sub(w.subscriptionCoins()))
}

func (w *wallet) monthlyRemaining(allowance decimal.Decimal) decimal.Decimal {
	return nonNegative(allowance.Sub(w.user.MonthlyCoinsUsed))
}

func (w *wallet) view(allowance decimal.Decimal) *domain.BalanceView {
	u := w.user
	remaining := w.monthlyRemaining(allowance)
	return &domain.BalanceView{
		UserID:            u.ID,
		Fractional:        u.FractionalCoinBalance,
		Integer:           u.CoinBalance,
		PermanentCoins:    w.permanentCoins(),
		SubscriptionCoins: w.subscriptionCoins(),
		MonthlyAllowance:  allowance,
		MonthlyUsed:       u.MonthlyCoinsUsed,
		MonthlyRemaining:  remaining,
		Spendable:         u.FractionalCoinBalance.Add(remaining),
		HasPremium:        u.HasPremiumSubscription,
		PremiumExpiresAt:  u.PremiumExpiresAt,
	}
}

// debit takes amount from the buckets in domain.ConsumptionOrder. The caller
// must have checked that the spendable total covers amount.
func (w *wallet) debit(amount, allowance decimal.Decimal) []draw {
	var draws []draw
	left := amount

	for _, source := range domain.ConsumptionOrder {
		if !left.IsPositive() {
			break
		}
		switch source {
		case domain.SourceMonthlyFree:
			take := decimal.Min(left, w.monthlyRemaining(allowance))
			if take.IsPositive() {
				w.user.MonthlyCoinsUsed = w.user.MonthlyCoinsUsed.Add(take)
				left = left.Sub(take)
				draws = append(draws, draw{source: source, amount: take})
			}
		case domain.SourceSubscription:
			for i := range w.subs {
				if !left.IsPositive() {
					break
				}
				sub := &w.subs[i]
				take := decimal.Min(left, sub.CoinsRemaining)
				if !take.IsPositive() {
					continue
				}
				sub.CoinsRemaining = sub.CoinsRemaining.Sub(take)
				w.user.FractionalCoinBalance = w.user.FractionalCoinBalance.Sub(take)
				left = left.Sub(take)
				draws = append(draws, draw{source: source, amount: take, sub: sub})
			}
		case domain.SourcePermanent:
			take := decimal.Min(left, w.permanentCoins())
			if take.IsPositive() {
				w.user.FractionalCoinBalance = w.user.FractionalCoinBalance.Sub(take)
				left = left.Sub(take)
				draws = append(draws, draw{source: source, amount: take})
			}
		}
	}

	w.syncDisplay()
	return draws
}

func (w *wallet) credit(amount decimal.Decimal) {
	w.user.FractionalCoinBalance = w.user.FractionalCoinBalance.Add(amount)
	w.syncDisplay()
}

// syncDisplay keeps the integer projection equal to the floor of the
// fractional balance.
func (w *wallet) syncDisplay() {
	w.user.CoinBalance = w.user.FractionalCoinBalance.Floor().IntPart()
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
