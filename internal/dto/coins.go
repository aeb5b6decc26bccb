package dto

import (
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/shopspring/decimal"
)

type BalanceResponseDTO struct {
	Balance           int64           `json:"balance" example:"352"`
	FractionalBalance decimal.Decimal `json:"fractional_balance" swaggertype:"string" example:"352.5"`
	PermanentCoins    decimal.Decimal `json:"permanent_coins" swaggertype:"string" example:"52.5"`
	SubscriptionCoins decimal.Decimal `json:"subscription_coins" swaggertype:"string" example:"300"`
	MonthlyAllowance  decimal.Decimal `json:"monthly_allowance" swaggertype:"string" example:"300"`
	MonthlyUsed       decimal.Decimal `json:"monthly_used" swaggertype:"string" example:"12"`
	MonthlyRemaining  decimal.Decimal `json:"monthly_remaining" swaggertype:"string" example:"288"`
	Spendable         decimal.Decimal `json:"spendable" swaggertype:"string" example:"640.5"`
	HasPremium        bool            `json:"has_premium"`
	PremiumExpiresAt  *time.Time      `json:"premium_expires_at,omitempty"`
}

func NewBalanceResponse(b *domain.BalanceView) *BalanceResponseDTO {
	if b == nil {
		return nil
	}
	return &BalanceResponseDTO{
		Balance:           b.Integer,
		FractionalBalance: b.Fractional,
		PermanentCoins:    b.PermanentCoins,
		SubscriptionCoins: b.SubscriptionCoins,
		MonthlyAllowance:  b.MonthlyAllowance,
		MonthlyUsed:       b.MonthlyUsed,
		MonthlyRemaining:  b.MonthlyRemaining,
		Spendable:         b.Spendable,
		HasPremium:        b.HasPremium,
		PremiumExpiresAt:  b.PremiumExpiresAt,
	}
}

type SpendRequestDTO struct {
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"1.5"`
	Feature     string          `json:"feature" validate:"max=64" example:"ai_food_scan"`
	Description string          `json:"description" validate:"max=255" example:"photo of lunch"`
}

type SpendResponseDTO struct {
	Allowed bool                `json:"allowed"`
	Reason  string              `json:"reason,omitempty" example:"insufficient_balance"`
	Charged decimal.Decimal     `json:"charged" swaggertype:"string" example:"1.5"`
	Premium bool                `json:"premium"`
	Balance *BalanceResponseDTO `json:"balance,omitempty"`
}

func NewSpendResponse(r *domain.SpendResult) SpendResponseDTO {
	return SpendResponseDTO{
		Allowed: r.Allowed,
		Reason:  r.Reason,
		Charged: r.Charged,
		Premium: r.Premium,
		Balance: NewBalanceResponse(r.Balance),
	}
}

type RefillResponseDTO struct {
	Refilled bool                `json:"refilled"`
	Balance  *BalanceResponseDTO `json:"balance"`
}

type TransactionResponseDTO struct {
	ID          int             `json:"id"`
	Amount      int64           `json:"amount" example:"-2"`
	Fractional  decimal.Decimal `json:"fractional_amount" swaggertype:"string" example:"-1.5"`
	Type        string          `json:"type" example:"spent"`
	Source      string          `json:"coin_source" example:"monthly_free"`
	FeatureUsed string          `json:"feature_used,omitempty" example:"ai_food_scan"`
	Description string          `json:"description,omitempty"`
	Period      string          `json:"period,omitempty" example:"2026-10"`
	CreatedAt   time.Time       `json:"created_at" example:"2026-10-19T12:00:00Z"`
}

func NewTransactionResponse(tx domain.CoinTransaction) TransactionResponseDTO {
	return TransactionResponseDTO{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Fractional:  tx.FractionalAmount,
		Type:        string(tx.Type),
		Source:      string(tx.CoinSource),
		FeatureUsed: tx.FeatureUsed,
		Description: tx.Description,
		Period:      tx.Period,
		CreatedAt:   tx.CreatedAt,
	}
}
