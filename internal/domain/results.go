package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceView is the effective balance of a user at a point in time.
type BalanceView struct {
	UserID            int             `json:"user_id"`
	Fractional        decimal.Decimal `json:"fractional_balance"`
	Integer           int64           `json:"balance"`
	PermanentCoins    decimal.Decimal `json:"permanent_coins"`
	SubscriptionCoins decimal.Decimal `json:"subscription_coins"`
	MonthlyAllowance  decimal.Decimal `json:"monthly_allowance"`
	MonthlyUsed       decimal.Decimal `json:"monthly_used"`
	MonthlyRemaining  decimal.Decimal `json:"monthly_remaining"`
	Spendable         decimal.Decimal `json:"spendable"`
	HasPremium        bool            `json:"has_premium"`
	PremiumExpiresAt  *time.Time      `json:"premium_expires_at,omitempty"`
}

type SpendRequest struct {
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	FeatureUsed string
}

const ReasonInsufficientBalance = "insufficient_balance"

type SpendResult struct {
	Allowed      bool
	Reason       string
	Charged      decimal.Decimal
	Premium      bool
	Balance      *BalanceView
	Transactions []CoinTransaction
}

type Credit struct {
	Amount      decimal.Decimal
	Source      CoinSource
	Type        TransactionType
	Description string
	Price       *decimal.Decimal
	Period      string
}

type SubscriptionGrant struct {
	Type        string
	Coins       decimal.Decimal
	Days        int
	Price       decimal.Decimal
	Premium     bool
	PurchasedAt time.Time
}

// Package is what a product or a payment amount buys.
type Package struct {
	ProductID string
	Coins     decimal.Decimal
	Days      int
	Premium   bool
}

type PurchaseRequest struct {
	Platform   Platform
	NaturalKey string
	ProductID  string
	UserID     int
	Coins      decimal.Decimal
	Days       int
	Price      decimal.Decimal
	Premium    bool
	IsRestored bool
}

type PurchaseOutcome string

const (
	OutcomeVerified         PurchaseOutcome = "verified"
	OutcomeAlreadyVerified  PurchaseOutcome = "already_verified"
	OutcomeInvalid          PurchaseOutcome = "invalid"
	OutcomeInvalidPackage   PurchaseOutcome = "invalid_package"
	OutcomeCompleted        PurchaseOutcome = "completed"
	OutcomeAlreadyProcessed PurchaseOutcome = "already_processed"
	OutcomeUnmapped         PurchaseOutcome = "unmapped"
	OutcomeIgnored          PurchaseOutcome = "ignored"
)

// Credited reports whether the outcome moved coins in this call.
func (o PurchaseOutcome) Credited() bool {
	return o == OutcomeVerified || o == OutcomeCompleted
}

type PurchaseResult struct {
	Status        PurchaseOutcome
	CoinsCredited decimal.Decimal
	Days          int
	Balance       *BalanceView
}

// StoreReceipt is what the mobile client sends after a store purchase. Token
// is the purchase token on Google Play and the transaction id on Apple.
type StoreReceipt struct {
	Platform   Platform
	Token      string
	ProductID  string
	IsRestored bool
}

type ValidatedReceipt struct {
	Valid         bool
	ProductID     string
	TransactionID string
	Price         decimal.Decimal
}

type PaymentEvent struct {
	OrderID    string
	Amount     decimal.Decimal
	TelegramID int64
	Status     string
}

type ExperienceData struct {
	Level              int     `json:"level"`
	Experience         int     `json:"experience"`
	MaxExperience      int     `json:"max_experience"`
	ExperienceToNext   int     `json:"experience_to_next"`
	ProgressPercentage float64 `json:"progress_percentage"`
	IsMaxLevel         bool    `json:"is_max_level"`
}
