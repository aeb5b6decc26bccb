package dto

import (
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/shopspring/decimal"
)

type GooglePurchaseRequestDTO struct {
	PurchaseToken string `json:"purchase_token" validate:"required,max=512"`
	ProductID     string `json:"product_id" validate:"required,max=128" example:"lw_coins_300"`
	IsRestored    bool   `json:"is_restored"`
}

type ApplePurchaseRequestDTO struct {
	TransactionID string `json:"transaction_id" validate:"required,max=512"`
	ProductID     string `json:"product_id" validate:"required,max=128" example:"lw_sub_month"`
	IsRestored    bool   `json:"is_restored"`
}

type PurchaseResponseDTO struct {
	Status        string              `json:"status" example:"verified"`
	CoinsCredited decimal.Decimal     `json:"coins_credited" swaggertype:"string" example:"300"`
	Days          int                 `json:"days,omitempty" example:"30"`
	Balance       *BalanceResponseDTO `json:"balance,omitempty"`
}

func NewPurchaseResponse(r *domain.PurchaseResult) PurchaseResponseDTO {
	return PurchaseResponseDTO{
		Status:        string(r.Status),
		CoinsCredited: r.CoinsCredited,
		Days:          r.Days,
		Balance:       NewBalanceResponse(r.Balance),
	}
}

type PaymentRequestDTO struct {
	PaymentID string          `json:"payment_id" validate:"required,max=128" example:"tg-42-1700000000"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"5"`
}

type PaymentResponseDTO struct {
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Status    string          `json:"status" example:"pending"`
	CreatedAt time.Time       `json:"created_at"`
}

type PaymentWebhookDTO struct {
	OrderID    string          `json:"order_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount" swaggertype:"string" example:"5"`
	TelegramID int64           `json:"telegram_id"`
	Status     string          `json:"status" validate:"required" example:"success"`
}
