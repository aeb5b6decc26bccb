package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type AIResponseDTO struct {
	Feature string              `json:"feature" example:"ai_meal_plan"`
	Charged decimal.Decimal     `json:"charged" swaggertype:"string" example:"3"`
	Premium bool                `json:"premium"`
	Result  json.RawMessage     `json:"result" swaggertype:"object"`
	Balance *BalanceResponseDTO `json:"balance,omitempty"`
}
