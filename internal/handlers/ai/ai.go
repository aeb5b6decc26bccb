package ai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/dto"
	"github.com/GlebRadaev/lwcoin/internal/service/coinservice"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/GlebRadaev/lwcoin/pkg/metrics"
	"github.com/GlebRadaev/lwcoin/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=ai.go -destination=mock_ai.go -package=ai

const maxPayloadBytes = 1 << 20

type Wallet interface {
	PriceFor(feature string) (decimal.Decimal, error)
	Spend(ctx context.Context, userID int, req domain.SpendRequest) (*domain.SpendResult, error)
}

type Provider interface {
	Complete(ctx context.Context, feature string, payload json.RawMessage) (json.RawMessage, error)
}

type AIHandler struct {
	wallet   Wallet
	provider Provider
}

func New(wallet Wallet, provider Provider) *AIHandler {
	return &AIHandler{
		wallet:   wallet,
		provider: provider,
	}
}

// Invoke godoc
//
//	@Summary		Run a paid AI feature
//	@Description	Charges the feature price first and calls the AI provider only when the spend is allowed. Coins are not returned if the provider fails.
//	@Tags			AI
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			feature	path		string	true	"Feature (ai_food_scan, ai_voice_log, ai_workout_plan, ai_meal_plan, ai_chat)"
//	@Param			request	body		object	false	"Feature payload forwarded to the provider"
//	@Success		200		{object}	dto.AIResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	dto.SpendResponseDTO	"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Unknown feature"
//	@Failure		429		{object}	utils.Response			"Too many requests"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Failure		502		{object}	utils.Response			"AI provider unavailable"
//	@Router			/api/user/ai/{feature} [post]
func (h *AIHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	feature := chi.URLParam(r, "feature")

	price, err := h.wallet.PriceFor(feature)
	if err != nil {
		if errors.Is(err, coinservice.ErrUnknownFeature) {
			utils.RespondWithError(w, http.StatusNotFound, "Unknown feature")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	payload := json.RawMessage(body)
	if len(payload) > 0 && !json.Valid(payload) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	spend, err := h.wallet.Spend(r.Context(), userID, domain.SpendRequest{
		Amount:      price,
		Type:        domain.TxSpent,
		Description: "ai:" + feature,
		FeatureUsed: feature,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !spend.Allowed {
		utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.NewSpendResponse(spend))
		return
	}

	answer, err := h.provider.Complete(r.Context(), feature, payload)
	if err != nil {
		zap.L().Error("ai feature failed after charge",
			zap.Int("user_id", userID),
			zap.String("feature", feature),
			zap.String("charged", spend.Charged.String()),
			zap.Error(err))
		metrics.RecordAIFailureAfterCharge(feature)
		utils.RespondWithError(w, http.StatusBadGateway, "AI provider unavailable")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AIResponseDTO{
		Feature: feature,
		Charged: spend.Charged,
		Premium: spend.Premium,
		Result:  answer,
		Balance: dto.NewBalanceResponse(spend.Balance),
	})
}
