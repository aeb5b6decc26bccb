package coins

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/dto"
	"github.com/GlebRadaev/lwcoin/internal/service/coinservice"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/GlebRadaev/lwcoin/pkg/utils"
	"github.com/GlebRadaev/lwcoin/pkg/validate"
)

//go:generate mockgen -source=coins.go -destination=mock_coins.go -package=coins

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.BalanceView, error)
	History(ctx context.Context, userID, limit int) ([]domain.CoinTransaction, error)
	Spend(ctx context.Context, userID int, req domain.SpendRequest) (*domain.SpendResult, error)
	CheckAndApplyMonthlyRefill(ctx context.Context, userID int) (bool, error)
}

type CoinHandler struct {
	coinService Service
}

func New(coinService Service) *CoinHandler {
	return &CoinHandler{
		coinService: coinService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current coin balance
//	@Description	Effective balance: permanent and subscription coins, this month's free allowance and premium status.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/balance [get]
func (h *CoinHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.coinService.GetBalance(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBalanceResponse(balance))
}

// GetTransactions godoc
//
//	@Summary		Get coin transaction history
//	@Description	Newest ledger entries first.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (1-100, default 50)"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Success		204		{object}	utils.Response	"No transactions"
//	@Failure		400		{object}	utils.Response	"Invalid limit"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/transactions [get]
func (h *CoinHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	txs, err := h.coinService.History(r.Context(), userID, limit)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if len(txs) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = dto.NewTransactionResponse(tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Spend godoc
//
//	@Summary		Spend coins
//	@Description	Debit coins in the order monthly allowance, subscription, permanent. Premium users are not charged.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SpendRequestDTO	true	"Spend request payload"
//	@Success		200		{object}	dto.SpendResponseDTO
//	@Failure		400		{object}	utils.Response		"Invalid request body"
//	@Failure		401		{object}	utils.Response		"User not authorized"
//	@Failure		402		{object}	dto.SpendResponseDTO	"Insufficient balance"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/user/coins/spend [post]
func (h *CoinHandler) Spend(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.SpendRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil || !req.Amount.IsPositive() {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.coinService.Spend(r.Context(), userID, domain.SpendRequest{
		Amount:      req.Amount,
		Type:        domain.TxSpent,
		Description: req.Description,
		FeatureUsed: req.Feature,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	if !result.Allowed {
		utils.RespondWithJSON(w, http.StatusPaymentRequired, dto.NewSpendResponse(result))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewSpendResponse(result))
}

// Refill godoc
//
//	@Summary		Apply the monthly allowance rollover
//	@Description	Resets the free monthly allowance when a new calendar month has started. Safe to call repeatedly.
//	@Tags			Coins
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.RefillResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/coins/refill [post]
func (h *CoinHandler) Refill(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	refilled, err := h.coinService.CheckAndApplyMonthlyRefill(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	balance, err := h.coinService.GetBalance(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefillResponseDTO{
		Refilled: refilled,
		Balance:  dto.NewBalanceResponse(balance),
	})
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, coinservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, coinservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
