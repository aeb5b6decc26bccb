package purchases

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	"github.com/GlebRadaev/lwcoin/internal/dto"
	"github.com/GlebRadaev/lwcoin/internal/service/purchaseservice"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/GlebRadaev/lwcoin/pkg/utils"
	"github.com/GlebRadaev/lwcoin/pkg/validate"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=purchases.go -destination=mock_purchases.go -package=purchases

const SignatureHeader = "X-Signature"

type Service interface {
	VerifyStorePurchase(ctx context.Context, userID int, receipt domain.StoreReceipt) (*domain.PurchaseResult, error)
	RegisterPayment(ctx context.Context, userID int, paymentID string, amount decimal.Decimal) (*domain.PendingPayment, error)
	HandlePaymentWebhook(ctx context.Context, event domain.PaymentEvent) (*domain.PurchaseResult, error)
}

type PurchaseHandler struct {
	purchaseService Service
	webhookSecret   []byte
}

func New(purchaseService Service, webhookSecret string) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		webhookSecret:   []byte(webhookSecret),
	}
}

// VerifyGoogle godoc
//
//	@Summary		Verify a Google Play purchase
//	@Description	Validates the purchase token and credits the product once. Replays answer already_verified.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GooglePurchaseRequestDTO	true	"Google Play receipt"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	dto.PurchaseResponseDTO	"Invalid receipt or unknown product"
//	@Failure		502		{object}	utils.Response			"Store validation unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchases/google [post]
func (h *PurchaseHandler) VerifyGoogle(w http.ResponseWriter, r *http.Request) {
	var req dto.GooglePurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.verify(w, r, domain.StoreReceipt{
		Platform:   domain.PlatformGoogle,
		Token:      req.PurchaseToken,
		ProductID:  req.ProductID,
		IsRestored: req.IsRestored,
	})
}

// VerifyApple godoc
//
//	@Summary		Verify an App Store purchase
//	@Description	Validates the transaction and credits the product once. Replays answer already_verified.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplePurchaseRequestDTO	true	"App Store transaction"
//	@Success		200		{object}	dto.PurchaseResponseDTO
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		422		{object}	dto.PurchaseResponseDTO	"Invalid receipt or unknown product"
//	@Failure		502		{object}	utils.Response			"Store validation unavailable"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/user/purchases/apple [post]
func (h *PurchaseHandler) VerifyApple(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplePurchaseRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.verify(w, r, domain.StoreReceipt{
		Platform:   domain.PlatformApple,
		Token:      req.TransactionID,
		ProductID:  req.ProductID,
		IsRestored: req.IsRestored,
	})
}

func (h *PurchaseHandler) verify(w http.ResponseWriter, r *http.Request, receipt domain.StoreReceipt) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	result, err := h.purchaseService.VerifyStorePurchase(r.Context(), userID, receipt)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrValidatorFailed):
			utils.RespondWithError(w, http.StatusBadGateway, "Store validation unavailable")
		case errors.Is(err, purchaseservice.ErrInvalidPlatform), errors.Is(err, purchaseservice.ErrMissingKey):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	switch result.Status {
	case domain.OutcomeInvalid, domain.OutcomeInvalidPackage:
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, dto.NewPurchaseResponse(result))
	default:
		utils.RespondWithJSON(w, http.StatusOK, dto.NewPurchaseResponse(result))
	}
}

// RegisterPayment godoc
//
//	@Summary		Register a bot payment
//	@Description	Records a pending payment for the linked Telegram account before the provider confirms it.
//	@Tags			Purchases
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment intent"
//	@Success		201		{object}	dto.PaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		409		{object}	utils.Response	"Payment already registered"
//	@Failure		422		{object}	utils.Response	"Amount does not match a package or telegram not linked"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payments [post]
func (h *PurchaseHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payment, err := h.purchaseService.RegisterPayment(r.Context(), userID, req.PaymentID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrPaymentExists):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, purchaseservice.ErrUnmappedAmount), errors.Is(err, purchaseservice.ErrTelegramNotLinked):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, purchaseservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.PaymentResponseDTO{
		PaymentID: payment.PaymentID,
		Amount:    payment.Amount,
		Status:    string(payment.Status),
		CreatedAt: payment.CreatedAt,
	})
}

// PaymentWebhook godoc
//
//	@Summary		Payment provider notification
//	@Description	Body must be signed with HMAC-SHA256 in the X-Signature header (hex). Completed payments are credited once.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			X-Signature	header		string					true	"hex HMAC-SHA256 of the body"
//	@Param			request		body		dto.PaymentWebhookDTO	true	"Payment event"
//	@Success		200			{object}	dto.PurchaseResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		401			{object}	utils.Response	"Invalid signature"
//	@Failure		404			{object}	utils.Response	"Unknown payer"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/payments [post]
func (h *PurchaseHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if !h.validSignature(body, r.Header.Get(SignatureHeader)) {
		zap.L().Warn("payment webhook with invalid signature", zap.String("remote", r.RemoteAddr))
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid signature")
		return
	}

	var req dto.PaymentWebhookDTO
	if err := json.Unmarshal(body, &req); err != nil || validate.Struct(req) != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.purchaseService.HandlePaymentWebhook(r.Context(), domain.PaymentEvent{
		OrderID:    req.OrderID,
		Amount:     req.Amount,
		TelegramID: req.TelegramID,
		Status:     req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, purchaseservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Unknown payer")
		case errors.Is(err, purchaseservice.ErrMissingKey):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPurchaseResponse(result))
}

// Sign returns the hex HMAC-SHA256 of body, as the provider sends it.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (h *PurchaseHandler) validSignature(body []byte, signature string) bool {
	if signature == "" || len(h.webhookSecret) == 0 {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, h.webhookSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
