package pos

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/internal/handlers/respond"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
	"github.com/GlebRadaev/bonusledger/pkg/validate"
)

//go:generate mockgen -source=pos.go -destination=mock_pos.go -package=pos

type Service interface {
	CreditBonus(ctx context.Context, userID int, purchaseAmount decimal.Decimal, receiptID string) (*domain.CreditResult, error)
	DebitBonus(ctx context.Context, userID int, amount decimal.Decimal, receiptID, parentReceiptID string) (*domain.DebitResult, error)
	RefundBonusByReceipt(ctx context.Context, userID int, refundReceiptID, parentReceiptID string, refundPurchaseAmount decimal.Decimal) (*domain.RefundResult, error)
	CreditPromotionalBonus(ctx context.Context, userID int, amount decimal.Decimal, expiresAt *time.Time) (*domain.PromotionResult, error)
	Recalculate(ctx context.Context, userID int) (domain.BalanceSnapshot, error)
}

// POSHandler serves the point-of-sale integration. Callers are trusted
// systems authenticated by API key.
type POSHandler struct {
	ledgerService Service
	validator     *validate.Validator
}

func New(ledgerService Service, validator *validate.Validator) *POSHandler {
	return &POSHandler{
		ledgerService: ledgerService,
		validator:     validator,
	}
}

func userIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		respond.Error(w, domain.Validationf("user id must be a positive integer"))
		return 0, false
	}
	return userID, true
}

// Credit godoc
//
//	@Summary		Credit cashback for a purchase
//	@Description	Idempotent per receipt: repeating a receipt returns the original credit with duplicate=true.
//	@Tags			POS
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"Customer id"
//	@Param			request	body		dto.CreditRequestDTO	true	"Purchase receipt"
//	@Success		200		{object}	dto.CreditResponseDTO
//	@Failure		400		{object}	utils.Response	"validation_error"
//	@Failure		401		{object}	utils.Response	"Invalid API key"
//	@Failure		404		{object}	utils.Response	"user_not_found"
//	@Failure		409		{object}	utils.Response	"duplicate_receipt"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pos/users/{userID}/credit [post]
func (h *POSHandler) Credit(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var req dto.CreditRequestDTO
	if !respond.Decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.ledgerService.CreditBonus(r.Context(), userID, req.PurchaseAmount, req.ReceiptID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditResponseDTO{
		EntryID:     res.Entry.ID,
		BonusAmount: res.Entry.Amount,
		Balance:     res.Balance,
		Duplicate:   res.Duplicate,
	})
}

// Debit godoc
//
//	@Summary		Pay part of a purchase with bonus
//	@Description	Debits are capped per purchase receipt; the error body carries max_allowed when the cap is hit.
//	@Tags			POS
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int					true	"Customer id"
//	@Param			request	body		dto.DebitRequestDTO	true	"Debit against a purchase receipt"
//	@Success		200		{object}	dto.DebitResponseDTO
//	@Failure		400		{object}	utils.Response	"validation_error, missing_parent_receipt"
//	@Failure		402		{object}	utils.Response	"insufficient_balance"
//	@Failure		404		{object}	utils.Response	"receipt_not_found, user_not_found"
//	@Failure		409		{object}	utils.Response	"duplicate_receipt, receipt_refunded"
//	@Failure		422		{object}	utils.Response	"debit_cap_exceeded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pos/users/{userID}/debit [post]
func (h *POSHandler) Debit(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var req dto.DebitRequestDTO
	if !respond.Decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.ledgerService.DebitBonus(r.Context(), userID, req.Amount, req.ReceiptID, req.ParentReceiptID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DebitResponseDTO{
		Amount:       res.Amount,
		Balance:      res.Balance,
		CapRemaining: res.CapRemaining,
		Duplicate:    res.Duplicate,
	})
}

// Refund godoc
//
//	@Summary		Refund a purchase
//	@Description	Reverses cashback in proportion to the refunded amount and returns bonus debited against the receipt.
//	@Tags			POS
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"Customer id"
//	@Param			request	body		dto.RefundRequestDTO	true	"Refund receipt"
//	@Success		200		{object}	dto.RefundResponseDTO
//	@Failure		400		{object}	utils.Response	"validation_error"
//	@Failure		404		{object}	utils.Response	"receipt_not_found, user_not_found"
//	@Failure		409		{object}	utils.Response	"duplicate_receipt, receipt_refunded"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pos/users/{userID}/refund [post]
func (h *POSHandler) Refund(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var req dto.RefundRequestDTO
	if !respond.Decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.ledgerService.RefundBonusByReceipt(r.Context(), userID, req.RefundReceiptID, req.ParentReceiptID, req.RefundPurchaseAmount)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RefundResponseDTO{
		RefundEntryID:       res.RefundEntry.ID,
		ReversedAmount:      res.RefundEntry.Amount.Neg(),
		ReturnedDebitAmount: res.ReturnedDebitAmount,
		Balance:             res.Balance,
		NetPurchaseAmount:   res.NetPurchaseAmount,
		Duplicate:           res.Duplicate,
	})
}

// Promotion godoc
//
//	@Summary		Grant promotional bonus
//	@Description	Promotional points are spent before regular ones and stop counting after expires_at.
//	@Tags			POS
//	@Security		APIKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int						true	"Customer id"
//	@Param			request	body		dto.PromotionRequestDTO	true	"Promotion"
//	@Success		200		{object}	dto.PromotionResponseDTO
//	@Failure		400		{object}	utils.Response	"validation_error"
//	@Failure		404		{object}	utils.Response	"user_not_found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pos/users/{userID}/promotions [post]
func (h *POSHandler) Promotion(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	var req dto.PromotionRequestDTO
	if !respond.Decode(w, r, h.validator, &req) {
		return
	}

	res, err := h.ledgerService.CreditPromotionalBonus(r.Context(), userID, req.Amount, req.ExpiresAt)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PromotionResponseDTO{
		EntryID:   res.Entry.ID,
		Amount:    res.Entry.Amount,
		ExpiresAt: res.Entry.ExpiresAt,
		Balance:   res.Balance,
	})
}

// Recalculate godoc
//
//	@Summary		Rebuild a customer's cached balance
//	@Description	Replays the ledger and stores the result. Safe to repeat.
//	@Tags			POS
//	@Security		APIKeyAuth
//	@Produce		json
//	@Param			userID	path		int	true	"Customer id"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		404		{object}	utils.Response	"user_not_found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pos/users/{userID}/recalculate [post]
func (h *POSHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.ledgerService.Recalculate(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		Balance:            snapshot.Total,
		RegularBalance:     snapshot.Regular,
		PromotionalBalance: snapshot.Promotional,
	})
}
