package bonus

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/internal/handlers/respond"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/internal/tier"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
)

//go:generate mockgen -source=bonus.go -destination=mock_bonus.go -package=bonus

type Service interface {
	GetBonusInfo(ctx context.Context, userID int) (*domain.BonusInfo, error)
	GetHistory(ctx context.Context, userID, limit, offset int) (*domain.History, error)
	Tiers() []tier.Tier
}

type BonusHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BonusHandler {
	return &BonusHandler{
		ledgerService: ledgerService,
	}
}

// GetBonus godoc
//
//	@Summary		Get bonus balance and tier
//	@Description	Balance split into regular and promotional points, current tier and progress towards the next one.
//	@Tags			Bonus
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BonusInfoResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bonus [get]
func (h *BonusHandler) GetBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	info, err := h.ledgerService.GetBonusInfo(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BonusInfoResponseDTO{
		Balance:            info.Balance.Total,
		RegularBalance:     info.Balance.Regular,
		PromotionalBalance: info.Balance.Promotional,
		Tier:               info.TierName,
		CashbackPercent:    info.CashbackPercent,
		NetPurchaseAmount:  info.NetPurchaseAmount,
		NextTier:           info.NextTierName,
		NextTierMinAmount:  info.NextTierMinAmount,
		ProgressPercent:    info.ProgressPercent,
	})
}

// GetHistory godoc
//
//	@Summary		Get bonus history
//	@Description	Entries shown to the customer, newest first.
//	@Tags			Bonus
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size, 1..100"	default(20)
//	@Param			offset	query		int	false	"Entries to skip"	default(0)
//	@Success		200		{object}	dto.HistoryResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid paging parameters"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/bonus/history [get]
func (h *BonusHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		respond.Error(w, domain.Validationf("limit must be an integer"))
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respond.Error(w, domain.Validationf("offset must be an integer"))
		return
	}

	history, err := h.ledgerService.GetHistory(r.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(w, err)
		return
	}
	if limit == 0 {
		limit = ledgerservice.DefaultHistoryLimit
	}

	entries := make([]dto.EntryDTO, len(history.Entries))
	for i, e := range history.Entries {
		entries[i] = entryDTO(e)
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HistoryResponseDTO{
		Entries: entries,
		Total:   history.Total,
		Limit:   limit,
		Offset:  offset,
	})
}

// GetTiers godoc
//
//	@Summary		List loyalty tiers
//	@Description	Static tier table: thresholds on net purchase amount and cashback percents.
//	@Tags			Bonus
//	@Produce		json
//	@Success		200	{array}	dto.TierDTO
//	@Router			/api/tiers [get]
func (h *BonusHandler) GetTiers(w http.ResponseWriter, r *http.Request) {
	tiers := h.ledgerService.Tiers()
	response := make([]dto.TierDTO, len(tiers))
	for i, t := range tiers {
		response[i] = dto.TierDTO{
			Name:              t.Name,
			CashbackPercent:   t.CashbackPercent,
			MinPurchaseAmount: t.MinPurchaseAmount,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func queryInt(r *http.Request, key string) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}

func entryDTO(e domain.Entry) dto.EntryDTO {
	out := dto.EntryDTO{
		ID:              e.ID,
		Amount:          e.Amount,
		Kind:            string(e.Kind),
		Status:          string(e.Status),
		ReceiptID:       e.ReceiptID,
		ParentReceiptID: e.ParentReceiptID,
		ExpiresAt:       e.ExpiresAt,
		CreatedAt:       e.CreatedAt,
	}
	if e.PurchaseAmount.Valid {
		purchase := e.PurchaseAmount.Decimal
		out.PurchaseAmount = &purchase
	}
	return out
}
