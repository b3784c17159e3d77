// Package respond turns ledger errors into API responses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
	"github.com/GlebRadaev/bonusledger/pkg/validate"
)

var statusByCode = map[string]int{
	domain.CodeValidation:           http.StatusBadRequest,
	domain.CodeMissingParentReceipt: http.StatusBadRequest,
	domain.CodeDuplicateReceipt:     http.StatusConflict,
	domain.CodeReceiptRefunded:      http.StatusConflict,
	domain.CodeReceiptNotFound:      http.StatusNotFound,
	domain.CodeUserNotFound:         http.StatusNotFound,
	domain.CodeInsufficientBalance:  http.StatusPaymentRequired,
	domain.CodeDebitCapExceeded:     http.StatusUnprocessableEntity,
}

// Status is the HTTP status for err.
func Status(err error) int {
	if status, ok := statusByCode[domain.CodeOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func Error(w http.ResponseWriter, err error) {
	code := domain.CodeOf(err)
	if code == domain.CodeInternal {
		utils.RespondWithCode(w, http.StatusInternalServerError, code, "Internal server error")
		return
	}

	body := utils.Response{Message: err.Error(), Code: code}
	var capErr *domain.CapExceededError
	if errors.As(err, &capErr) {
		maxAllowed := capErr.MaxAllowed.String()
		body.MaxAllowed = &maxAllowed
	}
	utils.RespondWithJSON(w, Status(err), body)
}

// Decode reads a JSON body into dst and validates it. On failure the
// response is already written and false is returned.
func Decode(w http.ResponseWriter, r *http.Request, v *validate.Validator, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondWithCode(w, http.StatusBadRequest, domain.CodeValidation, "Invalid request body")
		return false
	}
	if err := v.Validate(dst); err != nil {
		utils.RespondWithCode(w, http.StatusBadRequest, domain.CodeValidation, err.Error())
		return false
	}
	return true
}
