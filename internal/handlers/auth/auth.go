package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/dto"
	"github.com/GlebRadaev/bonusledger/internal/handlers/respond"
	"github.com/GlebRadaev/bonusledger/internal/service/authservice"
	"github.com/GlebRadaev/bonusledger/pkg/utils"
	"github.com/GlebRadaev/bonusledger/pkg/validate"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=auth

const codePhoneTaken = "phone_taken"

type Service interface {
	Register(ctx context.Context, phone, password string) (*domain.User, error)
	Authenticate(ctx context.Context, phone, password string) (*domain.User, error)
	GenerateToken(userID int) (string, error)
}

type AuthHandler struct {
	authService Service
	validator   *validate.Validator
}

func New(authService Service, validator *validate.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// Register godoc
//
//	@Summary		Register a new customer
//	@Description	Create a customer account with phone and password. The token is returned in the Authorization header.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		200		{object}	dto.RegisterResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Phone already registered"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if !respond.Decode(w, r, h.validator, &req) {
		return
	}
	user, err := h.authService.Register(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrPhoneTaken) {
			utils.RespondWithCode(w, http.StatusConflict, codePhoneTaken, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.RegisterResponseDTO{
		Message: "User successfully registered",
		UserID:  user.ID,
	})
}

// Login godoc
//
//	@Summary		Authenticate customer
//	@Description	Log in with phone and password and get a JWT token in the Authorization header
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.LoginResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if !respond.Decode(w, r, h.validator, &req) {
		return
	}
	user, err := h.authService.Authenticate(r.Context(), req.Phone, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.LoginResponseDTO{
		Message: "User successfully authenticated",
	})
}
