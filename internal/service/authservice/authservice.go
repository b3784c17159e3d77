package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

const DefaultTokenTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

type Repo interface {
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	tokenTTL    time.Duration
	now         func() time.Time
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

// Register creates a customer account. The balance starts at zero and is
// derived from the ledger from then on.
func (s *Service) Register(ctx context.Context, phone, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("phone already registered", zap.String("phone", phone))
		return nil, domain.ErrPhoneTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	newUser, err := s.userRepo.Create(ctx, &domain.User{
		Phone:        phone,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.Int("user_id", newUser.ID))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, phone, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil || !s.hashService.ComparePassword(user.PasswordHash, password) {
		zap.L().Info("invalid credentials", zap.String("phone", phone))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.Int("user_id", user.ID))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
