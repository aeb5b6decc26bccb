package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/lwcoin/internal/domain"
	userrepo "github.com/GlebRadaev/lwcoin/internal/repo/user-repo"
	"github.com/GlebRadaev/lwcoin/pkg/auth"
	"github.com/GlebRadaev/lwcoin/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	FindByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	LinkTelegram(ctx context.Context, userID int, telegramID int64) error
}

// Bonuses grants the one-off sign-up rewards.
type Bonuses interface {
	GrantRegistrationBonus(ctx context.Context, userID int) error
	GrantReferralBonus(ctx context.Context, referrerID, referredID int) error
}

var (
	ErrLoginTaken          = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidReferralCode = errors.New("invalid referral code")
	ErrTelegramTaken       = errors.New("telegram account already linked to another user")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	userRepo    Repo
	bonuses     Bonuses
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	now         func() time.Time
}

func New(repo Repo, bonuses Bonuses, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		bonuses:     bonuses,
		hashService: hashService,
		jwtService:  jwtService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Register creates the account and then grants the registration bonus and,
// with a valid referral code, the referrer's bonus. Bonus failures are logged
// and never fail the registration.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.User, error) {
	var referrer *domain.User
	if referralCode != "" {
		if !validate.IsLuhn(referralCode) {
			return nil, ErrInvalidReferralCode
		}
		found, err := s.userRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			zap.L().Error("can't find referrer", zap.Error(err))
			return nil, err
		}
		if found == nil {
			return nil, ErrInvalidReferralCode
		}
		referrer = found
	}

	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		Login:             login,
		PasswordHash:      hashedPassword,
		ReferralCode:      validate.NewReferralCode(),
		CurrentMonthStart: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
	}
	if referrer != nil {
		user.ReferredBy = &referrer.ID
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if errors.Is(err, userrepo.ErrDuplicateLogin) {
		zap.L().Info("user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}

	if err := s.bonuses.GrantRegistrationBonus(ctx, newUser.ID); err != nil {
		zap.L().Warn("registration bonus not granted", zap.Int("user_id", newUser.ID), zap.Error(err))
	}
	if referrer != nil {
		if err := s.bonuses.GrantReferralBonus(ctx, referrer.ID, newUser.ID); err != nil {
			zap.L().Warn("referral bonus not granted",
				zap.Int("referrer_id", referrer.ID),
				zap.Int("user_id", newUser.ID),
				zap.Error(err))
		}
	}

	zap.L().Info("user successfully registered", zap.String("login", login))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// LinkTelegram attaches a telegram account so bot payments can be matched to
// the user. Relinking the same account is a no-op.
func (s *Service) LinkTelegram(ctx context.Context, userID int, telegramID int64) error {
	owner, err := s.userRepo.FindByTelegramID(ctx, telegramID)
	if err != nil {
		zap.L().Error("can't find telegram owner", zap.Error(err))
		return err
	}
	if owner != nil {
		if owner.ID == userID {
			return nil
		}
		return ErrTelegramTaken
	}
	return s.userRepo.LinkTelegram(ctx, userID, telegramID)
}
