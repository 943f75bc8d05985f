package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/handlers/wallet"
	"github.com/pagemint/pagemint/pkg/auth"
	"github.com/pagemint/pagemint/pkg/ident"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Client, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

type Service struct {
	clientRepo     Repo
	billingService wallet.Service
	hashService    auth.HashServiceInterface
	jwtService     auth.JWTServiceInterface
	referralReward float64
}

func New(repo Repo, billingService wallet.Service, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, referralReward float64) *Service {
	return &Service{
		clientRepo:     repo,
		billingService: billingService,
		hashService:    hashService,
		jwtService:     jwtService,
		referralReward: referralReward,
	}
}

// Register creates the client with a fresh referral code and an empty
// wallet. A valid referral code credits the referrer; an unknown code
// is ignored so a mistyped code cannot block registration.
func (s *Service) Register(ctx context.Context, login, password, referralCode string) (*domain.Client, error) {
	existingClient, err := s.clientRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find client: ", zap.Error(err))
		return nil, err
	}
	if existingClient != nil {
		zap.L().Info("client already exists, login: ", zap.String("login", login))
		return nil, errors.New("login already taken")
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	var referrer *domain.Client
	if referralCode != "" {
		referrer, err = s.clientRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			zap.L().Error("can't resolve referral code: ", zap.Error(err))
			return nil, err
		}
		if referrer == nil {
			zap.L().Warn("unknown referral code ignored", zap.String("code", referralCode))
		}
	}

	client := &domain.Client{
		Login:        login,
		PasswordHash: hashedPassword,
		DisplayName:  login,
		ReferralCode: ident.NewReferralCode(),
	}
	if referrer != nil {
		client.ReferredBy = &referrer.ID
	}
	newClient, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		zap.L().Error("can't create client: ", zap.Error(err))
		return nil, err
	}

	_, err = s.billingService.CreateWallet(ctx, newClient.ID)
	if err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, err
	}

	if referrer != nil && s.referralReward > 0 {
		if err := s.billingService.CreditReferral(ctx, referrer.ID, s.referralReward, login); err != nil {
			zap.L().Error("can't credit referrer: ", zap.Error(err))
		}
	}

	zap.L().Info("client successfully registered", zap.String("login", login))
	return client, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Client, error) {
	client, err := s.clientRepo.FindByLogin(ctx, login)
	if err != nil || client == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(client.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, errors.New("invalid credentials")
	}
	zap.L().Info("client successfully authenticated", zap.String("login", login))
	return client, nil
}

func (s *Service) GenerateToken(clientID int) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(clientID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
