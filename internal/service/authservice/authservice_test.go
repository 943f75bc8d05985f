package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pagemint/pagemint/internal/domain"
	"github.com/pagemint/pagemint/internal/handlers/wallet"
	"github.com/pagemint/pagemint/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *wallet.MockService, *auth.MockHashServiceInterface, *auth.MockJWTServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	billing := wallet.NewMockService(ctrl)
	hash := auth.NewMockHashServiceInterface(ctrl)
	jwt := auth.NewMockJWTServiceInterface(ctrl)
	service := New(repo, billing, hash, jwt, 5)
	defer ctrl.Finish()
	return service, repo, billing, hash, jwt
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful registration", func(t *testing.T) {
		service, repo, billing, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "alice").Return(nil, nil)
		hash.EXPECT().HashPassword("password123").Return("hashed", nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Client) (*domain.Client, error) {
				assert.Equal(t, "alice", c.Login)
				assert.Equal(t, "hashed", c.PasswordHash)
				assert.Equal(t, "alice", c.DisplayName)
				assert.NotEmpty(t, c.ReferralCode)
				assert.Nil(t, c.ReferredBy)
				c.ID = 1
				return c, nil
			})
		billing.EXPECT().CreateWallet(ctx, 1).Return(&domain.Wallet{ClientID: 1}, nil)

		client, err := service.Register(ctx, "alice", "password123", "")

		assert.NoError(t, err)
		assert.Equal(t, "alice", client.Login)
	})

	t.Run("Referral code credits the referrer", func(t *testing.T) {
		service, repo, billing, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "bob").Return(nil, nil)
		hash.EXPECT().HashPassword("password123").Return("hashed", nil)
		repo.EXPECT().FindByReferralCode(ctx, "A1B2C3D4E5").Return(&domain.Client{ID: 9, Login: "alice"}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Client) (*domain.Client, error) {
				assert.NotNil(t, c.ReferredBy)
				assert.Equal(t, 9, *c.ReferredBy)
				c.ID = 2
				return c, nil
			})
		billing.EXPECT().CreateWallet(ctx, 2).Return(&domain.Wallet{ClientID: 2}, nil)
		billing.EXPECT().CreditReferral(ctx, 9, 5.0, "bob").Return(nil)

		_, err := service.Register(ctx, "bob", "password123", "A1B2C3D4E5")

		assert.NoError(t, err)
	})

	t.Run("Unknown referral code ignored", func(t *testing.T) {
		service, repo, billing, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "bob").Return(nil, nil)
		hash.EXPECT().HashPassword("password123").Return("hashed", nil)
		repo.EXPECT().FindByReferralCode(ctx, "WRONG").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Client) (*domain.Client, error) {
				assert.Nil(t, c.ReferredBy)
				c.ID = 2
				return c, nil
			})
		billing.EXPECT().CreateWallet(ctx, 2).Return(&domain.Wallet{ClientID: 2}, nil)

		_, err := service.Register(ctx, "bob", "password123", "WRONG")

		assert.NoError(t, err)
	})

	t.Run("Referral credit failure does not fail registration", func(t *testing.T) {
		service, repo, billing, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "bob").Return(nil, nil)
		hash.EXPECT().HashPassword("password123").Return("hashed", nil)
		repo.EXPECT().FindByReferralCode(ctx, "A1B2C3D4E5").Return(&domain.Client{ID: 9}, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Client) (*domain.Client, error) {
				c.ID = 2
				return c, nil
			})
		billing.EXPECT().CreateWallet(ctx, 2).Return(&domain.Wallet{ClientID: 2}, nil)
		billing.EXPECT().CreditReferral(ctx, 9, 5.0, "bob").Return(errors.New("credit failed"))

		_, err := service.Register(ctx, "bob", "password123", "A1B2C3D4E5")

		assert.NoError(t, err)
	})

	t.Run("Login already taken", func(t *testing.T) {
		service, repo, _, _, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "alice").Return(&domain.Client{ID: 1, Login: "alice"}, nil)

		_, err := service.Register(ctx, "alice", "password123", "")

		assert.EqualError(t, err, "login already taken")
	})

	t.Run("Wallet creation failure", func(t *testing.T) {
		service, repo, billing, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "alice").Return(nil, nil)
		hash.EXPECT().HashPassword("password123").Return("hashed", nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c *domain.Client) (*domain.Client, error) {
				c.ID = 1
				return c, nil
			})
		billing.EXPECT().CreateWallet(ctx, 1).Return(nil, errors.New("db down"))

		_, err := service.Register(ctx, "alice", "password123", "")

		assert.Error(t, err)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful authentication", func(t *testing.T) {
		service, repo, _, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "alice").Return(&domain.Client{ID: 1, Login: "alice", PasswordHash: "hashed"}, nil)
		hash.EXPECT().ComparePassword("hashed", "password123").Return(true)

		client, err := service.Authenticate(ctx, "alice", "password123")

		assert.NoError(t, err)
		assert.Equal(t, 1, client.ID)
	})

	t.Run("Unknown login", func(t *testing.T) {
		service, repo, _, _, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "ghost").Return(nil, nil)

		_, err := service.Authenticate(ctx, "ghost", "password123")

		assert.EqualError(t, err, "invalid credentials")
	})

	t.Run("Wrong password", func(t *testing.T) {
		service, repo, _, hash, _ := NewMock(t)

		repo.EXPECT().FindByLogin(ctx, "alice").Return(&domain.Client{ID: 1, PasswordHash: "hashed"}, nil)
		hash.EXPECT().ComparePassword("hashed", "wrong").Return(false)

		_, err := service.Authenticate(ctx, "alice", "wrong")

		assert.EqualError(t, err, "invalid credentials")
	})
}

func TestService_GenerateToken(t *testing.T) {
	t.Run("Successful generation", func(t *testing.T) {
		service, _, _, _, jwt := NewMock(t)

		jwt.EXPECT().GenerateJWT(1, gomock.Any()).Return("token", nil)

		token, err := service.GenerateToken(1)

		assert.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("Generation failure", func(t *testing.T) {
		service, _, _, _, jwt := NewMock(t)

		jwt.EXPECT().GenerateJWT(1, gomock.Any()).Return("", errors.New("error"))

		_, err := service.GenerateToken(1)

		assert.Error(t, err)
	})
}
