package service

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/pagemint/pagemint/internal/cache"
	"github.com/pagemint/pagemint/internal/config"
	"github.com/pagemint/pagemint/internal/pg"
	"github.com/pagemint/pagemint/internal/repo"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()
	repos := repo.New(mockDB, pg.NewMockTXManager(ctrl))

	cfg := &config.Config{
		Redis:          "localhost:6379",
		PublicHost:     "pagemint.app",
		TextGenModels:  "mint-large,mint-base",
		ReferralReward: 5,
	}

	services := New(repos, cfg, cache.New(cfg))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BillingService)
	assert.NotNil(t, services.ProvisionService)
	assert.NotNil(t, services.GenerationService)
	assert.NotNil(t, services.PublishService)
	assert.NotNil(t, services.CatalogService)
	assert.NotNil(t, services.QRService)
}
