package service

import (
	"github.com/pagemint/pagemint/internal/handlers/auth"
	"github.com/pagemint/pagemint/internal/handlers/instances"
	"github.com/pagemint/pagemint/internal/handlers/tools"
	"github.com/pagemint/pagemint/internal/handlers/wallet"

	pkgauth "github.com/pagemint/pagemint/pkg/auth"
	"github.com/pagemint/pagemint/pkg/clients"

	"github.com/pagemint/pagemint/internal/cache"
	"github.com/pagemint/pagemint/internal/config"
	"github.com/pagemint/pagemint/internal/qr"
	"github.com/pagemint/pagemint/internal/repo"
	authservice "github.com/pagemint/pagemint/internal/service/authservice"
	billingservice "github.com/pagemint/pagemint/internal/service/billingservice"
	catalogservice "github.com/pagemint/pagemint/internal/service/catalogservice"
	generationservice "github.com/pagemint/pagemint/internal/service/generationservice"
	provisionservice "github.com/pagemint/pagemint/internal/service/provisionservice"
	publishservice "github.com/pagemint/pagemint/internal/service/publishservice"
	qrservice "github.com/pagemint/pagemint/internal/service/qrservice"
	"github.com/pagemint/pagemint/internal/storage"
	"github.com/pagemint/pagemint/internal/textgen"
)

type Services struct {
	AuthService       auth.Service
	BillingService    wallet.Service
	ProvisionService  tools.ProvisionService
	GenerationService tools.GenerationService
	PublishService    tools.PublishService
	// CatalogService stays concrete: the tools and instances handlers
	// each take their own slice of it.
	CatalogService *catalogservice.Service
	QRService      instances.QRService
}

func New(repo *repo.Repositories, cfg *config.Config, advisory *cache.Cache) *Services {
	storageClient := storage.New(cfg, clients.NewHTTPClient())
	textgenClient := textgen.New(cfg, clients.NewHTTPClient())
	qrClient := qr.New(cfg, clients.NewHTTPClient())

	billingService := billingservice.New(repo.WalletRepo, repo.TxnRepo, advisory)
	authService := authservice.New(repo.ClientRepo, billingService, &pkgauth.HashService{}, &pkgauth.JWTService{}, cfg.ReferralReward)
	provisionService := provisionservice.New(repo.InstanceRepo, repo.ToolRepo, advisory, billingService)
	generationService := generationservice.New(textgenClient, cfg.Models())
	publishService := publishservice.New(storageClient, repo.InstanceRepo, repo.ClientRepo, cfg.PublicHost)
	catalogService := catalogservice.New(repo.InstanceRepo, repo.ClientRepo, storageClient, cfg.PublicHost)
	qrService := qrservice.New(qrClient)

	return &Services{
		AuthService:       authService,
		BillingService:    billingService,
		ProvisionService:  provisionService,
		GenerationService: generationService,
		PublishService:    publishService,
		CatalogService:    catalogService,
		QRService:         qrService,
	}
}
