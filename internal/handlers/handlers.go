package handlers

import (
	"net/http"

	_ "github.com/pagemint/pagemint/docs"
	authhandlers "github.com/pagemint/pagemint/internal/handlers/auth"
	instanceshandlers "github.com/pagemint/pagemint/internal/handlers/instances"
	toolshandlers "github.com/pagemint/pagemint/internal/handlers/tools"
	wallethandlers "github.com/pagemint/pagemint/internal/handlers/wallet"
	"github.com/pagemint/pagemint/internal/service"
	"github.com/pagemint/pagemint/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type ToolsHandler interface {
	GetTools(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	GetInstances(w http.ResponseWriter, r *http.Request)
}

type InstancesHandler interface {
	Delete(w http.ResponseWriter, r *http.Request)
	GetQR(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler      AuthHandler
	WalletHandler    WalletHandler
	ToolsHandler     ToolsHandler
	InstancesHandler InstancesHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:      authhandlers.New(s.AuthService),
		WalletHandler:    wallethandlers.New(s.BillingService),
		ToolsHandler:     toolshandlers.New(s.ProvisionService, s.GenerationService, s.PublishService, s.CatalogService),
		InstancesHandler: instanceshandlers.New(s.CatalogService, s.QRService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/client", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Get("/transactions", h.WalletHandler.GetTransactions)
		})
	})
	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/api/tools", func(r chi.Router) {
			r.Get("/", h.ToolsHandler.GetTools)
			r.Route("/{toolID}", func(r chi.Router) {
				r.Post("/generate", h.ToolsHandler.Generate)
				r.Post("/publish", h.ToolsHandler.Publish)
				r.Get("/instances", h.ToolsHandler.GetInstances)
			})
		})
		r.Route("/api/instances/{instanceID}", func(r chi.Router) {
			r.Delete("/", h.InstancesHandler.Delete)
			r.Get("/qr", h.InstancesHandler.GetQR)
		})
	})

	return r
}
