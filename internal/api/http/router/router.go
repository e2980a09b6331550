package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpctx "github.com/openshelf/openshelf-server/internal/api/http/context"
	"github.com/openshelf/openshelf-server/internal/api/http/handler"
	"github.com/openshelf/openshelf-server/internal/api/http/middleware"
	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
	"github.com/openshelf/openshelf-server/internal/service"
)

// Pinger reports storage liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router assembles the HTTP route tree: handlers, per-route token
// policies and the ambient middleware.
type Router struct {
	authService    *service.Auth
	catalogService *service.Catalog
	guard          *service.Guard
	pinger         Pinger
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	catalogService *service.Catalog,
	guard *service.Guard,
	pinger Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		catalogService: catalogService,
		guard:          guard,
		pinger:         pinger,
		logger:         logger,
	}
}

// Register builds the chi router with all routes and middleware.
func (rt *Router) Register() http.Handler {
	logging := middleware.NewLogging(rt.logger)
	metrics := middleware.NewMetrics()
	authenticate := middleware.NewAuthenticate(rt.guard, httpctx.NewManager(), rt.logger)

	requireAccess := authenticate.Require(model.TokenPolicy{Kind: model.TokenKindAccess})
	requireFresh := authenticate.Require(model.TokenPolicy{Kind: model.TokenKindAccess, RequireFresh: true})
	requireAdmin := authenticate.Require(model.TokenPolicy{Kind: model.TokenKindAccess, RequireAdmin: true})

	authHandler := handler.NewAuth(rt.authService, rt.logger)
	storeHandler := handler.NewStore(rt.catalogService, rt.logger)
	itemHandler := handler.NewItem(rt.catalogService, rt.logger)
	tagHandler := handler.NewTag(rt.catalogService, rt.logger)

	r := chi.NewRouter()
	r.Use(metrics.Handle)
	r.Use(logging.Handle)

	r.Get("/ping", rt.ping)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/refresh", authHandler.Refresh)
	r.Post("/logout", authHandler.Logout)

	r.Group(func(r chi.Router) {
		r.Use(requireAccess)

		r.Get("/store", storeHandler.List)
		r.Post("/store", storeHandler.Create)
		r.Get("/store/{storeID}", storeHandler.Get)
		r.Get("/store/{storeID}/item", itemHandler.ListByStore)
		r.Get("/store/{storeID}/tag", tagHandler.ListByStore)
		r.Post("/store/{storeID}/tag", tagHandler.Create)

		r.Get("/item", itemHandler.List)
		r.Get("/item/{itemID}", itemHandler.Get)
		r.Put("/item/{itemID}", itemHandler.Update)
		r.Get("/item/{itemID}/tag", tagHandler.ListByItem)
		r.Post("/item/{itemID}/tag/{tagID}", tagHandler.Attach)
		r.Delete("/item/{itemID}/tag/{tagID}", tagHandler.Detach)

		r.Get("/tag/{tagID}", tagHandler.Get)
		r.Get("/tag/{tagID}/item", tagHandler.ListItems)
		r.Delete("/tag/{tagID}", tagHandler.Delete)
	})

	// Item creation needs a fresh token; destructive admin operations an
	// admin one.
	r.With(requireFresh).Post("/item", itemHandler.Create)
	r.With(requireAdmin).Delete("/item/{itemID}", itemHandler.Delete)
	r.With(requireAdmin).Delete("/store/{storeID}", storeHandler.Delete)

	return r
}

func (rt *Router) ping(w http.ResponseWriter, r *http.Request) {
	if err := rt.pinger.Ping(r.Context()); err != nil {
		rt.logger.Error("Router: storage ping failed", "error", err.Error())
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
