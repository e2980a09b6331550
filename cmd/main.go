package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/openshelf/openshelf-server/internal/api/http/router"
	httpServer "github.com/openshelf/openshelf-server/internal/api/http/server"
	"github.com/openshelf/openshelf-server/internal/auth"
	"github.com/openshelf/openshelf-server/internal/config"
	"github.com/openshelf/openshelf-server/internal/logger"
	"github.com/openshelf/openshelf-server/internal/model"
	"github.com/openshelf/openshelf-server/internal/repository/postgres"
	"github.com/openshelf/openshelf-server/internal/revocation"
	"github.com/openshelf/openshelf-server/internal/server"
	"github.com/openshelf/openshelf-server/internal/service"
	"github.com/openshelf/openshelf-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	registry, cleanup, err := newRevocationRegistry(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize revocation registry", "error", err)
	}
	defer cleanup()

	userRepo := postgres.NewUserRepository(db)
	storeRepo := postgres.NewStoreRepository(db)
	itemRepo := postgres.NewItemRepository(db)
	tagRepo := postgres.NewTagRepository(db)

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	guard := service.NewGuard(tokenManager, registry, logger)

	authService := service.NewAuth(userRepo, hasher, tokenManager, registry, guard, logger)
	catalogService := service.NewCatalog(storeRepo, itemRepo, tagRepo, logger)

	r := router.New(authService, catalogService, guard, db, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadHeaderTimeout)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newRevocationRegistry(ctx context.Context, cfg *config.Config) (model.RevocationRegistry, func(), error) {
	switch cfg.Revocation.Driver {
	case "redis":
		r, err := revocation.NewRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	default:
		return revocation.NewMemory(time.Minute), func() {}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
