package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	httpadapter "resume-builder/internal/adapter/http"
	repo "resume-builder/internal/adapter/repository"
	"resume-builder/internal/infrastructure/migration"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"

	"github.com/gofiber/fiber/v2"
)

func main() {
	ctx := context.Background()
	cfg := infra.LoadConfig()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	gateway := repo.NewGateway(store, slog.Default())
	session := usecase.NewSession(gateway, nil, cfg.ProUser, slog.Default())
	session.Subscribe(func(ev usecase.Event) {
		slog.Debug("resume changed", "kind", ev.Kind, "revision", ev.Revision)
	})
	<-session.LoadAsync(ctx)

	app := fiber.New()
	httpadapter.NewHandler(session).Register(app)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	if err := session.Save(ctx); err != nil {
		log.Printf("warning: final save failed: %v", err)
	}
	_ = app.Shutdown()
}

// openStore picks the configured backend. Postgres problems degrade to the
// file slot so the editor always starts.
func openStore(ctx context.Context, cfg infra.Config) (repo.Store, func()) {
	if cfg.Store == infra.StorePostgres {
		pool, err := infra.NewDocumentsPool(ctx, cfg)
		if err == nil {
			err = migration.RunMigrations(ctx, pool)
			if err == nil {
				return repo.NewPGStore(pool, cfg.Slot), pool.Close
			}
			pool.Close()
		}
		log.Printf("warning: resume DB not available, using file store: %v", err)
	}
	store, err := repo.NewFileStore(cfg.StorePath)
	if err != nil {
		log.Fatalf("file store: %v", err)
	}
	return store, func() {}
}
