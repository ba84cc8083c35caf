package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/midlaj581/AUCTION-S7/internal/config"
	"github.com/midlaj581/AUCTION-S7/internal/httpapi"
	"github.com/midlaj581/AUCTION-S7/internal/images"
	"github.com/midlaj581/AUCTION-S7/internal/room"
	"github.com/midlaj581/AUCTION-S7/internal/store"
)

func main() {
	_ = godotenv.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	cfg := config.Default()

	var (
		roster store.RosterStore
		teams  store.TeamStore
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pgRoster, pgTeams, err := store.OpenPostgres(dsn)
		if err != nil {
			log.Fatal("postgres", zap.Error(err))
		}
		roster, teams = pgRoster, pgTeams
		log.Info("using postgres stores")
	} else {
		roster = store.NewMemoryRoster(store.SeedPlayers())
		teams = store.NewMemoryTeams(store.SeedTeams())
		log.Info("using in-memory stores")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rm := room.New(ctx, roster, teams, cfg, log)
	imgs := images.NewStore()

	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "public"
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: httpapi.SetupRoutes(rm, imgs, cfg, staticDir, log),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server", zap.Error(err))
	}
}
