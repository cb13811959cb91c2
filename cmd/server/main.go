package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	courseservice "pillbox/internal/course/service"
	coursestore "pillbox/internal/course/store"
	pillservice "pillbox/internal/pill/service"
	pillstore "pillbox/internal/pill/store"
	"pillbox/internal/platform/config"
	"pillbox/internal/platform/httpserver"
	"pillbox/internal/platform/logger"
	"pillbox/internal/platform/metrics"
	"pillbox/internal/platform/mongodb"
	httptransport "pillbox/internal/transport/http"
)

// main wires the stores, services, and HTTP layer, and keeps the server
// lifecycle small. Business logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		pills   pillservice.PillStore
		courses courseservice.CourseStore
		ping    httptransport.Pinger
	)

	switch cfg.Backend {
	case config.BackendMemory:
		pills = pillstore.NewMemory()
		courses = coursestore.NewMemory()
		ping = httptransport.PingerFunc(func(context.Context) error { return nil })
		log.Info("using in-memory stores")
	default:
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		client, err := mongodb.Connect(connectCtx, cfg.MongoURI)
		cancel()
		if err != nil {
			log.Error("failed to connect to mongodb", "error", err)
			os.Exit(1)
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()

		db := client.Database(cfg.MongoDatabase)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			// The catalog works without indexes, just slower.
			log.Warn("failed to create indexes", "error", err)
		}

		pills = pillstore.NewMongo(db)
		courses = coursestore.NewMongo(db)
		ping = httptransport.PingerFunc(func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		})
		log.Info("using mongodb stores", "database", cfg.MongoDatabase)
	}

	pillSvc := pillservice.New(pills,
		pillservice.WithLogger(log),
		pillservice.WithMetrics(m),
	)
	courseSvc := courseservice.New(courses, pills,
		courseservice.WithLogger(log),
		courseservice.WithMetrics(m),
	)

	router := httptransport.NewRouter(
		httptransport.NewPillHandler(pillSvc),
		httptransport.NewCourseHandler(courseSvc),
		httptransport.NewHealthHandler(ping),
		log,
		m,
	)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting pillbox", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
