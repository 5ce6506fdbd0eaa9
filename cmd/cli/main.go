package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/hrmportal/internal/buildinfo"
	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/cli"
	"github.com/dmitrijs2005/hrmportal/internal/client/config"
	"github.com/dmitrijs2005/hrmportal/internal/client/localdb"
	"github.com/dmitrijs2005/hrmportal/internal/client/services"
	"github.com/dmitrijs2005/hrmportal/internal/client/session"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
)

const appname = "HRM Portal"

func main() {

	figure.NewFigure(appname, "cybermedium", true).Print()
	fmt.Println()
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("%v", err)
	}

}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, closer := logging.NewFileLogger(logging.FileOptions{Path: cfg.LogFile, Level: cfg.LogLevel})
	defer closer.Close()

	db, err := localdb.Open(ctx, cfg.SessionDB)
	if err != nil {
		return fmt.Errorf("open session db: %w", err)
	}
	defer db.Close()

	store := session.NewStore(db, logger)
	if err := store.Load(ctx); err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	metrics := api.NewMetrics()
	gateway := api.NewGateway(api.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.RequestTimeout,
		RateLimit: cfg.RateLimit,
	}, store, logger, api.WithMetrics(metrics))

	if cfg.MetricsAddr != "" {
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: metricsMux(metrics), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "metrics server stopped", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	app := cli.NewApp(cli.Services{
		Auth:       services.NewAuthService(gateway, store, logger),
		Users:      services.NewUserService(gateway),
		Attendance: services.NewAttendanceService(gateway),
		Leaves:     services.NewLeaveService(gateway),
		Calendar:   services.NewCalendarService(gateway),
	}, logger, os.Stdin, os.Stdout)
	store.OnExpire(app.SessionExpired)

	logger.Info(ctx, "client started", "base_url", cfg.BaseURL)
	app.Run(ctx)
	return nil
}

func metricsMux(m *api.Metrics) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	return mux
}
