package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MuefXyz/res-Smp-Ash-sub001/config"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/api/handler"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/api/router"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/notify"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/repository"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/stream"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/database"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/jwt"
	applogger "github.com/MuefXyz/res-Smp-Ash-sub001/pkg/logger"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/redis"
)

func main() {
	// ── config ──
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal memuat konfigurasi: %v\n", err)
		os.Exit(1)
	}

	// ── logger ──
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gagal menginisialisasi logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("aplikasi dimulai",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// ── database + migrations ──
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("koneksi database gagal", zap.Error(err))
	}
	logger.Info("koneksi database berhasil")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("gagal mengambil sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migrasi database gagal", zap.Error(err))
	}

	// ── redis (optional: degrade when unreachable) ──
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("koneksi Redis gagal, blacklist token dan rate limit dinonaktifkan", zap.Error(err))
		rdb = nil
	}

	// ── dependency wiring: repository → service → handler ──
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	notifier := notify.NewStoreNotifier(repo.User, repo.Notification, logger)
	hub := stream.NewHub()
	svc := service.NewService(cfg, repo, jwtMgr, rdb, notifier, hub, logger)
	h := handler.NewHandler(svc, hub)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// ── HTTP server with graceful shutdown ──
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server HTTP berjalan", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server HTTP berhenti tak terduga", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("sinyal berhenti diterima, memulai shutdown", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown server bermasalah", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server berhenti")
}
