package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/bagashiz/openmusic-api/internal/handler"
	"github.com/bagashiz/openmusic-api/internal/mail"
	"github.com/bagashiz/openmusic-api/internal/middleware"
	"github.com/bagashiz/openmusic-api/internal/queue"
	"github.com/bagashiz/openmusic-api/internal/repository"
	"github.com/bagashiz/openmusic-api/internal/service"
	"github.com/bagashiz/openmusic-api/internal/storage"
	"github.com/bagashiz/openmusic-api/internal/worker"
	"github.com/bagashiz/openmusic-api/migrations"
	"github.com/bagashiz/openmusic-api/pkg/config"
	"github.com/bagashiz/openmusic-api/pkg/crypto"
	"github.com/bagashiz/openmusic-api/pkg/db"
	"github.com/bagashiz/openmusic-api/pkg/jwt"
	"github.com/bagashiz/openmusic-api/pkg/logger"
	"github.com/bagashiz/openmusic-api/pkg/redisx"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Default().Fatal("load config", logger.Error(err))
	}

	log := logger.New(os.Stdout, logger.ParseLevel(cfg.Log.Level))
	log.Info("starting openmusic-api", logger.String("addr", cfg.Server.Addr()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Schema first, then the pool the repositories use.
	migrator, err := db.NewMigrator(cfg.Database.URL, migrations.FS, ".")
	if err != nil {
		log.Fatal("create migrator", logger.Error(err))
	}
	if err := migrator.Up(); err != nil {
		log.Fatal("run migrations", logger.Error(err))
	}
	if version, dirty, err := migrator.Version(); err == nil {
		log.Info("migrations applied", logger.Any("version", version), logger.Any("dirty", dirty))
	}
	if err := migrator.Close(); err != nil {
		log.Warn("close migrator", logger.Error(err))
	}

	pool, err := db.NewPool(ctx, &db.PoolConfig{
		URL:             cfg.Database.URL,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("connect to postgres", logger.Error(err))
	}
	defer pool.Close()

	redisClient, err := redisx.NewClient(&redisx.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Fatal("connect to redis", logger.Error(err))
	}
	defer redisClient.Close()

	covers, err := storage.NewLocalStorage(cfg.Storage.CoversDir)
	if err != nil {
		log.Fatal("init cover storage", logger.Error(err))
	}

	// Repositories
	albumRepo := repository.NewAlbumRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	tokenRepo := repository.NewTokenRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	collaborationRepo := repository.NewCollaborationRepository(pool)
	activityRepo := repository.NewActivityRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)

	// Services
	hasher := crypto.NewPasswordHasher()
	jwtManager := jwt.NewManager(&jwt.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		Issuer:        cfg.JWT.Issuer,
		AccessExpiry:  cfg.JWT.AccessExpiry,
		RefreshExpiry: cfg.JWT.RefreshExpiry,
	})
	exportQueue := queue.New(redisClient, cfg.Export.Queue)

	albumService := service.NewAlbumService(albumRepo, covers, cfg.Server.BaseURL+"/upload/images")
	songService := service.NewSongService(songRepo)
	userService := service.NewUserService(userRepo, hasher)
	authService := service.NewAuthService(userRepo, tokenRepo, hasher, jwtManager)
	playlistService := service.NewPlaylistService(playlistRepo, songRepo, collaborationRepo, activityRepo)
	collaborationService := service.NewCollaborationService(collaborationRepo, playlistService, userRepo)
	likeService := service.NewLikeService(likeRepo, redisClient, cfg.Cache.LikesTTL, log)
	exportService := service.NewExportService(playlistService, exportQueue)

	// Export worker
	var sender mail.Sender
	if cfg.SMTP.Host != "" {
		sender = mail.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		sender = mail.NewLogSender(log)
	}
	exportWorker := worker.NewExportWorker(exportQueue, playlistRepo, sender, log)
	go exportWorker.Run(ctx)

	// HTTP server
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	router.Use(middleware.CORS())

	h := handler.New(
		albumService,
		songService,
		userService,
		authService,
		playlistService,
		collaborationService,
		likeService,
		exportService,
		log,
	)
	h.Routes(router, middleware.Auth(jwtManager, log), covers.Dir())

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", logger.Error(err))
		}
	}()
	log.Info("http server listening", logger.String("addr", cfg.Server.Addr()))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("received shutdown signal", logger.String("signal", sig.String()))

	// Stop the worker, then drain in-flight requests.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("http server shutdown", logger.Error(err))
	}

	log.Info("openmusic-api stopped")
}
