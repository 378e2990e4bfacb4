package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"imovel-api/internal/core/auth"
	"imovel-api/internal/core/cache"
	"imovel-api/internal/core/config"
	"imovel-api/internal/core/database"
	"imovel-api/internal/core/logger"
	"imovel-api/internal/core/server"
	"imovel-api/internal/domain"
	"imovel-api/internal/feature/property"
	"imovel-api/internal/repo"
	"imovel-api/internal/service"
	"imovel-api/internal/transport/http/handler"
	"imovel-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 存储：有 DSN 走真实库，否则退回只读内存数据集
	propRepo, userRepo := buildStore(cfg, log)

	// JWT（7 天会话）
	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLHour) * time.Hour,
	}
	if cfg.JWT.Secret == "dev-secret-change-in-production" {
		log.Warn("jwt secret is the insecure dev default, override APP_JWT_SECRET in production")
	}

	// 可选的公共列表缓存
	var c *cache.Cache
	if cfg.Redis.Addr != "" {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		log.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	authSvc := service.NewAuthService(userRepo, jwter)
	propSvc := service.NewPropertyService(propRepo, c)

	r := router.New(log, jwter,
		handler.NewAuthHandler(authSvc),
		handler.NewPropertyHandler(propSvc),
		handler.NewAdminHandler(propSvc),
	)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func buildStore(cfg *config.Config, l *zap.Logger) (domain.PropertyRepository, domain.UserRepository) {
	if !cfg.StoreConfigured() {
		l.Warn("no db dsn configured, serving read-only demo dataset; admin writes will return 501")
		mem := repo.NewMemPropertyRepo(repo.DemoProperties()...)
		mem.ReadOnly = true
		return mem, repo.NewMemUserRepo()
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&property.Model{}, &domain.User{}); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	return repo.NewPropertyRepo(db), repo.NewUserRepo(db)
}
