package main

import (
	"context"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"imovel-api/internal/core/config"
	"imovel-api/internal/core/database"
	"imovel-api/internal/core/logger"
	"imovel-api/internal/domain"
	"imovel-api/internal/feature/property"
	"imovel-api/internal/repo"
	"imovel-api/pkg/utils"
)

// 初始化真实库：建表、管理员账号、演示房源。
// 管理员口令从 ADMIN_PASSWORD 读取，bcrypt 入库。
func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if !cfg.StoreConfigured() {
		log.Fatal("seed requires APP_DB_DSN to be set")
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
		log.Fatal("db open", zap.Error(err))
	}

	if err := db.AutoMigrate(&property.Model{}, &domain.User{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}
	log.Info("automigrate done")

	// 管理员（幂等：存在则只更新口令）
	pw := os.Getenv("ADMIN_PASSWORD")
	if pw == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}
	admin := domain.User{
		ID:           utils.NewID(),
		Username:     "admin",
		PasswordHash: utils.HashPassword(pw),
		Email:        envOr("ADMIN_EMAIL", "admin@imovel.local"),
		Role:         "admin",
	}
	var existing domain.User
	if err := db.First(&existing, "username = ?", admin.Username).Error; err == nil {
		if err := db.Model(&existing).Update("password_hash", admin.PasswordHash).Error; err != nil {
			log.Fatal("update admin failed", zap.Error(err))
		}
		log.Info("admin password updated", zap.String("username", admin.Username))
	} else {
		if err := db.Create(&admin).Error; err != nil {
			log.Fatal("create admin failed", zap.Error(err))
		}
		log.Info("admin created", zap.String("username", admin.Username))
	}

	// 演示房源：表为空时才灌入
	var count int64
	if err := db.Model(&property.Model{}).Count(&count).Error; err != nil {
		log.Fatal("count properties failed", zap.Error(err))
	}
	if count > 0 {
		log.Info("properties table not empty, skipping demo listings", zap.Int64("count", count))
		return
	}

	propRepo := repo.NewPropertyRepo(db)
	ctx := context.Background()
	for _, p := range repo.DemoProperties() {
		p.ID = utils.NewID()
		if err := propRepo.Create(ctx, &p); err != nil {
			log.Fatal("seed property failed", zap.String("title", p.Title), zap.Error(err))
		}
	}
	log.Info("demo listings seeded", zap.Int("count", len(repo.DemoProperties())))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
