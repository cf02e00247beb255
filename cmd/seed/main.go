package main

import (
	"context"
	"log/slog"
	"os"

	"routing/cmd"
	"routing/internal/adapters/out/postgres/actionrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if len(os.Args) > 1 {
		configs.SeedPath = os.Args[1]
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("component", "seed")

	f, err := os.Open(configs.SeedPath)
	if err != nil {
		log.Fatalf("Failed to open seed file: %v", err)
	}
	defer f.Close()

	cmds, err := cmd.LoadSeed(f)
	if err != nil {
		log.Fatalf("Invalid seed file %s: %v", configs.SeedPath, err)
	}

	var (
		gormDB      *gorm.DB
		redisClient redis.UniversalClient
	)
	if configs.ActionStore == cmd.ActionStoreRedis {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     configs.RedisAddr,
			Password: configs.RedisPassword,
			DB:       configs.RedisDB,
		})
		defer redisClient.Close()
	} else {
		gormDB, err = gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err = gormDB.AutoMigrate(&actionrepo.ActionDTO{}); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	app := cmd.NewCompositionRoot(configs, gormDB, redisClient, logger)
	written, skipped, err := app.Seed(context.Background(), cmds)
	if err != nil {
		log.Fatalf("Seeding failed after %d actions: %v", written, err)
	}

	logger.Info("Seeding finished",
		"store", configs.ActionStore, "file", configs.SeedPath, "written", written, "skipped", skipped)
}
