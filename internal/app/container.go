package app

import (
	"context"
	"log"
	"os"
	"time"

	"intern-genie/internal/config"
	"intern-genie/internal/database"
	dbpostgres "intern-genie/internal/database/postgres"
	"intern-genie/internal/infrastructure/cache"
	"intern-genie/internal/infrastructure/upstream"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Upstream upstream.Client
	Logger   *log.Logger
}

func NewContainer(cfg config.Config) (*Container, error) {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    cache.NewRedis(logger),
		Upstream: upstream.NewClient(cfg.Upstream.BaseURL, logger),
		Logger:   logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
