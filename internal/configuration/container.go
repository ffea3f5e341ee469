package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/SalllesAndr/user-service/internal/db"
	"github.com/SalllesAndr/user-service/internal/handler"
	"github.com/SalllesAndr/user-service/internal/model"
	"github.com/SalllesAndr/user-service/internal/repo"
	"github.com/SalllesAndr/user-service/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Container struct {
	UserHandler handler.UserHandler
	Config      Config
	Logger      *zap.Logger

	// private - for cleanup
	mongoClient *mongo.Database
}

func BuildContainer() (*Container, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	con, err := db.OpenConnection(config.Mongo.Uri, config.Mongo.Database)
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	mongoRepo := db.NewRepository[model.User](con, config.Mongo.UsersCollection)

	userRepo := repo.NewUserRepository(mongoRepo)
	userService := service.NewUserService(userRepo, logger)
	userHandler := handler.NewUserHandler(userService)

	return &Container{
		UserHandler: userHandler,
		Config:      *config,
		Logger:      logger,
		mongoClient: con,
	}, nil
}

// Close gracefully shuts down all connections
func (c *Container) Close() error {
	// Sync logger
	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	// Close MongoDB connection pool
	if c.mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.mongoClient.Client().Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to close MongoDB connection: %w", err)
		}
	}

	return nil
}
