package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/Ademola7/BlogApi/config"
	"github.com/Ademola7/BlogApi/db"
	authhandler "github.com/Ademola7/BlogApi/internal/auth/handler"
	authrepo "github.com/Ademola7/BlogApi/internal/auth/repository/mongodb"
	authservice "github.com/Ademola7/BlogApi/internal/auth/service"
	bloghandler "github.com/Ademola7/BlogApi/internal/blog/handler"
	blogrepo "github.com/Ademola7/BlogApi/internal/blog/repository/mongodb"
	blogservice "github.com/Ademola7/BlogApi/internal/blog/service"
	"github.com/Ademola7/BlogApi/internal/middleware"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	database, err := db.NewMongoDatabase(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logrus.WithError(err).Warn("failed to close database connection")
		}
	}()

	userRepo := authrepo.NewMongoUserRepository(database)
	blogRepo := blogrepo.NewMongoBlogRepository(database)

	tokenService := authservice.NewTokenService(
		cfg.AccessTokenSecret, cfg.RefreshTokenSecret,
		cfg.AccessExpiryMin, cfg.RefreshExpiryMin,
	)
	userService := authservice.NewUserService(userRepo, tokenService)
	blogService := blogservice.NewBlogService(blogRepo, userRepo)

	authHandler := authhandler.NewAuthHandler(userService)
	blogHandler := bloghandler.NewBlogHandler(blogService)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	authhandler.RegisterRoutes(app, authHandler)
	bloghandler.RegisterRoutes(app, blogHandler, middleware.RequireAuth(tokenService, userRepo))

	logrus.WithField("port", cfg.Port).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
