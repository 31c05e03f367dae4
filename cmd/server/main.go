package main

import (
	"log"
	"net/http"

	_ "sharemypics/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sharemypics/internal/auth"
	"sharemypics/internal/cache"
	"sharemypics/internal/config"
	"sharemypics/internal/db"
	"sharemypics/internal/handler"
	"sharemypics/internal/model"
	"sharemypics/internal/repository"
	"sharemypics/internal/router"
	"sharemypics/internal/service"
)

// @title ShareMyPics API
// @version 1.0
// @description Photo-album sharing API with shared contributor ownership and JWT authentication.
// @host localhost:3000
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Album{},
		&model.AlbumContributor{},
		&model.Picture{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	userRepo := repository.NewUserRepository(gormDB)
	albumRepo := repository.NewAlbumRepository(gormDB)
	pictureRepo := repository.NewPictureRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authMW := auth.Middleware(jwtService, userRepo)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	albumService := service.NewAlbumService(albumRepo, userRepo, cacheClient)
	pictureService := service.NewPictureService(pictureRepo, albumRepo, cacheClient)

	authHandler := handler.NewAuthHandler(authService, cfg.BaseURL)
	userHandler := handler.NewUserHandler(userService)
	albumHandler := handler.NewAlbumHandler(albumService, cfg.BaseURL)
	pictureHandler := handler.NewPictureHandler(pictureService, cfg.BaseURL)

	router.Register(
		e,
		authMW,
		authHandler,
		userHandler,
		albumHandler,
		pictureHandler,
	)

	log.Printf("swagger documentation available at: %s/swagger/index.html", cfg.BaseURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
