package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shopease/shopease/internal/auth"
	"github.com/shopease/shopease/internal/cart"
	"github.com/shopease/shopease/internal/catalog"
	"github.com/shopease/shopease/internal/checkout"
	"github.com/shopease/shopease/internal/config"
	"github.com/shopease/shopease/internal/db"
	"github.com/shopease/shopease/internal/handlers"
	"github.com/shopease/shopease/internal/httpserver"
	"github.com/shopease/shopease/internal/localstore"
	"github.com/shopease/shopease/internal/logging"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LogLevel)

	gormDB, err := db.Open(configuration.DBPath)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	disk, err := localstore.New(configuration.DataDir)
	if err != nil {
		log.Fatalf("local storage init error: %v", err)
	}

	catalogSvc := &catalog.Service{Repo: &catalog.GormRepo{DB: gormDB}}
	if err := catalog.Seed(context.Background(), catalogSvc.Repo); err != nil {
		log.Fatalf("catalog seed error: %v", err)
	}

	// Session start: the cart store is constructed once here and torn down
	// with the process; everything that needs it gets this instance.
	cartStore := cart.NewStore(disk, logger)

	jwtSecret := []byte(configuration.JWTSecret)
	sessionTTL := 24 * time.Hour
	if d, err := time.ParseDuration(configuration.SessionTTL); err == nil && d > 0 {
		sessionTTL = d
	}
	authSvc := auth.NewMock(gormDB, jwtSecret, disk, sessionTTL)

	checkoutSvc := &checkout.Service{
		Repo: &checkout.GormRepo{DB: gormDB},
		Cart: cartStore,
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), logging.RequestLogger(logger))

	deps := httpserver.Deps{
		ProductHandler:  &handlers.ProductHandler{Catalog: catalogSvc},
		CartHandler:     &handlers.CartHandler{Cart: cartStore, Catalog: catalogSvc},
		AuthHandler:     &handlers.AuthHandler{Auth: authSvc},
		CheckoutHandler: &handlers.CheckoutHandler{Checkout: checkoutSvc},
		JWTSecret:       jwtSecret,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	log.Println("shutdown complete")
}
