package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nexzen-backend/config"
	"nexzen-backend/controllers"
	"nexzen-backend/media"
	"nexzen-backend/routes"
	"nexzen-backend/services"
	"nexzen-backend/store"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	config.SetupLogger(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := config.ConnectDB(ctx, cfg.MongoURI)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to MongoDB")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			log.Error().Err(err).Msg("error disconnecting MongoDB client")
		}
	}()

	cld, err := config.NewCloudinary(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not configure Cloudinary")
	}

	productStore := store.NewMongoProductStore(client.Database(cfg.MongoDatabase))
	uploader := media.NewBreakerUploader("cloudinary", media.NewCloudinaryUploader(cld, cfg.UploadFolder))

	ctrl := &controllers.Controller{
		Products: services.NewProductService(productStore, uploader),
		DB:       productStore,
		Media:    uploader,
		Timeout:  cfg.RequestTimeout,
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.Setup(ctrl, cfg),
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shut down")
	}
}
