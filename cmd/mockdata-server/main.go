package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/mockdata"
)

func main() {
	godotenv.Load()

	logger := common.NewLogger(os.Getenv("COMPASS_LOG_LEVEL"))

	port := 8081
	if p := os.Getenv("MOCKDATA_PORT"); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	store := mockdata.NewSeedStore()
	handler := mockdata.NewHandler(store, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", port).Int("users", len(store.UserIDs())).Msg("Starting mock data server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
