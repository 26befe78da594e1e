package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"createathon/internal/common/security"
	"createathon/internal/judgemock"
	"createathon/internal/platform/config"
)

// mockjudge is a local stand-in for the remote judging service so the client
// can be exercised without it. State is in-memory only.
func main() {
	config.Load()
	security.InitJWT(config.AppConfig.JWTKey)

	store := judgemock.NewStore()
	router := judgemock.NewRouter(store, config.AppConfig.AccessTTL, config.AppConfig.RefreshTTL)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.MockJudgePort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Mock judge listening on port %s", config.AppConfig.MockJudgePort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v", config.AppConfig.MockJudgePort, err)
		}
	}()

	<-stop

	log.Println("Shutting down mock judge...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Mock judge stopped gracefully.")
}
