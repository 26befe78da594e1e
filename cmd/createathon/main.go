package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"createathon/internal/api"
	"createathon/internal/app/service"
	"createathon/internal/app/workspace"
	"createathon/internal/cli"
	"createathon/internal/platform/cache"
	"createathon/internal/platform/config"
	"createathon/internal/platform/logging"
	"createathon/internal/platform/session"
)

func main() {
	// 1. Configuration and logging
	config.Load()
	logger := logging.New(config.AppConfig.Debug)
	defer logger.Sync()

	// 2. Persisted session (the local-storage analogue)
	sessionStore, err := session.Open(config.AppConfig.SessionPath)
	if err != nil {
		log.Fatalf("Could not open session store: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Optional challenge cache
	cacheCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	challengeCache, err := cache.Connect(cacheCtx,
		config.AppConfig.CacheAddr,
		config.AppConfig.CachePassword,
		config.AppConfig.CacheDB,
		config.AppConfig.CacheTTL)
	cancel()
	if err != nil {
		log.Fatalf("Could not connect to challenge cache: %v", err)
	}
	defer challengeCache.Close()

	// 4. Judge API client; auth comes from the session store
	client := api.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.HTTPTimeout, sessionStore.AccessToken)

	// 5. Services
	authService := service.NewAuthService(client, sessionStore, logger)
	problemService := service.NewProblemService(client, challengeCache, logger)
	executorService := service.NewExecutorService(config.AppConfig.RunMinLatency, config.AppConfig.RunBudget, logger)
	submissionService := service.NewSubmissionService(client, logger)
	dashboardService := service.NewDashboardService(client, sessionStore, challengeCache, logger)

	// 6. Workspace machine and shell
	machine := workspace.NewMachine(problemService, executorService, submissionService, logger)
	shell := cli.New(authService, problemService, dashboardService, machine, logger)

	shell.Run(ctx)
}
