package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafaelgavarron/Fintech/internal/api"
	"github.com/rafaelgavarron/Fintech/internal/api/handler"
	"github.com/rafaelgavarron/Fintech/internal/core/service"
	"github.com/rafaelgavarron/Fintech/internal/infrastructure/config"
	mongodb "github.com/rafaelgavarron/Fintech/internal/infrastructure/db/mongo"
	redisdb "github.com/rafaelgavarron/Fintech/internal/infrastructure/db/redis"
	"github.com/rafaelgavarron/Fintech/internal/infrastructure/queue"
	"github.com/rafaelgavarron/Fintech/pkg/logger"
)

// @title        FinPath API
// @version      1.0
// @description  Multi-tenant personal finance API.
// @BasePath     /api
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer redisClient.Close()

	userRepo := mongodb.NewUserRepository(db)
	orgRepo := mongodb.NewOrganizationRepository(db)
	memberRepo := mongodb.NewMemberRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	txRepo := mongodb.NewTransactionRepository(db)
	investRepo := mongodb.NewInvestmentRepository(db)
	goalRepo := mongodb.NewGoalRepository(db)
	accountRepo := mongodb.NewBankAccountRepository(db)
	codeRepo := mongodb.NewVerificationCodeRepository(db)

	userSvc := service.NewUserService(userRepo, codeRepo, cfg.JWTSecret, 0, log)
	orgSvc := service.NewOrganizationService(orgRepo, log)
	memberSvc := service.NewMemberService(memberRepo, orgRepo, userRepo, roleRepo)
	roleSvc := service.NewRoleService(roleRepo)
	txSvc := service.NewTransactionService(txRepo, orgRepo, log)
	investSvc := service.NewInvestmentService(investRepo, memberRepo)
	goalSvc := service.NewGoalService(goalRepo, orgRepo)
	accountSvc := service.NewBankAccountService(accountRepo, memberRepo, log)

	if err := roleSvc.EnsureDefaults(ctx); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	syncSvc := service.NewSyncService(accountRepo, txRepo, redisdb.NewDedupChecker(redisClient), log)
	dispatcher := queue.NewDispatcher(0, syncSvc, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Handlers{
		Health:       handler.NewHealthHandler(mongoClient, redisClient),
		User:         handler.NewUserHandler(userSvc),
		Organization: handler.NewOrganizationHandler(orgSvc),
		Member:       handler.NewMemberHandler(memberSvc),
		Role:         handler.NewRoleHandler(roleSvc),
		Expense:      handler.NewExpenseHandler(txSvc),
		Income:       handler.NewIncomeHandler(txSvc),
		Investment:   handler.NewInvestmentHandler(investSvc),
		Goal:         handler.NewGoalHandler(goalSvc),
		BankAccount:  handler.NewBankAccountHandler(accountSvc),
		Sync:         handler.NewSyncHandler(dispatcher),
	}, cfg.JWTSecret, cfg.AdminToken, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
