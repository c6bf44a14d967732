package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fitgpt/backend/internal"
	"github.com/fitgpt/backend/internal/config"
	"github.com/fitgpt/backend/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "workouts-service",
	})

	log.Debugf("using logs path: [%s]", cfg.LogsPath)
	log.Debugf("time blocks: %d", cfg.TimeBlocks)

	openAIAPIKey := os.Getenv("FITGPT_OPENAI_API_KEY")
	if openAIAPIKey == "" {
		log.Errorf("openai API key not set, use FITGPT_OPENAI_API_KEY env var to set it")
	}

	redisPassword := os.Getenv("FITGPT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITGPT_REDIS_PASS")
	}

	postgresPassword := os.Getenv("FITGPT_POSTGRES_PASS")
	if postgresPassword == "" {
		log.Warnf("postgres password not set. use FITGPT_POSTGRES_PASS")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	service, err := internal.NewService(
		ctx,
		internal.NewServiceParams{
			Config:           cfg,
			OpenAIAPIKey:     openAIAPIKey,
			RedisPassword:    redisPassword,
			PostgresPassword: postgresPassword,
		},
	)
	if err != nil {
		log.Fatalf("new service: %s", err)
	}

	if err := service.Run(ctx); err != nil {
		log.Fatalf("run service: %s", err)
	}

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	service.GracefulShutdown()
}
