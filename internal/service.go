package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/fitgpt/backend/internal/completion"
	"github.com/fitgpt/backend/internal/config"
	"github.com/fitgpt/backend/internal/db"
	"github.com/fitgpt/backend/internal/queue"
	"github.com/fitgpt/backend/internal/telemetry/metrics"
	"github.com/fitgpt/backend/internal/users"
	"github.com/fitgpt/backend/internal/workouts"
)

// Service wires the daily workout generation loops: the cron populator,
// the queue consumer and the user events watcher, plus the ops-only
// metrics endpoint. There is no product HTTP API.
type Service struct {
	config            *config.Config
	dbPool            *pgxpool.Pool
	redisClient       *redis.Client
	metricsHttpServer *http.Server

	populator *queue.Populator
	consumer  *queue.Consumer
	watcher   *users.Watcher

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
}

type NewServiceParams struct {
	Config           *config.Config
	OpenAIAPIKey     string
	RedisPassword    string
	PostgresPassword string
	TracingEnabled   bool
}

func NewService(
	ctx context.Context,
	params NewServiceParams,
) (*Service, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err := db.RunMigrations(dbPool); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitgpt", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	completionClient := completion.NewClient(completion.NewClientParams{
		API:            openai.NewClient(params.OpenAIAPIKey),
		Model:          params.Config.OpenAIModel,
		MaxTokens:      params.Config.OpenAIMaxTokens,
		MetricsManager: metricsManager,
	})

	usersRepo := users.NewRepo(dbPool)
	workoutsRepo := workouts.NewRepo(dbPool)
	queueRepo := queue.NewRepo(dbPool)

	generator := workouts.NewGenerator(workouts.NewGeneratorParams{
		Repo:     workoutsRepo,
		Profiles: usersRepo,
		Client:   completionClient,
		Lock: workouts.NewDayLock(
			rdb,
			time.Duration(params.Config.GenLockTTLMinutes)*time.Minute,
		),
		MetricsManager: metricsManager,
	})

	userEventsHandler := workouts.NewUserEventsHandler(workouts.NewUserEventsHandlerParams{
		Profiles:       usersRepo,
		Assigner:       users.NewTimeBlockAssigner(usersRepo, params.Config.TimeBlocks),
		Generator:      generator,
		MetricsManager: metricsManager,
	})

	s := &Service{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,

		populator: queue.NewPopulator(queue.NewPopulatorParams{
			Users:          usersRepo,
			Tasks:          queueRepo,
			MetricsManager: metricsManager,
			TimeBlocks:     params.Config.TimeBlocks,
		}),
		consumer: queue.NewConsumer(queue.NewConsumerParams{
			Pool:           dbPool,
			Tasks:          queueRepo,
			Generator:      generator,
			MetricsManager: metricsManager,
			PollInterval:   time.Duration(params.Config.QueuePollIntervalS) * time.Second,
			BatchSize:      params.Config.QueueClaimBatchSize,
		}),
		watcher: users.NewWatcher(dbPool, userEventsHandler),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
	}

	return s, nil
}

// Run starts all loops and the metrics endpoint. Non-blocking.
func (s *Service) Run(ctx context.Context) error {
	if err := s.populator.Start(ctx); err != nil {
		return fmt.Errorf("start populator: %w", err)
	}

	go s.consumer.Run(ctx)
	go s.watcher.Run(ctx)

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsRouter.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("ok")); err != nil {
			log.Errorf("health handler, write response: %s", err)
		}
	}).Methods("GET")

	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)

	return nil
}

func (s *Service) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	log.Debugln("stopping queue populator ...")
	s.populator.Stop()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
	}
	log.Warnln("service shut down")
}
