package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterWorkoutsGenerated    prometheus.Counter
	CounterWorkoutsReused       prometheus.Counter
	CounterGenerationFailures   prometheus.Counter
	CounterCompletionCalls      prometheus.Counter
	CounterCompletionFailures   prometheus.Counter
	CounterCompletionParseFails prometheus.Counter
	CounterTasksEnqueued        prometheus.Counter
	CounterTasksConsumed        prometheus.Counter
	CounterUserEvents           *prometheus.CounterVec

	// gauges
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistCompletionDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitgpt", "test_service", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterWorkoutsGenerated := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_generated",
		Help:      "The total number of workouts generated and persisted",
	})
	counterWorkoutsReused := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_reused",
		Help:      "The total number of generation requests short-circuited by an existing workout",
	})
	counterGenerationFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "generation_failures",
		Help:      "The total number of generation attempts that produced no workout",
	})
	counterCompletionCalls := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completion_calls",
		Help:      "The total number of calls to the completion API",
	})
	counterCompletionFailures := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completion_failures",
		Help:      "The total number of failed completion API calls",
	})
	counterCompletionParseFails := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "completion_parse_failures",
		Help:      "The total number of completion responses with no parsable JSON payload",
	})
	counterTasksEnqueued := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "queue_tasks_enqueued",
		Help:      "The total number of workout generation tasks enqueued",
	})
	counterTasksConsumed := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "queue_tasks_consumed",
		Help:      "The total number of workout generation tasks claimed from the queue",
	})
	counterUserEvents := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "user_events",
		Help:      "The total number of user change events handled",
	}, []string{"event"})

	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})

	histCompletionDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30, 60, 120,
			},
			Name: "completion_duration_seconds",
			Help: "Duration of a single completion API call in seconds",
		},
	)

	return &Manager{
		CounterWorkoutsGenerated:    counterWorkoutsGenerated,
		CounterWorkoutsReused:       counterWorkoutsReused,
		CounterGenerationFailures:   counterGenerationFailures,
		CounterCompletionCalls:      counterCompletionCalls,
		CounterCompletionFailures:   counterCompletionFailures,
		CounterCompletionParseFails: counterCompletionParseFails,
		CounterTasksEnqueued:        counterTasksEnqueued,
		CounterTasksConsumed:        counterTasksConsumed,
		CounterUserEvents:           counterUserEvents,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistCompletionDuration:      histCompletionDuration,
	}
}
