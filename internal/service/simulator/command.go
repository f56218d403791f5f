package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/oshokin/alarm-record-store/internal/algorithm"
	"github.com/oshokin/alarm-record-store/internal/config"
	"github.com/oshokin/alarm-record-store/internal/domain/alarm"
	"github.com/oshokin/alarm-record-store/internal/logger"
	"github.com/oshokin/alarm-record-store/internal/store/memory"
)

// Options controls the alarm-simulator process.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// Duration bounds the run; zero runs until the context is canceled.
	Duration time.Duration
}

// summaryEvery is the number of ticks between open-alarm summaries.
const summaryEvery = 10

// metricsReadHeaderTimeout bounds header reads on the metrics endpoint.
const metricsReadHeaderTimeout = 5 * time.Second

// Run executes the synthetic workload until the context is canceled or the
// configured duration elapses.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-simulator")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	if level, ok := logger.ParseLogLevel(cfg.LogLevel); ok {
		logger.SetLevel(level)
	}

	provider := memory.NewProvider()

	stopMetrics, err := serveMetrics(ctx, cfg.MetricsAddress, provider)
	if err != nil {
		return err
	}
	defer stopMetrics()

	classes := make([]*alarm.Class, 0, len(cfg.Classes))
	for _, name := range cfg.Classes {
		classes = append(classes, alarm.NewClass(name))
	}

	watches := make([]*algorithm.Watch, 0, cfg.Sources)
	for i := 0; i < cfg.Sources; i++ {
		watches = append(watches, algorithm.NewWatch(
			fmt.Sprintf("/sim/source-%02d", i),
			classes[i%len(classes)],
			&algorithm.Boolean{AlarmValue: true},
			provider,
		))
	}

	logger.InfoKV(ctx, "Simulator started",
		"sources", cfg.Sources, "classes", len(classes), "tick", cfg.Tick.String())

	if opts.Duration > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}

	ticker := time.NewTicker(cfg.Tick)
	defer ticker.Stop()

	ticks := 0

	for {
		select {
		case <-ctx.Done():
			logSummary(ctx, provider, classes)
			logger.Info(ctx, "Simulator stopped")

			return nil
		case <-ticker.C:
			ticks++

			if err := tick(ctx, provider, watches); err != nil {
				return err
			}

			if ticks%summaryEvery == 0 {
				logSummary(ctx, provider, classes)
			}
		}
	}
}

// tick flips each source to a random value and annotates fresh alarms.
func tick(ctx context.Context, provider *memory.Provider, watches []*algorithm.Watch) error {
	for _, watch := range watches {
		wasOpen := watch.IsOpen()

		value := rand.Intn(2) == 0 //nolint:gosec // Synthetic workload, not crypto.
		if err := watch.Update(ctx, value); err != nil {
			return fmt.Errorf("update watch: %w", err)
		}

		if !wasOpen && watch.IsOpen() {
			provider.AddNote(ctx, &alarm.Note{
				RecordID:  watch.AlarmID(),
				Timestamp: time.Now().UnixMilli(),
				User:      "simulator",
				Text:      "raised by synthetic workload",
			})
		}
	}

	return nil
}

// logSummary reads open-alarm counts per class back through cursors.
func logSummary(ctx context.Context, provider *memory.Provider, classes []*alarm.Class) {
	for _, class := range classes {
		cursor := provider.OpenAlarms(ctx, class)

		open := 0
		for cursor.Next() {
			open++
		}

		cursor.Close()

		logger.InfoKV(ctx, "Open alarms", "class", class.Name, "count", open)
	}
}

// serveMetrics starts the Prometheus endpoint when an address is configured.
// The returned function blocks until the server has shut down.
func serveMetrics(ctx context.Context, address string, provider *memory.Provider) (stop func(), err error) {
	if address == "" {
		return func() {}, nil
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(memory.NewCollector(provider)); err != nil {
		return nil, fmt.Errorf("register collector: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	done := make(chan struct{})

	go func() {
		defer close(done)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "Metrics endpoint failed: %v", err)
		}
	}()

	logger.InfoKV(ctx, "Metrics endpoint listening", "address", address)

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsReadHeaderTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
		<-done
	}, nil
}
