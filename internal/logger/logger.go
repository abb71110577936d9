// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *zerolog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces when a license key is configured.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/deppfellow/go-cats/internal/config"
)

// LoggerService owns the optional New Relic application.
//
// A LoggerService without a license key holds a nil application; every caller
// checks GetApplication() != nil before using it.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService starts the New Relic agent if a license key is configured.
func NewLoggerService(cfg *config.ObservabilityConfig) (*LoggerService, error) {
	service := &LoggerService{}

	if cfg.NewRelic.LicenseKey == "" {
		return service, nil
	}

	opts := []newrelic.ConfigOption{
		newrelic.ConfigAppName(cfg.ServiceName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.AppLogForwardingEnabled),
		newrelic.ConfigDistributedTracerEnabled(cfg.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigEnabled(true),
	}
	if cfg.NewRelic.DebugLogging {
		opts = append(opts, newrelic.ConfigDebugLogger(os.Stdout))
	}

	app, err := newrelic.NewApplication(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize New Relic")
	}

	service.nrApp = app

	return service, nil
}

// GetApplication returns the New Relic application, or nil if New Relic is disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	if ls == nil {
		return nil
	}

	return ls.nrApp
}

// Shutdown flushes pending New Relic data.
func (ls *LoggerService) Shutdown() {
	if ls.GetApplication() != nil {
		ls.nrApp.Shutdown(10 * time.Second)
	}
}

// setupGlobals guards zerolog's package-level settings.
var setupGlobals sync.Once

// New builds the root application logger writing to out.
//
// JSON output goes through the New Relic zerolog writer when New Relic is enabled,
// so log lines are forwarded and decorated with entity metadata.
// Console output is for local development only and is never forwarded.
func New(cfg *config.ObservabilityConfig, out io.Writer, service *LoggerService) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	setupGlobals.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	})

	var writer io.Writer
	switch {
	case cfg.Logging.Format == "console":
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	case service.GetApplication() != nil:
		writer = zerologWriter.New(out, service.GetApplication())
	default:
		writer = out
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// WithTraceContext adds the New Relic trace and span ids of txn to logger.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	metadata := txn.GetTraceMetadata()

	return logger.With().
		Str("trace.id", metadata.TraceID).
		Str("span.id", metadata.SpanID).
		Logger()
}
