// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses *ZeroLog* for logging and integrates with
// *New Relic* to instrument the codebase, forwarding logs,
// metrics, and traces for debugging.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/opendirectory/providerdir/internal/config"
	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When New Relic is not licensed the service still exists but
// GetApplication returns nil; callers treat nil as "instrumentation off".
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when disabled.
func (ls *LoggerService) GetApplication() *newrelic.Application {
	return ls.nrApp
}

// Shutdown flushes buffered telemetry. Safe to call when disabled.
func (ls *LoggerService) Shutdown(timeout time.Duration) {
	if ls.nrApp != nil {
		ls.nrApp.Shutdown(timeout)
	}
}

// New builds the application logger and the observability service.
//
// Behavior:
//   - Log level comes from the observability config (env-aware default).
//   - "console" format pretty-prints to stderr, anything else emits JSON.
//   - With a New Relic license key, an Application is created and, when log
//     forwarding is enabled, log output is routed through the zerologWriter
//     integration so log lines carry trace linking metadata.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	service := &LoggerService{}

	if cfg.Observability.NewRelic.LicenseKey != "" {
		nrApp, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
			func(c *newrelic.Config) {
				c.Labels = map[string]string{
					"environment": cfg.Observability.Environment,
				}
			},
		)
		if err != nil {
			return nil, nil, err
		}
		service.nrApp = nrApp
	}

	var out io.Writer = os.Stdout
	if cfg.Observability.Logging.Format == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	} else if service.nrApp != nil && cfg.Observability.NewRelic.AppLogForwardingEnabled {
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	}

	log := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &log, service, nil
}

// WithTraceContext returns a child logger carrying the transaction's trace
// and span ids so log lines correlate with distributed traces.
func WithTraceContext(log zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return log
	}

	md := txn.GetTraceMetadata()

	builder := log.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}

	return builder.Logger()
}

// NewPgxLogger builds the logger used for SQL query logging in local
// environments. It always pretty-prints; query logs are for humans.
func NewPgxLogger(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("component", "pgx").
		Logger()
}

// Pgx tracelog levels, mirrored here so the database package can derive
// them from the zerolog level without importing tracelog itself.
const (
	pgxLogLevelNone  = 1
	pgxLogLevelError = 2
	pgxLogLevelWarn  = 3
	pgxLogLevelInfo  = 4
	pgxLogLevelDebug = 5
	pgxLogLevelTrace = 6
)

// GetPgxTraceLogLevel maps a zerolog level onto the pgx tracelog level.
func GetPgxTraceLogLevel(level zerolog.Level) int {
	switch level {
	case zerolog.TraceLevel:
		return pgxLogLevelTrace
	case zerolog.DebugLevel:
		return pgxLogLevelDebug
	case zerolog.InfoLevel:
		return pgxLogLevelInfo
	case zerolog.WarnLevel:
		return pgxLogLevelWarn
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return pgxLogLevelError
	default:
		return pgxLogLevelNone
	}
}
