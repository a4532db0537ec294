// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue: tasks are enqueued through
// asynq.Client and executed by workers run by asynq.Server. The gateway
// uses it for post-signup email notifications only; nothing on the request
// path waits on a job.
package job

import (
	"github.com/opendirectory/providerdir/internal/config"
	"github.com/opendirectory/providerdir/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker
// execution), plus the dependencies the task handlers need.
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	server *asynq.Server
	email  *email.Client
	logger *zerolog.Logger
}

// NewJobService creates a JobService backed by the configured Redis.
//
// Queue weights distribute the worker pool: out of 10 concurrent slots,
// roughly 6 serve critical, 3 default, 1 low.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		email:  email.NewClient(cfg, logger),
		logger: logger,
	}
}

// Start registers task handlers and runs the worker server. It blocks until
// shutdown or a fatal error, so callers run it on its own goroutine.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
