package jobs

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler runs periodic maintenance. The only job today is an hourly usage
// snapshot logged for capacity tracking.
type Scheduler struct {
	cron *cron.Cron
	db   *pgxpool.Pool
	log  zerolog.Logger
}

func NewScheduler(db *pgxpool.Pool, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron: c,
		db:   db,
		log:  log,
	}
}

func (s *Scheduler) Start() error {
	if s.db == nil {
		return nil
	}

	if _, err := s.cron.AddFunc("0 0 * * * *", s.logUsageSnapshot); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for any running job to finish, up to a grace period.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) logUsageSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM session_tokens),
			(SELECT COUNT(*) FROM favorites)
	`

	var users, tokens, favorites int64
	if err := s.db.QueryRow(ctx, query).Scan(&users, &tokens, &favorites); err != nil {
		s.log.Error().Err(err).Msg("usage snapshot query failed")
		return
	}

	s.log.Info().
		Int64("users", users).
		Int64("session_tokens", tokens).
		Int64("favorites", favorites).
		Msg("usage snapshot")
}
