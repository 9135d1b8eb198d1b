package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mikiasgoitom/carkenya/internal/domain/contract"
	"github.com/mikiasgoitom/carkenya/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// SessionSweeper periodically drops expired sessions so that tokens nobody
// presents again do not accumulate.
type SessionSweeper struct {
	sessions contract.ISessionRepository
	logger   usecasecontract.IAppLogger
	cron     *cron.Cron
	timeout  time.Duration
}

func NewSessionSweeper(sessions contract.ISessionRepository, logger usecasecontract.IAppLogger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		logger:   logger,
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		timeout:  30 * time.Second,
	}
}

// Start registers the sweep on the given cron spec (e.g. "@every 10m") and
// starts the scheduler.
func (s *SessionSweeper) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("invalid session sweep schedule %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Infof("session sweeper scheduled: %s", spec)
	return nil
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *SessionSweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	if _, err := s.Sweep(ctx); err != nil {
		s.logger.Errorf("session sweep failed: %v", err)
	}
}

// Sweep purges expired sessions once and refreshes the session metrics.
func (s *SessionSweeper) Sweep(ctx context.Context) (int, error) {
	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		return 0, err
	}
	metrics.AddSessionsPurged(purged)

	remaining, err := s.sessions.CountSessions(ctx)
	if err != nil {
		return purged, err
	}
	metrics.SetActiveSessions(remaining)

	if purged > 0 {
		s.logger.Debugf("purged %d expired sessions, %d remaining", purged, remaining)
	}
	return purged, nil
}
