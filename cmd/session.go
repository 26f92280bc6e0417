package cmd

import (
	"context"
	"fmt"

	"github.com/tasktide/tasktide/internal/config"
	"github.com/tasktide/tasktide/internal/storage"
	"github.com/tasktide/tasktide/pkg/logger"
	"github.com/tasktide/tasktide/pkg/planner"
)

// session is everything one command needs: settings, logger, the open
// database and a System rebuilt from it.
type session struct {
	cfg  *config.Config
	log  logger.Logger
	repo *storage.Repository
	sys  *planner.System
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(config.Options{
		File:      configFile,
		Overrides: flagOverrides(),
	})
	if err != nil {
		return nil, err
	}
	l, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	repo, err := storage.Open(cfg.Database, l)
	if err != nil {
		l.Close()
		return nil, err
	}
	s := &session{cfg: cfg, log: l, repo: repo}
	s.sys = planner.NewSystem(
		planner.WithLogger(l),
		planner.WithEventHandler(s.onEvent),
	)

	records, err := repo.Load(ctx)
	if err != nil {
		s.Close()
		return nil, err
	}
	for _, rec := range records {
		s.sys.Restore(rec.Task, rec.Fired...)
	}
	l.Debug("session: %d task(s), %d pending event(s), config %s", s.sys.Len(), s.sys.Pending(), cfg.File)
	return s, nil
}

func flagOverrides() map[string]any {
	o := make(map[string]any)
	if databasePath != "" {
		o[config.KeyDatabase] = databasePath
	}
	if verbose {
		o[config.KeyVerbose] = true
	}
	return o
}

// newLogger writes to the configured log file. Without one, only verbose
// runs log, to stderr, so notifications on stdout stay readable.
func newLogger(cfg *config.Config) (logger.Logger, error) {
	if cfg.LogFile == "" {
		if cfg.Verbose {
			return logger.NewConsoleLogger(true), nil
		}
		return logger.NewNopLogger(), nil
	}
	fl, err := logger.NewFileLogger(cfg.LogFile, cfg.Verbose)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		return logger.NewMultiLogger(logger.NewConsoleLogger(true), fl), nil
	}
	return fl, nil
}

// onEvent reports a fired event and records it so later runs skip it.
func (s *session) onEvent(ev planner.Event, t *planner.Task) {
	ctx := context.Background()
	switch ev.Kind {
	case planner.EventStart:
		fmt.Printf("Notification: '%s' has started\n", t.Name)
		if err := s.repo.UpdateStatus(ctx, t.ID, t.Status); err != nil {
			s.log.Error("%v", err)
		}
	case planner.EventDeadline:
		fmt.Printf("Warning: '%s' has reached its deadline!\n", t.Name)
	}
	if err := s.repo.MarkFired(ctx, t.ID, ev.Kind); err != nil {
		s.log.Error("%v", err)
	}
}

func (s *session) Close() error {
	err := s.repo.Close()
	if cerr := s.log.Close(); err == nil {
		err = cerr
	}
	return err
}
