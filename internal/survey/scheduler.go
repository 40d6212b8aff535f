package survey

import (
	"sync"

	"github.com/roylee0704/gron"

	"surveyd/internal/providers"
	"surveyd/internal/structures"
	"surveyd/internal/survey/interfaces"
)

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	journal interfaces.JournalInterface
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
	opsMu   sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()
	interval := s.config.Persistence.RotateInterval

	s.cron.AddFunc(gron.Every(interval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		rotated, err := s.journal.RotateIfOversized()
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Journal rotation failed: %s", err)
			return
		}
		if rotated {
			s.metrics.IncJournalRotations()
		}
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore opens the journal, sealing any partial tail left by a crash.
func (s *Scheduler) Restore() error {
	return s.journal.Open()
}

// Persist flushes and closes the journal on shutdown.
func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Closing journal...")
	if err := s.journal.Close(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while closing journal: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, journal interfaces.JournalInterface, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		journal: journal,
		metrics: metrics,
	}
}
