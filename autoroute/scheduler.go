package autoroute

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const runTimeout = 10 * time.Minute

// Scheduler runs route generation on a fixed cron schedule
type Scheduler struct {
	cron      *cron.Cron
	generator *Generator
	spec      string
}

// NewScheduler creates a scheduler that runs the generator on the given cron spec
func NewScheduler(generator *Generator, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		generator: generator,
		spec:      spec,
	}
}

// Start registers the generation job and starts the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("schedule", s.spec).Msg("route generation scheduler started")
	return nil
}

// Stop stops the cron loop
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("route generation scheduler stopped")
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	result, err := s.generator.Generate(ctx, GenerateParams{})
	if err != nil {
		log.Error().Err(err).Msg("scheduled route generation failed")
		return
	}

	log.Info().
		Int("candidates", result.CandidateCount).
		Int("routes", result.RouteCount).
		Msg("scheduled route generation completed")
}
