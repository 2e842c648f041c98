package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/store"
)

// HealthProbe periodically lists users to check that the repository answers
// and reports the result to every registered [StatusFunc].
type HealthProbe struct {
	repository store.UserRepository
	interval   time.Duration
	sinks      []StatusFunc

	logger *logger.Logger
}

func NewHealthProbe(repository store.UserRepository, interval time.Duration, logger *logger.Logger, sinks ...StatusFunc) *HealthProbe {
	return &HealthProbe{
		repository: repository,
		interval:   interval,
		sinks:      sinks,
		logger:     logger,
	}
}

// Run probes once immediately and then on every tick until ctx is done.
// Every sink is reported down on exit.
func (p *HealthProbe) Run(ctx context.Context) error {
	p.logger.Info().Dur("interval", p.interval).Msg("repository health probe started")
	defer p.report(false)

	p.Probe(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("repository health probe stopped")
			return nil
		case <-ticker.C:
			p.Probe(ctx)
		}
	}
}

// Probe performs a single check and returns its outcome.
func (p *HealthProbe) Probe(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	_, err := p.repository.List(probeCtx)
	up := err == nil
	if !up {
		p.logger.Warn().Err(err).Msg("repository health probe failed")
	}

	p.report(up)
	return up
}

func (p *HealthProbe) report(up bool) {
	for _, sink := range p.sinks {
		sink(up)
	}
}
