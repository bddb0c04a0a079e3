package worker

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/models"
	"github.com/dealspro/dealspro_api/internal/sse"
)

// PendingCounter reports how many leads await review, per kind.
type PendingCounter interface {
	PendingCounts(ctx context.Context) (map[models.LeadKind]int, error)
}

// PendingDigestWorker periodically tells admins how many leads are waiting.
type PendingDigestWorker struct {
	cron     *cron.Cron
	counter  PendingCounter
	notifier sse.Notifier
	spec     string // cron spec, e.g. "@every 1h"
}

// NewPendingDigestWorker constructs a PendingDigestWorker for the given cron spec.
func NewPendingDigestWorker(counter PendingCounter, notifier sse.Notifier, spec string) *PendingDigestWorker {
	return &PendingDigestWorker{
		cron:     cron.New(),
		counter:  counter,
		notifier: notifier,
		spec:     spec,
	}
}

// Start registers the job and blocks until ctx is canceled.
func (w *PendingDigestWorker) Start(ctx context.Context) error {
	if _, err := w.cron.AddFunc(w.spec, func() { w.run(ctx) }); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	w.cron.Start()
	log.Info().Str("spec", w.spec).Msg("Starting pending digest worker")

	<-ctx.Done()
	<-w.cron.Stop().Done()
	log.Info().Msg("Pending digest worker stopped")
	return nil
}

func (w *PendingDigestWorker) run(ctx context.Context) {
	counts, err := w.counter.PendingCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to count pending leads")
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return
	}

	log.Info().
		Int("brands", counts[models.LeadKindBrand]).
		Int("influencers", counts[models.LeadKindInfluencer]).
		Msg("Leads awaiting review")
	w.notifier.NotifyPendingDigest(counts)
}
