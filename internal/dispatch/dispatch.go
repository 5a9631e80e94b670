// Package dispatch sends new jobs in rate-limited batches and marks them seen.
package dispatch

import (
	"context"
	"log"
	"time"

	"github.com/shubhamxsingh07/jobFinderBot/internal/clock"
	"github.com/shubhamxsingh07/jobFinderBot/internal/config"
	"github.com/shubhamxsingh07/jobFinderBot/internal/dedup"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
)

// Notifier delivers one job alert.
type Notifier interface {
	SendJob(job scraper.Job, label string) error
}

type Pipeline struct {
	notifier  Notifier
	clock     clock.Clock
	batchSize int
	interSend time.Duration
	cooldown  time.Duration
}

func New(n Notifier, c clock.Clock, d config.Delays) *Pipeline {
	size := d.BatchSize
	if size <= 0 {
		size = 10
	}
	return &Pipeline{
		notifier:  n,
		clock:     c,
		batchSize: size,
		interSend: d.InterSend,
		cooldown:  d.BatchCooldown,
	}
}

// NewJobs returns the jobs whose id is not in seen, in order. Repeated ids in
// jobs keep only their first occurrence.
func NewJobs(jobs []scraper.Job, seen *dedup.SeenSet) []scraper.Job {
	local := make(map[string]struct{})
	var out []scraper.Job
	for _, j := range jobs {
		if seen.Has(j.ID) {
			continue
		}
		if _, dup := local[j.ID]; dup {
			continue
		}
		local[j.ID] = struct{}{}
		out = append(out, j)
	}
	return out
}

// Process notifies every new job and adds its id to seen right after the
// attempt, whether the send succeeded or not. Between batches it waits for
// the cooldown. It returns how many jobs were attempted; a non-nil error means
// ctx ended while waiting.
func (p *Pipeline) Process(ctx context.Context, jobs []scraper.Job, seen *dedup.SeenSet, label string) (int, error) {
	newJobs := NewJobs(jobs, seen)
	sent := 0

	for i := 0; i < len(newJobs); i += p.batchSize {
		end := i + p.batchSize
		if end > len(newJobs) {
			end = len(newJobs)
		}
		batch := newJobs[i:end]

		for _, job := range batch {
			log.Printf("  📨 %s @ %s", job.Role, job.Company)
			if err := p.notifier.SendJob(job, label); err != nil {
				log.Printf("Error sending TG: %v", err)
			}
			seen.Add(job.ID)
			sent++

			//small delay to avoid 429
			if err := p.clock.Sleep(ctx, p.interSend); err != nil {
				return sent, err
			}
		}

		//more batches coming, cool down
		if end < len(newJobs) {
			log.Printf("Sent %d jobs. Waiting %v before next batch...", len(batch), p.cooldown)
			if err := p.clock.Sleep(ctx, p.cooldown); err != nil {
				return sent, err
			}
		}
	}
	return sent, nil
}
