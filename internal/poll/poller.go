package poll

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/shubhamxsingh07/jobFinderBot/internal/clock"
	"github.com/shubhamxsingh07/jobFinderBot/internal/dedup"
	"github.com/shubhamxsingh07/jobFinderBot/internal/dispatch"
	"github.com/shubhamxsingh07/jobFinderBot/internal/scraper"
)

// Phase is a group of sources whose jobs are dispatched together.
type Phase struct {
	Name    string
	Sources []scraper.Scraper
}

// Summarizer reports a finished cycle.
type Summarizer interface {
	SendSummary(count, intervalMinutes int) error
}

type Poller struct {
	phases          []Phase
	store           *dedup.Store
	pipeline        *dispatch.Pipeline
	summary         Summarizer
	clock           clock.Clock
	label           string
	intervalMinutes int
	backoff         time.Duration
	status          *Tracker
}

type Options struct {
	Phases          []Phase
	Store           *dedup.Store
	Pipeline        *dispatch.Pipeline
	Summary         Summarizer
	Clock           clock.Clock
	Label           string
	IntervalMinutes int
	Backoff         time.Duration
	Status          *Tracker
}

func New(o Options) *Poller {
	if o.Clock == nil {
		o.Clock = clock.Real{}
	}
	if o.Status == nil {
		o.Status = NewTracker(o.Label)
	}
	return &Poller{
		phases:          o.Phases,
		store:           o.Store,
		pipeline:        o.Pipeline,
		summary:         o.Summary,
		clock:           o.Clock,
		label:           o.Label,
		intervalMinutes: o.IntervalMinutes,
		backoff:         o.Backoff,
		status:          o.Status,
	}
}

func (p *Poller) Status() *Tracker {
	return p.status
}

// RunOnce runs one cycle: load the seen set, dispatch every phase, save.
// It returns the number of jobs dispatched.
func (p *Poller) RunOnce(ctx context.Context) (int, error) {
	log.Println("Starting scan...")
	seen := p.store.Load()

	total := 0
	for _, ph := range p.phases {
		log.Printf("Fetching %s jobs...", ph.Name)
		jobs := collect(ctx, ph.Sources)

		n, err := p.pipeline.Process(ctx, jobs, seen, p.label)
		total += n
		if err != nil {
			//keep what was already sent
			p.save(seen)
			return total, err
		}
	}

	p.save(seen)
	log.Printf("Scan complete. Found %d new jobs in total.", total)

	if total > 0 {
		if err := p.summary.SendSummary(total, p.intervalMinutes); err != nil {
			log.Printf("Error sending TG summary: %v", err)
		}
	} else {
		log.Println("No new jobs found this cycle.")
	}
	return total, nil
}

func (p *Poller) save(seen *dedup.SeenSet) {
	if err := p.store.Save(seen); err != nil {
		log.Printf("⚠️ Failed to save seen jobs: %v", err)
	}
}

func collect(ctx context.Context, sources []scraper.Scraper) []scraper.Job {
	var all []scraper.Job
	for _, s := range sources {
		if ctx.Err() != nil {
			break
		}
		jobs, err := s.Scrape(ctx)
		if err != nil {
			log.Printf("❌ Error running source %s: %v", s.Name(), err)
		}
		all = append(all, jobs...)
	}
	return all
}

// Run repeats cycles until ctx is done. A failed cycle is retried after the
// backoff, a successful one after the scan interval.
func (p *Poller) Run(ctx context.Context) error {
	for {
		cycleID := uuid.NewString()
		p.status.begin(cycleID, p.clock.Now())
		log.Printf("🔄 Cycle %s", cycleID)

		n, err := p.safeRunOnce(ctx)
		p.status.finish(n, err, p.clock.Now())

		if ctx.Err() != nil {
			return ctx.Err()
		}

		wait := time.Duration(p.intervalMinutes) * time.Minute
		if err != nil {
			log.Printf("Error in scan loop: %v", err)
			wait = p.backoff
		} else {
			log.Printf("Sleeping for %d minutes...", p.intervalMinutes)
		}

		if err := p.clock.Sleep(ctx, wait); err != nil {
			return err
		}
	}
}

var errPanic = errors.New("cycle panicked")

func (p *Poller) safeRunOnce(ctx context.Context) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return p.RunOnce(ctx)
}
