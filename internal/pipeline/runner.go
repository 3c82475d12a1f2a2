// Package pipeline runs the fetch -> extract -> publish flow for one or more
// dates with a bounded worker pool.
package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/srw3804/daily-birthdays/internal/births"
	"github.com/srw3804/daily-birthdays/internal/publish"
	"github.com/srw3804/daily-birthdays/internal/wiki"
)

// Runner generates pages for a set of dates. Each date is an independent
// stateless run; failures are isolated per date so one bad page never stops
// the rest.
type Runner struct {
	client  *wiki.Client
	writer  *publish.Writer
	log     *slog.Logger
	section string
	keyword string
	workers int
}

func NewRunner(client *wiki.Client, writer *publish.Writer, log *slog.Logger, section, keyword string, workers int) *Runner {
	if workers <= 0 {
		workers = 2
	}
	return &Runner{
		client:  client,
		writer:  writer,
		log:     log,
		section: section,
		keyword: keyword,
		workers: workers,
	}
}

// Run processes all dates and returns their jobs, in input order.
func (r *Runner) Run(ctx context.Context, dates []time.Time) []*Job {
	jobs := make([]*Job, len(dates))
	for i, d := range dates {
		jobs[i] = NewJob(d.Month().String(), d.Day(), d)
	}

	queue := make(chan *Job)
	var wg sync.WaitGroup
	for range r.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				r.process(ctx, job)
			}
		}()
	}

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			job.Fail(ctx.Err().Error())
		case queue <- job:
		}
	}
	close(queue)
	wg.Wait()
	return jobs
}

func (r *Runner) process(ctx context.Context, job *Job) {
	log := r.log.With("job_id", job.ID, "month", job.Month, "day", job.Day)

	job.SetStatus(StatusFetching)
	doc, err := r.client.PageDocument(ctx, job.Month, job.Day)
	if err != nil {
		log.Error("fetch failed", "error", err)
		job.Fail(err.Error())
		return
	}

	job.SetStatus(StatusExtracting)
	entries := births.Extract(doc, births.Options{
		Section: r.section,
		Date:    job.Date,
		Keyword: r.keyword,
	})

	job.SetStatus(StatusPublishing)
	path, err := r.writer.Write(job.Month, job.Day, entries)
	if err != nil {
		log.Error("publish failed", "error", err)
		job.Fail(err.Error())
		return
	}

	job.Complete(path, len(entries))
	log.Info("published", "entries", len(entries), "path", path)
}

// DatesFrom returns n consecutive calendar dates starting at start.
func DatesFrom(start time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}
