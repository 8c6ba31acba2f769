package generate

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ericlevine/barnode"
)

// Job is one entry of a batch. An empty Format writes Config.FileName;
// otherwise the output is returned as a base64 stream in that format.
type Job struct {
	Config barnode.Config
	Text   string
	Format string
}

// Batch runs jobs in parallel, at most GOMAXPROCS at a time, and returns
// their results in job order. Failures are reported per job and never
// stop the batch.
func (g *Generator) Batch(ctx context.Context, jobs []Job) []barnode.Result {
	results := make([]barnode.Result, len(jobs))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		i, job := i, job
		eg.Go(func() error {
			if job.Format == "" {
				results[i] = g.CreateFile(ctx, job.Config, job.Text)
			} else {
				results[i] = g.CreateStream(ctx, job.Config, job.Text, job.Format)
			}
			return nil
		})
	}
	_ = eg.Wait()
	loggerFromContext(ctx, g.logger).Debug("batch done", "jobs", len(jobs))
	return results
}
