package workpool

import (
	"context"

	"github.com/AbdulWasayUl/go-weather-widget/internal/channels"
	"github.com/AbdulWasayUl/go-weather-widget/internal/logger"
	"github.com/AbdulWasayUl/go-weather-widget/models"
)

// WorkerPool runs queued triggers. With more than one worker, queries may
// overlap; the pipeline's generation check decides which result is kept.
type WorkerPool struct {
	WorkerCount int
	Channels    *channels.Channels
}

func New(channels *channels.Channels, workerCount int) *WorkerPool {
	return &WorkerPool{
		WorkerCount: workerCount,
		Channels:    channels,
	}
}

func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.WorkerCount; i++ {
		go wp.worker(ctx, i)
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	logger.Debug("Worker %d started.", id)
	for t := range wp.Channels.Triggers {
		wp.run(ctx, id, t)
	}
	logger.Debug("Worker %d stopped.", id)
}

func (wp *WorkerPool) run(ctx context.Context, id int, t models.Trigger) {
	defer wp.Channels.WG.Done()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("[%s] Worker %d recovered from panic for %q: %v", t.Source, id, t.Query, r)
		}
	}()

	if t.RunFunc == nil {
		logger.Error("[%s] Worker %d received trigger without RunFunc for %q", t.Source, id, t.Query)
		return
	}

	logger.Info("[%s] Worker %d processing %q", t.Source, id, t.Query)
	if err := t.RunFunc(ctx); err != nil {
		logger.Error("[%s] Worker %d failed for %q: %v", t.Source, id, t.Query, err)
		return
	}
	logger.Info("[%s] Worker %d completed %q", t.Source, id, t.Query)
}

// Stop closes the queue; workers exit once it drains.
func (wp *WorkerPool) Stop() {
	wp.Channels.Close()
}
