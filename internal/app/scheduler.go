package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Warmer перечитывает снимки репетиторов в кеш
type Warmer interface {
	WarmCache(ctx context.Context) (int, error)
}

// CacheWarmer периодически прогревает кеш снимков репетиторов
type CacheWarmer struct {
	warmer   Warmer
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewCacheWarmer создаёт новый планировщик прогрева
func NewCacheWarmer(warmer Warmer, interval time.Duration, logger *zap.Logger) *CacheWarmer {
	return &CacheWarmer{
		warmer:   warmer,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (w *CacheWarmer) Start(ctx context.Context) {
	w.logger.Info("Starting tutor cache warmer", zap.Duration("interval", w.interval))
	go w.run(ctx)
}

// Stop останавливает задачу и ждёт её завершения
func (w *CacheWarmer) Stop() {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping tutor cache warmer")
		close(w.stopChan)
	})
	<-w.done
}

func (w *CacheWarmer) run(ctx context.Context) {
	defer close(w.done)

	// Первый запуск сразу при старте
	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.warm(ctx)
		case <-w.stopChan:
			w.logger.Info("Cache warm task stopped")
			return
		case <-ctx.Done():
			w.logger.Info("Cache warm task cancelled")
			return
		}
	}
}

func (w *CacheWarmer) warm(ctx context.Context) {
	count, err := w.warmer.WarmCache(ctx)
	if err != nil {
		w.logger.Error("Failed to warm tutor cache", zap.Error(err))
		return
	}

	w.logger.Debug("Tutor cache warmed", zap.Int("tutors", count))
}
