// Package workers предоставляет ограниченный пул для фоновых задач
// нормализации: семафор ограничивает параллелизм, опциональный
// лимитер сглаживает скорость поступления задач.
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/time/rate"
)

// Pool пул воркеров с ограничением параллелизма
type Pool struct {
	sem     chan struct{}
	limiter *rate.Limiter
	wg      sync.WaitGroup
	logger  *slog.Logger
}

// Option настройка пула
type Option func(*Pool)

// WithRateLimit включает ограничение скорости приема задач
func WithRateLimit(perSecond float64, burst int) Option {
	return func(p *Pool) {
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewPool создает пул с заданным числом воркеров
func NewPool(size int, opts ...Option) (*Pool, error) {
	if size <= 0 {
		return nil, fmt.Errorf("workers: размер пула должен быть положительным, получен %d", size)
	}
	p := &Pool{
		sem:    make(chan struct{}, size),
		logger: slog.Default().With("component", "workers"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Submit ставит задачу в пул. Блокируется до освобождения слота либо
// отмены контекста; задача получает тот же контекст.
func (p *Pool) Submit(ctx context.Context, task func(context.Context)) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("workers: ожидание лимитера: %w", err)
		}
	}

	select {
	case p.sem <- struct{}{}:
	case <-ctx.Done():
		return fmt.Errorf("workers: контекст отменен до получения слота: %w", ctx.Err())
	}

	p.wg.Add(1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("паника в задаче пула", "panic", r)
			}
			<-p.sem
			p.wg.Done()
		}()
		task(ctx)
	}()
	return nil
}

// Wait дожидается завершения всех принятых задач
func (p *Pool) Wait() {
	p.wg.Wait()
}
