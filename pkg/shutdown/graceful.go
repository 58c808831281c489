package shutdown

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"time"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
)

type Stoppable interface {
	Shutdown(ctx context.Context) error
}

// Func adapts a close function to Stoppable
type Func func(ctx context.Context) error

func (f Func) Shutdown(ctx context.Context) error {
	return f(ctx)
}

// Graceful blocks until one of signals arrives, then stops every Stoppable in
// order within a shared timeout
func Graceful(signals []os.Signal, timeout time.Duration, log *logging.Logger, stoppables ...Stoppable) {
	sigCtx, stop := signal.NotifyContext(context.Background(), signals...)
	defer stop()

	<-sigCtx.Done()
	log.Info("shutdown signal received")

	if err := Stop(context.Background(), timeout, stoppables...); err != nil {
		log.Warn("graceful shutdown completed with error", "err", err)
	} else {
		log.Info("graceful shutdown completed successfully")
	}
}

// Stop shuts down stoppables in order and joins their errors; a failure does
// not prevent later ones from running
func Stop(ctx context.Context, timeout time.Duration, stoppables ...Stoppable) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var errs []error
	for _, s := range stoppables {
		if s == nil {
			continue
		}
		if err := s.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
