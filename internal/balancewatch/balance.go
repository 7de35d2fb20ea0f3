// Package balancewatch polls account balances and streams change events to
// subscribers. A history update for an account usually implies a balance
// move, so the sync pipeline wires its update notifications into a balance
// refresh here.
package balancewatch

import (
	"context"
	"sync"
	"time"

	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/pkg/x/chflow"

	"github.com/shopspring/decimal"
)

// defaultPollInterval is how often a subscribed address is re-checked when
// no interval is configured.
const defaultPollInterval = 30 * time.Second

// BalanceChange is one observed balance transition for a subscribed address.
type BalanceChange struct {
	Address    string
	Previous   decimal.Decimal
	Current    decimal.Decimal
	ObservedAt time.Time
}

// BalanceSource supplies the current balance for an address.
type BalanceSource interface {
	// FetchBalance returns the address's current native balance in asset
	// units.
	FetchBalance(ctx context.Context, address string) (decimal.Decimal, error)
}

// Watcher polls a BalanceSource and emits BalanceChange events for every
// subscribed address whose balance moved between two polls.
type Watcher struct {
	source       BalanceSource
	pollInterval time.Duration
}

// Option configures the Watcher.
type Option func(*Watcher)

// WithPollInterval overrides how often each subscription re-checks its
// address balance.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// New creates a balance watcher over the given source.
func New(source BalanceSource, opts ...Option) *Watcher {
	w := &Watcher{
		source:       source,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Subscription is one active balance watch. Changes delivers an event for
// every observed move; the channel is closed after Unsubscribe or when the
// subscribing context is canceled.
type Subscription struct {
	changes chan BalanceChange
	cancel  context.CancelFunc
	once    sync.Once
}

// Changes returns the subscription's event channel.
func (s *Subscription) Changes() <-chan BalanceChange {
	return s.changes
}

// Unsubscribe stops the polling loop and closes the event channel. It is
// safe to call more than once.
func (s *Subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}

// Subscribe begins polling the address and returns the subscription handle.
// The first poll establishes the baseline and emits nothing.
func (w *Watcher) Subscribe(ctx context.Context, address string) *Subscription {
	ctx, cancel := context.WithCancel(ctx)

	sub := &Subscription{
		changes: make(chan BalanceChange),
		cancel:  cancel,
	}
	go w.poll(ctx, address, sub.changes)

	return sub
}

// Refresh checks the address once against the given baseline and returns the
// current balance plus the change event when it moved. It backs the
// event-driven path where a history update triggers an immediate re-check
// instead of waiting for the next poll tick.
func (w *Watcher) Refresh(ctx context.Context, address string, baseline decimal.Decimal) (decimal.Decimal, *BalanceChange, error) {
	current, err := w.source.FetchBalance(ctx, address)
	if err != nil {
		return baseline, nil, err
	}

	if current.Equal(baseline) {
		return current, nil, nil
	}

	return current, &BalanceChange{
		Address:    address,
		Previous:   baseline,
		Current:    current,
		ObservedAt: time.Now(),
	}, nil
}

// poll drives one subscription until ctx is canceled. A fetch failure is
// logged and the previous baseline kept, so a flaky provider never produces
// a phantom change event.
func (w *Watcher) poll(ctx context.Context, address string, changes chan<- BalanceChange) {
	defer close(changes)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	var (
		baseline    decimal.Decimal
		baselineSet bool
	)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		current, err := w.source.FetchBalance(ctx, address)
		if err != nil {
			logger.Warn(ctx, "balance fetch failed", "wallet.address", address, "error", err)
			continue
		}

		if !baselineSet {
			baseline, baselineSet = current, true
			continue
		}

		if current.Equal(baseline) {
			continue
		}

		change := BalanceChange{
			Address:    address,
			Previous:   baseline,
			Current:    current,
			ObservedAt: time.Now(),
		}
		baseline = current

		if ok := chflow.Send(ctx, changes, change); !ok {
			return
		}
	}
}
