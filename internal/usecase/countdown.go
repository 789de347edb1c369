package usecase

import (
	"context"
	"time"

	"beachrent/internal/domain/entities"
)

const (
	lowTimeThreshold     = 10 * time.Minute
	veryLowTimeThreshold = time.Minute
)

// Countdown is the derived per-tick view of an active rental. It is never
// stored; every tick recomputes it from wall-clock time and the order's
// timestamps, so there is no drift to correct.
type Countdown struct {
	RemainingMs     int64   `json:"remaining_ms"`
	ElapsedFraction float64 `json:"elapsed_fraction"`
	LowTime         bool    `json:"low_time"`
	VeryLowTime     bool    `json:"very_low_time"`
}

// ComputeCountdown derives the countdown for an order at the given instant.
// CountdownStartedAt defaults to DeliveredAt and CountdownEndsAt to
// DeliveredAt plus the rental duration. Remaining is clamped at zero and
// stays there; the elapsed fraction guards against a zero-length window.
// Orders with no delivery timestamp yield the zero Countdown.
func ComputeCountdown(now time.Time, order entities.Order) Countdown {
	if order.DeliveredAt == nil {
		return Countdown{}
	}

	start := *order.DeliveredAt
	if order.CountdownStartedAt != nil {
		start = *order.CountdownStartedAt
	}
	end := order.DeliveredAt.Add(time.Duration(order.DurationHours) * time.Hour)
	if order.CountdownEndsAt != nil {
		end = *order.CountdownEndsAt
	}

	total := end.Sub(start)
	remaining := end.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	c := Countdown{
		RemainingMs: remaining.Milliseconds(),
		LowTime:     remaining < lowTimeThreshold,
		VeryLowTime: remaining < veryLowTimeThreshold,
	}
	if total > 0 {
		c.ElapsedFraction = float64(total-remaining) / float64(total)
	}
	return c
}

// CountdownTicker recomputes a countdown on a fixed interval for as long as
// the consumer is attached. The interval is the scoped resource: it starts
// on the first call and is released unconditionally when ctx is cancelled or
// emit returns an error (the screen-unmount analogue).
type CountdownTicker struct {
	interval time.Duration
}

func NewCountdownTicker(interval time.Duration) *CountdownTicker {
	if interval <= 0 {
		interval = time.Second
	}
	return &CountdownTicker{interval: interval}
}

// Run emits one snapshot immediately, then one per interval. It returns nil
// on context cancellation and propagates the first emit error otherwise.
func (t *CountdownTicker) Run(ctx context.Context, order entities.Order, emit func(Countdown) error) error {
	if err := emit(ComputeCountdown(time.Now(), order)); err != nil {
		return err
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := emit(ComputeCountdown(time.Now(), order)); err != nil {
				return err
			}
		case <-ctx.Done():
			return nil
		}
	}
}
