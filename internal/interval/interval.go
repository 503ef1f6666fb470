// Package interval provides a recurring callback driven by the frame loop.
//
// An Interval is the setInterval of a Drift app: it runs a callback once per
// period on the UI thread. It rides on [animation.Ticker], so it reads time
// from the animation clock and is stepped by the engine (or the widget
// tester) once per frame. Tests advance time with a fake clock instead of
// sleeping.
//
// Own an Interval from a state with [core.UseController] so that it is
// stopped in the same step that disposes the state:
//
//	s.interval = core.UseController(s, func() *interval.Interval {
//	    return interval.New(time.Second, s.tick)
//	})
//	s.interval.Start()
package interval

import (
	"time"

	"github.com/go-drift/drift/pkg/animation"
)

// Interval invokes a callback once per Period while active.
type Interval struct {
	// Period is the time between callbacks. Non-positive periods never fire.
	Period time.Duration

	callback func()
	ticker   *animation.Ticker
	fired    int64
	disposed bool
}

// New creates a stopped interval.
func New(period time.Duration, callback func()) *Interval {
	return &Interval{
		Period:   period,
		callback: callback,
	}
}

// Start begins counting periods from the current animation time.
// Calling Start on an active or disposed interval does nothing.
func (i *Interval) Start() {
	if i.disposed || i.IsActive() {
		return
	}
	i.fired = 0
	i.ticker = animation.NewTicker(i.tick)
	i.ticker.Start()
}

// Stop cancels future callbacks. Periods already delivered are not undone.
func (i *Interval) Stop() {
	if i.ticker == nil {
		return
	}
	i.ticker.Stop()
	i.ticker = nil
}

// IsActive reports whether the interval is running.
func (i *Interval) IsActive() bool {
	return i.ticker != nil && i.ticker.IsActive()
}

// Fired returns the number of callbacks delivered since the last Start.
func (i *Interval) Fired() int64 {
	return i.fired
}

// Dispose stops the interval and releases the callback.
func (i *Interval) Dispose() {
	i.Stop()
	i.callback = nil
	i.disposed = true
}

func (i *Interval) tick(elapsed time.Duration) {
	if i.Period <= 0 {
		return
	}
	// Frames can be sparse; deliver every period that elapsed, in order.
	due := int64(elapsed / i.Period)
	for i.fired < due {
		if !i.IsActive() || i.callback == nil {
			return
		}
		i.fired++
		i.callback()
	}
}
