package interval

import (
	"testing"
	"time"

	"github.com/go-drift/drift/pkg/animation"
	drifttest "github.com/go-drift/drift/pkg/testing"
)

func useFakeClock(t *testing.T) *drifttest.FakeClock {
	t.Helper()
	clk := drifttest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestInterval_FiresOncePerPeriod(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	iv := New(time.Second, func() { calls++ })
	t.Cleanup(iv.Dispose)
	iv.Start()

	clk.Advance(999 * time.Millisecond)
	animation.StepTickers()
	if calls != 0 {
		t.Fatalf("expected no callback before a full period, got %d", calls)
	}

	clk.Advance(time.Millisecond)
	animation.StepTickers()
	if calls != 1 {
		t.Fatalf("expected 1 callback after one period, got %d", calls)
	}

	// Repeated frames inside the same period do not fire again.
	animation.StepTickers()
	animation.StepTickers()
	if calls != 1 {
		t.Errorf("expected 1 callback, got %d", calls)
	}
}

func TestInterval_CatchesUpOnSparseFrames(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	iv := New(time.Second, func() { calls++ })
	t.Cleanup(iv.Dispose)
	iv.Start()

	clk.Advance(3500 * time.Millisecond)
	animation.StepTickers()
	if calls != 3 {
		t.Errorf("expected 3 callbacks after 3.5 periods, got %d", calls)
	}
	if iv.Fired() != 3 {
		t.Errorf("expected Fired() = 3, got %d", iv.Fired())
	}
}

func TestInterval_StopCancelsCallbacks(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	iv := New(time.Second, func() { calls++ })
	t.Cleanup(iv.Dispose)
	iv.Start()

	clk.Advance(time.Second)
	animation.StepTickers()
	iv.Stop()
	if iv.IsActive() {
		t.Fatal("expected interval to be inactive after Stop")
	}

	clk.Advance(5 * time.Second)
	animation.StepTickers()
	if calls != 1 {
		t.Errorf("expected no callbacks after Stop, got %d total", calls)
	}
}

func TestInterval_StopInsideCallback(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	var iv *Interval
	iv = New(time.Second, func() {
		calls++
		iv.Stop()
	})
	t.Cleanup(iv.Dispose)
	iv.Start()

	clk.Advance(4 * time.Second)
	animation.StepTickers()
	if calls != 1 {
		t.Errorf("expected catch-up to halt after Stop, got %d callbacks", calls)
	}
}

func TestInterval_DisposeIsFinal(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	iv := New(time.Second, func() { calls++ })
	iv.Start()
	iv.Dispose()

	if animation.HasActiveTickers() {
		t.Error("expected no active tickers after Dispose")
	}

	iv.Start()
	clk.Advance(2 * time.Second)
	animation.StepTickers()
	if calls != 0 {
		t.Errorf("expected disposed interval to stay silent, got %d callbacks", calls)
	}
}

func TestInterval_NonPositivePeriod(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	iv := New(0, func() { calls++ })
	t.Cleanup(iv.Dispose)
	iv.Start()

	clk.Advance(time.Minute)
	animation.StepTickers()
	if calls != 0 {
		t.Errorf("expected zero-period interval never to fire, got %d", calls)
	}
}

func TestInterval_RestartResetsCount(t *testing.T) {
	clk := useFakeClock(t)
	calls := 0
	iv := New(time.Second, func() { calls++ })
	t.Cleanup(iv.Dispose)
	iv.Start()

	clk.Advance(2 * time.Second)
	animation.StepTickers()
	iv.Stop()

	iv.Start()
	clk.Advance(time.Second)
	animation.StepTickers()
	if calls != 3 {
		t.Errorf("expected 3 callbacks across restart, got %d", calls)
	}
	if iv.Fired() != 1 {
		t.Errorf("expected Fired() = 1 after restart, got %d", iv.Fired())
	}
}
