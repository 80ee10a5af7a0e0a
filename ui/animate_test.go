package ui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

func TestEasing(t *testing.T) {
	fn, err := Easing("linear")
	require.NoError(t, err)
	assert.InDelta(t, 5, fn(0.5, 0, 10, 1), 1e-6)

	for name := range easings {
		_, err := Easing(name)
		assert.NoError(t, err, name)
	}

	_, err = Easing("wobble")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "linear")
}

func TestAnimate(t *testing.T) {
	g, d, _ := newTestGauge()
	require.NoError(t, g.Update(10))
	d.values = nil

	err := Animate(context.Background(), g, 110, 100*time.Millisecond, 2*time.Millisecond, ease.Linear)
	require.NoError(t, err)

	require.Greater(t, len(d.values), 1, "the roll takes several frames")
	assert.Equal(t, 110.0, d.values[len(d.values)-1])
	assert.Equal(t, 110.0, g.Value())
	for i := 1; i < len(d.values); i++ {
		assert.GreaterOrEqual(t, d.values[i], d.values[i-1], "frame %d goes backwards", i)
	}
}

func TestAnimateDown(t *testing.T) {
	g, d, _ := newTestGauge()
	require.NoError(t, g.Update(50))
	d.values = nil

	require.NoError(t, Animate(context.Background(), g, 0.5, 20*time.Millisecond, time.Millisecond, ease.OutCubic))
	assert.Equal(t, 0.5, g.Value())
	for _, v := range d.values {
		assert.True(t, v >= 0.5 && v <= 50, "value %g out of range", v)
	}
}

func TestAnimateZeroDuration(t *testing.T) {
	g, d, _ := newTestGauge()

	require.NoError(t, Animate(context.Background(), g, 42, 0, time.Hour, ease.Linear))
	assert.Equal(t, []float64{42}, d.values)
}

func TestAnimateCancelled(t *testing.T) {
	g, d, _ := newTestGauge()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Animate(ctx, g, 42, time.Second, time.Hour, ease.Linear)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.values)
}

func TestRun(t *testing.T) {
	g, d, logs := newTestGauge()
	cfg := DefaultConfig()
	cfg.Tween = 0

	src := NewLineStream(strings.NewReader("10\n20\n"), nil)
	require.NoError(t, Run(context.Background(), g, src, cfg))
	assert.Equal(t, []float64{10, 20}, d.values)
	assert.Contains(t, logs.String(), "reading")
}

func TestRunCancelledWhileWaiting(t *testing.T) {
	g, _, _ := newTestGauge()
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() { done <- Run(ctx, g, NewLineStream(pr, nil), DefaultConfig()) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked on an idle input after cancellation")
	}
}

func TestRunUnknownEasing(t *testing.T) {
	g, _, _ := newTestGauge()
	cfg := DefaultConfig()
	cfg.Ease = "wobble"

	err := Run(context.Background(), g, NewLineStream(strings.NewReader("1\n"), nil), cfg)
	assert.Error(t, err)
}
