package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outExpo":    ease.OutExpo,
	"outBack":    ease.OutBack,
	"outBounce":  ease.OutBounce,
}

// Easing returns the easing function called name.
func Easing(name string) (ease.TweenFunc, error) {
	fn, ok := easings[name]
	if !ok {
		names := make([]string, 0, len(easings))
		for n := range easings {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("ui: unknown easing %q, want one of %s", name, strings.Join(names, ", "))
	}
	return fn, nil
}

// Animate rolls the gauge from its current value to target over d, drawing
// one frame every frame interval. The last frame always shows target
// exactly. A zero d jumps straight to target.
//
// Animate returns ctx.Err() when ctx is cancelled before the end.
func Animate(ctx context.Context, g *Gauge, target float64, d, frame time.Duration, fn ease.TweenFunc) error {
	if d <= 0 {
		return g.Update(target)
	}
	tw := gween.New(float32(g.Value()), float32(target), float32(d.Seconds()), fn)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			v, done := tw.Update(float32(now.Sub(last).Seconds()))
			last = now
			if done {
				return g.Update(target)
			}
			if err := g.Update(float64(v)); err != nil {
				return err
			}
		}
	}
}
