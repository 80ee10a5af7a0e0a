package ui

import (
	"fmt"
	"image"
	"log/slog"
	"math"

	"github.com/kcgauge/ssd1306"
	"github.com/kcgauge/ssd1306/font"
)

// Display is the part of *ssd1306.Dev used by Gauge.
type Display interface {
	Print(x, y int, text string, class font.Class, align ssd1306.Align) error
	DrawValue(x, y int, value float64, align ssd1306.Align) error
	Clear(x, y, width, height int)
	Render() error
	Bounds() image.Rectangle
}

// Gauge shows a single value with its title and unit.
//
// A Gauge is not safe for concurrent use.
type Gauge struct {
	d      Display
	screen Screen
	log    *slog.Logger
	value  float64
}

// NewGauge returns a gauge drawing on d. Nothing is drawn until Start.
func NewGauge(d Display, screen Screen, logger *slog.Logger) *Gauge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gauge{d: d, screen: screen, log: logger, value: screen.Min}
}

// Start draws the static labels and the initial value.
func (g *Gauge) Start() error {
	if err := g.d.Print(0, 0, g.screen.Title, font.Text, ssd1306.AlignLeft); err != nil {
		return fmt.Errorf("ui: title: %w", err)
	}
	if err := g.d.Print(0, font.TextHeight, g.screen.Unit, font.Text, ssd1306.AlignLeft); err != nil {
		return fmt.Errorf("ui: unit: %w", err)
	}
	return g.Update(g.value)
}

// Update shows v, clamped to the screen range, and renders the frame.
func (g *Gauge) Update(v float64) error {
	v = Clamp(v, g.screen.Min, g.screen.Max)

	b := g.d.Bounds()
	g.d.Clear(g.screen.ClearX, g.screen.ClearY, b.Max.X-g.screen.ClearX, b.Max.Y-g.screen.ClearY)
	if err := g.d.DrawValue(g.screen.ValueX, g.screen.ValueY, v, ssd1306.AlignRight); err != nil {
		return err
	}
	if err := g.d.Render(); err != nil {
		return err
	}
	g.value = v
	g.log.Debug("gauge updated", "value", v)
	return nil
}

// Value returns the value currently shown.
func (g *Gauge) Value() float64 {
	return g.value
}

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
