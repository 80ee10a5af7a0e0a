package ui

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// Source produces gauge readings. Next returns io.EOF when there are no
// more readings. Next may stay blocked on its input after ctx is done.
type Source interface {
	Next(ctx context.Context) (float64, error)
}

type reading struct {
	v   float64
	err error
}

// nextReading returns the next reading of src, or ctx.Err() as soon as ctx
// is done. A read still blocked at that point is abandoned and src must not
// be used again.
func nextReading(ctx context.Context, src Source) (float64, error) {
	ch := make(chan reading, 1)
	go func() {
		v, err := src.Next(ctx)
		ch <- reading{v, err}
	}()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

// FloatStream reads raw readings from a serial line: each reading is a
// 4 byte big-endian IEEE 754 single precision float.
type FloatStream struct {
	r io.Reader
}

// NewFloatStream returns a FloatStream reading from r.
func NewFloatStream(r io.Reader) *FloatStream {
	return &FloatStream{r: r}
}

// Next implements Source. A stream ending in the middle of a reading returns
// io.ErrUnexpectedEOF.
func (s *FloatStream) Next(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	var buf [4]byte
	if _, err := io.ReadFull(s.r, buf[:]); err != nil {
		return 0, err
	}
	return float64(math.Float32frombits(binary.BigEndian.Uint32(buf[:]))), nil
}

// LineStream reads one decimal reading per line. Blank lines and lines that
// do not parse are logged and skipped.
type LineStream struct {
	sc  *bufio.Scanner
	log *slog.Logger
}

// NewLineStream returns a LineStream reading from r.
func NewLineStream(r io.Reader, logger *slog.Logger) *LineStream {
	if logger == nil {
		logger = slog.Default()
	}
	return &LineStream{sc: bufio.NewScanner(r), log: logger}
}

// Next implements Source.
func (s *LineStream) Next(ctx context.Context) (float64, error) {
	for s.sc.Scan() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line := strings.TrimSpace(s.sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			s.log.Warn("skipping reading", "line", line)
			continue
		}
		return v, nil
	}
	if err := s.sc.Err(); err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// RandomSource produces random readings in [Min, Max), one every Hold.
type RandomSource struct {
	Min, Max float64
	Hold     time.Duration

	rnd   *rand.Rand
	first bool
}

// NewRandomSource returns a RandomSource seeded with seed.
func NewRandomSource(lo, hi float64, hold time.Duration, seed uint64) (*RandomSource, error) {
	if hi <= lo {
		return nil, fmt.Errorf("ui: invalid random range [%g, %g)", lo, hi)
	}
	return &RandomSource{
		Min:   lo,
		Max:   hi,
		Hold:  hold,
		rnd:   rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		first: true,
	}, nil
}

// Next implements Source. It never returns io.EOF.
func (s *RandomSource) Next(ctx context.Context) (float64, error) {
	if !s.first && s.Hold > 0 {
		t := time.NewTimer(s.Hold)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-t.C:
		}
	}
	s.first = false
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.Min + s.rnd.Float64()*(s.Max-s.Min), nil
}

// Run feeds the readings of src to the gauge, animating each change, until
// src is exhausted or ctx is cancelled. An exhausted source is not an error.
// Run returns promptly on cancellation even while src is blocked.
func Run(ctx context.Context, g *Gauge, src Source, cfg Config) error {
	fn, err := Easing(cfg.Ease)
	if err != nil {
		return err
	}
	for {
		v, err := nextReading(ctx, src)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ui: reading: %w", err)
		}
		g.log.Info("reading", "value", v)
		if err := Animate(ctx, g, v, cfg.Tween, cfg.Frame, fn); err != nil {
			return err
		}
	}
}
