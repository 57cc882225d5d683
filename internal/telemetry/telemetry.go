// Package telemetry counts match activity with OpenTelemetry instruments.
package telemetry

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/Garsondee/Star-Shoot/internal/game"
)

const instrumentationName = "github.com/Garsondee/Star-Shoot/internal/telemetry"

// Provider owns the meter provider. A disabled Provider hands out no-op
// meters and reports no totals.
type Provider struct {
	enabled bool
	reader  *sdkmetric.ManualReader
	mp      *sdkmetric.MeterProvider
}

// NewProvider builds an in-process meter provider and installs it as the
// global one when enabled.
func NewProvider(enabled bool) *Provider {
	p := &Provider{enabled: enabled}
	if !enabled {
		return p
	}
	p.reader = sdkmetric.NewManualReader()
	p.mp = sdkmetric.NewMeterProvider(sdkmetric.WithReader(p.reader))
	otel.SetMeterProvider(p.mp)
	return p
}

// Enabled reports whether instruments are live.
func (p *Provider) Enabled() bool { return p.enabled }

// Meter returns the meter recorders should use.
func (p *Provider) Meter() metric.Meter {
	if !p.enabled {
		return noop.Meter{}
	}
	return p.mp.Meter(instrumentationName)
}

// Totals collects every int64 sum, keyed "name{k=v,...}", sorted by key.
func (p *Provider) Totals(ctx context.Context) ([]Total, error) {
	if !p.enabled {
		return nil, nil
	}
	var rm metricdata.ResourceMetrics
	if err := p.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}
	var out []Total
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out = append(out, Total{Key: totalKey(m.Name, dp.Attributes), Value: dp.Value})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Shutdown flushes and stops the provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if !p.enabled {
		return nil
	}
	if err := p.mp.Shutdown(ctx); err != nil {
		return fmt.Errorf("meter provider shutdown: %w", err)
	}
	return nil
}

// Total is one collected counter value.
type Total struct {
	Key   string
	Value int64
}

func totalKey(name string, attrs attribute.Set) string {
	if attrs.Len() == 0 {
		return name
	}
	key := name + "{"
	iter := attrs.Iter()
	for i := 0; iter.Next(); i++ {
		kv := iter.Attribute()
		if i > 0 {
			key += ","
		}
		key += string(kv.Key) + "=" + kv.Value.Emit()
	}
	return key + "}"
}

// Recorder turns match events into counter increments.
type Recorder struct {
	frames    metric.Int64Counter
	fired     metric.Int64Counter
	dropped   metric.Int64Counter
	spawned   metric.Int64Counter
	expired   metric.Int64Counter
	collected metric.Int64Counter
	wins      metric.Int64Counter
}

// NewRecorder creates the instruments on m.
func NewRecorder(m metric.Meter) (*Recorder, error) {
	r := &Recorder{}
	var err error
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&r.frames, "starshoot.match.frames", "Simulation frames stepped"},
		{&r.fired, "starshoot.projectiles.fired", "Projectiles spawned, by side and tier"},
		{&r.dropped, "starshoot.projectiles.dropped", "Projectiles lost to the on-screen cap"},
		{&r.spawned, "starshoot.items.spawned", "Items launched"},
		{&r.expired, "starshoot.items.expired", "Items that drifted off screen"},
		{&r.collected, "starshoot.items.collected", "Items shot, by collecting side"},
		{&r.wins, "starshoot.match.wins", "Matches won, by side"},
	}
	for _, c := range counters {
		*c.dst, err = m.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return nil, fmt.Errorf("creating %s counter: %w", c.name, err)
		}
	}
	return r, nil
}

// Frame counts one stepped frame.
func (r *Recorder) Frame(ctx context.Context) {
	r.frames.Add(ctx, 1)
}

// Record counts every event from one Step.
func (r *Recorder) Record(ctx context.Context, events []game.Event) {
	for _, e := range events {
		side := metric.WithAttributes(attribute.String("side", e.Side.String()))
		switch e.Kind {
		case game.EventFire:
			r.fired.Add(ctx, int64(e.Count), metric.WithAttributes(
				attribute.String("side", e.Side.String()),
				attribute.String("tier", e.Tier.String()),
			))
			if drop := e.Tier.Volley() - e.Count; drop > 0 {
				r.dropped.Add(ctx, int64(drop), side)
			}
		case game.EventItemSpawn:
			r.spawned.Add(ctx, 1)
		case game.EventItemExpired:
			r.expired.Add(ctx, 1)
		case game.EventItemCollected:
			r.collected.Add(ctx, 1, side)
		case game.EventWin:
			r.wins.Add(ctx, 1, side)
		}
	}
}
