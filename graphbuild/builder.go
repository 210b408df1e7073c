package graphbuild

import (
	"fmt"

	"github.com/riverwatch/floodwave/config"
	"github.com/riverwatch/floodwave/edge"
	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wavegraph"
	"github.com/riverwatch/floodwave/xlog"
)

// buildConfig holds Build tunables assembled by Option functions.
type buildConfig struct {
	isolatedPeaks bool
	peakOpts      []peak.Option
	logger        xlog.Logger
}

// Option configures a Build call.
type Option func(*buildConfig)

// WithIsolatedPeaks includes every detected peak as a vertex, even one with
// no incident edge. The default (edges-only) matches analytic-query
// behaviour; visualisation callers that want to see every candidate crest
// should set this.
func WithIsolatedPeaks() Option {
	return func(c *buildConfig) { c.isolatedPeaks = true }
}

// WithPeakOptions forwards options to every peak.Detect call Build makes
// (for example peak.WithRadius).
func WithPeakOptions(opts ...peak.Option) Option {
	return func(c *buildConfig) { c.peakOpts = append(c.peakOpts, opts...) }
}

// WithLogger injects a logger, forwarded to every peak.Detect call and used
// to report sub-period boundaries and per-period vertex/edge counts.
func WithLogger(logger xlog.Logger) Option {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Build assembles the full flood-wave graph for the stations in ol over
// the period cfg describes. series must have one entry per station ID in
// ol; a station with no entry is treated as having no samples at all
// (every sub-period it is live in contributes no peaks).
func Build(ol *station.OrderedList, series map[string]*station.Series, cfg config.Config, opts ...Option) (*wavegraph.Graph, error) {
	bc := buildConfig{logger: xlog.Discard}
	for _, opt := range opts {
		opt(&bc)
	}

	period, err := cfg.Period()
	if err != nil {
		return nil, err
	}

	allIDs := make([]string, ol.Len())
	for i := 0; i < ol.Len(); i++ {
		allIDs[i] = ol.At(i).ID
	}
	g := wavegraph.NewGraph(allIDs)

	cuts := ol.RiverKMAtBoundaries(period)
	for i := 0; i+1 < len(cuts); i++ {
		start := cuts[i]
		end := cuts[i+1]
		if i != len(cuts)-2 {
			end = end.AddDays(-1)
		}
		if end.Before(start) {
			continue
		}
		sub := station.Interval{Start: start, End: end}
		bc.logger.Debugf("graphbuild: sub-period [%s,%s]", sub.Start, sub.End)
		if err := buildSubPeriod(g, ol, series, sub, cfg, bc); err != nil {
			return nil, err
		}
	}
	bc.logger.Infof("graphbuild: built graph with %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	return g, nil
}

func buildSubPeriod(g *wavegraph.Graph, ol *station.OrderedList, series map[string]*station.Series, sub station.Interval, cfg config.Config, bc buildConfig) error {
	live := ol.LiveAt(sub.Start)
	if len(live) == 0 {
		return nil
	}
	liveIdx := make(map[string]int32, len(live))
	peaks := make(map[string][]peak.Peak, len(live))

	for _, s := range live {
		idx, err := ol.IndexOf(s.ID)
		if err != nil {
			return err
		}
		liveIdx[s.ID] = int32(idx)

		var samples []station.Sample
		if ser, ok := series[s.ID]; ok {
			samples = ser.Window(sub)
		}
		detectOpts := append([]peak.Option{peak.WithRadius(cfg.WindowRadius), peak.WithLogger(bc.logger)}, bc.peakOpts...)
		ps, err := peak.Detect(s, samples, detectOpts...)
		if err != nil {
			return fmt.Errorf("graphbuild: detect peaks for %s: %w", s.ID, err)
		}
		peaks[s.ID] = ps

		if bc.isolatedPeaks {
			for _, p := range ps {
				id := wavegraph.VertexID{Station: int32(idx), Day: p.Date.DayOffset()}
				if err := g.AddVertex(wavegraph.Vertex{ID: id, Peak: p}); err != nil {
					return err
				}
			}
		}
	}

	for i := 0; i+1 < len(live); i++ {
		upstream := live[i]
		downstream := live[i+1]
		tol, err := cfg.ToleranceFor(upstream.ID)
		if err != nil {
			return err
		}

		links, err := edge.Find(upstream, downstream, peaks[upstream.ID], peaks[downstream.ID], edge.WithTolerance(tol))
		if err != nil {
			return err
		}
		for _, l := range links {
			fromID := wavegraph.VertexID{Station: liveIdx[upstream.ID], Day: l.From.Date.DayOffset()}
			toID := wavegraph.VertexID{Station: liveIdx[downstream.ID], Day: l.To.Date.DayOffset()}

			if err := g.AddVertex(wavegraph.Vertex{ID: fromID, Peak: l.From}); err != nil {
				return err
			}
			if err := g.AddVertex(wavegraph.Vertex{ID: toID, Peak: l.To}); err != nil {
				return err
			}
			if err := g.AddEdge(wavegraph.Edge{From: fromID, To: toID, Slope: l.Slope}); err != nil {
				return err
			}
		}
	}
	return nil
}
