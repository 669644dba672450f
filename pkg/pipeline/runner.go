package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/figment/pkg/bind"
	"github.com/matzehuels/figment/pkg/cache"
	"github.com/matzehuels/figment/pkg/data"
	"github.com/matzehuels/figment/pkg/figure"
	figio "github.com/matzehuels/figment/pkg/io"
	"github.com/matzehuels/figment/pkg/observability"
	"github.com/matzehuels/figment/pkg/render"
	"github.com/matzehuels/figment/pkg/render/plot"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete bind → layout → draw → encode pipeline with
// caching. A frame cache hit returns early with the cached encoding and a
// nil Frame.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     newRunID(),
		Artifacts: make(map[string][]byte),
	}
	logger := opts.Logger.With("run_id", result.RunID)

	fig, src, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	fig = opts.apply(fig)
	fig.SetDefaults()

	designHash := digestDesign(fig)
	dataHash := digestData(fig, src)
	frameKey := r.Keyer.FrameKey(designHash, dataHash, opts.frameKeyOpts(fig))

	// Frame cache short-circuit: the cached entry is the canonical JSON
	// encoding, which doubles as the json artifact.
	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, frameKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "frame")
			result.CacheInfo.FrameHit = true
			result.CacheInfo.ArtifactHit = true
			for _, format := range opts.Formats {
				result.Artifacts[format] = cached
			}
			logger.Info("reused cached frame", "key", frameKey[:16])
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "frame")
	}

	// Stage 1: Bind
	bindStart := time.Now()
	bound, err := r.Bind(ctx, fig, src)
	result.Stats.BindTime = time.Since(bindStart)
	if err != nil {
		return nil, fmt.Errorf("bind: %w", err)
	}
	result.Stats.SeriesCount = countSeries(bound)

	logger.Info("bound data",
		"series", result.Stats.SeriesCount,
		"duration", result.Stats.BindTime)

	// Stages 2+3: Layout and Draw
	frame, err := r.RenderFrame(ctx, bound, opts, &result.Stats)
	if err != nil {
		return nil, err
	}
	result.Frame = frame

	logger.Info("rendered frame",
		"primitives", result.Stats.PrimitiveCount,
		"layout", result.Stats.LayoutTime,
		"draw", result.Stats.DrawTime)

	// Stage 4: Encode
	encodeStart := time.Now()
	artifacts, artifactHit, err := r.EncodeWithCacheInfo(ctx, frame, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)
	result.CacheInfo.ArtifactHit = artifactHit
	result.FrameHash = cache.Hash(artifacts[FormatJSON])

	// Store the frame encoding for the next run with identical inputs.
	if data, ok := artifacts[FormatJSON]; ok {
		if err := r.Cache.Set(ctx, frameKey, data, cache.TTLFrame); err == nil {
			observability.Cache().OnCacheSet(ctx, "frame", len(data))
		}
	}

	logger.Info("encoded outputs",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Load resolves the design and data source from the options, reading files
// as needed.
func (r *Runner) Load(opts Options) (*figure.Figure, data.Source, error) {
	fig := opts.Design
	if fig == nil {
		var err error
		fig, err = figio.ImportDesign(opts.DesignPath)
		if err != nil {
			return nil, nil, err
		}
	}

	src := opts.Data
	if src == nil {
		frame, err := figio.ImportFrameData(opts.DataPath)
		if err != nil {
			return nil, nil, err
		}
		src = frame
	}
	return fig, src, nil
}

// Bind resolves the design's column references against the source.
func (r *Runner) Bind(ctx context.Context, fig *figure.Figure, src data.Source) (*bind.Bound, error) {
	start := time.Now()
	observability.Render().OnBindStart(ctx, seriesInDesign(fig))

	bound, err := bind.Bind(fig, src)

	observability.Render().OnBindComplete(ctx, seriesInDesign(fig), time.Since(start), err)
	return bound, err
}

// RenderFrame runs the layout passes and the drawing translator, recording
// timing into stats.
func (r *Runner) RenderFrame(ctx context.Context, bound *bind.Bound, opts Options, stats *Stats) (*render.Frame, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	layoutStart := time.Now()
	plotCount := len(bound.Figure.Plots)
	observability.Render().OnLayoutStart(ctx, plotCount)
	lay, err := plot.ComputeLayout(bound, plot.Options{Measurer: opts.Measurer})
	stats.LayoutTime = time.Since(layoutStart)
	observability.Render().OnLayoutComplete(ctx, plotCount, stats.LayoutTime, err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	drawStart := time.Now()
	observability.Render().OnDrawStart(ctx, bound.Figure.Width, bound.Figure.Height)
	rec := render.NewRecorder()
	lay.Draw(rec)
	frame := rec.Frame()
	stats.DrawTime = time.Since(drawStart)
	stats.PrimitiveCount = frame.PrimitiveCount()
	observability.Render().OnDrawComplete(ctx, stats.PrimitiveCount, stats.DrawTime, nil)

	return frame, nil
}

// EncodeWithCacheInfo serializes the frame into each requested format,
// serving from the artifact cache where possible.
func (r *Runner) EncodeWithCacheInfo(ctx context.Context, frame *render.Frame, opts Options) (map[string][]byte, bool, error) {
	encoded, err := json.Marshal(frame)
	if err != nil {
		return nil, false, err
	}
	frameHash := cache.Hash(encoded)

	allCached := true
	artifacts := make(map[string][]byte)
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(frameHash, format)
		if !opts.Refresh {
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}
		allCached = false

		data, err := encodeFrame(frame, encoded, format)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = data
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return artifacts, allCached, nil
}

// encodeFrame produces one output format. The json format is the indented
// canonical encoding.
func encodeFrame(frame *render.Frame, compact []byte, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, compact, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("invalid format: %q", format)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// =============================================================================
// Digests
// =============================================================================

// digestDesign hashes the design document. The design model marshals
// deterministically, so equal designs produce equal hashes.
func digestDesign(fig *figure.Figure) string {
	data, _ := json.Marshal(fig)
	return cache.Hash(data)
}

// digestData hashes the columns the design actually references. Unreferenced
// columns cannot affect the frame, so they don't invalidate the cache.
func digestData(fig *figure.Figure, src data.Source) string {
	names := referencedColumns(fig)

	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteByte(0)
		col, ok := src.Column(name)
		if !ok {
			buf.WriteString("absent")
			buf.WriteByte(0)
			continue
		}
		switch c := col.(type) {
		case data.NumColumn:
			for _, v := range c {
				buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
				buf.WriteByte(',')
			}
		case data.CatColumn:
			for _, s := range c {
				buf.WriteString(s)
				buf.WriteByte(0)
			}
		}
		buf.WriteByte(0)
	}
	return cache.Hash(buf.Bytes())
}

// referencedColumns collects the sorted set of column names the design's
// series reference.
func referencedColumns(fig *figure.Figure) []string {
	seen := map[string]bool{}
	fig.EachPlot(func(p *figure.Plot) {
		for _, s := range p.Series {
			switch v := s.(type) {
			case *figure.Line:
				seen[v.X] = true
				seen[v.Y] = true
			case *figure.Scatter:
				seen[v.X] = true
				seen[v.Y] = true
			case *figure.Bars:
				seen[v.Cats] = true
				for _, val := range v.Vals {
					seen[val] = true
				}
			case *figure.Histogram:
				seen[v.Data] = true
			}
		}
	})

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func seriesInDesign(fig *figure.Figure) int {
	n := 0
	fig.EachPlot(func(p *figure.Plot) { n += len(p.Series) })
	return n
}

func countSeries(b *bind.Bound) int {
	n := 0
	for _, row := range b.Plots {
		for _, p := range row {
			if p != nil {
				n += len(p.Series)
			}
		}
	}
	return n
}
