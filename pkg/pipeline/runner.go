package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/cache"
	"github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/graph"
	"github.com/matzehuels/wordweb/pkg/index"
	"github.com/matzehuels/wordweb/pkg/materialize"
	"github.com/matzehuels/wordweb/pkg/observability"
	"github.com/matzehuels/wordweb/pkg/source"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state, so one Runner may serve several runs.
type Runner struct {
	Annotator annotate.Annotator
	Cache     cache.Cache
	Keyer     cache.Keyer
	Logger    *log.Logger
}

// NewRunner creates a runner for annotator a.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(a annotate.Annotator, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
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
		Annotator: a,
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
	}
}

// Execute runs every stage and returns the combined result.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if r.Annotator == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "no annotator configured")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx = observability.WithRunID(ctx, runID)
	logger := r.Logger.With("run", runID[:8])
	hooks := observability.Pipeline()

	result := &Result{RunID: runID}

	// Stage 1: Read
	start := time.Now()
	hooks.OnReadStart(ctx, opts.InputPath)
	text := opts.Text
	if text == "" {
		text = source.ReadTextOrEmpty(opts.InputPath, logger)
	}
	result.Stats.Bytes = len(text)
	result.Stats.ReadTime = time.Since(start)
	hooks.OnReadComplete(ctx, opts.InputPath, len(text), result.Stats.ReadTime, nil)
	logger.Debug("read text", "path", opts.InputPath, "bytes", len(text))

	// Stage 2: Annotate
	start = time.Now()
	hooks.OnAnnotateStart(ctx, r.Annotator.Name())
	sentences, hit, err := r.AnnotateWithCacheInfo(ctx, text, opts.Refresh)
	triples := annotate.Triples(sentences)
	result.Stats.AnnotateTime = time.Since(start)
	hooks.OnAnnotateComplete(ctx, r.Annotator.Name(), len(triples), result.Stats.AnnotateTime, err)
	if err != nil {
		return nil, err
	}
	result.Sentences = sentences
	result.CacheInfo.AnnotationHit = hit
	result.Stats.Sentences = len(sentences)
	result.Stats.Triples = len(triples)
	logger.Info("annotated text",
		"annotator", r.Annotator.Name(),
		"sentences", len(sentences),
		"triples", len(triples),
		"cached", hit,
		"duration", result.Stats.AnnotateTime)

	// Stage 3: Ingest
	start = time.Now()
	idx, err := index.Build(triples)
	result.Stats.IngestTime = time.Since(start)
	subjects := 0
	if idx != nil {
		subjects = idx.Len()
	}
	hooks.OnIngestComplete(ctx, subjects, len(triples), result.Stats.IngestTime, err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "ingest triples")
	}
	result.Index = idx
	result.Stats.Subjects = subjects
	st := idx.Stats()
	logger.Debug("ingested triples",
		"subjects", st.Subjects,
		"predicates", st.Predicates,
		"objects", st.Objects,
		"skipped", st.Skipped,
		"duplicates", st.Duplicates)

	// Stage 4: Materialize
	start = time.Now()
	g, mres, err := r.Materialize(ctx, idx, opts, logger)
	if err != nil {
		return nil, err
	}
	result.Graph = g
	result.Materialize = mres
	result.Stats.Nodes = g.NodeCount()
	result.Stats.Edges = g.EdgeCount()
	result.Stats.MaterializeTime = time.Since(start)

	if data, err := graph.MarshalGraph(g); err == nil {
		result.GraphHash = cache.Hash(data)
	}

	logger.Info("materialized graph",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"rolled_back", mres.RolledBack,
		"empty", mres.Empty)

	// Stage 5: Render
	if len(opts.Formats) == 0 {
		return result, nil
	}
	start = time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, hit, err := r.RenderWithCacheInfo(ctx, g, result.GraphHash, opts)
	result.Stats.RenderTime = time.Since(start)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.RenderHit = hit
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// AnnotateWithCacheInfo annotates text, consulting the cache first unless
// refresh is set. It reports whether the result came from the cache.
func (r *Runner) AnnotateWithCacheInfo(ctx context.Context, text string, refresh bool) ([]annotate.Sentence, bool, error) {
	key := r.Keyer.AnnotationKey(text, r.annotationKeyOpts())
	hooks := observability.Cache()

	if !refresh {
		var cached []annotate.Sentence
		if hit, err := cache.GetJSON(ctx, r.Cache, key, &cached); err == nil && hit {
			hooks.OnCacheHit(ctx, "annotation")
			return cached, true, nil
		}
		hooks.OnCacheMiss(ctx, "annotation")
	}

	sentences, err := r.Annotator.Annotate(ctx, text)
	if err != nil {
		if errors.GetCode(err) == "" && ctx.Err() == nil {
			err = errors.Wrap(errors.ErrCodeAnnotation, err, "annotate with %s", r.Annotator.Name())
		}
		return nil, false, err
	}

	if n, err := cache.SetJSON(ctx, r.Cache, key, sentences, cache.TTLAnnotation); err == nil {
		hooks.OnCacheSet(ctx, "annotation", n)
	} else {
		r.Logger.Warn("could not cache annotations", "err", err)
	}
	return sentences, false, nil
}

// Materialize draws idx into a fresh graph.
func (r *Runner) Materialize(ctx context.Context, idx *index.Index, opts Options, logger *log.Logger) (*graph.Graph, materialize.Result, error) {
	if logger == nil {
		logger = r.Logger
	}
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnMaterializeStart(ctx, idx.Len())

	g := graph.New(opts.GraphName, graph.DefaultOptions())
	res, err := materialize.Materialize(ctx, idx, g, materialize.Options{
		LabelPolicy: opts.LabelPolicy,
		Logger:      logger,
	})
	hooks.OnMaterializeComplete(ctx, g.NodeCount(), g.EdgeCount(), time.Since(start), err)
	if err != nil {
		return nil, res, err
	}
	return g, res, nil
}

// RenderWithCacheInfo renders the requested formats, serving them from the
// cache when every format is present.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, graphHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	hooks := observability.Cache()
	keyOpts := func(format string) cache.ArtifactKeyOpts {
		return cache.ArtifactKeyOpts{Format: format, Detailed: opts.Detailed, RankDir: opts.RankDir}
	}

	if !opts.Refresh && graphHash != "" {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			data, hit, err := r.Cache.Get(ctx, r.Keyer.ArtifactKey(graphHash, keyOpts(format)))
			if err != nil || !hit {
				break
			}
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			hooks.OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		hooks.OnCacheMiss(ctx, "artifact")
	}

	rendered, err := Render(ctx, g, opts)
	if err != nil {
		return nil, false, err
	}

	if graphHash != "" {
		for format, data := range rendered {
			if err := r.Cache.Set(ctx, r.Keyer.ArtifactKey(graphHash, keyOpts(format)), data, cache.TTLArtifact); err == nil {
				hooks.OnCacheSet(ctx, "artifact", len(data))
			}
		}
	}
	return rendered, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) annotationKeyOpts() cache.AnnotationKeyOpts {
	opts := cache.AnnotationKeyOpts{Annotator: r.Annotator.Name()}
	if m, ok := r.Annotator.(interface{ Model() string }); ok {
		opts.Model = m.Model()
	}
	if f, ok := r.Annotator.(annotate.Fingerprinter); ok {
		opts.Settings = f.Fingerprint()
	}
	return opts
}
