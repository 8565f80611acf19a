package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/promptcanvas/promptcanvas/pkg/cache"
	"github.com/promptcanvas/promptcanvas/pkg/compose"
	"github.com/promptcanvas/promptcanvas/pkg/design"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
	"github.com/promptcanvas/promptcanvas/pkg/observability"
	"github.com/promptcanvas/promptcanvas/pkg/template"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the engine, cache, and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Engine *layout.Engine
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
		Engine: layout.NewEngine(layout.WithLogger(logger)),
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → compute → theme → compose pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Template)
	def, defHash, err := r.Load(opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Template, 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Template, len(def.Zones), time.Since(loadStart), nil)
	result.Definition = def
	result.TemplateHash = defHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ZoneCount = len(def.Zones)

	r.Logger.Info("loaded template",
		"layout_id", def.LayoutID,
		"layout_type", def.LayoutType,
		"zones", len(def.Zones))

	// Stage 2+3: Compute and theme
	computeStart := time.Now()
	observability.Pipeline().OnComputeStart(ctx, def.LayoutType, len(def.Zones))
	computed, computeHit, err := r.ComputeWithCacheInfo(ctx, def, defHash, opts)
	observability.Pipeline().OnComputeComplete(ctx, def.LayoutType, time.Since(computeStart), err)
	if err != nil {
		return nil, fmt.Errorf("compute: %w", err)
	}
	result.Layout = computed
	result.Stats.ComputeTime = time.Since(computeStart)
	result.CacheInfo.ComputeHit = computeHit

	r.Logger.Info("computed layout",
		"zones", len(computed.Zones),
		"validated", computed.Validated,
		"fallback", computed.FallbackUsed,
		"cache_hit", computeHit,
		"duration", result.Stats.ComputeTime)

	// Stage 4: Compose. Skipped for lenient runs that failed validation;
	// the caller still gets the geometry and the diagnostics.
	composeStart := time.Now()
	if computed.Validated {
		observability.Pipeline().OnComposeStart(ctx, computed.LayoutID)
		prompt, err := compose.Compose(computed, *opts.Theme, opts.Texts, opts.Motif)
		observability.Pipeline().OnComposeComplete(ctx, computed.LayoutID, time.Since(composeStart), err)
		if err != nil {
			return nil, fmt.Errorf("compose: %w", err)
		}
		result.Prompt = prompt
	} else {
		r.Logger.Warn("layout failed validation, skipping prompt composition",
			"errors", computed.Validation.Errors)
	}
	result.Stats.ComposeTime = time.Since(composeStart)

	return result, nil
}

// Load resolves the layout definition for the options and returns it with
// its content hash. The hash covers the canonical JSON encoding, so YAML and
// JSON authored forms of the same template share cache entries.
func (r *Runner) Load(opts Options) (*layout.LayoutDefinition, string, error) {
	def := opts.Definition
	if def == nil {
		loaded, err := template.Resolve(opts.Template)
		if err != nil {
			return nil, "", err
		}
		def = loaded
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil, "", err
	}
	return def, cache.Hash(data), nil
}

// ComputeWithCacheInfo computes the themed layout with caching and returns
// cache hit info. The cache stores the engine's pre-theme result; the theme
// is applied afterwards, so one cache entry serves every palette.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, def *layout.LayoutDefinition, defHash string, opts Options) (*layout.Result, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.ComputeKey(defHash, cache.ComputeKeyOpts{
		Ratio:        *opts.Ratio,
		Transparency: *opts.Transparency,
		Seed:         opts.Seed,
		Strict:       opts.Strict,
	})

	// Try cache first (unless disabled)
	if !opts.NoCache {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached layout.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "compute")
				if err := design.Apply(&cached, *opts.Theme); err != nil {
					return nil, false, err
				}
				return &cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "compute")
	}

	// Compute
	computed, err := r.Engine.Compute(def, opts.Params())
	if err != nil {
		return nil, false, err
	}

	// Cache the pre-theme result
	if !opts.NoCache {
		if data, err := json.Marshal(computed); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLCompute)
			observability.Cache().OnCacheSet(ctx, "compute", len(data))
		}
	}

	if err := design.Apply(computed, *opts.Theme); err != nil {
		return nil, false, err
	}
	return computed, false, nil // Cache miss
}

// Compute is a convenience wrapper that loads, computes, and themes without
// reporting cache hit info.
func (r *Runner) Compute(ctx context.Context, opts Options) (*layout.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	def, defHash, err := r.Load(opts)
	if err != nil {
		return nil, err
	}
	computed, _, err := r.ComputeWithCacheInfo(ctx, def, defHash, opts)
	return computed, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
