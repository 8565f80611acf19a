// Package pkg provides the core libraries for PromptCanvas layout resolution.
//
// # Overview
//
// PromptCanvas turns abstract layout templates for image-generation creatives
// into fully resolved, pixel-precise layouts with per-zone container styling,
// and composes the final generation prompt from the resolved layout plus
// design, text, and motif inputs. The pkg directory is organized into three
// main areas:
//
//  1. [layout] - The engine (zone requirements, validation, geometry, styling)
//  2. [template], [design], [compose] - Template loading and downstream layers
//  3. [pipeline], [cache], [store] - Orchestration and infrastructure
//
// # Architecture
//
// The typical data flow through PromptCanvas:
//
//	Layout Template (YAML/JSON)
//	         ↓
//	    [template] package (load + shape check)
//	         ↓
//	    [layout] package (validate + compute zone geometry)
//	         ↓
//	    [design] package (apply corporate-identity theme)
//	         ↓
//	    [compose] package (final prompt string)
//
// # Quick Start
//
// Resolve a built-in template and compose a prompt:
//
//	import (
//	    "context"
//	    "github.com/promptcanvas/promptcanvas/pkg/cache"
//	    "github.com/promptcanvas/promptcanvas/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Template:     "vertical_split",
//	    Ratio:        pipeline.Int(60),
//	    Transparency: pipeline.Int(40),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Prompt)
//
// # Main Packages
//
// ## Engine
//
// [layout] - The geometry and validation engine. A zone requirement registry
// maps layout types to required/optional zone sets; the validator separates
// hard errors (missing required zones) from soft warnings (unexpected zones);
// per-archetype calculators resolve authored zones into pixel coordinates;
// a shared style resolver attaches the container style record. Unknown layout
// types fall back to vertical-split geometry with a recorded diagnostic.
//
// ## Downstream Layers
//
// [template] - Embedded built-in templates for every registered layout type,
// plus loading from files and user directories.
//
// [design] - Corporate-identity themes: palette, corner radius and shadow
// presets, zone-role resolution, accent borders for CTA zones.
//
// [compose] - Prompt composition from a validated layout, theme, texts, and
// motif, with sensible defaults for missing inputs.
//
// ## Infrastructure
//
// [pipeline] - Complete compute pipeline (load → compute → theme → compose)
// used by CLI, API, and TUI. Ensures consistent behavior across all entry
// points, with sha256-keyed caching of compute results.
//
// [cache] - Cache interface with file, Redis, and null backends plus the
// key builder.
//
// [store] - Run history store with in-memory and MongoDB backends, used by
// the HTTP API.
//
// [errors] - Structured errors with machine-readable codes and input
// validation helpers.
//
// [observability] - Optional instrumentation hooks for pipeline stages and
// cache operations.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Engine only
//
// [layout]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/layout
// [template]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/template
// [design]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/design
// [compose]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/compose
// [pipeline]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/cache
// [store]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/store
// [errors]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/errors
// [observability]: https://pkg.go.dev/github.com/promptcanvas/promptcanvas/pkg/observability
package pkg
