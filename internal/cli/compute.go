package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/promptcanvas/promptcanvas/pkg/compose"
	"github.com/promptcanvas/promptcanvas/pkg/pipeline"
)

// computeOpts holds the command-line flags for the compute command.
type computeOpts struct {
	ratio        int    // image-width share in percent (30..70)
	transparency int    // container transparency in percent (0..100)
	seed         int64  // reserved variant-selection seed, recorded in output
	strict       bool   // treat missing required zones as fatal
	noCache      bool   // bypass the compute cache
	out          string // path for the resolved layout JSON
	diagnostics  string // path for run metadata JSON
	snapshot     string // path for a layout JSON snapshot
	summary      bool   // print a short textual overview
	headline     string
	subline      string
	cta          string
	benefits     []string
	motif        string
}

// computeCommand creates the compute command, the main entry point of the CLI.
func (c *CLI) computeCommand() *cobra.Command {
	opts := computeOpts{
		ratio:        c.Config.DefaultRatio,
		transparency: c.Config.DefaultTransparency,
	}

	cmd := &cobra.Command{
		Use:   "compute <template>",
		Short: "Resolve a layout template into pixel-precise zones and a prompt",
		Long: `Resolve a layout template into pixel-precise zones and a generation prompt.

The template argument is either a built-in template name (see 'promptcanvas
templates'), a layout type, or a path to a YAML/JSON template file.

Examples:
  promptcanvas compute vertical_split
  promptcanvas compute hero --ratio 60 --transparency 40
  promptcanvas compute my_layout.yaml --strict --out layout.json
  promptcanvas compute grid --summary --headline "Join us" --cta "Apply now"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompute(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().IntVar(&opts.ratio, "ratio", opts.ratio, "image-to-text ratio in percent (30-70)")
	cmd.Flags().IntVar(&opts.transparency, "transparency", opts.transparency, "container transparency in percent (0-100)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "variant selection seed (recorded, reserved)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when required zones are missing")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "write the resolved layout as JSON to this path")
	cmd.Flags().StringVar(&opts.diagnostics, "diagnostics", "", "write run metadata as JSON to this path")
	cmd.Flags().StringVar(&opts.snapshot, "snapshot", "", "write a layout snapshot as JSON to this path")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "print a short textual overview")
	cmd.Flags().StringVar(&opts.headline, "headline", "", "headline text for prompt composition")
	cmd.Flags().StringVar(&opts.subline, "subline", "", "subline text for prompt composition")
	cmd.Flags().StringVar(&opts.cta, "cta", "", "call-to-action text for prompt composition")
	cmd.Flags().StringArrayVar(&opts.benefits, "benefit", nil, "benefit text for prompt composition (repeatable, max 3 used)")
	cmd.Flags().StringVar(&opts.motif, "motif", "", "motif description for prompt composition")

	return cmd
}

// runCompute executes the full pipeline and writes the requested outputs.
func (c *CLI) runCompute(ctx context.Context, templateArg string, opts *computeOpts) error {
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := c.pipelineOptions()
	pipeOpts.Template = templateArg
	pipeOpts.Ratio = pipeline.Int(opts.ratio)
	pipeOpts.Transparency = pipeline.Int(opts.transparency)
	pipeOpts.Seed = opts.seed
	pipeOpts.Strict = opts.strict
	pipeOpts.NoCache = opts.noCache
	pipeOpts.Texts = compose.Texts{
		Headline: opts.headline,
		Subline:  opts.subline,
		CTA:      opts.cta,
		Benefits: opts.benefits,
	}
	pipeOpts.Motif = compose.Motif{Prompt: opts.motif}
	pipeOpts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Compute failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeComputeOutputs(result, opts); err != nil {
		return err
	}

	printComputeResult(result, opts)
	return nil
}

// writeComputeOutputs writes the --out, --snapshot and --diagnostics files.
func writeComputeOutputs(result *pipeline.Result, opts *computeOpts) error {
	for _, target := range []struct {
		path string
		data any
	}{
		{opts.out, result.Layout},
		{opts.snapshot, result.Layout},
		{opts.diagnostics, diagnosticsFor(result)},
	} {
		if target.path == "" {
			continue
		}
		if err := writeJSONFile(target.path, target.data); err != nil {
			return err
		}
	}
	return nil
}

// diagnostics is the metadata record written by --diagnostics.
type diagnostics struct {
	RunID        string   `json:"run_id"`
	LayoutID     string   `json:"layout_id"`
	LayoutType   string   `json:"layout_type"`
	ZoneCount    int      `json:"zone_count"`
	Ratio        int      `json:"ratio"`
	Transparency float64  `json:"transparency"`
	Validated    bool     `json:"validated"`
	FallbackUsed bool     `json:"fallback_used"`
	CacheHit     bool     `json:"cache_hit"`
	Errors       []string `json:"errors"`
	Warnings     []string `json:"warnings"`
}

func diagnosticsFor(result *pipeline.Result) diagnostics {
	l := result.Layout
	return diagnostics{
		RunID:        result.RunID,
		LayoutID:     l.LayoutID,
		LayoutType:   l.LayoutType,
		ZoneCount:    result.Stats.ZoneCount,
		Ratio:        l.Values.Ratio,
		Transparency: l.Values.Opacity,
		Validated:    l.Validated,
		FallbackUsed: l.FallbackUsed,
		CacheHit:     result.CacheInfo.ComputeHit,
		Errors:       l.Validation.Errors,
		Warnings:     l.Validation.Warnings,
	}
}

// writeJSONFile writes v as indented JSON to path.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// printComputeResult prints the human-readable run report.
func printComputeResult(result *pipeline.Result, opts *computeOpts) {
	l := result.Layout

	if l.Validated {
		printSuccess("Layout resolved: %s", l.LayoutID)
	} else {
		printWarning("Layout resolved with validation errors: %s", l.LayoutID)
	}

	for _, e := range l.Validation.Errors {
		printError("%s", e)
	}
	for _, w := range l.Validation.Warnings {
		printWarning("%s", w)
	}
	if l.FallbackUsed {
		printWarning("Unknown layout type %q, used vertical split geometry", l.LayoutType)
	}

	printStats(result.Stats.ZoneCount, result.CacheInfo.ComputeHit)

	if opts.summary {
		printSummary(result)
	}

	if opts.out != "" {
		printFile(opts.out)
	}
	if opts.snapshot != "" {
		printFile(opts.snapshot)
	}
	if opts.diagnostics != "" {
		printFile(opts.diagnostics)
	}

	if result.Prompt != "" {
		printNewline()
		fmt.Println(result.Prompt)
	}
}

// printSummary prints the per-zone overview requested by --summary.
func printSummary(result *pipeline.Result) {
	l := result.Layout

	printNewline()
	printKeyValue("Layout", l.LayoutID)
	printKeyValue("Type", l.LayoutType)
	printKeyValue("Canvas", fmt.Sprintf("%.0fx%.0f", l.Canvas.Width, l.Canvas.Height))
	printKeyValue("Ratio", fmt.Sprintf("%d%%", l.Values.Ratio))
	printKeyValue("Opacity", fmt.Sprintf("%.2f", l.Values.Opacity))
	printKeyValue("Widths", fmt.Sprintf("text %.0fpx, image %.0fpx", l.Values.TextWidth, l.Values.ImageWidth))

	names := make([]string, 0, len(l.Zones))
	for name := range l.Zones {
		names = append(names, name)
	}
	sort.Strings(names)

	printNewline()
	for _, name := range names {
		z := l.Zones[name]
		styled := ""
		if z.ContainerStyle != nil {
			styled = fmt.Sprintf("  opacity %.2f", z.ContainerStyle.BackgroundOpacity)
		}
		printDetail("%-24s %4.0f,%-4.0f  %.0fx%.0f%s", name, z.X, z.Y, z.Width, z.Height, styled)
	}
}
