package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/promptcanvas/promptcanvas/pkg/cache"
	pkgerrors "github.com/promptcanvas/promptcanvas/pkg/errors"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Template: "vertical_split"}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Valid options should pass: %v", err)
	}

	// Check defaults were set
	if opts.Ratio == nil || *opts.Ratio != DefaultRatio {
		t.Errorf("Ratio should default to %d, got %v", DefaultRatio, opts.Ratio)
	}
	if opts.Transparency == nil || *opts.Transparency != DefaultTransparency {
		t.Errorf("Transparency should default to %d, got %v", DefaultTransparency, opts.Transparency)
	}
	if opts.Theme == nil {
		t.Error("Theme should default")
	}
	if opts.Logger == nil {
		t.Error("Logger should default")
	}
}

func TestOptionsValidate(t *testing.T) {
	// Missing template and definition
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Missing template should fail")
	}

	// Ratio outside the accepted range
	opts = Options{Template: "hero", Ratio: Int(20)}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Out-of-range ratio should fail at the options surface")
	}

	// Transparency outside the accepted range
	opts = Options{Template: "hero", Transparency: Int(150)}
	if err := opts.ValidateAndSetDefaults(); err == nil {
		t.Error("Out-of-range transparency should fail")
	}

	// A definition without a template name is fine
	opts = Options{Definition: &layout.LayoutDefinition{
		LayoutID:   "inline",
		LayoutType: layout.TypeMinimalist,
		Zones: map[string]layout.ZoneSpec{
			"headline_block": {Width: 600, Height: 100},
			"subline_block":  {Width: 500, Height: 80},
		},
	}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("Inline definition should pass: %v", err)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Template: "hero", Ratio: Int(65)}

	// First call
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}

	originalRatio := *opts.Ratio
	originalTransparency := *opts.Transparency

	// Second call should be idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}

	if *opts.Ratio != originalRatio {
		t.Error("Ratio changed on second call")
	}
	if *opts.Transparency != originalTransparency {
		t.Error("Transparency changed on second call")
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	res, err := runner.Execute(context.Background(), Options{
		Template:     "vertical_split",
		Ratio:        Int(50),
		Transparency: Int(60),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.RunID == "" {
		t.Error("run id missing")
	}
	if res.TemplateHash == "" {
		t.Error("template hash missing")
	}
	if res.Layout == nil || !res.Layout.Validated {
		t.Fatal("expected a validated layout")
	}
	if res.Prompt == "" {
		t.Error("validated run should compose a prompt")
	}
	if !strings.Contains(res.Prompt, "Layout: vertical_split_default") {
		t.Errorf("prompt = %q", res.Prompt)
	}
	if res.Stats.ZoneCount != len(res.Definition.Zones) {
		t.Errorf("zone count = %d, want %d", res.Stats.ZoneCount, len(res.Definition.Zones))
	}
}

func TestRunnerExecuteSkipsPromptOnInvalidLayout(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	res, err := runner.Execute(context.Background(), Options{
		Definition: &layout.LayoutDefinition{
			LayoutID:   "incomplete",
			LayoutType: layout.TypeVerticalSplit,
			Zones: map[string]layout.ZoneSpec{
				"headline_block": {Width: 400, Height: 100},
			},
		},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if res.Layout.Validated {
		t.Error("layout with missing required zones must not be validated")
	}
	if res.Prompt != "" {
		t.Error("unvalidated layout must not compose a prompt")
	}
}

func TestRunnerExecuteStrictFailure(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{
		Strict: true,
		Definition: &layout.LayoutDefinition{
			LayoutID:   "incomplete",
			LayoutType: layout.TypeVerticalSplit,
			Zones: map[string]layout.ZoneSpec{
				"headline_block": {Width: 400, Height: 100},
			},
		},
	})
	if err == nil {
		t.Fatal("strict execute should propagate the validation failure")
	}
}

func TestRunnerExecuteTransparencyZero(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	// An explicit zero is a valid input and must reach the engine, where it
	// resolves to the 0.1 opacity floor instead of the default.
	res, err := runner.Execute(context.Background(), Options{
		Template:     "minimalist",
		Transparency: Int(0),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got := res.Layout.Values.Opacity; got != 0.1 {
		t.Errorf("opacity = %v, want 0.1 for transparency 0", got)
	}
}

func TestRunnerExecuteRatioZeroRejected(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	// An explicit zero ratio is outside the accepted range and must surface
	// as an error rather than silently becoming the default.
	_, err := runner.Execute(context.Background(), Options{
		Template: "minimalist",
		Ratio:    Int(0),
	})
	if err == nil {
		t.Fatal("explicit ratio 0 should be rejected")
	}
	if code := pkgerrors.GetCode(err); code != pkgerrors.ErrCodeInvalidRatio {
		t.Errorf("error code = %s, want %s", code, pkgerrors.ErrCodeInvalidRatio)
	}
}

func TestRunnerComputeCaching(t *testing.T) {
	fileCache, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	runner := NewRunner(fileCache, nil, nil)
	defer runner.Close()

	opts := Options{Template: "hero", Ratio: Int(55), Transparency: Int(40)}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute failed: %v", err)
	}
	if first.CacheInfo.ComputeHit {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute failed: %v", err)
	}
	if !second.CacheInfo.ComputeHit {
		t.Error("second run should hit the cache")
	}

	// Cached and fresh results agree.
	if first.Layout.Values.TextWidth != second.Layout.Values.TextWidth ||
		first.Layout.Values.ImageWidth != second.Layout.Values.ImageWidth ||
		first.Layout.Values.Opacity != second.Layout.Values.Opacity {
		t.Error("cached result diverged from fresh compute")
	}

	// Different dials miss.
	third, err := runner.Execute(context.Background(), Options{Template: "hero", Ratio: Int(60), Transparency: Int(40)})
	if err != nil {
		t.Fatalf("third Execute failed: %v", err)
	}
	if third.CacheInfo.ComputeHit {
		t.Error("different ratio must not reuse the cache entry")
	}

	// NoCache bypasses.
	fourth, err := runner.Execute(context.Background(), Options{Template: "hero", Ratio: Int(55), Transparency: Int(40), NoCache: true})
	if err != nil {
		t.Fatalf("fourth Execute failed: %v", err)
	}
	if fourth.CacheInfo.ComputeHit {
		t.Error("NoCache run must not report a cache hit")
	}
}

func TestRunnerLoadUnknownTemplate(t *testing.T) {
	runner := NewRunner(nil, nil, nil)
	defer runner.Close()

	_, err := runner.Execute(context.Background(), Options{Template: "does_not_exist"})
	if err == nil {
		t.Fatal("unknown template should fail the load stage")
	}
}
