package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/promptcanvas/promptcanvas/pkg/cache"
	"github.com/promptcanvas/promptcanvas/pkg/pipeline"
	"github.com/promptcanvas/promptcanvas/pkg/store"
	"github.com/promptcanvas/promptcanvas/pkg/template"
)

func testServer(t *testing.T) *server {
	t.Helper()
	c := &CLI{
		Logger: discardLogger(),
		Config: defaultConfig(),
	}
	runner := pipeline.NewRunner(cache.NewNullCache(), nil, c.Logger)
	return &server{cli: c, runner: runner, store: store.NewMemoryStore()}
}

func TestServeHealth(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestServeTemplates(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/templates", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var infos []template.Info
	if err := json.NewDecoder(rec.Body).Decode(&infos); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(infos) == 0 {
		t.Error("expected built-in templates in response")
	}
}

func TestServeCompute(t *testing.T) {
	srv := testServer(t)
	router := srv.router()

	body := strings.NewReader(`{"ratio": 60, "transparency": 40}`)
	req := httptest.NewRequest(http.MethodPost, "/api/layouts/vertical_split/compute", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result pipeline.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.RunID == "" {
		t.Error("RunID should be set")
	}
	if !result.Layout.Validated {
		t.Errorf("layout should validate: %v", result.Layout.Validation.Errors)
	}
	if result.Layout.Values.Ratio != 60 {
		t.Errorf("Ratio = %d, want 60", result.Layout.Values.Ratio)
	}

	// The run is now visible in the history.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/layouts/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d, want 200", rec.Code)
	}
	var recs []*store.Record
	if err := json.NewDecoder(rec.Body).Decode(&recs); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(recs) != 1 || recs[0].ID != result.RunID {
		t.Errorf("history = %d records, want the stored run %s", len(recs), result.RunID)
	}

	// And retrievable by run ID.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/layouts/"+result.RunID, nil))
	if rec.Code != http.StatusOK {
		t.Errorf("get run status = %d, want 200", rec.Code)
	}
}

func TestServeComputeTransparencyZero(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/layouts/minimalist/compute",
		strings.NewReader(`{"transparency": 0}`))
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var result pipeline.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// An explicit zero in the body is not an omitted field; it resolves to
	// the 0.1 opacity floor rather than the server default.
	if result.Layout.Values.Opacity != 0.1 {
		t.Errorf("Opacity = %v, want 0.1", result.Layout.Values.Opacity)
	}
}

func TestServeComputeUnknownTemplate(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/layouts/no_such_template/compute", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404: %s", rec.Code, rec.Body.String())
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Code != "TEMPLATE_NOT_FOUND" {
		t.Errorf("error code = %q, want TEMPLATE_NOT_FOUND", resp.Code)
	}
}

func TestServeComputeInvalidRatio(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/layouts/vertical_split/compute", strings.NewReader(`{"ratio": 150}`))
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestServeGetRunNotFound(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/layouts/does-not-exist", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServeDeleteRun(t *testing.T) {
	srv := testServer(t)
	router := srv.router()

	req := httptest.NewRequest(http.MethodPost, "/api/layouts/hero/compute", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("compute status = %d: %s", rec.Code, rec.Body.String())
	}
	var result pipeline.Result
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/layouts/"+result.RunID, nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want 204", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/layouts/"+result.RunID, nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestServeHistoryBadLimit(t *testing.T) {
	srv := testServer(t)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/layouts/?limit=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
