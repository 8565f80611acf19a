package cli

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	pkgerrors "github.com/promptcanvas/promptcanvas/pkg/errors"
	"github.com/promptcanvas/promptcanvas/pkg/layout"
	"github.com/promptcanvas/promptcanvas/pkg/pipeline"
	"github.com/promptcanvas/promptcanvas/pkg/store"
	"github.com/promptcanvas/promptcanvas/pkg/template"
)

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Endpoints:
  GET    /healthz                     liveness probe
  GET    /api/templates               list built-in templates
  POST   /api/layouts/{id}/compute    compute a layout (JSON body: pipeline options)
  GET    /api/layouts                 run history, newest first (?limit=N)
  GET    /api/layouts/{id}            one stored run
  DELETE /api/layouts/{id}            delete a stored run

Run history is kept in memory unless a MongoDB URI is configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

// runServe wires the runner and store, then serves until the context ends.
func (c *CLI) runServe(ctx context.Context, addr string) error {
	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	st, err := c.newStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	srv := &server{cli: c, runner: runner, store: st}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Infof("Listening on %s", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		c.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}

// newStore selects the run store backend: MongoDB when configured, in-memory
// otherwise.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.Config.Mongo.URI == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoConfig{
		URI:        c.Config.Mongo.URI,
		Database:   c.Config.Mongo.Database,
		Collection: c.Config.Mongo.Collection,
	})
}

// =============================================================================
// HTTP Server
// =============================================================================

// server holds the dependencies shared by all HTTP handlers.
type server struct {
	cli    *CLI
	runner *pipeline.Runner
	store  store.Store
}

// router builds the chi route tree.
func (s *server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
	)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/templates", s.handleTemplates)
		r.Route("/layouts", func(r chi.Router) {
			r.Get("/", s.handleHistory)
			r.Post("/{id}/compute", s.handleCompute)
			r.Get("/{id}", s.handleGetRun)
			r.Delete("/{id}", s.handleDeleteRun)
		})
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleTemplates(w http.ResponseWriter, r *http.Request) {
	infos, err := template.Builtins()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, infos)
}

// computeRequest is the POST body for the compute endpoint. The layout id in
// the URL selects the template; the body carries the runtime parameters.
// Ratio and transparency are pointers so an explicit 0 in the request is
// distinguishable from an omitted field.
type computeRequest struct {
	Ratio        *int  `json:"ratio,omitempty"`
	Transparency *int  `json:"transparency,omitempty"`
	Seed         int64 `json:"seed,omitempty"`
	Strict       bool  `json:"strict,omitempty"`
}

func (s *server) handleCompute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := pkgerrors.ValidateLayoutID(id); err != nil {
		s.writeError(w, err)
		return
	}

	var req computeRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidInput, err, "invalid request body"))
			return
		}
	}

	opts := s.cli.pipelineOptions()
	opts.Template = id
	if req.Ratio != nil {
		opts.Ratio = req.Ratio
	}
	if req.Transparency != nil {
		opts.Transparency = req.Transparency
	}
	opts.Seed = req.Seed
	opts.Strict = req.Strict
	opts.Logger = s.cli.Logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := &store.Record{
		ID:         result.RunID,
		LayoutID:   result.Layout.LayoutID,
		LayoutType: result.Layout.LayoutType,
		CreatedAt:  time.Now().UTC(),
		Params:     opts.Params(),
		Result:     result.Layout,
		Prompt:     result.Prompt,
	}
	if err := s.store.Save(r.Context(), rec); err != nil {
		s.cli.Logger.Warnf("Failed to store run %s: %v", result.RunID, err)
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			s.writeError(w, pkgerrors.New(pkgerrors.ErrCodeInvalidInput, "invalid limit %q", q))
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if recs == nil {
		recs = []*store.Record{}
	}
	s.writeJSON(w, http.StatusOK, recs)
}

func (s *server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Responses
// =============================================================================

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.cli.Logger.Warnf("Failed to encode response: %v", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), errorResponse{
		Code:    string(pkgerrors.GetCode(err)),
		Message: pkgerrors.UserMessage(err),
	})
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var valErr *layout.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusUnprocessableEntity
	}
	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound
	}

	switch pkgerrors.GetCode(err) {
	case pkgerrors.ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case pkgerrors.ErrCodeTemplateNotFound, pkgerrors.ErrCodeNotFound,
		pkgerrors.ErrCodeFileNotFound, pkgerrors.ErrCodeRunNotFound:
		return http.StatusNotFound
	case pkgerrors.ErrCodeInvalidInput, pkgerrors.ErrCodeInvalidRatio,
		pkgerrors.ErrCodeInvalidTransparency, pkgerrors.ErrCodeInvalidLayoutID,
		pkgerrors.ErrCodeInvalidTemplate, pkgerrors.ErrCodeInvalidFormat,
		pkgerrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
