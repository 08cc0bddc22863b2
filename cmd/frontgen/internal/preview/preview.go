package preview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cuba-labs/frontgen/cmd/frontgen/internal/cli"
	"github.com/cuba-labs/frontgen/restgen/model"
)

const (
	servicesPath = "/services.ts"
	healthPath   = "/healthz"
	metricsPath  = "/metrics"
)

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

type Cmd struct {
	cli.Options `embed:""`

	Host string `help:"Interface to listen on." default:"localhost"`
	Port int    `help:"Port to listen on." default:"9000" short:"p"`
}

func (c *Cmd) Run(logger *slog.Logger, rep *cli.Reporter) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ln, err := net.Listen("tcp", net.JoinHostPort(c.Host, strconv.Itoa(c.Port)))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{
		Handler:           NewServer(c.Options, logger, reg).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	rep.Success("preview listening on http://%s%s", ln.Addr(), servicesPath)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Query holds the generation options a preview request may override.
// Method selects service methods as "Service.method"; it may repeat.
type Query struct {
	Curry    string   `schema:"curry" validate:"omitempty,oneof=app-first params-first"`
	TypeCase string   `schema:"typeCase" validate:"omitempty,oneof=preserve pascal camel snake"`
	Indent   int      `schema:"indent" validate:"omitempty,min=1,max=8"`
	Comments bool     `schema:"comments"`
	Method   []string `schema:"method" validate:"dive,contains=."`
}

// Server renders the services module on request. The model file is read
// on every request, so edits show up without a restart.
type Server struct {
	opts     cli.Options
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics
}

// NewServer returns a Server generating from opts. Metrics are registered on reg.
func NewServer(opts cli.Options, logger *slog.Logger, reg *prometheus.Registry) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		opts:     opts,
		logger:   logger,
		registry: reg,
		metrics:  newMetrics(reg),
	}
}

// Handler returns the HTTP handler of the preview server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+servicesPath, s.handleServices)
	mux.HandleFunc("GET "+healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("GET "+metricsPath, promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, Errorf(CodeNotFound, "no such path: %s", r.URL.Path), s.logger)
	})
	return logRequests(s.logger, s.metrics, mux)
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	var q Query
	if err := schemaDecoder.Decode(&q, r.URL.Query()); err != nil {
		s.fail(w, err)
		return
	}
	if err := validate.Struct(&q); err != nil {
		s.fail(w, err)
		return
	}

	opts := s.opts
	if q.Curry != "" {
		opts.Curry = q.Curry
	}
	if q.TypeCase != "" {
		opts.TypeCase = q.TypeCase
	}
	if q.Indent != 0 {
		opts.Indent = q.Indent
	}
	opts.Comments = opts.Comments || q.Comments

	g := opts.Generator(s.logger)
	for _, m := range q.Method {
		service, method, _ := strings.Cut(m, ".")
		g = g.Select(model.MethodInfo{ServiceName: service, MethodName: method})
	}

	start := time.Now()
	result, err := g.Generate()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.metrics.Generated(time.Since(start))
	for _, warning := range result.Warnings {
		s.metrics.Warning(warning.Code)
	}
	if len(result.Files) == 0 {
		s.fail(w, errors.New("generator produced no files"))
		return
	}

	w.Header().Set("Content-Type", "application/typescript; charset=utf-8")
	w.Header().Set("X-Frontgen-Services", strconv.Itoa(result.Services))
	w.Header().Set("X-Frontgen-Methods", strconv.Itoa(result.Methods))
	w.Header().Set("X-Frontgen-Warnings", strconv.Itoa(len(result.Warnings)))
	if _, err := w.Write(result.Files[0].Content); err != nil {
		s.logger.Debug("failed to write response", slog.Any("error", err))
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	svcErr := toError(err)
	if svcErr.Code == CodeInternal {
		s.logger.Error("generation failed", slog.Any("error", err))
	}
	writeError(w, svcErr, s.logger)
}
