package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/DrSkyle/shopnet/pkg/config"
	"github.com/DrSkyle/shopnet/pkg/graph"
	"github.com/DrSkyle/shopnet/pkg/ingest"
)

// Result is the outcome of one analysed network.
type Result struct {
	Source   string
	Summary  ingest.Summary
	Store    *graph.MemoryStore
	Analysis graph.Analysis
}

// Engine is the runtime core.
type Engine struct {
	Logger *slog.Logger
	Tracer trace.Tracer
	Meter  metric.Meter

	// Immutable config.
	config config.Config

	accepted metric.Int64Counter
	skipped  metric.Int64Counter
}

// Option defines a functional configuration override.
type Option func(*Engine)

// New initializes the Engine.
func New(opts ...Option) (*Engine, error) {
	// Safe defaults.
	e := &Engine{
		Logger: slog.New(slog.DiscardHandler),
		Tracer: otel.Tracer("shopnet/engine"),
		Meter:  otel.Meter("shopnet/engine"),
		config: config.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if err := e.config.Validate(); err != nil {
		return nil, err
	}

	var err error
	e.accepted, err = e.Meter.Int64Counter("shopnet.roads.accepted",
		metric.WithDescription("Roads added to a network"))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	e.skipped, err = e.Meter.Int64Counter("shopnet.roads.skipped",
		metric.WithDescription("Roads dropped by the identifier range check"))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}

	return e, nil
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.Logger = l
		}
	}
}

// WithTracer sets the tracer.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.Tracer = t
		}
	}
}

// WithMeter sets the meter the road counters are created on.
func WithMeter(m metric.Meter) Option {
	return func(e *Engine) {
		if m != nil {
			e.Meter = m
		}
	}
}

// WithConfig sets raw config.
func WithConfig(cfg config.Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() config.Config {
	return e.config
}

// Run analyses the network stored at path.
func (e *Engine) Run(ctx context.Context, path string) (*Result, error) {
	return e.run(ctx, path, func(ctx context.Context, p *ingest.Parser, s graph.Store) (ingest.Summary, error) {
		return p.Load(ctx, path, s)
	})
}

// RunReader analyses a network read from r; name labels logs and spans.
func (e *Engine) RunReader(ctx context.Context, name string, r io.Reader) (*Result, error) {
	return e.run(ctx, name, func(ctx context.Context, p *ingest.Parser, s graph.Store) (ingest.Summary, error) {
		return p.Parse(ctx, r, s)
	})
}

type loadFunc func(ctx context.Context, p *ingest.Parser, s graph.Store) (ingest.Summary, error)

func (e *Engine) run(ctx context.Context, source string, load loadFunc) (*Result, error) {
	ctx, span := e.Tracer.Start(ctx, "Engine.Run", trace.WithAttributes(attribute.String("network.source", source)))
	defer span.End()

	logger := e.Logger.With("source", source)
	store := graph.NewMemoryStore(graph.WithCreateHook(func(s *graph.Shop) {
		logger.Debug("shop is being instantiated", "shop", s.ID)
	}))

	ingestCtx, ingestSpan := e.Tracer.Start(ctx, "ingest")
	sum, err := load(ingestCtx, ingest.NewParser(e.config, logger), store)
	if err != nil {
		ingestSpan.RecordError(err)
		ingestSpan.SetStatus(codes.Error, "ingest failed")
		ingestSpan.End()
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	ingestSpan.SetAttributes(
		attribute.Int("roads.accepted", sum.Accepted),
		attribute.Int("roads.skipped", sum.Skipped),
	)
	ingestSpan.End()

	e.accepted.Add(ctx, int64(sum.Accepted))
	e.skipped.Add(ctx, int64(sum.Skipped))
	logger.Debug("network size", "shops", store.ShopCount(), "links", store.LinkCount())

	_, reduceSpan := e.Tracer.Start(ctx, "reduce")
	analysis := graph.Analyze(store, logger)
	reduceSpan.SetAttributes(
		attribute.Int("reduce.threshold", analysis.Threshold),
		attribute.Int("reduce.core", len(analysis.Core)),
		attribute.Int("reduce.result", analysis.Result),
	)
	reduceSpan.End()

	return &Result{
		Source:   source,
		Summary:  sum,
		Store:    store,
		Analysis: analysis,
	}, nil
}
