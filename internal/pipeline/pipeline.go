// Package pipeline runs a collation: it walks the generation resources of a
// dataset mirror, builds every entry through the collate resolvers and
// writes one artifact per generation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/pokecollate/internal/collate"
	"github.com/samdwyer/pokecollate/internal/config"
	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/telemetry"
)

// ErrNoDataset is returned when the dataset root is not a directory.
var ErrNoDataset = errors.New("dataset directory not found")

// Deps are the collaborators of a run.
type Deps struct {
	Store       *resource.Store
	Generations *dex.GenerationRegistry
	Out         afero.Fs // artifacts are written at its root
	Logger      *zap.Logger
	Tracer      trace.Tracer
}

// NewDeps wires a run against the directories named in cfg. The output
// directory is created if needed.
func NewDeps(cfg *config.Config, logger *zap.Logger) (Deps, error) {
	osFs := afero.NewOsFs()

	ok, err := afero.DirExists(osFs, cfg.DataDir)
	if err != nil {
		return Deps{}, fmt.Errorf("stat %s: %w", cfg.DataDir, err)
	}
	if !ok {
		return Deps{}, fmt.Errorf("%w: %s", ErrNoDataset, cfg.DataDir)
	}
	if err := osFs.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return Deps{}, fmt.Errorf("failed to create output directory: %w", err)
	}

	generations, err := dex.LoadGenerationRegistry()
	if err != nil {
		return Deps{}, err
	}

	return Deps{
		Store:       resource.NewDirStore(cfg.DataDir),
		Generations: generations,
		Out:         afero.NewBasePathFs(osFs, cfg.OutDir),
		Logger:      logger,
		Tracer:      telemetry.Tracer("pipeline"),
	}, nil
}

// Report summarizes a completed run.
type Report struct {
	RunID       string
	Generations []GenerationReport // ascending by number
	Skipped     []Skip
	Warnings    []error
	SummaryFile string // empty when the summary is disabled
	Store       resource.Stats
}

// GenerationReport describes one written artifact.
type GenerationReport struct {
	Number  int
	Name    string
	File    string
	Entries int
}

// Skip records a listed species whose pokemon resource is absent.
type Skip struct {
	Generation int
	SpeciesID  int
	Species    string
	Path       string
}

// Entries returns the number of entries written across all generations.
func (r *Report) Entries() int {
	total := 0
	for _, g := range r.Generations {
		total += g.Entries
	}
	return total
}

// Run collates every known generation of the mirror behind deps.Store.
// Generations run in parallel up to cfg.Workers; the first failure cancels
// the rest and is returned. Artifacts already written are left in place.
func Run(ctx context.Context, cfg *config.Config, deps Deps) (*Report, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tracer := deps.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}
	workers := max(cfg.Workers, 1)

	report := &Report{RunID: uuid.NewString()}
	logger = logger.With(zap.String("run_id", report.RunID))

	ctx, span := tracer.Start(ctx, "collate.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("run.id", report.RunID),
		attribute.Int("workers", workers),
	)

	r := &runner{
		store:       deps.Store,
		generations: deps.Generations,
		resolver:    collate.NewResolver(deps.Store, deps.Generations),
		out:         deps.Out,
		logger:      logger,
		tracer:      tracer,
	}

	jobs, warnings, err := r.plan(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	report.Warnings = append(report.Warnings, warnings...)
	logger.Info("collation started",
		zap.Int("generations", len(jobs)),
		zap.Int("workers", workers))

	results := make([]generationResult, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := r.collateGeneration(gctx, job)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fail(span, err)
	}

	var summary []dex.SummaryEntry
	for _, res := range results {
		report.Generations = append(report.Generations, res.report)
		report.Skipped = append(report.Skipped, res.skipped...)
		report.Warnings = append(report.Warnings, res.warnings...)
		for _, entry := range res.entries {
			summary = append(summary, dex.Summarize(entry))
		}
	}

	if cfg.Summary {
		sort.SliceStable(summary, func(i, j int) bool { return summary[i].ID < summary[j].ID })
		if summary == nil {
			summary = []dex.SummaryEntry{}
		}
		if err := writeJSON(r.out, SummaryFile, summary); err != nil {
			return nil, fail(span, err)
		}
		report.SummaryFile = SummaryFile
	}

	report.Store = deps.Store.Stats()
	span.SetAttributes(
		attribute.Int("entries", report.Entries()),
		attribute.Int("skipped", len(report.Skipped)),
	)
	logger.Info("collation finished",
		zap.Int("generations", len(report.Generations)),
		zap.Int("entries", report.Entries()),
		zap.Int("skipped", len(report.Skipped)),
		zap.Int("warnings", len(report.Warnings)),
		zap.Int64("documents_read", report.Store.Reads),
		zap.Int64("cache_hits", report.Store.Hits))
	return report, nil
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
