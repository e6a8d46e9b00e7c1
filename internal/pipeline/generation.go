package pipeline

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/samdwyer/pokecollate/internal/collate"
	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
)

type runner struct {
	store       *resource.Store
	generations *dex.GenerationRegistry
	resolver    *collate.Resolver
	out         afero.Fs
	logger      *zap.Logger
	tracer      trace.Tracer
}

// generationJob is one generation resource scheduled for collation.
type generationJob struct {
	number  int
	name    string
	species []pokeapi.NamedResource
}

type generationResult struct {
	report   GenerationReport
	entries  []dex.Pokemon
	skipped  []Skip
	warnings []error
}

// plan lists the generation directories in ascending order and loads each
// one that holds a document. Generations with an unknown machine name have
// no artifact name and are skipped with a warning.
func (r *runner) plan(ctx context.Context) ([]generationJob, []error, error) {
	ids, err := r.store.IDs(resource.KindGeneration)
	if err != nil {
		return nil, nil, fmt.Errorf("list generations: %w", err)
	}

	var (
		jobs     []generationJob
		warnings []error
		planned  = make(map[int]string)
	)
	for _, id := range ids {
		ok, err := r.store.Exists(resource.KindGeneration, id)
		if err != nil {
			return nil, nil, fmt.Errorf("generation %d: %w", id, err)
		}
		if !ok {
			r.logger.Debug("generation directory has no document", zap.Int("generation_id", id))
			continue
		}

		gen, err := resource.Get[pokeapi.Generation](ctx, r.store, resource.KindGeneration, id)
		if err != nil {
			return nil, nil, fmt.Errorf("generation %d: %w", id, err)
		}

		number, err := r.generations.Number(gen.Name)
		if err != nil {
			r.logger.Warn("skipping generation", zap.Int("generation_id", id), zap.Error(err))
			warnings = append(warnings, fmt.Errorf("generation %d: %w", id, err))
			continue
		}
		if prev, dup := planned[number]; dup {
			r.logger.Warn("skipping duplicate generation",
				zap.Int("generation_id", id),
				zap.String("name", gen.Name),
				zap.String("planned", prev))
			warnings = append(warnings, fmt.Errorf("generation %d: %s already planned as %s", id, gen.Name, prev))
			continue
		}
		planned[number] = gen.Name

		jobs = append(jobs, generationJob{
			number:  number,
			name:    gen.Name,
			species: gen.PokemonSpecies,
		})
	}
	return jobs, warnings, nil
}

// collateGeneration builds the entries of one generation sequentially, then
// writes them sorted by id. A listed species without a pokemon resource is
// skipped; any other failure aborts the generation.
func (r *runner) collateGeneration(ctx context.Context, job generationJob) (generationResult, error) {
	ctx, span := r.tracer.Start(ctx, "collate.generation")
	defer span.End()
	span.SetAttributes(
		attribute.Int("generation", job.number),
		attribute.Int("species", len(job.species)),
	)

	res := generationResult{entries: make([]dex.Pokemon, 0, len(job.species))}
	seen := make(map[int]struct{}, len(job.species))

	for _, ref := range job.species {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		id, err := resource.IDFromRef(ref.URL)
		if err != nil {
			return res, fail(span, fmt.Errorf("generation %d species %s: %w", job.number, ref.Name, err))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		ok, err := r.store.Exists(resource.KindPokemon, id)
		if err != nil {
			return res, fail(span, fmt.Errorf("pokemon %d: %w", id, err))
		}
		if !ok {
			skip := Skip{
				Generation: job.number,
				SpeciesID:  id,
				Species:    ref.Name,
				Path:       resource.Path(resource.KindPokemon, id),
			}
			r.logger.Warn("pokemon resource missing, skipping species",
				zap.Int("generation", skip.Generation),
				zap.Int("species_id", skip.SpeciesID),
				zap.String("species", skip.Species),
				zap.String("path", skip.Path))
			res.skipped = append(res.skipped, skip)
			continue
		}

		entry, warnings, err := r.resolver.Pokemon(ctx, id)
		if err != nil {
			return res, fail(span, fmt.Errorf("pokemon %d: %w", id, err))
		}
		for _, w := range warnings {
			r.logger.Warn("incomplete entry", zap.Int("pokemon_id", id), zap.Error(w))
		}
		res.warnings = append(res.warnings, warnings...)
		res.entries = append(res.entries, entry)
	}

	sort.Slice(res.entries, func(i, j int) bool { return res.entries[i].ID < res.entries[j].ID })

	file := ArtifactName(job.number)
	if err := writeJSON(r.out, file, res.entries); err != nil {
		return res, fail(span, err)
	}

	res.report = GenerationReport{
		Number:  job.number,
		Name:    job.name,
		File:    file,
		Entries: len(res.entries),
	}
	span.SetAttributes(
		attribute.Int("entries", len(res.entries)),
		attribute.Int("skipped", len(res.skipped)),
	)
	r.logger.Info("generation written",
		zap.Int("generation", job.number),
		zap.String("file", file),
		zap.Int("entries", len(res.entries)),
		zap.Int("skipped", len(res.skipped)))
	return res, nil
}
