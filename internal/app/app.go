// Package app implements the application layer for amscircuit.
package app

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/NyanCAD/amscrcuits/internal/core/domain"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/NyanCAD/amscrcuits/internal/engine/netlist"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DefaultSimulator is used when neither the command line nor the design file names a simulator.
const DefaultSimulator = "ngspice"

// App represents the main application logic.
type App struct {
	loader ports.DesignLoader
	synth  *netlist.Synthesizer
	store  ports.NetlistStore
	hasher ports.Hasher
	writer ports.OutputWriter
	tel    ports.Telemetry
	logger ports.Logger
	now    func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.DesignLoader,
	synth *netlist.Synthesizer,
	store ports.NetlistStore,
	hasher ports.Hasher,
	writer ports.OutputWriter,
	tel ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		loader: loader,
		synth:  synth,
		store:  store,
		hasher: hasher,
		writer: writer,
		tel:    tel,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock configures the clock used to timestamp netlist records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// TargetOptions selects what to synthesize. Empty fields fall back to the target of the design file.
type TargetOptions struct {
	DesignPath   string
	Top          string
	Architecture string
	Simulators   []string
	// Overrides are merged over the overrides of the design file.
	Overrides map[string]string
}

// NetlistOptions configures a netlist run.
type NetlistOptions struct {
	TargetOptions
	// OutputDir receives one file per simulator. Nothing is written when it is empty.
	OutputDir string
	// CacheDir holds cached netlists. The cache is disabled when it is empty.
	CacheDir string
	// Force bypasses cached netlists. Fresh results are still stored.
	Force bool
}

// NetlistResult is the netlist produced for one simulator.
type NetlistResult struct {
	Record domain.NetlistRecord
	// Path is the written file, empty when no output directory was given.
	Path string
}

// Netlist synthesizes the target for every requested simulator.
// Simulators run concurrently on independent configuration trees; results keep the requested order.
func (a *App) Netlist(ctx context.Context, opts NetlistOptions) ([]NetlistResult, error) {
	design, target, err := a.prepare(opts.TargetOptions)
	if err != nil {
		return nil, err
	}

	results := make([]NetlistResult, len(target.Simulators))
	g, ctx := errgroup.WithContext(ctx)
	for i, sim := range target.Simulators {
		g.Go(func() error {
			rec, err := a.netlistFor(ctx, design, target, sim, opts)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "netlist generation failed"), "simulator", sim)
			}
			results[i].Record = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range results {
		rec := results[i].Record
		if opts.OutputDir == "" {
			a.logger.Info("synthesized "+rec.Entity, "simulator", rec.Simulator, "cached", rec.Cached)
			continue
		}
		path, err := a.writer.Write(opts.OutputDir, outputName(rec, len(results) > 1), []byte(rec.Text))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to write netlist"), "simulator", rec.Simulator)
		}
		results[i].Path = path
		a.logger.Info("wrote "+path, "simulator", rec.Simulator, "cached", rec.Cached)
	}
	return results, nil
}

func (a *App) netlistFor(
	ctx context.Context,
	design *domain.Design,
	target domain.Target,
	sim string,
	opts NetlistOptions,
) (domain.NetlistRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.NetlistRecord{}, err
	}

	_, vertex := a.tel.Record(ctx, sim+" "+target.Entity)
	rec, err := a.generate(design, target, sim, opts, vertex)
	vertex.Complete(err)
	return rec, err
}

func (a *App) generate(
	design *domain.Design,
	target domain.Target,
	sim string,
	opts NetlistOptions,
	vertex ports.Vertex,
) (domain.NetlistRecord, error) {
	var key string
	if opts.CacheDir != "" {
		var err error
		key, err = a.hasher.ComputeNetlistKey(opts.DesignPath, target, sim)
		if err != nil {
			return domain.NetlistRecord{}, zerr.Wrap(err, "failed to compute cache key")
		}
		if !opts.Force {
			rec, err := a.store.Get(opts.CacheDir, key)
			switch {
			case err != nil:
				a.logger.Warn("ignoring cached netlist: "+err.Error(), "simulator", sim)
			case rec != nil:
				vertex.Cached()
				return *rec, nil
			}
		}
	}

	text, err := a.synth.Synthesize(design, target, sim)
	if err != nil {
		return domain.NetlistRecord{}, err
	}
	rec := domain.NetlistRecord{
		Key:       key,
		Entity:    target.Entity,
		Simulator: sim,
		Text:      text,
		CreatedAt: a.now(),
	}
	if opts.CacheDir != "" {
		if err := a.store.Put(opts.CacheDir, rec); err != nil {
			a.logger.Warn("cannot cache netlist: "+err.Error(), "simulator", sim)
		}
	}
	return rec, nil
}

// CheckResult lists the architectures selected for one simulator.
type CheckResult struct {
	Simulator   string
	Resolutions []netlist.Resolution
}

// Check validates the design and resolves the architecture of every configuration reachable
// from the target, for every requested simulator, without rendering netlists.
func (a *App) Check(_ context.Context, opts TargetOptions) ([]CheckResult, error) {
	design, target, err := a.prepare(opts)
	if err != nil {
		return nil, err
	}

	results := make([]CheckResult, 0, len(target.Simulators))
	for _, sim := range target.Simulators {
		res, err := a.synth.Resolve(design, target, sim)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "check failed"), "simulator", sim)
		}
		for _, r := range res {
			a.logger.Info(fmt.Sprintf("uses %s/%s (%s)", r.Entity, r.Architecture, r.Kind), "simulator", sim, "hierarchy", r.Path)
		}
		results = append(results, CheckResult{Simulator: sim, Resolutions: res})
	}
	return results, nil
}

func (a *App) prepare(opts TargetOptions) (*domain.Design, domain.Target, error) {
	design, err := a.loader.Load(opts.DesignPath)
	if err != nil {
		return nil, domain.Target{}, zerr.Wrap(err, "failed to load design")
	}
	if err := design.Validate(); err != nil {
		return nil, domain.Target{}, zerr.With(zerr.Wrap(err, "invalid design"), "path", opts.DesignPath)
	}

	target := mergeTarget(design.Target, opts)
	if target.Entity == "" {
		return nil, domain.Target{}, zerr.With(zerr.Wrap(domain.ErrNoTopEntity, "nothing to synthesize"), "path", opts.DesignPath)
	}
	for _, sim := range target.Simulators {
		if _, err := netlist.Lookup(sim); err != nil {
			return nil, domain.Target{}, err
		}
	}
	return design, target, nil
}

// mergeTarget applies the command line over the target of the design file.
// Naming another top entity drops the architecture chosen by the file.
func mergeTarget(file domain.Target, opts TargetOptions) domain.Target {
	target := domain.Target{
		Entity:       file.Entity,
		Architecture: file.Architecture,
		Simulators:   slices.Clone(file.Simulators),
		Overrides:    maps.Clone(file.Overrides),
	}
	if opts.Top != "" && opts.Top != file.Entity {
		target.Entity = opts.Top
		target.Architecture = ""
	}
	if opts.Architecture != "" {
		target.Architecture = opts.Architecture
	}
	if len(opts.Simulators) > 0 {
		target.Simulators = slices.Clone(opts.Simulators)
	}
	target.Simulators = dedupe(target.Simulators)
	if len(target.Simulators) == 0 {
		target.Simulators = []string{DefaultSimulator}
	}
	if len(opts.Overrides) > 0 {
		if target.Overrides == nil {
			target.Overrides = make(map[string]string, len(opts.Overrides))
		}
		maps.Copy(target.Overrides, opts.Overrides)
	}
	return target
}

func dedupe(names []string) []string {
	out := names[:0]
	for _, n := range names {
		if !slices.Contains(out, n) {
			out = append(out, n)
		}
	}
	return out
}

// outputName is <entity><ext>, or <entity>.<simulator><ext> when several simulators share a run.
func outputName(rec domain.NetlistRecord, multi bool) string {
	ext := ".cir"
	if sim, err := netlist.Lookup(rec.Simulator); err == nil {
		ext = sim.Family().Extension()
	}
	if multi {
		return rec.Entity + "." + rec.Simulator + ext
	}
	return rec.Entity + ext
}
