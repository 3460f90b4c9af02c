package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"

	"github.com/vk/bsv/internal/config"
	"github.com/vk/bsv/internal/ctxlog"
	"github.com/vk/bsv/internal/detail"
	"github.com/vk/bsv/internal/snapshot"
	"github.com/vk/bsv/internal/source"
	"github.com/vk/bsv/internal/tree"
	"github.com/vk/bsv/internal/view"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	ctx      context.Context
	logger   *slog.Logger
	settings *config.Settings
	session  *snapshot.Session
	viewer   view.Viewer
}

// NewApp resolves the settings, configures the logger and performs the
// initial load. Command output goes to outW and log output to logW. A
// *source.DiscoveryError from the initial load is returned unwrapped.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	settings := config.Defaults()
	if cfg.ConfigPath != "" {
		// The logger is not configured yet, so the settings loader logs nowhere.
		bootCtx := ctxlog.WithLogger(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)))
		loaded, err := loader.Load(bootCtx, cfg.ConfigPath, settings)
		if err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		settings = loaded
	}
	cfg.apply(settings)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	logger := newLogger(settings.Log.Level, settings.Log.Format, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.", "settings_file", cfg.ConfigPath)

	catalogLoader := source.NewLoader(source.Options{
		FileNames: settings.Catalog.FileNames,
		Exclude:   settings.Catalog.Exclude,
	})
	session, err := snapshot.NewSession(ctx, catalogLoader, settings.Catalog.Root)
	if err != nil {
		return nil, err
	}
	logger.Debug("Initial catalog load finished.", "root", settings.Catalog.Root)

	return &App{
		ctx:      ctx,
		logger:   logger,
		settings: settings,
		session:  session,
		viewer:   view.NewViewer(cfg.Output, outW),
	}, nil
}

// Settings returns the resolved settings.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// Session returns the loaded session.
func (a *App) Session() *snapshot.Session {
	return a.session
}

// Reload re-reads the catalog root.
func (a *App) Reload() (snapshot.ReloadOutcome, error) {
	return a.session.Reload(a.ctx)
}

// TreeOptions selects which nodes Tree prints.
type TreeOptions struct {
	Filter string
	// Depth expands nodes shallower than Depth. Zero keeps the default view.
	Depth int
	All   bool
}

// Tree prints the navigator tree.
func (a *App) Tree(opts TreeOptions) {
	snap := a.session.Snapshot()
	v := *a.session.View()
	v.Expanded = maps.Clone(v.Expanded)
	v.Filter = opts.Filter
	switch {
	case opts.All:
		v.ExpandAll(snap.Tree)
	case opts.Depth > 0:
		for _, id := range tree.Expandable(snap.Tree) {
			if snap.Tree.Node(id).Depth < opts.Depth {
				v.Expanded[id] = true
			}
		}
	}
	a.viewer.Tree(view.TreeResult{Snapshot: snap, Visible: v.Visible(snap.Tree)})
}

// Show prints the detail of the entity ref names.
func (a *App) Show(ref string) error {
	snap := a.session.Snapshot()
	id, err := snap.Find(ref)
	if err != nil {
		return err
	}
	d, err := detail.Project(id, snap)
	if err != nil {
		return err
	}
	a.viewer.Detail(d)
	return nil
}

// Graph prints the relationships of the entity ref names.
func (a *App) Graph(ref string) error {
	snap := a.session.Snapshot()
	id, err := snap.Find(ref)
	if err != nil {
		return err
	}
	a.session.Select(id)
	g, err := a.session.SelectedGraph()
	if err != nil {
		return err
	}
	a.viewer.Graph(view.GraphResult{Snapshot: snap, Graph: g})
	return nil
}

// Check prints every problem of the catalog and reports whether any document
// failed to load.
func (a *App) Check() bool {
	r := view.NewCheckResult(a.session.Snapshot())
	a.logger.Debug("Check finished.", "findings", len(r.Findings))
	a.viewer.Check(r)
	return r.HasErrors()
}
