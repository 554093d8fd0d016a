// Package cli wires the settings subsystem for the command-line interface.
package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/poricom/poricom/internal/application/usecase"
	"github.com/poricom/poricom/internal/cli/styles"
	"github.com/poricom/poricom/internal/domain/build"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/infrastructure/config"
	"github.com/poricom/poricom/internal/infrastructure/persistence/sqlite"
	"github.com/poricom/poricom/internal/infrastructure/preview"
	"github.com/poricom/poricom/internal/logging"
	"github.com/poricom/poricom/internal/ui/theme"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Dirs      *config.XDGDirs
	Theme     *styles.Theme
	Renderer  *styles.SettingsRenderer
	BuildInfo build.Info

	Store   repository.PropertyStore
	Files   *config.FileStore // nil with the sqlite backend
	Host    *Host
	Preview *preview.Recorder
	Menu    *usecase.SettingsMenu

	configFile string
	db         *sql.DB
	ctx        context.Context
}

// NewApp creates a new CLI application from the XDG configuration.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return NewAppWithManager(mgr)
}

// NewAppWithManager creates a CLI application from mgr. An invalid config file
// is reported and replaced by the defaults.
func NewAppWithManager(mgr *config.Manager) (*App, error) {
	loadErr := mgr.Load()
	cfg := mgr.Get()
	dirs := mgr.Dirs()
	fillPaths(cfg, dirs)

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	if loadErr != nil {
		logger.Warn().Err(loadErr).Msg("config not loaded, using defaults")
	}

	app := &App{
		Config:     cfg,
		Dirs:       dirs,
		Theme:      styles.NewTheme(cfg),
		Host:       NewHost(),
		Preview:    preview.NewRecorder(preview.NewFileTarget(cfg.Preview.CSSPath)),
		configFile: mgr.GetConfigFile(),
		ctx:        ctx,
	}
	app.Renderer = styles.NewSettingsRenderer(app.Theme)

	if err := app.openStore(ctx); err != nil {
		return nil, err
	}

	menu, err := usecase.NewSettingsMenu(usecase.SettingsMenuConfig{
		Store:     app.Store,
		Preview:   app.Preview,
		RenderCSS: theme.GeneratePreviewCSS,
		Host:      app.Host,
	})
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	app.Menu = menu

	if err := menu.Load(ctx); err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if cfg.Preview.Width != usecase.DefaultPreviewWidth || cfg.Preview.Height != usecase.DefaultPreviewHeight {
		if err := menu.View().Resize(ctx, float64(cfg.Preview.Width), float64(cfg.Preview.Height)); err != nil {
			logger.Warn().Err(err).Msg("preview not resized")
		}
	}

	logger.Debug().
		Str("backend", string(cfg.Store.Backend)).
		Str("config", app.configFile).
		Msg("settings loaded")
	return app, nil
}

func (a *App) openStore(ctx context.Context) error {
	switch a.Config.Store.Backend {
	case config.BackendSQLite:
		db, err := sqlite.NewConnection(ctx, a.Config.Store.DatabasePath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if err := sqlite.RunMigrations(ctx, db); err != nil {
			_ = sqlite.Close(db)
			return fmt.Errorf("migrate database: %w", err)
		}
		a.db = db
		a.Store = sqlite.NewPropertyStore(db)
	default:
		files, err := config.NewFileStore(a.Config.Store.SettingsDir)
		if err != nil {
			return fmt.Errorf("open settings dir: %w", err)
		}
		a.Files = files
		a.Store = files
	}
	return nil
}

// fillPaths covers a config that was not resolved because loading failed.
func fillPaths(cfg *config.Config, dirs *config.XDGDirs) {
	if cfg.Store.SettingsDir == "" {
		cfg.Store.SettingsDir = dirs.SettingsDir()
	}
	if cfg.Store.DatabasePath == "" {
		cfg.Store.DatabasePath = dirs.DatabaseFile()
	}
	if cfg.Preview.CSSPath == "" {
		cfg.Preview.CSSPath = dirs.PreviewCSSFile()
	}
}

// Group finds a settings group by name or section.
func (a *App) Group(name string) (*usecase.SettingsGroup, error) {
	g, ok := a.Menu.Group(name)
	if !ok {
		return nil, fmt.Errorf("unknown settings group %q", name)
	}
	return g, nil
}

// ConfigFile returns the path of the config file in use.
func (a *App) ConfigFile() string { return a.configFile }

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return sqlite.Close(a.db)
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
