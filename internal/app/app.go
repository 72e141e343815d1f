package app

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/handiism/hurufa/internal/classify"
	"github.com/handiism/hurufa/internal/config"
	"github.com/handiism/hurufa/internal/export"
	"github.com/handiism/hurufa/internal/fontsource"
	ioutils "github.com/handiism/hurufa/internal/io"
	"github.com/handiism/hurufa/internal/logging"
	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/overlay"
	"github.com/handiism/hurufa/internal/store"
)

// Persister stores the user's tags and languages.
type Persister interface {
	Save(ctx context.Context, fonts []model.Font) error
}

// Forgetter is implemented by persisters that can drop a stored record.
type Forgetter interface {
	Delete(ctx context.Context, id string) (bool, error)
}

// App wires the Store to its external capabilities.
type App struct {
	Settings *config.Settings
	Store    *store.Store

	Source   export.FontDataSource
	Saver    export.Saver
	Archiver export.Archiver
	Overlay  Persister

	db *sql.DB

	persistMu sync.Mutex
	persisted uint64 // Store version of the last snapshot written
}

// Open scans the configured font directories, lays the stored overlay
// over the result and returns a ready App.
func Open(ctx context.Context, settings *config.Settings) (*App, error) {
	idx, err := fontsource.NewScanner(settings.FontDirs, settings.MaxConcurrentScans).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan fonts: %w", err)
	}

	db, err := overlay.Open(settings.OverlayPath)
	if err != nil {
		return nil, fmt.Errorf("open overlay: %w", err)
	}
	repo := overlay.NewRepo(db)
	recs, err := repo.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("load overlay: %w", err)
	}

	a := New(settings, idx, repo)
	a.db = db
	a.Store.SetFonts(overlay.Apply(store.Ingest(idx.RawFonts()), recs))
	logging.Logger().Info("fonts loaded", "fonts", len(a.Store.Fonts()), "families", len(a.Store.Families()), "overlay", len(recs))
	return a, nil
}

// New assembles an App from already opened parts. The Store starts empty.
func New(settings *config.Settings, source export.FontDataSource, persister Persister) *App {
	s := store.New(settings.ToDisplayPrefs())
	s.SetViewMode(settings.ToViewMode())
	return &App{
		Settings: settings,
		Store:    s,
		Source:   source,
		Saver:    ioutils.NewDirSaver(settings.ExportPath),
		Archiver: export.ZipArchiver{},
		Overlay:  persister,
	}
}

// Close releases the overlay database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Persist saves the Store's current fonts to the overlay.
func (a *App) Persist(ctx context.Context) error {
	return a.PersistFonts(ctx, a.Store.Fonts(), a.Store.Version())
}

// PersistFonts saves a snapshot of fonts taken at Store version to the
// overlay. It is safe to call from several goroutines with slices obtained
// from Store.Fonts: saves run one at a time and a snapshot older than one
// already written is dropped.
func (a *App) PersistFonts(ctx context.Context, fonts []model.Font, version uint64) error {
	if a.Overlay == nil {
		return nil
	}

	a.persistMu.Lock()
	defer a.persistMu.Unlock()

	if version <= a.persisted {
		logging.Logger().Debug("stale overlay snapshot skipped", "version", version, "persisted", a.persisted)
		return nil
	}
	if err := a.Overlay.Save(ctx, fonts); err != nil {
		logging.Logger().Error("overlay save failed", "err", err)
		return fmt.Errorf("save overlay: %w", err)
	}
	a.persisted = version
	return nil
}

// ResetFamily clears the tags of every font in the named family, restores
// the language detected from its name and forgets the stored records.
func (a *App) ResetFamily(ctx context.Context, name string) error {
	fam, ok := a.Store.Family(name)
	if !ok {
		return fmt.Errorf("no family named %q", name)
	}
	a.Store.UpdateFamily(name, nil, classify.DetectLanguage(name))

	f, ok := a.Overlay.(Forgetter)
	if !ok {
		return a.Persist(ctx)
	}

	a.persistMu.Lock()
	defer a.persistMu.Unlock()
	for _, id := range fam.IDs() {
		if _, err := f.Delete(ctx, id); err != nil {
			return fmt.Errorf("reset %s: %w", name, err)
		}
	}
	a.persisted = a.Store.Version()
	return nil
}

// Exporter returns an Orchestrator reporting to onProgress.
func (a *App) Exporter(onProgress func(export.ProgressEvent)) *export.Orchestrator {
	return export.NewOrchestrator(a.Source, a.Saver, a.Archiver, onProgress)
}

// ExportTargets resolves what an export acts on: explicit when non-nil,
// otherwise the selected fonts in list order.
func (a *App) ExportTargets(explicit []model.Font) []model.Font {
	if explicit != nil {
		return explicit
	}
	return a.Store.SelectedFonts()
}

// ExportSelection exports explicit, or the current selection when
// explicit is nil.
func (a *App) ExportSelection(ctx context.Context, explicit []model.Font, onProgress func(export.ProgressEvent)) (export.Result, error) {
	return a.Exporter(onProgress).Export(ctx, a.ExportTargets(explicit))
}
