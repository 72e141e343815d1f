package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	ioutils "github.com/handiism/hurufa/internal/io"
	"github.com/handiism/hurufa/internal/logging"
	"github.com/handiism/hurufa/internal/model"
)

var (
	// ErrNothingExported is returned by a batch export in which every
	// font failed to fetch.
	ErrNothingExported = errors.New("export: no font could be retrieved")

	// ErrCancelled is returned by a Saver when the user declined to save.
	ErrCancelled = errors.New("export: cancelled")
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents an export progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// FontDataSource retrieves the binary contents of a font.
type FontDataSource interface {
	FontData(ctx context.Context, font model.Font) ([]byte, error)
}

// Saver persists a finished export under a suggested file name and
// returns where it ended up. It returns ErrCancelled when the user backs
// out.
type Saver interface {
	SaveFile(ctx context.Context, name string, data []byte) (string, error)
}

// Archiver packs entries into a single archive.
type Archiver interface {
	BuildArchive(entries []Entry) ([]byte, error)
}

// Entry is one file inside an archive.
type Entry struct {
	Name string
	Data []byte
}

// Result describes a finished export.
type Result struct {
	// Name is the suggested file name handed to the Saver.
	Name string

	// Path is where the Saver wrote the file.
	Path string

	// Exported counts the fonts included in the output.
	Exported int

	// Failed holds the identities of fonts skipped because their data
	// could not be retrieved.
	Failed []string

	// Cancelled is set when the Saver reported ErrCancelled.
	Cancelled bool
}

// Orchestrator coordinates font exports.
type Orchestrator struct {
	source   FontDataSource
	saver    Saver
	archiver Archiver

	total   int32
	fetched int32
	failed  int32

	onProgress func(ProgressEvent)
}

// NewOrchestrator creates a new export Orchestrator.
func NewOrchestrator(source FontDataSource, saver Saver, archiver Archiver, onProgress func(ProgressEvent)) *Orchestrator {
	return &Orchestrator{
		source:     source,
		saver:      saver,
		archiver:   archiver,
		onProgress: onProgress,
	}
}

// Export saves fonts as a single file or an archive. An empty list is a
// no-op returning a zero Result.
func (o *Orchestrator) Export(ctx context.Context, fonts []model.Font) (Result, error) {
	atomic.StoreInt32(&o.total, int32(len(fonts)))
	atomic.StoreInt32(&o.fetched, 0)
	atomic.StoreInt32(&o.failed, 0)

	switch len(fonts) {
	case 0:
		return Result{}, nil
	case 1:
		return o.exportSingle(ctx, fonts[0])
	default:
		return o.exportBatch(ctx, fonts)
	}
}

// GetProgress returns current export progress.
func (o *Orchestrator) GetProgress() (fetched, failed, total int32) {
	return atomic.LoadInt32(&o.fetched), atomic.LoadInt32(&o.failed), atomic.LoadInt32(&o.total)
}

func (o *Orchestrator) exportSingle(ctx context.Context, font model.Font) (Result, error) {
	name := FileName(font)
	o.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", font.ID()), Level: LevelVerbose})

	data, err := o.source.FontData(ctx, font)
	if err != nil {
		atomic.AddInt32(&o.failed, 1)
		o.progress(ProgressEvent{Message: fmt.Sprintf("Error fetching %s: %v", font.ID(), err), Level: LevelError})
		return Result{Name: name, Failed: []string{font.ID()}}, fmt.Errorf("export %s: %w", font.ID(), err)
	}
	atomic.AddInt32(&o.fetched, 1)

	res := Result{Name: name, Exported: 1}
	return o.save(ctx, res, data)
}

func (o *Orchestrator) exportBatch(ctx context.Context, fonts []model.Font) (Result, error) {
	res := Result{Name: ArchiveName(fonts)}

	var entries []Entry
	used := make(map[string]int)
	for _, f := range fonts {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s", f.ID()), Level: LevelVerbose})

		data, err := o.source.FontData(ctx, f)
		if err != nil {
			atomic.AddInt32(&o.failed, 1)
			res.Failed = append(res.Failed, f.ID())
			logging.Logger().Warn("skipping font in export", "font", f.ID(), "err", err)
			o.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", f.ID(), err), Level: LevelWarning})
			continue
		}
		atomic.AddInt32(&o.fetched, 1)
		entries = append(entries, Entry{Name: uniqueName(used, ioutils.SanitizeFileName(FileName(f))), Data: data})
	}

	if len(entries) == 0 {
		o.progress(ProgressEvent{Message: "None of the selected fonts could be retrieved", Level: LevelError})
		return res, ErrNothingExported
	}
	res.Exported = len(entries)

	archive, err := o.archiver.BuildArchive(entries)
	if err != nil {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Error building %s: %v", res.Name, err), Level: LevelError})
		return res, fmt.Errorf("build archive: %w", err)
	}
	return o.save(ctx, res, archive)
}

func (o *Orchestrator) save(ctx context.Context, res Result, data []byte) (Result, error) {
	path, err := o.saver.SaveFile(ctx, res.Name, data)
	if errors.Is(err, ErrCancelled) {
		res.Cancelled = true
		o.progress(ProgressEvent{Message: "Export cancelled", Level: LevelInfo})
		return res, nil
	}
	if err != nil {
		o.progress(ProgressEvent{Message: fmt.Sprintf("Error saving %s: %v", res.Name, err), Level: LevelError})
		return res, fmt.Errorf("save %s: %w", res.Name, err)
	}
	res.Path = path

	msg := fmt.Sprintf("Exported %d font(s) to %s", res.Exported, path)
	level := LevelSuccess
	if len(res.Failed) > 0 {
		msg = fmt.Sprintf("Exported %d font(s) to %s, %d failed", res.Exported, path, len(res.Failed))
		level = LevelWarning
	}
	logging.Logger().Info("export written", "path", path, "fonts", res.Exported, "failed", len(res.Failed))
	o.progress(ProgressEvent{Message: msg, Level: level})
	return res, nil
}

func (o *Orchestrator) progress(event ProgressEvent) {
	if o.onProgress != nil {
		o.onProgress(event)
	}
}

// Extension guesses the file extension of a font from its PostScript
// name, then its full name. It looks for ".otf" or ".ttf" anywhere in
// the string, ignoring case, and defaults to "ttf".
func Extension(font model.Font) string {
	for _, s := range []string{font.PostscriptName, font.FullName} {
		s = strings.ToLower(s)
		switch {
		case strings.Contains(s, ".otf"):
			return "otf"
		case strings.Contains(s, ".ttf"):
			return "ttf"
		}
	}
	return "ttf"
}

// FileName returns "{family}-{style}.{ext}" for a single font.
func FileName(font model.Font) string {
	return fmt.Sprintf("%s-%s.%s", font.Family, font.Style, Extension(font))
}

// ArchiveName returns "{family}.zip" when every font shares one family
// name, otherwise "fonts.zip".
func ArchiveName(fonts []model.Font) string {
	if len(fonts) == 0 {
		return "fonts.zip"
	}
	family := fonts[0].Family
	for _, f := range fonts[1:] {
		if f.Family != family {
			return "fonts.zip"
		}
	}
	return family + ".zip"
}

// uniqueName appends "-2", "-3", ... before the extension when name was
// already handed out.
func uniqueName(used map[string]int, name string) string {
	n := used[name]
	used[name] = n + 1
	if n == 0 {
		return name
	}
	ext := ""
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name, ext = name[:i], name[i:]
	}
	return uniqueName(used, fmt.Sprintf("%s-%d%s", name, n+1, ext))
}
