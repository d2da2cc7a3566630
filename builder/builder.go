// Package builder assembles a multi-resolution Windows icon container
// from an iconset directory.
package builder

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"sort"

	"go.uber.org/zap"

	"github.com/phraims/icoforge/config"
	"github.com/phraims/icoforge/errors"
	"github.com/phraims/icoforge/iconset"
	"github.com/phraims/icoforge/icopack"
	"github.com/phraims/icoforge/json"
	"github.com/phraims/icoforge/logging"
	"github.com/phraims/icoforge/processor"
	"github.com/phraims/icoforge/storage"
)

// sourceSlotSize is the nominal size of the slot used to synthesize
// missing resolutions.
const sourceSlotSize = 256

// synthesizedInsertPos keeps synthesized entries after the 32-px
// slots in the collected order, as the report lists them.
const synthesizedInsertPos = 2

// ReportEntry describes one image that went into the container.
type ReportEntry struct {
	Name        string `json:"name"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Synthesized bool   `json:"synthesized,omitempty"`
}

// Result is the outcome of a successful build.
type Result struct {
	Output  string        `json:"output"`
	Bytes   int64         `json:"bytes"`
	Entries []ReportEntry `json:"entries"`
}

// Builder runs icon builds for a fixed configuration.
type Builder struct {
	cfg     *config.BuildConfig
	resizer processor.Resizer
	store   storage.Store
	log     logging.Logger
}

// New creates a Builder with the default resizer and local storage.
func New(cfg *config.BuildConfig) *Builder {
	return &Builder{
		cfg:     cfg,
		resizer: processor.NewLanczosResizer(),
		store:   storage.NewLocalStore(),
		log:     logging.Named("builder"),
	}
}

// WithResizer overrides the resizer used for synthesized entries.
func (b *Builder) WithResizer(r processor.Resizer) *Builder {
	b.resizer = r
	return b
}

// WithStore overrides the artifact store.
func (b *Builder) WithStore(s storage.Store) *Builder {
	b.store = s
	return b
}

// Build runs the whole conversion: scan the iconset, synthesize the
// missing resolutions from the largest source, sort largest-first and
// encode everything into one .ico file, then verify the output.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	entries, err := iconset.NewScanner(b.cfg.IconsetDir).Scan()
	if err != nil {
		return nil, err
	}

	entries = b.synthesize(entries)

	if len(entries) == 0 {
		return nil, errors.NewEmptyInput(b.cfg.IconsetDir)
	}

	// Largest first: the primary image should be the biggest for
	// best quality on consumers that take the first entry.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Area() > entries[j].Area()
	})

	result, err := b.encode(ctx, entries)
	if err != nil {
		return nil, err
	}

	if b.cfg.Report {
		if err := b.writeReport(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// synthesize generates the configured sizes from the largest source
// slot, when that slot was collected.
func (b *Builder) synthesize(entries []iconset.Entry) []iconset.Entry {
	src, ok := iconset.Find(entries, sourceSlotSize)
	if !ok {
		return entries
	}

	pos := synthesizedInsertPos
	if pos > len(entries) {
		pos = len(entries)
	}

	for _, size := range b.cfg.SynthesizedSizes {
		img := b.resizer.Resize(src.Image, uint(size), uint(size))
		entry := iconset.Entry{
			Name:        fmt.Sprintf("%dx%d (generated)", size, size),
			NominalSize: size,
			Synthesized: true,
			Image:       img,
		}

		entries = append(entries, iconset.Entry{})
		copy(entries[pos+1:], entries[pos:])
		entries[pos] = entry
		pos++

		b.log.Infof("Generated %dx%d from %dx%d", size, size, src.Width(), src.Height())
	}

	return entries
}

func (b *Builder) encode(ctx context.Context, entries []iconset.Entry) (*Result, error) {
	images := make([]image.Image, 0, len(entries))
	report := make([]ReportEntry, 0, len(entries))
	for _, e := range entries {
		images = append(images, e.Image)
		report = append(report, ReportEntry{
			Name:        e.Name,
			Width:       e.Width(),
			Height:      e.Height(),
			Synthesized: e.Synthesized,
		})
	}

	var buf bytes.Buffer
	if err := icopack.EncodeAll(&buf, images); err != nil {
		return nil, err
	}

	if _, err := b.store.Write(ctx, b.cfg.Output, &buf); err != nil {
		return nil, errors.NewEncode(b.cfg.Output, err)
	}

	info, exists, err := b.store.Stat(b.cfg.Output)
	if err != nil {
		return nil, errors.WrapWithType(err, errors.ErrorTypeVerification, "failed to stat output")
	}
	if !exists || info.Size == 0 {
		return nil, errors.NewVerification(b.cfg.Output)
	}

	b.log.Infof("Successfully created %s", b.cfg.Output)
	b.log.Info("output written",
		zap.String("path", info.Path),
		zap.Int64("bytes", info.Size),
		zap.Int64("kilobytes", info.Size/1024),
		zap.Int("entries", len(entries)))

	return &Result{
		Output:  info.Path,
		Bytes:   info.Size,
		Entries: report,
	}, nil
}

// writeReport stores a JSON summary next to the output file.
func (b *Builder) writeReport(ctx context.Context, result *Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.WrapWithType(err, errors.ErrorTypeInternal, "failed to marshal build report")
	}

	path := result.Output + ".report.json"
	if _, err := b.store.Write(ctx, path, bytes.NewReader(data)); err != nil {
		return errors.WrapWithType(err, errors.ErrorTypeInternal, "failed to write build report")
	}

	b.log.Infof("Wrote build report %s", path)
	return nil
}
