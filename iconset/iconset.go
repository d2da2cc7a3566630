// Package iconset reads PNG images from an iconset directory, the
// packaging convention of conventionally named per-resolution files.
package iconset

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/phraims/icoforge/errors"
	"github.com/phraims/icoforge/logging"
)

// Slot is one expected file of the iconset convention.
type Slot struct {
	// Name is the conventional filename inside the iconset directory.
	Name string
	// NominalSize is the square pixel size the name advertises.
	// An @2x suffix doubles the named size.
	NominalSize int
}

// Slots lists the expected files in conventional order.
var Slots = []Slot{
	{Name: "icon_16x16.png", NominalSize: 16},
	{Name: "icon_32x32.png", NominalSize: 32},
	{Name: "icon_32x32@2x.png", NominalSize: 64},
	{Name: "icon_128x128.png", NominalSize: 128},
	{Name: "icon_256x256.png", NominalSize: 256},
}

// Entry is a decoded image collected from the iconset.
type Entry struct {
	// Name is the source filename, or a synthetic label for
	// generated entries.
	Name string
	// NominalSize is the slot's named size; for generated entries,
	// the requested size.
	NominalSize int
	// Synthesized is true for entries produced by resizing rather
	// than read from disk.
	Synthesized bool
	// Image is the decoded image.
	Image image.Image
}

// Width returns the decoded pixel width.
func (e Entry) Width() int {
	return e.Image.Bounds().Dx()
}

// Height returns the decoded pixel height.
func (e Entry) Height() int {
	return e.Image.Bounds().Dy()
}

// Area returns the decoded pixel area, the sort key for container order.
func (e Entry) Area() int {
	return e.Width() * e.Height()
}

// Scanner reads entries from an iconset directory.
type Scanner struct {
	dir string
	log logging.Logger
}

// NewScanner creates a Scanner for the given directory.
func NewScanner(dir string) *Scanner {
	return &Scanner{
		dir: dir,
		log: logging.Named("iconset"),
	}
}

// Scan decodes every present slot file. A missing or undecodable slot
// file is a warning, not an error; a missing directory is fatal.
// Every returned entry has positive width and height.
func (s *Scanner) Scan() ([]Entry, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFound("iconset directory", s.dir)
		}
		return nil, errors.WrapWithType(err, errors.ErrorTypeInternal, "failed to stat iconset directory")
	}
	if !info.IsDir() {
		return nil, errors.NewNotFound("iconset directory", s.dir)
	}

	var entries []Entry
	for _, slot := range Slots {
		entry, ok := s.scanSlot(slot)
		if ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// Find returns the first entry with the given nominal size.
func Find(entries []Entry, nominalSize int) (Entry, bool) {
	for _, e := range entries {
		if e.NominalSize == nominalSize && !e.Synthesized {
			return e, true
		}
	}
	return Entry{}, false
}

func (s *Scanner) scanSlot(slot Slot) (Entry, bool) {
	path := filepath.Join(s.dir, slot.Name)

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Warnf("%s not found", slot.Name)
		} else {
			s.log.Warn("failed to open slot file", zap.String("file", slot.Name), zap.Error(err))
		}
		return Entry{}, false
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		s.log.Warn("failed to decode slot file", zap.String("file", slot.Name), zap.Error(err))
		return Entry{}, false
	}

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		s.log.Warn("slot file has no pixels", zap.String("file", slot.Name))
		return Entry{}, false
	}

	s.log.Infof("Added %s (%dx%d)", slot.Name, bounds.Dx(), bounds.Dy())

	return Entry{
		Name:        slot.Name,
		NominalSize: slot.NominalSize,
		Image:       img,
	}, true
}
