package iconset

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phraims/icoforge/errors"
)

func writePNG(t *testing.T, path string, size int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func writeIconset(t *testing.T, slots ...Slot) string {
	t.Helper()

	dir := t.TempDir()
	for _, slot := range slots {
		size := slot.NominalSize
		writePNG(t, filepath.Join(dir, slot.Name), size)
	}
	return dir
}

func TestScanAllSlots(t *testing.T) {
	dir := writeIconset(t, Slots...)

	entries, err := NewScanner(dir).Scan()
	require.NoError(t, err)
	require.Len(t, entries, len(Slots))

	for i, e := range entries {
		require.Equal(t, Slots[i].Name, e.Name)
		require.Equal(t, Slots[i].NominalSize, e.Width())
		require.Equal(t, Slots[i].NominalSize, e.Height())
		require.False(t, e.Synthesized)
		require.Positive(t, e.Area())
	}
}

func TestScanSkipsMissingSlots(t *testing.T) {
	dir := writeIconset(t, Slots[0], Slots[3]) // only 16 and 128

	entries, err := NewScanner(dir).Scan()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "icon_16x16.png", entries[0].Name)
	require.Equal(t, "icon_128x128.png", entries[1].Name)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "nope.iconset")).Scan()
	require.Error(t, err)
	require.ErrorIs(t, err, errors.New(errors.ErrorTypeNotFound, ""))
}

func TestScanIgnoresUnrelatedAndCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("not an icon"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon_16x16.png"), []byte("not a png"), 0644))

	entries, err := NewScanner(dir).Scan()
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestFind(t *testing.T) {
	dir := writeIconset(t, Slots...)
	entries, err := NewScanner(dir).Scan()
	require.NoError(t, err)

	src, ok := Find(entries, 256)
	require.True(t, ok)
	require.Equal(t, "icon_256x256.png", src.Name)

	_, ok = Find(entries, 48)
	require.False(t, ok)
}
