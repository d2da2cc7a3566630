package icopack

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phraims/icoforge/errors"
)

func solidImage(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	return img
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	images := []image.Image{solidImage(256), solidImage(48), solidImage(16)}

	var buf bytes.Buffer
	require.NoError(t, EncodeAll(&buf, images))

	decoded, err := DecodeAll(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, decoded, len(images))
}

func TestEncodeEmptyFails(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeAll(&buf, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errors.New(errors.ErrorTypeEncode, ""))
	require.Zero(t, buf.Len())
}

func TestInspect(t *testing.T) {
	images := []image.Image{solidImage(128), solidImage(32)}

	var buf bytes.Buffer
	require.NoError(t, EncodeAll(&buf, images))

	infos, err := Inspect(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, []EntryInfo{{Width: 128, Height: 128}, {Width: 32, Height: 32}}, infos)
}

func TestDecodeGarbageFails(t *testing.T) {
	_, err := DecodeAll(bytes.NewReader([]byte("not an ico")))
	require.Error(t, err)
}
