// Package icopack encodes and decodes the multi-resolution Windows
// icon container format (.ico).
package icopack

import (
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/phraims/icoforge/errors"
)

// EntryInfo describes one image inside an icon container.
type EntryInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// EncodeAll writes the given images into a single icon container.
// At least one image is required; order is preserved, and consumers
// expect the largest image first.
func EncodeAll(w io.Writer, images []image.Image) error {
	if len(images) == 0 {
		return errors.New(errors.ErrorTypeEncode, "cannot encode an empty icon container")
	}
	if err := ico.EncodeAll(w, images); err != nil {
		return errors.WrapWithType(err, errors.ErrorTypeEncode, "ico encoding failed")
	}
	return nil
}

// DecodeAll reads every image from an icon container.
func DecodeAll(r io.Reader) ([]image.Image, error) {
	images, err := ico.DecodeAll(r)
	if err != nil {
		return nil, errors.WrapWithType(err, errors.ErrorTypeDecode, "ico decoding failed")
	}
	return images, nil
}

// Inspect lists the entries of an icon container without returning
// the pixel data.
func Inspect(r io.Reader) ([]EntryInfo, error) {
	images, err := DecodeAll(r)
	if err != nil {
		return nil, err
	}

	infos := make([]EntryInfo, 0, len(images))
	for _, img := range images {
		b := img.Bounds()
		infos = append(infos, EntryInfo{Width: b.Dx(), Height: b.Dy()})
	}
	return infos, nil
}
