// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"fmt"
	"image"
	"image/color"

	"github.com/woozymasta/bcn"
)

// Texture is a decoded texture owned by the caller.
//
// For FormatUncompressed32, Data holds Width*Height RGBA pixels. For the
// block-compressed formats, Data is the DDS payload exactly as stored on disk,
// including any smaller mip levels after the first.
type Texture struct {
	Width  uint32
	Height uint32
	Format Format
	Data   []byte
}

// Config returns the texture dimensions as an image.Config.
func (t *Texture) Config() image.Config {
	return image.Config{
		Width:      int(t.Width),
		Height:     int(t.Height),
		ColorModel: color.RGBAModel,
	}
}

// Clone returns a deep copy of t.
func (t *Texture) Clone() *Texture {
	if t == nil {
		return nil
	}
	out := *t
	out.Data = append([]byte(nil), t.Data...)
	return &out
}

// Image expands the top level of the texture into an image.
// Nil opts uses default decoding.
func (t *Texture) Image(opts *bcn.DecodeOptions) (image.Image, error) {
	w, h := int(t.Width), int(t.Height)
	expected := expectedDataLength(t.Format, w, h)
	if expected < 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, t.Format)
	}
	if len(t.Data) < expected {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrPayloadTooShort, expected, len(t.Data))
	}

	if t.Format == FormatUncompressed32 {
		return &image.RGBA{
			Pix:    t.Data[:expected],
			Stride: w * 4,
			Rect:   image.Rect(0, 0, w, h),
		}, nil
	}

	img, err := bcn.DecodeImageWithOptions(t.Data[:expected], w, h, t.Format.BCN(), opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return img, nil
}
