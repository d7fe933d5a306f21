// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG

	"golang.org/x/image/draw"
)

// ImageDecoder turns the raw bytes of a PNG, JPEG or GIF file into a texture.
type ImageDecoder interface {
	Decode(b []byte) (*Texture, error)
}

// StdDecoder decodes with the registered image codecs and stores the
// result as FormatUncompressed32.
type StdDecoder struct{}

// Decode implements ImageDecoder.
func (StdDecoder) Decode(b []byte) (*Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return textureFromImage(img)
}

// textureFromImage copies img into a tightly packed RGBA texture.
func textureFromImage(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	w, err := u32FromInt(bounds.Dx())
	if err != nil {
		return nil, err
	}
	h, err := u32FromInt(bounds.Dy())
	if err != nil {
		return nil, err
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	return &Texture{
		Width:  w,
		Height: h,
		Format: FormatUncompressed32,
		Data:   rgba.Pix,
	}, nil
}
