// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/woozymasta/bcn"
)

// EncodeOptions configures Encode.
type EncodeOptions struct {
	// MaxMipMaps limits the chain length. 0 means full chain, 1 means none.
	MaxMipMaps int
	// EncodeOptions are passed to the BCn encoder (quality, workers).
	EncodeOptions *bcn.EncodeOptions
}

// Encode compresses img into a block-compressed texture whose Data is laid
// out like a DDS payload: mip levels from largest to smallest.
func Encode(img image.Image, format Format, opts *EncodeOptions) (*Texture, error) {
	if !format.BlockCompressed() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
	if opts == nil {
		opts = &EncodeOptions{}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrEmptyImage
	}
	w32, err := u32FromInt(width)
	if err != nil {
		return nil, err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return nil, err
	}

	mipMapCount, err := calculateMipMapCount(width, height)
	if err != nil {
		return nil, err
	}
	if opts.MaxMipMaps > 0 && opts.MaxMipMaps < mipMapCount {
		mipMapCount = opts.MaxMipMaps
	}

	var payload []byte
	encode := func(level int, mip image.Image) error {
		data, _, _, err := bcn.EncodeImageWithOptions(mip, format.BCN(), opts.EncodeOptions)
		if err != nil {
			return fmt.Errorf("%w: mipmap %d: %v", ErrCompressMipmap, level, err)
		}
		payload = append(payload, data...)
		return nil
	}

	if mipMapCount == 1 {
		if err := encode(0, img); err != nil {
			return nil, err
		}
	} else {
		for i, mip := range bcn.GenerateMipmaps(img, false) {
			if i >= mipMapCount {
				break
			}
			if err := encode(i, mip); err != nil {
				return nil, err
			}
		}
	}

	return &Texture{
		Width:  w32,
		Height: h32,
		Format: format,
		Data:   payload,
	}, nil
}

// WriteDDS writes tex as a DDS file. Only block-compressed textures can be
// written; the mip count is inferred from the payload length.
func WriteDDS(w io.Writer, tex *Texture) error {
	header, err := makeDDSHeader(tex)
	if err != nil {
		return err
	}

	if err := bcn.WriteDDSMagic(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(w, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}
	if _, err := w.Write(tex.Data); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePayload, err)
	}

	return nil
}

// WriteDDSFile writes tex to path.
func WriteDDSFile(path string, tex *Texture) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	bw := bufio.NewWriter(f)
	if err := WriteDDS(bw, tex); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePayload, err)
	}

	return f.Close()
}

// countMipMaps returns how many whole mip levels the payload of tex holds.
func countMipMaps(tex *Texture) uint32 {
	w, h := int(tex.Width), int(tex.Height)
	full, err := calculateMipMapCount(w, h)
	if err != nil {
		return 1
	}

	var count uint32
	for level := 1; level <= full; level++ {
		if mipChainLength(tex.Format, w, h, level) > len(tex.Data) {
			break
		}
		count++
	}
	if count == 0 {
		return 1
	}

	return count
}

func makeDDSHeader(tex *Texture) (*bcn.DDSHeader, error) {
	if !tex.Format.BlockCompressed() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, tex.Format)
	}

	mipMapCount := countMipMaps(tex)
	flags := uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat | bcn.DDSFlagLinearSize)
	caps := uint32(bcn.DDSCapsTexture)
	if mipMapCount > 1 {
		flags |= bcn.DDSFlagMipmapCount
		caps |= bcn.DDSCapsComplex | bcn.DDSCapsMipmap
	}

	linearSize, err := u32FromInt(expectedDataLength(tex.Format, int(tex.Width), int(tex.Height)))
	if err != nil {
		return nil, err
	}

	hdr := &bcn.DDSHeader{
		Size:              bcn.DDSHeaderSize,
		Flags:             flags,
		Height:            tex.Height,
		Width:             tex.Width,
		PitchOrLinearSize: linearSize,
		Depth:             1,
		MipMapCount:       mipMapCount,
		Caps:              caps,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	hdr.PixelFormat.Flags = bcn.DDSPFFourCC
	hdr.PixelFormat.FourCC = tex.Format.FourCC()

	return hdr, nil
}
