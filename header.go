// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/woozymasta/bcn"
)

const (
	// Magic is "DDS " read as a little-endian uint32.
	Magic uint32 = 0x20534444
	// HeaderSize is the magic plus the fixed DDS header.
	HeaderSize = 128
	// headerStructSize is the value of the dwSize field in a valid header.
	headerStructSize = 124

	offsetSize        = 4
	offsetHeight      = 12
	offsetWidth       = 16
	offsetMipMapCount = 28
	offsetPixelFormat = 76
	offsetFourCC      = offsetPixelFormat + 8
)

// HeaderInfo is the subset of a DDS header the loader needs.
type HeaderInfo struct {
	Magic       uint32
	Size        uint32
	Height      uint32
	Width       uint32
	MipMapCount uint32
	FourCC      uint32
	Format      Format
}

// FourCCString returns the FourCC as its four ASCII characters.
func (h HeaderInfo) FourCCString() string {
	return fourCCString(h.FourCC)
}

// ParseHeader reads a DDS header from the first HeaderSize bytes of b.
//
// Width and height are taken from the low 16 bits of their fields only,
// which is how the files this resolver was written for have always been
// read. Use ParseHeaderStrict for full 32-bit dimensions.
//
// An unknown FourCC is not an error here; Format is set to FormatUnsupported.
func ParseHeader(b []byte) (HeaderInfo, error) {
	if len(b) < HeaderSize {
		return HeaderInfo{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(b))
	}

	magic := binary.LittleEndian.Uint32(b[0:4])
	if magic != Magic {
		return HeaderInfo{}, fmt.Errorf("%w: magic 0x%08x", ErrNotDDSFile, magic)
	}

	fourCC := binary.LittleEndian.Uint32(b[offsetFourCC : offsetFourCC+4])

	return HeaderInfo{
		Magic:       magic,
		Size:        binary.LittleEndian.Uint32(b[offsetSize : offsetSize+4]),
		Height:      uint32(b[offsetHeight+1])*256 + uint32(b[offsetHeight]),
		Width:       uint32(b[offsetWidth+1])*256 + uint32(b[offsetWidth]),
		MipMapCount: binary.LittleEndian.Uint32(b[offsetMipMapCount : offsetMipMapCount+4]),
		FourCC:      fourCC,
		Format:      FormatFromFourCC(fourCC),
	}, nil
}

// ParseHeaderStrict is ParseHeader with full 32-bit width and height.
// It also rejects a header whose size field is not 124.
func ParseHeaderStrict(b []byte) (HeaderInfo, error) {
	if len(b) < HeaderSize {
		return HeaderInfo{}, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(b))
	}

	magic := binary.LittleEndian.Uint32(b[0:4])
	if magic != Magic {
		return HeaderInfo{}, fmt.Errorf("%w: magic 0x%08x", ErrNotDDSFile, magic)
	}
	if size := binary.LittleEndian.Uint32(b[offsetSize : offsetSize+4]); size != headerStructSize {
		return HeaderInfo{}, fmt.Errorf("%w: %d", ErrInvalidHeaderSize, size)
	}

	header, err := bcn.ReadDDSHeader(bytes.NewReader(b[:HeaderSize]))
	if err != nil {
		return HeaderInfo{}, fmt.Errorf("%w: %v", ErrDDSHeaderRead, err)
	}

	return HeaderInfo{
		Magic:       magic,
		Size:        header.Size,
		Height:      header.Height,
		Width:       header.Width,
		MipMapCount: header.MipMapCount,
		FourCC:      header.PixelFormat.FourCC,
		Format:      FormatFromFourCC(header.PixelFormat.FourCC),
	}, nil
}
