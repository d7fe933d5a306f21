// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import "github.com/woozymasta/bcn"

// Format is the pixel layout of a Texture payload.
type Format uint8

const (
	// FormatUnsupported marks a DDS pixel format this package does not load.
	FormatUnsupported Format = iota
	// FormatUncompressed32 is 8-bit RGBA, four bytes per pixel, row major.
	FormatUncompressed32
	// FormatDXT1 is DXT1 block compression, 8 bytes per 4x4 block.
	FormatDXT1
	// FormatDXT5 is DXT5 block compression, 16 bytes per 4x4 block.
	FormatDXT5
)

var (
	fourCCDXT1 = makeFourCC('D', 'X', 'T', '1')
	fourCCDXT5 = makeFourCC('D', 'X', 'T', '5')
)

// String returns a short human-readable name.
func (f Format) String() string {
	switch f {
	case FormatUncompressed32:
		return "RGBA32"
	case FormatDXT1:
		return "DXT1"
	case FormatDXT5:
		return "DXT5"
	default:
		return "unsupported"
	}
}

// BlockCompressed reports whether the payload is stored as GPU blocks.
func (f Format) BlockCompressed() bool {
	return f == FormatDXT1 || f == FormatDXT5
}

// BCN maps f to the codec format used for block encode and decode.
// Uncompressed32 is never handed to the codec and maps to FormatUnknown.
func (f Format) BCN() bcn.Format {
	switch f {
	case FormatDXT1:
		return bcn.FormatDXT1
	case FormatDXT5:
		return bcn.FormatDXT5
	default:
		return bcn.FormatUnknown
	}
}

// FourCC returns the DDS FourCC code for a block-compressed format, or zero.
func (f Format) FourCC() uint32 {
	switch f {
	case FormatDXT1:
		return fourCCDXT1
	case FormatDXT5:
		return fourCCDXT5
	default:
		return 0
	}
}

// ParseFormat maps a name such as "dxt1" or "DXT5" to a block format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "dxt1", "DXT1", "bc1", "BC1":
		return FormatDXT1, nil
	case "dxt5", "DXT5", "bc3", "BC3":
		return FormatDXT5, nil
	default:
		return FormatUnsupported, ErrInvalidFormat
	}
}

// FormatFromFourCC maps a DDS pixel-format FourCC to a Format.
// Anything other than DXT1 or DXT5 yields FormatUnsupported.
func FormatFromFourCC(fourCC uint32) Format {
	switch fourCC {
	case fourCCDXT1:
		return FormatDXT1
	case fourCCDXT5:
		return FormatDXT5
	default:
		return FormatUnsupported
	}
}

func fourCCString(value uint32) string {
	return string([]byte{
		byte(value & 0xff),
		byte((value >> 8) & 0xff),
		byte((value >> 16) & 0xff),
		byte((value >> 24) & 0xff),
	})
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// expectedDataLength returns the byte size of one mip level, or -1.
func expectedDataLength(format Format, width, height int) int {
	blocksW := (width + 3) / 4
	blocksH := (height + 3) / 4
	switch format {
	case FormatDXT1:
		return blocksW * blocksH * 8
	case FormatDXT5:
		return blocksW * blocksH * 16
	case FormatUncompressed32:
		return width * height * 4
	default:
		return -1
	}
}
