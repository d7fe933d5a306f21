// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"errors"
	"fmt"
)

// Error kinds. Every resolve, load and config error wraps exactly one of them,
// so callers can branch with errors.Is.
var (
	// ErrNotFound indicates no candidate file exists for a logical path.
	ErrNotFound = errors.New("texture not found")
	// ErrFormat indicates a file exists but is not a usable DDS file.
	ErrFormat = errors.New("format error")
	// ErrIO indicates reading or decoding a file failed.
	ErrIO = errors.New("io failure")
	// ErrConfiguration indicates the resolver cannot be configured.
	ErrConfiguration = errors.New("configuration fault")
)

var (
	// ErrShortHeader indicates the input is shorter than a DDS header.
	ErrShortHeader = fmt.Errorf("%w: buffer shorter than DDS header", ErrFormat)
	// ErrNotDDSFile indicates a bad DDS magic number.
	ErrNotDDSFile = fmt.Errorf("%w: not a DDS file", ErrFormat)
	// ErrInvalidHeaderSize indicates the DDS header size field is not 124.
	ErrInvalidHeaderSize = fmt.Errorf("%w: invalid DDS header size", ErrFormat)
	// ErrUnsupportedFormat indicates a FourCC other than DXT1 or DXT5.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported pixel format", ErrFormat)
	// ErrDDSHeaderRead indicates the full DDS header could not be read.
	ErrDDSHeaderRead = fmt.Errorf("%w: reading DDS header failed", ErrFormat)

	// ErrReadFile indicates reading a texture file failed.
	ErrReadFile = fmt.Errorf("%w: read file failed", ErrIO)
	// ErrDecode indicates the image decoder rejected the file.
	ErrDecode = fmt.Errorf("%w: decode image failed", ErrIO)
	// ErrPayloadTooShort indicates block data is smaller than its dimensions need.
	ErrPayloadTooShort = fmt.Errorf("%w: payload too short", ErrIO)

	// ErrNoGameData indicates the install path has no GameData segment.
	ErrNoGameData = fmt.Errorf("%w: path has no GameData segment", ErrConfiguration)
	// ErrExecutablePath indicates the running executable could not be located.
	ErrExecutablePath = fmt.Errorf("%w: locate executable failed", ErrConfiguration)
	// ErrReadConfig indicates a config file could not be read.
	ErrReadConfig = fmt.Errorf("%w: read config failed", ErrConfiguration)
	// ErrParseConfig indicates a config file could not be parsed.
	ErrParseConfig = fmt.Errorf("%w: parse config failed", ErrConfiguration)
	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = fmt.Errorf("%w: invalid log level", ErrConfiguration)
)

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidFormat indicates a format that cannot be written.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrEmptyImage indicates an image with zero width or height.
	ErrEmptyImage = errors.New("empty image")
	// ErrCompressMipmap indicates mipmap compression failed.
	ErrCompressMipmap = errors.New("compress mipmap failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWritePayload indicates payload write failed.
	ErrWritePayload = errors.New("writing payload failed")
)
