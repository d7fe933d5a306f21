// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"errors"
	"fmt"
	"os"
)

// Load resolves logicalPath and decodes the file it names.
//
// Errors wrap ErrNotFound, ErrFormat or ErrIO. Only format and IO failures
// are logged; a missing file is a normal negative result.
func (r *Resolver) Load(logicalPath string) (*Texture, error) {
	rp, err := r.Resolve(logicalPath)
	if err != nil {
		return nil, err
	}

	tex, err := LoadFile(rp, r.strict, r.decoder)
	if err != nil {
		r.log.Error("Failed to load the texture", "path", rp.Path, "err", err)
		return nil, err
	}

	return tex, nil
}

// LoadFile decodes a resolved file. The DDS branch is taken only when
// rp.IsDDS is set; everything else goes to dec.
func LoadFile(rp ResolvedPath, strict bool, dec ImageDecoder) (*Texture, error) {
	b, err := os.ReadFile(rp.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, rp.Path, err)
	}

	if rp.IsDDS {
		return LoadDDS(b, strict)
	}

	if dec == nil {
		dec = StdDecoder{}
	}
	tex, err := dec.Decode(b)
	if err != nil {
		if errors.Is(err, ErrIO) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return tex, nil
}

// LoadDDS builds a texture from a complete DDS file. The payload after the
// header is kept as-is; no decompression is done.
func LoadDDS(b []byte, strict bool) (*Texture, error) {
	parse := ParseHeader
	if strict {
		parse = ParseHeaderStrict
	}

	info, err := parse(b)
	if err != nil {
		return nil, err
	}

	if !info.Format.BlockCompressed() {
		return nil, fmt.Errorf("%w: FourCC %q", ErrUnsupportedFormat, info.FourCCString())
	}

	if info.Size != headerStructSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHeaderSize, info.Size)
	}

	payload := make([]byte, len(b)-HeaderSize)
	copy(payload, b[HeaderSize:])

	return &Texture{
		Width:  info.Width,
		Height: info.Height,
		Format: info.Format,
		Data:   payload,
	}, nil
}
