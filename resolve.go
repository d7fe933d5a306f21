// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"fmt"
	"os"
)

// ResolvedPath is a file found for a logical path.
type ResolvedPath struct {
	// Path is the absolute file path.
	Path string
	// Suffix is the probed suffix that matched, empty for an exact hit.
	Suffix string
	// IsDDS is set only when Suffix is a DDS suffix.
	IsDDS bool
}

// Pathname returns the candidate path for a logical path, without suffix.
func (r *Resolver) Pathname(logicalPath string) string {
	return r.root + GameDataDir + "/" + logicalPath
}

// Resolve finds the file backing logicalPath. An exact match wins; otherwise
// suffixes are tried in order. It returns ErrNotFound when nothing matches.
func (r *Resolver) Resolve(logicalPath string) (ResolvedPath, error) {
	base := r.Pathname(logicalPath)
	if isFile(base) {
		return ResolvedPath{Path: base}, nil
	}

	for _, suffix := range r.suffixes {
		if isFile(base + suffix) {
			return ResolvedPath{
				Path:   base + suffix,
				Suffix: suffix,
				IsDDS:  isDDSSuffix(suffix),
			}, nil
		}
	}

	return ResolvedPath{}, fmt.Errorf("%w: %q", ErrNotFound, base)
}

// Exists reports whether Resolve would find a file.
func (r *Resolver) Exists(logicalPath string) bool {
	_, err := r.Resolve(logicalPath)
	return err == nil
}

func isDDSSuffix(suffix string) bool {
	return suffix == ".dds" || suffix == ".DDS"
}

// isFile reports whether path exists and is not a directory.
func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
