// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

// Database is a host texture registry consulted when no file exists on disk.
type Database interface {
	// Exists reports whether a texture is registered under path.
	Exists(path string) bool
	// Get returns the registered texture, or nil.
	Get(path string, normalMap bool) *Texture
}

// MapDatabase is an in-memory Database keyed by logical path.
type MapDatabase map[string]*Texture

// Exists implements Database.
func (m MapDatabase) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

// Get implements Database. Textures are returned as stored.
func (m MapDatabase) Get(path string, _ bool) *Texture {
	return m[path]
}

// noDatabase is used when Options.Database is nil.
type noDatabase struct{}

func (noDatabase) Exists(string) bool        { return false }
func (noDatabase) Get(string, bool) *Texture { return nil }
