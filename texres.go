// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"errors"

	"github.com/charmbracelet/log"
)

// DefaultSuffixes is the probe order used when a logical path does not name
// a file directly. Image formats come before DDS.
var DefaultSuffixes = []string{".png", ".jpg", ".gif", ".PNG", ".JPG", ".GIF", ".dds", ".DDS"}

// Options configures a Resolver. Nil fields use defaults.
type Options struct {
	// Suffixes overrides DefaultSuffixes.
	Suffixes []string
	// StrictDimensions reads full 32-bit DDS width and height.
	StrictDimensions bool
	// Decoder handles non-DDS files. Defaults to StdDecoder.
	Decoder ImageDecoder
	// Database is consulted by GetTexture when no file exists.
	Database Database
	// Logger receives load failures. Defaults to a discarding logger.
	Logger *log.Logger
}

// Resolver maps logical texture paths under root+"GameData/" to textures.
// It holds no mutable state after New returns.
type Resolver struct {
	root     string
	suffixes []string
	strict   bool
	decoder  ImageDecoder
	db       Database
	log      *log.Logger
}

// New returns a resolver for the install root (which should end in a path
// separator, as returned by DeriveRootPath).
func New(root string, opts *Options) *Resolver {
	r := &Resolver{
		root:     root,
		suffixes: DefaultSuffixes,
		decoder:  StdDecoder{},
		db:       noDatabase{},
		log:      discardLogger(),
	}
	if opts == nil {
		return r
	}

	if len(opts.Suffixes) > 0 {
		r.suffixes = append([]string(nil), opts.Suffixes...)
	}
	r.strict = opts.StrictDimensions
	if opts.Decoder != nil {
		r.decoder = opts.Decoder
	}
	if opts.Database != nil {
		r.db = opts.Database
	}
	if opts.Logger != nil {
		r.log = opts.Logger
	}

	return r
}

// Root returns the install root the resolver was built with.
func (r *Resolver) Root() string {
	return r.root
}

// GetTexture loads a texture from disk, falling back to the database when
// no file exists. Files on disk take precedence over database entries.
// It never returns an error; failures are logged and yield nil.
func (r *Resolver) GetTexture(logicalPath string) *Texture {
	tex, err := r.Load(logicalPath)
	if err == nil {
		return tex
	}

	if !errors.Is(err, ErrNotFound) {
		r.log.Info("GetTexture, texture not loaded after finding file", "path", logicalPath)
		return nil
	}

	if !r.db.Exists(logicalPath) {
		r.log.Info("GetTexture, texture not found in database", "path", logicalPath)
		return nil
	}

	tex = r.db.Get(logicalPath, false)
	if tex == nil {
		r.log.Info("GetTexture, database returned no texture", "path", logicalPath)
	}

	return tex
}
