// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/texres

package texres

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GameDataDir is the directory under the install root holding all assets.
const GameDataDir = "GameData"

// DeriveRootPath returns everything in installPath before the first
// occurrence of "GameData". For "/a/b/GameData/Plugins/x.exe" that is "/a/b/".
func DeriveRootPath(installPath string) (string, error) {
	i := strings.Index(installPath, GameDataDir)
	if i < 0 {
		return "", fmt.Errorf("%w: %q", ErrNoGameData, installPath)
	}

	return installPath[:i], nil
}

// RootPathFromExecutable derives the root path from the directory of the
// running executable.
func RootPathFromExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecutablePath, err)
	}

	return DeriveRootPath(filepath.Dir(exe))
}
