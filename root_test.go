package texres

import (
	"errors"
	"testing"
)

func TestDeriveRootPathTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "plugin-dll", path: "/a/b/GameData/Plugins/x.exe", want: "/a/b/"},
		{name: "plugin-dir", path: "/a/b/GameData/Toolbar/Plugins", want: "/a/b/"},
		{name: "first-occurrence", path: "/games/GameData/mods/GameData/x", want: "/games/"},
		{name: "windows", path: `C:\KSP\GameData\Toolbar`, want: `C:\KSP\`},
		{name: "gamedata-root", path: "GameData/x", want: ""},
		{name: "missing", path: "/usr/local/bin/texres", wantErr: ErrNoGameData},
		{name: "lowercase", path: "/a/gamedata/x", wantErr: ErrNoGameData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := DeriveRootPath(tc.path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) || !errors.Is(err, ErrConfiguration) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DeriveRootPath: %v", err)
			}
			if got != tc.want {
				t.Fatalf("DeriveRootPath(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestRootPathFromExecutableOutsideGameData(t *testing.T) {
	t.Parallel()

	// Test binaries are built in a temporary directory, never under GameData.
	if _, err := RootPathFromExecutable(); !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}
