package texres

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolvePrefersImagesOverDDS(t *testing.T) {
	t.Parallel()

	root := gameData(t)
	writeAsset(t, root, "foo.dds", ddsFixture(fourCCDXT1, 4, 4, 8))
	pngPath := writeAsset(t, root, "foo.png", pngBytes(t, testImage(2, 2)))

	rp, err := New(root, nil).Resolve("foo")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rp.Path != pngPath || rp.Suffix != ".png" || rp.IsDDS {
		t.Fatalf("Resolve() = %+v, want %s", rp, pngPath)
	}
}

func TestResolveTable(t *testing.T) {
	t.Parallel()

	root := gameData(t)
	writeAsset(t, root, "a/only.dds", nil)
	writeAsset(t, root, "a/upper.DDS", nil)
	writeAsset(t, root, "a/exact.dds", nil)
	writeAsset(t, root, "a/gif.gif", nil)
	writeAsset(t, root, "a/both.jpg", nil)
	writeAsset(t, root, "a/both.GIF", nil)
	if err := os.MkdirAll(filepath.Join(root, GameDataDir, "a", "dir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeAsset(t, root, "a/dir.png", nil)

	tests := []struct {
		name    string
		path    string
		suffix  string
		isDDS   bool
		wantErr error
	}{
		{name: "dds-suffix", path: "a/only", suffix: ".dds", isDDS: true},
		{name: "upper-dds-suffix", path: "a/upper", suffix: ".DDS", isDDS: true},
		{name: "exact-dds-name", path: "a/exact.dds", suffix: "", isDDS: false},
		{name: "gif", path: "a/gif", suffix: ".gif"},
		{name: "lowercase-first", path: "a/both", suffix: ".jpg"},
		{name: "directory-not-a-file", path: "a/dir", suffix: ".png"},
		{name: "missing", path: "a/none", wantErr: ErrNotFound},
		{name: "missing-dir", path: "nope/none", wantErr: ErrNotFound},
	}

	r := New(root, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rp, err := r.Resolve(tc.path)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				if r.Exists(tc.path) {
					t.Fatalf("Exists(%q) = true", tc.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q): %v", tc.path, err)
			}
			if want := r.Pathname(tc.path) + tc.suffix; rp.Path != want {
				t.Fatalf("Path = %q, want %q", rp.Path, want)
			}
			if rp.Suffix != tc.suffix || rp.IsDDS != tc.isDDS {
				t.Fatalf("Resolve(%q) = %+v, want suffix %q dds %v", tc.path, rp, tc.suffix, tc.isDDS)
			}
			if !r.Exists(tc.path) {
				t.Fatalf("Exists(%q) = false", tc.path)
			}
		})
	}
}

func TestResolveCustomSuffixes(t *testing.T) {
	t.Parallel()

	root := gameData(t)
	writeAsset(t, root, "tex.png", nil)
	writeAsset(t, root, "tex.dds", nil)

	r := New(root, &Options{Suffixes: []string{".dds", ".png"}})
	rp, err := r.Resolve("tex")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rp.Suffix != ".dds" || !rp.IsDDS {
		t.Fatalf("Resolve() = %+v, want .dds", rp)
	}
}

func TestPathname(t *testing.T) {
	t.Parallel()

	r := New("/opt/game/", nil)
	if got, want := r.Pathname("Toolbar/icon"), "/opt/game/GameData/Toolbar/icon"; got != want {
		t.Fatalf("Pathname() = %q, want %q", got, want)
	}
	if r.Root() != "/opt/game/" {
		t.Fatalf("Root() = %q", r.Root())
	}
}
