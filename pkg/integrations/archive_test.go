package integrations

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to add %s: %v", name, err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close archive: %v", err)
	}
	path := filepath.Join(t.TempDir(), "TVSources.zip")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("failed to write archive: %v", err)
	}
	return path
}

func TestZipInstaller_Install(t *testing.T) {
	root := t.TempDir()
	archive := writeArchive(t, map[string]string{
		"readme.txt": "top level",
		"luaScr/user/TVSources/AutoSetup/rutv_pls.lua": "-- scraper",
		"luaScr/user/video/":                           "",
	})

	err := ZipInstaller{}.Install(archive, root)
	if err != nil {
		t.Fatalf("Install() error = %v, want nil", err)
	}

	content, err := os.ReadFile(filepath.Join(root, "luaScr", "user", "TVSources", "AutoSetup", "rutv_pls.lua"))
	if err != nil {
		t.Fatalf("extracted file missing: %v", err)
	}
	if string(content) != "-- scraper" {
		t.Errorf("expected extracted content %q, got %q", "-- scraper", content)
	}

	info, err := os.Stat(filepath.Join(root, "luaScr", "user", "video"))
	if err != nil || !info.IsDir() {
		t.Errorf("expected directory entry to be created, got %v", err)
	}

	if _, err := os.Stat(archive); !os.IsNotExist(err) {
		t.Error("archive should be removed after extraction")
	}
}

func TestZipInstaller_InstallOverwrites(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "filmix.lua")
	if err := os.WriteFile(target, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	archive := writeArchive(t, map[string]string{"filmix.lua": "new"})

	if err := (ZipInstaller{}.Install(archive, root)); err != nil {
		t.Fatalf("Install() error = %v, want nil", err)
	}

	content, _ := os.ReadFile(target)
	if string(content) != "new" {
		t.Errorf("expected file to be replaced, got %q", content)
	}
}

func TestZipInstaller_InstallCorrupt(t *testing.T) {
	root := t.TempDir()
	archive := filepath.Join(t.TempDir(), "TVSources.zip")
	if err := os.WriteFile(archive, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}

	err := ZipInstaller{}.Install(archive, root)
	if err == nil {
		t.Fatal("Install() should fail on a corrupt archive")
	}

	if _, statErr := os.Stat(archive); statErr != nil {
		t.Error("archive should be kept on disk after a failed extraction")
	}
}

func TestZipInstaller_InstallRejectsTraversal(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "stv")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatal(err)
	}
	archive := writeArchive(t, map[string]string{"../evil.lua": "payload"})

	err := ZipInstaller{}.Install(archive, root)
	if err == nil {
		t.Fatal("Install() should reject paths escaping the root")
	}

	if _, statErr := os.Stat(filepath.Join(parent, "evil.lua")); !os.IsNotExist(statErr) {
		t.Error("escaping entry must not be written")
	}
	if _, statErr := os.Stat(archive); statErr != nil {
		t.Error("archive should be kept on disk after a failed extraction")
	}
}
