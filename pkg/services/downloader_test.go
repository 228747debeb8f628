package services

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDownloader_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("-- lua script"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "luaScr", "user", "video", "filmix.lua")
	downloader := NewDownloader(time.Second)

	err := downloader.Download(server.URL+"/filmix.lua", dest)
	if err != nil {
		t.Fatalf("Download() error = %v, want nil", err)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("downloaded file missing: %v", err)
	}
	if string(content) != "-- lua script" {
		t.Errorf("expected content %q, got %q", "-- lua script", content)
	}
}

func TestDownloader_DownloadOverwrites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "filmix.lua")
	if err := os.WriteFile(dest, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	downloader := NewDownloader(time.Second)
	if err := downloader.Download(server.URL+"/filmix.lua", dest); err != nil {
		t.Fatalf("Download() error = %v, want nil", err)
	}

	content, _ := os.ReadFile(dest)
	if string(content) != "new" {
		t.Errorf("expected file to be replaced, got %q", content)
	}
}

func TestDownloader_DownloadTruncatedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1000")
		w.Write([]byte("partial"))
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "filmix.lua")
	if err := os.WriteFile(dest, []byte("-- previous good script"), 0644); err != nil {
		t.Fatal(err)
	}

	downloader := NewDownloader(time.Second)
	err := downloader.Download(server.URL+"/filmix.lua", dest)
	if err == nil {
		t.Fatal("Download() should fail when the body is cut short")
	}

	content, readErr := os.ReadFile(dest)
	if readErr != nil {
		t.Fatalf("destination should survive a failed download: %v", readErr)
	}
	if string(content) != "-- previous good script" {
		t.Errorf("existing file must keep its bytes after a failed download, got %q", content)
	}
}

func TestDownloader_DownloadBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	dest := filepath.Join(t.TempDir(), "missing.lua")
	downloader := NewDownloader(time.Second)

	err := downloader.Download(server.URL+"/missing.lua", dest)
	if err == nil {
		t.Fatal("Download() should fail on a 404 response")
	}

	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("no file should be written for a failed download")
	}
}

func TestDownloader_DownloadUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	downloader := NewDownloader(time.Second)
	err := downloader.Download(server.URL+"/filmix.lua", filepath.Join(t.TempDir(), "filmix.lua"))
	if err == nil {
		t.Fatal("Download() should fail when the host is unreachable")
	}
}

func TestDownloader_DownloadTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	downloader := NewDownloader(50 * time.Millisecond)
	err := downloader.Download(server.URL+"/slow.lua", filepath.Join(t.TempDir(), "slow.lua"))
	if err == nil {
		t.Fatal("Download() should fail when the request exceeds the timeout")
	}
}
