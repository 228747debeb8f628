package sources

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func releaseServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestGitHub_LatestArchive(t *testing.T) {
	server := releaseServer(t, `{
		"tag_name": "v3.2",
		"assets": [
			{"name": "checksums.txt", "browser_download_url": "http://cdn/checksums.txt"},
			{"name": "TVSources.tar.gz", "browser_download_url": "http://cdn/TVSources.tar.gz"},
			{"name": "TVSources_v3.2.zip", "browser_download_url": "http://cdn/TVSources_v3.2.zip"},
			{"name": "TVSources_old.zip", "browser_download_url": "http://cdn/TVSources_old.zip"}
		]
	}`)

	gh := NewGitHub(server.URL, time.Second)
	asset, err := gh.LatestArchive("tvsources")

	assert.NoError(t, err)
	assert.Equal(t, "TVSources_v3.2.zip", asset.Name)
	assert.Equal(t, "http://cdn/TVSources_v3.2.zip", asset.DownloadURL)
}

func TestGitHub_LatestArchiveIgnoresCase(t *testing.T) {
	server := releaseServer(t, `{
		"assets": [{"name": "TVSOURCES.ZIP", "browser_download_url": "http://cdn/TVSOURCES.ZIP"}]
	}`)

	gh := NewGitHub(server.URL, time.Second)
	asset, err := gh.LatestArchive("tvsources")

	assert.NoError(t, err)
	assert.Equal(t, "TVSOURCES.ZIP", asset.Name)
}

func TestGitHub_LatestArchiveNoMatch(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no assets", `{"tag_name": "v3.2", "assets": []}`},
		{"only foreign assets", `{"assets": [{"name": "player.zip"}, {"name": "TVSources.rar"}]}`},
		{"error payload", `{"message": "Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := releaseServer(t, tt.body)

			gh := NewGitHub(server.URL, time.Second)
			_, err := gh.LatestArchive("tvsources")

			assert.ErrorIs(t, err, ErrNoArchiveAsset)
		})
	}
}

func TestGitHub_LatestArchiveMalformedBody(t *testing.T) {
	server := releaseServer(t, `{"assets": [`)

	gh := NewGitHub(server.URL, time.Second)
	_, err := gh.LatestArchive("tvsources")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoArchiveAsset))
}

func TestGitHub_LatestArchiveUnreachable(t *testing.T) {
	server := releaseServer(t, `{}`)
	server.Close()

	gh := NewGitHub(server.URL, time.Second)
	_, err := gh.LatestArchive("tvsources")

	assert.Error(t, err)
}

func TestGitHub_LatestArchiveTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	gh := NewGitHub(server.URL, 50*time.Millisecond)
	_, err := gh.LatestArchive("tvsources")

	assert.Error(t, err)
}
