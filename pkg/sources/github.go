package sources

import (
	"errors"
	"strings"
	"time"

	"github.com/simpletv/luasync/pkg/utils"
)

// ErrNoArchiveAsset reports that the latest release carries no zip
// asset matching the requested keyword.
var ErrNoArchiveAsset = errors.New("no matching archive asset in latest release")

// Release is the slice of the GitHub release payload the resolver
// cares about.
type Release struct {
	TagName string  `json:"tag_name"`
	Assets  []Asset `json:"assets"`
}

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name        string `json:"name"`
	DownloadURL string `json:"browser_download_url"`
}

// GitHub resolves release assets through the GitHub REST API.
type GitHub struct {
	api      *utils.API
	endpoint string
}

// NewGitHub builds a resolver for one latest-release endpoint.
func NewGitHub(endpoint string, timeout time.Duration) *GitHub {
	return &GitHub{api: utils.NewAPI(timeout), endpoint: endpoint}
}

// LatestArchive returns the first asset of the latest release whose
// name ends in .zip and contains keyword, ignoring case.
func (g *GitHub) LatestArchive(keyword string) (Asset, error) {
	var release Release
	if err := g.api.Get(g.endpoint, &release); err != nil {
		return Asset{}, err
	}
	keyword = strings.ToLower(keyword)
	for _, asset := range release.Assets {
		name := strings.ToLower(asset.Name)
		if strings.HasSuffix(name, ".zip") && strings.Contains(name, keyword) {
			return asset, nil
		}
	}
	return Asset{}, ErrNoArchiveAsset
}
