// Package config describes a SimpleTV installation and the upstream
// locations its Lua scripts are synchronized from. Defaults match the
// stock SimpleTV layout; a luasync.yaml file in the installation root
// can override any of them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the optional override file looked up inside the
// installation root.
const FileName = "luasync.yaml"

// Layout holds the script folders of an installation, relative to the
// root unless absolute.
type Layout struct {
	Video     string `yaml:"video"`
	Scrapers  string `yaml:"scrapers"`
	Timeshift string `yaml:"timeshift"`
}

// Sources holds the upstream locations scripts are fetched from. The
// first four are base URLs joined with the file name; ReleaseAPI is a
// GitHub latest-release endpoint used for the aggregate archive.
type Sources struct {
	Video      string `yaml:"video"`
	Scrapers   string `yaml:"scrapers"`
	Timeshift  string `yaml:"timeshift"`
	YouTube    string `yaml:"youtube"`
	ReleaseAPI string `yaml:"release_api"`
}

type Config struct {
	Root     string  `yaml:"root"`
	Manifest string  `yaml:"manifest"`
	Archive  string  `yaml:"archive"`
	Layout   Layout  `yaml:"layout"`
	Sources  Sources `yaml:"sources"`

	ReleaseTimeout  Duration `yaml:"release_timeout"`
	DownloadTimeout Duration `yaml:"download_timeout"`
}

// Default returns the stock SimpleTV configuration: folder layout and
// upstream repositories of the official script collections.
func Default() *Config {
	return &Config{
		Root:     ".",
		Manifest: "luasync.ini",
		Archive:  "TVSources.zip",
		Layout: Layout{
			Video:     filepath.Join("luaScr", "user", "video"),
			Scrapers:  filepath.Join("luaScr", "user", "TVSources", "AutoSetup"),
			Timeshift: filepath.Join("luaScr", "user", "httptimeshift", "extensions"),
		},
		Sources: Sources{
			Video:      "https://raw.githubusercontent.com/Nexterr-origin/simpleTV-Scripts/main/Video%20Scripts/",
			Scrapers:   "https://raw.githubusercontent.com/Nexterr-origin/simpleTV-Scripts/main/Scrapers%20TVSources/",
			Timeshift:  "https://raw.githubusercontent.com/Nexterr-origin/simpleTV-Addons/main/timeshift-extensions/",
			YouTube:    "https://raw.githubusercontent.com/Nexterr-origin/simpleTV-YouTube/main/",
			ReleaseAPI: "https://api.github.com/repos/BMSimple/SimpleTV/releases/latest",
		},
		ReleaseTimeout:  Duration(10 * time.Second),
		DownloadTimeout: Duration(15 * time.Second),
	}
}

// Load returns the configuration for the installation at root,
// overlaying luasync.yaml on the defaults when the file exists.
func Load(root string) (*Config, error) {
	cfg := Default()
	cfg.Root = root

	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Root == "" {
		cfg.Root = root
	}
	return cfg, nil
}

// ManifestPath resolves the manifest location against the root.
func (c *Config) ManifestPath() string {
	return c.resolve(c.Manifest)
}

// VideoDir is the destination folder for player video scripts.
func (c *Config) VideoDir() string {
	return c.resolve(c.Layout.Video)
}

// CoreDir is the destination folder for the player core script.
func (c *Config) CoreDir() string {
	return filepath.Join(c.VideoDir(), "core")
}

// ScrapersDir is the destination folder for channel-list scrapers.
func (c *Config) ScrapersDir() string {
	return c.resolve(c.Layout.Scrapers)
}

// TimeshiftDir is the destination folder for timeshift extensions.
func (c *Config) TimeshiftDir() string {
	return c.resolve(c.Layout.Timeshift)
}

// ArchiveKeyword is the lowercase token release assets are matched
// against, the archive name without its extension.
func (c *Config) ArchiveKeyword() string {
	return strings.ToLower(strings.TrimSuffix(c.Archive, filepath.Ext(c.Archive)))
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Root, path)
}
