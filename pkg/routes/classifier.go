// Package routes maps manifest entry names to a download source and an
// install destination by naming convention.
package routes

import (
	"path/filepath"
	"strings"

	"github.com/simpletv/luasync/pkg/config"
)

// Kind tells the orchestrator how to handle a classified entry.
type Kind string

const (
	// KindArchive marks the aggregate archive, resolved through the
	// release API and extracted into the installation root.
	KindArchive Kind = "archive"
	// KindDirect marks a file downloaded straight from its source URL.
	KindDirect Kind = "direct"
	// KindUnknown marks a name outside every convention.
	KindUnknown Kind = "unknown"
)

// Route is the placement decision for one manifest entry. Dest and URL
// are populated for direct downloads only.
type Route struct {
	Name string
	Kind Kind
	Dest string
	URL  string
}

type rule struct {
	match func(name string) bool
	build func(name string) Route
}

// Classifier resolves entry names against a fixed rule order. The
// first matching rule wins, so more specific conventions must stay
// ahead of the catch-all .lua rule.
type Classifier struct {
	archive string
	rules   []rule
}

// NewClassifier builds the rule table for one installation.
func NewClassifier(cfg *config.Config) *Classifier {
	c := &Classifier{archive: strings.ToLower(cfg.Archive)}
	c.rules = []rule{
		{c.isArchive, func(name string) Route {
			return Route{Name: name, Kind: KindArchive}
		}},
		{contains("_pls.lua"), direct(cfg.ScrapersDir(), cfg.Sources.Scrapers)},
		{prefix("YT.lua"), direct(cfg.VideoDir(), cfg.Sources.YouTube)},
		{contains("timeshift_ext.lua"), direct(cfg.TimeshiftDir(), cfg.Sources.Timeshift)},
		{prefix("playerjs.lua"), direct(cfg.CoreDir(), cfg.Sources.Video+"core/")},
		{suffix(".lua"), direct(cfg.VideoDir(), cfg.Sources.Video)},
	}
	return c
}

// Classify resolves a single name. It is total: any name no rule
// accepts yields a KindUnknown route.
func (c *Classifier) Classify(name string) Route {
	for _, r := range c.rules {
		if r.match(name) {
			return r.build(name)
		}
	}
	return Route{Name: name, Kind: KindUnknown}
}

// The archive name is the only case-insensitive comparison; script
// name markers match exactly.
func (c *Classifier) isArchive(name string) bool {
	return strings.ToLower(name) == c.archive
}

func contains(marker string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, marker) }
}

func prefix(marker string) func(string) bool {
	return func(name string) bool { return strings.HasPrefix(name, marker) }
}

func suffix(marker string) func(string) bool {
	return func(name string) bool { return strings.HasSuffix(name, marker) }
}

func direct(dir, baseURL string) func(string) Route {
	return func(name string) Route {
		return Route{
			Name: name,
			Kind: KindDirect,
			Dest: filepath.Join(dir, name),
			URL:  baseURL + name,
		}
	}
}
