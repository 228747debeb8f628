package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/simpletv/luasync/pkg/config"
	"github.com/simpletv/luasync/pkg/integrations"
	"github.com/simpletv/luasync/pkg/manifest"
	"github.com/simpletv/luasync/pkg/routes"
	"github.com/simpletv/luasync/pkg/sources"
)

// Synchronizer runs one full update pass: read the manifest, route
// every enabled entry, fetch it and report outcomes through the
// listener. Entries are processed one at a time in manifest order; a
// failing entry never stops the run.
type Synchronizer struct {
	cfg        *config.Config
	classifier *routes.Classifier
	releases   sources.Releases
	downloader *Downloader
	installer  integrations.Installer
	listener   Listener
}

// NewSynchronizer wires a Synchronizer for one installation. A nil
// listener is replaced by a silent one.
func NewSynchronizer(cfg *config.Config, listener Listener) *Synchronizer {
	if listener == nil {
		listener = Callbacks{}
	}
	return &Synchronizer{
		cfg:        cfg,
		classifier: routes.NewClassifier(cfg),
		releases:   sources.NewGitHub(cfg.Sources.ReleaseAPI, time.Duration(cfg.ReleaseTimeout)),
		downloader: NewDownloader(time.Duration(cfg.DownloadTimeout)),
		installer:  integrations.ZipInstaller{},
		listener:   listener,
	}
}

// Run executes a sync pass and returns its report. The listener sees
// one Progress call before every entry, a final Progress(total, total)
// and exactly one Done call.
func (s *Synchronizer) Run() Report {
	report := newReport()
	s.listener.Log("Starting synchronization", SeverityHeader)

	lines, err := manifest.Read(s.cfg.ManifestPath())
	if errors.Is(err, manifest.ErrNotFound) {
		s.listener.Log(fmt.Sprintf("Manifest not found: %s", s.cfg.ManifestPath()), SeverityError)
		s.listener.Done(nil, nil)
		return report
	}
	if err != nil {
		s.listener.Log(fmt.Sprintf("Failed to read manifest: %v", err), SeverityError)
		s.listener.Done(nil, nil)
		return report
	}

	entries := manifest.Active(lines)
	if len(entries) == 0 {
		s.listener.Log("Manifest has no enabled entries, nothing to sync", SeverityWarning)
		s.listener.Done(nil, nil)
		return report
	}
	s.listener.Log(fmt.Sprintf("%d files to process", len(entries)), SeverityInfo)

	total := len(entries)
	for i, name := range entries {
		s.listener.Progress(i, total)
		if s.syncEntry(name) {
			report.Succeeded = append(report.Succeeded, name)
		} else {
			report.Failed = append(report.Failed, name)
		}
	}
	s.listener.Progress(total, total)

	s.logSummary(report)
	s.listener.Done(report.Succeeded, report.Failed)
	return report
}

func (s *Synchronizer) syncEntry(name string) bool {
	route := s.classifier.Classify(name)
	switch route.Kind {
	case routes.KindArchive:
		return s.syncArchive(route.Name)
	case routes.KindDirect:
		return s.syncFile(route)
	default:
		s.listener.Log(fmt.Sprintf("Unknown file type: %s, skipped", name), SeverityError)
		return false
	}
}

// syncArchive resolves the aggregate archive through the release feed,
// downloads it into the root and unpacks it in place.
func (s *Synchronizer) syncArchive(name string) bool {
	s.listener.Log(fmt.Sprintf("Checking the latest %s release", name), SeverityInfo)
	asset, err := s.releases.LatestArchive(s.cfg.ArchiveKeyword())
	if errors.Is(err, sources.ErrNoArchiveAsset) {
		s.listener.Log(fmt.Sprintf("No %s asset in the latest release", name), SeverityWarning)
		return false
	}
	if err != nil {
		s.listener.Log(fmt.Sprintf("Release lookup failed: %v", err), SeverityError)
		return false
	}
	s.listener.Log(fmt.Sprintf("Found version: %s", asset.Name), SeverityInfo)

	archivePath := filepath.Join(s.cfg.Root, asset.Name)
	downloaded := s.syncFile(routes.Route{
		Name: asset.Name,
		Kind: routes.KindDirect,
		Dest: archivePath,
		URL:  asset.DownloadURL,
	})
	if !downloaded {
		return false
	}

	s.listener.Log(fmt.Sprintf("Extracting archive: %s", asset.Name), SeverityInfo)
	if err := s.installer.Install(archivePath, s.cfg.Root); err != nil {
		s.listener.Log(fmt.Sprintf("Failed to extract %s: %v", asset.Name, err), SeverityError)
		return false
	}
	s.listener.Log("Archive extracted", SeveritySuccess)
	return true
}

func (s *Synchronizer) syncFile(route routes.Route) bool {
	s.listener.Log(fmt.Sprintf("Downloading: %s", route.Name), SeverityInfo)
	if err := s.downloader.Download(route.URL, route.Dest); err != nil {
		s.listener.Log(fmt.Sprintf("Failed to download %s: %v", route.Name, err), SeverityError)
		return false
	}
	s.listener.Log(fmt.Sprintf("Updated: %s", route.Name), SeveritySuccess)
	return true
}

// logSummary mirrors the report into the log, failed entries first,
// then succeeded, each listed by name.
func (s *Synchronizer) logSummary(report Report) {
	s.listener.Log("Synchronization finished", SeverityHeader)
	if len(report.Failed) > 0 {
		s.listener.Log(fmt.Sprintf("Failed to update %d of %d files", len(report.Failed), report.Total()), SeverityError)
		for _, name := range report.Failed {
			s.listener.Log("  - "+name, SeverityError)
		}
	}
	if len(report.Succeeded) > 0 {
		s.listener.Log(fmt.Sprintf("Updated %d of %d files", len(report.Succeeded), report.Total()), SeveritySuccess)
		for _, name := range report.Succeeded {
			s.listener.Log("  - "+name, SeveritySuccess)
		}
	}
}
