// Package sources resolves where script content lives upstream. Plain
// scripts are addressed by URL convention; the aggregate archive is
// looked up through a release feed.
package sources

// Releases resolves the downloadable asset for the aggregate archive
// from a published release.
type Releases interface {
	LatestArchive(keyword string) (Asset, error)
}
