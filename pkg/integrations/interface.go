package integrations

// Installer places a downloaded archive's content into the
// installation tree.
type Installer interface {
	Install(archivePath, root string) error
}
