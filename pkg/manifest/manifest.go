// Package manifest reads the user-maintained list of script files to
// synchronize. The format is one file name per line; blank lines are
// skipped and lines starting with ' are kept but marked disabled.
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotFound reports that the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// DisableMarker prefixes manifest lines excluded from synchronization.
const DisableMarker = "'"

// Read returns the manifest entries in file order: every non-blank
// line, trimmed, disabled lines included.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return lines, nil
}

// IsDisabled reports whether a manifest line is commented out.
func IsDisabled(line string) bool {
	return strings.HasPrefix(line, DisableMarker)
}

// Active filters a manifest down to the enabled entries, preserving
// their order.
func Active(lines []string) []string {
	active := make([]string, 0, len(lines))
	for _, line := range lines {
		if !IsDisabled(line) {
			active = append(active, line)
		}
	}
	return active
}
