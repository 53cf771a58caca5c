package diagfmt

import (
	"path/filepath"
	"strings"
)

// formatPath renders path according to mode. An empty path names a stream.
func formatPath(path string, mode PathMode, base string) string {
	if path == "" {
		return "<stdin>"
	}
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative, PathModeAuto:
		if base == "" {
			return path
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return path
		}
		if mode == PathModeAuto && strings.HasPrefix(rel, "..") {
			return path
		}
		return rel
	}
	return path
}
