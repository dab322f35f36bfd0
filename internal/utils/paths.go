package utils

import "path/filepath"

// ResolvePath makes path absolute. Absolute paths pass through untouched;
// relative paths are anchored at baseDir and cleaned.
func ResolvePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
