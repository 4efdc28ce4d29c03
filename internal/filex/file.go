// Package filex contains small filesystem helpers used by the upload flow.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RegularFileSize stats path and returns its size in bytes. Directories and
// other non-regular files are rejected.
func RegularFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: not a regular file", path)
	}
	return info.Size(), nil
}

// HasAllowedExtension reports whether filename's extension matches one of
// allowed, case-insensitively. Allowed entries may be given with or without
// the leading dot (".pdf" and "pdf" are equivalent).
func HasAllowedExtension(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		a = strings.ToLower(a)
		if !strings.HasPrefix(a, ".") {
			a = "." + a
		}
		if ext == a {
			return true
		}
	}
	return false
}
