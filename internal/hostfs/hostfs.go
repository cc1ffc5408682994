package hostfs

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultRoot is where the identity databases live when sysidd runs
// directly on the host. In a container the host filesystem is expected
// to be bind-mounted and SetRoot pointed at the mount.
const DefaultRoot = "/"

var (
	rootMu sync.RWMutex
	root   = DefaultRoot
)

var ErrInvalidPath = errors.New("invalid host path")

// SetRoot changes the directory all relative host paths resolve under.
func SetRoot(dir string) {
	if dir == "" {
		dir = DefaultRoot
	}
	rootMu.Lock()
	root = dir
	rootMu.Unlock()
}

// Root returns the current host root.
func Root() string {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return root
}

// Path joins the host root with a relative path (no leading slash).
// Example: Path("etc/passwd") -> /host/etc/passwd when the root is /host.
func Path(rel string) (string, error) {
	rel = strings.TrimPrefix(rel, "/")
	clean := filepath.Clean(rel)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	if strings.HasPrefix(clean, "..") {
		return "", ErrInvalidPath
	}
	return filepath.Join(Root(), clean), nil
}
